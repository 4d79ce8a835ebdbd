package review

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestCourseStatsCountsByKind(t *testing.T) {
	f := newFixture(t, nil)
	f.complete(t, "m1")
	ctx := context.Background()

	if err := f.svc.RateItem(ctx, testLearner, testSession, testCourse, "f1", Easy, 100); err != nil {
		t.Fatal(err)
	}
	if err := f.svc.RateItem(ctx, testLearner, testSession, testCourse, "a1", Medium, 100); err != nil {
		t.Fatal(err)
	}

	cs, err := f.svc.CourseStats(ctx, testLearner, testCourse)
	if err != nil {
		t.Fatalf("CourseStats: %v", err)
	}

	if len(cs.Modules) != 3 {
		t.Fatalf("got %d modules, want 3", len(cs.Modules))
	}

	m1 := cs.Modules[0]
	if !m1.Unlocked {
		t.Error("m1 should be unlocked")
	}
	if m1.Flashcards != 2 || m1.FlashcardsReviewed != 1 {
		t.Errorf("m1 flashcards = %d/%d, want 1/2", m1.FlashcardsReviewed, m1.Flashcards)
	}
	if m1.Activities != 1 || m1.ActivitiesReviewed != 1 {
		t.Errorf("m1 activities = %d/%d, want 1/1", m1.ActivitiesReviewed, m1.Activities)
	}

	m2 := cs.Modules[1]
	if m2.Unlocked {
		t.Error("m2 should be locked")
	}
	if m2.Reviewed() != 0 {
		t.Errorf("m2 reviewed = %d, want 0", m2.Reviewed())
	}

	if cs.LifetimeReviews != 2 {
		t.Errorf("LifetimeReviews = %d, want 2", cs.LifetimeReviews)
	}
}

func TestCourseStatsRepeatRatingsCountOnce(t *testing.T) {
	f := newFixture(t, nil)
	f.complete(t, "m1")
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if err := f.svc.RateItem(ctx, testLearner, testSession, testCourse, "f1", Hard, 100); err != nil {
			t.Fatal(err)
		}
	}

	cs, err := f.svc.CourseStats(ctx, testLearner, testCourse)
	if err != nil {
		t.Fatal(err)
	}
	if got := cs.Modules[0].FlashcardsReviewed; got != 1 {
		t.Errorf("FlashcardsReviewed = %d, repeat ratings must count one distinct item", got)
	}
	if cs.LifetimeReviews != 4 {
		t.Errorf("LifetimeReviews = %d, want 4", cs.LifetimeReviews)
	}
}

func TestCourseStatsIsIdempotent(t *testing.T) {
	f := newFixture(t, nil)
	f.complete(t, "m1", "m3")
	ctx := context.Background()

	if err := f.svc.RateItem(ctx, testLearner, testSession, testCourse, "f4", Easy, 100); err != nil {
		t.Fatal(err)
	}

	first, err := f.svc.CourseStats(ctx, testLearner, testCourse)
	if err != nil {
		t.Fatal(err)
	}
	second, err := f.svc.CourseStats(ctx, testLearner, testCourse)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("stats changed between reads:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestCourseStatsUnknownCourse(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.CourseStats(context.Background(), testLearner, "nope")
	if !errors.Is(err, ErrUnknownCourse) {
		t.Fatalf("expected ErrUnknownCourse, got %v", err)
	}
}

func TestUnlockedModulesAndItemCount(t *testing.T) {
	f := newFixture(t, nil)
	f.complete(t, "m1", "m3")

	cs, err := f.svc.CourseStats(context.Background(), testLearner, testCourse)
	if err != nil {
		t.Fatal(err)
	}

	if got := cs.UnlockedModules(); !reflect.DeepEqual(got, []string{"m1", "m3"}) {
		t.Errorf("UnlockedModules = %v, want [m1 m3]", got)
	}
	if got := cs.UnlockedItemCount(); got != 4 {
		t.Errorf("UnlockedItemCount = %d, want 4", got)
	}
}
