package review

import (
	"context"
	"errors"
	"testing"

	"github.com/sdey/revu/internal/store"
)

func TestRateItemAppendsEventAndBumpsCounters(t *testing.T) {
	f := newFixture(t, nil)
	f.complete(t, "m1")
	ctx := context.Background()

	if err := f.svc.RateItem(ctx, testLearner, testSession, testCourse, "f1", Hard, 2500); err != nil {
		t.Fatalf("RateItem: %v", err)
	}

	if len(f.repo.reviewEvents) != 1 {
		t.Fatalf("expected 1 event, got %d", len(f.repo.reviewEvents))
	}
	e := f.repo.reviewEvents[0]
	if e.Action != store.ActionRate || e.Difficulty != "hard" || e.ItemID != "f1" || e.ModuleID != "m1" {
		t.Errorf("unexpected event: %+v", e)
	}
	if e.ItemKind != "flashcard" || e.TimeMs != 2500 || e.SessionID != testSession {
		t.Errorf("unexpected event: %+v", e)
	}

	st := f.state.Item(testLearner, "f1")
	if st.TimesServed != 1 || st.LastDifficulty != "hard" {
		t.Errorf("state = %+v, want served once, last hard", st)
	}
}

func TestRateItemRejectsInvalidDifficulty(t *testing.T) {
	f := newFixture(t, nil)
	f.complete(t, "m1")

	err := f.svc.RateItem(context.Background(), testLearner, testSession, testCourse, "f1", "brutal", 100)
	if err == nil {
		t.Fatal("expected error for invalid difficulty")
	}
	if len(f.repo.reviewEvents) != 0 {
		t.Error("no event should be written for an invalid rating")
	}
}

func TestRateItemUnknownReferences(t *testing.T) {
	f := newFixture(t, nil)
	f.complete(t, "m1")
	ctx := context.Background()

	err := f.svc.RateItem(ctx, testLearner, testSession, "nope", "f1", Easy, 100)
	if !errors.Is(err, ErrUnknownCourse) {
		t.Errorf("expected ErrUnknownCourse, got %v", err)
	}

	err = f.svc.RateItem(ctx, testLearner, testSession, testCourse, "nope", Easy, 100)
	if !errors.Is(err, ErrUnknownItem) {
		t.Errorf("expected ErrUnknownItem, got %v", err)
	}
}

func TestRateItemRejectsLockedModule(t *testing.T) {
	f := newFixture(t, nil)
	f.complete(t, "m1")
	ctx := context.Background()

	// f3 lives in m2, which is still locked.
	err := f.svc.RateItem(ctx, testLearner, testSession, testCourse, "f3", Easy, 100)
	if !errors.Is(err, ErrModuleLocked) {
		t.Fatalf("expected ErrModuleLocked, got %v", err)
	}
	if len(f.repo.reviewEvents) != 0 {
		t.Error("no event should be written for a locked item")
	}
	if st := f.state.Item(testLearner, "f3"); st.TimesServed != 0 || st.LastDifficulty != "" {
		t.Errorf("state mutated for locked item: %+v", st)
	}

	if err := f.svc.RecordSkip(ctx, testLearner, testSession, testCourse, "f3", 100); !errors.Is(err, ErrModuleLocked) {
		t.Errorf("skip on locked item: expected ErrModuleLocked, got %v", err)
	}

	// Unlocking the chapter makes the same call succeed.
	f.complete(t, "m2")
	if err := f.svc.RateItem(ctx, testLearner, testSession, testCourse, "f3", Easy, 100); err != nil {
		t.Fatalf("rate after unlock: %v", err)
	}
}

func TestRateItemLeavesStateUntouchedOnWriteFailure(t *testing.T) {
	f := newFixture(t, nil)
	f.complete(t, "m1")
	f.repo.failAppend = true

	err := f.svc.RateItem(context.Background(), testLearner, testSession, testCourse, "f1", Easy, 100)
	if err == nil {
		t.Fatal("expected error from failed append")
	}

	st := f.state.Item(testLearner, "f1")
	if st.TimesServed != 0 || st.LastDifficulty != "" {
		t.Errorf("state mutated despite failed write: %+v", st)
	}

	// Retry after the failure clears succeeds and counts once.
	f.repo.failAppend = false
	if err := f.svc.RateItem(context.Background(), testLearner, testSession, testCourse, "f1", Easy, 100); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if st := f.state.Item(testLearner, "f1"); st.TimesServed != 1 {
		t.Errorf("TimesServed = %d after retry, want 1", st.TimesServed)
	}
}

func TestRecordSkipAppendsEventWithoutCounting(t *testing.T) {
	f := newFixture(t, nil)
	f.complete(t, "m1")

	if err := f.svc.RecordSkip(context.Background(), testLearner, testSession, testCourse, "f1", 800); err != nil {
		t.Fatalf("RecordSkip: %v", err)
	}

	if len(f.repo.reviewEvents) != 1 {
		t.Fatalf("expected 1 event, got %d", len(f.repo.reviewEvents))
	}
	e := f.repo.reviewEvents[0]
	if e.Action != store.ActionSkip || e.Difficulty != "" {
		t.Errorf("unexpected skip event: %+v", e)
	}

	st := f.state.Item(testLearner, "f1")
	if st.TimesServed != 0 || st.LastDifficulty != "" {
		t.Errorf("skip must not move counters: %+v", st)
	}
}

func TestRatingOverwritesLastDifficulty(t *testing.T) {
	f := newFixture(t, nil)
	f.complete(t, "m1")
	ctx := context.Background()

	for _, d := range []Difficulty{Hard, Medium, Easy} {
		if err := f.svc.RateItem(ctx, testLearner, testSession, testCourse, "f1", d, 100); err != nil {
			t.Fatal(err)
		}
	}

	st := f.state.Item(testLearner, "f1")
	if st.TimesServed != 3 {
		t.Errorf("TimesServed = %d, want 3", st.TimesServed)
	}
	if st.LastDifficulty != "easy" {
		t.Errorf("LastDifficulty = %q, want easy", st.LastDifficulty)
	}
}
