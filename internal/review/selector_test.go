package review

import (
	"context"
	"errors"
	"testing"
)

func TestNextItemNoUnlockedModules(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.NextItem(context.Background(), testLearner, testCourse, nil)
	if !errors.Is(err, ErrNoUnlockedModules) {
		t.Fatalf("expected ErrNoUnlockedModules, got %v", err)
	}
}

func TestNextItemUnknownCourse(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.NextItem(context.Background(), testLearner, "nope", nil)
	if !errors.Is(err, ErrUnknownCourse) {
		t.Fatalf("expected ErrUnknownCourse, got %v", err)
	}
}

func TestNextItemOnlyServesUnlockedModules(t *testing.T) {
	f := newFixture(t, nil)
	f.complete(t, "m2")

	served := map[string]bool{}
	for i := 0; i < 2; i++ {
		sel, err := f.svc.NextItem(context.Background(), testLearner, testCourse, served)
		if err != nil {
			t.Fatalf("NextItem #%d: %v", i, err)
		}
		if sel.ModuleID != "m2" {
			t.Errorf("item %s came from locked module %s", sel.Item.ID, sel.ModuleID)
		}
		served[sel.Item.ID] = true
	}

	// Both m2 items served; everything else is locked.
	_, err := f.svc.NextItem(context.Background(), testLearner, testCourse, served)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestNextItemExhaustedWhenAllServed(t *testing.T) {
	f := newFixture(t, nil)
	f.complete(t, "m1", "m2", "m3")

	served := map[string]bool{"f1": true, "f2": true, "f3": true, "f4": true, "a1": true, "a2": true}
	_, err := f.svc.NextItem(context.Background(), testLearner, testCourse, served)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

// Every unlocked item must appear exactly once before the pool is
// exhausted, regardless of rating history.
func TestNextItemCoversAllItemsOnceBeforeExhaustion(t *testing.T) {
	f := newFixture(t, nil)
	f.complete(t, "m1", "m2", "m3")
	ctx := context.Background()

	// Uneven history: f1 rated many times, f4 never.
	for i := 0; i < 3; i++ {
		if err := f.svc.RateItem(ctx, testLearner, testSession, testCourse, "f1", Hard, 100); err != nil {
			t.Fatal(err)
		}
	}

	served := map[string]bool{}
	seen := map[string]int{}
	for {
		sel, err := f.svc.NextItem(ctx, testLearner, testCourse, served)
		if errors.Is(err, ErrExhausted) {
			break
		}
		if err != nil {
			t.Fatalf("NextItem: %v", err)
		}
		seen[sel.Item.ID]++
		served[sel.Item.ID] = true
	}

	if len(seen) != 6 {
		t.Fatalf("saw %d distinct items, want 6: %v", len(seen), seen)
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("item %s served %d times before exhaustion", id, n)
		}
	}
}

func TestNextItemPrefersLeastServed(t *testing.T) {
	f := newFixture(t, nil)
	f.complete(t, "m1")
	ctx := context.Background()

	// Rate f1 and f2 so a1 is the only unserved item.
	if err := f.svc.RateItem(ctx, testLearner, testSession, testCourse, "f1", Easy, 100); err != nil {
		t.Fatal(err)
	}
	if err := f.svc.RateItem(ctx, testLearner, testSession, testCourse, "f2", Easy, 100); err != nil {
		t.Fatal(err)
	}

	sel, err := f.svc.NextItem(ctx, testLearner, testCourse, nil)
	if err != nil {
		t.Fatalf("NextItem: %v", err)
	}
	if sel.Item.ID != "a1" {
		t.Errorf("picked %s, want least-served a1", sel.Item.ID)
	}
}

func TestNextItemDeterministic(t *testing.T) {
	f := newFixture(t, nil)
	f.complete(t, "m1", "m2")

	first, err := f.svc.NextItem(context.Background(), testLearner, testCourse, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := f.svc.NextItem(context.Background(), testLearner, testCourse, nil)
		if err != nil {
			t.Fatal(err)
		}
		if again.Item.ID != first.Item.ID {
			t.Fatalf("selection changed without new events: %s then %s", first.Item.ID, again.Item.ID)
		}
	}
}

func TestNextItemHonorsContextCancellation(t *testing.T) {
	f := newFixture(t, nil)
	f.complete(t, "m1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.NextItem(ctx, testLearner, testCourse, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
