package session

import (
	"context"
	"errors"
	"testing"

	"github.com/sdey/revu/internal/catalog"
	"github.com/sdey/revu/internal/progress"
	"github.com/sdey/revu/internal/review"
	"github.com/sdey/revu/internal/store"
)

const (
	testLearner = "learner-1"
	testCourse  = "c1"
)

// mockEventRepo records appended events and can simulate write failure.
type mockEventRepo struct {
	reviewEvents  []store.ReviewEventData
	sessionEvents []store.SessionEventData
	failReview    bool
	failSession   bool
}

func (m *mockEventRepo) AppendReviewEvent(_ context.Context, data store.ReviewEventData) error {
	if m.failReview {
		return errors.New("db locked")
	}
	m.reviewEvents = append(m.reviewEvents, data)
	return nil
}

func (m *mockEventRepo) AppendModuleEvent(_ context.Context, _ store.ModuleEventData) error {
	return nil
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	if m.failSession {
		return errors.New("db locked")
	}
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (m *mockEventRepo) ReviewEventsAfter(_ context.Context, _ string, _ int64) ([]store.ReviewEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) ModuleEventsAfter(_ context.Context, _ string, _ int64) ([]store.ModuleEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) LifetimeReviewCount(_ context.Context, _ string) (int, error) {
	return 0, nil
}

func (m *mockEventRepo) CompletedSessionCount(_ context.Context, _, _ string) (int, error) {
	return 0, nil
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	course := &catalog.Course{
		ID:    testCourse,
		Title: "Fixture",
		Modules: []catalog.Module{
			{
				ID:    "m1",
				Title: "One",
				Items: []catalog.Item{
					{ID: "card1", Kind: catalog.KindFlashcard, Flashcard: &catalog.Flashcard{Front: "Q1", Back: "A1"}},
					{ID: "task1", Kind: catalog.KindActivity, Activity: &catalog.Activity{Prompt: "Do task1"}},
				},
			},
		},
	}
	cat, err := catalog.New([]*catalog.Course{course})
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func newController(t *testing.T, unlock bool) (*Controller, *mockEventRepo) {
	t.Helper()
	repo := &mockEventRepo{}
	prog := progress.NewService(testLearner, nil, repo)
	if unlock {
		if err := prog.CompleteModule(context.Background(), testCourse, "m1"); err != nil {
			t.Fatal(err)
		}
	}
	svc := review.NewService(testCatalog(t), prog, review.NewState(), repo, nil)
	return NewController(svc, repo, testLearner, testCourse, 0), repo
}

func TestStartFailsWithoutUnlockedModules(t *testing.T) {
	c, repo := newController(t, false)

	_, err := c.Start(context.Background())
	if !errors.Is(err, review.ErrNoUnlockedModules) {
		t.Fatalf("expected ErrNoUnlockedModules, got %v", err)
	}
	if c.Phase() != PhaseIdle {
		t.Error("controller should stay idle")
	}
	if len(repo.sessionEvents) != 0 {
		t.Error("failed start must not record events")
	}
}

func TestStartServesFirstItemAndRecordsStart(t *testing.T) {
	c, repo := newController(t, true)

	sel, err := c.Start(context.Background())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if sel == nil || c.Current() == nil {
		t.Fatal("expected a first item")
	}
	if c.Phase() != PhaseReviewing {
		t.Error("expected reviewing phase")
	}
	if c.SessionID() == "" {
		t.Error("expected a session ID")
	}
	if len(repo.sessionEvents) != 1 || repo.sessionEvents[0].Action != store.ActionStart {
		t.Errorf("session events = %+v", repo.sessionEvents)
	}
}

func TestStartTwiceFails(t *testing.T) {
	c, _ := newController(t, true)
	ctx := context.Background()

	if _, err := c.Start(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Start(ctx); !errors.Is(err, ErrSessionActive) {
		t.Fatalf("expected ErrSessionActive, got %v", err)
	}
}

func TestFlashcardMustBeRevealedBeforeRating(t *testing.T) {
	c, _ := newController(t, true)
	ctx := context.Background()

	sel, err := c.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if sel.Item.Kind != catalog.KindFlashcard {
		t.Fatalf("fixture should serve the flashcard first, got %s", sel.Item.ID)
	}
	if c.Revealed() {
		t.Error("flashcard should start hidden")
	}

	if _, err := c.Rate(ctx, review.Easy); !errors.Is(err, ErrNotRevealed) {
		t.Fatalf("expected ErrNotRevealed, got %v", err)
	}

	if err := c.Reveal(); err != nil {
		t.Fatal(err)
	}
	if !c.Revealed() {
		t.Error("expected revealed after Reveal")
	}
	if _, err := c.Rate(ctx, review.Easy); err != nil {
		t.Fatalf("rate after reveal: %v", err)
	}
}

func TestActivityRateableWithoutReveal(t *testing.T) {
	c, _ := newController(t, true)
	ctx := context.Background()

	if _, err := c.Start(ctx); err != nil {
		t.Fatal(err)
	}
	if err := c.Reveal(); err != nil {
		t.Fatal(err)
	}
	sel, err := c.Rate(ctx, review.Medium)
	if err != nil {
		t.Fatal(err)
	}
	if sel.Item.Kind != catalog.KindActivity {
		t.Fatalf("expected the activity next, got %s", sel.Item.ID)
	}
	if !c.Revealed() {
		t.Error("activities are always revealed")
	}
	if _, err := c.Rate(ctx, review.Hard); err != nil {
		t.Fatalf("rating activity without reveal: %v", err)
	}
}

func TestSessionExhaustsAfterAllItemsServed(t *testing.T) {
	c, _ := newController(t, true)
	ctx := context.Background()

	if _, err := c.Start(ctx); err != nil {
		t.Fatal(err)
	}
	_ = c.Reveal()
	if _, err := c.Rate(ctx, review.Easy); err != nil {
		t.Fatal(err)
	}

	// Second (and last) unlocked item.
	sel, err := c.Rate(ctx, review.Easy)
	if err != nil {
		t.Fatal(err)
	}
	if sel != nil {
		t.Fatalf("expected exhaustion after last item, got %s", sel.Item.ID)
	}
	if !c.Exhausted() {
		t.Error("expected Exhausted")
	}
	if c.Current() != nil {
		t.Error("no current item after exhaustion")
	}
	if _, err := c.Rate(ctx, review.Easy); !errors.Is(err, ErrNoCurrentItem) {
		t.Errorf("expected ErrNoCurrentItem, got %v", err)
	}
}

func TestSkipCountsSeparately(t *testing.T) {
	c, repo := newController(t, true)
	ctx := context.Background()

	if _, err := c.Start(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Skip(ctx); err != nil {
		t.Fatal(err)
	}
	_ = c.Reveal()
	if _, err := c.Rate(ctx, review.Hard); err != nil {
		t.Fatal(err)
	}

	reviewed, skipped := c.Progress()
	if reviewed != 1 || skipped != 1 {
		t.Errorf("progress = %d reviewed, %d skipped", reviewed, skipped)
	}

	var skips int
	for _, e := range repo.reviewEvents {
		if e.Action == store.ActionSkip {
			skips++
		}
	}
	if skips != 1 {
		t.Errorf("recorded %d skip events, want 1", skips)
	}
}

func TestEndRecordsSummary(t *testing.T) {
	c, repo := newController(t, true)
	ctx := context.Background()

	if _, err := c.Start(ctx); err != nil {
		t.Fatal(err)
	}
	_ = c.Reveal()
	if _, err := c.Rate(ctx, review.Easy); err != nil {
		t.Fatal(err)
	}

	sum, err := c.End(ctx)
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if sum.ItemsReviewed != 1 || sum.ItemsSkipped != 0 {
		t.Errorf("summary = %+v", sum)
	}
	if c.Phase() != PhaseIdle {
		t.Error("controller should be idle after End")
	}

	last := repo.sessionEvents[len(repo.sessionEvents)-1]
	if last.Action != store.ActionEnd || last.ItemsReviewed != 1 {
		t.Errorf("end event = %+v", last)
	}

	if _, err := c.End(ctx); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestFailedRatingKeepsCurrentItem(t *testing.T) {
	c, repo := newController(t, true)
	ctx := context.Background()

	first, err := c.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	_ = c.Reveal()

	repo.failReview = true
	if _, err := c.Rate(ctx, review.Easy); err == nil {
		t.Fatal("expected error from failed append")
	}
	if c.Current() == nil || c.Current().Item.ID != first.Item.ID {
		t.Error("current item should stay up for retry")
	}

	repo.failReview = false
	if _, err := c.Rate(ctx, review.Easy); err != nil {
		t.Fatalf("retry: %v", err)
	}
	reviewed, _ := c.Progress()
	if reviewed != 1 {
		t.Errorf("reviewed = %d after retry, want 1", reviewed)
	}
}

func TestNewSessionResetsServedSet(t *testing.T) {
	c, _ := newController(t, true)
	ctx := context.Background()

	if _, err := c.Start(ctx); err != nil {
		t.Fatal(err)
	}
	_ = c.Reveal()
	if _, err := c.Rate(ctx, review.Easy); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Rate(ctx, review.Easy); err != nil {
		t.Fatal(err)
	}
	if _, err := c.End(ctx); err != nil {
		t.Fatal(err)
	}

	// A fresh session can serve everything again.
	sel, err := c.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if sel == nil {
		t.Fatal("expected an item in the new session")
	}
	if c.Exhausted() {
		t.Error("new session should not inherit exhaustion")
	}
}
