package home

import (
	"context"
	"testing"
	"time"

	"github.com/sdey/revu/internal/catalog"
	"github.com/sdey/revu/internal/progress"
	"github.com/sdey/revu/internal/review"
	"github.com/sdey/revu/internal/router"
	"github.com/sdey/revu/internal/store"
	"github.com/sdey/revu/internal/ui/components"
)

const (
	testLearner = "learner-1"
	testCourse  = "c1"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	reviewEvents []store.ReviewEventData
}

func (m *mockEventRepo) AppendReviewEvent(_ context.Context, data store.ReviewEventData) error {
	m.reviewEvents = append(m.reviewEvents, data)
	return nil
}

func (m *mockEventRepo) AppendModuleEvent(_ context.Context, _ store.ModuleEventData) error {
	return nil
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
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
	return len(m.reviewEvents), nil
}

func (m *mockEventRepo) CompletedSessionCount(_ context.Context, _, _ string) (int, error) {
	return 0, nil
}

func testHome(t *testing.T) (*HomeScreen, *progress.Service) {
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
				},
			},
		},
	}
	cat, err := catalog.New([]*catalog.Course{course})
	if err != nil {
		t.Fatal(err)
	}

	repo := &mockEventRepo{}
	prog := progress.NewService(testLearner, nil, repo)
	svc := review.NewService(cat, prog, review.NewState(), repo, nil)
	return New(cat, svc, prog, repo, nil, testLearner, time.Second), prog
}

func startEntry(t *testing.T, h *HomeScreen) components.MenuItem {
	t.Helper()
	for _, it := range h.menu.Items {
		if it.Label == "START REVIEW" {
			return it
		}
	}
	t.Fatal("no START REVIEW entry")
	return components.MenuItem{}
}

func TestStartDisabledWithoutUnlockedChapters(t *testing.T) {
	h, _ := testHome(t)

	if !startEntry(t, h).Disabled {
		t.Error("start should be disabled with zero unlocked chapters")
	}
}

func TestStartEnablesAfterUnlockOnPop(t *testing.T) {
	h, prog := testHome(t)

	if err := prog.CompleteModule(context.Background(), testCourse, "m1"); err != nil {
		t.Fatal(err)
	}

	// The chapter was toggled on a covered screen; popping back must
	// pick up the change.
	h.Update(router.PopScreenMsg{})

	if startEntry(t, h).Disabled {
		t.Error("start should be enabled after a chapter unlocks")
	}
	if got := len(h.stats.UnlockedModules()); got != 1 {
		t.Errorf("unlocked modules = %d, want 1", got)
	}
}

func TestPopRefreshesOverviewStats(t *testing.T) {
	h, prog := testHome(t)
	ctx := context.Background()

	if err := prog.CompleteModule(ctx, testCourse, "m1"); err != nil {
		t.Fatal(err)
	}
	if err := h.svc.RateItem(ctx, testLearner, "s-1", testCourse, "card1", review.Easy, 100); err != nil {
		t.Fatal(err)
	}

	h.Update(router.PopScreenMsg{})

	if h.stats == nil {
		t.Fatal("expected stats after pop")
	}
	if got := h.stats.Modules[0].Reviewed(); got != 1 {
		t.Errorf("reviewed = %d after pop, want 1", got)
	}
}
