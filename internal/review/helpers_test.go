package review

import (
	"context"
	"errors"
	"testing"

	"github.com/sdey/revu/internal/catalog"
	"github.com/sdey/revu/internal/progress"
	"github.com/sdey/revu/internal/store"
)

const (
	testLearner = "learner-1"
	testSession = "session-1"
	testCourse  = "c1"
)

// mockEventRepo records appended events and can simulate write failure.
type mockEventRepo struct {
	reviewEvents []store.ReviewEventData
	failAppend   bool
}

func (m *mockEventRepo) AppendReviewEvent(_ context.Context, data store.ReviewEventData) error {
	if m.failAppend {
		return errors.New("db locked")
	}
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
	n := 0
	for _, e := range m.reviewEvents {
		if e.Action == store.ActionRate {
			n++
		}
	}
	return n, nil
}

func (m *mockEventRepo) CompletedSessionCount(_ context.Context, _, _ string) (int, error) {
	return 0, nil
}

func flashcard(id string) catalog.Item {
	return catalog.Item{
		ID:        id,
		Kind:      catalog.KindFlashcard,
		Flashcard: &catalog.Flashcard{Front: "Q " + id, Back: "A " + id},
	}
}

func activity(id string) catalog.Item {
	return catalog.Item{
		ID:       id,
		Kind:     catalog.KindActivity,
		Activity: &catalog.Activity{Prompt: "Do " + id},
	}
}

func fixtureCourse() *catalog.Course {
	return &catalog.Course{
		ID:    testCourse,
		Title: "Fixture",
		Modules: []catalog.Module{
			{ID: "m1", Title: "One", Items: []catalog.Item{flashcard("f1"), flashcard("f2"), activity("a1")}},
			{ID: "m2", Title: "Two", Items: []catalog.Item{flashcard("f3"), activity("a2")}},
			{ID: "m3", Title: "Three", Items: []catalog.Item{flashcard("f4")}},
		},
	}
}

type fixture struct {
	svc      *Service
	progress *progress.Service
	repo     *mockEventRepo
	state    *State
}

func newFixture(t *testing.T, policy Policy) *fixture {
	t.Helper()
	cat, err := catalog.New([]*catalog.Course{fixtureCourse()})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	repo := &mockEventRepo{}
	prog := progress.NewService(testLearner, nil, repo)
	state := NewState()
	return &fixture{
		svc:      NewService(cat, prog, state, repo, policy),
		progress: prog,
		repo:     repo,
		state:    state,
	}
}

func (f *fixture) complete(t *testing.T, modules ...string) {
	t.Helper()
	for _, m := range modules {
		if err := f.progress.CompleteModule(context.Background(), testCourse, m); err != nil {
			t.Fatalf("complete %s: %v", m, err)
		}
	}
}
