package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/sdey/revu/internal/store"
)

// mockEventRepo records appended events and can simulate write failure.
type mockEventRepo struct {
	moduleEvents []store.ModuleEventData
	failAppend   bool
}

func (m *mockEventRepo) AppendReviewEvent(_ context.Context, _ store.ReviewEventData) error {
	return nil
}

func (m *mockEventRepo) AppendModuleEvent(_ context.Context, data store.ModuleEventData) error {
	if m.failAppend {
		return errors.New("db locked")
	}
	m.moduleEvents = append(m.moduleEvents, data)
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
	return 0, nil
}

func (m *mockEventRepo) CompletedSessionCount(_ context.Context, _, _ string) (int, error) {
	return 0, nil
}

func TestCompleteModuleRecordsEvent(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewService("learner-1", nil, repo)

	if err := svc.CompleteModule(context.Background(), "c1", "m1"); err != nil {
		t.Fatalf("CompleteModule: %v", err)
	}

	if !svc.IsCompleted("c1", "m1") {
		t.Error("expected m1 to be completed")
	}
	if len(repo.moduleEvents) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.moduleEvents))
	}
	e := repo.moduleEvents[0]
	if e.Action != store.ActionComplete || e.ModuleID != "m1" || e.LearnerID != "learner-1" {
		t.Errorf("unexpected event: %+v", e)
	}
}

func TestCompleteModuleIsIdempotent(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewService("learner-1", nil, repo)
	ctx := context.Background()

	if err := svc.CompleteModule(ctx, "c1", "m1"); err != nil {
		t.Fatal(err)
	}
	if err := svc.CompleteModule(ctx, "c1", "m1"); err != nil {
		t.Fatal(err)
	}

	if len(repo.moduleEvents) != 1 {
		t.Errorf("expected 1 event after repeat completion, got %d", len(repo.moduleEvents))
	}
}

func TestResetModule(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewService("learner-1", nil, repo)
	ctx := context.Background()

	if err := svc.CompleteModule(ctx, "c1", "m1"); err != nil {
		t.Fatal(err)
	}
	if err := svc.ResetModule(ctx, "c1", "m1"); err != nil {
		t.Fatal(err)
	}

	if svc.IsCompleted("c1", "m1") {
		t.Error("expected m1 to be reset")
	}
	if len(repo.moduleEvents) != 2 {
		t.Fatalf("expected 2 events, got %d", len(repo.moduleEvents))
	}
	if repo.moduleEvents[1].Action != store.ActionReset {
		t.Errorf("second event action = %q", repo.moduleEvents[1].Action)
	}

	// Resetting again is a no-op.
	if err := svc.ResetModule(ctx, "c1", "m1"); err != nil {
		t.Fatal(err)
	}
	if len(repo.moduleEvents) != 2 {
		t.Errorf("expected no event for repeat reset, got %d", len(repo.moduleEvents))
	}
}

func TestCompleteModuleRollsBackOnWriteFailure(t *testing.T) {
	repo := &mockEventRepo{failAppend: true}
	svc := NewService("learner-1", nil, repo)

	if err := svc.CompleteModule(context.Background(), "c1", "m1"); err == nil {
		t.Fatal("expected error from failed append")
	}
	if svc.IsCompleted("c1", "m1") {
		t.Error("completion should roll back when the event write fails")
	}
}

func TestRestoreFromSnapshotAndReplay(t *testing.T) {
	snap := &store.SnapshotData{
		CompletedModules: map[string][]string{"c1": {"m1", "m2"}},
	}
	svc := NewService("learner-1", snap, &mockEventRepo{})

	svc.Replay([]store.ModuleEventRecord{
		{Sequence: 10, ModuleEventData: store.ModuleEventData{CourseID: "c1", ModuleID: "m2", Action: store.ActionReset}},
		{Sequence: 11, ModuleEventData: store.ModuleEventData{CourseID: "c1", ModuleID: "m3", Action: store.ActionComplete}},
	})

	got := svc.CompletedModules("c1")
	want := []string{"m1", "m3"}
	if len(got) != len(want) {
		t.Fatalf("CompletedModules = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CompletedModules = %v, want %v", got, want)
			break
		}
	}
}

func TestSnapshotDataRoundTrip(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewService("learner-1", nil, repo)
	ctx := context.Background()

	_ = svc.CompleteModule(ctx, "c1", "m2")
	_ = svc.CompleteModule(ctx, "c1", "m1")

	var snap store.SnapshotData
	svc.SnapshotData(&snap)

	restored := NewService("learner-1", &snap, repo)
	if !restored.IsCompleted("c1", "m1") || !restored.IsCompleted("c1", "m2") {
		t.Error("restored service lost completion state")
	}
}
