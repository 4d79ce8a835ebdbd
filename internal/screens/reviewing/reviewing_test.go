package reviewing

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sdey/revu/internal/catalog"
	"github.com/sdey/revu/internal/progress"
	"github.com/sdey/revu/internal/review"
	"github.com/sdey/revu/internal/router"
	"github.com/sdey/revu/internal/screen"
	"github.com/sdey/revu/internal/screens/summary"
	"github.com/sdey/revu/internal/store"
)

const (
	testLearner = "learner-1"
	testCourse  = "c1"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	reviewEvents  []store.ReviewEventData
	sessionEvents []store.SessionEventData
	failReview    bool
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

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func fixtureCourse() *catalog.Course {
	return &catalog.Course{
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
}

func testReviewScreen(t *testing.T, unlock bool) (*ReviewScreen, *mockEventRepo) {
	t.Helper()
	course := fixtureCourse()
	cat, err := catalog.New([]*catalog.Course{course})
	if err != nil {
		t.Fatal(err)
	}

	repo := &mockEventRepo{}
	prog := progress.NewService(testLearner, nil, repo)
	if unlock {
		if err := prog.CompleteModule(context.Background(), testCourse, "m1"); err != nil {
			t.Fatal(err)
		}
	}
	svc := review.NewService(cat, prog, review.NewState(), repo, nil)
	return New(svc, repo, nil, course, testLearner, 0), repo
}

// start runs the screen's start command and feeds the result back in,
// the way the bubbletea runtime would.
func start(t *testing.T, r *ReviewScreen) {
	t.Helper()
	msg := r.startCmd()()
	r.Update(msg)
}

func TestReviewScreen_Title(t *testing.T) {
	r, _ := testReviewScreen(t, true)
	if r.Title() != "Review" {
		t.Errorf("Title = %q, want %q", r.Title(), "Review")
	}
}

func TestReviewScreen_BlockedWithoutUnlockedChapters(t *testing.T) {
	r, repo := testReviewScreen(t, false)
	start(t, r)

	if r.blockedMsg == "" {
		t.Fatal("expected a blocked message")
	}
	if r.WantsEsc() {
		t.Error("blocked screen should give Esc back to the router")
	}
	if len(repo.sessionEvents) != 0 {
		t.Error("blocked start must not record events")
	}

	_, cmd := r.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("any key on the blocked screen should pop")
	}
}

func TestReviewScreen_RevealGatesRating(t *testing.T) {
	r, repo := testReviewScreen(t, true)
	start(t, r)

	if cur := r.ctrl.Current(); cur == nil || cur.Item.Kind != catalog.KindFlashcard {
		t.Fatal("fixture should serve the flashcard first")
	}

	// Rating before reveal surfaces a hint and records nothing.
	_, cmd := r.Update(keyPress('1'))
	if cmd == nil {
		t.Fatal("expected a rate command")
	}
	r.Update(cmd())
	if r.hint == "" {
		t.Error("expected a reveal hint")
	}
	if len(repo.reviewEvents) != 0 {
		t.Error("gated rating must not record events")
	}

	// Reveal, then rate.
	r.Update(keyPress(' '))
	if !r.ctrl.Revealed() {
		t.Fatal("space should reveal the card")
	}
	_, cmd = r.Update(keyPress('1'))
	r.Update(cmd())
	if len(repo.reviewEvents) != 1 {
		t.Errorf("review events = %d, want 1", len(repo.reviewEvents))
	}
	if r.hint != "" {
		t.Error("hint should clear after a successful rating")
	}
}

func TestReviewScreen_SkipAdvances(t *testing.T) {
	r, repo := testReviewScreen(t, true)
	start(t, r)

	first := r.ctrl.Current().Item.ID
	_, cmd := r.Update(keyPress('s'))
	if cmd == nil {
		t.Fatal("expected a skip command")
	}
	r.Update(cmd())

	if cur := r.ctrl.Current(); cur == nil || cur.Item.ID == first {
		t.Error("skip should serve the next item")
	}
	if len(repo.reviewEvents) != 1 || repo.reviewEvents[0].Action != store.ActionSkip {
		t.Errorf("review events = %+v", repo.reviewEvents)
	}
}

func TestReviewScreen_EscConfirmsBeforeEnding(t *testing.T) {
	r, _ := testReviewScreen(t, true)
	start(t, r)

	if !r.WantsEsc() {
		t.Fatal("active session should claim Esc")
	}

	var scr screen.Screen = r
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	if !r.confirmEnd {
		t.Fatal("expected end confirmation")
	}

	scr, _ = scr.Update(keyPress('n'))
	if r.confirmEnd {
		t.Error("n should dismiss the confirmation")
	}

	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected an end command after confirmation")
	}

	endMsg := cmd()
	_, cmd = r.Update(endMsg)
	if cmd == nil {
		t.Fatal("expected a screen transition after the session ends")
	}
	rep, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := rep.Screen.(*summary.SummaryScreen); !ok {
		t.Error("expected the summary screen")
	}
}

func TestReviewScreen_ExhaustionEndsSession(t *testing.T) {
	r, repo := testReviewScreen(t, true)
	start(t, r)

	// Flashcard: reveal then rate.
	r.Update(keyPress(' '))
	_, cmd := r.Update(keyPress('2'))
	r.Update(cmd())

	// Activity: rate directly. The pool is exhausted afterwards, so the
	// screen should kick off the end command by itself.
	_, cmd = r.Update(keyPress('3'))
	_, cmd = r.Update(cmd())
	if !r.ending {
		t.Fatal("expected the screen to wrap up after exhaustion")
	}
	if cmd == nil {
		t.Fatal("expected an end command")
	}

	endMsg := cmd()
	ended, ok := endMsg.(sessionEndedMsg)
	if !ok {
		t.Fatalf("expected sessionEndedMsg, got %T", endMsg)
	}
	if ended.Summary == nil || !ended.Summary.Exhausted {
		t.Errorf("summary = %+v", ended.Summary)
	}

	last := repo.sessionEvents[len(repo.sessionEvents)-1]
	if last.Action != store.ActionEnd || last.ItemsReviewed != 2 {
		t.Errorf("end event = %+v", last)
	}
}

func TestReviewScreen_FailedRatingKeepsItem(t *testing.T) {
	r, repo := testReviewScreen(t, true)
	start(t, r)

	first := r.ctrl.Current().Item.ID
	r.Update(keyPress(' '))

	repo.failReview = true
	_, cmd := r.Update(keyPress('1'))
	r.Update(cmd())

	if r.hint == "" {
		t.Error("expected a retry hint")
	}
	if cur := r.ctrl.Current(); cur == nil || cur.Item.ID != first {
		t.Error("current item should stay up for retry")
	}

	repo.failReview = false
	_, cmd = r.Update(keyPress('1'))
	r.Update(cmd())
	if len(repo.reviewEvents) != 1 {
		t.Errorf("review events = %d after retry, want 1", len(repo.reviewEvents))
	}
}

func TestReviewScreen_SecondRatePressIgnoredWhileInFlight(t *testing.T) {
	r, repo := testReviewScreen(t, true)
	start(t, r)
	r.Update(keyPress(' '))

	// The first press dispatches the rating; repeats before the reply
	// lands must not issue a second controller call.
	_, first := r.Update(keyPress('1'))
	if first == nil {
		t.Fatal("expected a rate command")
	}
	if _, dup := r.Update(keyPress('1')); dup != nil {
		t.Fatal("duplicate press dispatched a second command")
	}
	if _, skip := r.Update(keyPress('s')); skip != nil {
		t.Fatal("skip dispatched while a rating was in flight")
	}

	r.Update(first())
	if len(repo.reviewEvents) != 1 {
		t.Fatalf("review events = %d, want 1", len(repo.reviewEvents))
	}

	// The reply re-arms the keys.
	if _, next := r.Update(keyPress('1')); next == nil {
		t.Error("expected rating to work again after the reply")
	}
}

func TestReviewScreen_HardCountWaitsForRecordedRating(t *testing.T) {
	r, repo := testReviewScreen(t, true)
	start(t, r)
	itemID := r.ctrl.Current().Item.ID

	// Gated rating: not revealed yet, so nothing may be counted.
	_, cmd := r.Update(keyPress('3'))
	r.Update(cmd())
	if r.hardCounts[itemID] != 0 {
		t.Errorf("hardCounts = %d after gated rating, want 0", r.hardCounts[itemID])
	}

	// Failed write: still nothing.
	r.Update(keyPress(' '))
	repo.failReview = true
	_, cmd = r.Update(keyPress('3'))
	r.Update(cmd())
	if r.hardCounts[itemID] != 0 {
		t.Errorf("hardCounts = %d after failed rating, want 0", r.hardCounts[itemID])
	}

	// Recorded rating counts once.
	repo.failReview = false
	_, cmd = r.Update(keyPress('3'))
	r.Update(cmd())
	if r.hardCounts[itemID] != 1 {
		t.Errorf("hardCounts = %d after recorded rating, want 1", r.hardCounts[itemID])
	}
}

func TestReviewScreen_KeyHints(t *testing.T) {
	r, _ := testReviewScreen(t, true)
	start(t, r)

	if len(r.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
