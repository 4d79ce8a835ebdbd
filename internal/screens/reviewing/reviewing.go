// Package reviewing is the active review session screen. It drives the
// session controller one keypress at a time: reveal, rate, skip, end.
package reviewing

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sdey/revu/internal/catalog"
	"github.com/sdey/revu/internal/explain"
	"github.com/sdey/revu/internal/review"
	"github.com/sdey/revu/internal/router"
	"github.com/sdey/revu/internal/screen"
	"github.com/sdey/revu/internal/screens/summary"
	"github.com/sdey/revu/internal/session"
	"github.com/sdey/revu/internal/store"
	"github.com/sdey/revu/internal/ui/components"
	"github.com/sdey/revu/internal/ui/layout"
)

// explainPollInterval is how often the screen checks for a finished
// explanation; explainPollLimit caps the polling after a request.
const (
	explainPollInterval = 300 * time.Millisecond
	explainPollLimit    = 100
)

// ReviewScreen implements screen.Screen for an active session.
type ReviewScreen struct {
	ctrl       *session.Controller
	explainSvc *explain.Service
	course     *catalog.Course

	errMsg     string
	blockedMsg string
	hint       string
	confirmEnd bool
	ending     bool
	submitting bool

	hardCounts   map[string]int
	explanation  *explain.Explanation
	showExplain  bool
	explainPolls int

	spin components.Spinner
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a review screen and its controller for one course.
func New(svc *review.Service, events store.EventRepo, explainSvc *explain.Service, course *catalog.Course, learnerID string, timeout time.Duration) *ReviewScreen {
	return &ReviewScreen{
		ctrl:       session.NewController(svc, events, learnerID, course.ID, timeout),
		explainSvc: explainSvc,
		course:     course,
		hardCounts: make(map[string]int),
		spin:       components.NewSpinner(),
	}
}

func (r *ReviewScreen) Init() tea.Cmd {
	r.submitting = true
	return tea.Batch(r.startCmd(), r.spin.Init())
}

func (r *ReviewScreen) Title() string {
	return "Review"
}

// WantsEsc keeps Esc on this screen so a running session can confirm
// before ending.
func (r *ReviewScreen) WantsEsc() bool {
	return r.errMsg == "" && r.blockedMsg == ""
}

func (r *ReviewScreen) KeyHints() []layout.KeyHint {
	switch {
	case r.errMsg != "" || r.blockedMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case r.confirmEnd:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case r.showExplain:
		return []layout.KeyHint{{Key: "any key", Description: "Dismiss"}}
	}

	hints := []layout.KeyHint{}
	if cur := r.ctrl.Current(); cur != nil {
		if cur.Item.Kind == catalog.KindFlashcard && !r.ctrl.Revealed() {
			hints = append(hints, layout.KeyHint{Key: "Space", Description: "Reveal"})
		} else {
			hints = append(hints,
				layout.KeyHint{Key: "1", Description: "Easy"},
				layout.KeyHint{Key: "2", Description: "Medium"},
				layout.KeyHint{Key: "3", Description: "Hard"},
				layout.KeyHint{Key: "S", Description: "Skip"},
			)
		}
	}
	if r.explanation != nil {
		hints = append(hints, layout.KeyHint{Key: "X", Description: "Explanation"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "End"})
	return hints
}

func (r *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		return r.handleStarted(msg)
	case itemServedMsg:
		return r.handleServed(msg)
	case sessionEndedMsg:
		return r.handleEnded(msg)
	case explainTickMsg:
		return r.handleExplainTick()
	case tea.KeyMsg:
		return r.handleKey(msg)
	}

	// Keep the spinner animating while waiting on the store.
	if r.waiting() {
		var cmd tea.Cmd
		r.spin, cmd = r.spin.Update(msg)
		return r, cmd
	}
	return r, nil
}

// waiting reports whether the screen is between items with nothing to
// interact with.
func (r *ReviewScreen) waiting() bool {
	return r.ending ||
		(r.ctrl.Current() == nil && r.errMsg == "" && r.blockedMsg == "")
}

func (r *ReviewScreen) handleStarted(msg sessionStartedMsg) (screen.Screen, tea.Cmd) {
	r.submitting = false
	if msg.Err != nil {
		if errors.Is(msg.Err, review.ErrNoUnlockedModules) {
			r.blockedMsg = "No chapters are unlocked yet. Mark a chapter complete to start reviewing."
			return r, nil
		}
		if errors.Is(msg.Err, review.ErrExhausted) {
			r.blockedMsg = "Nothing to review right now."
			return r, nil
		}
		r.errMsg = msg.Err.Error()
	}
	return r, nil
}

func (r *ReviewScreen) handleServed(msg itemServedMsg) (screen.Screen, tea.Cmd) {
	r.submitting = false
	if msg.Err != nil {
		if errors.Is(msg.Err, session.ErrNotRevealed) {
			r.hint = "Reveal the answer before rating."
			return r, nil
		}
		// Rating failures keep the current item so it can be retried.
		r.hint = "Could not record that. Try again."
		return r, nil
	}
	r.hint = ""

	var cmds []tea.Cmd
	if msg.Rated != nil && msg.Difficulty == review.Hard {
		// Counted only once the rating is actually recorded.
		r.hardCounts[msg.Rated.Item.ID]++
		if r.explainSvc != nil {
			cmds = append(cmds, r.requestExplanation(msg.Rated))
		}
	}

	if msg.Sel == nil && r.ctrl.Exhausted() {
		r.ending = true
		cmds = append(cmds, r.endCmd())
	}
	return r, tea.Batch(cmds...)
}

func (r *ReviewScreen) handleEnded(msg sessionEndedMsg) (screen.Screen, tea.Cmd) {
	r.submitting = false
	if msg.Summary == nil {
		if msg.Err != nil {
			r.errMsg = msg.Err.Error()
		}
		return r, nil
	}
	sum := msg.Summary
	return r, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (r *ReviewScreen) handleExplainTick() (screen.Screen, tea.Cmd) {
	if r.explainSvc == nil || r.explainPolls <= 0 {
		return r, nil
	}
	if exp, ok := r.explainSvc.Consume(); ok {
		r.explanation = exp
		r.explainPolls = 0
		return r, nil
	}
	r.explainPolls--
	if r.explainPolls == 0 {
		return r, nil
	}
	return r, explainTick()
}

func (r *ReviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if r.errMsg != "" || r.blockedMsg != "" {
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if r.showExplain {
		r.showExplain = false
		return r, nil
	}

	if r.confirmEnd {
		switch key {
		case "y", "Y":
			if r.submitting {
				return r, nil
			}
			r.confirmEnd = false
			r.ending = true
			return r, r.endCmd()
		case "n", "N", "esc":
			r.confirmEnd = false
		}
		return r, nil
	}

	if r.ending {
		return r, nil
	}

	switch key {
	case "esc":
		r.confirmEnd = true
		return r, nil
	case " ", "space", "enter":
		if r.ctrl.Current() != nil {
			r.ctrl.Reveal()
			r.hint = ""
		}
		return r, nil
	case "1":
		return r, r.rateCmd(review.Easy)
	case "2":
		return r, r.rateCmd(review.Medium)
	case "3":
		return r, r.rateCmd(review.Hard)
	case "s", "S":
		return r, r.skipCmd()
	case "x", "X":
		if r.explanation != nil {
			r.showExplain = true
		}
		return r, nil
	}
	return r, nil
}

func (r *ReviewScreen) startCmd() tea.Cmd {
	return func() tea.Msg {
		sel, err := r.ctrl.Start(context.Background())
		return sessionStartedMsg{Sel: sel, Err: err}
	}
}

// rateCmd dispatches a rating unless one is already in flight. The
// controller is not safe for concurrent calls, so the keys that issue
// commands stay dead until the reply message lands.
func (r *ReviewScreen) rateCmd(d review.Difficulty) tea.Cmd {
	rated := r.ctrl.Current()
	if rated == nil || r.submitting {
		return nil
	}
	r.submitting = true
	return func() tea.Msg {
		sel, err := r.ctrl.Rate(context.Background(), d)
		return itemServedMsg{Sel: sel, Err: err, Rated: rated, Difficulty: d}
	}
}

func (r *ReviewScreen) skipCmd() tea.Cmd {
	if r.ctrl.Current() == nil || r.submitting {
		return nil
	}
	r.submitting = true
	return func() tea.Msg {
		sel, err := r.ctrl.Skip(context.Background())
		return itemServedMsg{Sel: sel, Err: err, Skipped: true}
	}
}

func (r *ReviewScreen) endCmd() tea.Cmd {
	r.submitting = true
	return func() tea.Msg {
		sum, err := r.ctrl.End(context.Background())
		return sessionEndedMsg{Summary: sum, Err: err}
	}
}

// requestExplanation kicks off async generation for an item the
// learner just rated hard and starts polling for the result.
func (r *ReviewScreen) requestExplanation(rated *review.Selection) tea.Cmd {
	r.explanation = nil
	r.explainSvc.Request(context.Background(), explain.Input{
		CourseTitle:    r.course.Title,
		ModuleTitle:    rated.ModuleTitle,
		Item:           rated.Item,
		TimesRatedHard: r.hardCounts[rated.Item.ID],
	})
	r.explainPolls = explainPollLimit
	return explainTick()
}

func explainTick() tea.Cmd {
	return tea.Tick(explainPollInterval, func(time.Time) tea.Msg {
		return explainTickMsg{}
	})
}
