// Package session drives a review session: a state machine that hands
// out items one at a time, gates flashcard ratings behind reveal, and
// records lifecycle events.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sdey/revu/internal/catalog"
	"github.com/sdey/revu/internal/review"
	"github.com/sdey/revu/internal/store"
)

// Phase is the controller's lifecycle state.
type Phase int

const (
	PhaseIdle      Phase = iota // No session running
	PhaseReviewing              // Serving items
)

// DefaultCallTimeout bounds each store-touching call so a wedged
// database can't hang the UI.
const DefaultCallTimeout = 5 * time.Second

var (
	// ErrNoActiveSession means the operation needs a running session.
	ErrNoActiveSession = errors.New("no active session")

	// ErrSessionActive means Start was called while a session runs.
	ErrSessionActive = errors.New("session already active")

	// ErrNotRevealed means a flashcard was rated before its back was
	// shown.
	ErrNotRevealed = errors.New("flashcard not revealed")

	// ErrNoCurrentItem means rate or skip was called with nothing
	// served, typically after the pool is exhausted.
	ErrNoCurrentItem = errors.New("no current item")
)

// Controller runs one learner's review sessions over a single course.
type Controller struct {
	svc       *review.Service
	events    store.EventRepo
	learnerID string
	courseID  string
	timeout   time.Duration

	phase     Phase
	sessionID string
	startedAt time.Time

	served      map[string]bool
	current     *review.Selection
	revealed    bool
	itemShownAt time.Time
	reviewed    int
	skipped     int
	exhausted   bool
}

// NewController builds an idle controller. A zero timeout uses
// DefaultCallTimeout.
func NewController(svc *review.Service, events store.EventRepo, learnerID, courseID string, timeout time.Duration) *Controller {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return &Controller{
		svc:       svc,
		events:    events,
		learnerID: learnerID,
		courseID:  courseID,
		timeout:   timeout,
		phase:     PhaseIdle,
	}
}

// Phase returns the current lifecycle state.
func (c *Controller) Phase() Phase { return c.phase }

// SessionID returns the running session's UUID, empty when idle.
func (c *Controller) SessionID() string { return c.sessionID }

// Current returns the item being reviewed, nil when none is served.
func (c *Controller) Current() *review.Selection { return c.current }

// Revealed reports whether the current flashcard's back is visible.
// Activities are always considered revealed.
func (c *Controller) Revealed() bool {
	if c.current != nil && c.current.Item.Kind == catalog.KindActivity {
		return true
	}
	return c.revealed
}

// Exhausted reports whether every unlocked item has been served this
// session.
func (c *Controller) Exhausted() bool { return c.exhausted }

// Progress returns the session's rated and skipped counts.
func (c *Controller) Progress() (reviewed, skipped int) {
	return c.reviewed, c.skipped
}

// Start begins a new session and serves the first item. It fails
// without side effects when no chapter is unlocked.
func (c *Controller) Start(ctx context.Context) (*review.Selection, error) {
	if c.phase != PhaseIdle {
		return nil, ErrSessionActive
	}

	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	// Check eligibility before recording anything.
	served := make(map[string]bool)
	sel, err := c.svc.NextItem(ctx, c.learnerID, c.courseID, served)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	err = c.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: sessionID,
		LearnerID: c.learnerID,
		CourseID:  c.courseID,
		Action:    store.ActionStart,
	})
	if err != nil {
		return nil, fmt.Errorf("record session start: %w", err)
	}

	c.phase = PhaseReviewing
	c.sessionID = sessionID
	c.startedAt = time.Now()
	c.served = served
	c.reviewed = 0
	c.skipped = 0
	c.exhausted = false
	c.show(sel)
	return sel, nil
}

// Reveal shows the current flashcard's back. Revealing twice or
// revealing an activity is a no-op.
func (c *Controller) Reveal() error {
	if c.phase != PhaseReviewing {
		return ErrNoActiveSession
	}
	if c.current == nil {
		return ErrNoCurrentItem
	}
	c.revealed = true
	return nil
}

// Rate records the learner's difficulty for the current item and
// serves the next one. Flashcards must be revealed first. A nil
// return with nil error means the pool is exhausted.
func (c *Controller) Rate(ctx context.Context, d review.Difficulty) (*review.Selection, error) {
	if c.phase != PhaseReviewing {
		return nil, ErrNoActiveSession
	}
	if c.current == nil {
		return nil, ErrNoCurrentItem
	}
	if c.current.Item.Kind == catalog.KindFlashcard && !c.revealed {
		return nil, ErrNotRevealed
	}

	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	elapsed := int(time.Since(c.itemShownAt).Milliseconds())
	err := c.svc.RateItem(ctx, c.learnerID, c.sessionID, c.courseID, c.current.Item.ID, d, elapsed)
	if err != nil {
		// Current item stays up so the learner can retry the rating.
		return nil, err
	}

	c.served[c.current.Item.ID] = true
	c.reviewed++
	return c.advance(ctx)
}

// Skip passes on the current item without rating it and serves the
// next one. A nil return with nil error means the pool is exhausted.
func (c *Controller) Skip(ctx context.Context) (*review.Selection, error) {
	if c.phase != PhaseReviewing {
		return nil, ErrNoActiveSession
	}
	if c.current == nil {
		return nil, ErrNoCurrentItem
	}

	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	elapsed := int(time.Since(c.itemShownAt).Milliseconds())
	err := c.svc.RecordSkip(ctx, c.learnerID, c.sessionID, c.courseID, c.current.Item.ID, elapsed)
	if err != nil {
		return nil, err
	}

	c.served[c.current.Item.ID] = true
	c.skipped++
	return c.advance(ctx)
}

// End closes the session, records the end event, and returns the
// summary. The controller goes back to idle even if the event write
// fails; the summary is still returned alongside the error.
func (c *Controller) End(ctx context.Context) (*Summary, error) {
	if c.phase != PhaseReviewing {
		return nil, ErrNoActiveSession
	}

	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	duration := time.Since(c.startedAt)
	summary := &Summary{
		SessionID:     c.sessionID,
		CourseID:      c.courseID,
		ItemsReviewed: c.reviewed,
		ItemsSkipped:  c.skipped,
		Duration:      duration,
		Exhausted:     c.exhausted,
	}

	err := c.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:     c.sessionID,
		LearnerID:     c.learnerID,
		CourseID:      c.courseID,
		Action:        store.ActionEnd,
		ItemsReviewed: c.reviewed,
		ItemsSkipped:  c.skipped,
		DurationSecs:  int(duration.Seconds()),
	})

	c.reset()
	if err != nil {
		return summary, fmt.Errorf("record session end: %w", err)
	}
	return summary, nil
}

// advance fetches the next item, flagging exhaustion instead of
// surfacing it as an error.
func (c *Controller) advance(ctx context.Context) (*review.Selection, error) {
	sel, err := c.svc.NextItem(ctx, c.learnerID, c.courseID, c.served)
	if err != nil {
		if errors.Is(err, review.ErrExhausted) {
			c.current = nil
			c.revealed = false
			c.exhausted = true
			return nil, nil
		}
		return nil, err
	}
	c.show(sel)
	return sel, nil
}

func (c *Controller) show(sel *review.Selection) {
	c.current = sel
	c.revealed = false
	c.itemShownAt = time.Now()
}

func (c *Controller) reset() {
	c.phase = PhaseIdle
	c.sessionID = ""
	c.current = nil
	c.revealed = false
	c.served = nil
	c.exhausted = false
}

func (c *Controller) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}
