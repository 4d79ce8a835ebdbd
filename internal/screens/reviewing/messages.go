package reviewing

import (
	"github.com/sdey/revu/internal/review"
	"github.com/sdey/revu/internal/session"
)

// sessionStartedMsg carries the result of Controller.Start.
type sessionStartedMsg struct {
	Sel *review.Selection
	Err error
}

// itemServedMsg carries the result of a rate or skip, along with the
// item that was acted on before the controller advanced.
type itemServedMsg struct {
	Sel        *review.Selection
	Err        error
	Rated      *review.Selection
	Difficulty review.Difficulty
	Skipped    bool
}

// sessionEndedMsg carries the summary after Controller.End.
type sessionEndedMsg struct {
	Summary *session.Summary
	Err     error
}

// explainTickMsg polls the async explanation service.
type explainTickMsg struct{}
