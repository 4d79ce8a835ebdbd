package store

import (
	"context"
	"time"
)

// Review actions recorded in the event log.
const (
	ActionRate = "rate"
	ActionSkip = "skip"
)

// Module actions recorded in the event log.
const (
	ActionComplete = "complete"
	ActionReset    = "reset"
)

// Session actions recorded in the event log.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// ReviewEventData captures one review action on an item.
type ReviewEventData struct {
	LearnerID  string
	SessionID  string
	CourseID   string
	ModuleID   string
	ItemID     string
	ItemKind   string
	Action     string // rate or skip
	Difficulty string // empty for skips
	TimeMs     int
}

// ReviewEventRecord is a stored review event with its log position.
type ReviewEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	ReviewEventData
}

// ModuleEventData captures a chapter completion transition.
type ModuleEventData struct {
	LearnerID string
	CourseID  string
	ModuleID  string
	Action    string // complete or reset
}

// ModuleEventRecord is a stored module event with its log position.
type ModuleEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	ModuleEventData
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID     string
	LearnerID     string
	CourseID      string
	Action        string // start or end
	ItemsReviewed int
	ItemsSkipped  int
	DurationSecs  int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// ItemReviewState is the derived per-item review state.
type ItemReviewState struct {
	TimesServed    int    `json:"times_served"`
	LastDifficulty string `json:"last_difficulty,omitempty"`
	LastServedSeq  int64  `json:"last_served_seq"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version int `json:"version"`

	// CompletedModules maps course ID to the set of completed module IDs.
	CompletedModules map[string][]string `json:"completed_modules,omitempty"`

	// Items maps item ID to its derived review state.
	Items map[string]ItemReviewState `json:"items,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LearnerID string
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the learner's most recent snapshot, or nil if none exist.
	Latest(ctx context.Context, learnerID string) (*Snapshot, error)

	// Prune deletes all but the learner's N most recent snapshots.
	Prune(ctx context.Context, learnerID string, keep int) error
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendReviewEvent records a rating or skip.
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error

	// AppendModuleEvent records a chapter completion or reset.
	AppendModuleEvent(ctx context.Context, data ModuleEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ReviewEventsAfter returns the learner's review events with
	// sequence > after, in sequence order.
	ReviewEventsAfter(ctx context.Context, learnerID string, after int64) ([]ReviewEventRecord, error)

	// ModuleEventsAfter returns the learner's module events with
	// sequence > after, in sequence order.
	ModuleEventsAfter(ctx context.Context, learnerID string, after int64) ([]ModuleEventRecord, error)

	// LifetimeReviewCount returns the learner's total number of rated
	// items across all sessions.
	LifetimeReviewCount(ctx context.Context, learnerID string) (int, error)

	// CompletedSessionCount returns how many review sessions the
	// learner has finished for a course.
	CompletedSessionCount(ctx context.Context, learnerID, courseID string) (int, error)
}
