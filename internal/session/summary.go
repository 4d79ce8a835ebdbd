package session

import "time"

// Summary is the wrap-up shown when a session ends.
type Summary struct {
	SessionID     string
	CourseID      string
	ItemsReviewed int
	ItemsSkipped  int
	Duration      time.Duration
	Exhausted     bool
}

// Total returns how many items the learner saw.
func (s *Summary) Total() int {
	return s.ItemsReviewed + s.ItemsSkipped
}
