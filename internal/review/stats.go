package review

import (
	"context"
	"fmt"

	"github.com/sdey/revu/internal/catalog"
)

// ModuleStats summarizes one chapter's review progress.
type ModuleStats struct {
	ModuleID string
	Title    string
	Unlocked bool

	Flashcards         int
	FlashcardsReviewed int
	Activities         int
	ActivitiesReviewed int
}

// Total returns the chapter's item count.
func (m ModuleStats) Total() int { return m.Flashcards + m.Activities }

// Reviewed returns how many of the chapter's items have been rated at
// least once.
func (m ModuleStats) Reviewed() int { return m.FlashcardsReviewed + m.ActivitiesReviewed }

// CourseStats summarizes a learner's standing in one course.
type CourseStats struct {
	CourseID    string
	CourseTitle string
	Modules     []ModuleStats

	// LifetimeReviews counts every rating the learner has ever
	// recorded, across all sessions and courses.
	LifetimeReviews int

	// Sessions counts the learner's finished review sessions for this
	// course.
	Sessions int
}

// UnlockedModules returns the IDs of the unlocked chapters, in course
// order.
func (cs *CourseStats) UnlockedModules() []string {
	var out []string
	for _, m := range cs.Modules {
		if m.Unlocked {
			out = append(out, m.ModuleID)
		}
	}
	return out
}

// UnlockedItemCount returns how many items are currently reviewable.
func (cs *CourseStats) UnlockedItemCount() int {
	n := 0
	for _, m := range cs.Modules {
		if m.Unlocked {
			n += m.Total()
		}
	}
	return n
}

// CourseStats computes per-chapter totals and reviewed counts for the
// learner. Reading stats never mutates state, so repeated calls return
// identical results until an event is recorded.
func (s *Service) CourseStats(ctx context.Context, learnerID, courseID string) (*CourseStats, error) {
	course, ok := s.catalog.Course(courseID)
	if !ok {
		return nil, fmt.Errorf("course %s: %w", courseID, ErrUnknownCourse)
	}

	cs := &CourseStats{
		CourseID:    course.ID,
		CourseTitle: course.Title,
		Modules:     make([]ModuleStats, 0, len(course.Modules)),
	}

	for i := range course.Modules {
		m := &course.Modules[i]
		ms := ModuleStats{
			ModuleID: m.ID,
			Title:    m.Title,
			Unlocked: s.progress.IsCompleted(courseID, m.ID),
		}
		var flashIDs, actIDs []string
		for j := range m.Items {
			it := &m.Items[j]
			switch it.Kind {
			case catalog.KindFlashcard:
				ms.Flashcards++
				flashIDs = append(flashIDs, it.ID)
			default:
				ms.Activities++
				actIDs = append(actIDs, it.ID)
			}
		}
		ms.FlashcardsReviewed = s.state.RatedCount(learnerID, flashIDs)
		ms.ActivitiesReviewed = s.state.RatedCount(learnerID, actIDs)
		cs.Modules = append(cs.Modules, ms)
	}

	lifetime, err := s.events.LifetimeReviewCount(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("lifetime review count: %w", err)
	}
	cs.LifetimeReviews = lifetime

	sessions, err := s.events.CompletedSessionCount(ctx, learnerID, courseID)
	if err != nil {
		return nil, fmt.Errorf("session count: %w", err)
	}
	cs.Sessions = sessions

	return cs, nil
}
