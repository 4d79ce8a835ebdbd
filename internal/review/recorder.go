package review

import (
	"context"
	"fmt"

	"github.com/sdey/revu/internal/store"
)

// RateItem records the learner's difficulty rating for an item. The
// event is appended first; counters only move once the write succeeds,
// so a failed call leaves state unchanged and can be retried.
func (s *Service) RateItem(ctx context.Context, learnerID, sessionID, courseID, itemID string, d Difficulty, timeMs int) error {
	if _, err := ParseDifficulty(string(d)); err != nil {
		return err
	}
	course, ok := s.catalog.Course(courseID)
	if !ok {
		return fmt.Errorf("course %s: %w", courseID, ErrUnknownCourse)
	}
	item, module, ok := course.Item(itemID)
	if !ok {
		return fmt.Errorf("item %s: %w", itemID, ErrUnknownItem)
	}
	if !s.progress.IsCompleted(courseID, module.ID) {
		return fmt.Errorf("module %s: %w", module.ID, ErrModuleLocked)
	}

	err := s.events.AppendReviewEvent(ctx, store.ReviewEventData{
		LearnerID:  learnerID,
		SessionID:  sessionID,
		CourseID:   courseID,
		ModuleID:   module.ID,
		ItemID:     itemID,
		ItemKind:   string(item.Kind),
		Action:     store.ActionRate,
		Difficulty: string(d),
		TimeMs:     timeMs,
	})
	if err != nil {
		return fmt.Errorf("record rating: %w", err)
	}

	s.state.applyRating(learnerID, itemID, d)
	return nil
}

// RecordSkip logs that the learner passed on an item without rating
// it. Skips leave the item's counters untouched.
func (s *Service) RecordSkip(ctx context.Context, learnerID, sessionID, courseID, itemID string, timeMs int) error {
	course, ok := s.catalog.Course(courseID)
	if !ok {
		return fmt.Errorf("course %s: %w", courseID, ErrUnknownCourse)
	}
	item, module, ok := course.Item(itemID)
	if !ok {
		return fmt.Errorf("item %s: %w", itemID, ErrUnknownItem)
	}
	if !s.progress.IsCompleted(courseID, module.ID) {
		return fmt.Errorf("module %s: %w", module.ID, ErrModuleLocked)
	}

	err := s.events.AppendReviewEvent(ctx, store.ReviewEventData{
		LearnerID: learnerID,
		SessionID: sessionID,
		CourseID:  courseID,
		ModuleID:  module.ID,
		ItemID:    itemID,
		ItemKind:  string(item.Kind),
		Action:    store.ActionSkip,
		TimeMs:    timeMs,
	})
	if err != nil {
		return fmt.Errorf("record skip: %w", err)
	}
	return nil
}
