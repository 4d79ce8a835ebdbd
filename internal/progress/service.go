// Package progress tracks chapter completion per learner. Completing a
// chapter unlocks its items for smart review; resetting locks them
// again without touching review history.
package progress

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sdey/revu/internal/store"
)

// Service holds the in-memory completion state, restored from a
// snapshot and kept current by replaying and appending module events.
type Service struct {
	mu        sync.Mutex
	learnerID string
	events    store.EventRepo

	// completed maps course ID to the set of completed module IDs.
	completed map[string]map[string]bool
}

// NewService restores completion state from snapshot data. A nil
// snapshot starts from empty state.
func NewService(learnerID string, snap *store.SnapshotData, events store.EventRepo) *Service {
	s := &Service{
		learnerID: learnerID,
		events:    events,
		completed: make(map[string]map[string]bool),
	}
	if snap != nil {
		for courseID, modules := range snap.CompletedModules {
			set := make(map[string]bool, len(modules))
			for _, m := range modules {
				set[m] = true
			}
			s.completed[courseID] = set
		}
	}
	return s
}

// Replay applies module events recorded after the snapshot was taken.
// Records must be in sequence order.
func (s *Service) Replay(records []store.ModuleEventRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		switch r.Action {
		case store.ActionComplete:
			s.mark(r.CourseID, r.ModuleID)
		case store.ActionReset:
			s.unmark(r.CourseID, r.ModuleID)
		}
	}
}

// CompleteModule marks a chapter complete and records the transition.
// Completing an already-complete chapter is a no-op.
func (s *Service) CompleteModule(ctx context.Context, courseID, moduleID string) error {
	s.mu.Lock()
	if s.completed[courseID][moduleID] {
		s.mu.Unlock()
		return nil
	}
	s.mark(courseID, moduleID)
	s.mu.Unlock()

	err := s.events.AppendModuleEvent(ctx, store.ModuleEventData{
		LearnerID: s.learnerID,
		CourseID:  courseID,
		ModuleID:  moduleID,
		Action:    store.ActionComplete,
	})
	if err != nil {
		// Roll back so memory and log stay consistent.
		s.mu.Lock()
		s.unmark(courseID, moduleID)
		s.mu.Unlock()
		return fmt.Errorf("record module completion: %w", err)
	}
	return nil
}

// ResetModule clears a chapter's completion and records the transition.
// Resetting an incomplete chapter is a no-op.
func (s *Service) ResetModule(ctx context.Context, courseID, moduleID string) error {
	s.mu.Lock()
	if !s.completed[courseID][moduleID] {
		s.mu.Unlock()
		return nil
	}
	s.unmark(courseID, moduleID)
	s.mu.Unlock()

	err := s.events.AppendModuleEvent(ctx, store.ModuleEventData{
		LearnerID: s.learnerID,
		CourseID:  courseID,
		ModuleID:  moduleID,
		Action:    store.ActionReset,
	})
	if err != nil {
		s.mu.Lock()
		s.mark(courseID, moduleID)
		s.mu.Unlock()
		return fmt.Errorf("record module reset: %w", err)
	}
	return nil
}

// IsCompleted reports whether a chapter has been completed.
func (s *Service) IsCompleted(courseID, moduleID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed[courseID][moduleID]
}

// CompletedModules returns the completed module IDs for a course,
// sorted for stable output.
func (s *Service) CompletedModules(courseID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.completed[courseID]))
	for m := range s.completed[courseID] {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// SnapshotData writes the completion state into snap.
func (s *Service) SnapshotData(snap *store.SnapshotData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.CompletedModules == nil {
		snap.CompletedModules = make(map[string][]string, len(s.completed))
	}
	for courseID, set := range s.completed {
		modules := make([]string, 0, len(set))
		for m := range set {
			modules = append(modules, m)
		}
		sort.Strings(modules)
		snap.CompletedModules[courseID] = modules
	}
}

// mark and unmark assume s.mu is held.
func (s *Service) mark(courseID, moduleID string) {
	if s.completed[courseID] == nil {
		s.completed[courseID] = make(map[string]bool)
	}
	s.completed[courseID][moduleID] = true
}

func (s *Service) unmark(courseID, moduleID string) {
	delete(s.completed[courseID], moduleID)
}
