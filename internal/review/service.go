// Package review implements the smart review core: per-chapter stats,
// next-item selection over unlocked material, and rating capture into
// the append-only event log.
package review

import (
	"github.com/sdey/revu/internal/catalog"
	"github.com/sdey/revu/internal/progress"
	"github.com/sdey/revu/internal/store"
)

// Service ties the catalog, completion state, and per-item counters
// together behind the selection and recording operations.
type Service struct {
	catalog  *catalog.Catalog
	progress *progress.Service
	state    *State
	events   store.EventRepo
	policy   Policy
}

// NewService builds the review service. A nil policy defaults to
// CoverageFirst.
func NewService(cat *catalog.Catalog, prog *progress.Service, state *State, events store.EventRepo, policy Policy) *Service {
	if policy == nil {
		policy = CoverageFirst{}
	}
	return &Service{
		catalog:  cat,
		progress: prog,
		state:    state,
		events:   events,
		policy:   policy,
	}
}

// Policy returns the active selection policy.
func (s *Service) Policy() Policy {
	return s.policy
}
