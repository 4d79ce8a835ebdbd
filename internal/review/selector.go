package review

import (
	"context"
	"fmt"

	"github.com/sdey/revu/internal/catalog"
)

// Selection is the item chosen for the learner to review next.
type Selection struct {
	CourseID    string
	ModuleID    string
	ModuleTitle string
	Item        catalog.Item
	TimesServed int
}

// NextItem picks one item from the learner's unlocked modules,
// excluding the session's already-served IDs. It returns
// ErrNoUnlockedModules when no chapter is complete and ErrExhausted
// when every unlocked item is in served.
func (s *Service) NextItem(ctx context.Context, learnerID, courseID string, served map[string]bool) (*Selection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	course, ok := s.catalog.Course(courseID)
	if !ok {
		return nil, fmt.Errorf("course %s: %w", courseID, ErrUnknownCourse)
	}

	var cands []Candidate
	unlocked := false
	for i := range course.Modules {
		m := &course.Modules[i]
		if !s.progress.IsCompleted(courseID, m.ID) {
			continue
		}
		unlocked = true
		for j := range m.Items {
			it := &m.Items[j]
			if served[it.ID] {
				continue
			}
			st := s.state.Item(learnerID, it.ID)
			cands = append(cands, Candidate{
				ModuleID:       m.ID,
				ModuleIndex:    i,
				ItemID:         it.ID,
				Kind:           it.Kind,
				TimesServed:    st.TimesServed,
				LastServedSeq:  st.LastServedSeq,
				LastDifficulty: Difficulty(st.LastDifficulty),
			})
		}
	}

	if !unlocked {
		return nil, ErrNoUnlockedModules
	}
	if len(cands) == 0 {
		return nil, ErrExhausted
	}

	picked := s.policy.Pick(cands)
	module, _ := course.Module(picked.ModuleID)
	item, _, _ := course.Item(picked.ItemID)

	return &Selection{
		CourseID:    courseID,
		ModuleID:    module.ID,
		ModuleTitle: module.Title,
		Item:        *item,
		TimesServed: picked.TimesServed,
	}, nil
}
