package review

import (
	"sync"

	"github.com/sdey/revu/internal/store"
)

// State holds the derived per-item review counters for each learner,
// restored from a snapshot and kept current by replaying and applying
// review events.
type State struct {
	mu       sync.Mutex
	learners map[string]*learnerState
}

type learnerState struct {
	items map[string]store.ItemReviewState
	clock int64 // highest sequence applied, advances on live serves
}

// NewState returns empty review state.
func NewState() *State {
	return &State{learners: make(map[string]*learnerState)}
}

// Restore loads a learner's item state from snapshot data. A nil
// snapshot starts the learner from empty state.
func (st *State) Restore(learnerID string, snap *store.SnapshotData) {
	st.mu.Lock()
	defer st.mu.Unlock()
	ls := st.learner(learnerID)
	if snap == nil {
		return
	}
	for itemID, s := range snap.Items {
		ls.items[itemID] = s
		if s.LastServedSeq > ls.clock {
			ls.clock = s.LastServedSeq
		}
	}
}

// Replay applies review events recorded after the snapshot was taken.
// Records must be in sequence order.
func (st *State) Replay(learnerID string, records []store.ReviewEventRecord) {
	st.mu.Lock()
	defer st.mu.Unlock()
	ls := st.learner(learnerID)
	for _, r := range records {
		if r.Action != store.ActionRate {
			continue
		}
		s := ls.items[r.ItemID]
		s.TimesServed++
		s.LastDifficulty = r.Difficulty
		s.LastServedSeq = r.Sequence
		ls.items[r.ItemID] = s
		if r.Sequence > ls.clock {
			ls.clock = r.Sequence
		}
	}
}

// Item returns the learner's state for one item. Unseen items return
// the zero state.
func (st *State) Item(learnerID, itemID string) store.ItemReviewState {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.learner(learnerID).items[itemID]
}

// RatedCount returns how many of the given item IDs the learner has
// rated at least once.
func (st *State) RatedCount(learnerID string, itemIDs []string) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	ls := st.learner(learnerID)
	n := 0
	for _, id := range itemIDs {
		if ls.items[id].LastDifficulty != "" {
			n++
		}
	}
	return n
}

// applyRating updates the item's counters after its rating event has
// been durably appended.
func (st *State) applyRating(learnerID, itemID string, d Difficulty) {
	st.mu.Lock()
	defer st.mu.Unlock()
	ls := st.learner(learnerID)
	ls.clock++
	s := ls.items[itemID]
	s.TimesServed++
	s.LastDifficulty = string(d)
	s.LastServedSeq = ls.clock
	ls.items[itemID] = s
}

// SnapshotData writes the learner's item state into snap.
func (st *State) SnapshotData(learnerID string, snap *store.SnapshotData) {
	st.mu.Lock()
	defer st.mu.Unlock()
	ls := st.learner(learnerID)
	if snap.Items == nil {
		snap.Items = make(map[string]store.ItemReviewState, len(ls.items))
	}
	for itemID, s := range ls.items {
		snap.Items[itemID] = s
	}
}

// learner assumes st.mu is held.
func (st *State) learner(learnerID string) *learnerState {
	ls, ok := st.learners[learnerID]
	if !ok {
		ls = &learnerState{items: make(map[string]store.ItemReviewState)}
		st.learners[learnerID] = ls
	}
	return ls
}
