package review

import (
	"sort"

	"github.com/sdey/revu/internal/catalog"
)

// Candidate is an unlocked, not-yet-served item the policy can pick.
type Candidate struct {
	ModuleID    string
	ModuleIndex int // position of the module in the course
	ItemID      string
	Kind        catalog.ItemKind

	TimesServed    int
	LastServedSeq  int64
	LastDifficulty Difficulty
}

// Policy decides which candidate to serve next. Pick is only called
// with a non-empty slice and must be deterministic for a given input.
type Policy interface {
	Name() string
	Pick(cands []Candidate) Candidate
}

// CoverageFirst favors breadth: the least-served item wins, ties break
// to the least recently served, then module order, then item ID. With
// a session's served set excluded, every unlocked item is shown once
// before any item repeats.
type CoverageFirst struct{}

func (CoverageFirst) Name() string { return "coverage-first" }

func (CoverageFirst) Pick(cands []Candidate) Candidate {
	best := cands[0]
	for _, c := range cands[1:] {
		if coverageLess(c, best) {
			best = c
		}
	}
	return best
}

func coverageLess(a, b Candidate) bool {
	if a.TimesServed != b.TimesServed {
		return a.TimesServed < b.TimesServed
	}
	if a.LastServedSeq != b.LastServedSeq {
		return a.LastServedSeq < b.LastServedSeq
	}
	if a.ModuleIndex != b.ModuleIndex {
		return a.ModuleIndex < b.ModuleIndex
	}
	return a.ItemID < b.ItemID
}

// HardFirst surfaces struggling material: items last rated hard come
// first, then medium, then the rest, with coverage order breaking ties
// inside each band. Starvation stays bounded because served items are
// excluded until the session has cycled through everything.
type HardFirst struct{}

func (HardFirst) Name() string { return "hard-first" }

func (HardFirst) Pick(cands []Candidate) Candidate {
	sorted := make([]Candidate, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		bi, bj := difficultyBand(sorted[i].LastDifficulty), difficultyBand(sorted[j].LastDifficulty)
		if bi != bj {
			return bi < bj
		}
		return coverageLess(sorted[i], sorted[j])
	})
	return sorted[0]
}

func difficultyBand(d Difficulty) int {
	switch d {
	case Hard:
		return 0
	case Medium:
		return 1
	default:
		return 2
	}
}

// PolicyByName returns the named policy, defaulting to CoverageFirst.
func PolicyByName(name string) Policy {
	switch name {
	case "hard-first":
		return HardFirst{}
	default:
		return CoverageFirst{}
	}
}
