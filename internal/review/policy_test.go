package review

import "testing"

func candidates() []Candidate {
	return []Candidate{
		{ModuleID: "m1", ModuleIndex: 0, ItemID: "b", TimesServed: 2, LastServedSeq: 5, LastDifficulty: Easy},
		{ModuleID: "m1", ModuleIndex: 0, ItemID: "a", TimesServed: 1, LastServedSeq: 8, LastDifficulty: Hard},
		{ModuleID: "m2", ModuleIndex: 1, ItemID: "c", TimesServed: 1, LastServedSeq: 3, LastDifficulty: Medium},
		{ModuleID: "m2", ModuleIndex: 1, ItemID: "d", TimesServed: 0},
	}
}

func TestCoverageFirstPicksLeastServed(t *testing.T) {
	got := CoverageFirst{}.Pick(candidates())
	if got.ItemID != "d" {
		t.Errorf("picked %s, want never-served d", got.ItemID)
	}
}

func TestCoverageFirstTieBreaksOnRecency(t *testing.T) {
	cands := candidates()[:3] // a, b, c remain; a and c tie on TimesServed
	got := CoverageFirst{}.Pick(cands)
	if got.ItemID != "c" {
		t.Errorf("picked %s, want least-recently-served c", got.ItemID)
	}
}

func TestCoverageFirstFinalTieBreakIsStable(t *testing.T) {
	cands := []Candidate{
		{ModuleIndex: 0, ItemID: "y"},
		{ModuleIndex: 0, ItemID: "x"},
	}
	for i := 0; i < 3; i++ {
		if got := (CoverageFirst{}).Pick(cands); got.ItemID != "x" {
			t.Fatalf("picked %s, want x by ID order", got.ItemID)
		}
	}
}

func TestHardFirstPrefersHardItems(t *testing.T) {
	got := HardFirst{}.Pick(candidates())
	if got.ItemID != "a" {
		t.Errorf("picked %s, want last-rated-hard a", got.ItemID)
	}
}

func TestHardFirstFallsBackToCoverageOrder(t *testing.T) {
	cands := []Candidate{
		{ModuleIndex: 0, ItemID: "p", TimesServed: 3, LastDifficulty: Easy},
		{ModuleIndex: 0, ItemID: "q", TimesServed: 1, LastDifficulty: Easy},
	}
	if got := (HardFirst{}).Pick(cands); got.ItemID != "q" {
		t.Errorf("picked %s, want q via coverage tie-break", got.ItemID)
	}
}

func TestPolicyByName(t *testing.T) {
	if got := PolicyByName("hard-first").Name(); got != "hard-first" {
		t.Errorf("PolicyByName(hard-first) = %s", got)
	}
	if got := PolicyByName("coverage-first").Name(); got != "coverage-first" {
		t.Errorf("PolicyByName(coverage-first) = %s", got)
	}
	if got := PolicyByName("").Name(); got != "coverage-first" {
		t.Errorf("default policy = %s, want coverage-first", got)
	}
}
