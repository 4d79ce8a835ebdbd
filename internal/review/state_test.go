package review

import (
	"testing"

	"github.com/sdey/revu/internal/store"
)

func rateRecord(seq int64, itemID, difficulty string) store.ReviewEventRecord {
	return store.ReviewEventRecord{
		Sequence: seq,
		ReviewEventData: store.ReviewEventData{
			LearnerID:  testLearner,
			CourseID:   testCourse,
			ItemID:     itemID,
			Action:     store.ActionRate,
			Difficulty: difficulty,
		},
	}
}

func TestReplayDerivesCountersFromRateEvents(t *testing.T) {
	st := NewState()
	st.Replay(testLearner, []store.ReviewEventRecord{
		rateRecord(1, "f1", "hard"),
		rateRecord(2, "f1", "easy"),
		rateRecord(3, "f2", "medium"),
		{
			Sequence: 4,
			ReviewEventData: store.ReviewEventData{
				LearnerID: testLearner, ItemID: "f1", Action: store.ActionSkip,
			},
		},
	})

	f1 := st.Item(testLearner, "f1")
	if f1.TimesServed != 2 || f1.LastDifficulty != "easy" || f1.LastServedSeq != 2 {
		t.Errorf("f1 state = %+v", f1)
	}
	f2 := st.Item(testLearner, "f2")
	if f2.TimesServed != 1 || f2.LastDifficulty != "medium" {
		t.Errorf("f2 state = %+v", f2)
	}
}

func TestRestoreThenReplayContinuesFromSnapshot(t *testing.T) {
	snap := &store.SnapshotData{
		Items: map[string]store.ItemReviewState{
			"f1": {TimesServed: 5, LastDifficulty: "hard", LastServedSeq: 40},
		},
	}

	st := NewState()
	st.Restore(testLearner, snap)
	st.Replay(testLearner, []store.ReviewEventRecord{rateRecord(41, "f1", "easy")})

	f1 := st.Item(testLearner, "f1")
	if f1.TimesServed != 6 || f1.LastDifficulty != "easy" || f1.LastServedSeq != 41 {
		t.Errorf("f1 state = %+v", f1)
	}
}

func TestSnapshotDataRoundTrip(t *testing.T) {
	st := NewState()
	st.applyRating(testLearner, "f1", Hard)
	st.applyRating(testLearner, "f2", Easy)
	st.applyRating(testLearner, "f1", Medium)

	var snap store.SnapshotData
	st.SnapshotData(testLearner, &snap)

	restored := NewState()
	restored.Restore(testLearner, &snap)

	f1 := restored.Item(testLearner, "f1")
	if f1.TimesServed != 2 || f1.LastDifficulty != "medium" {
		t.Errorf("restored f1 = %+v", f1)
	}
	f2 := restored.Item(testLearner, "f2")
	if f2.TimesServed != 1 || f2.LastDifficulty != "easy" {
		t.Errorf("restored f2 = %+v", f2)
	}
}

func TestLearnersAreIsolated(t *testing.T) {
	st := NewState()
	st.applyRating("alice", "f1", Hard)

	if got := st.Item("bob", "f1"); got.TimesServed != 0 {
		t.Errorf("bob inherited alice's state: %+v", got)
	}
}
