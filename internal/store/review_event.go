package store

import (
	"context"
	"fmt"

	"github.com/sdey/revu/ent"
	"github.com/sdey/revu/ent/reviewevent"
)

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetSessionID(data.SessionID).
		SetCourseID(data.CourseID).
		SetModuleID(data.ModuleID).
		SetItemID(data.ItemID).
		SetItemKind(data.ItemKind).
		SetAction(data.Action).
		SetTimeMs(data.TimeMs)

	if data.Difficulty != "" {
		builder = builder.SetDifficulty(data.Difficulty)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) ReviewEventsAfter(ctx context.Context, learnerID string, after int64) ([]ReviewEventRecord, error) {
	events, err := r.client.ReviewEvent.Query().
		Where(
			reviewevent.LearnerID(learnerID),
			reviewevent.SequenceGT(after),
		).
		Order(ent.Asc(reviewevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}

	records := make([]ReviewEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, ReviewEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ReviewEventData: ReviewEventData{
				LearnerID:  e.LearnerID,
				SessionID:  e.SessionID,
				CourseID:   e.CourseID,
				ModuleID:   e.ModuleID,
				ItemID:     e.ItemID,
				ItemKind:   e.ItemKind,
				Action:     e.Action,
				Difficulty: e.Difficulty,
				TimeMs:     e.TimeMs,
			},
		})
	}
	return records, nil
}

func (r *eventRepo) LifetimeReviewCount(ctx context.Context, learnerID string) (int, error) {
	count, err := r.client.ReviewEvent.Query().
		Where(
			reviewevent.LearnerID(learnerID),
			reviewevent.Action(ActionRate),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count review events: %w", err)
	}
	return count, nil
}
