package store

import (
	"context"
	"fmt"

	"github.com/sdey/revu/ent"
	"github.com/sdey/revu/ent/moduleevent"
)

func (r *eventRepo) AppendModuleEvent(ctx context.Context, data ModuleEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ModuleEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetCourseID(data.CourseID).
		SetModuleID(data.ModuleID).
		SetAction(data.Action).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save module event: %w", err)
	}
	return nil
}

func (r *eventRepo) ModuleEventsAfter(ctx context.Context, learnerID string, after int64) ([]ModuleEventRecord, error) {
	events, err := r.client.ModuleEvent.Query().
		Where(
			moduleevent.LearnerID(learnerID),
			moduleevent.SequenceGT(after),
		).
		Order(ent.Asc(moduleevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query module events: %w", err)
	}

	records := make([]ModuleEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, ModuleEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ModuleEventData: ModuleEventData{
				LearnerID: e.LearnerID,
				CourseID:  e.CourseID,
				ModuleID:  e.ModuleID,
				Action:    e.Action,
			},
		})
	}
	return records, nil
}
