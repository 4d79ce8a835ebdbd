package store

import (
	"context"
	"fmt"

	"github.com/sdey/revu/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLearnerID(data.LearnerID).
		SetCourseID(data.CourseID).
		SetAction(data.Action).
		SetItemsReviewed(data.ItemsReviewed).
		SetItemsSkipped(data.ItemsSkipped).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) CompletedSessionCount(ctx context.Context, learnerID, courseID string) (int, error) {
	count, err := r.client.SessionEvent.Query().
		Where(
			sessionevent.LearnerID(learnerID),
			sessionevent.CourseID(courseID),
			sessionevent.Action(ActionEnd),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count session events: %w", err)
	}
	return count, nil
}
