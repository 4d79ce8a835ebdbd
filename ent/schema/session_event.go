package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records review session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("learner_id").
			NotEmpty().
			Comment("Learner running the session"),
		field.String("course_id").
			NotEmpty().
			Comment("Course being reviewed"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("items_reviewed").
			Default(0).
			Comment("Rated items (on end only)"),
		field.Int("items_skipped").
			Default(0).
			Comment("Skipped items (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
