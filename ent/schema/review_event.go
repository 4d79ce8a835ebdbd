package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records one review action on a single item: a difficulty
// rating or a skip. The log is append-only; exposure counters and
// chapter stats are derived from it.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Comment("Learner this action belongs to"),
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("course_id").
			NotEmpty().
			Comment("Owning course"),
		field.String("module_id").
			NotEmpty().
			Comment("Owning chapter"),
		field.String("item_id").
			NotEmpty().
			Comment("The reviewed item"),
		field.String("item_kind").
			NotEmpty().
			Comment("flashcard or activity"),
		field.String("action").
			NotEmpty().
			Comment("rate or skip"),
		field.String("difficulty").
			Default("").
			Comment("easy, medium, or hard (empty for skips)"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds the item was on screen"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "course_id"),
		index.Fields("item_id"),
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
