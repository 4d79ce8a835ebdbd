package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModuleEvent records a chapter completion transition. Completing a
// chapter unlocks its items for smart review.
type ModuleEvent struct {
	ent.Schema
}

func (ModuleEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ModuleEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Comment("Learner whose progress changed"),
		field.String("course_id").
			NotEmpty().
			Comment("Owning course"),
		field.String("module_id").
			NotEmpty().
			Comment("The chapter that changed state"),
		field.String("action").
			NotEmpty().
			Comment("complete or reset"),
	}
}

func (ModuleEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "course_id"),
		index.Fields("module_id"),
	}
}
