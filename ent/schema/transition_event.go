package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TransitionEvent records a single progression state change for an
// assessment: answer, skip, interlude, subject hand-off, completion.
type TransitionEvent struct {
	ent.Schema
}

func (TransitionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TransitionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty(),
		field.String("from_state").
			NotEmpty(),
		field.String("to_state").
			NotEmpty(),
		field.Int("step").
			Comment("Step index the transition fired at"),
		field.String("trigger").
			NotEmpty().
			Comment("answer, skip, interlude-ack, complete, next-subject"),
	}
}

func (TransitionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
	}
}
