package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Answer is one stored response within an assessment. Values are persisted
// post-transform (reverse-scored questions are already inverted) and −1 marks
// a skipped question.
type Answer struct {
	ent.Schema
}

func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID assigned by the store"),
		field.String("assessment_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.String("question_code").
			NotEmpty().
			Comment("Stable instrument code, e.g. chk_03"),
		field.String("category").
			NotEmpty().
			Comment("Scoring domain this answer feeds"),
		field.Int("value").
			Comment("Stored (post-transform) value; -1 means skipped"),
		field.String("answer_type").
			NotEmpty().
			Comment("Scale the subject saw: likert5, impact4, yesno, agree6"),
		field.Int("step_number"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Answer) Indexes() []ent.Index {
	return []ent.Index{
		// Re-answering a question overwrites in place.
		index.Fields("assessment_id", "question_code").
			Unique(),
		index.Fields("assessment_id"),
	}
}
