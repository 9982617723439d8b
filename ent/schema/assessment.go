package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorryTagsSnapshot is the frozen copy of the household's worry tags taken
// when an assessment is created. Reports read this snapshot verbatim so that
// later edits to the live profile never rewrite history.
type WorryTagsSnapshot struct {
	Child    []string `json:"child,omitempty"`
	Personal []string `json:"personal,omitempty"`
	Family   []string `json:"family,omitempty"`
}

// DomainResult is one scored domain inside results_summary.
type DomainResult struct {
	Score  int    `json:"score"`
	Max    int    `json:"max"`
	Status string `json:"status"`
}

// Assessment is one questionnaire run for a single subject.
type Assessment struct {
	ent.Schema
}

func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID assigned by the store"),
		field.String("household_id").
			NotEmpty(),
		field.String("profile_id").
			Optional().
			Comment("Empty once the subject profile has been deleted; the run survives"),
		field.Enum("type").
			Values("checkup", "parent", "family"),
		field.Enum("status").
			Values("in_progress", "completed", "abandoned").
			Default("in_progress"),
		field.Int("current_step").
			Default(0),
		field.Int("total_steps"),
		field.JSON("worry_tags", WorryTagsSnapshot{}).
			Optional(),
		field.JSON("results_summary", map[string]DomainResult{}).
			Optional().
			Comment("Populated once completed; empty means not yet computed"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Assessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("household_id", "status"),
		index.Fields("profile_id", "type", "status"),
	}
}
