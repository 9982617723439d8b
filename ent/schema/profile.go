package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is a household member: a child being screened, a caregiver,
// or another adult in the home.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID assigned by the store"),
		field.String("household_id").
			NotEmpty().
			Comment("Owning household"),
		field.Enum("type").
			Values("parent", "child", "partner", "sibling", "caregiver", "other"),
		field.Time("date_of_birth").
			Optional().
			Nillable(),
		field.JSON("worry_tags", []string{}).
			Optional().
			Comment("Live caregiver-selected concern labels; assessments freeze their own copy"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("household_id"),
		index.Fields("household_id", "type"),
	}
}
