// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "question_code", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "value", Type: field.TypeInt},
		{Name: "answer_type", Type: field.TypeString},
		{Name: "step_number", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answer_assessment_id_question_code",
				Unique:  true,
				Columns: []*schema.Column{AnswersColumns[1], AnswersColumns[3]},
			},
			{
				Name:    "answer_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[1]},
			},
		},
	}
	// AssessmentsColumns holds the columns for the "assessments" table.
	AssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "household_id", Type: field.TypeString},
		{Name: "profile_id", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"checkup", "parent", "family"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "completed", "abandoned"}, Default: "in_progress"},
		{Name: "current_step", Type: field.TypeInt, Default: 0},
		{Name: "total_steps", Type: field.TypeInt},
		{Name: "worry_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "results_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AssessmentsTable holds the schema information for the "assessments" table.
	AssessmentsTable = &schema.Table{
		Name:       "assessments",
		Columns:    AssessmentsColumns,
		PrimaryKey: []*schema.Column{AssessmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessment_household_id_status",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[1], AssessmentsColumns[4]},
			},
			{
				Name:    "assessment_profile_id_type_status",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[2], AssessmentsColumns[3], AssessmentsColumns[4]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "household_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"parent", "child", "partner", "sibling", "caregiver", "other"}},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "worry_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_household_id",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[1]},
			},
			{
				Name:    "profile_household_id_type",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[1], ProfilesColumns[2]},
			},
		},
	}
	// TransitionEventsColumns holds the columns for the "transition_events" table.
	TransitionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "from_state", Type: field.TypeString},
		{Name: "to_state", Type: field.TypeString},
		{Name: "step", Type: field.TypeInt},
		{Name: "trigger", Type: field.TypeString},
	}
	// TransitionEventsTable holds the schema information for the "transition_events" table.
	TransitionEventsTable = &schema.Table{
		Name:       "transition_events",
		Columns:    TransitionEventsColumns,
		PrimaryKey: []*schema.Column{TransitionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "transitionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TransitionEventsColumns[1]},
			},
			{
				Name:    "transitionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TransitionEventsColumns[2]},
			},
			{
				Name:    "transitionevent_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{TransitionEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswersTable,
		AssessmentsTable,
		ProfilesTable,
		TransitionEventsTable,
	}
)

func init() {
}
