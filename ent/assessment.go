// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amahle/famcheck/ent/assessment"
	"github.com/amahle/famcheck/ent/schema"
)

// Assessment is the model entity for the Assessment schema.
type Assessment struct {
	config `json:"-"`
	// ID of the ent.
	// UUID assigned by the store
	ID string `json:"id,omitempty"`
	// HouseholdID holds the value of the "household_id" field.
	HouseholdID string `json:"household_id,omitempty"`
	// Empty once the subject profile has been deleted; the run survives
	ProfileID string `json:"profile_id,omitempty"`
	// Type holds the value of the "type" field.
	Type assessment.Type `json:"type,omitempty"`
	// Status holds the value of the "status" field.
	Status assessment.Status `json:"status,omitempty"`
	// CurrentStep holds the value of the "current_step" field.
	CurrentStep int `json:"current_step,omitempty"`
	// TotalSteps holds the value of the "total_steps" field.
	TotalSteps int `json:"total_steps,omitempty"`
	// WorryTags holds the value of the "worry_tags" field.
	WorryTags schema.WorryTagsSnapshot `json:"worry_tags,omitempty"`
	// Populated once completed; empty means not yet computed
	ResultsSummary map[string]schema.DomainResult `json:"results_summary,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Assessment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessment.FieldWorryTags, assessment.FieldResultsSummary:
			values[i] = new([]byte)
		case assessment.FieldCurrentStep, assessment.FieldTotalSteps:
			values[i] = new(sql.NullInt64)
		case assessment.FieldID, assessment.FieldHouseholdID, assessment.FieldProfileID, assessment.FieldType, assessment.FieldStatus:
			values[i] = new(sql.NullString)
		case assessment.FieldStartedAt, assessment.FieldCompletedAt, assessment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Assessment fields.
func (a *Assessment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				a.ID = value.String
			}
		case assessment.FieldHouseholdID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field household_id", values[i])
			} else if value.Valid {
				a.HouseholdID = value.String
			}
		case assessment.FieldProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				a.ProfileID = value.String
			}
		case assessment.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				a.Type = assessment.Type(value.String)
			}
		case assessment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				a.Status = assessment.Status(value.String)
			}
		case assessment.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				a.CurrentStep = int(value.Int64)
			}
		case assessment.FieldTotalSteps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_steps", values[i])
			} else if value.Valid {
				a.TotalSteps = int(value.Int64)
			}
		case assessment.FieldWorryTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field worry_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &a.WorryTags); err != nil {
					return fmt.Errorf("unmarshal field worry_tags: %w", err)
				}
			}
		case assessment.FieldResultsSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field results_summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &a.ResultsSummary); err != nil {
					return fmt.Errorf("unmarshal field results_summary: %w", err)
				}
			}
		case assessment.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				a.StartedAt = value.Time
			}
		case assessment.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				a.CompletedAt = new(time.Time)
				*a.CompletedAt = value.Time
			}
		case assessment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				a.UpdatedAt = value.Time
			}
		default:
			a.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Assessment.
// This includes values selected through modifiers, order, etc.
func (a *Assessment) Value(name string) (ent.Value, error) {
	return a.selectValues.Get(name)
}

// Update returns a builder for updating this Assessment.
// Note that you need to call Assessment.Unwrap() before calling this method if this Assessment
// was returned from a transaction, and the transaction was committed or rolled back.
func (a *Assessment) Update() *AssessmentUpdateOne {
	return NewAssessmentClient(a.config).UpdateOne(a)
}

// Unwrap unwraps the Assessment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (a *Assessment) Unwrap() *Assessment {
	_tx, ok := a.config.driver.(*txDriver)
	if !ok {
		panic("ent: Assessment is not a transactional entity")
	}
	a.config.driver = _tx.drv
	return a
}

// String implements the fmt.Stringer.
func (a *Assessment) String() string {
	var builder strings.Builder
	builder.WriteString("Assessment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", a.ID))
	builder.WriteString("household_id=")
	builder.WriteString(a.HouseholdID)
	builder.WriteString(", ")
	builder.WriteString("profile_id=")
	builder.WriteString(a.ProfileID)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", a.Type))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", a.Status))
	builder.WriteString(", ")
	builder.WriteString("current_step=")
	builder.WriteString(fmt.Sprintf("%v", a.CurrentStep))
	builder.WriteString(", ")
	builder.WriteString("total_steps=")
	builder.WriteString(fmt.Sprintf("%v", a.TotalSteps))
	builder.WriteString(", ")
	builder.WriteString("worry_tags=")
	builder.WriteString(fmt.Sprintf("%v", a.WorryTags))
	builder.WriteString(", ")
	builder.WriteString("results_summary=")
	builder.WriteString(fmt.Sprintf("%v", a.ResultsSummary))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(a.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := a.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(a.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Assessments is a parsable slice of Assessment.
type Assessments []*Assessment
