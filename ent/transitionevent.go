// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amahle/famcheck/ent/transitionevent"
)

// TransitionEvent is the model entity for the TransitionEvent schema.
type TransitionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// AssessmentID holds the value of the "assessment_id" field.
	AssessmentID string `json:"assessment_id,omitempty"`
	// FromState holds the value of the "from_state" field.
	FromState string `json:"from_state,omitempty"`
	// ToState holds the value of the "to_state" field.
	ToState string `json:"to_state,omitempty"`
	// Step index the transition fired at
	Step int `json:"step,omitempty"`
	// answer, skip, interlude-ack, complete, next-subject
	Trigger      string `json:"trigger,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TransitionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transitionevent.FieldID, transitionevent.FieldSequence, transitionevent.FieldStep:
			values[i] = new(sql.NullInt64)
		case transitionevent.FieldAssessmentID, transitionevent.FieldFromState, transitionevent.FieldToState, transitionevent.FieldTrigger:
			values[i] = new(sql.NullString)
		case transitionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TransitionEvent fields.
func (te *TransitionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transitionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			te.ID = int(value.Int64)
		case transitionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				te.Sequence = value.Int64
			}
		case transitionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				te.Timestamp = value.Time
			}
		case transitionevent.FieldAssessmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_id", values[i])
			} else if value.Valid {
				te.AssessmentID = value.String
			}
		case transitionevent.FieldFromState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_state", values[i])
			} else if value.Valid {
				te.FromState = value.String
			}
		case transitionevent.FieldToState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_state", values[i])
			} else if value.Valid {
				te.ToState = value.String
			}
		case transitionevent.FieldStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step", values[i])
			} else if value.Valid {
				te.Step = int(value.Int64)
			}
		case transitionevent.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				te.Trigger = value.String
			}
		default:
			te.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TransitionEvent.
// This includes values selected through modifiers, order, etc.
func (te *TransitionEvent) Value(name string) (ent.Value, error) {
	return te.selectValues.Get(name)
}

// Update returns a builder for updating this TransitionEvent.
// Note that you need to call TransitionEvent.Unwrap() before calling this method if this TransitionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (te *TransitionEvent) Update() *TransitionEventUpdateOne {
	return NewTransitionEventClient(te.config).UpdateOne(te)
}

// Unwrap unwraps the TransitionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (te *TransitionEvent) Unwrap() *TransitionEvent {
	_tx, ok := te.config.driver.(*txDriver)
	if !ok {
		panic("ent: TransitionEvent is not a transactional entity")
	}
	te.config.driver = _tx.drv
	return te
}

// String implements the fmt.Stringer.
func (te *TransitionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TransitionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", te.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", te.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(te.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("assessment_id=")
	builder.WriteString(te.AssessmentID)
	builder.WriteString(", ")
	builder.WriteString("from_state=")
	builder.WriteString(te.FromState)
	builder.WriteString(", ")
	builder.WriteString("to_state=")
	builder.WriteString(te.ToState)
	builder.WriteString(", ")
	builder.WriteString("step=")
	builder.WriteString(fmt.Sprintf("%v", te.Step))
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(te.Trigger)
	builder.WriteByte(')')
	return builder.String()
}

// TransitionEvents is a parsable slice of TransitionEvent.
type TransitionEvents []*TransitionEvent
