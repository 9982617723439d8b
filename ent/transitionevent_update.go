// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amahle/famcheck/ent/predicate"
	"github.com/amahle/famcheck/ent/transitionevent"
)

// TransitionEventUpdate is the builder for updating TransitionEvent entities.
type TransitionEventUpdate struct {
	config
	hooks    []Hook
	mutation *TransitionEventMutation
}

// Where appends a list predicates to the TransitionEventUpdate builder.
func (teu *TransitionEventUpdate) Where(ps ...predicate.TransitionEvent) *TransitionEventUpdate {
	teu.mutation.Where(ps...)
	return teu
}

// SetAssessmentID sets the "assessment_id" field.
func (teu *TransitionEventUpdate) SetAssessmentID(s string) *TransitionEventUpdate {
	teu.mutation.SetAssessmentID(s)
	return teu
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (teu *TransitionEventUpdate) SetNillableAssessmentID(s *string) *TransitionEventUpdate {
	if s != nil {
		teu.SetAssessmentID(*s)
	}
	return teu
}

// SetFromState sets the "from_state" field.
func (teu *TransitionEventUpdate) SetFromState(s string) *TransitionEventUpdate {
	teu.mutation.SetFromState(s)
	return teu
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (teu *TransitionEventUpdate) SetNillableFromState(s *string) *TransitionEventUpdate {
	if s != nil {
		teu.SetFromState(*s)
	}
	return teu
}

// SetToState sets the "to_state" field.
func (teu *TransitionEventUpdate) SetToState(s string) *TransitionEventUpdate {
	teu.mutation.SetToState(s)
	return teu
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (teu *TransitionEventUpdate) SetNillableToState(s *string) *TransitionEventUpdate {
	if s != nil {
		teu.SetToState(*s)
	}
	return teu
}

// SetStep sets the "step" field.
func (teu *TransitionEventUpdate) SetStep(i int) *TransitionEventUpdate {
	teu.mutation.ResetStep()
	teu.mutation.SetStep(i)
	return teu
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (teu *TransitionEventUpdate) SetNillableStep(i *int) *TransitionEventUpdate {
	if i != nil {
		teu.SetStep(*i)
	}
	return teu
}

// AddStep adds i to the "step" field.
func (teu *TransitionEventUpdate) AddStep(i int) *TransitionEventUpdate {
	teu.mutation.AddStep(i)
	return teu
}

// SetTrigger sets the "trigger" field.
func (teu *TransitionEventUpdate) SetTrigger(s string) *TransitionEventUpdate {
	teu.mutation.SetTrigger(s)
	return teu
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (teu *TransitionEventUpdate) SetNillableTrigger(s *string) *TransitionEventUpdate {
	if s != nil {
		teu.SetTrigger(*s)
	}
	return teu
}

// Mutation returns the TransitionEventMutation object of the builder.
func (teu *TransitionEventUpdate) Mutation() *TransitionEventMutation {
	return teu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (teu *TransitionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, teu.sqlSave, teu.mutation, teu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (teu *TransitionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := teu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (teu *TransitionEventUpdate) Exec(ctx context.Context) error {
	_, err := teu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (teu *TransitionEventUpdate) ExecX(ctx context.Context) {
	if err := teu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (teu *TransitionEventUpdate) check() error {
	if v, ok := teu.mutation.AssessmentID(); ok {
		if err := transitionevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := teu.mutation.FromState(); ok {
		if err := transitionevent.FromStateValidator(v); err != nil {
			return &ValidationError{Name: "from_state", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.from_state": %w`, err)}
		}
	}
	if v, ok := teu.mutation.ToState(); ok {
		if err := transitionevent.ToStateValidator(v); err != nil {
			return &ValidationError{Name: "to_state", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.to_state": %w`, err)}
		}
	}
	if v, ok := teu.mutation.Trigger(); ok {
		if err := transitionevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (teu *TransitionEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := teu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(transitionevent.Table, transitionevent.Columns, sqlgraph.NewFieldSpec(transitionevent.FieldID, field.TypeInt))
	if ps := teu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := teu.mutation.AssessmentID(); ok {
		_spec.SetField(transitionevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := teu.mutation.FromState(); ok {
		_spec.SetField(transitionevent.FieldFromState, field.TypeString, value)
	}
	if value, ok := teu.mutation.ToState(); ok {
		_spec.SetField(transitionevent.FieldToState, field.TypeString, value)
	}
	if value, ok := teu.mutation.Step(); ok {
		_spec.SetField(transitionevent.FieldStep, field.TypeInt, value)
	}
	if value, ok := teu.mutation.AddedStep(); ok {
		_spec.AddField(transitionevent.FieldStep, field.TypeInt, value)
	}
	if value, ok := teu.mutation.Trigger(); ok {
		_spec.SetField(transitionevent.FieldTrigger, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, teu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transitionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	teu.mutation.done = true
	return n, nil
}

// TransitionEventUpdateOne is the builder for updating a single TransitionEvent entity.
type TransitionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransitionEventMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (teuo *TransitionEventUpdateOne) SetAssessmentID(s string) *TransitionEventUpdateOne {
	teuo.mutation.SetAssessmentID(s)
	return teuo
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (teuo *TransitionEventUpdateOne) SetNillableAssessmentID(s *string) *TransitionEventUpdateOne {
	if s != nil {
		teuo.SetAssessmentID(*s)
	}
	return teuo
}

// SetFromState sets the "from_state" field.
func (teuo *TransitionEventUpdateOne) SetFromState(s string) *TransitionEventUpdateOne {
	teuo.mutation.SetFromState(s)
	return teuo
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (teuo *TransitionEventUpdateOne) SetNillableFromState(s *string) *TransitionEventUpdateOne {
	if s != nil {
		teuo.SetFromState(*s)
	}
	return teuo
}

// SetToState sets the "to_state" field.
func (teuo *TransitionEventUpdateOne) SetToState(s string) *TransitionEventUpdateOne {
	teuo.mutation.SetToState(s)
	return teuo
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (teuo *TransitionEventUpdateOne) SetNillableToState(s *string) *TransitionEventUpdateOne {
	if s != nil {
		teuo.SetToState(*s)
	}
	return teuo
}

// SetStep sets the "step" field.
func (teuo *TransitionEventUpdateOne) SetStep(i int) *TransitionEventUpdateOne {
	teuo.mutation.ResetStep()
	teuo.mutation.SetStep(i)
	return teuo
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (teuo *TransitionEventUpdateOne) SetNillableStep(i *int) *TransitionEventUpdateOne {
	if i != nil {
		teuo.SetStep(*i)
	}
	return teuo
}

// AddStep adds i to the "step" field.
func (teuo *TransitionEventUpdateOne) AddStep(i int) *TransitionEventUpdateOne {
	teuo.mutation.AddStep(i)
	return teuo
}

// SetTrigger sets the "trigger" field.
func (teuo *TransitionEventUpdateOne) SetTrigger(s string) *TransitionEventUpdateOne {
	teuo.mutation.SetTrigger(s)
	return teuo
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (teuo *TransitionEventUpdateOne) SetNillableTrigger(s *string) *TransitionEventUpdateOne {
	if s != nil {
		teuo.SetTrigger(*s)
	}
	return teuo
}

// Mutation returns the TransitionEventMutation object of the builder.
func (teuo *TransitionEventUpdateOne) Mutation() *TransitionEventMutation {
	return teuo.mutation
}

// Where appends a list predicates to the TransitionEventUpdate builder.
func (teuo *TransitionEventUpdateOne) Where(ps ...predicate.TransitionEvent) *TransitionEventUpdateOne {
	teuo.mutation.Where(ps...)
	return teuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (teuo *TransitionEventUpdateOne) Select(field string, fields ...string) *TransitionEventUpdateOne {
	teuo.fields = append([]string{field}, fields...)
	return teuo
}

// Save executes the query and returns the updated TransitionEvent entity.
func (teuo *TransitionEventUpdateOne) Save(ctx context.Context) (*TransitionEvent, error) {
	return withHooks(ctx, teuo.sqlSave, teuo.mutation, teuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (teuo *TransitionEventUpdateOne) SaveX(ctx context.Context) *TransitionEvent {
	node, err := teuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (teuo *TransitionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := teuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (teuo *TransitionEventUpdateOne) ExecX(ctx context.Context) {
	if err := teuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (teuo *TransitionEventUpdateOne) check() error {
	if v, ok := teuo.mutation.AssessmentID(); ok {
		if err := transitionevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := teuo.mutation.FromState(); ok {
		if err := transitionevent.FromStateValidator(v); err != nil {
			return &ValidationError{Name: "from_state", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.from_state": %w`, err)}
		}
	}
	if v, ok := teuo.mutation.ToState(); ok {
		if err := transitionevent.ToStateValidator(v); err != nil {
			return &ValidationError{Name: "to_state", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.to_state": %w`, err)}
		}
	}
	if v, ok := teuo.mutation.Trigger(); ok {
		if err := transitionevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (teuo *TransitionEventUpdateOne) sqlSave(ctx context.Context) (_node *TransitionEvent, err error) {
	if err := teuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transitionevent.Table, transitionevent.Columns, sqlgraph.NewFieldSpec(transitionevent.FieldID, field.TypeInt))
	id, ok := teuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TransitionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := teuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transitionevent.FieldID)
		for _, f := range fields {
			if !transitionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transitionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := teuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := teuo.mutation.AssessmentID(); ok {
		_spec.SetField(transitionevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := teuo.mutation.FromState(); ok {
		_spec.SetField(transitionevent.FieldFromState, field.TypeString, value)
	}
	if value, ok := teuo.mutation.ToState(); ok {
		_spec.SetField(transitionevent.FieldToState, field.TypeString, value)
	}
	if value, ok := teuo.mutation.Step(); ok {
		_spec.SetField(transitionevent.FieldStep, field.TypeInt, value)
	}
	if value, ok := teuo.mutation.AddedStep(); ok {
		_spec.AddField(transitionevent.FieldStep, field.TypeInt, value)
	}
	if value, ok := teuo.mutation.Trigger(); ok {
		_spec.SetField(transitionevent.FieldTrigger, field.TypeString, value)
	}
	_node = &TransitionEvent{config: teuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, teuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transitionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	teuo.mutation.done = true
	return _node, nil
}
