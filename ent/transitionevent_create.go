// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amahle/famcheck/ent/transitionevent"
)

// TransitionEventCreate is the builder for creating a TransitionEvent entity.
type TransitionEventCreate struct {
	config
	mutation *TransitionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (tec *TransitionEventCreate) SetSequence(i int64) *TransitionEventCreate {
	tec.mutation.SetSequence(i)
	return tec
}

// SetTimestamp sets the "timestamp" field.
func (tec *TransitionEventCreate) SetTimestamp(t time.Time) *TransitionEventCreate {
	tec.mutation.SetTimestamp(t)
	return tec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (tec *TransitionEventCreate) SetNillableTimestamp(t *time.Time) *TransitionEventCreate {
	if t != nil {
		tec.SetTimestamp(*t)
	}
	return tec
}

// SetAssessmentID sets the "assessment_id" field.
func (tec *TransitionEventCreate) SetAssessmentID(s string) *TransitionEventCreate {
	tec.mutation.SetAssessmentID(s)
	return tec
}

// SetFromState sets the "from_state" field.
func (tec *TransitionEventCreate) SetFromState(s string) *TransitionEventCreate {
	tec.mutation.SetFromState(s)
	return tec
}

// SetToState sets the "to_state" field.
func (tec *TransitionEventCreate) SetToState(s string) *TransitionEventCreate {
	tec.mutation.SetToState(s)
	return tec
}

// SetStep sets the "step" field.
func (tec *TransitionEventCreate) SetStep(i int) *TransitionEventCreate {
	tec.mutation.SetStep(i)
	return tec
}

// SetTrigger sets the "trigger" field.
func (tec *TransitionEventCreate) SetTrigger(s string) *TransitionEventCreate {
	tec.mutation.SetTrigger(s)
	return tec
}

// Mutation returns the TransitionEventMutation object of the builder.
func (tec *TransitionEventCreate) Mutation() *TransitionEventMutation {
	return tec.mutation
}

// Save creates the TransitionEvent in the database.
func (tec *TransitionEventCreate) Save(ctx context.Context) (*TransitionEvent, error) {
	tec.defaults()
	return withHooks(ctx, tec.sqlSave, tec.mutation, tec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tec *TransitionEventCreate) SaveX(ctx context.Context) *TransitionEvent {
	v, err := tec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tec *TransitionEventCreate) Exec(ctx context.Context) error {
	_, err := tec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tec *TransitionEventCreate) ExecX(ctx context.Context) {
	if err := tec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tec *TransitionEventCreate) defaults() {
	if _, ok := tec.mutation.Timestamp(); !ok {
		v := transitionevent.DefaultTimestamp()
		tec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tec *TransitionEventCreate) check() error {
	if _, ok := tec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TransitionEvent.sequence"`)}
	}
	if _, ok := tec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TransitionEvent.timestamp"`)}
	}
	if _, ok := tec.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "TransitionEvent.assessment_id"`)}
	}
	if v, ok := tec.mutation.AssessmentID(); ok {
		if err := transitionevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.assessment_id": %w`, err)}
		}
	}
	if _, ok := tec.mutation.FromState(); !ok {
		return &ValidationError{Name: "from_state", err: errors.New(`ent: missing required field "TransitionEvent.from_state"`)}
	}
	if v, ok := tec.mutation.FromState(); ok {
		if err := transitionevent.FromStateValidator(v); err != nil {
			return &ValidationError{Name: "from_state", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.from_state": %w`, err)}
		}
	}
	if _, ok := tec.mutation.ToState(); !ok {
		return &ValidationError{Name: "to_state", err: errors.New(`ent: missing required field "TransitionEvent.to_state"`)}
	}
	if v, ok := tec.mutation.ToState(); ok {
		if err := transitionevent.ToStateValidator(v); err != nil {
			return &ValidationError{Name: "to_state", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.to_state": %w`, err)}
		}
	}
	if _, ok := tec.mutation.Step(); !ok {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required field "TransitionEvent.step"`)}
	}
	if _, ok := tec.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "TransitionEvent.trigger"`)}
	}
	if v, ok := tec.mutation.Trigger(); ok {
		if err := transitionevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (tec *TransitionEventCreate) sqlSave(ctx context.Context) (*TransitionEvent, error) {
	if err := tec.check(); err != nil {
		return nil, err
	}
	_node, _spec := tec.createSpec()
	if err := sqlgraph.CreateNode(ctx, tec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	tec.mutation.id = &_node.ID
	tec.mutation.done = true
	return _node, nil
}

func (tec *TransitionEventCreate) createSpec() (*TransitionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TransitionEvent{config: tec.config}
		_spec = sqlgraph.NewCreateSpec(transitionevent.Table, sqlgraph.NewFieldSpec(transitionevent.FieldID, field.TypeInt))
	)
	if value, ok := tec.mutation.Sequence(); ok {
		_spec.SetField(transitionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := tec.mutation.Timestamp(); ok {
		_spec.SetField(transitionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := tec.mutation.AssessmentID(); ok {
		_spec.SetField(transitionevent.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := tec.mutation.FromState(); ok {
		_spec.SetField(transitionevent.FieldFromState, field.TypeString, value)
		_node.FromState = value
	}
	if value, ok := tec.mutation.ToState(); ok {
		_spec.SetField(transitionevent.FieldToState, field.TypeString, value)
		_node.ToState = value
	}
	if value, ok := tec.mutation.Step(); ok {
		_spec.SetField(transitionevent.FieldStep, field.TypeInt, value)
		_node.Step = value
	}
	if value, ok := tec.mutation.Trigger(); ok {
		_spec.SetField(transitionevent.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	return _node, _spec
}

// TransitionEventCreateBulk is the builder for creating many TransitionEvent entities in bulk.
type TransitionEventCreateBulk struct {
	config
	err      error
	builders []*TransitionEventCreate
}

// Save creates the TransitionEvent entities in the database.
func (tecb *TransitionEventCreateBulk) Save(ctx context.Context) ([]*TransitionEvent, error) {
	if tecb.err != nil {
		return nil, tecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tecb.builders))
	nodes := make([]*TransitionEvent, len(tecb.builders))
	mutators := make([]Mutator, len(tecb.builders))
	for i := range tecb.builders {
		func(i int, root context.Context) {
			builder := tecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TransitionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, tecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, tecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tecb *TransitionEventCreateBulk) SaveX(ctx context.Context) []*TransitionEvent {
	v, err := tecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tecb *TransitionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := tecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tecb *TransitionEventCreateBulk) ExecX(ctx context.Context) {
	if err := tecb.Exec(ctx); err != nil {
		panic(err)
	}
}
