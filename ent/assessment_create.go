// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amahle/famcheck/ent/assessment"
	"github.com/amahle/famcheck/ent/schema"
)

// AssessmentCreate is the builder for creating a Assessment entity.
type AssessmentCreate struct {
	config
	mutation *AssessmentMutation
	hooks    []Hook
}

// SetHouseholdID sets the "household_id" field.
func (ac *AssessmentCreate) SetHouseholdID(s string) *AssessmentCreate {
	ac.mutation.SetHouseholdID(s)
	return ac
}

// SetProfileID sets the "profile_id" field.
func (ac *AssessmentCreate) SetProfileID(s string) *AssessmentCreate {
	ac.mutation.SetProfileID(s)
	return ac
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (ac *AssessmentCreate) SetNillableProfileID(s *string) *AssessmentCreate {
	if s != nil {
		ac.SetProfileID(*s)
	}
	return ac
}

// SetType sets the "type" field.
func (ac *AssessmentCreate) SetType(a assessment.Type) *AssessmentCreate {
	ac.mutation.SetType(a)
	return ac
}

// SetStatus sets the "status" field.
func (ac *AssessmentCreate) SetStatus(a assessment.Status) *AssessmentCreate {
	ac.mutation.SetStatus(a)
	return ac
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ac *AssessmentCreate) SetNillableStatus(a *assessment.Status) *AssessmentCreate {
	if a != nil {
		ac.SetStatus(*a)
	}
	return ac
}

// SetCurrentStep sets the "current_step" field.
func (ac *AssessmentCreate) SetCurrentStep(i int) *AssessmentCreate {
	ac.mutation.SetCurrentStep(i)
	return ac
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (ac *AssessmentCreate) SetNillableCurrentStep(i *int) *AssessmentCreate {
	if i != nil {
		ac.SetCurrentStep(*i)
	}
	return ac
}

// SetTotalSteps sets the "total_steps" field.
func (ac *AssessmentCreate) SetTotalSteps(i int) *AssessmentCreate {
	ac.mutation.SetTotalSteps(i)
	return ac
}

// SetWorryTags sets the "worry_tags" field.
func (ac *AssessmentCreate) SetWorryTags(sts schema.WorryTagsSnapshot) *AssessmentCreate {
	ac.mutation.SetWorryTags(sts)
	return ac
}

// SetNillableWorryTags sets the "worry_tags" field if the given value is not nil.
func (ac *AssessmentCreate) SetNillableWorryTags(sts *schema.WorryTagsSnapshot) *AssessmentCreate {
	if sts != nil {
		ac.SetWorryTags(*sts)
	}
	return ac
}

// SetResultsSummary sets the "results_summary" field.
func (ac *AssessmentCreate) SetResultsSummary(mr map[string]schema.DomainResult) *AssessmentCreate {
	ac.mutation.SetResultsSummary(mr)
	return ac
}

// SetStartedAt sets the "started_at" field.
func (ac *AssessmentCreate) SetStartedAt(t time.Time) *AssessmentCreate {
	ac.mutation.SetStartedAt(t)
	return ac
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (ac *AssessmentCreate) SetNillableStartedAt(t *time.Time) *AssessmentCreate {
	if t != nil {
		ac.SetStartedAt(*t)
	}
	return ac
}

// SetCompletedAt sets the "completed_at" field.
func (ac *AssessmentCreate) SetCompletedAt(t time.Time) *AssessmentCreate {
	ac.mutation.SetCompletedAt(t)
	return ac
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (ac *AssessmentCreate) SetNillableCompletedAt(t *time.Time) *AssessmentCreate {
	if t != nil {
		ac.SetCompletedAt(*t)
	}
	return ac
}

// SetUpdatedAt sets the "updated_at" field.
func (ac *AssessmentCreate) SetUpdatedAt(t time.Time) *AssessmentCreate {
	ac.mutation.SetUpdatedAt(t)
	return ac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ac *AssessmentCreate) SetNillableUpdatedAt(t *time.Time) *AssessmentCreate {
	if t != nil {
		ac.SetUpdatedAt(*t)
	}
	return ac
}

// SetID sets the "id" field.
func (ac *AssessmentCreate) SetID(s string) *AssessmentCreate {
	ac.mutation.SetID(s)
	return ac
}

// Mutation returns the AssessmentMutation object of the builder.
func (ac *AssessmentCreate) Mutation() *AssessmentMutation {
	return ac.mutation
}

// Save creates the Assessment in the database.
func (ac *AssessmentCreate) Save(ctx context.Context) (*Assessment, error) {
	ac.defaults()
	return withHooks(ctx, ac.sqlSave, ac.mutation, ac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ac *AssessmentCreate) SaveX(ctx context.Context) *Assessment {
	v, err := ac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ac *AssessmentCreate) Exec(ctx context.Context) error {
	_, err := ac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ac *AssessmentCreate) ExecX(ctx context.Context) {
	if err := ac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ac *AssessmentCreate) defaults() {
	if _, ok := ac.mutation.Status(); !ok {
		v := assessment.DefaultStatus
		ac.mutation.SetStatus(v)
	}
	if _, ok := ac.mutation.CurrentStep(); !ok {
		v := assessment.DefaultCurrentStep
		ac.mutation.SetCurrentStep(v)
	}
	if _, ok := ac.mutation.StartedAt(); !ok {
		v := assessment.DefaultStartedAt()
		ac.mutation.SetStartedAt(v)
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		v := assessment.DefaultUpdatedAt()
		ac.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ac *AssessmentCreate) check() error {
	if _, ok := ac.mutation.HouseholdID(); !ok {
		return &ValidationError{Name: "household_id", err: errors.New(`ent: missing required field "Assessment.household_id"`)}
	}
	if v, ok := ac.mutation.HouseholdID(); ok {
		if err := assessment.HouseholdIDValidator(v); err != nil {
			return &ValidationError{Name: "household_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.household_id": %w`, err)}
		}
	}
	if _, ok := ac.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Assessment.type"`)}
	}
	if v, ok := ac.mutation.GetType(); ok {
		if err := assessment.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Assessment.type": %w`, err)}
		}
	}
	if _, ok := ac.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Assessment.status"`)}
	}
	if v, ok := ac.mutation.Status(); ok {
		if err := assessment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Assessment.status": %w`, err)}
		}
	}
	if _, ok := ac.mutation.CurrentStep(); !ok {
		return &ValidationError{Name: "current_step", err: errors.New(`ent: missing required field "Assessment.current_step"`)}
	}
	if _, ok := ac.mutation.TotalSteps(); !ok {
		return &ValidationError{Name: "total_steps", err: errors.New(`ent: missing required field "Assessment.total_steps"`)}
	}
	if _, ok := ac.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Assessment.started_at"`)}
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Assessment.updated_at"`)}
	}
	return nil
}

func (ac *AssessmentCreate) sqlSave(ctx context.Context) (*Assessment, error) {
	if err := ac.check(); err != nil {
		return nil, err
	}
	_node, _spec := ac.createSpec()
	if err := sqlgraph.CreateNode(ctx, ac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Assessment.ID type: %T", _spec.ID.Value)
		}
	}
	ac.mutation.id = &_node.ID
	ac.mutation.done = true
	return _node, nil
}

func (ac *AssessmentCreate) createSpec() (*Assessment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assessment{config: ac.config}
		_spec = sqlgraph.NewCreateSpec(assessment.Table, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeString))
	)
	if id, ok := ac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ac.mutation.HouseholdID(); ok {
		_spec.SetField(assessment.FieldHouseholdID, field.TypeString, value)
		_node.HouseholdID = value
	}
	if value, ok := ac.mutation.ProfileID(); ok {
		_spec.SetField(assessment.FieldProfileID, field.TypeString, value)
		_node.ProfileID = value
	}
	if value, ok := ac.mutation.GetType(); ok {
		_spec.SetField(assessment.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := ac.mutation.Status(); ok {
		_spec.SetField(assessment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := ac.mutation.CurrentStep(); ok {
		_spec.SetField(assessment.FieldCurrentStep, field.TypeInt, value)
		_node.CurrentStep = value
	}
	if value, ok := ac.mutation.TotalSteps(); ok {
		_spec.SetField(assessment.FieldTotalSteps, field.TypeInt, value)
		_node.TotalSteps = value
	}
	if value, ok := ac.mutation.WorryTags(); ok {
		_spec.SetField(assessment.FieldWorryTags, field.TypeJSON, value)
		_node.WorryTags = value
	}
	if value, ok := ac.mutation.ResultsSummary(); ok {
		_spec.SetField(assessment.FieldResultsSummary, field.TypeJSON, value)
		_node.ResultsSummary = value
	}
	if value, ok := ac.mutation.StartedAt(); ok {
		_spec.SetField(assessment.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := ac.mutation.CompletedAt(); ok {
		_spec.SetField(assessment.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := ac.mutation.UpdatedAt(); ok {
		_spec.SetField(assessment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AssessmentCreateBulk is the builder for creating many Assessment entities in bulk.
type AssessmentCreateBulk struct {
	config
	err      error
	builders []*AssessmentCreate
}

// Save creates the Assessment entities in the database.
func (acb *AssessmentCreateBulk) Save(ctx context.Context) ([]*Assessment, error) {
	if acb.err != nil {
		return nil, acb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(acb.builders))
	nodes := make([]*Assessment, len(acb.builders))
	mutators := make([]Mutator, len(acb.builders))
	for i := range acb.builders {
		func(i int, root context.Context) {
			builder := acb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentMutation)
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
					_, err = mutators[i+1].Mutate(root, acb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, acb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
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
		if _, err := mutators[0].Mutate(ctx, acb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (acb *AssessmentCreateBulk) SaveX(ctx context.Context) []*Assessment {
	v, err := acb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (acb *AssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := acb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (acb *AssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := acb.Exec(ctx); err != nil {
		panic(err)
	}
}
