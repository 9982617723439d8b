// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amahle/famcheck/ent/answer"
)

// AnswerCreate is the builder for creating a Answer entity.
type AnswerCreate struct {
	config
	mutation *AnswerMutation
	hooks    []Hook
}

// SetAssessmentID sets the "assessment_id" field.
func (ac *AnswerCreate) SetAssessmentID(s string) *AnswerCreate {
	ac.mutation.SetAssessmentID(s)
	return ac
}

// SetQuestionID sets the "question_id" field.
func (ac *AnswerCreate) SetQuestionID(s string) *AnswerCreate {
	ac.mutation.SetQuestionID(s)
	return ac
}

// SetQuestionCode sets the "question_code" field.
func (ac *AnswerCreate) SetQuestionCode(s string) *AnswerCreate {
	ac.mutation.SetQuestionCode(s)
	return ac
}

// SetCategory sets the "category" field.
func (ac *AnswerCreate) SetCategory(s string) *AnswerCreate {
	ac.mutation.SetCategory(s)
	return ac
}

// SetValue sets the "value" field.
func (ac *AnswerCreate) SetValue(i int) *AnswerCreate {
	ac.mutation.SetValue(i)
	return ac
}

// SetAnswerType sets the "answer_type" field.
func (ac *AnswerCreate) SetAnswerType(s string) *AnswerCreate {
	ac.mutation.SetAnswerType(s)
	return ac
}

// SetStepNumber sets the "step_number" field.
func (ac *AnswerCreate) SetStepNumber(i int) *AnswerCreate {
	ac.mutation.SetStepNumber(i)
	return ac
}

// SetCreatedAt sets the "created_at" field.
func (ac *AnswerCreate) SetCreatedAt(t time.Time) *AnswerCreate {
	ac.mutation.SetCreatedAt(t)
	return ac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ac *AnswerCreate) SetNillableCreatedAt(t *time.Time) *AnswerCreate {
	if t != nil {
		ac.SetCreatedAt(*t)
	}
	return ac
}

// SetUpdatedAt sets the "updated_at" field.
func (ac *AnswerCreate) SetUpdatedAt(t time.Time) *AnswerCreate {
	ac.mutation.SetUpdatedAt(t)
	return ac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ac *AnswerCreate) SetNillableUpdatedAt(t *time.Time) *AnswerCreate {
	if t != nil {
		ac.SetUpdatedAt(*t)
	}
	return ac
}

// SetID sets the "id" field.
func (ac *AnswerCreate) SetID(s string) *AnswerCreate {
	ac.mutation.SetID(s)
	return ac
}

// Mutation returns the AnswerMutation object of the builder.
func (ac *AnswerCreate) Mutation() *AnswerMutation {
	return ac.mutation
}

// Save creates the Answer in the database.
func (ac *AnswerCreate) Save(ctx context.Context) (*Answer, error) {
	ac.defaults()
	return withHooks(ctx, ac.sqlSave, ac.mutation, ac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ac *AnswerCreate) SaveX(ctx context.Context) *Answer {
	v, err := ac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ac *AnswerCreate) Exec(ctx context.Context) error {
	_, err := ac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ac *AnswerCreate) ExecX(ctx context.Context) {
	if err := ac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ac *AnswerCreate) defaults() {
	if _, ok := ac.mutation.CreatedAt(); !ok {
		v := answer.DefaultCreatedAt()
		ac.mutation.SetCreatedAt(v)
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		v := answer.DefaultUpdatedAt()
		ac.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ac *AnswerCreate) check() error {
	if _, ok := ac.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "Answer.assessment_id"`)}
	}
	if v, ok := ac.mutation.AssessmentID(); ok {
		if err := answer.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "Answer.assessment_id": %w`, err)}
		}
	}
	if _, ok := ac.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Answer.question_id"`)}
	}
	if v, ok := ac.mutation.QuestionID(); ok {
		if err := answer.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Answer.question_id": %w`, err)}
		}
	}
	if _, ok := ac.mutation.QuestionCode(); !ok {
		return &ValidationError{Name: "question_code", err: errors.New(`ent: missing required field "Answer.question_code"`)}
	}
	if v, ok := ac.mutation.QuestionCode(); ok {
		if err := answer.QuestionCodeValidator(v); err != nil {
			return &ValidationError{Name: "question_code", err: fmt.Errorf(`ent: validator failed for field "Answer.question_code": %w`, err)}
		}
	}
	if _, ok := ac.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Answer.category"`)}
	}
	if v, ok := ac.mutation.Category(); ok {
		if err := answer.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Answer.category": %w`, err)}
		}
	}
	if _, ok := ac.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "Answer.value"`)}
	}
	if _, ok := ac.mutation.AnswerType(); !ok {
		return &ValidationError{Name: "answer_type", err: errors.New(`ent: missing required field "Answer.answer_type"`)}
	}
	if v, ok := ac.mutation.AnswerType(); ok {
		if err := answer.AnswerTypeValidator(v); err != nil {
			return &ValidationError{Name: "answer_type", err: fmt.Errorf(`ent: validator failed for field "Answer.answer_type": %w`, err)}
		}
	}
	if _, ok := ac.mutation.StepNumber(); !ok {
		return &ValidationError{Name: "step_number", err: errors.New(`ent: missing required field "Answer.step_number"`)}
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Answer.created_at"`)}
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Answer.updated_at"`)}
	}
	return nil
}

func (ac *AnswerCreate) sqlSave(ctx context.Context) (*Answer, error) {
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
			return nil, fmt.Errorf("unexpected Answer.ID type: %T", _spec.ID.Value)
		}
	}
	ac.mutation.id = &_node.ID
	ac.mutation.done = true
	return _node, nil
}

func (ac *AnswerCreate) createSpec() (*Answer, *sqlgraph.CreateSpec) {
	var (
		_node = &Answer{config: ac.config}
		_spec = sqlgraph.NewCreateSpec(answer.Table, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeString))
	)
	if id, ok := ac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ac.mutation.AssessmentID(); ok {
		_spec.SetField(answer.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := ac.mutation.QuestionID(); ok {
		_spec.SetField(answer.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := ac.mutation.QuestionCode(); ok {
		_spec.SetField(answer.FieldQuestionCode, field.TypeString, value)
		_node.QuestionCode = value
	}
	if value, ok := ac.mutation.Category(); ok {
		_spec.SetField(answer.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := ac.mutation.Value(); ok {
		_spec.SetField(answer.FieldValue, field.TypeInt, value)
		_node.Value = value
	}
	if value, ok := ac.mutation.AnswerType(); ok {
		_spec.SetField(answer.FieldAnswerType, field.TypeString, value)
		_node.AnswerType = value
	}
	if value, ok := ac.mutation.StepNumber(); ok {
		_spec.SetField(answer.FieldStepNumber, field.TypeInt, value)
		_node.StepNumber = value
	}
	if value, ok := ac.mutation.CreatedAt(); ok {
		_spec.SetField(answer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ac.mutation.UpdatedAt(); ok {
		_spec.SetField(answer.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AnswerCreateBulk is the builder for creating many Answer entities in bulk.
type AnswerCreateBulk struct {
	config
	err      error
	builders []*AnswerCreate
}

// Save creates the Answer entities in the database.
func (acb *AnswerCreateBulk) Save(ctx context.Context) ([]*Answer, error) {
	if acb.err != nil {
		return nil, acb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(acb.builders))
	nodes := make([]*Answer, len(acb.builders))
	mutators := make([]Mutator, len(acb.builders))
	for i := range acb.builders {
		func(i int, root context.Context) {
			builder := acb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerMutation)
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
func (acb *AnswerCreateBulk) SaveX(ctx context.Context) []*Answer {
	v, err := acb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (acb *AnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := acb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (acb *AnswerCreateBulk) ExecX(ctx context.Context) {
	if err := acb.Exec(ctx); err != nil {
		panic(err)
	}
}
