// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amahle/famcheck/ent/answer"
	"github.com/amahle/famcheck/ent/predicate"
)

// AnswerUpdate is the builder for updating Answer entities.
type AnswerUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerMutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (au *AnswerUpdate) Where(ps ...predicate.Answer) *AnswerUpdate {
	au.mutation.Where(ps...)
	return au
}

// SetAssessmentID sets the "assessment_id" field.
func (au *AnswerUpdate) SetAssessmentID(s string) *AnswerUpdate {
	au.mutation.SetAssessmentID(s)
	return au
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (au *AnswerUpdate) SetNillableAssessmentID(s *string) *AnswerUpdate {
	if s != nil {
		au.SetAssessmentID(*s)
	}
	return au
}

// SetQuestionID sets the "question_id" field.
func (au *AnswerUpdate) SetQuestionID(s string) *AnswerUpdate {
	au.mutation.SetQuestionID(s)
	return au
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (au *AnswerUpdate) SetNillableQuestionID(s *string) *AnswerUpdate {
	if s != nil {
		au.SetQuestionID(*s)
	}
	return au
}

// SetQuestionCode sets the "question_code" field.
func (au *AnswerUpdate) SetQuestionCode(s string) *AnswerUpdate {
	au.mutation.SetQuestionCode(s)
	return au
}

// SetNillableQuestionCode sets the "question_code" field if the given value is not nil.
func (au *AnswerUpdate) SetNillableQuestionCode(s *string) *AnswerUpdate {
	if s != nil {
		au.SetQuestionCode(*s)
	}
	return au
}

// SetCategory sets the "category" field.
func (au *AnswerUpdate) SetCategory(s string) *AnswerUpdate {
	au.mutation.SetCategory(s)
	return au
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (au *AnswerUpdate) SetNillableCategory(s *string) *AnswerUpdate {
	if s != nil {
		au.SetCategory(*s)
	}
	return au
}

// SetValue sets the "value" field.
func (au *AnswerUpdate) SetValue(i int) *AnswerUpdate {
	au.mutation.ResetValue()
	au.mutation.SetValue(i)
	return au
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (au *AnswerUpdate) SetNillableValue(i *int) *AnswerUpdate {
	if i != nil {
		au.SetValue(*i)
	}
	return au
}

// AddValue adds i to the "value" field.
func (au *AnswerUpdate) AddValue(i int) *AnswerUpdate {
	au.mutation.AddValue(i)
	return au
}

// SetAnswerType sets the "answer_type" field.
func (au *AnswerUpdate) SetAnswerType(s string) *AnswerUpdate {
	au.mutation.SetAnswerType(s)
	return au
}

// SetNillableAnswerType sets the "answer_type" field if the given value is not nil.
func (au *AnswerUpdate) SetNillableAnswerType(s *string) *AnswerUpdate {
	if s != nil {
		au.SetAnswerType(*s)
	}
	return au
}

// SetStepNumber sets the "step_number" field.
func (au *AnswerUpdate) SetStepNumber(i int) *AnswerUpdate {
	au.mutation.ResetStepNumber()
	au.mutation.SetStepNumber(i)
	return au
}

// SetNillableStepNumber sets the "step_number" field if the given value is not nil.
func (au *AnswerUpdate) SetNillableStepNumber(i *int) *AnswerUpdate {
	if i != nil {
		au.SetStepNumber(*i)
	}
	return au
}

// AddStepNumber adds i to the "step_number" field.
func (au *AnswerUpdate) AddStepNumber(i int) *AnswerUpdate {
	au.mutation.AddStepNumber(i)
	return au
}

// SetUpdatedAt sets the "updated_at" field.
func (au *AnswerUpdate) SetUpdatedAt(t time.Time) *AnswerUpdate {
	au.mutation.SetUpdatedAt(t)
	return au
}

// Mutation returns the AnswerMutation object of the builder.
func (au *AnswerUpdate) Mutation() *AnswerMutation {
	return au.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (au *AnswerUpdate) Save(ctx context.Context) (int, error) {
	au.defaults()
	return withHooks(ctx, au.sqlSave, au.mutation, au.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (au *AnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := au.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (au *AnswerUpdate) Exec(ctx context.Context) error {
	_, err := au.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (au *AnswerUpdate) ExecX(ctx context.Context) {
	if err := au.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (au *AnswerUpdate) defaults() {
	if _, ok := au.mutation.UpdatedAt(); !ok {
		v := answer.UpdateDefaultUpdatedAt()
		au.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (au *AnswerUpdate) check() error {
	if v, ok := au.mutation.AssessmentID(); ok {
		if err := answer.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "Answer.assessment_id": %w`, err)}
		}
	}
	if v, ok := au.mutation.QuestionID(); ok {
		if err := answer.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Answer.question_id": %w`, err)}
		}
	}
	if v, ok := au.mutation.QuestionCode(); ok {
		if err := answer.QuestionCodeValidator(v); err != nil {
			return &ValidationError{Name: "question_code", err: fmt.Errorf(`ent: validator failed for field "Answer.question_code": %w`, err)}
		}
	}
	if v, ok := au.mutation.Category(); ok {
		if err := answer.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Answer.category": %w`, err)}
		}
	}
	if v, ok := au.mutation.AnswerType(); ok {
		if err := answer.AnswerTypeValidator(v); err != nil {
			return &ValidationError{Name: "answer_type", err: fmt.Errorf(`ent: validator failed for field "Answer.answer_type": %w`, err)}
		}
	}
	return nil
}

func (au *AnswerUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := au.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeString))
	if ps := au.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := au.mutation.AssessmentID(); ok {
		_spec.SetField(answer.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := au.mutation.QuestionID(); ok {
		_spec.SetField(answer.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := au.mutation.QuestionCode(); ok {
		_spec.SetField(answer.FieldQuestionCode, field.TypeString, value)
	}
	if value, ok := au.mutation.Category(); ok {
		_spec.SetField(answer.FieldCategory, field.TypeString, value)
	}
	if value, ok := au.mutation.Value(); ok {
		_spec.SetField(answer.FieldValue, field.TypeInt, value)
	}
	if value, ok := au.mutation.AddedValue(); ok {
		_spec.AddField(answer.FieldValue, field.TypeInt, value)
	}
	if value, ok := au.mutation.AnswerType(); ok {
		_spec.SetField(answer.FieldAnswerType, field.TypeString, value)
	}
	if value, ok := au.mutation.StepNumber(); ok {
		_spec.SetField(answer.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := au.mutation.AddedStepNumber(); ok {
		_spec.AddField(answer.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := au.mutation.UpdatedAt(); ok {
		_spec.SetField(answer.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, au.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	au.mutation.done = true
	return n, nil
}

// AnswerUpdateOne is the builder for updating a single Answer entity.
type AnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (auo *AnswerUpdateOne) SetAssessmentID(s string) *AnswerUpdateOne {
	auo.mutation.SetAssessmentID(s)
	return auo
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (auo *AnswerUpdateOne) SetNillableAssessmentID(s *string) *AnswerUpdateOne {
	if s != nil {
		auo.SetAssessmentID(*s)
	}
	return auo
}

// SetQuestionID sets the "question_id" field.
func (auo *AnswerUpdateOne) SetQuestionID(s string) *AnswerUpdateOne {
	auo.mutation.SetQuestionID(s)
	return auo
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (auo *AnswerUpdateOne) SetNillableQuestionID(s *string) *AnswerUpdateOne {
	if s != nil {
		auo.SetQuestionID(*s)
	}
	return auo
}

// SetQuestionCode sets the "question_code" field.
func (auo *AnswerUpdateOne) SetQuestionCode(s string) *AnswerUpdateOne {
	auo.mutation.SetQuestionCode(s)
	return auo
}

// SetNillableQuestionCode sets the "question_code" field if the given value is not nil.
func (auo *AnswerUpdateOne) SetNillableQuestionCode(s *string) *AnswerUpdateOne {
	if s != nil {
		auo.SetQuestionCode(*s)
	}
	return auo
}

// SetCategory sets the "category" field.
func (auo *AnswerUpdateOne) SetCategory(s string) *AnswerUpdateOne {
	auo.mutation.SetCategory(s)
	return auo
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (auo *AnswerUpdateOne) SetNillableCategory(s *string) *AnswerUpdateOne {
	if s != nil {
		auo.SetCategory(*s)
	}
	return auo
}

// SetValue sets the "value" field.
func (auo *AnswerUpdateOne) SetValue(i int) *AnswerUpdateOne {
	auo.mutation.ResetValue()
	auo.mutation.SetValue(i)
	return auo
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (auo *AnswerUpdateOne) SetNillableValue(i *int) *AnswerUpdateOne {
	if i != nil {
		auo.SetValue(*i)
	}
	return auo
}

// AddValue adds i to the "value" field.
func (auo *AnswerUpdateOne) AddValue(i int) *AnswerUpdateOne {
	auo.mutation.AddValue(i)
	return auo
}

// SetAnswerType sets the "answer_type" field.
func (auo *AnswerUpdateOne) SetAnswerType(s string) *AnswerUpdateOne {
	auo.mutation.SetAnswerType(s)
	return auo
}

// SetNillableAnswerType sets the "answer_type" field if the given value is not nil.
func (auo *AnswerUpdateOne) SetNillableAnswerType(s *string) *AnswerUpdateOne {
	if s != nil {
		auo.SetAnswerType(*s)
	}
	return auo
}

// SetStepNumber sets the "step_number" field.
func (auo *AnswerUpdateOne) SetStepNumber(i int) *AnswerUpdateOne {
	auo.mutation.ResetStepNumber()
	auo.mutation.SetStepNumber(i)
	return auo
}

// SetNillableStepNumber sets the "step_number" field if the given value is not nil.
func (auo *AnswerUpdateOne) SetNillableStepNumber(i *int) *AnswerUpdateOne {
	if i != nil {
		auo.SetStepNumber(*i)
	}
	return auo
}

// AddStepNumber adds i to the "step_number" field.
func (auo *AnswerUpdateOne) AddStepNumber(i int) *AnswerUpdateOne {
	auo.mutation.AddStepNumber(i)
	return auo
}

// SetUpdatedAt sets the "updated_at" field.
func (auo *AnswerUpdateOne) SetUpdatedAt(t time.Time) *AnswerUpdateOne {
	auo.mutation.SetUpdatedAt(t)
	return auo
}

// Mutation returns the AnswerMutation object of the builder.
func (auo *AnswerUpdateOne) Mutation() *AnswerMutation {
	return auo.mutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (auo *AnswerUpdateOne) Where(ps ...predicate.Answer) *AnswerUpdateOne {
	auo.mutation.Where(ps...)
	return auo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (auo *AnswerUpdateOne) Select(field string, fields ...string) *AnswerUpdateOne {
	auo.fields = append([]string{field}, fields...)
	return auo
}

// Save executes the query and returns the updated Answer entity.
func (auo *AnswerUpdateOne) Save(ctx context.Context) (*Answer, error) {
	auo.defaults()
	return withHooks(ctx, auo.sqlSave, auo.mutation, auo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (auo *AnswerUpdateOne) SaveX(ctx context.Context) *Answer {
	node, err := auo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (auo *AnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := auo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (auo *AnswerUpdateOne) ExecX(ctx context.Context) {
	if err := auo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (auo *AnswerUpdateOne) defaults() {
	if _, ok := auo.mutation.UpdatedAt(); !ok {
		v := answer.UpdateDefaultUpdatedAt()
		auo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (auo *AnswerUpdateOne) check() error {
	if v, ok := auo.mutation.AssessmentID(); ok {
		if err := answer.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "Answer.assessment_id": %w`, err)}
		}
	}
	if v, ok := auo.mutation.QuestionID(); ok {
		if err := answer.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Answer.question_id": %w`, err)}
		}
	}
	if v, ok := auo.mutation.QuestionCode(); ok {
		if err := answer.QuestionCodeValidator(v); err != nil {
			return &ValidationError{Name: "question_code", err: fmt.Errorf(`ent: validator failed for field "Answer.question_code": %w`, err)}
		}
	}
	if v, ok := auo.mutation.Category(); ok {
		if err := answer.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Answer.category": %w`, err)}
		}
	}
	if v, ok := auo.mutation.AnswerType(); ok {
		if err := answer.AnswerTypeValidator(v); err != nil {
			return &ValidationError{Name: "answer_type", err: fmt.Errorf(`ent: validator failed for field "Answer.answer_type": %w`, err)}
		}
	}
	return nil
}

func (auo *AnswerUpdateOne) sqlSave(ctx context.Context) (_node *Answer, err error) {
	if err := auo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeString))
	id, ok := auo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Answer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := auo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answer.FieldID)
		for _, f := range fields {
			if !answer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answer.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := auo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := auo.mutation.AssessmentID(); ok {
		_spec.SetField(answer.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := auo.mutation.QuestionID(); ok {
		_spec.SetField(answer.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := auo.mutation.QuestionCode(); ok {
		_spec.SetField(answer.FieldQuestionCode, field.TypeString, value)
	}
	if value, ok := auo.mutation.Category(); ok {
		_spec.SetField(answer.FieldCategory, field.TypeString, value)
	}
	if value, ok := auo.mutation.Value(); ok {
		_spec.SetField(answer.FieldValue, field.TypeInt, value)
	}
	if value, ok := auo.mutation.AddedValue(); ok {
		_spec.AddField(answer.FieldValue, field.TypeInt, value)
	}
	if value, ok := auo.mutation.AnswerType(); ok {
		_spec.SetField(answer.FieldAnswerType, field.TypeString, value)
	}
	if value, ok := auo.mutation.StepNumber(); ok {
		_spec.SetField(answer.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := auo.mutation.AddedStepNumber(); ok {
		_spec.AddField(answer.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := auo.mutation.UpdatedAt(); ok {
		_spec.SetField(answer.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Answer{config: auo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, auo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	auo.mutation.done = true
	return _node, nil
}
