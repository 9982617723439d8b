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
	"github.com/amahle/famcheck/ent/assessment"
	"github.com/amahle/famcheck/ent/predicate"
	"github.com/amahle/famcheck/ent/schema"
)

// AssessmentUpdate is the builder for updating Assessment entities.
type AssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentMutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (au *AssessmentUpdate) Where(ps ...predicate.Assessment) *AssessmentUpdate {
	au.mutation.Where(ps...)
	return au
}

// SetHouseholdID sets the "household_id" field.
func (au *AssessmentUpdate) SetHouseholdID(s string) *AssessmentUpdate {
	au.mutation.SetHouseholdID(s)
	return au
}

// SetNillableHouseholdID sets the "household_id" field if the given value is not nil.
func (au *AssessmentUpdate) SetNillableHouseholdID(s *string) *AssessmentUpdate {
	if s != nil {
		au.SetHouseholdID(*s)
	}
	return au
}

// SetProfileID sets the "profile_id" field.
func (au *AssessmentUpdate) SetProfileID(s string) *AssessmentUpdate {
	au.mutation.SetProfileID(s)
	return au
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (au *AssessmentUpdate) SetNillableProfileID(s *string) *AssessmentUpdate {
	if s != nil {
		au.SetProfileID(*s)
	}
	return au
}

// ClearProfileID clears the value of the "profile_id" field.
func (au *AssessmentUpdate) ClearProfileID() *AssessmentUpdate {
	au.mutation.ClearProfileID()
	return au
}

// SetType sets the "type" field.
func (au *AssessmentUpdate) SetType(a assessment.Type) *AssessmentUpdate {
	au.mutation.SetType(a)
	return au
}

// SetNillableType sets the "type" field if the given value is not nil.
func (au *AssessmentUpdate) SetNillableType(a *assessment.Type) *AssessmentUpdate {
	if a != nil {
		au.SetType(*a)
	}
	return au
}

// SetStatus sets the "status" field.
func (au *AssessmentUpdate) SetStatus(a assessment.Status) *AssessmentUpdate {
	au.mutation.SetStatus(a)
	return au
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (au *AssessmentUpdate) SetNillableStatus(a *assessment.Status) *AssessmentUpdate {
	if a != nil {
		au.SetStatus(*a)
	}
	return au
}

// SetCurrentStep sets the "current_step" field.
func (au *AssessmentUpdate) SetCurrentStep(i int) *AssessmentUpdate {
	au.mutation.ResetCurrentStep()
	au.mutation.SetCurrentStep(i)
	return au
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (au *AssessmentUpdate) SetNillableCurrentStep(i *int) *AssessmentUpdate {
	if i != nil {
		au.SetCurrentStep(*i)
	}
	return au
}

// AddCurrentStep adds i to the "current_step" field.
func (au *AssessmentUpdate) AddCurrentStep(i int) *AssessmentUpdate {
	au.mutation.AddCurrentStep(i)
	return au
}

// SetTotalSteps sets the "total_steps" field.
func (au *AssessmentUpdate) SetTotalSteps(i int) *AssessmentUpdate {
	au.mutation.ResetTotalSteps()
	au.mutation.SetTotalSteps(i)
	return au
}

// SetNillableTotalSteps sets the "total_steps" field if the given value is not nil.
func (au *AssessmentUpdate) SetNillableTotalSteps(i *int) *AssessmentUpdate {
	if i != nil {
		au.SetTotalSteps(*i)
	}
	return au
}

// AddTotalSteps adds i to the "total_steps" field.
func (au *AssessmentUpdate) AddTotalSteps(i int) *AssessmentUpdate {
	au.mutation.AddTotalSteps(i)
	return au
}

// SetWorryTags sets the "worry_tags" field.
func (au *AssessmentUpdate) SetWorryTags(sts schema.WorryTagsSnapshot) *AssessmentUpdate {
	au.mutation.SetWorryTags(sts)
	return au
}

// SetNillableWorryTags sets the "worry_tags" field if the given value is not nil.
func (au *AssessmentUpdate) SetNillableWorryTags(sts *schema.WorryTagsSnapshot) *AssessmentUpdate {
	if sts != nil {
		au.SetWorryTags(*sts)
	}
	return au
}

// ClearWorryTags clears the value of the "worry_tags" field.
func (au *AssessmentUpdate) ClearWorryTags() *AssessmentUpdate {
	au.mutation.ClearWorryTags()
	return au
}

// SetResultsSummary sets the "results_summary" field.
func (au *AssessmentUpdate) SetResultsSummary(mr map[string]schema.DomainResult) *AssessmentUpdate {
	au.mutation.SetResultsSummary(mr)
	return au
}

// ClearResultsSummary clears the value of the "results_summary" field.
func (au *AssessmentUpdate) ClearResultsSummary() *AssessmentUpdate {
	au.mutation.ClearResultsSummary()
	return au
}

// SetCompletedAt sets the "completed_at" field.
func (au *AssessmentUpdate) SetCompletedAt(t time.Time) *AssessmentUpdate {
	au.mutation.SetCompletedAt(t)
	return au
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (au *AssessmentUpdate) SetNillableCompletedAt(t *time.Time) *AssessmentUpdate {
	if t != nil {
		au.SetCompletedAt(*t)
	}
	return au
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (au *AssessmentUpdate) ClearCompletedAt() *AssessmentUpdate {
	au.mutation.ClearCompletedAt()
	return au
}

// SetUpdatedAt sets the "updated_at" field.
func (au *AssessmentUpdate) SetUpdatedAt(t time.Time) *AssessmentUpdate {
	au.mutation.SetUpdatedAt(t)
	return au
}

// Mutation returns the AssessmentMutation object of the builder.
func (au *AssessmentUpdate) Mutation() *AssessmentMutation {
	return au.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (au *AssessmentUpdate) Save(ctx context.Context) (int, error) {
	au.defaults()
	return withHooks(ctx, au.sqlSave, au.mutation, au.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (au *AssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := au.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (au *AssessmentUpdate) Exec(ctx context.Context) error {
	_, err := au.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (au *AssessmentUpdate) ExecX(ctx context.Context) {
	if err := au.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (au *AssessmentUpdate) defaults() {
	if _, ok := au.mutation.UpdatedAt(); !ok {
		v := assessment.UpdateDefaultUpdatedAt()
		au.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (au *AssessmentUpdate) check() error {
	if v, ok := au.mutation.HouseholdID(); ok {
		if err := assessment.HouseholdIDValidator(v); err != nil {
			return &ValidationError{Name: "household_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.household_id": %w`, err)}
		}
	}
	if v, ok := au.mutation.GetType(); ok {
		if err := assessment.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Assessment.type": %w`, err)}
		}
	}
	if v, ok := au.mutation.Status(); ok {
		if err := assessment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Assessment.status": %w`, err)}
		}
	}
	return nil
}

func (au *AssessmentUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := au.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeString))
	if ps := au.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := au.mutation.HouseholdID(); ok {
		_spec.SetField(assessment.FieldHouseholdID, field.TypeString, value)
	}
	if value, ok := au.mutation.ProfileID(); ok {
		_spec.SetField(assessment.FieldProfileID, field.TypeString, value)
	}
	if au.mutation.ProfileIDCleared() {
		_spec.ClearField(assessment.FieldProfileID, field.TypeString)
	}
	if value, ok := au.mutation.GetType(); ok {
		_spec.SetField(assessment.FieldType, field.TypeEnum, value)
	}
	if value, ok := au.mutation.Status(); ok {
		_spec.SetField(assessment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := au.mutation.CurrentStep(); ok {
		_spec.SetField(assessment.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := au.mutation.AddedCurrentStep(); ok {
		_spec.AddField(assessment.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := au.mutation.TotalSteps(); ok {
		_spec.SetField(assessment.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := au.mutation.AddedTotalSteps(); ok {
		_spec.AddField(assessment.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := au.mutation.WorryTags(); ok {
		_spec.SetField(assessment.FieldWorryTags, field.TypeJSON, value)
	}
	if au.mutation.WorryTagsCleared() {
		_spec.ClearField(assessment.FieldWorryTags, field.TypeJSON)
	}
	if value, ok := au.mutation.ResultsSummary(); ok {
		_spec.SetField(assessment.FieldResultsSummary, field.TypeJSON, value)
	}
	if au.mutation.ResultsSummaryCleared() {
		_spec.ClearField(assessment.FieldResultsSummary, field.TypeJSON)
	}
	if value, ok := au.mutation.CompletedAt(); ok {
		_spec.SetField(assessment.FieldCompletedAt, field.TypeTime, value)
	}
	if au.mutation.CompletedAtCleared() {
		_spec.ClearField(assessment.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := au.mutation.UpdatedAt(); ok {
		_spec.SetField(assessment.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, au.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	au.mutation.done = true
	return n, nil
}

// AssessmentUpdateOne is the builder for updating a single Assessment entity.
type AssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentMutation
}

// SetHouseholdID sets the "household_id" field.
func (auo *AssessmentUpdateOne) SetHouseholdID(s string) *AssessmentUpdateOne {
	auo.mutation.SetHouseholdID(s)
	return auo
}

// SetNillableHouseholdID sets the "household_id" field if the given value is not nil.
func (auo *AssessmentUpdateOne) SetNillableHouseholdID(s *string) *AssessmentUpdateOne {
	if s != nil {
		auo.SetHouseholdID(*s)
	}
	return auo
}

// SetProfileID sets the "profile_id" field.
func (auo *AssessmentUpdateOne) SetProfileID(s string) *AssessmentUpdateOne {
	auo.mutation.SetProfileID(s)
	return auo
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (auo *AssessmentUpdateOne) SetNillableProfileID(s *string) *AssessmentUpdateOne {
	if s != nil {
		auo.SetProfileID(*s)
	}
	return auo
}

// ClearProfileID clears the value of the "profile_id" field.
func (auo *AssessmentUpdateOne) ClearProfileID() *AssessmentUpdateOne {
	auo.mutation.ClearProfileID()
	return auo
}

// SetType sets the "type" field.
func (auo *AssessmentUpdateOne) SetType(a assessment.Type) *AssessmentUpdateOne {
	auo.mutation.SetType(a)
	return auo
}

// SetNillableType sets the "type" field if the given value is not nil.
func (auo *AssessmentUpdateOne) SetNillableType(a *assessment.Type) *AssessmentUpdateOne {
	if a != nil {
		auo.SetType(*a)
	}
	return auo
}

// SetStatus sets the "status" field.
func (auo *AssessmentUpdateOne) SetStatus(a assessment.Status) *AssessmentUpdateOne {
	auo.mutation.SetStatus(a)
	return auo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (auo *AssessmentUpdateOne) SetNillableStatus(a *assessment.Status) *AssessmentUpdateOne {
	if a != nil {
		auo.SetStatus(*a)
	}
	return auo
}

// SetCurrentStep sets the "current_step" field.
func (auo *AssessmentUpdateOne) SetCurrentStep(i int) *AssessmentUpdateOne {
	auo.mutation.ResetCurrentStep()
	auo.mutation.SetCurrentStep(i)
	return auo
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (auo *AssessmentUpdateOne) SetNillableCurrentStep(i *int) *AssessmentUpdateOne {
	if i != nil {
		auo.SetCurrentStep(*i)
	}
	return auo
}

// AddCurrentStep adds i to the "current_step" field.
func (auo *AssessmentUpdateOne) AddCurrentStep(i int) *AssessmentUpdateOne {
	auo.mutation.AddCurrentStep(i)
	return auo
}

// SetTotalSteps sets the "total_steps" field.
func (auo *AssessmentUpdateOne) SetTotalSteps(i int) *AssessmentUpdateOne {
	auo.mutation.ResetTotalSteps()
	auo.mutation.SetTotalSteps(i)
	return auo
}

// SetNillableTotalSteps sets the "total_steps" field if the given value is not nil.
func (auo *AssessmentUpdateOne) SetNillableTotalSteps(i *int) *AssessmentUpdateOne {
	if i != nil {
		auo.SetTotalSteps(*i)
	}
	return auo
}

// AddTotalSteps adds i to the "total_steps" field.
func (auo *AssessmentUpdateOne) AddTotalSteps(i int) *AssessmentUpdateOne {
	auo.mutation.AddTotalSteps(i)
	return auo
}

// SetWorryTags sets the "worry_tags" field.
func (auo *AssessmentUpdateOne) SetWorryTags(sts schema.WorryTagsSnapshot) *AssessmentUpdateOne {
	auo.mutation.SetWorryTags(sts)
	return auo
}

// SetNillableWorryTags sets the "worry_tags" field if the given value is not nil.
func (auo *AssessmentUpdateOne) SetNillableWorryTags(sts *schema.WorryTagsSnapshot) *AssessmentUpdateOne {
	if sts != nil {
		auo.SetWorryTags(*sts)
	}
	return auo
}

// ClearWorryTags clears the value of the "worry_tags" field.
func (auo *AssessmentUpdateOne) ClearWorryTags() *AssessmentUpdateOne {
	auo.mutation.ClearWorryTags()
	return auo
}

// SetResultsSummary sets the "results_summary" field.
func (auo *AssessmentUpdateOne) SetResultsSummary(mr map[string]schema.DomainResult) *AssessmentUpdateOne {
	auo.mutation.SetResultsSummary(mr)
	return auo
}

// ClearResultsSummary clears the value of the "results_summary" field.
func (auo *AssessmentUpdateOne) ClearResultsSummary() *AssessmentUpdateOne {
	auo.mutation.ClearResultsSummary()
	return auo
}

// SetCompletedAt sets the "completed_at" field.
func (auo *AssessmentUpdateOne) SetCompletedAt(t time.Time) *AssessmentUpdateOne {
	auo.mutation.SetCompletedAt(t)
	return auo
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (auo *AssessmentUpdateOne) SetNillableCompletedAt(t *time.Time) *AssessmentUpdateOne {
	if t != nil {
		auo.SetCompletedAt(*t)
	}
	return auo
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (auo *AssessmentUpdateOne) ClearCompletedAt() *AssessmentUpdateOne {
	auo.mutation.ClearCompletedAt()
	return auo
}

// SetUpdatedAt sets the "updated_at" field.
func (auo *AssessmentUpdateOne) SetUpdatedAt(t time.Time) *AssessmentUpdateOne {
	auo.mutation.SetUpdatedAt(t)
	return auo
}

// Mutation returns the AssessmentMutation object of the builder.
func (auo *AssessmentUpdateOne) Mutation() *AssessmentMutation {
	return auo.mutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (auo *AssessmentUpdateOne) Where(ps ...predicate.Assessment) *AssessmentUpdateOne {
	auo.mutation.Where(ps...)
	return auo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (auo *AssessmentUpdateOne) Select(field string, fields ...string) *AssessmentUpdateOne {
	auo.fields = append([]string{field}, fields...)
	return auo
}

// Save executes the query and returns the updated Assessment entity.
func (auo *AssessmentUpdateOne) Save(ctx context.Context) (*Assessment, error) {
	auo.defaults()
	return withHooks(ctx, auo.sqlSave, auo.mutation, auo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (auo *AssessmentUpdateOne) SaveX(ctx context.Context) *Assessment {
	node, err := auo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (auo *AssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := auo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (auo *AssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := auo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (auo *AssessmentUpdateOne) defaults() {
	if _, ok := auo.mutation.UpdatedAt(); !ok {
		v := assessment.UpdateDefaultUpdatedAt()
		auo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (auo *AssessmentUpdateOne) check() error {
	if v, ok := auo.mutation.HouseholdID(); ok {
		if err := assessment.HouseholdIDValidator(v); err != nil {
			return &ValidationError{Name: "household_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.household_id": %w`, err)}
		}
	}
	if v, ok := auo.mutation.GetType(); ok {
		if err := assessment.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Assessment.type": %w`, err)}
		}
	}
	if v, ok := auo.mutation.Status(); ok {
		if err := assessment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Assessment.status": %w`, err)}
		}
	}
	return nil
}

func (auo *AssessmentUpdateOne) sqlSave(ctx context.Context) (_node *Assessment, err error) {
	if err := auo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeString))
	id, ok := auo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := auo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessment.FieldID)
		for _, f := range fields {
			if !assessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessment.FieldID {
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
	if value, ok := auo.mutation.HouseholdID(); ok {
		_spec.SetField(assessment.FieldHouseholdID, field.TypeString, value)
	}
	if value, ok := auo.mutation.ProfileID(); ok {
		_spec.SetField(assessment.FieldProfileID, field.TypeString, value)
	}
	if auo.mutation.ProfileIDCleared() {
		_spec.ClearField(assessment.FieldProfileID, field.TypeString)
	}
	if value, ok := auo.mutation.GetType(); ok {
		_spec.SetField(assessment.FieldType, field.TypeEnum, value)
	}
	if value, ok := auo.mutation.Status(); ok {
		_spec.SetField(assessment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := auo.mutation.CurrentStep(); ok {
		_spec.SetField(assessment.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := auo.mutation.AddedCurrentStep(); ok {
		_spec.AddField(assessment.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := auo.mutation.TotalSteps(); ok {
		_spec.SetField(assessment.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := auo.mutation.AddedTotalSteps(); ok {
		_spec.AddField(assessment.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := auo.mutation.WorryTags(); ok {
		_spec.SetField(assessment.FieldWorryTags, field.TypeJSON, value)
	}
	if auo.mutation.WorryTagsCleared() {
		_spec.ClearField(assessment.FieldWorryTags, field.TypeJSON)
	}
	if value, ok := auo.mutation.ResultsSummary(); ok {
		_spec.SetField(assessment.FieldResultsSummary, field.TypeJSON, value)
	}
	if auo.mutation.ResultsSummaryCleared() {
		_spec.ClearField(assessment.FieldResultsSummary, field.TypeJSON)
	}
	if value, ok := auo.mutation.CompletedAt(); ok {
		_spec.SetField(assessment.FieldCompletedAt, field.TypeTime, value)
	}
	if auo.mutation.CompletedAtCleared() {
		_spec.ClearField(assessment.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := auo.mutation.UpdatedAt(); ok {
		_spec.SetField(assessment.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Assessment{config: auo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, auo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	auo.mutation.done = true
	return _node, nil
}
