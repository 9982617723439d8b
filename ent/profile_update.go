// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/amahle/famcheck/ent/predicate"
	"github.com/amahle/famcheck/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (pu *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	pu.mutation.Where(ps...)
	return pu
}

// SetHouseholdID sets the "household_id" field.
func (pu *ProfileUpdate) SetHouseholdID(s string) *ProfileUpdate {
	pu.mutation.SetHouseholdID(s)
	return pu
}

// SetNillableHouseholdID sets the "household_id" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableHouseholdID(s *string) *ProfileUpdate {
	if s != nil {
		pu.SetHouseholdID(*s)
	}
	return pu
}

// SetType sets the "type" field.
func (pu *ProfileUpdate) SetType(pr profile.Type) *ProfileUpdate {
	pu.mutation.SetType(pr)
	return pu
}

// SetNillableType sets the "type" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableType(pr *profile.Type) *ProfileUpdate {
	if pr != nil {
		pu.SetType(*pr)
	}
	return pu
}

// SetDateOfBirth sets the "date_of_birth" field.
func (pu *ProfileUpdate) SetDateOfBirth(t time.Time) *ProfileUpdate {
	pu.mutation.SetDateOfBirth(t)
	return pu
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (pu *ProfileUpdate) SetNillableDateOfBirth(t *time.Time) *ProfileUpdate {
	if t != nil {
		pu.SetDateOfBirth(*t)
	}
	return pu
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (pu *ProfileUpdate) ClearDateOfBirth() *ProfileUpdate {
	pu.mutation.ClearDateOfBirth()
	return pu
}

// SetWorryTags sets the "worry_tags" field.
func (pu *ProfileUpdate) SetWorryTags(s []string) *ProfileUpdate {
	pu.mutation.SetWorryTags(s)
	return pu
}

// AppendWorryTags appends s to the "worry_tags" field.
func (pu *ProfileUpdate) AppendWorryTags(s []string) *ProfileUpdate {
	pu.mutation.AppendWorryTags(s)
	return pu
}

// ClearWorryTags clears the value of the "worry_tags" field.
func (pu *ProfileUpdate) ClearWorryTags() *ProfileUpdate {
	pu.mutation.ClearWorryTags()
	return pu
}

// Mutation returns the ProfileMutation object of the builder.
func (pu *ProfileUpdate) Mutation() *ProfileMutation {
	return pu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pu *ProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, pu.sqlSave, pu.mutation, pu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pu *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := pu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pu *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := pu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pu *ProfileUpdate) ExecX(ctx context.Context) {
	if err := pu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pu *ProfileUpdate) check() error {
	if v, ok := pu.mutation.HouseholdID(); ok {
		if err := profile.HouseholdIDValidator(v); err != nil {
			return &ValidationError{Name: "household_id", err: fmt.Errorf(`ent: validator failed for field "Profile.household_id": %w`, err)}
		}
	}
	if v, ok := pu.mutation.GetType(); ok {
		if err := profile.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Profile.type": %w`, err)}
		}
	}
	return nil
}

func (pu *ProfileUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	if ps := pu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pu.mutation.HouseholdID(); ok {
		_spec.SetField(profile.FieldHouseholdID, field.TypeString, value)
	}
	if value, ok := pu.mutation.GetType(); ok {
		_spec.SetField(profile.FieldType, field.TypeEnum, value)
	}
	if value, ok := pu.mutation.DateOfBirth(); ok {
		_spec.SetField(profile.FieldDateOfBirth, field.TypeTime, value)
	}
	if pu.mutation.DateOfBirthCleared() {
		_spec.ClearField(profile.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := pu.mutation.WorryTags(); ok {
		_spec.SetField(profile.FieldWorryTags, field.TypeJSON, value)
	}
	if value, ok := pu.mutation.AppendedWorryTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldWorryTags, value)
		})
	}
	if pu.mutation.WorryTagsCleared() {
		_spec.ClearField(profile.FieldWorryTags, field.TypeJSON)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pu.mutation.done = true
	return n, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetHouseholdID sets the "household_id" field.
func (puo *ProfileUpdateOne) SetHouseholdID(s string) *ProfileUpdateOne {
	puo.mutation.SetHouseholdID(s)
	return puo
}

// SetNillableHouseholdID sets the "household_id" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableHouseholdID(s *string) *ProfileUpdateOne {
	if s != nil {
		puo.SetHouseholdID(*s)
	}
	return puo
}

// SetType sets the "type" field.
func (puo *ProfileUpdateOne) SetType(pr profile.Type) *ProfileUpdateOne {
	puo.mutation.SetType(pr)
	return puo
}

// SetNillableType sets the "type" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableType(pr *profile.Type) *ProfileUpdateOne {
	if pr != nil {
		puo.SetType(*pr)
	}
	return puo
}

// SetDateOfBirth sets the "date_of_birth" field.
func (puo *ProfileUpdateOne) SetDateOfBirth(t time.Time) *ProfileUpdateOne {
	puo.mutation.SetDateOfBirth(t)
	return puo
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (puo *ProfileUpdateOne) SetNillableDateOfBirth(t *time.Time) *ProfileUpdateOne {
	if t != nil {
		puo.SetDateOfBirth(*t)
	}
	return puo
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (puo *ProfileUpdateOne) ClearDateOfBirth() *ProfileUpdateOne {
	puo.mutation.ClearDateOfBirth()
	return puo
}

// SetWorryTags sets the "worry_tags" field.
func (puo *ProfileUpdateOne) SetWorryTags(s []string) *ProfileUpdateOne {
	puo.mutation.SetWorryTags(s)
	return puo
}

// AppendWorryTags appends s to the "worry_tags" field.
func (puo *ProfileUpdateOne) AppendWorryTags(s []string) *ProfileUpdateOne {
	puo.mutation.AppendWorryTags(s)
	return puo
}

// ClearWorryTags clears the value of the "worry_tags" field.
func (puo *ProfileUpdateOne) ClearWorryTags() *ProfileUpdateOne {
	puo.mutation.ClearWorryTags()
	return puo
}

// Mutation returns the ProfileMutation object of the builder.
func (puo *ProfileUpdateOne) Mutation() *ProfileMutation {
	return puo.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (puo *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	puo.mutation.Where(ps...)
	return puo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (puo *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	puo.fields = append([]string{field}, fields...)
	return puo
}

// Save executes the query and returns the updated Profile entity.
func (puo *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	return withHooks(ctx, puo.sqlSave, puo.mutation, puo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (puo *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := puo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (puo *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := puo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (puo *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := puo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (puo *ProfileUpdateOne) check() error {
	if v, ok := puo.mutation.HouseholdID(); ok {
		if err := profile.HouseholdIDValidator(v); err != nil {
			return &ValidationError{Name: "household_id", err: fmt.Errorf(`ent: validator failed for field "Profile.household_id": %w`, err)}
		}
	}
	if v, ok := puo.mutation.GetType(); ok {
		if err := profile.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Profile.type": %w`, err)}
		}
	}
	return nil
}

func (puo *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := puo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	id, ok := puo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := puo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := puo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := puo.mutation.HouseholdID(); ok {
		_spec.SetField(profile.FieldHouseholdID, field.TypeString, value)
	}
	if value, ok := puo.mutation.GetType(); ok {
		_spec.SetField(profile.FieldType, field.TypeEnum, value)
	}
	if value, ok := puo.mutation.DateOfBirth(); ok {
		_spec.SetField(profile.FieldDateOfBirth, field.TypeTime, value)
	}
	if puo.mutation.DateOfBirthCleared() {
		_spec.ClearField(profile.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := puo.mutation.WorryTags(); ok {
		_spec.SetField(profile.FieldWorryTags, field.TypeJSON, value)
	}
	if value, ok := puo.mutation.AppendedWorryTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldWorryTags, value)
		})
	}
	if puo.mutation.WorryTagsCleared() {
		_spec.ClearField(profile.FieldWorryTags, field.TypeJSON)
	}
	_node = &Profile{config: puo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, puo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	puo.mutation.done = true
	return _node, nil
}
