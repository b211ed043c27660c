// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lessonq/ent/predicate"
	"github.com/abhisek/lessonq/ent/scheduleevent"
)

// ScheduleEventUpdate is the builder for updating ScheduleEvent entities.
type ScheduleEventUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduleEventMutation
}

// Where appends a list predicates to the ScheduleEventUpdate builder.
func (_u *ScheduleEventUpdate) Where(ps ...predicate.ScheduleEvent) *ScheduleEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ScheduleEventUpdate) SetUserID(v string) *ScheduleEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ScheduleEventUpdate) SetNillableUserID(v *string) *ScheduleEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *ScheduleEventUpdate) SetTrack(v string) *ScheduleEventUpdate {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *ScheduleEventUpdate) SetNillableTrack(v *string) *ScheduleEventUpdate {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ScheduleEventUpdate) SetKind(v string) *ScheduleEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ScheduleEventUpdate) SetNillableKind(v *string) *ScheduleEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *ScheduleEventUpdate) SetDay(v string) *ScheduleEventUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *ScheduleEventUpdate) SetNillableDay(v *string) *ScheduleEventUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetLessonNos sets the "lesson_nos" field.
func (_u *ScheduleEventUpdate) SetLessonNos(v []int) *ScheduleEventUpdate {
	_u.mutation.SetLessonNos(v)
	return _u
}

// AppendLessonNos appends value to the "lesson_nos" field.
func (_u *ScheduleEventUpdate) AppendLessonNos(v []int) *ScheduleEventUpdate {
	_u.mutation.AppendLessonNos(v)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ScheduleEventUpdate) SetRunID(v string) *ScheduleEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ScheduleEventUpdate) SetNillableRunID(v *string) *ScheduleEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// Mutation returns the ScheduleEventMutation object of the builder.
func (_u *ScheduleEventUpdate) Mutation() *ScheduleEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduleEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduleEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduleEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := scheduleevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Track(); ok {
		if err := scheduleevent.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "ScheduleEvent.track": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := scheduleevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ScheduleEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduleEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduleevent.Table, scheduleevent.Columns, sqlgraph.NewFieldSpec(scheduleevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(scheduleevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(scheduleevent.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(scheduleevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(scheduleevent.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonNos(); ok {
		_spec.SetField(scheduleevent.FieldLessonNos, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLessonNos(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduleevent.FieldLessonNos, value)
		})
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(scheduleevent.FieldRunID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduleEventUpdateOne is the builder for updating a single ScheduleEvent entity.
type ScheduleEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduleEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *ScheduleEventUpdateOne) SetUserID(v string) *ScheduleEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ScheduleEventUpdateOne) SetNillableUserID(v *string) *ScheduleEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *ScheduleEventUpdateOne) SetTrack(v string) *ScheduleEventUpdateOne {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *ScheduleEventUpdateOne) SetNillableTrack(v *string) *ScheduleEventUpdateOne {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ScheduleEventUpdateOne) SetKind(v string) *ScheduleEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ScheduleEventUpdateOne) SetNillableKind(v *string) *ScheduleEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *ScheduleEventUpdateOne) SetDay(v string) *ScheduleEventUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *ScheduleEventUpdateOne) SetNillableDay(v *string) *ScheduleEventUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetLessonNos sets the "lesson_nos" field.
func (_u *ScheduleEventUpdateOne) SetLessonNos(v []int) *ScheduleEventUpdateOne {
	_u.mutation.SetLessonNos(v)
	return _u
}

// AppendLessonNos appends value to the "lesson_nos" field.
func (_u *ScheduleEventUpdateOne) AppendLessonNos(v []int) *ScheduleEventUpdateOne {
	_u.mutation.AppendLessonNos(v)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ScheduleEventUpdateOne) SetRunID(v string) *ScheduleEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ScheduleEventUpdateOne) SetNillableRunID(v *string) *ScheduleEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// Mutation returns the ScheduleEventMutation object of the builder.
func (_u *ScheduleEventUpdateOne) Mutation() *ScheduleEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduleEventUpdate builder.
func (_u *ScheduleEventUpdateOne) Where(ps ...predicate.ScheduleEvent) *ScheduleEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduleEventUpdateOne) Select(field string, fields ...string) *ScheduleEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduleEvent entity.
func (_u *ScheduleEventUpdateOne) Save(ctx context.Context) (*ScheduleEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleEventUpdateOne) SaveX(ctx context.Context) *ScheduleEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduleEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduleEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := scheduleevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Track(); ok {
		if err := scheduleevent.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "ScheduleEvent.track": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := scheduleevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ScheduleEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduleEventUpdateOne) sqlSave(ctx context.Context) (_node *ScheduleEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduleevent.Table, scheduleevent.Columns, sqlgraph.NewFieldSpec(scheduleevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduleEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduleevent.FieldID)
		for _, f := range fields {
			if !scheduleevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduleevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(scheduleevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(scheduleevent.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(scheduleevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(scheduleevent.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonNos(); ok {
		_spec.SetField(scheduleevent.FieldLessonNos, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLessonNos(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scheduleevent.FieldLessonNos, value)
		})
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(scheduleevent.FieldRunID, field.TypeString, value)
	}
	_node = &ScheduleEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
