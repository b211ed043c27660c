// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lessonq/ent/predicate"
	"github.com/abhisek/lessonq/ent/scheduleevent"
)

// ScheduleEventDelete is the builder for deleting a ScheduleEvent entity.
type ScheduleEventDelete struct {
	config
	hooks    []Hook
	mutation *ScheduleEventMutation
}

// Where appends a list predicates to the ScheduleEventDelete builder.
func (_d *ScheduleEventDelete) Where(ps ...predicate.ScheduleEvent) *ScheduleEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ScheduleEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScheduleEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ScheduleEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(scheduleevent.Table, sqlgraph.NewFieldSpec(scheduleevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ScheduleEventDeleteOne is the builder for deleting a single ScheduleEvent entity.
type ScheduleEventDeleteOne struct {
	_d *ScheduleEventDelete
}

// Where appends a list predicates to the ScheduleEventDelete builder.
func (_d *ScheduleEventDeleteOne) Where(ps ...predicate.ScheduleEvent) *ScheduleEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ScheduleEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{scheduleevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScheduleEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
