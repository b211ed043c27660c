// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lessonq/ent/scheduleevent"
)

// ScheduleEventCreate is the builder for creating a ScheduleEvent entity.
type ScheduleEventCreate struct {
	config
	mutation *ScheduleEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ScheduleEventCreate) SetSequence(v int64) *ScheduleEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ScheduleEventCreate) SetTimestamp(v time.Time) *ScheduleEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ScheduleEventCreate) SetNillableTimestamp(v *time.Time) *ScheduleEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ScheduleEventCreate) SetUserID(v string) *ScheduleEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTrack sets the "track" field.
func (_c *ScheduleEventCreate) SetTrack(v string) *ScheduleEventCreate {
	_c.mutation.SetTrack(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ScheduleEventCreate) SetKind(v string) *ScheduleEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *ScheduleEventCreate) SetDay(v string) *ScheduleEventCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetLessonNos sets the "lesson_nos" field.
func (_c *ScheduleEventCreate) SetLessonNos(v []int) *ScheduleEventCreate {
	_c.mutation.SetLessonNos(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *ScheduleEventCreate) SetRunID(v string) *ScheduleEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *ScheduleEventCreate) SetNillableRunID(v *string) *ScheduleEventCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// Mutation returns the ScheduleEventMutation object of the builder.
func (_c *ScheduleEventCreate) Mutation() *ScheduleEventMutation {
	return _c.mutation
}

// Save creates the ScheduleEvent in the database.
func (_c *ScheduleEventCreate) Save(ctx context.Context) (*ScheduleEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduleEventCreate) SaveX(ctx context.Context) *ScheduleEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduleEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := scheduleevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.RunID(); !ok {
		v := scheduleevent.DefaultRunID
		_c.mutation.SetRunID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduleEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ScheduleEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ScheduleEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ScheduleEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := scheduleevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Track(); !ok {
		return &ValidationError{Name: "track", err: errors.New(`ent: missing required field "ScheduleEvent.track"`)}
	}
	if v, ok := _c.mutation.Track(); ok {
		if err := scheduleevent.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "ScheduleEvent.track": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ScheduleEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := scheduleevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ScheduleEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "ScheduleEvent.day"`)}
	}
	if _, ok := _c.mutation.LessonNos(); !ok {
		return &ValidationError{Name: "lesson_nos", err: errors.New(`ent: missing required field "ScheduleEvent.lesson_nos"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ScheduleEvent.run_id"`)}
	}
	return nil
}

func (_c *ScheduleEventCreate) sqlSave(ctx context.Context) (*ScheduleEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduleEventCreate) createSpec() (*ScheduleEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduleEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduleevent.Table, sqlgraph.NewFieldSpec(scheduleevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(scheduleevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(scheduleevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(scheduleevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Track(); ok {
		_spec.SetField(scheduleevent.FieldTrack, field.TypeString, value)
		_node.Track = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(scheduleevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(scheduleevent.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.LessonNos(); ok {
		_spec.SetField(scheduleevent.FieldLessonNos, field.TypeJSON, value)
		_node.LessonNos = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(scheduleevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	return _node, _spec
}

// ScheduleEventCreateBulk is the builder for creating many ScheduleEvent entities in bulk.
type ScheduleEventCreateBulk struct {
	config
	err      error
	builders []*ScheduleEventCreate
}

// Save creates the ScheduleEvent entities in the database.
func (_c *ScheduleEventCreateBulk) Save(ctx context.Context) ([]*ScheduleEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduleEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduleEventMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScheduleEventCreateBulk) SaveX(ctx context.Context) []*ScheduleEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
