// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lessonq/ent/progressdoc"
)

// ProgressDocCreate is the builder for creating a ProgressDoc entity.
type ProgressDocCreate struct {
	config
	mutation *ProgressDocMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProgressDocCreate) SetUserID(v string) *ProgressDocCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTrack sets the "track" field.
func (_c *ProgressDocCreate) SetTrack(v string) *ProgressDocCreate {
	_c.mutation.SetTrack(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *ProgressDocCreate) SetLevel(v string) *ProgressDocCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *ProgressDocCreate) SetNillableLevel(v *string) *ProgressDocCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetQuota sets the "quota" field.
func (_c *ProgressDocCreate) SetQuota(v int) *ProgressDocCreate {
	_c.mutation.SetQuota(v)
	return _c
}

// SetNillableQuota sets the "quota" field if the given value is not nil.
func (_c *ProgressDocCreate) SetNillableQuota(v *int) *ProgressDocCreate {
	if v != nil {
		_c.SetQuota(*v)
	}
	return _c
}

// SetRevision sets the "revision" field.
func (_c *ProgressDocCreate) SetRevision(v int64) *ProgressDocCreate {
	_c.mutation.SetRevision(v)
	return _c
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_c *ProgressDocCreate) SetNillableRevision(v *int64) *ProgressDocCreate {
	if v != nil {
		_c.SetRevision(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *ProgressDocCreate) SetData(v map[string]interface{}) *ProgressDocCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProgressDocCreate) SetUpdatedAt(v time.Time) *ProgressDocCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProgressDocCreate) SetNillableUpdatedAt(v *time.Time) *ProgressDocCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressDocMutation object of the builder.
func (_c *ProgressDocCreate) Mutation() *ProgressDocMutation {
	return _c.mutation
}

// Save creates the ProgressDoc in the database.
func (_c *ProgressDocCreate) Save(ctx context.Context) (*ProgressDoc, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressDocCreate) SaveX(ctx context.Context) *ProgressDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressDocCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressDocCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressDocCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := progressdoc.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Quota(); !ok {
		v := progressdoc.DefaultQuota
		_c.mutation.SetQuota(v)
	}
	if _, ok := _c.mutation.Revision(); !ok {
		v := progressdoc.DefaultRevision
		_c.mutation.SetRevision(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := progressdoc.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressDocCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ProgressDoc.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := progressdoc.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProgressDoc.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Track(); !ok {
		return &ValidationError{Name: "track", err: errors.New(`ent: missing required field "ProgressDoc.track"`)}
	}
	if v, ok := _c.mutation.Track(); ok {
		if err := progressdoc.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "ProgressDoc.track": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "ProgressDoc.level"`)}
	}
	if _, ok := _c.mutation.Quota(); !ok {
		return &ValidationError{Name: "quota", err: errors.New(`ent: missing required field "ProgressDoc.quota"`)}
	}
	if _, ok := _c.mutation.Revision(); !ok {
		return &ValidationError{Name: "revision", err: errors.New(`ent: missing required field "ProgressDoc.revision"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "ProgressDoc.data"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProgressDoc.updated_at"`)}
	}
	return nil
}

func (_c *ProgressDocCreate) sqlSave(ctx context.Context) (*ProgressDoc, error) {
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

func (_c *ProgressDocCreate) createSpec() (*ProgressDoc, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressDoc{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressdoc.Table, sqlgraph.NewFieldSpec(progressdoc.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(progressdoc.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Track(); ok {
		_spec.SetField(progressdoc.FieldTrack, field.TypeString, value)
		_node.Track = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(progressdoc.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Quota(); ok {
		_spec.SetField(progressdoc.FieldQuota, field.TypeInt, value)
		_node.Quota = value
	}
	if value, ok := _c.mutation.Revision(); ok {
		_spec.SetField(progressdoc.FieldRevision, field.TypeInt64, value)
		_node.Revision = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(progressdoc.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(progressdoc.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProgressDocCreateBulk is the builder for creating many ProgressDoc entities in bulk.
type ProgressDocCreateBulk struct {
	config
	err      error
	builders []*ProgressDocCreate
}

// Save creates the ProgressDoc entities in the database.
func (_c *ProgressDocCreateBulk) Save(ctx context.Context) ([]*ProgressDoc, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressDoc, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressDocMutation)
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
func (_c *ProgressDocCreateBulk) SaveX(ctx context.Context) []*ProgressDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressDocCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressDocCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
