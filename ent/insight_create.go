// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/confscout/scout/ent/insight"
	"github.com/confscout/scout/ent/schema/schematype"
)

// InsightCreate is the builder for creating a Insight entity.
type InsightCreate struct {
	config
	mutation *InsightMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *InsightCreate) SetSessionID(v string) *InsightCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetMeetingID sets the "meeting_id" field.
func (_c *InsightCreate) SetMeetingID(v string) *InsightCreate {
	_c.mutation.SetMeetingID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *InsightCreate) SetUserID(v string) *InsightCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStartupName sets the "startup_name" field.
func (_c *InsightCreate) SetStartupName(v string) *InsightCreate {
	_c.mutation.SetStartupName(v)
	return _c
}

// SetStructuredQa sets the "structured_qa" field.
func (_c *InsightCreate) SetStructuredQa(v []schematype.QAPair) *InsightCreate {
	_c.mutation.SetStructuredQa(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InsightCreate) SetCreatedAt(v time.Time) *InsightCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InsightCreate) SetNillableCreatedAt(v *time.Time) *InsightCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InsightCreate) SetUpdatedAt(v time.Time) *InsightCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InsightCreate) SetNillableUpdatedAt(v *time.Time) *InsightCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InsightCreate) SetID(v string) *InsightCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InsightMutation object of the builder.
func (_c *InsightCreate) Mutation() *InsightMutation {
	return _c.mutation
}

// Save creates the Insight in the database.
func (_c *InsightCreate) Save(ctx context.Context) (*Insight, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InsightCreate) SaveX(ctx context.Context) *Insight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InsightCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := insight.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := insight.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InsightCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Insight.session_id"`)}
	}
	if _, ok := _c.mutation.MeetingID(); !ok {
		return &ValidationError{Name: "meeting_id", err: errors.New(`ent: missing required field "Insight.meeting_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Insight.user_id"`)}
	}
	if _, ok := _c.mutation.StartupName(); !ok {
		return &ValidationError{Name: "startup_name", err: errors.New(`ent: missing required field "Insight.startup_name"`)}
	}
	if _, ok := _c.mutation.StructuredQa(); !ok {
		return &ValidationError{Name: "structured_qa", err: errors.New(`ent: missing required field "Insight.structured_qa"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Insight.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Insight.updated_at"`)}
	}
	return nil
}

func (_c *InsightCreate) sqlSave(ctx context.Context) (*Insight, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Insight.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InsightCreate) createSpec() (*Insight, *sqlgraph.CreateSpec) {
	var (
		_node = &Insight{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(insight.Table, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(insight.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.MeetingID(); ok {
		_spec.SetField(insight.FieldMeetingID, field.TypeString, value)
		_node.MeetingID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(insight.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.StartupName(); ok {
		_spec.SetField(insight.FieldStartupName, field.TypeString, value)
		_node.StartupName = value
	}
	if value, ok := _c.mutation.StructuredQa(); ok {
		_spec.SetField(insight.FieldStructuredQa, field.TypeJSON, value)
		_node.StructuredQa = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(insight.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(insight.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// InsightCreateBulk is the builder for creating many Insight entities in bulk.
type InsightCreateBulk struct {
	config
	err      error
	builders []*InsightCreate
}

// Save creates the Insight entities in the database.
func (_c *InsightCreateBulk) Save(ctx context.Context) ([]*Insight, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Insight, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InsightMutation)
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
func (_c *InsightCreateBulk) SaveX(ctx context.Context) []*Insight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
