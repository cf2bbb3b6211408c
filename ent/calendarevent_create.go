// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/confscout/scout/ent/calendarevent"
)

// CalendarEventCreate is the builder for creating a CalendarEvent entity.
type CalendarEventCreate struct {
	config
	mutation *CalendarEventMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *CalendarEventCreate) SetTitle(v string) *CalendarEventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetStart sets the "start" field.
func (_c *CalendarEventCreate) SetStart(v time.Time) *CalendarEventCreate {
	_c.mutation.SetStart(v)
	return _c
}

// SetEnd sets the "end" field.
func (_c *CalendarEventCreate) SetEnd(v time.Time) *CalendarEventCreate {
	_c.mutation.SetEnd(v)
	return _c
}

// SetAttendees sets the "attendees" field.
func (_c *CalendarEventCreate) SetAttendees(v []string) *CalendarEventCreate {
	_c.mutation.SetAttendees(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *CalendarEventCreate) SetEventType(v string) *CalendarEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableEventType(v *string) *CalendarEventCreate {
	if v != nil {
		_c.SetEventType(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *CalendarEventCreate) SetCategory(v string) *CalendarEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableCategory(v *string) *CalendarEventCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *CalendarEventCreate) SetStage(v string) *CalendarEventCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableStage(v *string) *CalendarEventCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CalendarEventCreate) SetCreatedAt(v time.Time) *CalendarEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableCreatedAt(v *time.Time) *CalendarEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CalendarEventCreate) SetID(v string) *CalendarEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CalendarEventMutation object of the builder.
func (_c *CalendarEventCreate) Mutation() *CalendarEventMutation {
	return _c.mutation
}

// Save creates the CalendarEvent in the database.
func (_c *CalendarEventCreate) Save(ctx context.Context) (*CalendarEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalendarEventCreate) SaveX(ctx context.Context) *CalendarEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CalendarEventCreate) defaults() {
	if _, ok := _c.mutation.EventType(); !ok {
		v := calendarevent.DefaultEventType
		_c.mutation.SetEventType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := calendarevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalendarEventCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CalendarEvent.title"`)}
	}
	if _, ok := _c.mutation.Start(); !ok {
		return &ValidationError{Name: "start", err: errors.New(`ent: missing required field "CalendarEvent.start"`)}
	}
	if _, ok := _c.mutation.End(); !ok {
		return &ValidationError{Name: "end", err: errors.New(`ent: missing required field "CalendarEvent.end"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "CalendarEvent.event_type"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CalendarEvent.created_at"`)}
	}
	return nil
}

func (_c *CalendarEventCreate) sqlSave(ctx context.Context) (*CalendarEvent, error) {
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
			return nil, fmt.Errorf("unexpected CalendarEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CalendarEventCreate) createSpec() (*CalendarEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CalendarEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calendarevent.Table, sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(calendarevent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Start(); ok {
		_spec.SetField(calendarevent.FieldStart, field.TypeTime, value)
		_node.Start = value
	}
	if value, ok := _c.mutation.End(); ok {
		_spec.SetField(calendarevent.FieldEnd, field.TypeTime, value)
		_node.End = value
	}
	if value, ok := _c.mutation.Attendees(); ok {
		_spec.SetField(calendarevent.FieldAttendees, field.TypeJSON, value)
		_node.Attendees = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(calendarevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(calendarevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(calendarevent.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(calendarevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CalendarEventCreateBulk is the builder for creating many CalendarEvent entities in bulk.
type CalendarEventCreateBulk struct {
	config
	err      error
	builders []*CalendarEventCreate
}

// Save creates the CalendarEvent entities in the database.
func (_c *CalendarEventCreateBulk) Save(ctx context.Context) ([]*CalendarEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CalendarEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalendarEventMutation)
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
func (_c *CalendarEventCreateBulk) SaveX(ctx context.Context) []*CalendarEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
