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
	"github.com/confscout/scout/ent/calendarevent"
	"github.com/confscout/scout/ent/predicate"
)

// CalendarEventUpdate is the builder for updating CalendarEvent entities.
type CalendarEventUpdate struct {
	config
	hooks    []Hook
	mutation *CalendarEventMutation
}

// Where appends a list predicates to the CalendarEventUpdate builder.
func (_u *CalendarEventUpdate) Where(ps ...predicate.CalendarEvent) *CalendarEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CalendarEventUpdate) SetTitle(v string) *CalendarEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableTitle(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStart sets the "start" field.
func (_u *CalendarEventUpdate) SetStart(v time.Time) *CalendarEventUpdate {
	_u.mutation.SetStart(v)
	return _u
}

// SetNillableStart sets the "start" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableStart(v *time.Time) *CalendarEventUpdate {
	if v != nil {
		_u.SetStart(*v)
	}
	return _u
}

// SetEnd sets the "end" field.
func (_u *CalendarEventUpdate) SetEnd(v time.Time) *CalendarEventUpdate {
	_u.mutation.SetEnd(v)
	return _u
}

// SetNillableEnd sets the "end" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableEnd(v *time.Time) *CalendarEventUpdate {
	if v != nil {
		_u.SetEnd(*v)
	}
	return _u
}

// SetAttendees sets the "attendees" field.
func (_u *CalendarEventUpdate) SetAttendees(v []string) *CalendarEventUpdate {
	_u.mutation.SetAttendees(v)
	return _u
}

// AppendAttendees appends value to the "attendees" field.
func (_u *CalendarEventUpdate) AppendAttendees(v []string) *CalendarEventUpdate {
	_u.mutation.AppendAttendees(v)
	return _u
}

// ClearAttendees clears the value of the "attendees" field.
func (_u *CalendarEventUpdate) ClearAttendees() *CalendarEventUpdate {
	_u.mutation.ClearAttendees()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *CalendarEventUpdate) SetEventType(v string) *CalendarEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableEventType(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CalendarEventUpdate) SetCategory(v string) *CalendarEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableCategory(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *CalendarEventUpdate) ClearCategory() *CalendarEventUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetStage sets the "stage" field.
func (_u *CalendarEventUpdate) SetStage(v string) *CalendarEventUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableStage(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *CalendarEventUpdate) ClearStage() *CalendarEventUpdate {
	_u.mutation.ClearStage()
	return _u
}

// Mutation returns the CalendarEventMutation object of the builder.
func (_u *CalendarEventUpdate) Mutation() *CalendarEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalendarEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalendarEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CalendarEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(calendarevent.Table, calendarevent.Columns, sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(calendarevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Start(); ok {
		_spec.SetField(calendarevent.FieldStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.End(); ok {
		_spec.SetField(calendarevent.FieldEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Attendees(); ok {
		_spec.SetField(calendarevent.FieldAttendees, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttendees(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, calendarevent.FieldAttendees, value)
		})
	}
	if _u.mutation.AttendeesCleared() {
		_spec.ClearField(calendarevent.FieldAttendees, field.TypeJSON)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(calendarevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(calendarevent.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(calendarevent.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(calendarevent.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(calendarevent.FieldStage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalendarEventUpdateOne is the builder for updating a single CalendarEvent entity.
type CalendarEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalendarEventMutation
}

// SetTitle sets the "title" field.
func (_u *CalendarEventUpdateOne) SetTitle(v string) *CalendarEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableTitle(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStart sets the "start" field.
func (_u *CalendarEventUpdateOne) SetStart(v time.Time) *CalendarEventUpdateOne {
	_u.mutation.SetStart(v)
	return _u
}

// SetNillableStart sets the "start" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableStart(v *time.Time) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetStart(*v)
	}
	return _u
}

// SetEnd sets the "end" field.
func (_u *CalendarEventUpdateOne) SetEnd(v time.Time) *CalendarEventUpdateOne {
	_u.mutation.SetEnd(v)
	return _u
}

// SetNillableEnd sets the "end" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableEnd(v *time.Time) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetEnd(*v)
	}
	return _u
}

// SetAttendees sets the "attendees" field.
func (_u *CalendarEventUpdateOne) SetAttendees(v []string) *CalendarEventUpdateOne {
	_u.mutation.SetAttendees(v)
	return _u
}

// AppendAttendees appends value to the "attendees" field.
func (_u *CalendarEventUpdateOne) AppendAttendees(v []string) *CalendarEventUpdateOne {
	_u.mutation.AppendAttendees(v)
	return _u
}

// ClearAttendees clears the value of the "attendees" field.
func (_u *CalendarEventUpdateOne) ClearAttendees() *CalendarEventUpdateOne {
	_u.mutation.ClearAttendees()
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *CalendarEventUpdateOne) SetEventType(v string) *CalendarEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableEventType(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CalendarEventUpdateOne) SetCategory(v string) *CalendarEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableCategory(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *CalendarEventUpdateOne) ClearCategory() *CalendarEventUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetStage sets the "stage" field.
func (_u *CalendarEventUpdateOne) SetStage(v string) *CalendarEventUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableStage(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *CalendarEventUpdateOne) ClearStage() *CalendarEventUpdateOne {
	_u.mutation.ClearStage()
	return _u
}

// Mutation returns the CalendarEventMutation object of the builder.
func (_u *CalendarEventUpdateOne) Mutation() *CalendarEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CalendarEventUpdate builder.
func (_u *CalendarEventUpdateOne) Where(ps ...predicate.CalendarEvent) *CalendarEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalendarEventUpdateOne) Select(field string, fields ...string) *CalendarEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalendarEvent entity.
func (_u *CalendarEventUpdateOne) Save(ctx context.Context) (*CalendarEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarEventUpdateOne) SaveX(ctx context.Context) *CalendarEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalendarEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CalendarEventUpdateOne) sqlSave(ctx context.Context) (_node *CalendarEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(calendarevent.Table, calendarevent.Columns, sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CalendarEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calendarevent.FieldID)
		for _, f := range fields {
			if !calendarevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != calendarevent.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(calendarevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Start(); ok {
		_spec.SetField(calendarevent.FieldStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.End(); ok {
		_spec.SetField(calendarevent.FieldEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Attendees(); ok {
		_spec.SetField(calendarevent.FieldAttendees, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttendees(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, calendarevent.FieldAttendees, value)
		})
	}
	if _u.mutation.AttendeesCleared() {
		_spec.ClearField(calendarevent.FieldAttendees, field.TypeJSON)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(calendarevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(calendarevent.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(calendarevent.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(calendarevent.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(calendarevent.FieldStage, field.TypeString)
	}
	_node = &CalendarEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
