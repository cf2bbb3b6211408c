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
	"github.com/confscout/scout/ent/insight"
	"github.com/confscout/scout/ent/predicate"
	"github.com/confscout/scout/ent/schema/schematype"
)

// InsightUpdate is the builder for updating Insight entities.
type InsightUpdate struct {
	config
	hooks    []Hook
	mutation *InsightMutation
}

// Where appends a list predicates to the InsightUpdate builder.
func (_u *InsightUpdate) Where(ps ...predicate.Insight) *InsightUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InsightUpdate) SetSessionID(v string) *InsightUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableSessionID(v *string) *InsightUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetMeetingID sets the "meeting_id" field.
func (_u *InsightUpdate) SetMeetingID(v string) *InsightUpdate {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableMeetingID(v *string) *InsightUpdate {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InsightUpdate) SetUserID(v string) *InsightUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableUserID(v *string) *InsightUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStartupName sets the "startup_name" field.
func (_u *InsightUpdate) SetStartupName(v string) *InsightUpdate {
	_u.mutation.SetStartupName(v)
	return _u
}

// SetNillableStartupName sets the "startup_name" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableStartupName(v *string) *InsightUpdate {
	if v != nil {
		_u.SetStartupName(*v)
	}
	return _u
}

// SetStructuredQa sets the "structured_qa" field.
func (_u *InsightUpdate) SetStructuredQa(v []schematype.QAPair) *InsightUpdate {
	_u.mutation.SetStructuredQa(v)
	return _u
}

// AppendStructuredQa appends value to the "structured_qa" field.
func (_u *InsightUpdate) AppendStructuredQa(v []schematype.QAPair) *InsightUpdate {
	_u.mutation.AppendStructuredQa(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InsightUpdate) SetUpdatedAt(v time.Time) *InsightUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InsightMutation object of the builder.
func (_u *InsightUpdate) Mutation() *InsightMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InsightUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InsightUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InsightUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := insight.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *InsightUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(insight.Table, insight.Columns, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(insight.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingID(); ok {
		_spec.SetField(insight.FieldMeetingID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(insight.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartupName(); ok {
		_spec.SetField(insight.FieldStartupName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StructuredQa(); ok {
		_spec.SetField(insight.FieldStructuredQa, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStructuredQa(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, insight.FieldStructuredQa, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(insight.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InsightUpdateOne is the builder for updating a single Insight entity.
type InsightUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InsightMutation
}

// SetSessionID sets the "session_id" field.
func (_u *InsightUpdateOne) SetSessionID(v string) *InsightUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableSessionID(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetMeetingID sets the "meeting_id" field.
func (_u *InsightUpdateOne) SetMeetingID(v string) *InsightUpdateOne {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableMeetingID(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InsightUpdateOne) SetUserID(v string) *InsightUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableUserID(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStartupName sets the "startup_name" field.
func (_u *InsightUpdateOne) SetStartupName(v string) *InsightUpdateOne {
	_u.mutation.SetStartupName(v)
	return _u
}

// SetNillableStartupName sets the "startup_name" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableStartupName(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetStartupName(*v)
	}
	return _u
}

// SetStructuredQa sets the "structured_qa" field.
func (_u *InsightUpdateOne) SetStructuredQa(v []schematype.QAPair) *InsightUpdateOne {
	_u.mutation.SetStructuredQa(v)
	return _u
}

// AppendStructuredQa appends value to the "structured_qa" field.
func (_u *InsightUpdateOne) AppendStructuredQa(v []schematype.QAPair) *InsightUpdateOne {
	_u.mutation.AppendStructuredQa(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InsightUpdateOne) SetUpdatedAt(v time.Time) *InsightUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InsightMutation object of the builder.
func (_u *InsightUpdateOne) Mutation() *InsightMutation {
	return _u.mutation
}

// Where appends a list predicates to the InsightUpdate builder.
func (_u *InsightUpdateOne) Where(ps ...predicate.Insight) *InsightUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InsightUpdateOne) Select(field string, fields ...string) *InsightUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Insight entity.
func (_u *InsightUpdateOne) Save(ctx context.Context) (*Insight, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightUpdateOne) SaveX(ctx context.Context) *Insight {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InsightUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InsightUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := insight.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *InsightUpdateOne) sqlSave(ctx context.Context) (_node *Insight, err error) {
	_spec := sqlgraph.NewUpdateSpec(insight.Table, insight.Columns, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Insight.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insight.FieldID)
		for _, f := range fields {
			if !insight.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != insight.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(insight.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingID(); ok {
		_spec.SetField(insight.FieldMeetingID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(insight.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartupName(); ok {
		_spec.SetField(insight.FieldStartupName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StructuredQa(); ok {
		_spec.SetField(insight.FieldStructuredQa, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStructuredQa(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, insight.FieldStructuredQa, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(insight.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Insight{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
