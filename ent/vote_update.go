// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/confscout/scout/ent/predicate"
	"github.com/confscout/scout/ent/vote"
)

// VoteUpdate is the builder for updating Vote entities.
type VoteUpdate struct {
	config
	hooks    []Hook
	mutation *VoteMutation
}

// Where appends a list predicates to the VoteUpdate builder.
func (_u *VoteUpdate) Where(ps ...predicate.Vote) *VoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *VoteUpdate) SetUserID(v string) *VoteUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *VoteUpdate) SetNillableUserID(v *string) *VoteUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStartupID sets the "startup_id" field.
func (_u *VoteUpdate) SetStartupID(v int64) *VoteUpdate {
	_u.mutation.ResetStartupID()
	_u.mutation.SetStartupID(v)
	return _u
}

// SetNillableStartupID sets the "startup_id" field if the given value is not nil.
func (_u *VoteUpdate) SetNillableStartupID(v *int64) *VoteUpdate {
	if v != nil {
		_u.SetStartupID(*v)
	}
	return _u
}

// AddStartupID adds value to the "startup_id" field.
func (_u *VoteUpdate) AddStartupID(v int64) *VoteUpdate {
	_u.mutation.AddStartupID(v)
	return _u
}

// SetInterested sets the "interested" field.
func (_u *VoteUpdate) SetInterested(v bool) *VoteUpdate {
	_u.mutation.SetInterested(v)
	return _u
}

// SetNillableInterested sets the "interested" field if the given value is not nil.
func (_u *VoteUpdate) SetNillableInterested(v *bool) *VoteUpdate {
	if v != nil {
		_u.SetInterested(*v)
	}
	return _u
}

// Mutation returns the VoteMutation object of the builder.
func (_u *VoteUpdate) Mutation() *VoteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VoteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(vote.Table, vote.Columns, sqlgraph.NewFieldSpec(vote.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(vote.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartupID(); ok {
		_spec.SetField(vote.FieldStartupID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStartupID(); ok {
		_spec.AddField(vote.FieldStartupID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Interested(); ok {
		_spec.SetField(vote.FieldInterested, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VoteUpdateOne is the builder for updating a single Vote entity.
type VoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VoteMutation
}

// SetUserID sets the "user_id" field.
func (_u *VoteUpdateOne) SetUserID(v string) *VoteUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *VoteUpdateOne) SetNillableUserID(v *string) *VoteUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStartupID sets the "startup_id" field.
func (_u *VoteUpdateOne) SetStartupID(v int64) *VoteUpdateOne {
	_u.mutation.ResetStartupID()
	_u.mutation.SetStartupID(v)
	return _u
}

// SetNillableStartupID sets the "startup_id" field if the given value is not nil.
func (_u *VoteUpdateOne) SetNillableStartupID(v *int64) *VoteUpdateOne {
	if v != nil {
		_u.SetStartupID(*v)
	}
	return _u
}

// AddStartupID adds value to the "startup_id" field.
func (_u *VoteUpdateOne) AddStartupID(v int64) *VoteUpdateOne {
	_u.mutation.AddStartupID(v)
	return _u
}

// SetInterested sets the "interested" field.
func (_u *VoteUpdateOne) SetInterested(v bool) *VoteUpdateOne {
	_u.mutation.SetInterested(v)
	return _u
}

// SetNillableInterested sets the "interested" field if the given value is not nil.
func (_u *VoteUpdateOne) SetNillableInterested(v *bool) *VoteUpdateOne {
	if v != nil {
		_u.SetInterested(*v)
	}
	return _u
}

// Mutation returns the VoteMutation object of the builder.
func (_u *VoteUpdateOne) Mutation() *VoteMutation {
	return _u.mutation
}

// Where appends a list predicates to the VoteUpdate builder.
func (_u *VoteUpdateOne) Where(ps ...predicate.Vote) *VoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VoteUpdateOne) Select(field string, fields ...string) *VoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vote entity.
func (_u *VoteUpdateOne) Save(ctx context.Context) (*Vote, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoteUpdateOne) SaveX(ctx context.Context) *Vote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VoteUpdateOne) sqlSave(ctx context.Context) (_node *Vote, err error) {
	_spec := sqlgraph.NewUpdateSpec(vote.Table, vote.Columns, sqlgraph.NewFieldSpec(vote.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vote.FieldID)
		for _, f := range fields {
			if !vote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vote.FieldID {
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
		_spec.SetField(vote.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartupID(); ok {
		_spec.SetField(vote.FieldStartupID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStartupID(); ok {
		_spec.AddField(vote.FieldStartupID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Interested(); ok {
		_spec.SetField(vote.FieldInterested, field.TypeBool, value)
	}
	_node = &Vote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
