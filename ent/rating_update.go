// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/confscout/scout/ent/predicate"
	"github.com/confscout/scout/ent/rating"
)

// RatingUpdate is the builder for updating Rating entities.
type RatingUpdate struct {
	config
	hooks    []Hook
	mutation *RatingMutation
}

// Where appends a list predicates to the RatingUpdate builder.
func (_u *RatingUpdate) Where(ps ...predicate.Rating) *RatingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RatingUpdate) SetUserID(v string) *RatingUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RatingUpdate) SetNillableUserID(v *string) *RatingUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStartupID sets the "startup_id" field.
func (_u *RatingUpdate) SetStartupID(v int64) *RatingUpdate {
	_u.mutation.ResetStartupID()
	_u.mutation.SetStartupID(v)
	return _u
}

// SetNillableStartupID sets the "startup_id" field if the given value is not nil.
func (_u *RatingUpdate) SetNillableStartupID(v *int64) *RatingUpdate {
	if v != nil {
		_u.SetStartupID(*v)
	}
	return _u
}

// AddStartupID adds value to the "startup_id" field.
func (_u *RatingUpdate) AddStartupID(v int64) *RatingUpdate {
	_u.mutation.AddStartupID(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *RatingUpdate) SetScore(v int) *RatingUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RatingUpdate) SetNillableScore(v *int) *RatingUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RatingUpdate) AddScore(v int) *RatingUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RatingUpdate) SetUpdatedAt(v time.Time) *RatingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RatingMutation object of the builder.
func (_u *RatingUpdate) Mutation() *RatingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RatingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RatingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RatingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RatingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RatingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := rating.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RatingUpdate) check() error {
	if v, ok := _u.mutation.Score(); ok {
		if err := rating.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Rating.score": %w`, err)}
		}
	}
	return nil
}

func (_u *RatingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rating.Table, rating.Columns, sqlgraph.NewFieldSpec(rating.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(rating.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartupID(); ok {
		_spec.SetField(rating.FieldStartupID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStartupID(); ok {
		_spec.AddField(rating.FieldStartupID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(rating.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(rating.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(rating.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rating.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RatingUpdateOne is the builder for updating a single Rating entity.
type RatingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RatingMutation
}

// SetUserID sets the "user_id" field.
func (_u *RatingUpdateOne) SetUserID(v string) *RatingUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RatingUpdateOne) SetNillableUserID(v *string) *RatingUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStartupID sets the "startup_id" field.
func (_u *RatingUpdateOne) SetStartupID(v int64) *RatingUpdateOne {
	_u.mutation.ResetStartupID()
	_u.mutation.SetStartupID(v)
	return _u
}

// SetNillableStartupID sets the "startup_id" field if the given value is not nil.
func (_u *RatingUpdateOne) SetNillableStartupID(v *int64) *RatingUpdateOne {
	if v != nil {
		_u.SetStartupID(*v)
	}
	return _u
}

// AddStartupID adds value to the "startup_id" field.
func (_u *RatingUpdateOne) AddStartupID(v int64) *RatingUpdateOne {
	_u.mutation.AddStartupID(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *RatingUpdateOne) SetScore(v int) *RatingUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RatingUpdateOne) SetNillableScore(v *int) *RatingUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RatingUpdateOne) AddScore(v int) *RatingUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RatingUpdateOne) SetUpdatedAt(v time.Time) *RatingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RatingMutation object of the builder.
func (_u *RatingUpdateOne) Mutation() *RatingMutation {
	return _u.mutation
}

// Where appends a list predicates to the RatingUpdate builder.
func (_u *RatingUpdateOne) Where(ps ...predicate.Rating) *RatingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RatingUpdateOne) Select(field string, fields ...string) *RatingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Rating entity.
func (_u *RatingUpdateOne) Save(ctx context.Context) (*Rating, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RatingUpdateOne) SaveX(ctx context.Context) *Rating {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RatingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RatingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RatingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := rating.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RatingUpdateOne) check() error {
	if v, ok := _u.mutation.Score(); ok {
		if err := rating.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Rating.score": %w`, err)}
		}
	}
	return nil
}

func (_u *RatingUpdateOne) sqlSave(ctx context.Context) (_node *Rating, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rating.Table, rating.Columns, sqlgraph.NewFieldSpec(rating.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Rating.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rating.FieldID)
		for _, f := range fields {
			if !rating.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rating.FieldID {
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
		_spec.SetField(rating.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartupID(); ok {
		_spec.SetField(rating.FieldStartupID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStartupID(); ok {
		_spec.AddField(rating.FieldStartupID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(rating.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(rating.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(rating.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Rating{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rating.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
