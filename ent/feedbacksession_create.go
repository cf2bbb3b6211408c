// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/confscout/scout/ent/feedbacksession"
	"github.com/confscout/scout/ent/insight"
	"github.com/confscout/scout/ent/schema/schematype"
)

// FeedbackSessionCreate is the builder for creating a FeedbackSession entity.
type FeedbackSessionCreate struct {
	config
	mutation *FeedbackSessionMutation
	hooks    []Hook
}

// SetMeetingID sets the "meeting_id" field.
func (_c *FeedbackSessionCreate) SetMeetingID(v string) *FeedbackSessionCreate {
	_c.mutation.SetMeetingID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *FeedbackSessionCreate) SetUserID(v string) *FeedbackSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStartupID sets the "startup_id" field.
func (_c *FeedbackSessionCreate) SetStartupID(v int64) *FeedbackSessionCreate {
	_c.mutation.SetStartupID(v)
	return _c
}

// SetNillableStartupID sets the "startup_id" field if the given value is not nil.
func (_c *FeedbackSessionCreate) SetNillableStartupID(v *int64) *FeedbackSessionCreate {
	if v != nil {
		_c.SetStartupID(*v)
	}
	return _c
}

// SetStartupName sets the "startup_name" field.
func (_c *FeedbackSessionCreate) SetStartupName(v string) *FeedbackSessionCreate {
	_c.mutation.SetStartupName(v)
	return _c
}

// SetStartupDescription sets the "startup_description" field.
func (_c *FeedbackSessionCreate) SetStartupDescription(v string) *FeedbackSessionCreate {
	_c.mutation.SetStartupDescription(v)
	return _c
}

// SetNillableStartupDescription sets the "startup_description" field if the given value is not nil.
func (_c *FeedbackSessionCreate) SetNillableStartupDescription(v *string) *FeedbackSessionCreate {
	if v != nil {
		_c.SetStartupDescription(*v)
	}
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *FeedbackSessionCreate) SetQuestions(v []schematype.Question) *FeedbackSessionCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *FeedbackSessionCreate) SetAnswers(v map[string]string) *FeedbackSessionCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetCurrentIndex sets the "current_index" field.
func (_c *FeedbackSessionCreate) SetCurrentIndex(v int) *FeedbackSessionCreate {
	_c.mutation.SetCurrentIndex(v)
	return _c
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_c *FeedbackSessionCreate) SetNillableCurrentIndex(v *int) *FeedbackSessionCreate {
	if v != nil {
		_c.SetCurrentIndex(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *FeedbackSessionCreate) SetStatus(v feedbacksession.Status) *FeedbackSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FeedbackSessionCreate) SetNillableStatus(v *feedbacksession.Status) *FeedbackSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetHistory sets the "history" field.
func (_c *FeedbackSessionCreate) SetHistory(v []schematype.ChatTurn) *FeedbackSessionCreate {
	_c.mutation.SetHistory(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeedbackSessionCreate) SetCreatedAt(v time.Time) *FeedbackSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeedbackSessionCreate) SetNillableCreatedAt(v *time.Time) *FeedbackSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *FeedbackSessionCreate) SetLastActivityAt(v time.Time) *FeedbackSessionCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *FeedbackSessionCreate) SetNillableLastActivityAt(v *time.Time) *FeedbackSessionCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *FeedbackSessionCreate) SetCompletedAt(v time.Time) *FeedbackSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *FeedbackSessionCreate) SetNillableCompletedAt(v *time.Time) *FeedbackSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FeedbackSessionCreate) SetID(v string) *FeedbackSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInsightID sets the "insight" edge to the Insight entity by ID.
func (_c *FeedbackSessionCreate) SetInsightID(id string) *FeedbackSessionCreate {
	_c.mutation.SetInsightID(id)
	return _c
}

// SetNillableInsightID sets the "insight" edge to the Insight entity by ID if the given value is not nil.
func (_c *FeedbackSessionCreate) SetNillableInsightID(id *string) *FeedbackSessionCreate {
	if id != nil {
		_c = _c.SetInsightID(*id)
	}
	return _c
}

// SetInsight sets the "insight" edge to the Insight entity.
func (_c *FeedbackSessionCreate) SetInsight(v *Insight) *FeedbackSessionCreate {
	return _c.SetInsightID(v.ID)
}

// Mutation returns the FeedbackSessionMutation object of the builder.
func (_c *FeedbackSessionCreate) Mutation() *FeedbackSessionMutation {
	return _c.mutation
}

// Save creates the FeedbackSession in the database.
func (_c *FeedbackSessionCreate) Save(ctx context.Context) (*FeedbackSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedbackSessionCreate) SaveX(ctx context.Context) *FeedbackSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedbackSessionCreate) defaults() {
	if _, ok := _c.mutation.CurrentIndex(); !ok {
		v := feedbacksession.DefaultCurrentIndex
		_c.mutation.SetCurrentIndex(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := feedbacksession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := feedbacksession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		v := feedbacksession.DefaultLastActivityAt()
		_c.mutation.SetLastActivityAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedbackSessionCreate) check() error {
	if _, ok := _c.mutation.MeetingID(); !ok {
		return &ValidationError{Name: "meeting_id", err: errors.New(`ent: missing required field "FeedbackSession.meeting_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "FeedbackSession.user_id"`)}
	}
	if _, ok := _c.mutation.StartupName(); !ok {
		return &ValidationError{Name: "startup_name", err: errors.New(`ent: missing required field "FeedbackSession.startup_name"`)}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "FeedbackSession.questions"`)}
	}
	if _, ok := _c.mutation.CurrentIndex(); !ok {
		return &ValidationError{Name: "current_index", err: errors.New(`ent: missing required field "FeedbackSession.current_index"`)}
	}
	if v, ok := _c.mutation.CurrentIndex(); ok {
		if err := feedbacksession.CurrentIndexValidator(v); err != nil {
			return &ValidationError{Name: "current_index", err: fmt.Errorf(`ent: validator failed for field "FeedbackSession.current_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FeedbackSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := feedbacksession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FeedbackSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FeedbackSession.created_at"`)}
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		return &ValidationError{Name: "last_activity_at", err: errors.New(`ent: missing required field "FeedbackSession.last_activity_at"`)}
	}
	return nil
}

func (_c *FeedbackSessionCreate) sqlSave(ctx context.Context) (*FeedbackSession, error) {
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
			return nil, fmt.Errorf("unexpected FeedbackSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FeedbackSessionCreate) createSpec() (*FeedbackSession, *sqlgraph.CreateSpec) {
	var (
		_node = &FeedbackSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feedbacksession.Table, sqlgraph.NewFieldSpec(feedbacksession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MeetingID(); ok {
		_spec.SetField(feedbacksession.FieldMeetingID, field.TypeString, value)
		_node.MeetingID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(feedbacksession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.StartupID(); ok {
		_spec.SetField(feedbacksession.FieldStartupID, field.TypeInt64, value)
		_node.StartupID = value
	}
	if value, ok := _c.mutation.StartupName(); ok {
		_spec.SetField(feedbacksession.FieldStartupName, field.TypeString, value)
		_node.StartupName = value
	}
	if value, ok := _c.mutation.StartupDescription(); ok {
		_spec.SetField(feedbacksession.FieldStartupDescription, field.TypeString, value)
		_node.StartupDescription = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(feedbacksession.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(feedbacksession.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.CurrentIndex(); ok {
		_spec.SetField(feedbacksession.FieldCurrentIndex, field.TypeInt, value)
		_node.CurrentIndex = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(feedbacksession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.History(); ok {
		_spec.SetField(feedbacksession.FieldHistory, field.TypeJSON, value)
		_node.History = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(feedbacksession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(feedbacksession.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(feedbacksession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.InsightIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   feedbacksession.InsightTable,
			Columns: []string{feedbacksession.InsightColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.feedback_session_insight = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FeedbackSessionCreateBulk is the builder for creating many FeedbackSession entities in bulk.
type FeedbackSessionCreateBulk struct {
	config
	err      error
	builders []*FeedbackSessionCreate
}

// Save creates the FeedbackSession entities in the database.
func (_c *FeedbackSessionCreateBulk) Save(ctx context.Context) ([]*FeedbackSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FeedbackSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedbackSessionMutation)
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
func (_c *FeedbackSessionCreateBulk) SaveX(ctx context.Context) []*FeedbackSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
