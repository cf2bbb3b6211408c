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
	"github.com/confscout/scout/ent/feedbacksession"
	"github.com/confscout/scout/ent/insight"
	"github.com/confscout/scout/ent/predicate"
	"github.com/confscout/scout/ent/schema/schematype"
)

// FeedbackSessionUpdate is the builder for updating FeedbackSession entities.
type FeedbackSessionUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackSessionMutation
}

// Where appends a list predicates to the FeedbackSessionUpdate builder.
func (_u *FeedbackSessionUpdate) Where(ps ...predicate.FeedbackSession) *FeedbackSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMeetingID sets the "meeting_id" field.
func (_u *FeedbackSessionUpdate) SetMeetingID(v string) *FeedbackSessionUpdate {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *FeedbackSessionUpdate) SetNillableMeetingID(v *string) *FeedbackSessionUpdate {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FeedbackSessionUpdate) SetUserID(v string) *FeedbackSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FeedbackSessionUpdate) SetNillableUserID(v *string) *FeedbackSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStartupID sets the "startup_id" field.
func (_u *FeedbackSessionUpdate) SetStartupID(v int64) *FeedbackSessionUpdate {
	_u.mutation.ResetStartupID()
	_u.mutation.SetStartupID(v)
	return _u
}

// SetNillableStartupID sets the "startup_id" field if the given value is not nil.
func (_u *FeedbackSessionUpdate) SetNillableStartupID(v *int64) *FeedbackSessionUpdate {
	if v != nil {
		_u.SetStartupID(*v)
	}
	return _u
}

// AddStartupID adds value to the "startup_id" field.
func (_u *FeedbackSessionUpdate) AddStartupID(v int64) *FeedbackSessionUpdate {
	_u.mutation.AddStartupID(v)
	return _u
}

// ClearStartupID clears the value of the "startup_id" field.
func (_u *FeedbackSessionUpdate) ClearStartupID() *FeedbackSessionUpdate {
	_u.mutation.ClearStartupID()
	return _u
}

// SetStartupName sets the "startup_name" field.
func (_u *FeedbackSessionUpdate) SetStartupName(v string) *FeedbackSessionUpdate {
	_u.mutation.SetStartupName(v)
	return _u
}

// SetNillableStartupName sets the "startup_name" field if the given value is not nil.
func (_u *FeedbackSessionUpdate) SetNillableStartupName(v *string) *FeedbackSessionUpdate {
	if v != nil {
		_u.SetStartupName(*v)
	}
	return _u
}

// SetStartupDescription sets the "startup_description" field.
func (_u *FeedbackSessionUpdate) SetStartupDescription(v string) *FeedbackSessionUpdate {
	_u.mutation.SetStartupDescription(v)
	return _u
}

// SetNillableStartupDescription sets the "startup_description" field if the given value is not nil.
func (_u *FeedbackSessionUpdate) SetNillableStartupDescription(v *string) *FeedbackSessionUpdate {
	if v != nil {
		_u.SetStartupDescription(*v)
	}
	return _u
}

// ClearStartupDescription clears the value of the "startup_description" field.
func (_u *FeedbackSessionUpdate) ClearStartupDescription() *FeedbackSessionUpdate {
	_u.mutation.ClearStartupDescription()
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *FeedbackSessionUpdate) SetQuestions(v []schematype.Question) *FeedbackSessionUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *FeedbackSessionUpdate) AppendQuestions(v []schematype.Question) *FeedbackSessionUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *FeedbackSessionUpdate) SetAnswers(v map[string]string) *FeedbackSessionUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *FeedbackSessionUpdate) ClearAnswers() *FeedbackSessionUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetCurrentIndex sets the "current_index" field.
func (_u *FeedbackSessionUpdate) SetCurrentIndex(v int) *FeedbackSessionUpdate {
	_u.mutation.ResetCurrentIndex()
	_u.mutation.SetCurrentIndex(v)
	return _u
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_u *FeedbackSessionUpdate) SetNillableCurrentIndex(v *int) *FeedbackSessionUpdate {
	if v != nil {
		_u.SetCurrentIndex(*v)
	}
	return _u
}

// AddCurrentIndex adds value to the "current_index" field.
func (_u *FeedbackSessionUpdate) AddCurrentIndex(v int) *FeedbackSessionUpdate {
	_u.mutation.AddCurrentIndex(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *FeedbackSessionUpdate) SetStatus(v feedbacksession.Status) *FeedbackSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FeedbackSessionUpdate) SetNillableStatus(v *feedbacksession.Status) *FeedbackSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHistory sets the "history" field.
func (_u *FeedbackSessionUpdate) SetHistory(v []schematype.ChatTurn) *FeedbackSessionUpdate {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *FeedbackSessionUpdate) AppendHistory(v []schematype.ChatTurn) *FeedbackSessionUpdate {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *FeedbackSessionUpdate) ClearHistory() *FeedbackSessionUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *FeedbackSessionUpdate) SetLastActivityAt(v time.Time) *FeedbackSessionUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *FeedbackSessionUpdate) SetNillableLastActivityAt(v *time.Time) *FeedbackSessionUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *FeedbackSessionUpdate) SetCompletedAt(v time.Time) *FeedbackSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *FeedbackSessionUpdate) SetNillableCompletedAt(v *time.Time) *FeedbackSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *FeedbackSessionUpdate) ClearCompletedAt() *FeedbackSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetInsightID sets the "insight" edge to the Insight entity by ID.
func (_u *FeedbackSessionUpdate) SetInsightID(id string) *FeedbackSessionUpdate {
	_u.mutation.SetInsightID(id)
	return _u
}

// SetNillableInsightID sets the "insight" edge to the Insight entity by ID if the given value is not nil.
func (_u *FeedbackSessionUpdate) SetNillableInsightID(id *string) *FeedbackSessionUpdate {
	if id != nil {
		_u = _u.SetInsightID(*id)
	}
	return _u
}

// SetInsight sets the "insight" edge to the Insight entity.
func (_u *FeedbackSessionUpdate) SetInsight(v *Insight) *FeedbackSessionUpdate {
	return _u.SetInsightID(v.ID)
}

// Mutation returns the FeedbackSessionMutation object of the builder.
func (_u *FeedbackSessionUpdate) Mutation() *FeedbackSessionMutation {
	return _u.mutation
}

// ClearInsight clears the "insight" edge to the Insight entity.
func (_u *FeedbackSessionUpdate) ClearInsight() *FeedbackSessionUpdate {
	_u.mutation.ClearInsight()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedbackSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedbackSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackSessionUpdate) check() error {
	if v, ok := _u.mutation.CurrentIndex(); ok {
		if err := feedbacksession.CurrentIndexValidator(v); err != nil {
			return &ValidationError{Name: "current_index", err: fmt.Errorf(`ent: validator failed for field "FeedbackSession.current_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := feedbacksession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FeedbackSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbacksession.Table, feedbacksession.Columns, sqlgraph.NewFieldSpec(feedbacksession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MeetingID(); ok {
		_spec.SetField(feedbacksession.FieldMeetingID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(feedbacksession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartupID(); ok {
		_spec.SetField(feedbacksession.FieldStartupID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStartupID(); ok {
		_spec.AddField(feedbacksession.FieldStartupID, field.TypeInt64, value)
	}
	if _u.mutation.StartupIDCleared() {
		_spec.ClearField(feedbacksession.FieldStartupID, field.TypeInt64)
	}
	if value, ok := _u.mutation.StartupName(); ok {
		_spec.SetField(feedbacksession.FieldStartupName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartupDescription(); ok {
		_spec.SetField(feedbacksession.FieldStartupDescription, field.TypeString, value)
	}
	if _u.mutation.StartupDescriptionCleared() {
		_spec.ClearField(feedbacksession.FieldStartupDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(feedbacksession.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, feedbacksession.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(feedbacksession.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(feedbacksession.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentIndex(); ok {
		_spec.SetField(feedbacksession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIndex(); ok {
		_spec.AddField(feedbacksession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(feedbacksession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(feedbacksession.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, feedbacksession.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(feedbacksession.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(feedbacksession.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(feedbacksession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(feedbacksession.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.InsightCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InsightIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbacksession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedbackSessionUpdateOne is the builder for updating a single FeedbackSession entity.
type FeedbackSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackSessionMutation
}

// SetMeetingID sets the "meeting_id" field.
func (_u *FeedbackSessionUpdateOne) SetMeetingID(v string) *FeedbackSessionUpdateOne {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *FeedbackSessionUpdateOne) SetNillableMeetingID(v *string) *FeedbackSessionUpdateOne {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FeedbackSessionUpdateOne) SetUserID(v string) *FeedbackSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FeedbackSessionUpdateOne) SetNillableUserID(v *string) *FeedbackSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStartupID sets the "startup_id" field.
func (_u *FeedbackSessionUpdateOne) SetStartupID(v int64) *FeedbackSessionUpdateOne {
	_u.mutation.ResetStartupID()
	_u.mutation.SetStartupID(v)
	return _u
}

// SetNillableStartupID sets the "startup_id" field if the given value is not nil.
func (_u *FeedbackSessionUpdateOne) SetNillableStartupID(v *int64) *FeedbackSessionUpdateOne {
	if v != nil {
		_u.SetStartupID(*v)
	}
	return _u
}

// AddStartupID adds value to the "startup_id" field.
func (_u *FeedbackSessionUpdateOne) AddStartupID(v int64) *FeedbackSessionUpdateOne {
	_u.mutation.AddStartupID(v)
	return _u
}

// ClearStartupID clears the value of the "startup_id" field.
func (_u *FeedbackSessionUpdateOne) ClearStartupID() *FeedbackSessionUpdateOne {
	_u.mutation.ClearStartupID()
	return _u
}

// SetStartupName sets the "startup_name" field.
func (_u *FeedbackSessionUpdateOne) SetStartupName(v string) *FeedbackSessionUpdateOne {
	_u.mutation.SetStartupName(v)
	return _u
}

// SetNillableStartupName sets the "startup_name" field if the given value is not nil.
func (_u *FeedbackSessionUpdateOne) SetNillableStartupName(v *string) *FeedbackSessionUpdateOne {
	if v != nil {
		_u.SetStartupName(*v)
	}
	return _u
}

// SetStartupDescription sets the "startup_description" field.
func (_u *FeedbackSessionUpdateOne) SetStartupDescription(v string) *FeedbackSessionUpdateOne {
	_u.mutation.SetStartupDescription(v)
	return _u
}

// SetNillableStartupDescription sets the "startup_description" field if the given value is not nil.
func (_u *FeedbackSessionUpdateOne) SetNillableStartupDescription(v *string) *FeedbackSessionUpdateOne {
	if v != nil {
		_u.SetStartupDescription(*v)
	}
	return _u
}

// ClearStartupDescription clears the value of the "startup_description" field.
func (_u *FeedbackSessionUpdateOne) ClearStartupDescription() *FeedbackSessionUpdateOne {
	_u.mutation.ClearStartupDescription()
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *FeedbackSessionUpdateOne) SetQuestions(v []schematype.Question) *FeedbackSessionUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *FeedbackSessionUpdateOne) AppendQuestions(v []schematype.Question) *FeedbackSessionUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *FeedbackSessionUpdateOne) SetAnswers(v map[string]string) *FeedbackSessionUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *FeedbackSessionUpdateOne) ClearAnswers() *FeedbackSessionUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetCurrentIndex sets the "current_index" field.
func (_u *FeedbackSessionUpdateOne) SetCurrentIndex(v int) *FeedbackSessionUpdateOne {
	_u.mutation.ResetCurrentIndex()
	_u.mutation.SetCurrentIndex(v)
	return _u
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_u *FeedbackSessionUpdateOne) SetNillableCurrentIndex(v *int) *FeedbackSessionUpdateOne {
	if v != nil {
		_u.SetCurrentIndex(*v)
	}
	return _u
}

// AddCurrentIndex adds value to the "current_index" field.
func (_u *FeedbackSessionUpdateOne) AddCurrentIndex(v int) *FeedbackSessionUpdateOne {
	_u.mutation.AddCurrentIndex(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *FeedbackSessionUpdateOne) SetStatus(v feedbacksession.Status) *FeedbackSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FeedbackSessionUpdateOne) SetNillableStatus(v *feedbacksession.Status) *FeedbackSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHistory sets the "history" field.
func (_u *FeedbackSessionUpdateOne) SetHistory(v []schematype.ChatTurn) *FeedbackSessionUpdateOne {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *FeedbackSessionUpdateOne) AppendHistory(v []schematype.ChatTurn) *FeedbackSessionUpdateOne {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *FeedbackSessionUpdateOne) ClearHistory() *FeedbackSessionUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *FeedbackSessionUpdateOne) SetLastActivityAt(v time.Time) *FeedbackSessionUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *FeedbackSessionUpdateOne) SetNillableLastActivityAt(v *time.Time) *FeedbackSessionUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *FeedbackSessionUpdateOne) SetCompletedAt(v time.Time) *FeedbackSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *FeedbackSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *FeedbackSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *FeedbackSessionUpdateOne) ClearCompletedAt() *FeedbackSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetInsightID sets the "insight" edge to the Insight entity by ID.
func (_u *FeedbackSessionUpdateOne) SetInsightID(id string) *FeedbackSessionUpdateOne {
	_u.mutation.SetInsightID(id)
	return _u
}

// SetNillableInsightID sets the "insight" edge to the Insight entity by ID if the given value is not nil.
func (_u *FeedbackSessionUpdateOne) SetNillableInsightID(id *string) *FeedbackSessionUpdateOne {
	if id != nil {
		_u = _u.SetInsightID(*id)
	}
	return _u
}

// SetInsight sets the "insight" edge to the Insight entity.
func (_u *FeedbackSessionUpdateOne) SetInsight(v *Insight) *FeedbackSessionUpdateOne {
	return _u.SetInsightID(v.ID)
}

// Mutation returns the FeedbackSessionMutation object of the builder.
func (_u *FeedbackSessionUpdateOne) Mutation() *FeedbackSessionMutation {
	return _u.mutation
}

// ClearInsight clears the "insight" edge to the Insight entity.
func (_u *FeedbackSessionUpdateOne) ClearInsight() *FeedbackSessionUpdateOne {
	_u.mutation.ClearInsight()
	return _u
}

// Where appends a list predicates to the FeedbackSessionUpdate builder.
func (_u *FeedbackSessionUpdateOne) Where(ps ...predicate.FeedbackSession) *FeedbackSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedbackSessionUpdateOne) Select(field string, fields ...string) *FeedbackSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeedbackSession entity.
func (_u *FeedbackSessionUpdateOne) Save(ctx context.Context) (*FeedbackSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackSessionUpdateOne) SaveX(ctx context.Context) *FeedbackSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedbackSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackSessionUpdateOne) check() error {
	if v, ok := _u.mutation.CurrentIndex(); ok {
		if err := feedbacksession.CurrentIndexValidator(v); err != nil {
			return &ValidationError{Name: "current_index", err: fmt.Errorf(`ent: validator failed for field "FeedbackSession.current_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := feedbacksession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FeedbackSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackSessionUpdateOne) sqlSave(ctx context.Context) (_node *FeedbackSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbacksession.Table, feedbacksession.Columns, sqlgraph.NewFieldSpec(feedbacksession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeedbackSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedbacksession.FieldID)
		for _, f := range fields {
			if !feedbacksession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedbacksession.FieldID {
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
	if value, ok := _u.mutation.MeetingID(); ok {
		_spec.SetField(feedbacksession.FieldMeetingID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(feedbacksession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartupID(); ok {
		_spec.SetField(feedbacksession.FieldStartupID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStartupID(); ok {
		_spec.AddField(feedbacksession.FieldStartupID, field.TypeInt64, value)
	}
	if _u.mutation.StartupIDCleared() {
		_spec.ClearField(feedbacksession.FieldStartupID, field.TypeInt64)
	}
	if value, ok := _u.mutation.StartupName(); ok {
		_spec.SetField(feedbacksession.FieldStartupName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartupDescription(); ok {
		_spec.SetField(feedbacksession.FieldStartupDescription, field.TypeString, value)
	}
	if _u.mutation.StartupDescriptionCleared() {
		_spec.ClearField(feedbacksession.FieldStartupDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(feedbacksession.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, feedbacksession.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(feedbacksession.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(feedbacksession.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentIndex(); ok {
		_spec.SetField(feedbacksession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIndex(); ok {
		_spec.AddField(feedbacksession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(feedbacksession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(feedbacksession.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, feedbacksession.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(feedbacksession.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(feedbacksession.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(feedbacksession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(feedbacksession.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.InsightCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InsightIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FeedbackSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbacksession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
