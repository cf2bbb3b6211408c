// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/confscout/scout/ent/calendarevent"
	"github.com/confscout/scout/ent/feedbacksession"
	"github.com/confscout/scout/ent/idea"
	"github.com/confscout/scout/ent/insight"
	"github.com/confscout/scout/ent/predicate"
	"github.com/confscout/scout/ent/rating"
	"github.com/confscout/scout/ent/schema/schematype"
	"github.com/confscout/scout/ent/startup"
	"github.com/confscout/scout/ent/vote"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCalendarEvent   = "CalendarEvent"
	TypeFeedbackSession = "FeedbackSession"
	TypeIdea            = "Idea"
	TypeInsight         = "Insight"
	TypeRating          = "Rating"
	TypeStartup         = "Startup"
	TypeVote            = "Vote"
)

// CalendarEventMutation represents an operation that mutates the CalendarEvent nodes in the graph.
type CalendarEventMutation struct {
	config
	op              Op
	typ             string
	id              *string
	title           *string
	start           *time.Time
	end             *time.Time
	attendees       *[]string
	appendattendees []string
	event_type      *string
	category        *string
	stage           *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*CalendarEvent, error)
	predicates      []predicate.CalendarEvent
}

var _ ent.Mutation = (*CalendarEventMutation)(nil)

// calendareventOption allows management of the mutation configuration using functional options.
type calendareventOption func(*CalendarEventMutation)

// newCalendarEventMutation creates new mutation for the CalendarEvent entity.
func newCalendarEventMutation(c config, op Op, opts ...calendareventOption) *CalendarEventMutation {
	m := &CalendarEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCalendarEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalendarEventID sets the ID field of the mutation.
func withCalendarEventID(id string) calendareventOption {
	return func(m *CalendarEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CalendarEvent
		)
		m.oldValue = func(ctx context.Context) (*CalendarEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CalendarEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalendarEvent sets the old CalendarEvent of the mutation.
func withCalendarEvent(node *CalendarEvent) calendareventOption {
	return func(m *CalendarEventMutation) {
		m.oldValue = func(context.Context) (*CalendarEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalendarEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalendarEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CalendarEvent entities.
func (m *CalendarEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalendarEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalendarEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CalendarEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *CalendarEventMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CalendarEventMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CalendarEventMutation) ResetTitle() {
	m.title = nil
}

// SetStart sets the "start" field.
func (m *CalendarEventMutation) SetStart(t time.Time) {
	m.start = &t
}

// Start returns the value of the "start" field in the mutation.
func (m *CalendarEventMutation) Start() (r time.Time, exists bool) {
	v := m.start
	if v == nil {
		return
	}
	return *v, true
}

// OldStart returns the old "start" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStart: %w", err)
	}
	return oldValue.Start, nil
}

// ResetStart resets all changes to the "start" field.
func (m *CalendarEventMutation) ResetStart() {
	m.start = nil
}

// SetEnd sets the "end" field.
func (m *CalendarEventMutation) SetEnd(t time.Time) {
	m.end = &t
}

// End returns the value of the "end" field in the mutation.
func (m *CalendarEventMutation) End() (r time.Time, exists bool) {
	v := m.end
	if v == nil {
		return
	}
	return *v, true
}

// OldEnd returns the old "end" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnd: %w", err)
	}
	return oldValue.End, nil
}

// ResetEnd resets all changes to the "end" field.
func (m *CalendarEventMutation) ResetEnd() {
	m.end = nil
}

// SetAttendees sets the "attendees" field.
func (m *CalendarEventMutation) SetAttendees(s []string) {
	m.attendees = &s
	m.appendattendees = nil
}

// Attendees returns the value of the "attendees" field in the mutation.
func (m *CalendarEventMutation) Attendees() (r []string, exists bool) {
	v := m.attendees
	if v == nil {
		return
	}
	return *v, true
}

// OldAttendees returns the old "attendees" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldAttendees(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttendees is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttendees requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttendees: %w", err)
	}
	return oldValue.Attendees, nil
}

// AppendAttendees adds s to the "attendees" field.
func (m *CalendarEventMutation) AppendAttendees(s []string) {
	m.appendattendees = append(m.appendattendees, s...)
}

// AppendedAttendees returns the list of values that were appended to the "attendees" field in this mutation.
func (m *CalendarEventMutation) AppendedAttendees() ([]string, bool) {
	if len(m.appendattendees) == 0 {
		return nil, false
	}
	return m.appendattendees, true
}

// ClearAttendees clears the value of the "attendees" field.
func (m *CalendarEventMutation) ClearAttendees() {
	m.attendees = nil
	m.appendattendees = nil
	m.clearedFields[calendarevent.FieldAttendees] = struct{}{}
}

// AttendeesCleared returns if the "attendees" field was cleared in this mutation.
func (m *CalendarEventMutation) AttendeesCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldAttendees]
	return ok
}

// ResetAttendees resets all changes to the "attendees" field.
func (m *CalendarEventMutation) ResetAttendees() {
	m.attendees = nil
	m.appendattendees = nil
	delete(m.clearedFields, calendarevent.FieldAttendees)
}

// SetEventType sets the "event_type" field.
func (m *CalendarEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *CalendarEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *CalendarEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetCategory sets the "category" field.
func (m *CalendarEventMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *CalendarEventMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *CalendarEventMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[calendarevent.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *CalendarEventMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *CalendarEventMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, calendarevent.FieldCategory)
}

// SetStage sets the "stage" field.
func (m *CalendarEventMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *CalendarEventMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ClearStage clears the value of the "stage" field.
func (m *CalendarEventMutation) ClearStage() {
	m.stage = nil
	m.clearedFields[calendarevent.FieldStage] = struct{}{}
}

// StageCleared returns if the "stage" field was cleared in this mutation.
func (m *CalendarEventMutation) StageCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldStage]
	return ok
}

// ResetStage resets all changes to the "stage" field.
func (m *CalendarEventMutation) ResetStage() {
	m.stage = nil
	delete(m.clearedFields, calendarevent.FieldStage)
}

// SetCreatedAt sets the "created_at" field.
func (m *CalendarEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CalendarEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CalendarEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CalendarEventMutation builder.
func (m *CalendarEventMutation) Where(ps ...predicate.CalendarEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalendarEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalendarEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CalendarEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalendarEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalendarEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CalendarEvent).
func (m *CalendarEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalendarEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.title != nil {
		fields = append(fields, calendarevent.FieldTitle)
	}
	if m.start != nil {
		fields = append(fields, calendarevent.FieldStart)
	}
	if m.end != nil {
		fields = append(fields, calendarevent.FieldEnd)
	}
	if m.attendees != nil {
		fields = append(fields, calendarevent.FieldAttendees)
	}
	if m.event_type != nil {
		fields = append(fields, calendarevent.FieldEventType)
	}
	if m.category != nil {
		fields = append(fields, calendarevent.FieldCategory)
	}
	if m.stage != nil {
		fields = append(fields, calendarevent.FieldStage)
	}
	if m.created_at != nil {
		fields = append(fields, calendarevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalendarEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calendarevent.FieldTitle:
		return m.Title()
	case calendarevent.FieldStart:
		return m.Start()
	case calendarevent.FieldEnd:
		return m.End()
	case calendarevent.FieldAttendees:
		return m.Attendees()
	case calendarevent.FieldEventType:
		return m.EventType()
	case calendarevent.FieldCategory:
		return m.Category()
	case calendarevent.FieldStage:
		return m.Stage()
	case calendarevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalendarEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calendarevent.FieldTitle:
		return m.OldTitle(ctx)
	case calendarevent.FieldStart:
		return m.OldStart(ctx)
	case calendarevent.FieldEnd:
		return m.OldEnd(ctx)
	case calendarevent.FieldAttendees:
		return m.OldAttendees(ctx)
	case calendarevent.FieldEventType:
		return m.OldEventType(ctx)
	case calendarevent.FieldCategory:
		return m.OldCategory(ctx)
	case calendarevent.FieldStage:
		return m.OldStage(ctx)
	case calendarevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CalendarEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calendarevent.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case calendarevent.FieldStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStart(v)
		return nil
	case calendarevent.FieldEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnd(v)
		return nil
	case calendarevent.FieldAttendees:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttendees(v)
		return nil
	case calendarevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case calendarevent.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case calendarevent.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case calendarevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalendarEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalendarEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CalendarEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalendarEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(calendarevent.FieldAttendees) {
		fields = append(fields, calendarevent.FieldAttendees)
	}
	if m.FieldCleared(calendarevent.FieldCategory) {
		fields = append(fields, calendarevent.FieldCategory)
	}
	if m.FieldCleared(calendarevent.FieldStage) {
		fields = append(fields, calendarevent.FieldStage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalendarEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalendarEventMutation) ClearField(name string) error {
	switch name {
	case calendarevent.FieldAttendees:
		m.ClearAttendees()
		return nil
	case calendarevent.FieldCategory:
		m.ClearCategory()
		return nil
	case calendarevent.FieldStage:
		m.ClearStage()
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalendarEventMutation) ResetField(name string) error {
	switch name {
	case calendarevent.FieldTitle:
		m.ResetTitle()
		return nil
	case calendarevent.FieldStart:
		m.ResetStart()
		return nil
	case calendarevent.FieldEnd:
		m.ResetEnd()
		return nil
	case calendarevent.FieldAttendees:
		m.ResetAttendees()
		return nil
	case calendarevent.FieldEventType:
		m.ResetEventType()
		return nil
	case calendarevent.FieldCategory:
		m.ResetCategory()
		return nil
	case calendarevent.FieldStage:
		m.ResetStage()
		return nil
	case calendarevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalendarEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalendarEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalendarEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalendarEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalendarEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalendarEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalendarEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CalendarEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalendarEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CalendarEvent edge %s", name)
}

// FeedbackSessionMutation represents an operation that mutates the FeedbackSession nodes in the graph.
type FeedbackSessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	meeting_id          *string
	user_id             *string
	startup_id          *int64
	addstartup_id       *int64
	startup_name        *string
	startup_description *string
	questions           *[]schematype.Question
	appendquestions     []schematype.Question
	answers             *map[string]string
	current_index       *int
	addcurrent_index    *int
	status              *feedbacksession.Status
	history             *[]schematype.ChatTurn
	appendhistory       []schematype.ChatTurn
	created_at          *time.Time
	last_activity_at    *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	insight             *string
	clearedinsight      bool
	done                bool
	oldValue            func(context.Context) (*FeedbackSession, error)
	predicates          []predicate.FeedbackSession
}

var _ ent.Mutation = (*FeedbackSessionMutation)(nil)

// feedbacksessionOption allows management of the mutation configuration using functional options.
type feedbacksessionOption func(*FeedbackSessionMutation)

// newFeedbackSessionMutation creates new mutation for the FeedbackSession entity.
func newFeedbackSessionMutation(c config, op Op, opts ...feedbacksessionOption) *FeedbackSessionMutation {
	m := &FeedbackSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedbackSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedbackSessionID sets the ID field of the mutation.
func withFeedbackSessionID(id string) feedbacksessionOption {
	return func(m *FeedbackSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *FeedbackSession
		)
		m.oldValue = func(ctx context.Context) (*FeedbackSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FeedbackSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedbackSession sets the old FeedbackSession of the mutation.
func withFeedbackSession(node *FeedbackSession) feedbacksessionOption {
	return func(m *FeedbackSessionMutation) {
		m.oldValue = func(context.Context) (*FeedbackSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedbackSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedbackSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FeedbackSession entities.
func (m *FeedbackSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedbackSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedbackSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FeedbackSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMeetingID sets the "meeting_id" field.
func (m *FeedbackSessionMutation) SetMeetingID(s string) {
	m.meeting_id = &s
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *FeedbackSessionMutation) MeetingID() (r string, exists bool) {
	v := m.meeting_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the FeedbackSession entity.
// If the FeedbackSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSessionMutation) OldMeetingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *FeedbackSessionMutation) ResetMeetingID() {
	m.meeting_id = nil
}

// SetUserID sets the "user_id" field.
func (m *FeedbackSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *FeedbackSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the FeedbackSession entity.
// If the FeedbackSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *FeedbackSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetStartupID sets the "startup_id" field.
func (m *FeedbackSessionMutation) SetStartupID(i int64) {
	m.startup_id = &i
	m.addstartup_id = nil
}

// StartupID returns the value of the "startup_id" field in the mutation.
func (m *FeedbackSessionMutation) StartupID() (r int64, exists bool) {
	v := m.startup_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStartupID returns the old "startup_id" field's value of the FeedbackSession entity.
// If the FeedbackSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSessionMutation) OldStartupID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartupID: %w", err)
	}
	return oldValue.StartupID, nil
}

// AddStartupID adds i to the "startup_id" field.
func (m *FeedbackSessionMutation) AddStartupID(i int64) {
	if m.addstartup_id != nil {
		*m.addstartup_id += i
	} else {
		m.addstartup_id = &i
	}
}

// AddedStartupID returns the value that was added to the "startup_id" field in this mutation.
func (m *FeedbackSessionMutation) AddedStartupID() (r int64, exists bool) {
	v := m.addstartup_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearStartupID clears the value of the "startup_id" field.
func (m *FeedbackSessionMutation) ClearStartupID() {
	m.startup_id = nil
	m.addstartup_id = nil
	m.clearedFields[feedbacksession.FieldStartupID] = struct{}{}
}

// StartupIDCleared returns if the "startup_id" field was cleared in this mutation.
func (m *FeedbackSessionMutation) StartupIDCleared() bool {
	_, ok := m.clearedFields[feedbacksession.FieldStartupID]
	return ok
}

// ResetStartupID resets all changes to the "startup_id" field.
func (m *FeedbackSessionMutation) ResetStartupID() {
	m.startup_id = nil
	m.addstartup_id = nil
	delete(m.clearedFields, feedbacksession.FieldStartupID)
}

// SetStartupName sets the "startup_name" field.
func (m *FeedbackSessionMutation) SetStartupName(s string) {
	m.startup_name = &s
}

// StartupName returns the value of the "startup_name" field in the mutation.
func (m *FeedbackSessionMutation) StartupName() (r string, exists bool) {
	v := m.startup_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStartupName returns the old "startup_name" field's value of the FeedbackSession entity.
// If the FeedbackSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSessionMutation) OldStartupName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartupName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartupName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartupName: %w", err)
	}
	return oldValue.StartupName, nil
}

// ResetStartupName resets all changes to the "startup_name" field.
func (m *FeedbackSessionMutation) ResetStartupName() {
	m.startup_name = nil
}

// SetStartupDescription sets the "startup_description" field.
func (m *FeedbackSessionMutation) SetStartupDescription(s string) {
	m.startup_description = &s
}

// StartupDescription returns the value of the "startup_description" field in the mutation.
func (m *FeedbackSessionMutation) StartupDescription() (r string, exists bool) {
	v := m.startup_description
	if v == nil {
		return
	}
	return *v, true
}

// OldStartupDescription returns the old "startup_description" field's value of the FeedbackSession entity.
// If the FeedbackSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSessionMutation) OldStartupDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartupDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartupDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartupDescription: %w", err)
	}
	return oldValue.StartupDescription, nil
}

// ClearStartupDescription clears the value of the "startup_description" field.
func (m *FeedbackSessionMutation) ClearStartupDescription() {
	m.startup_description = nil
	m.clearedFields[feedbacksession.FieldStartupDescription] = struct{}{}
}

// StartupDescriptionCleared returns if the "startup_description" field was cleared in this mutation.
func (m *FeedbackSessionMutation) StartupDescriptionCleared() bool {
	_, ok := m.clearedFields[feedbacksession.FieldStartupDescription]
	return ok
}

// ResetStartupDescription resets all changes to the "startup_description" field.
func (m *FeedbackSessionMutation) ResetStartupDescription() {
	m.startup_description = nil
	delete(m.clearedFields, feedbacksession.FieldStartupDescription)
}

// SetQuestions sets the "questions" field.
func (m *FeedbackSessionMutation) SetQuestions(s []schematype.Question) {
	m.questions = &s
	m.appendquestions = nil
}

// Questions returns the value of the "questions" field in the mutation.
func (m *FeedbackSessionMutation) Questions() (r []schematype.Question, exists bool) {
	v := m.questions
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestions returns the old "questions" field's value of the FeedbackSession entity.
// If the FeedbackSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSessionMutation) OldQuestions(ctx context.Context) (v []schematype.Question, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestions: %w", err)
	}
	return oldValue.Questions, nil
}

// AppendQuestions adds s to the "questions" field.
func (m *FeedbackSessionMutation) AppendQuestions(s []schematype.Question) {
	m.appendquestions = append(m.appendquestions, s...)
}

// AppendedQuestions returns the list of values that were appended to the "questions" field in this mutation.
func (m *FeedbackSessionMutation) AppendedQuestions() ([]schematype.Question, bool) {
	if len(m.appendquestions) == 0 {
		return nil, false
	}
	return m.appendquestions, true
}

// ResetQuestions resets all changes to the "questions" field.
func (m *FeedbackSessionMutation) ResetQuestions() {
	m.questions = nil
	m.appendquestions = nil
}

// SetAnswers sets the "answers" field.
func (m *FeedbackSessionMutation) SetAnswers(value map[string]string) {
	m.answers = &value
}

// Answers returns the value of the "answers" field in the mutation.
func (m *FeedbackSessionMutation) Answers() (r map[string]string, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the FeedbackSession entity.
// If the FeedbackSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSessionMutation) OldAnswers(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// ClearAnswers clears the value of the "answers" field.
func (m *FeedbackSessionMutation) ClearAnswers() {
	m.answers = nil
	m.clearedFields[feedbacksession.FieldAnswers] = struct{}{}
}

// AnswersCleared returns if the "answers" field was cleared in this mutation.
func (m *FeedbackSessionMutation) AnswersCleared() bool {
	_, ok := m.clearedFields[feedbacksession.FieldAnswers]
	return ok
}

// ResetAnswers resets all changes to the "answers" field.
func (m *FeedbackSessionMutation) ResetAnswers() {
	m.answers = nil
	delete(m.clearedFields, feedbacksession.FieldAnswers)
}

// SetCurrentIndex sets the "current_index" field.
func (m *FeedbackSessionMutation) SetCurrentIndex(i int) {
	m.current_index = &i
	m.addcurrent_index = nil
}

// CurrentIndex returns the value of the "current_index" field in the mutation.
func (m *FeedbackSessionMutation) CurrentIndex() (r int, exists bool) {
	v := m.current_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentIndex returns the old "current_index" field's value of the FeedbackSession entity.
// If the FeedbackSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSessionMutation) OldCurrentIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentIndex: %w", err)
	}
	return oldValue.CurrentIndex, nil
}

// AddCurrentIndex adds i to the "current_index" field.
func (m *FeedbackSessionMutation) AddCurrentIndex(i int) {
	if m.addcurrent_index != nil {
		*m.addcurrent_index += i
	} else {
		m.addcurrent_index = &i
	}
}

// AddedCurrentIndex returns the value that was added to the "current_index" field in this mutation.
func (m *FeedbackSessionMutation) AddedCurrentIndex() (r int, exists bool) {
	v := m.addcurrent_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentIndex resets all changes to the "current_index" field.
func (m *FeedbackSessionMutation) ResetCurrentIndex() {
	m.current_index = nil
	m.addcurrent_index = nil
}

// SetStatus sets the "status" field.
func (m *FeedbackSessionMutation) SetStatus(f feedbacksession.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FeedbackSessionMutation) Status() (r feedbacksession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FeedbackSession entity.
// If the FeedbackSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSessionMutation) OldStatus(ctx context.Context) (v feedbacksession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FeedbackSessionMutation) ResetStatus() {
	m.status = nil
}

// SetHistory sets the "history" field.
func (m *FeedbackSessionMutation) SetHistory(st []schematype.ChatTurn) {
	m.history = &st
	m.appendhistory = nil
}

// History returns the value of the "history" field in the mutation.
func (m *FeedbackSessionMutation) History() (r []schematype.ChatTurn, exists bool) {
	v := m.history
	if v == nil {
		return
	}
	return *v, true
}

// OldHistory returns the old "history" field's value of the FeedbackSession entity.
// If the FeedbackSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSessionMutation) OldHistory(ctx context.Context) (v []schematype.ChatTurn, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHistory: %w", err)
	}
	return oldValue.History, nil
}

// AppendHistory adds st to the "history" field.
func (m *FeedbackSessionMutation) AppendHistory(st []schematype.ChatTurn) {
	m.appendhistory = append(m.appendhistory, st...)
}

// AppendedHistory returns the list of values that were appended to the "history" field in this mutation.
func (m *FeedbackSessionMutation) AppendedHistory() ([]schematype.ChatTurn, bool) {
	if len(m.appendhistory) == 0 {
		return nil, false
	}
	return m.appendhistory, true
}

// ClearHistory clears the value of the "history" field.
func (m *FeedbackSessionMutation) ClearHistory() {
	m.history = nil
	m.appendhistory = nil
	m.clearedFields[feedbacksession.FieldHistory] = struct{}{}
}

// HistoryCleared returns if the "history" field was cleared in this mutation.
func (m *FeedbackSessionMutation) HistoryCleared() bool {
	_, ok := m.clearedFields[feedbacksession.FieldHistory]
	return ok
}

// ResetHistory resets all changes to the "history" field.
func (m *FeedbackSessionMutation) ResetHistory() {
	m.history = nil
	m.appendhistory = nil
	delete(m.clearedFields, feedbacksession.FieldHistory)
}

// SetCreatedAt sets the "created_at" field.
func (m *FeedbackSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeedbackSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FeedbackSession entity.
// If the FeedbackSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FeedbackSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *FeedbackSessionMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *FeedbackSessionMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the FeedbackSession entity.
// If the FeedbackSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSessionMutation) OldLastActivityAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *FeedbackSessionMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *FeedbackSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *FeedbackSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the FeedbackSession entity.
// If the FeedbackSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *FeedbackSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[feedbacksession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *FeedbackSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[feedbacksession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *FeedbackSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, feedbacksession.FieldCompletedAt)
}

// SetInsightID sets the "insight" edge to the Insight entity by id.
func (m *FeedbackSessionMutation) SetInsightID(id string) {
	m.insight = &id
}

// ClearInsight clears the "insight" edge to the Insight entity.
func (m *FeedbackSessionMutation) ClearInsight() {
	m.clearedinsight = true
}

// InsightCleared reports if the "insight" edge to the Insight entity was cleared.
func (m *FeedbackSessionMutation) InsightCleared() bool {
	return m.clearedinsight
}

// InsightID returns the "insight" edge ID in the mutation.
func (m *FeedbackSessionMutation) InsightID() (id string, exists bool) {
	if m.insight != nil {
		return *m.insight, true
	}
	return
}

// InsightIDs returns the "insight" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InsightID instead. It exists only for internal usage by the builders.
func (m *FeedbackSessionMutation) InsightIDs() (ids []string) {
	if id := m.insight; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInsight resets all changes to the "insight" edge.
func (m *FeedbackSessionMutation) ResetInsight() {
	m.insight = nil
	m.clearedinsight = false
}

// Where appends a list predicates to the FeedbackSessionMutation builder.
func (m *FeedbackSessionMutation) Where(ps ...predicate.FeedbackSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedbackSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedbackSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FeedbackSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedbackSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedbackSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FeedbackSession).
func (m *FeedbackSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedbackSessionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.meeting_id != nil {
		fields = append(fields, feedbacksession.FieldMeetingID)
	}
	if m.user_id != nil {
		fields = append(fields, feedbacksession.FieldUserID)
	}
	if m.startup_id != nil {
		fields = append(fields, feedbacksession.FieldStartupID)
	}
	if m.startup_name != nil {
		fields = append(fields, feedbacksession.FieldStartupName)
	}
	if m.startup_description != nil {
		fields = append(fields, feedbacksession.FieldStartupDescription)
	}
	if m.questions != nil {
		fields = append(fields, feedbacksession.FieldQuestions)
	}
	if m.answers != nil {
		fields = append(fields, feedbacksession.FieldAnswers)
	}
	if m.current_index != nil {
		fields = append(fields, feedbacksession.FieldCurrentIndex)
	}
	if m.status != nil {
		fields = append(fields, feedbacksession.FieldStatus)
	}
	if m.history != nil {
		fields = append(fields, feedbacksession.FieldHistory)
	}
	if m.created_at != nil {
		fields = append(fields, feedbacksession.FieldCreatedAt)
	}
	if m.last_activity_at != nil {
		fields = append(fields, feedbacksession.FieldLastActivityAt)
	}
	if m.completed_at != nil {
		fields = append(fields, feedbacksession.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedbackSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedbacksession.FieldMeetingID:
		return m.MeetingID()
	case feedbacksession.FieldUserID:
		return m.UserID()
	case feedbacksession.FieldStartupID:
		return m.StartupID()
	case feedbacksession.FieldStartupName:
		return m.StartupName()
	case feedbacksession.FieldStartupDescription:
		return m.StartupDescription()
	case feedbacksession.FieldQuestions:
		return m.Questions()
	case feedbacksession.FieldAnswers:
		return m.Answers()
	case feedbacksession.FieldCurrentIndex:
		return m.CurrentIndex()
	case feedbacksession.FieldStatus:
		return m.Status()
	case feedbacksession.FieldHistory:
		return m.History()
	case feedbacksession.FieldCreatedAt:
		return m.CreatedAt()
	case feedbacksession.FieldLastActivityAt:
		return m.LastActivityAt()
	case feedbacksession.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedbackSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedbacksession.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case feedbacksession.FieldUserID:
		return m.OldUserID(ctx)
	case feedbacksession.FieldStartupID:
		return m.OldStartupID(ctx)
	case feedbacksession.FieldStartupName:
		return m.OldStartupName(ctx)
	case feedbacksession.FieldStartupDescription:
		return m.OldStartupDescription(ctx)
	case feedbacksession.FieldQuestions:
		return m.OldQuestions(ctx)
	case feedbacksession.FieldAnswers:
		return m.OldAnswers(ctx)
	case feedbacksession.FieldCurrentIndex:
		return m.OldCurrentIndex(ctx)
	case feedbacksession.FieldStatus:
		return m.OldStatus(ctx)
	case feedbacksession.FieldHistory:
		return m.OldHistory(ctx)
	case feedbacksession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case feedbacksession.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case feedbacksession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FeedbackSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedbacksession.FieldMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case feedbacksession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case feedbacksession.FieldStartupID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartupID(v)
		return nil
	case feedbacksession.FieldStartupName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartupName(v)
		return nil
	case feedbacksession.FieldStartupDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartupDescription(v)
		return nil
	case feedbacksession.FieldQuestions:
		v, ok := value.([]schematype.Question)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestions(v)
		return nil
	case feedbacksession.FieldAnswers:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case feedbacksession.FieldCurrentIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentIndex(v)
		return nil
	case feedbacksession.FieldStatus:
		v, ok := value.(feedbacksession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case feedbacksession.FieldHistory:
		v, ok := value.([]schematype.ChatTurn)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHistory(v)
		return nil
	case feedbacksession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case feedbacksession.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case feedbacksession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedbackSessionMutation) AddedFields() []string {
	var fields []string
	if m.addstartup_id != nil {
		fields = append(fields, feedbacksession.FieldStartupID)
	}
	if m.addcurrent_index != nil {
		fields = append(fields, feedbacksession.FieldCurrentIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedbackSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case feedbacksession.FieldStartupID:
		return m.AddedStartupID()
	case feedbacksession.FieldCurrentIndex:
		return m.AddedCurrentIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case feedbacksession.FieldStartupID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartupID(v)
		return nil
	case feedbacksession.FieldCurrentIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentIndex(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedbackSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(feedbacksession.FieldStartupID) {
		fields = append(fields, feedbacksession.FieldStartupID)
	}
	if m.FieldCleared(feedbacksession.FieldStartupDescription) {
		fields = append(fields, feedbacksession.FieldStartupDescription)
	}
	if m.FieldCleared(feedbacksession.FieldAnswers) {
		fields = append(fields, feedbacksession.FieldAnswers)
	}
	if m.FieldCleared(feedbacksession.FieldHistory) {
		fields = append(fields, feedbacksession.FieldHistory)
	}
	if m.FieldCleared(feedbacksession.FieldCompletedAt) {
		fields = append(fields, feedbacksession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedbackSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedbackSessionMutation) ClearField(name string) error {
	switch name {
	case feedbacksession.FieldStartupID:
		m.ClearStartupID()
		return nil
	case feedbacksession.FieldStartupDescription:
		m.ClearStartupDescription()
		return nil
	case feedbacksession.FieldAnswers:
		m.ClearAnswers()
		return nil
	case feedbacksession.FieldHistory:
		m.ClearHistory()
		return nil
	case feedbacksession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown FeedbackSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedbackSessionMutation) ResetField(name string) error {
	switch name {
	case feedbacksession.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case feedbacksession.FieldUserID:
		m.ResetUserID()
		return nil
	case feedbacksession.FieldStartupID:
		m.ResetStartupID()
		return nil
	case feedbacksession.FieldStartupName:
		m.ResetStartupName()
		return nil
	case feedbacksession.FieldStartupDescription:
		m.ResetStartupDescription()
		return nil
	case feedbacksession.FieldQuestions:
		m.ResetQuestions()
		return nil
	case feedbacksession.FieldAnswers:
		m.ResetAnswers()
		return nil
	case feedbacksession.FieldCurrentIndex:
		m.ResetCurrentIndex()
		return nil
	case feedbacksession.FieldStatus:
		m.ResetStatus()
		return nil
	case feedbacksession.FieldHistory:
		m.ResetHistory()
		return nil
	case feedbacksession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case feedbacksession.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case feedbacksession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown FeedbackSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedbackSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.insight != nil {
		edges = append(edges, feedbacksession.EdgeInsight)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedbackSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case feedbacksession.EdgeInsight:
		if id := m.insight; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedbackSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedbackSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedbackSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinsight {
		edges = append(edges, feedbacksession.EdgeInsight)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedbackSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case feedbacksession.EdgeInsight:
		return m.clearedinsight
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedbackSessionMutation) ClearEdge(name string) error {
	switch name {
	case feedbacksession.EdgeInsight:
		m.ClearInsight()
		return nil
	}
	return fmt.Errorf("unknown FeedbackSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedbackSessionMutation) ResetEdge(name string) error {
	switch name {
	case feedbacksession.EdgeInsight:
		m.ResetInsight()
		return nil
	}
	return fmt.Errorf("unknown FeedbackSession edge %s", name)
}

// IdeaMutation represents an operation that mutates the Idea nodes in the graph.
type IdeaMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	title         *string
	content       *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Idea, error)
	predicates    []predicate.Idea
}

var _ ent.Mutation = (*IdeaMutation)(nil)

// ideaOption allows management of the mutation configuration using functional options.
type ideaOption func(*IdeaMutation)

// newIdeaMutation creates new mutation for the Idea entity.
func newIdeaMutation(c config, op Op, opts ...ideaOption) *IdeaMutation {
	m := &IdeaMutation{
		config:        c,
		op:            op,
		typ:           TypeIdea,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIdeaID sets the ID field of the mutation.
func withIdeaID(id string) ideaOption {
	return func(m *IdeaMutation) {
		var (
			err   error
			once  sync.Once
			value *Idea
		)
		m.oldValue = func(ctx context.Context) (*Idea, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Idea.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIdea sets the old Idea of the mutation.
func withIdea(node *Idea) ideaOption {
	return func(m *IdeaMutation) {
		m.oldValue = func(context.Context) (*Idea, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IdeaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IdeaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Idea entities.
func (m *IdeaMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IdeaMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IdeaMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Idea.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *IdeaMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *IdeaMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Idea entity.
// If the Idea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdeaMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *IdeaMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *IdeaMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *IdeaMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Idea entity.
// If the Idea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdeaMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *IdeaMutation) ResetTitle() {
	m.title = nil
}

// SetContent sets the "content" field.
func (m *IdeaMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *IdeaMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Idea entity.
// If the Idea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdeaMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *IdeaMutation) ClearContent() {
	m.content = nil
	m.clearedFields[idea.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *IdeaMutation) ContentCleared() bool {
	_, ok := m.clearedFields[idea.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *IdeaMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, idea.FieldContent)
}

// SetCreatedAt sets the "created_at" field.
func (m *IdeaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IdeaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Idea entity.
// If the Idea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdeaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IdeaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IdeaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IdeaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Idea entity.
// If the Idea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdeaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IdeaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the IdeaMutation builder.
func (m *IdeaMutation) Where(ps ...predicate.Idea) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IdeaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IdeaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Idea, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IdeaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IdeaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Idea).
func (m *IdeaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IdeaMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, idea.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, idea.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, idea.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, idea.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, idea.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IdeaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case idea.FieldUserID:
		return m.UserID()
	case idea.FieldTitle:
		return m.Title()
	case idea.FieldContent:
		return m.Content()
	case idea.FieldCreatedAt:
		return m.CreatedAt()
	case idea.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IdeaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case idea.FieldUserID:
		return m.OldUserID(ctx)
	case idea.FieldTitle:
		return m.OldTitle(ctx)
	case idea.FieldContent:
		return m.OldContent(ctx)
	case idea.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case idea.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Idea field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdeaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case idea.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case idea.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case idea.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case idea.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case idea.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Idea field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IdeaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IdeaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdeaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Idea numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IdeaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(idea.FieldContent) {
		fields = append(fields, idea.FieldContent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IdeaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IdeaMutation) ClearField(name string) error {
	switch name {
	case idea.FieldContent:
		m.ClearContent()
		return nil
	}
	return fmt.Errorf("unknown Idea nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IdeaMutation) ResetField(name string) error {
	switch name {
	case idea.FieldUserID:
		m.ResetUserID()
		return nil
	case idea.FieldTitle:
		m.ResetTitle()
		return nil
	case idea.FieldContent:
		m.ResetContent()
		return nil
	case idea.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case idea.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Idea field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IdeaMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IdeaMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IdeaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IdeaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IdeaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IdeaMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IdeaMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Idea unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IdeaMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Idea edge %s", name)
}

// InsightMutation represents an operation that mutates the Insight nodes in the graph.
type InsightMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	session_id          *string
	meeting_id          *string
	user_id             *string
	startup_name        *string
	structured_qa       *[]schematype.QAPair
	appendstructured_qa []schematype.QAPair
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Insight, error)
	predicates          []predicate.Insight
}

var _ ent.Mutation = (*InsightMutation)(nil)

// insightOption allows management of the mutation configuration using functional options.
type insightOption func(*InsightMutation)

// newInsightMutation creates new mutation for the Insight entity.
func newInsightMutation(c config, op Op, opts ...insightOption) *InsightMutation {
	m := &InsightMutation{
		config:        c,
		op:            op,
		typ:           TypeInsight,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInsightID sets the ID field of the mutation.
func withInsightID(id string) insightOption {
	return func(m *InsightMutation) {
		var (
			err   error
			once  sync.Once
			value *Insight
		)
		m.oldValue = func(ctx context.Context) (*Insight, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Insight.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInsight sets the old Insight of the mutation.
func withInsight(node *Insight) insightOption {
	return func(m *InsightMutation) {
		m.oldValue = func(context.Context) (*Insight, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InsightMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InsightMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Insight entities.
func (m *InsightMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InsightMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InsightMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Insight.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *InsightMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *InsightMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *InsightMutation) ResetSessionID() {
	m.session_id = nil
}

// SetMeetingID sets the "meeting_id" field.
func (m *InsightMutation) SetMeetingID(s string) {
	m.meeting_id = &s
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *InsightMutation) MeetingID() (r string, exists bool) {
	v := m.meeting_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldMeetingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *InsightMutation) ResetMeetingID() {
	m.meeting_id = nil
}

// SetUserID sets the "user_id" field.
func (m *InsightMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InsightMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InsightMutation) ResetUserID() {
	m.user_id = nil
}

// SetStartupName sets the "startup_name" field.
func (m *InsightMutation) SetStartupName(s string) {
	m.startup_name = &s
}

// StartupName returns the value of the "startup_name" field in the mutation.
func (m *InsightMutation) StartupName() (r string, exists bool) {
	v := m.startup_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStartupName returns the old "startup_name" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldStartupName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartupName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartupName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartupName: %w", err)
	}
	return oldValue.StartupName, nil
}

// ResetStartupName resets all changes to the "startup_name" field.
func (m *InsightMutation) ResetStartupName() {
	m.startup_name = nil
}

// SetStructuredQa sets the "structured_qa" field.
func (m *InsightMutation) SetStructuredQa(sp []schematype.QAPair) {
	m.structured_qa = &sp
	m.appendstructured_qa = nil
}

// StructuredQa returns the value of the "structured_qa" field in the mutation.
func (m *InsightMutation) StructuredQa() (r []schematype.QAPair, exists bool) {
	v := m.structured_qa
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuredQa returns the old "structured_qa" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldStructuredQa(ctx context.Context) (v []schematype.QAPair, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuredQa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuredQa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuredQa: %w", err)
	}
	return oldValue.StructuredQa, nil
}

// AppendStructuredQa adds sp to the "structured_qa" field.
func (m *InsightMutation) AppendStructuredQa(sp []schematype.QAPair) {
	m.appendstructured_qa = append(m.appendstructured_qa, sp...)
}

// AppendedStructuredQa returns the list of values that were appended to the "structured_qa" field in this mutation.
func (m *InsightMutation) AppendedStructuredQa() ([]schematype.QAPair, bool) {
	if len(m.appendstructured_qa) == 0 {
		return nil, false
	}
	return m.appendstructured_qa, true
}

// ResetStructuredQa resets all changes to the "structured_qa" field.
func (m *InsightMutation) ResetStructuredQa() {
	m.structured_qa = nil
	m.appendstructured_qa = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InsightMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InsightMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InsightMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InsightMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InsightMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InsightMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the InsightMutation builder.
func (m *InsightMutation) Where(ps ...predicate.Insight) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InsightMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InsightMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Insight, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InsightMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InsightMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Insight).
func (m *InsightMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InsightMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session_id != nil {
		fields = append(fields, insight.FieldSessionID)
	}
	if m.meeting_id != nil {
		fields = append(fields, insight.FieldMeetingID)
	}
	if m.user_id != nil {
		fields = append(fields, insight.FieldUserID)
	}
	if m.startup_name != nil {
		fields = append(fields, insight.FieldStartupName)
	}
	if m.structured_qa != nil {
		fields = append(fields, insight.FieldStructuredQa)
	}
	if m.created_at != nil {
		fields = append(fields, insight.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, insight.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InsightMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case insight.FieldSessionID:
		return m.SessionID()
	case insight.FieldMeetingID:
		return m.MeetingID()
	case insight.FieldUserID:
		return m.UserID()
	case insight.FieldStartupName:
		return m.StartupName()
	case insight.FieldStructuredQa:
		return m.StructuredQa()
	case insight.FieldCreatedAt:
		return m.CreatedAt()
	case insight.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InsightMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case insight.FieldSessionID:
		return m.OldSessionID(ctx)
	case insight.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case insight.FieldUserID:
		return m.OldUserID(ctx)
	case insight.FieldStartupName:
		return m.OldStartupName(ctx)
	case insight.FieldStructuredQa:
		return m.OldStructuredQa(ctx)
	case insight.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case insight.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Insight field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightMutation) SetField(name string, value ent.Value) error {
	switch name {
	case insight.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case insight.FieldMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case insight.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case insight.FieldStartupName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartupName(v)
		return nil
	case insight.FieldStructuredQa:
		v, ok := value.([]schematype.QAPair)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuredQa(v)
		return nil
	case insight.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case insight.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Insight field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InsightMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InsightMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Insight numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InsightMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InsightMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InsightMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Insight nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InsightMutation) ResetField(name string) error {
	switch name {
	case insight.FieldSessionID:
		m.ResetSessionID()
		return nil
	case insight.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case insight.FieldUserID:
		m.ResetUserID()
		return nil
	case insight.FieldStartupName:
		m.ResetStartupName()
		return nil
	case insight.FieldStructuredQa:
		m.ResetStructuredQa()
		return nil
	case insight.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case insight.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Insight field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InsightMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InsightMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InsightMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InsightMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InsightMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InsightMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InsightMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Insight unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InsightMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Insight edge %s", name)
}

// RatingMutation represents an operation that mutates the Rating nodes in the graph.
type RatingMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	startup_id    *int64
	addstartup_id *int64
	score         *int
	addscore      *int
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Rating, error)
	predicates    []predicate.Rating
}

var _ ent.Mutation = (*RatingMutation)(nil)

// ratingOption allows management of the mutation configuration using functional options.
type ratingOption func(*RatingMutation)

// newRatingMutation creates new mutation for the Rating entity.
func newRatingMutation(c config, op Op, opts ...ratingOption) *RatingMutation {
	m := &RatingMutation{
		config:        c,
		op:            op,
		typ:           TypeRating,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRatingID sets the ID field of the mutation.
func withRatingID(id string) ratingOption {
	return func(m *RatingMutation) {
		var (
			err   error
			once  sync.Once
			value *Rating
		)
		m.oldValue = func(ctx context.Context) (*Rating, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Rating.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRating sets the old Rating of the mutation.
func withRating(node *Rating) ratingOption {
	return func(m *RatingMutation) {
		m.oldValue = func(context.Context) (*Rating, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RatingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RatingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Rating entities.
func (m *RatingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RatingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RatingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Rating.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *RatingMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *RatingMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Rating entity.
// If the Rating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RatingMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *RatingMutation) ResetUserID() {
	m.user_id = nil
}

// SetStartupID sets the "startup_id" field.
func (m *RatingMutation) SetStartupID(i int64) {
	m.startup_id = &i
	m.addstartup_id = nil
}

// StartupID returns the value of the "startup_id" field in the mutation.
func (m *RatingMutation) StartupID() (r int64, exists bool) {
	v := m.startup_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStartupID returns the old "startup_id" field's value of the Rating entity.
// If the Rating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RatingMutation) OldStartupID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartupID: %w", err)
	}
	return oldValue.StartupID, nil
}

// AddStartupID adds i to the "startup_id" field.
func (m *RatingMutation) AddStartupID(i int64) {
	if m.addstartup_id != nil {
		*m.addstartup_id += i
	} else {
		m.addstartup_id = &i
	}
}

// AddedStartupID returns the value that was added to the "startup_id" field in this mutation.
func (m *RatingMutation) AddedStartupID() (r int64, exists bool) {
	v := m.addstartup_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartupID resets all changes to the "startup_id" field.
func (m *RatingMutation) ResetStartupID() {
	m.startup_id = nil
	m.addstartup_id = nil
}

// SetScore sets the "score" field.
func (m *RatingMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *RatingMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Rating entity.
// If the Rating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RatingMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *RatingMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *RatingMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *RatingMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RatingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RatingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Rating entity.
// If the Rating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RatingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RatingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RatingMutation builder.
func (m *RatingMutation) Where(ps ...predicate.Rating) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RatingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RatingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Rating, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RatingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RatingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Rating).
func (m *RatingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RatingMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, rating.FieldUserID)
	}
	if m.startup_id != nil {
		fields = append(fields, rating.FieldStartupID)
	}
	if m.score != nil {
		fields = append(fields, rating.FieldScore)
	}
	if m.updated_at != nil {
		fields = append(fields, rating.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RatingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rating.FieldUserID:
		return m.UserID()
	case rating.FieldStartupID:
		return m.StartupID()
	case rating.FieldScore:
		return m.Score()
	case rating.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RatingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rating.FieldUserID:
		return m.OldUserID(ctx)
	case rating.FieldStartupID:
		return m.OldStartupID(ctx)
	case rating.FieldScore:
		return m.OldScore(ctx)
	case rating.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Rating field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RatingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rating.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case rating.FieldStartupID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartupID(v)
		return nil
	case rating.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case rating.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Rating field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RatingMutation) AddedFields() []string {
	var fields []string
	if m.addstartup_id != nil {
		fields = append(fields, rating.FieldStartupID)
	}
	if m.addscore != nil {
		fields = append(fields, rating.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RatingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rating.FieldStartupID:
		return m.AddedStartupID()
	case rating.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RatingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rating.FieldStartupID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartupID(v)
		return nil
	case rating.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown Rating numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RatingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RatingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RatingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Rating nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RatingMutation) ResetField(name string) error {
	switch name {
	case rating.FieldUserID:
		m.ResetUserID()
		return nil
	case rating.FieldStartupID:
		m.ResetStartupID()
		return nil
	case rating.FieldScore:
		m.ResetScore()
		return nil
	case rating.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Rating field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RatingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RatingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RatingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RatingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RatingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RatingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RatingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Rating unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RatingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Rating edge %s", name)
}

// StartupMutation represents an operation that mutates the Startup nodes in the graph.
type StartupMutation struct {
	config
	op                            Op
	typ                           string
	id                            *int64
	name                          *string
	description                   *string
	short_description             *string
	primary_industry              *string
	secondary_industries          *[]string
	appendsecondary_industries    []string
	business_types                *[]string
	appendbusiness_types          []string
	stage                         *startup.Stage
	total_funding_usd_millions    *float64
	addtotal_funding_usd_millions *float64
	last_funding_date             *time.Time
	employees                     *string
	country                       *string
	city                          *string
	website                       *string
	logo_url                      *string
	topics                        *[]string
	appendtopics                  []string
	tech_stack                    *[]string
	appendtech_stack              []string
	maturity_score                *int
	addmaturity_score             *int
	enrichment                    *map[string]interface{}
	created_at                    *time.Time
	clearedFields                 map[string]struct{}
	done                          bool
	oldValue                      func(context.Context) (*Startup, error)
	predicates                    []predicate.Startup
}

var _ ent.Mutation = (*StartupMutation)(nil)

// startupOption allows management of the mutation configuration using functional options.
type startupOption func(*StartupMutation)

// newStartupMutation creates new mutation for the Startup entity.
func newStartupMutation(c config, op Op, opts ...startupOption) *StartupMutation {
	m := &StartupMutation{
		config:        c,
		op:            op,
		typ:           TypeStartup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStartupID sets the ID field of the mutation.
func withStartupID(id int64) startupOption {
	return func(m *StartupMutation) {
		var (
			err   error
			once  sync.Once
			value *Startup
		)
		m.oldValue = func(ctx context.Context) (*Startup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Startup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStartup sets the old Startup of the mutation.
func withStartup(node *Startup) startupOption {
	return func(m *StartupMutation) {
		m.oldValue = func(context.Context) (*Startup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StartupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StartupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Startup entities.
func (m *StartupMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StartupMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StartupMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Startup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *StartupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StartupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *StartupMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *StartupMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *StartupMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *StartupMutation) ResetDescription() {
	m.description = nil
}

// SetShortDescription sets the "short_description" field.
func (m *StartupMutation) SetShortDescription(s string) {
	m.short_description = &s
}

// ShortDescription returns the value of the "short_description" field in the mutation.
func (m *StartupMutation) ShortDescription() (r string, exists bool) {
	v := m.short_description
	if v == nil {
		return
	}
	return *v, true
}

// OldShortDescription returns the old "short_description" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldShortDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShortDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShortDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShortDescription: %w", err)
	}
	return oldValue.ShortDescription, nil
}

// ClearShortDescription clears the value of the "short_description" field.
func (m *StartupMutation) ClearShortDescription() {
	m.short_description = nil
	m.clearedFields[startup.FieldShortDescription] = struct{}{}
}

// ShortDescriptionCleared returns if the "short_description" field was cleared in this mutation.
func (m *StartupMutation) ShortDescriptionCleared() bool {
	_, ok := m.clearedFields[startup.FieldShortDescription]
	return ok
}

// ResetShortDescription resets all changes to the "short_description" field.
func (m *StartupMutation) ResetShortDescription() {
	m.short_description = nil
	delete(m.clearedFields, startup.FieldShortDescription)
}

// SetPrimaryIndustry sets the "primary_industry" field.
func (m *StartupMutation) SetPrimaryIndustry(s string) {
	m.primary_industry = &s
}

// PrimaryIndustry returns the value of the "primary_industry" field in the mutation.
func (m *StartupMutation) PrimaryIndustry() (r string, exists bool) {
	v := m.primary_industry
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryIndustry returns the old "primary_industry" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldPrimaryIndustry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryIndustry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryIndustry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryIndustry: %w", err)
	}
	return oldValue.PrimaryIndustry, nil
}

// ResetPrimaryIndustry resets all changes to the "primary_industry" field.
func (m *StartupMutation) ResetPrimaryIndustry() {
	m.primary_industry = nil
}

// SetSecondaryIndustries sets the "secondary_industries" field.
func (m *StartupMutation) SetSecondaryIndustries(s []string) {
	m.secondary_industries = &s
	m.appendsecondary_industries = nil
}

// SecondaryIndustries returns the value of the "secondary_industries" field in the mutation.
func (m *StartupMutation) SecondaryIndustries() (r []string, exists bool) {
	v := m.secondary_industries
	if v == nil {
		return
	}
	return *v, true
}

// OldSecondaryIndustries returns the old "secondary_industries" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldSecondaryIndustries(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecondaryIndustries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecondaryIndustries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecondaryIndustries: %w", err)
	}
	return oldValue.SecondaryIndustries, nil
}

// AppendSecondaryIndustries adds s to the "secondary_industries" field.
func (m *StartupMutation) AppendSecondaryIndustries(s []string) {
	m.appendsecondary_industries = append(m.appendsecondary_industries, s...)
}

// AppendedSecondaryIndustries returns the list of values that were appended to the "secondary_industries" field in this mutation.
func (m *StartupMutation) AppendedSecondaryIndustries() ([]string, bool) {
	if len(m.appendsecondary_industries) == 0 {
		return nil, false
	}
	return m.appendsecondary_industries, true
}

// ClearSecondaryIndustries clears the value of the "secondary_industries" field.
func (m *StartupMutation) ClearSecondaryIndustries() {
	m.secondary_industries = nil
	m.appendsecondary_industries = nil
	m.clearedFields[startup.FieldSecondaryIndustries] = struct{}{}
}

// SecondaryIndustriesCleared returns if the "secondary_industries" field was cleared in this mutation.
func (m *StartupMutation) SecondaryIndustriesCleared() bool {
	_, ok := m.clearedFields[startup.FieldSecondaryIndustries]
	return ok
}

// ResetSecondaryIndustries resets all changes to the "secondary_industries" field.
func (m *StartupMutation) ResetSecondaryIndustries() {
	m.secondary_industries = nil
	m.appendsecondary_industries = nil
	delete(m.clearedFields, startup.FieldSecondaryIndustries)
}

// SetBusinessTypes sets the "business_types" field.
func (m *StartupMutation) SetBusinessTypes(s []string) {
	m.business_types = &s
	m.appendbusiness_types = nil
}

// BusinessTypes returns the value of the "business_types" field in the mutation.
func (m *StartupMutation) BusinessTypes() (r []string, exists bool) {
	v := m.business_types
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessTypes returns the old "business_types" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldBusinessTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessTypes: %w", err)
	}
	return oldValue.BusinessTypes, nil
}

// AppendBusinessTypes adds s to the "business_types" field.
func (m *StartupMutation) AppendBusinessTypes(s []string) {
	m.appendbusiness_types = append(m.appendbusiness_types, s...)
}

// AppendedBusinessTypes returns the list of values that were appended to the "business_types" field in this mutation.
func (m *StartupMutation) AppendedBusinessTypes() ([]string, bool) {
	if len(m.appendbusiness_types) == 0 {
		return nil, false
	}
	return m.appendbusiness_types, true
}

// ClearBusinessTypes clears the value of the "business_types" field.
func (m *StartupMutation) ClearBusinessTypes() {
	m.business_types = nil
	m.appendbusiness_types = nil
	m.clearedFields[startup.FieldBusinessTypes] = struct{}{}
}

// BusinessTypesCleared returns if the "business_types" field was cleared in this mutation.
func (m *StartupMutation) BusinessTypesCleared() bool {
	_, ok := m.clearedFields[startup.FieldBusinessTypes]
	return ok
}

// ResetBusinessTypes resets all changes to the "business_types" field.
func (m *StartupMutation) ResetBusinessTypes() {
	m.business_types = nil
	m.appendbusiness_types = nil
	delete(m.clearedFields, startup.FieldBusinessTypes)
}

// SetStage sets the "stage" field.
func (m *StartupMutation) SetStage(s startup.Stage) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *StartupMutation) Stage() (r startup.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldStage(ctx context.Context) (v startup.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *StartupMutation) ResetStage() {
	m.stage = nil
}

// SetTotalFundingUsdMillions sets the "total_funding_usd_millions" field.
func (m *StartupMutation) SetTotalFundingUsdMillions(f float64) {
	m.total_funding_usd_millions = &f
	m.addtotal_funding_usd_millions = nil
}

// TotalFundingUsdMillions returns the value of the "total_funding_usd_millions" field in the mutation.
func (m *StartupMutation) TotalFundingUsdMillions() (r float64, exists bool) {
	v := m.total_funding_usd_millions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalFundingUsdMillions returns the old "total_funding_usd_millions" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldTotalFundingUsdMillions(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalFundingUsdMillions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalFundingUsdMillions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalFundingUsdMillions: %w", err)
	}
	return oldValue.TotalFundingUsdMillions, nil
}

// AddTotalFundingUsdMillions adds f to the "total_funding_usd_millions" field.
func (m *StartupMutation) AddTotalFundingUsdMillions(f float64) {
	if m.addtotal_funding_usd_millions != nil {
		*m.addtotal_funding_usd_millions += f
	} else {
		m.addtotal_funding_usd_millions = &f
	}
}

// AddedTotalFundingUsdMillions returns the value that was added to the "total_funding_usd_millions" field in this mutation.
func (m *StartupMutation) AddedTotalFundingUsdMillions() (r float64, exists bool) {
	v := m.addtotal_funding_usd_millions
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalFundingUsdMillions clears the value of the "total_funding_usd_millions" field.
func (m *StartupMutation) ClearTotalFundingUsdMillions() {
	m.total_funding_usd_millions = nil
	m.addtotal_funding_usd_millions = nil
	m.clearedFields[startup.FieldTotalFundingUsdMillions] = struct{}{}
}

// TotalFundingUsdMillionsCleared returns if the "total_funding_usd_millions" field was cleared in this mutation.
func (m *StartupMutation) TotalFundingUsdMillionsCleared() bool {
	_, ok := m.clearedFields[startup.FieldTotalFundingUsdMillions]
	return ok
}

// ResetTotalFundingUsdMillions resets all changes to the "total_funding_usd_millions" field.
func (m *StartupMutation) ResetTotalFundingUsdMillions() {
	m.total_funding_usd_millions = nil
	m.addtotal_funding_usd_millions = nil
	delete(m.clearedFields, startup.FieldTotalFundingUsdMillions)
}

// SetLastFundingDate sets the "last_funding_date" field.
func (m *StartupMutation) SetLastFundingDate(t time.Time) {
	m.last_funding_date = &t
}

// LastFundingDate returns the value of the "last_funding_date" field in the mutation.
func (m *StartupMutation) LastFundingDate() (r time.Time, exists bool) {
	v := m.last_funding_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastFundingDate returns the old "last_funding_date" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldLastFundingDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastFundingDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastFundingDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastFundingDate: %w", err)
	}
	return oldValue.LastFundingDate, nil
}

// ClearLastFundingDate clears the value of the "last_funding_date" field.
func (m *StartupMutation) ClearLastFundingDate() {
	m.last_funding_date = nil
	m.clearedFields[startup.FieldLastFundingDate] = struct{}{}
}

// LastFundingDateCleared returns if the "last_funding_date" field was cleared in this mutation.
func (m *StartupMutation) LastFundingDateCleared() bool {
	_, ok := m.clearedFields[startup.FieldLastFundingDate]
	return ok
}

// ResetLastFundingDate resets all changes to the "last_funding_date" field.
func (m *StartupMutation) ResetLastFundingDate() {
	m.last_funding_date = nil
	delete(m.clearedFields, startup.FieldLastFundingDate)
}

// SetEmployees sets the "employees" field.
func (m *StartupMutation) SetEmployees(s string) {
	m.employees = &s
}

// Employees returns the value of the "employees" field in the mutation.
func (m *StartupMutation) Employees() (r string, exists bool) {
	v := m.employees
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployees returns the old "employees" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldEmployees(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployees is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployees requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployees: %w", err)
	}
	return oldValue.Employees, nil
}

// ClearEmployees clears the value of the "employees" field.
func (m *StartupMutation) ClearEmployees() {
	m.employees = nil
	m.clearedFields[startup.FieldEmployees] = struct{}{}
}

// EmployeesCleared returns if the "employees" field was cleared in this mutation.
func (m *StartupMutation) EmployeesCleared() bool {
	_, ok := m.clearedFields[startup.FieldEmployees]
	return ok
}

// ResetEmployees resets all changes to the "employees" field.
func (m *StartupMutation) ResetEmployees() {
	m.employees = nil
	delete(m.clearedFields, startup.FieldEmployees)
}

// SetCountry sets the "country" field.
func (m *StartupMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *StartupMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ClearCountry clears the value of the "country" field.
func (m *StartupMutation) ClearCountry() {
	m.country = nil
	m.clearedFields[startup.FieldCountry] = struct{}{}
}

// CountryCleared returns if the "country" field was cleared in this mutation.
func (m *StartupMutation) CountryCleared() bool {
	_, ok := m.clearedFields[startup.FieldCountry]
	return ok
}

// ResetCountry resets all changes to the "country" field.
func (m *StartupMutation) ResetCountry() {
	m.country = nil
	delete(m.clearedFields, startup.FieldCountry)
}

// SetCity sets the "city" field.
func (m *StartupMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *StartupMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *StartupMutation) ClearCity() {
	m.city = nil
	m.clearedFields[startup.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *StartupMutation) CityCleared() bool {
	_, ok := m.clearedFields[startup.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *StartupMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, startup.FieldCity)
}

// SetWebsite sets the "website" field.
func (m *StartupMutation) SetWebsite(s string) {
	m.website = &s
}

// Website returns the value of the "website" field in the mutation.
func (m *StartupMutation) Website() (r string, exists bool) {
	v := m.website
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsite returns the old "website" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldWebsite(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsite: %w", err)
	}
	return oldValue.Website, nil
}

// ClearWebsite clears the value of the "website" field.
func (m *StartupMutation) ClearWebsite() {
	m.website = nil
	m.clearedFields[startup.FieldWebsite] = struct{}{}
}

// WebsiteCleared returns if the "website" field was cleared in this mutation.
func (m *StartupMutation) WebsiteCleared() bool {
	_, ok := m.clearedFields[startup.FieldWebsite]
	return ok
}

// ResetWebsite resets all changes to the "website" field.
func (m *StartupMutation) ResetWebsite() {
	m.website = nil
	delete(m.clearedFields, startup.FieldWebsite)
}

// SetLogoURL sets the "logo_url" field.
func (m *StartupMutation) SetLogoURL(s string) {
	m.logo_url = &s
}

// LogoURL returns the value of the "logo_url" field in the mutation.
func (m *StartupMutation) LogoURL() (r string, exists bool) {
	v := m.logo_url
	if v == nil {
		return
	}
	return *v, true
}

// OldLogoURL returns the old "logo_url" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldLogoURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogoURL: %w", err)
	}
	return oldValue.LogoURL, nil
}

// ClearLogoURL clears the value of the "logo_url" field.
func (m *StartupMutation) ClearLogoURL() {
	m.logo_url = nil
	m.clearedFields[startup.FieldLogoURL] = struct{}{}
}

// LogoURLCleared returns if the "logo_url" field was cleared in this mutation.
func (m *StartupMutation) LogoURLCleared() bool {
	_, ok := m.clearedFields[startup.FieldLogoURL]
	return ok
}

// ResetLogoURL resets all changes to the "logo_url" field.
func (m *StartupMutation) ResetLogoURL() {
	m.logo_url = nil
	delete(m.clearedFields, startup.FieldLogoURL)
}

// SetTopics sets the "topics" field.
func (m *StartupMutation) SetTopics(s []string) {
	m.topics = &s
	m.appendtopics = nil
}

// Topics returns the value of the "topics" field in the mutation.
func (m *StartupMutation) Topics() (r []string, exists bool) {
	v := m.topics
	if v == nil {
		return
	}
	return *v, true
}

// OldTopics returns the old "topics" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopics: %w", err)
	}
	return oldValue.Topics, nil
}

// AppendTopics adds s to the "topics" field.
func (m *StartupMutation) AppendTopics(s []string) {
	m.appendtopics = append(m.appendtopics, s...)
}

// AppendedTopics returns the list of values that were appended to the "topics" field in this mutation.
func (m *StartupMutation) AppendedTopics() ([]string, bool) {
	if len(m.appendtopics) == 0 {
		return nil, false
	}
	return m.appendtopics, true
}

// ClearTopics clears the value of the "topics" field.
func (m *StartupMutation) ClearTopics() {
	m.topics = nil
	m.appendtopics = nil
	m.clearedFields[startup.FieldTopics] = struct{}{}
}

// TopicsCleared returns if the "topics" field was cleared in this mutation.
func (m *StartupMutation) TopicsCleared() bool {
	_, ok := m.clearedFields[startup.FieldTopics]
	return ok
}

// ResetTopics resets all changes to the "topics" field.
func (m *StartupMutation) ResetTopics() {
	m.topics = nil
	m.appendtopics = nil
	delete(m.clearedFields, startup.FieldTopics)
}

// SetTechStack sets the "tech_stack" field.
func (m *StartupMutation) SetTechStack(s []string) {
	m.tech_stack = &s
	m.appendtech_stack = nil
}

// TechStack returns the value of the "tech_stack" field in the mutation.
func (m *StartupMutation) TechStack() (r []string, exists bool) {
	v := m.tech_stack
	if v == nil {
		return
	}
	return *v, true
}

// OldTechStack returns the old "tech_stack" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldTechStack(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTechStack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTechStack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTechStack: %w", err)
	}
	return oldValue.TechStack, nil
}

// AppendTechStack adds s to the "tech_stack" field.
func (m *StartupMutation) AppendTechStack(s []string) {
	m.appendtech_stack = append(m.appendtech_stack, s...)
}

// AppendedTechStack returns the list of values that were appended to the "tech_stack" field in this mutation.
func (m *StartupMutation) AppendedTechStack() ([]string, bool) {
	if len(m.appendtech_stack) == 0 {
		return nil, false
	}
	return m.appendtech_stack, true
}

// ClearTechStack clears the value of the "tech_stack" field.
func (m *StartupMutation) ClearTechStack() {
	m.tech_stack = nil
	m.appendtech_stack = nil
	m.clearedFields[startup.FieldTechStack] = struct{}{}
}

// TechStackCleared returns if the "tech_stack" field was cleared in this mutation.
func (m *StartupMutation) TechStackCleared() bool {
	_, ok := m.clearedFields[startup.FieldTechStack]
	return ok
}

// ResetTechStack resets all changes to the "tech_stack" field.
func (m *StartupMutation) ResetTechStack() {
	m.tech_stack = nil
	m.appendtech_stack = nil
	delete(m.clearedFields, startup.FieldTechStack)
}

// SetMaturityScore sets the "maturity_score" field.
func (m *StartupMutation) SetMaturityScore(i int) {
	m.maturity_score = &i
	m.addmaturity_score = nil
}

// MaturityScore returns the value of the "maturity_score" field in the mutation.
func (m *StartupMutation) MaturityScore() (r int, exists bool) {
	v := m.maturity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMaturityScore returns the old "maturity_score" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldMaturityScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaturityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaturityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaturityScore: %w", err)
	}
	return oldValue.MaturityScore, nil
}

// AddMaturityScore adds i to the "maturity_score" field.
func (m *StartupMutation) AddMaturityScore(i int) {
	if m.addmaturity_score != nil {
		*m.addmaturity_score += i
	} else {
		m.addmaturity_score = &i
	}
}

// AddedMaturityScore returns the value that was added to the "maturity_score" field in this mutation.
func (m *StartupMutation) AddedMaturityScore() (r int, exists bool) {
	v := m.addmaturity_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaturityScore clears the value of the "maturity_score" field.
func (m *StartupMutation) ClearMaturityScore() {
	m.maturity_score = nil
	m.addmaturity_score = nil
	m.clearedFields[startup.FieldMaturityScore] = struct{}{}
}

// MaturityScoreCleared returns if the "maturity_score" field was cleared in this mutation.
func (m *StartupMutation) MaturityScoreCleared() bool {
	_, ok := m.clearedFields[startup.FieldMaturityScore]
	return ok
}

// ResetMaturityScore resets all changes to the "maturity_score" field.
func (m *StartupMutation) ResetMaturityScore() {
	m.maturity_score = nil
	m.addmaturity_score = nil
	delete(m.clearedFields, startup.FieldMaturityScore)
}

// SetEnrichment sets the "enrichment" field.
func (m *StartupMutation) SetEnrichment(value map[string]interface{}) {
	m.enrichment = &value
}

// Enrichment returns the value of the "enrichment" field in the mutation.
func (m *StartupMutation) Enrichment() (r map[string]interface{}, exists bool) {
	v := m.enrichment
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichment returns the old "enrichment" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldEnrichment(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichment: %w", err)
	}
	return oldValue.Enrichment, nil
}

// ClearEnrichment clears the value of the "enrichment" field.
func (m *StartupMutation) ClearEnrichment() {
	m.enrichment = nil
	m.clearedFields[startup.FieldEnrichment] = struct{}{}
}

// EnrichmentCleared returns if the "enrichment" field was cleared in this mutation.
func (m *StartupMutation) EnrichmentCleared() bool {
	_, ok := m.clearedFields[startup.FieldEnrichment]
	return ok
}

// ResetEnrichment resets all changes to the "enrichment" field.
func (m *StartupMutation) ResetEnrichment() {
	m.enrichment = nil
	delete(m.clearedFields, startup.FieldEnrichment)
}

// SetCreatedAt sets the "created_at" field.
func (m *StartupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StartupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Startup entity.
// If the Startup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StartupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StartupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StartupMutation builder.
func (m *StartupMutation) Where(ps ...predicate.Startup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StartupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StartupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Startup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StartupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StartupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Startup).
func (m *StartupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StartupMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.name != nil {
		fields = append(fields, startup.FieldName)
	}
	if m.description != nil {
		fields = append(fields, startup.FieldDescription)
	}
	if m.short_description != nil {
		fields = append(fields, startup.FieldShortDescription)
	}
	if m.primary_industry != nil {
		fields = append(fields, startup.FieldPrimaryIndustry)
	}
	if m.secondary_industries != nil {
		fields = append(fields, startup.FieldSecondaryIndustries)
	}
	if m.business_types != nil {
		fields = append(fields, startup.FieldBusinessTypes)
	}
	if m.stage != nil {
		fields = append(fields, startup.FieldStage)
	}
	if m.total_funding_usd_millions != nil {
		fields = append(fields, startup.FieldTotalFundingUsdMillions)
	}
	if m.last_funding_date != nil {
		fields = append(fields, startup.FieldLastFundingDate)
	}
	if m.employees != nil {
		fields = append(fields, startup.FieldEmployees)
	}
	if m.country != nil {
		fields = append(fields, startup.FieldCountry)
	}
	if m.city != nil {
		fields = append(fields, startup.FieldCity)
	}
	if m.website != nil {
		fields = append(fields, startup.FieldWebsite)
	}
	if m.logo_url != nil {
		fields = append(fields, startup.FieldLogoURL)
	}
	if m.topics != nil {
		fields = append(fields, startup.FieldTopics)
	}
	if m.tech_stack != nil {
		fields = append(fields, startup.FieldTechStack)
	}
	if m.maturity_score != nil {
		fields = append(fields, startup.FieldMaturityScore)
	}
	if m.enrichment != nil {
		fields = append(fields, startup.FieldEnrichment)
	}
	if m.created_at != nil {
		fields = append(fields, startup.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StartupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case startup.FieldName:
		return m.Name()
	case startup.FieldDescription:
		return m.Description()
	case startup.FieldShortDescription:
		return m.ShortDescription()
	case startup.FieldPrimaryIndustry:
		return m.PrimaryIndustry()
	case startup.FieldSecondaryIndustries:
		return m.SecondaryIndustries()
	case startup.FieldBusinessTypes:
		return m.BusinessTypes()
	case startup.FieldStage:
		return m.Stage()
	case startup.FieldTotalFundingUsdMillions:
		return m.TotalFundingUsdMillions()
	case startup.FieldLastFundingDate:
		return m.LastFundingDate()
	case startup.FieldEmployees:
		return m.Employees()
	case startup.FieldCountry:
		return m.Country()
	case startup.FieldCity:
		return m.City()
	case startup.FieldWebsite:
		return m.Website()
	case startup.FieldLogoURL:
		return m.LogoURL()
	case startup.FieldTopics:
		return m.Topics()
	case startup.FieldTechStack:
		return m.TechStack()
	case startup.FieldMaturityScore:
		return m.MaturityScore()
	case startup.FieldEnrichment:
		return m.Enrichment()
	case startup.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StartupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case startup.FieldName:
		return m.OldName(ctx)
	case startup.FieldDescription:
		return m.OldDescription(ctx)
	case startup.FieldShortDescription:
		return m.OldShortDescription(ctx)
	case startup.FieldPrimaryIndustry:
		return m.OldPrimaryIndustry(ctx)
	case startup.FieldSecondaryIndustries:
		return m.OldSecondaryIndustries(ctx)
	case startup.FieldBusinessTypes:
		return m.OldBusinessTypes(ctx)
	case startup.FieldStage:
		return m.OldStage(ctx)
	case startup.FieldTotalFundingUsdMillions:
		return m.OldTotalFundingUsdMillions(ctx)
	case startup.FieldLastFundingDate:
		return m.OldLastFundingDate(ctx)
	case startup.FieldEmployees:
		return m.OldEmployees(ctx)
	case startup.FieldCountry:
		return m.OldCountry(ctx)
	case startup.FieldCity:
		return m.OldCity(ctx)
	case startup.FieldWebsite:
		return m.OldWebsite(ctx)
	case startup.FieldLogoURL:
		return m.OldLogoURL(ctx)
	case startup.FieldTopics:
		return m.OldTopics(ctx)
	case startup.FieldTechStack:
		return m.OldTechStack(ctx)
	case startup.FieldMaturityScore:
		return m.OldMaturityScore(ctx)
	case startup.FieldEnrichment:
		return m.OldEnrichment(ctx)
	case startup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Startup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StartupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case startup.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case startup.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case startup.FieldShortDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShortDescription(v)
		return nil
	case startup.FieldPrimaryIndustry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryIndustry(v)
		return nil
	case startup.FieldSecondaryIndustries:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecondaryIndustries(v)
		return nil
	case startup.FieldBusinessTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessTypes(v)
		return nil
	case startup.FieldStage:
		v, ok := value.(startup.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case startup.FieldTotalFundingUsdMillions:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalFundingUsdMillions(v)
		return nil
	case startup.FieldLastFundingDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastFundingDate(v)
		return nil
	case startup.FieldEmployees:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployees(v)
		return nil
	case startup.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case startup.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case startup.FieldWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsite(v)
		return nil
	case startup.FieldLogoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogoURL(v)
		return nil
	case startup.FieldTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopics(v)
		return nil
	case startup.FieldTechStack:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTechStack(v)
		return nil
	case startup.FieldMaturityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaturityScore(v)
		return nil
	case startup.FieldEnrichment:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichment(v)
		return nil
	case startup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Startup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StartupMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_funding_usd_millions != nil {
		fields = append(fields, startup.FieldTotalFundingUsdMillions)
	}
	if m.addmaturity_score != nil {
		fields = append(fields, startup.FieldMaturityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StartupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case startup.FieldTotalFundingUsdMillions:
		return m.AddedTotalFundingUsdMillions()
	case startup.FieldMaturityScore:
		return m.AddedMaturityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StartupMutation) AddField(name string, value ent.Value) error {
	switch name {
	case startup.FieldTotalFundingUsdMillions:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalFundingUsdMillions(v)
		return nil
	case startup.FieldMaturityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaturityScore(v)
		return nil
	}
	return fmt.Errorf("unknown Startup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StartupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(startup.FieldShortDescription) {
		fields = append(fields, startup.FieldShortDescription)
	}
	if m.FieldCleared(startup.FieldSecondaryIndustries) {
		fields = append(fields, startup.FieldSecondaryIndustries)
	}
	if m.FieldCleared(startup.FieldBusinessTypes) {
		fields = append(fields, startup.FieldBusinessTypes)
	}
	if m.FieldCleared(startup.FieldTotalFundingUsdMillions) {
		fields = append(fields, startup.FieldTotalFundingUsdMillions)
	}
	if m.FieldCleared(startup.FieldLastFundingDate) {
		fields = append(fields, startup.FieldLastFundingDate)
	}
	if m.FieldCleared(startup.FieldEmployees) {
		fields = append(fields, startup.FieldEmployees)
	}
	if m.FieldCleared(startup.FieldCountry) {
		fields = append(fields, startup.FieldCountry)
	}
	if m.FieldCleared(startup.FieldCity) {
		fields = append(fields, startup.FieldCity)
	}
	if m.FieldCleared(startup.FieldWebsite) {
		fields = append(fields, startup.FieldWebsite)
	}
	if m.FieldCleared(startup.FieldLogoURL) {
		fields = append(fields, startup.FieldLogoURL)
	}
	if m.FieldCleared(startup.FieldTopics) {
		fields = append(fields, startup.FieldTopics)
	}
	if m.FieldCleared(startup.FieldTechStack) {
		fields = append(fields, startup.FieldTechStack)
	}
	if m.FieldCleared(startup.FieldMaturityScore) {
		fields = append(fields, startup.FieldMaturityScore)
	}
	if m.FieldCleared(startup.FieldEnrichment) {
		fields = append(fields, startup.FieldEnrichment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StartupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StartupMutation) ClearField(name string) error {
	switch name {
	case startup.FieldShortDescription:
		m.ClearShortDescription()
		return nil
	case startup.FieldSecondaryIndustries:
		m.ClearSecondaryIndustries()
		return nil
	case startup.FieldBusinessTypes:
		m.ClearBusinessTypes()
		return nil
	case startup.FieldTotalFundingUsdMillions:
		m.ClearTotalFundingUsdMillions()
		return nil
	case startup.FieldLastFundingDate:
		m.ClearLastFundingDate()
		return nil
	case startup.FieldEmployees:
		m.ClearEmployees()
		return nil
	case startup.FieldCountry:
		m.ClearCountry()
		return nil
	case startup.FieldCity:
		m.ClearCity()
		return nil
	case startup.FieldWebsite:
		m.ClearWebsite()
		return nil
	case startup.FieldLogoURL:
		m.ClearLogoURL()
		return nil
	case startup.FieldTopics:
		m.ClearTopics()
		return nil
	case startup.FieldTechStack:
		m.ClearTechStack()
		return nil
	case startup.FieldMaturityScore:
		m.ClearMaturityScore()
		return nil
	case startup.FieldEnrichment:
		m.ClearEnrichment()
		return nil
	}
	return fmt.Errorf("unknown Startup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StartupMutation) ResetField(name string) error {
	switch name {
	case startup.FieldName:
		m.ResetName()
		return nil
	case startup.FieldDescription:
		m.ResetDescription()
		return nil
	case startup.FieldShortDescription:
		m.ResetShortDescription()
		return nil
	case startup.FieldPrimaryIndustry:
		m.ResetPrimaryIndustry()
		return nil
	case startup.FieldSecondaryIndustries:
		m.ResetSecondaryIndustries()
		return nil
	case startup.FieldBusinessTypes:
		m.ResetBusinessTypes()
		return nil
	case startup.FieldStage:
		m.ResetStage()
		return nil
	case startup.FieldTotalFundingUsdMillions:
		m.ResetTotalFundingUsdMillions()
		return nil
	case startup.FieldLastFundingDate:
		m.ResetLastFundingDate()
		return nil
	case startup.FieldEmployees:
		m.ResetEmployees()
		return nil
	case startup.FieldCountry:
		m.ResetCountry()
		return nil
	case startup.FieldCity:
		m.ResetCity()
		return nil
	case startup.FieldWebsite:
		m.ResetWebsite()
		return nil
	case startup.FieldLogoURL:
		m.ResetLogoURL()
		return nil
	case startup.FieldTopics:
		m.ResetTopics()
		return nil
	case startup.FieldTechStack:
		m.ResetTechStack()
		return nil
	case startup.FieldMaturityScore:
		m.ResetMaturityScore()
		return nil
	case startup.FieldEnrichment:
		m.ResetEnrichment()
		return nil
	case startup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Startup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StartupMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StartupMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StartupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StartupMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StartupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StartupMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StartupMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Startup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StartupMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Startup edge %s", name)
}

// VoteMutation represents an operation that mutates the Vote nodes in the graph.
type VoteMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	startup_id    *int64
	addstartup_id *int64
	interested    *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Vote, error)
	predicates    []predicate.Vote
}

var _ ent.Mutation = (*VoteMutation)(nil)

// voteOption allows management of the mutation configuration using functional options.
type voteOption func(*VoteMutation)

// newVoteMutation creates new mutation for the Vote entity.
func newVoteMutation(c config, op Op, opts ...voteOption) *VoteMutation {
	m := &VoteMutation{
		config:        c,
		op:            op,
		typ:           TypeVote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVoteID sets the ID field of the mutation.
func withVoteID(id string) voteOption {
	return func(m *VoteMutation) {
		var (
			err   error
			once  sync.Once
			value *Vote
		)
		m.oldValue = func(ctx context.Context) (*Vote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVote sets the old Vote of the mutation.
func withVote(node *Vote) voteOption {
	return func(m *VoteMutation) {
		m.oldValue = func(context.Context) (*Vote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Vote entities.
func (m *VoteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VoteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VoteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *VoteMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *VoteMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *VoteMutation) ResetUserID() {
	m.user_id = nil
}

// SetStartupID sets the "startup_id" field.
func (m *VoteMutation) SetStartupID(i int64) {
	m.startup_id = &i
	m.addstartup_id = nil
}

// StartupID returns the value of the "startup_id" field in the mutation.
func (m *VoteMutation) StartupID() (r int64, exists bool) {
	v := m.startup_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStartupID returns the old "startup_id" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldStartupID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartupID: %w", err)
	}
	return oldValue.StartupID, nil
}

// AddStartupID adds i to the "startup_id" field.
func (m *VoteMutation) AddStartupID(i int64) {
	if m.addstartup_id != nil {
		*m.addstartup_id += i
	} else {
		m.addstartup_id = &i
	}
}

// AddedStartupID returns the value that was added to the "startup_id" field in this mutation.
func (m *VoteMutation) AddedStartupID() (r int64, exists bool) {
	v := m.addstartup_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartupID resets all changes to the "startup_id" field.
func (m *VoteMutation) ResetStartupID() {
	m.startup_id = nil
	m.addstartup_id = nil
}

// SetInterested sets the "interested" field.
func (m *VoteMutation) SetInterested(b bool) {
	m.interested = &b
}

// Interested returns the value of the "interested" field in the mutation.
func (m *VoteMutation) Interested() (r bool, exists bool) {
	v := m.interested
	if v == nil {
		return
	}
	return *v, true
}

// OldInterested returns the old "interested" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldInterested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterested: %w", err)
	}
	return oldValue.Interested, nil
}

// ResetInterested resets all changes to the "interested" field.
func (m *VoteMutation) ResetInterested() {
	m.interested = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *VoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the VoteMutation builder.
func (m *VoteMutation) Where(ps ...predicate.Vote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vote).
func (m *VoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VoteMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, vote.FieldUserID)
	}
	if m.startup_id != nil {
		fields = append(fields, vote.FieldStartupID)
	}
	if m.interested != nil {
		fields = append(fields, vote.FieldInterested)
	}
	if m.created_at != nil {
		fields = append(fields, vote.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vote.FieldUserID:
		return m.UserID()
	case vote.FieldStartupID:
		return m.StartupID()
	case vote.FieldInterested:
		return m.Interested()
	case vote.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vote.FieldUserID:
		return m.OldUserID(ctx)
	case vote.FieldStartupID:
		return m.OldStartupID(ctx)
	case vote.FieldInterested:
		return m.OldInterested(ctx)
	case vote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Vote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vote.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case vote.FieldStartupID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartupID(v)
		return nil
	case vote.FieldInterested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterested(v)
		return nil
	case vote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Vote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VoteMutation) AddedFields() []string {
	var fields []string
	if m.addstartup_id != nil {
		fields = append(fields, vote.FieldStartupID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VoteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vote.FieldStartupID:
		return m.AddedStartupID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vote.FieldStartupID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartupID(v)
		return nil
	}
	return fmt.Errorf("unknown Vote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VoteMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VoteMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Vote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VoteMutation) ResetField(name string) error {
	switch name {
	case vote.FieldUserID:
		m.ResetUserID()
		return nil
	case vote.FieldStartupID:
		m.ResetStartupID()
		return nil
	case vote.FieldInterested:
		m.ResetInterested()
		return nil
	case vote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Vote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VoteMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VoteMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VoteMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Vote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VoteMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Vote edge %s", name)
}
