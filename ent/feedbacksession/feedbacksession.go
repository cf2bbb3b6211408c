// Code generated by ent, DO NOT EDIT.

package feedbacksession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the feedbacksession type in the database.
	Label = "feedback_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldMeetingID holds the string denoting the meeting_id field in the database.
	FieldMeetingID = "meeting_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStartupID holds the string denoting the startup_id field in the database.
	FieldStartupID = "startup_id"
	// FieldStartupName holds the string denoting the startup_name field in the database.
	FieldStartupName = "startup_name"
	// FieldStartupDescription holds the string denoting the startup_description field in the database.
	FieldStartupDescription = "startup_description"
	// FieldQuestions holds the string denoting the questions field in the database.
	FieldQuestions = "questions"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldCurrentIndex holds the string denoting the current_index field in the database.
	FieldCurrentIndex = "current_index"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldHistory holds the string denoting the history field in the database.
	FieldHistory = "history"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeInsight holds the string denoting the insight edge name in mutations.
	EdgeInsight = "insight"
	// InsightFieldID holds the string denoting the ID field of the Insight.
	InsightFieldID = "id"
	// Table holds the table name of the feedbacksession in the database.
	Table = "feedback_sessions"
	// InsightTable is the table that holds the insight relation/edge.
	InsightTable = "feedback_sessions"
	// InsightInverseTable is the table name for the Insight entity.
	// It exists in this package in order to avoid circular dependency with the "insight" package.
	InsightInverseTable = "insights"
	// InsightColumn is the table column denoting the insight relation/edge.
	InsightColumn = "feedback_session_insight"
)

// Columns holds all SQL columns for feedbacksession fields.
var Columns = []string{
	FieldID,
	FieldMeetingID,
	FieldUserID,
	FieldStartupID,
	FieldStartupName,
	FieldStartupDescription,
	FieldQuestions,
	FieldAnswers,
	FieldCurrentIndex,
	FieldStatus,
	FieldHistory,
	FieldCreatedAt,
	FieldLastActivityAt,
	FieldCompletedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "feedback_sessions"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"feedback_session_insight",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCurrentIndex holds the default value on creation for the "current_index" field.
	DefaultCurrentIndex int
	// CurrentIndexValidator is a validator for the "current_index" field. It is called by the builders before save.
	CurrentIndexValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastActivityAt holds the default value on creation for the "last_activity_at" field.
	DefaultLastActivityAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusInProgress is the default value of the Status enum.
const DefaultStatus = StatusInProgress

// Status values.
const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusAbandoned  Status = "abandoned"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInProgress, StatusCompleted, StatusAbandoned:
		return nil
	default:
		return fmt.Errorf("feedbacksession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the FeedbackSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMeetingID orders the results by the meeting_id field.
func ByMeetingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStartupID orders the results by the startup_id field.
func ByStartupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartupID, opts...).ToFunc()
}

// ByStartupName orders the results by the startup_name field.
func ByStartupName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartupName, opts...).ToFunc()
}

// ByStartupDescription orders the results by the startup_description field.
func ByStartupDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartupDescription, opts...).ToFunc()
}

// ByCurrentIndex orders the results by the current_index field.
func ByCurrentIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentIndex, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByInsightField orders the results by insight field.
func ByInsightField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInsightStep(), sql.OrderByField(field, opts...))
	}
}
func newInsightStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InsightInverseTable, InsightFieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, InsightTable, InsightColumn),
	)
}
