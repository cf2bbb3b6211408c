// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/confscout/scout/ent/feedbacksession"
	"github.com/confscout/scout/ent/insight"
	"github.com/confscout/scout/ent/schema/schematype"
)

// FeedbackSession is the model entity for the FeedbackSession schema.
type FeedbackSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MeetingID holds the value of the "meeting_id" field.
	MeetingID string `json:"meeting_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Zero when the startup is not in the corpus
	StartupID int64 `json:"startup_id,omitempty"`
	// StartupName holds the value of the "startup_name" field.
	StartupName string `json:"startup_name,omitempty"`
	// StartupDescription holds the value of the "startup_description" field.
	StartupDescription string `json:"startup_description,omitempty"`
	// Exactly three questions: technical, business, action
	Questions []schematype.Question `json:"questions,omitempty"`
	// question_id -> answer text
	Answers map[string]string `json:"answers,omitempty"`
	// CurrentIndex holds the value of the "current_index" field.
	CurrentIndex int `json:"current_index,omitempty"`
	// Status holds the value of the "status" field.
	Status feedbacksession.Status `json:"status,omitempty"`
	// Append-only conversation audit trail
	History []schematype.ChatTurn `json:"history,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// For 24h abandonment detection
	LastActivityAt time.Time `json:"last_activity_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FeedbackSessionQuery when eager-loading is set.
	Edges                    FeedbackSessionEdges `json:"edges"`
	feedback_session_insight *string
	selectValues             sql.SelectValues
}

// FeedbackSessionEdges holds the relations/edges for other nodes in the graph.
type FeedbackSessionEdges struct {
	// Insight holds the value of the insight edge.
	Insight *Insight `json:"insight,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InsightOrErr returns the Insight value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FeedbackSessionEdges) InsightOrErr() (*Insight, error) {
	if e.Insight != nil {
		return e.Insight, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: insight.Label}
	}
	return nil, &NotLoadedError{edge: "insight"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FeedbackSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case feedbacksession.FieldQuestions, feedbacksession.FieldAnswers, feedbacksession.FieldHistory:
			values[i] = new([]byte)
		case feedbacksession.FieldStartupID, feedbacksession.FieldCurrentIndex:
			values[i] = new(sql.NullInt64)
		case feedbacksession.FieldID, feedbacksession.FieldMeetingID, feedbacksession.FieldUserID, feedbacksession.FieldStartupName, feedbacksession.FieldStartupDescription, feedbacksession.FieldStatus:
			values[i] = new(sql.NullString)
		case feedbacksession.FieldCreatedAt, feedbacksession.FieldLastActivityAt, feedbacksession.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case feedbacksession.ForeignKeys[0]: // feedback_session_insight
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FeedbackSession fields.
func (_m *FeedbackSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case feedbacksession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case feedbacksession.FieldMeetingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_id", values[i])
			} else if value.Valid {
				_m.MeetingID = value.String
			}
		case feedbacksession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case feedbacksession.FieldStartupID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field startup_id", values[i])
			} else if value.Valid {
				_m.StartupID = value.Int64
			}
		case feedbacksession.FieldStartupName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field startup_name", values[i])
			} else if value.Valid {
				_m.StartupName = value.String
			}
		case feedbacksession.FieldStartupDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field startup_description", values[i])
			} else if value.Valid {
				_m.StartupDescription = value.String
			}
		case feedbacksession.FieldQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Questions); err != nil {
					return fmt.Errorf("unmarshal field questions: %w", err)
				}
			}
		case feedbacksession.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case feedbacksession.FieldCurrentIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_index", values[i])
			} else if value.Valid {
				_m.CurrentIndex = int(value.Int64)
			}
		case feedbacksession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = feedbacksession.Status(value.String)
			}
		case feedbacksession.FieldHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.History); err != nil {
					return fmt.Errorf("unmarshal field history: %w", err)
				}
			}
		case feedbacksession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case feedbacksession.FieldLastActivityAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_at", values[i])
			} else if value.Valid {
				_m.LastActivityAt = value.Time
			}
		case feedbacksession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case feedbacksession.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_session_insight", values[i])
			} else if value.Valid {
				_m.feedback_session_insight = new(string)
				*_m.feedback_session_insight = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FeedbackSession.
// This includes values selected through modifiers, order, etc.
func (_m *FeedbackSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInsight queries the "insight" edge of the FeedbackSession entity.
func (_m *FeedbackSession) QueryInsight() *InsightQuery {
	return NewFeedbackSessionClient(_m.config).QueryInsight(_m)
}

// Update returns a builder for updating this FeedbackSession.
// Note that you need to call FeedbackSession.Unwrap() before calling this method if this FeedbackSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FeedbackSession) Update() *FeedbackSessionUpdateOne {
	return NewFeedbackSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FeedbackSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FeedbackSession) Unwrap() *FeedbackSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FeedbackSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FeedbackSession) String() string {
	var builder strings.Builder
	builder.WriteString("FeedbackSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("meeting_id=")
	builder.WriteString(_m.MeetingID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("startup_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartupID))
	builder.WriteString(", ")
	builder.WriteString("startup_name=")
	builder.WriteString(_m.StartupName)
	builder.WriteString(", ")
	builder.WriteString("startup_description=")
	builder.WriteString(_m.StartupDescription)
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Questions))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("current_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentIndex))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("history=")
	builder.WriteString(fmt.Sprintf("%v", _m.History))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_activity_at=")
	builder.WriteString(_m.LastActivityAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// FeedbackSessions is a parsable slice of FeedbackSession.
type FeedbackSessions []*FeedbackSession
