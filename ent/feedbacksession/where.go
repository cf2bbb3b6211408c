// Code generated by ent, DO NOT EDIT.

package feedbacksession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/confscout/scout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldContainsFold(FieldID, id))
}

// MeetingID applies equality check predicate on the "meeting_id" field. It's identical to MeetingIDEQ.
func MeetingID(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldMeetingID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldUserID, v))
}

// StartupID applies equality check predicate on the "startup_id" field. It's identical to StartupIDEQ.
func StartupID(v int64) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldStartupID, v))
}

// StartupName applies equality check predicate on the "startup_name" field. It's identical to StartupNameEQ.
func StartupName(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldStartupName, v))
}

// StartupDescription applies equality check predicate on the "startup_description" field. It's identical to StartupDescriptionEQ.
func StartupDescription(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldStartupDescription, v))
}

// CurrentIndex applies equality check predicate on the "current_index" field. It's identical to CurrentIndexEQ.
func CurrentIndex(v int) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldCurrentIndex, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldCreatedAt, v))
}

// LastActivityAt applies equality check predicate on the "last_activity_at" field. It's identical to LastActivityAtEQ.
func LastActivityAt(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldLastActivityAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldCompletedAt, v))
}

// MeetingIDEQ applies the EQ predicate on the "meeting_id" field.
func MeetingIDEQ(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingIDNEQ applies the NEQ predicate on the "meeting_id" field.
func MeetingIDNEQ(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNEQ(FieldMeetingID, v))
}

// MeetingIDIn applies the In predicate on the "meeting_id" field.
func MeetingIDIn(vs ...string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldIn(FieldMeetingID, vs...))
}

// MeetingIDNotIn applies the NotIn predicate on the "meeting_id" field.
func MeetingIDNotIn(vs ...string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNotIn(FieldMeetingID, vs...))
}

// MeetingIDGT applies the GT predicate on the "meeting_id" field.
func MeetingIDGT(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGT(FieldMeetingID, v))
}

// MeetingIDGTE applies the GTE predicate on the "meeting_id" field.
func MeetingIDGTE(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGTE(FieldMeetingID, v))
}

// MeetingIDLT applies the LT predicate on the "meeting_id" field.
func MeetingIDLT(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLT(FieldMeetingID, v))
}

// MeetingIDLTE applies the LTE predicate on the "meeting_id" field.
func MeetingIDLTE(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLTE(FieldMeetingID, v))
}

// MeetingIDContains applies the Contains predicate on the "meeting_id" field.
func MeetingIDContains(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldContains(FieldMeetingID, v))
}

// MeetingIDHasPrefix applies the HasPrefix predicate on the "meeting_id" field.
func MeetingIDHasPrefix(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldHasPrefix(FieldMeetingID, v))
}

// MeetingIDHasSuffix applies the HasSuffix predicate on the "meeting_id" field.
func MeetingIDHasSuffix(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldHasSuffix(FieldMeetingID, v))
}

// MeetingIDEqualFold applies the EqualFold predicate on the "meeting_id" field.
func MeetingIDEqualFold(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEqualFold(FieldMeetingID, v))
}

// MeetingIDContainsFold applies the ContainsFold predicate on the "meeting_id" field.
func MeetingIDContainsFold(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldContainsFold(FieldMeetingID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldContainsFold(FieldUserID, v))
}

// StartupIDEQ applies the EQ predicate on the "startup_id" field.
func StartupIDEQ(v int64) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldStartupID, v))
}

// StartupIDNEQ applies the NEQ predicate on the "startup_id" field.
func StartupIDNEQ(v int64) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNEQ(FieldStartupID, v))
}

// StartupIDIn applies the In predicate on the "startup_id" field.
func StartupIDIn(vs ...int64) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldIn(FieldStartupID, vs...))
}

// StartupIDNotIn applies the NotIn predicate on the "startup_id" field.
func StartupIDNotIn(vs ...int64) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNotIn(FieldStartupID, vs...))
}

// StartupIDGT applies the GT predicate on the "startup_id" field.
func StartupIDGT(v int64) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGT(FieldStartupID, v))
}

// StartupIDGTE applies the GTE predicate on the "startup_id" field.
func StartupIDGTE(v int64) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGTE(FieldStartupID, v))
}

// StartupIDLT applies the LT predicate on the "startup_id" field.
func StartupIDLT(v int64) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLT(FieldStartupID, v))
}

// StartupIDLTE applies the LTE predicate on the "startup_id" field.
func StartupIDLTE(v int64) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLTE(FieldStartupID, v))
}

// StartupIDIsNil applies the IsNil predicate on the "startup_id" field.
func StartupIDIsNil() predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldIsNull(FieldStartupID))
}

// StartupIDNotNil applies the NotNil predicate on the "startup_id" field.
func StartupIDNotNil() predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNotNull(FieldStartupID))
}

// StartupNameEQ applies the EQ predicate on the "startup_name" field.
func StartupNameEQ(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldStartupName, v))
}

// StartupNameNEQ applies the NEQ predicate on the "startup_name" field.
func StartupNameNEQ(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNEQ(FieldStartupName, v))
}

// StartupNameIn applies the In predicate on the "startup_name" field.
func StartupNameIn(vs ...string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldIn(FieldStartupName, vs...))
}

// StartupNameNotIn applies the NotIn predicate on the "startup_name" field.
func StartupNameNotIn(vs ...string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNotIn(FieldStartupName, vs...))
}

// StartupNameGT applies the GT predicate on the "startup_name" field.
func StartupNameGT(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGT(FieldStartupName, v))
}

// StartupNameGTE applies the GTE predicate on the "startup_name" field.
func StartupNameGTE(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGTE(FieldStartupName, v))
}

// StartupNameLT applies the LT predicate on the "startup_name" field.
func StartupNameLT(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLT(FieldStartupName, v))
}

// StartupNameLTE applies the LTE predicate on the "startup_name" field.
func StartupNameLTE(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLTE(FieldStartupName, v))
}

// StartupNameContains applies the Contains predicate on the "startup_name" field.
func StartupNameContains(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldContains(FieldStartupName, v))
}

// StartupNameHasPrefix applies the HasPrefix predicate on the "startup_name" field.
func StartupNameHasPrefix(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldHasPrefix(FieldStartupName, v))
}

// StartupNameHasSuffix applies the HasSuffix predicate on the "startup_name" field.
func StartupNameHasSuffix(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldHasSuffix(FieldStartupName, v))
}

// StartupNameEqualFold applies the EqualFold predicate on the "startup_name" field.
func StartupNameEqualFold(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEqualFold(FieldStartupName, v))
}

// StartupNameContainsFold applies the ContainsFold predicate on the "startup_name" field.
func StartupNameContainsFold(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldContainsFold(FieldStartupName, v))
}

// StartupDescriptionEQ applies the EQ predicate on the "startup_description" field.
func StartupDescriptionEQ(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldStartupDescription, v))
}

// StartupDescriptionNEQ applies the NEQ predicate on the "startup_description" field.
func StartupDescriptionNEQ(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNEQ(FieldStartupDescription, v))
}

// StartupDescriptionIn applies the In predicate on the "startup_description" field.
func StartupDescriptionIn(vs ...string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldIn(FieldStartupDescription, vs...))
}

// StartupDescriptionNotIn applies the NotIn predicate on the "startup_description" field.
func StartupDescriptionNotIn(vs ...string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNotIn(FieldStartupDescription, vs...))
}

// StartupDescriptionGT applies the GT predicate on the "startup_description" field.
func StartupDescriptionGT(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGT(FieldStartupDescription, v))
}

// StartupDescriptionGTE applies the GTE predicate on the "startup_description" field.
func StartupDescriptionGTE(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGTE(FieldStartupDescription, v))
}

// StartupDescriptionLT applies the LT predicate on the "startup_description" field.
func StartupDescriptionLT(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLT(FieldStartupDescription, v))
}

// StartupDescriptionLTE applies the LTE predicate on the "startup_description" field.
func StartupDescriptionLTE(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLTE(FieldStartupDescription, v))
}

// StartupDescriptionContains applies the Contains predicate on the "startup_description" field.
func StartupDescriptionContains(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldContains(FieldStartupDescription, v))
}

// StartupDescriptionHasPrefix applies the HasPrefix predicate on the "startup_description" field.
func StartupDescriptionHasPrefix(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldHasPrefix(FieldStartupDescription, v))
}

// StartupDescriptionHasSuffix applies the HasSuffix predicate on the "startup_description" field.
func StartupDescriptionHasSuffix(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldHasSuffix(FieldStartupDescription, v))
}

// StartupDescriptionIsNil applies the IsNil predicate on the "startup_description" field.
func StartupDescriptionIsNil() predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldIsNull(FieldStartupDescription))
}

// StartupDescriptionNotNil applies the NotNil predicate on the "startup_description" field.
func StartupDescriptionNotNil() predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNotNull(FieldStartupDescription))
}

// StartupDescriptionEqualFold applies the EqualFold predicate on the "startup_description" field.
func StartupDescriptionEqualFold(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEqualFold(FieldStartupDescription, v))
}

// StartupDescriptionContainsFold applies the ContainsFold predicate on the "startup_description" field.
func StartupDescriptionContainsFold(v string) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldContainsFold(FieldStartupDescription, v))
}

// AnswersIsNil applies the IsNil predicate on the "answers" field.
func AnswersIsNil() predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldIsNull(FieldAnswers))
}

// AnswersNotNil applies the NotNil predicate on the "answers" field.
func AnswersNotNil() predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNotNull(FieldAnswers))
}

// CurrentIndexEQ applies the EQ predicate on the "current_index" field.
func CurrentIndexEQ(v int) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldCurrentIndex, v))
}

// CurrentIndexNEQ applies the NEQ predicate on the "current_index" field.
func CurrentIndexNEQ(v int) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNEQ(FieldCurrentIndex, v))
}

// CurrentIndexIn applies the In predicate on the "current_index" field.
func CurrentIndexIn(vs ...int) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldIn(FieldCurrentIndex, vs...))
}

// CurrentIndexNotIn applies the NotIn predicate on the "current_index" field.
func CurrentIndexNotIn(vs ...int) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNotIn(FieldCurrentIndex, vs...))
}

// CurrentIndexGT applies the GT predicate on the "current_index" field.
func CurrentIndexGT(v int) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGT(FieldCurrentIndex, v))
}

// CurrentIndexGTE applies the GTE predicate on the "current_index" field.
func CurrentIndexGTE(v int) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGTE(FieldCurrentIndex, v))
}

// CurrentIndexLT applies the LT predicate on the "current_index" field.
func CurrentIndexLT(v int) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLT(FieldCurrentIndex, v))
}

// CurrentIndexLTE applies the LTE predicate on the "current_index" field.
func CurrentIndexLTE(v int) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLTE(FieldCurrentIndex, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNotIn(FieldStatus, vs...))
}

// HistoryIsNil applies the IsNil predicate on the "history" field.
func HistoryIsNil() predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldIsNull(FieldHistory))
}

// HistoryNotNil applies the NotNil predicate on the "history" field.
func HistoryNotNil() predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNotNull(FieldHistory))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLTE(FieldCreatedAt, v))
}

// LastActivityAtEQ applies the EQ predicate on the "last_activity_at" field.
func LastActivityAtEQ(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastActivityAtNEQ applies the NEQ predicate on the "last_activity_at" field.
func LastActivityAtNEQ(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNEQ(FieldLastActivityAt, v))
}

// LastActivityAtIn applies the In predicate on the "last_activity_at" field.
func LastActivityAtIn(vs ...time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldIn(FieldLastActivityAt, vs...))
}

// LastActivityAtNotIn applies the NotIn predicate on the "last_activity_at" field.
func LastActivityAtNotIn(vs ...time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNotIn(FieldLastActivityAt, vs...))
}

// LastActivityAtGT applies the GT predicate on the "last_activity_at" field.
func LastActivityAtGT(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGT(FieldLastActivityAt, v))
}

// LastActivityAtGTE applies the GTE predicate on the "last_activity_at" field.
func LastActivityAtGTE(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGTE(FieldLastActivityAt, v))
}

// LastActivityAtLT applies the LT predicate on the "last_activity_at" field.
func LastActivityAtLT(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLT(FieldLastActivityAt, v))
}

// LastActivityAtLTE applies the LTE predicate on the "last_activity_at" field.
func LastActivityAtLTE(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLTE(FieldLastActivityAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.FieldNotNull(FieldCompletedAt))
}

// HasInsight applies the HasEdge predicate on the "insight" edge.
func HasInsight() predicate.FeedbackSession {
	return predicate.FeedbackSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, InsightTable, InsightColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInsightWith applies the HasEdge predicate on the "insight" edge with a given conditions (other predicates).
func HasInsightWith(preds ...predicate.Insight) predicate.FeedbackSession {
	return predicate.FeedbackSession(func(s *sql.Selector) {
		step := newInsightStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FeedbackSession) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FeedbackSession) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FeedbackSession) predicate.FeedbackSession {
	return predicate.FeedbackSession(sql.NotPredicates(p))
}
