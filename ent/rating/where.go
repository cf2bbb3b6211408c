// Code generated by ent, DO NOT EDIT.

package rating

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/confscout/scout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Rating {
	return predicate.Rating(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Rating {
	return predicate.Rating(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldUserID, v))
}

// StartupID applies equality check predicate on the "startup_id" field. It's identical to StartupIDEQ.
func StartupID(v int64) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldStartupID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldScore, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Rating {
	return predicate.Rating(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Rating {
	return predicate.Rating(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Rating {
	return predicate.Rating(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Rating {
	return predicate.Rating(sql.FieldContainsFold(FieldUserID, v))
}

// StartupIDEQ applies the EQ predicate on the "startup_id" field.
func StartupIDEQ(v int64) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldStartupID, v))
}

// StartupIDNEQ applies the NEQ predicate on the "startup_id" field.
func StartupIDNEQ(v int64) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldStartupID, v))
}

// StartupIDIn applies the In predicate on the "startup_id" field.
func StartupIDIn(vs ...int64) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldStartupID, vs...))
}

// StartupIDNotIn applies the NotIn predicate on the "startup_id" field.
func StartupIDNotIn(vs ...int64) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldStartupID, vs...))
}

// StartupIDGT applies the GT predicate on the "startup_id" field.
func StartupIDGT(v int64) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldStartupID, v))
}

// StartupIDGTE applies the GTE predicate on the "startup_id" field.
func StartupIDGTE(v int64) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldStartupID, v))
}

// StartupIDLT applies the LT predicate on the "startup_id" field.
func StartupIDLT(v int64) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldStartupID, v))
}

// StartupIDLTE applies the LTE predicate on the "startup_id" field.
func StartupIDLTE(v int64) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldStartupID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldScore, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Rating) predicate.Rating {
	return predicate.Rating(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Rating) predicate.Rating {
	return predicate.Rating(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Rating) predicate.Rating {
	return predicate.Rating(sql.NotPredicates(p))
}
