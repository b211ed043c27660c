// Code generated by ent, DO NOT EDIT.

package progressdoc

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lessonq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldEQ(FieldUserID, v))
}

// Track applies equality check predicate on the "track" field. It's identical to TrackEQ.
func Track(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldEQ(FieldTrack, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldEQ(FieldLevel, v))
}

// Quota applies equality check predicate on the "quota" field. It's identical to QuotaEQ.
func Quota(v int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldEQ(FieldQuota, v))
}

// Revision applies equality check predicate on the "revision" field. It's identical to RevisionEQ.
func Revision(v int64) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldEQ(FieldRevision, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldContainsFold(FieldUserID, v))
}

// TrackEQ applies the EQ predicate on the "track" field.
func TrackEQ(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldEQ(FieldTrack, v))
}

// TrackNEQ applies the NEQ predicate on the "track" field.
func TrackNEQ(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldNEQ(FieldTrack, v))
}

// TrackIn applies the In predicate on the "track" field.
func TrackIn(vs ...string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldIn(FieldTrack, vs...))
}

// TrackNotIn applies the NotIn predicate on the "track" field.
func TrackNotIn(vs ...string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldNotIn(FieldTrack, vs...))
}

// TrackGT applies the GT predicate on the "track" field.
func TrackGT(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldGT(FieldTrack, v))
}

// TrackGTE applies the GTE predicate on the "track" field.
func TrackGTE(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldGTE(FieldTrack, v))
}

// TrackLT applies the LT predicate on the "track" field.
func TrackLT(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldLT(FieldTrack, v))
}

// TrackLTE applies the LTE predicate on the "track" field.
func TrackLTE(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldLTE(FieldTrack, v))
}

// TrackContains applies the Contains predicate on the "track" field.
func TrackContains(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldContains(FieldTrack, v))
}

// TrackHasPrefix applies the HasPrefix predicate on the "track" field.
func TrackHasPrefix(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldHasPrefix(FieldTrack, v))
}

// TrackHasSuffix applies the HasSuffix predicate on the "track" field.
func TrackHasSuffix(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldHasSuffix(FieldTrack, v))
}

// TrackEqualFold applies the EqualFold predicate on the "track" field.
func TrackEqualFold(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldEqualFold(FieldTrack, v))
}

// TrackContainsFold applies the ContainsFold predicate on the "track" field.
func TrackContainsFold(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldContainsFold(FieldTrack, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldContainsFold(FieldLevel, v))
}

// QuotaEQ applies the EQ predicate on the "quota" field.
func QuotaEQ(v int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldEQ(FieldQuota, v))
}

// QuotaNEQ applies the NEQ predicate on the "quota" field.
func QuotaNEQ(v int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldNEQ(FieldQuota, v))
}

// QuotaIn applies the In predicate on the "quota" field.
func QuotaIn(vs ...int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldIn(FieldQuota, vs...))
}

// QuotaNotIn applies the NotIn predicate on the "quota" field.
func QuotaNotIn(vs ...int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldNotIn(FieldQuota, vs...))
}

// QuotaGT applies the GT predicate on the "quota" field.
func QuotaGT(v int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldGT(FieldQuota, v))
}

// QuotaGTE applies the GTE predicate on the "quota" field.
func QuotaGTE(v int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldGTE(FieldQuota, v))
}

// QuotaLT applies the LT predicate on the "quota" field.
func QuotaLT(v int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldLT(FieldQuota, v))
}

// QuotaLTE applies the LTE predicate on the "quota" field.
func QuotaLTE(v int) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldLTE(FieldQuota, v))
}

// RevisionEQ applies the EQ predicate on the "revision" field.
func RevisionEQ(v int64) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldEQ(FieldRevision, v))
}

// RevisionNEQ applies the NEQ predicate on the "revision" field.
func RevisionNEQ(v int64) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldNEQ(FieldRevision, v))
}

// RevisionIn applies the In predicate on the "revision" field.
func RevisionIn(vs ...int64) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldIn(FieldRevision, vs...))
}

// RevisionNotIn applies the NotIn predicate on the "revision" field.
func RevisionNotIn(vs ...int64) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldNotIn(FieldRevision, vs...))
}

// RevisionGT applies the GT predicate on the "revision" field.
func RevisionGT(v int64) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldGT(FieldRevision, v))
}

// RevisionGTE applies the GTE predicate on the "revision" field.
func RevisionGTE(v int64) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldGTE(FieldRevision, v))
}

// RevisionLT applies the LT predicate on the "revision" field.
func RevisionLT(v int64) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldLT(FieldRevision, v))
}

// RevisionLTE applies the LTE predicate on the "revision" field.
func RevisionLTE(v int64) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldLTE(FieldRevision, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProgressDoc) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProgressDoc) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProgressDoc) predicate.ProgressDoc {
	return predicate.ProgressDoc(sql.NotPredicates(p))
}
