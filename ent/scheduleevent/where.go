// Code generated by ent, DO NOT EDIT.

package scheduleevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lessonq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldUserID, v))
}

// Track applies equality check predicate on the "track" field. It's identical to TrackEQ.
func Track(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldTrack, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldKind, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldDay, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldRunID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContainsFold(FieldUserID, v))
}

// TrackEQ applies the EQ predicate on the "track" field.
func TrackEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldTrack, v))
}

// TrackNEQ applies the NEQ predicate on the "track" field.
func TrackNEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldTrack, v))
}

// TrackIn applies the In predicate on the "track" field.
func TrackIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldTrack, vs...))
}

// TrackNotIn applies the NotIn predicate on the "track" field.
func TrackNotIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldTrack, vs...))
}

// TrackGT applies the GT predicate on the "track" field.
func TrackGT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldTrack, v))
}

// TrackGTE applies the GTE predicate on the "track" field.
func TrackGTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldTrack, v))
}

// TrackLT applies the LT predicate on the "track" field.
func TrackLT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldTrack, v))
}

// TrackLTE applies the LTE predicate on the "track" field.
func TrackLTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldTrack, v))
}

// TrackContains applies the Contains predicate on the "track" field.
func TrackContains(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContains(FieldTrack, v))
}

// TrackHasPrefix applies the HasPrefix predicate on the "track" field.
func TrackHasPrefix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasPrefix(FieldTrack, v))
}

// TrackHasSuffix applies the HasSuffix predicate on the "track" field.
func TrackHasSuffix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasSuffix(FieldTrack, v))
}

// TrackEqualFold applies the EqualFold predicate on the "track" field.
func TrackEqualFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEqualFold(FieldTrack, v))
}

// TrackContainsFold applies the ContainsFold predicate on the "track" field.
func TrackContainsFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContainsFold(FieldTrack, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContainsFold(FieldKind, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldDay, v))
}

// DayContains applies the Contains predicate on the "day" field.
func DayContains(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContains(FieldDay, v))
}

// DayHasPrefix applies the HasPrefix predicate on the "day" field.
func DayHasPrefix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasPrefix(FieldDay, v))
}

// DayHasSuffix applies the HasSuffix predicate on the "day" field.
func DayHasSuffix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasSuffix(FieldDay, v))
}

// DayEqualFold applies the EqualFold predicate on the "day" field.
func DayEqualFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEqualFold(FieldDay, v))
}

// DayContainsFold applies the ContainsFold predicate on the "day" field.
func DayContainsFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContainsFold(FieldDay, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContainsFold(FieldRunID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduleEvent) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduleEvent) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduleEvent) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.NotPredicates(p))
}
