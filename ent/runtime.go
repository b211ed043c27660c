// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/lessonq/ent/progressdoc"
	"github.com/abhisek/lessonq/ent/scheduleevent"
	"github.com/abhisek/lessonq/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	progressdocFields := schema.ProgressDoc{}.Fields()
	_ = progressdocFields
	// progressdocDescUserID is the schema descriptor for user_id field.
	progressdocDescUserID := progressdocFields[0].Descriptor()
	// progressdoc.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	progressdoc.UserIDValidator = progressdocDescUserID.Validators[0].(func(string) error)
	// progressdocDescTrack is the schema descriptor for track field.
	progressdocDescTrack := progressdocFields[1].Descriptor()
	// progressdoc.TrackValidator is a validator for the "track" field. It is called by the builders before save.
	progressdoc.TrackValidator = progressdocDescTrack.Validators[0].(func(string) error)
	// progressdocDescLevel is the schema descriptor for level field.
	progressdocDescLevel := progressdocFields[2].Descriptor()
	// progressdoc.DefaultLevel holds the default value on creation for the level field.
	progressdoc.DefaultLevel = progressdocDescLevel.Default.(string)
	// progressdocDescQuota is the schema descriptor for quota field.
	progressdocDescQuota := progressdocFields[3].Descriptor()
	// progressdoc.DefaultQuota holds the default value on creation for the quota field.
	progressdoc.DefaultQuota = progressdocDescQuota.Default.(int)
	// progressdocDescRevision is the schema descriptor for revision field.
	progressdocDescRevision := progressdocFields[4].Descriptor()
	// progressdoc.DefaultRevision holds the default value on creation for the revision field.
	progressdoc.DefaultRevision = progressdocDescRevision.Default.(int64)
	// progressdocDescUpdatedAt is the schema descriptor for updated_at field.
	progressdocDescUpdatedAt := progressdocFields[6].Descriptor()
	// progressdoc.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progressdoc.DefaultUpdatedAt = progressdocDescUpdatedAt.Default.(func() time.Time)
	// progressdoc.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progressdoc.UpdateDefaultUpdatedAt = progressdocDescUpdatedAt.UpdateDefault.(func() time.Time)
	scheduleeventMixin := schema.ScheduleEvent{}.Mixin()
	scheduleeventMixinFields0 := scheduleeventMixin[0].Fields()
	_ = scheduleeventMixinFields0
	scheduleeventFields := schema.ScheduleEvent{}.Fields()
	_ = scheduleeventFields
	// scheduleeventDescTimestamp is the schema descriptor for timestamp field.
	scheduleeventDescTimestamp := scheduleeventMixinFields0[1].Descriptor()
	// scheduleevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	scheduleevent.DefaultTimestamp = scheduleeventDescTimestamp.Default.(func() time.Time)
	// scheduleeventDescUserID is the schema descriptor for user_id field.
	scheduleeventDescUserID := scheduleeventFields[0].Descriptor()
	// scheduleevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	scheduleevent.UserIDValidator = scheduleeventDescUserID.Validators[0].(func(string) error)
	// scheduleeventDescTrack is the schema descriptor for track field.
	scheduleeventDescTrack := scheduleeventFields[1].Descriptor()
	// scheduleevent.TrackValidator is a validator for the "track" field. It is called by the builders before save.
	scheduleevent.TrackValidator = scheduleeventDescTrack.Validators[0].(func(string) error)
	// scheduleeventDescKind is the schema descriptor for kind field.
	scheduleeventDescKind := scheduleeventFields[2].Descriptor()
	// scheduleevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	scheduleevent.KindValidator = scheduleeventDescKind.Validators[0].(func(string) error)
	// scheduleeventDescRunID is the schema descriptor for run_id field.
	scheduleeventDescRunID := scheduleeventFields[5].Descriptor()
	// scheduleevent.DefaultRunID holds the default value on creation for the run_id field.
	scheduleevent.DefaultRunID = scheduleeventDescRunID.Default.(string)
}
