// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProgressDocsColumns holds the columns for the "progress_docs" table.
	ProgressDocsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "track", Type: field.TypeString},
		{Name: "level", Type: field.TypeString, Default: ""},
		{Name: "quota", Type: field.TypeInt, Default: 0},
		{Name: "revision", Type: field.TypeInt64, Default: 0},
		{Name: "data", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressDocsTable holds the schema information for the "progress_docs" table.
	ProgressDocsTable = &schema.Table{
		Name:       "progress_docs",
		Columns:    ProgressDocsColumns,
		PrimaryKey: []*schema.Column{ProgressDocsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressdoc_user_id_track",
				Unique:  true,
				Columns: []*schema.Column{ProgressDocsColumns[1], ProgressDocsColumns[2]},
			},
		},
	}
	// ScheduleEventsColumns holds the columns for the "schedule_events" table.
	ScheduleEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "track", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "day", Type: field.TypeString},
		{Name: "lesson_nos", Type: field.TypeJSON},
		{Name: "run_id", Type: field.TypeString, Default: ""},
	}
	// ScheduleEventsTable holds the schema information for the "schedule_events" table.
	ScheduleEventsTable = &schema.Table{
		Name:       "schedule_events",
		Columns:    ScheduleEventsColumns,
		PrimaryKey: []*schema.Column{ScheduleEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduleevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ScheduleEventsColumns[1]},
			},
			{
				Name:    "scheduleevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ScheduleEventsColumns[2]},
			},
			{
				Name:    "scheduleevent_user_id_track",
				Unique:  false,
				Columns: []*schema.Column{ScheduleEventsColumns[3], ScheduleEventsColumns[4]},
			},
			{
				Name:    "scheduleevent_kind",
				Unique:  false,
				Columns: []*schema.Column{ScheduleEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProgressDocsTable,
		ScheduleEventsTable,
	}
)

func init() {
}
