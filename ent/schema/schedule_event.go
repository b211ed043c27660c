package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduleEvent records a scheduling action taken against a progress
// document: a fresh assignment, a rollover, a backfill, or a range
// exhaustion. The log is append-only and gives operators the missed-
// lesson history the product surfaces.
type ScheduleEvent struct {
	ent.Schema
}

func (ScheduleEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ScheduleEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("track").NotEmpty(),
		field.String("kind").NotEmpty().
			Comment("assigned | rolled_over | backfilled | range_exhausted"),
		field.String("day").
			Comment("Study-day the action applies to"),
		field.JSON("lesson_nos", []int{}),
		field.String("run_id").Default(""),
	}
}

func (ScheduleEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "track"),
		index.Fields("kind"),
	}
}
