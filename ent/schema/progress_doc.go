package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressDoc is the per-(user, track) progress document. The scheduler
// reads and replaces the JSON payload as a whole; revision increments on
// every effective write so cache readers can tell which version they
// hold.
type ProgressDoc struct {
	ent.Schema
}

func (ProgressDoc) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("track").NotEmpty(),
		field.String("level").Default(""),
		field.Int("quota").Default(0),
		field.Int64("revision").Default(0),
		field.JSON("data", map[string]any{}).
			Comment("Canonical progress document as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ProgressDoc) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "track").Unique(),
	}
}
