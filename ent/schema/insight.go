package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/confscout/scout/ent/schema/schematype"
)

// Insight holds the schema definition for the Insight entity.
// An insight is the serialized outcome of a completed feedback session.
type Insight struct {
	ent.Schema
}

// Fields of the Insight.
func (Insight) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.String("meeting_id"),
		field.String("user_id"),
		field.String("startup_name"),
		field.JSON("structured_qa", []schematype.QAPair{}).
			Comment("Replaced wholesale on edit; session history stays intact"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Insight.
func (Insight) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("meeting_id"),
		index.Fields("user_id"),
	}
}
