package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/confscout/scout/ent/schema/schematype"
)

// FeedbackSession holds the schema definition for the FeedbackSession entity.
// A session is a resumable three-question structured-QA conversation; any
// replica can resume it from this record alone.
type FeedbackSession struct {
	ent.Schema
}

// Fields of the FeedbackSession.
func (FeedbackSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("meeting_id"),
		field.String("user_id"),
		field.Int64("startup_id").
			Optional().
			Comment("Zero when the startup is not in the corpus"),
		field.String("startup_name"),
		field.Text("startup_description").
			Optional(),
		field.JSON("questions", []schematype.Question{}).
			Comment("Exactly three questions: technical, business, action"),
		field.JSON("answers", map[string]string{}).
			Optional().
			Comment("question_id -> answer text"),
		field.Int("current_index").
			Default(0).
			Min(0).
			Max(3),
		field.Enum("status").
			Values("in_progress", "completed", "abandoned").
			Default("in_progress"),
		field.JSON("history", []schematype.ChatTurn{}).
			Optional().
			Comment("Append-only conversation audit trail"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_activity_at").
			Default(time.Now).
			Comment("For 24h abandonment detection"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the FeedbackSession.
func (FeedbackSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("insight", Insight.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the FeedbackSession.
func (FeedbackSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("meeting_id"),
		index.Fields("user_id"),
		index.Fields("status", "last_activity_at"),
	}
}
