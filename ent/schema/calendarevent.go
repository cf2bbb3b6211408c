package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CalendarEvent holds the schema definition for the CalendarEvent entity.
type CalendarEvent struct {
	ent.Schema
}

// Fields of the CalendarEvent.
func (CalendarEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Time("start"),
		field.Time("end"),
		field.JSON("attendees", []string{}).
			Optional().
			Comment("User IDs attending this event"),
		field.String("event_type").
			Default("meeting"),
		field.String("category").
			Optional(),
		field.String("stage").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the CalendarEvent.
func (CalendarEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("start"),
		index.Fields("event_type"),
	}
}
