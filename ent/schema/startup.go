package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Startup holds the schema definition for the Startup entity.
// Rows are created by the ingestion pipeline and are read-only at runtime;
// the hot path reads from the in-memory corpus snapshot, not this table.
type Startup struct {
	ent.Schema
}

// Fields of the Startup.
func (Startup) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Immutable().
			Comment("Stable identifier assigned by the ingestion pipeline"),
		field.String("name"),
		field.Text("description").
			Comment("Long-form description (full-text searchable)"),
		field.String("short_description").
			Optional().
			Comment("Derived from description when the source omits it"),
		field.String("primary_industry"),
		field.JSON("secondary_industries", []string{}).
			Optional(),
		field.JSON("business_types", []string{}).
			Optional().
			Comment("e.g. b2b, b2c, b2g"),
		field.Enum("stage").
			Values("pre_seed", "seed", "series_a", "series_b", "series_c", "series_d_plus", "growth", "undisclosed").
			Default("undisclosed"),
		field.Float("total_funding_usd_millions").
			Optional().
			Nillable(),
		field.Time("last_funding_date").
			Optional().
			Nillable(),
		field.String("employees").
			Optional().
			Comment("Range string, e.g. '11-25'"),
		field.String("country").
			Optional(),
		field.String("city").
			Optional(),
		field.String("website").
			Optional().
			Nillable(),
		field.String("logo_url").
			Optional().
			Nillable(),
		field.JSON("topics", []string{}).
			Optional(),
		field.JSON("tech_stack", []string{}).
			Optional(),
		field.Int("maturity_score").
			Optional().
			Nillable().
			Comment("0-100, set by enrichment"),
		field.JSON("enrichment", map[string]interface{}{}).
			Optional().
			Comment("Free-form enrichment payload: emails, phones, social links, team"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Startup.
func (Startup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("primary_industry"),
		index.Fields("country"),
		index.Fields("stage"),
		index.Fields("name"),
	}
}
