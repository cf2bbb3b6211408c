// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CalendarEventsColumns holds the columns for the "calendar_events" table.
	CalendarEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "start", Type: field.TypeTime},
		{Name: "end", Type: field.TypeTime},
		{Name: "attendees", Type: field.TypeJSON, Nullable: true},
		{Name: "event_type", Type: field.TypeString, Default: "meeting"},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "stage", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CalendarEventsTable holds the schema information for the "calendar_events" table.
	CalendarEventsTable = &schema.Table{
		Name:       "calendar_events",
		Columns:    CalendarEventsColumns,
		PrimaryKey: []*schema.Column{CalendarEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "calendarevent_start",
				Unique:  false,
				Columns: []*schema.Column{CalendarEventsColumns[2]},
			},
			{
				Name:    "calendarevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{CalendarEventsColumns[5]},
			},
		},
	}
	// FeedbackSessionsColumns holds the columns for the "feedback_sessions" table.
	FeedbackSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "meeting_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "startup_id", Type: field.TypeInt64, Nullable: true},
		{Name: "startup_name", Type: field.TypeString},
		{Name: "startup_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "current_index", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "completed", "abandoned"}, Default: "in_progress"},
		{Name: "history", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_activity_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "feedback_session_insight", Type: field.TypeString, Nullable: true},
	}
	// FeedbackSessionsTable holds the schema information for the "feedback_sessions" table.
	FeedbackSessionsTable = &schema.Table{
		Name:       "feedback_sessions",
		Columns:    FeedbackSessionsColumns,
		PrimaryKey: []*schema.Column{FeedbackSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "feedback_sessions_insights_insight",
				Columns:    []*schema.Column{FeedbackSessionsColumns[14]},
				RefColumns: []*schema.Column{InsightsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "feedbacksession_meeting_id",
				Unique:  false,
				Columns: []*schema.Column{FeedbackSessionsColumns[1]},
			},
			{
				Name:    "feedbacksession_user_id",
				Unique:  false,
				Columns: []*schema.Column{FeedbackSessionsColumns[2]},
			},
			{
				Name:    "feedbacksession_status_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{FeedbackSessionsColumns[9], FeedbackSessionsColumns[12]},
			},
		},
	}
	// IdeasColumns holds the columns for the "ideas" table.
	IdeasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IdeasTable holds the schema information for the "ideas" table.
	IdeasTable = &schema.Table{
		Name:       "ideas",
		Columns:    IdeasColumns,
		PrimaryKey: []*schema.Column{IdeasColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idea_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{IdeasColumns[1], IdeasColumns[4]},
			},
		},
	}
	// InsightsColumns holds the columns for the "insights" table.
	InsightsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "meeting_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "startup_name", Type: field.TypeString},
		{Name: "structured_qa", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InsightsTable holds the schema information for the "insights" table.
	InsightsTable = &schema.Table{
		Name:       "insights",
		Columns:    InsightsColumns,
		PrimaryKey: []*schema.Column{InsightsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "insight_meeting_id",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[2]},
			},
			{
				Name:    "insight_user_id",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[3]},
			},
		},
	}
	// RatingsColumns holds the columns for the "ratings" table.
	RatingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "startup_id", Type: field.TypeInt64},
		{Name: "score", Type: field.TypeInt},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RatingsTable holds the schema information for the "ratings" table.
	RatingsTable = &schema.Table{
		Name:       "ratings",
		Columns:    RatingsColumns,
		PrimaryKey: []*schema.Column{RatingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rating_user_id_startup_id",
				Unique:  true,
				Columns: []*schema.Column{RatingsColumns[1], RatingsColumns[2]},
			},
		},
	}
	// StartupsColumns holds the columns for the "startups" table.
	StartupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "short_description", Type: field.TypeString, Nullable: true},
		{Name: "primary_industry", Type: field.TypeString},
		{Name: "secondary_industries", Type: field.TypeJSON, Nullable: true},
		{Name: "business_types", Type: field.TypeJSON, Nullable: true},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"pre_seed", "seed", "series_a", "series_b", "series_c", "series_d_plus", "growth", "undisclosed"}, Default: "undisclosed"},
		{Name: "total_funding_usd_millions", Type: field.TypeFloat64, Nullable: true},
		{Name: "last_funding_date", Type: field.TypeTime, Nullable: true},
		{Name: "employees", Type: field.TypeString, Nullable: true},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "logo_url", Type: field.TypeString, Nullable: true},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
		{Name: "tech_stack", Type: field.TypeJSON, Nullable: true},
		{Name: "maturity_score", Type: field.TypeInt, Nullable: true},
		{Name: "enrichment", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StartupsTable holds the schema information for the "startups" table.
	StartupsTable = &schema.Table{
		Name:       "startups",
		Columns:    StartupsColumns,
		PrimaryKey: []*schema.Column{StartupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "startup_primary_industry",
				Unique:  false,
				Columns: []*schema.Column{StartupsColumns[4]},
			},
			{
				Name:    "startup_country",
				Unique:  false,
				Columns: []*schema.Column{StartupsColumns[11]},
			},
			{
				Name:    "startup_stage",
				Unique:  false,
				Columns: []*schema.Column{StartupsColumns[7]},
			},
			{
				Name:    "startup_name",
				Unique:  false,
				Columns: []*schema.Column{StartupsColumns[1]},
			},
		},
	}
	// VotesColumns holds the columns for the "votes" table.
	VotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "startup_id", Type: field.TypeInt64},
		{Name: "interested", Type: field.TypeBool},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VotesTable holds the schema information for the "votes" table.
	VotesTable = &schema.Table{
		Name:       "votes",
		Columns:    VotesColumns,
		PrimaryKey: []*schema.Column{VotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vote_user_id_startup_id",
				Unique:  false,
				Columns: []*schema.Column{VotesColumns[1], VotesColumns[2]},
			},
			{
				Name:    "vote_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{VotesColumns[1], VotesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CalendarEventsTable,
		FeedbackSessionsTable,
		IdeasTable,
		InsightsTable,
		RatingsTable,
		StartupsTable,
		VotesTable,
	}
)

func init() {
	FeedbackSessionsTable.ForeignKeys[0].RefTable = InsightsTable
}
