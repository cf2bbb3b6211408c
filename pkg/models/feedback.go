package models

import (
	"time"

	"github.com/confscout/scout/ent/schema/schematype"
)

// StartFeedbackRequest is the body of POST /feedback/start.
type StartFeedbackRequest struct {
	MeetingID          string `json:"meeting_id"`
	UserID             string `json:"user_id"`
	StartupID          int64  `json:"startup_id,omitempty"`
	StartupName        string `json:"startup_name"`
	StartupDescription string `json:"startup_description,omitempty"`
}

// FeedbackChatRequest is the body of POST /feedback/chat.
type FeedbackChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// FeedbackSessionResponse is the full session state returned by
// GET /feedback/session/:id and the chat endpoints.
type FeedbackSessionResponse struct {
	SessionID      string                `json:"session_id"`
	MeetingID      string                `json:"meeting_id"`
	UserID         string                `json:"user_id"`
	StartupName    string                `json:"startup_name"`
	Status         string                `json:"status"`
	CurrentIndex   int                   `json:"current_index"`
	Questions      []schematype.Question `json:"questions"`
	Answers        map[string]string     `json:"answers"`
	History        []schematype.ChatTurn `json:"history"`
	Reply          string                `json:"reply,omitempty"`
	InsightID      string                `json:"insight_id,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	LastActivityAt time.Time             `json:"last_activity_at"`
	CompletedAt    *time.Time            `json:"completed_at,omitempty"`
}

// FeedbackPreviewResponse is returned by GET /feedback/preview/:meeting_id.
type FeedbackPreviewResponse struct {
	MeetingID   string                `json:"meeting_id"`
	StartupName string                `json:"startup_name"`
	Questions   []schematype.Question `json:"questions"`
}

// EditInsightRequest is the body of PUT /insights/:insight_id/edit.
type EditInsightRequest struct {
	StructuredQA []schematype.QAPair `json:"structured_qa"`
}

// InsightResponse wraps a persisted insight.
type InsightResponse struct {
	InsightID    string              `json:"insight_id"`
	SessionID    string              `json:"session_id"`
	MeetingID    string              `json:"meeting_id"`
	UserID       string              `json:"user_id"`
	StartupName  string              `json:"startup_name"`
	StructuredQA []schematype.QAPair `json:"structured_qa"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}
