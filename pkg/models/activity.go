package models

import "time"

// CreateVoteRequest records a swipe decision.
type CreateVoteRequest struct {
	UserID     string `json:"user_id"`
	StartupID  int64  `json:"startup_id"`
	Interested bool   `json:"interested"`
}

// CreateRatingRequest records a 1-5 rating; re-rating overwrites.
type CreateRatingRequest struct {
	UserID    string `json:"user_id"`
	StartupID int64  `json:"startup_id"`
	Score     int    `json:"score"`
}

// CreateEventRequest creates a calendar event.
type CreateEventRequest struct {
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Attendees []string  `json:"attendees,omitempty"`
	EventType string    `json:"event_type,omitempty"`
	Category  string    `json:"category,omitempty"`
	Stage     string    `json:"stage,omitempty"`
}

// CreateIdeaRequest captures a free-form idea.
type CreateIdeaRequest struct {
	UserID  string `json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
}

// VoteResponse acknowledges a recorded swipe.
type VoteResponse struct {
	VoteID     string    `json:"vote_id"`
	UserID     string    `json:"user_id"`
	StartupID  int64     `json:"startup_id"`
	Interested bool      `json:"interested"`
	CreatedAt  time.Time `json:"created_at"`
}

// RatingResponse acknowledges a recorded rating.
type RatingResponse struct {
	RatingID  string    `json:"rating_id"`
	UserID    string    `json:"user_id"`
	StartupID int64     `json:"startup_id"`
	Score     int       `json:"score"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventResponse is a calendar event as returned by the API.
type EventResponse struct {
	EventID   string    `json:"event_id"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Attendees []string  `json:"attendees,omitempty"`
	EventType string    `json:"event_type"`
	Category  string    `json:"category,omitempty"`
	Stage     string    `json:"stage,omitempty"`
}

// IdeaResponse is a stored idea.
type IdeaResponse struct {
	IdeaID    string    `json:"idea_id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
