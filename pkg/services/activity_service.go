package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/ent/idea"
	"github.com/confscout/scout/pkg/corpus"
	"github.com/confscout/scout/pkg/models"
)

// ActivityService records user activity: votes, ratings, calendar events and
// ideas. Votes and ratings flow through the corpus store so the in-memory
// activity index stays consistent with the database.
type ActivityService struct {
	store  *corpus.Store
	client *ent.Client
	logger *slog.Logger
}

// NewActivityService creates a new activity service.
func NewActivityService(store *corpus.Store, client *ent.Client, logger *slog.Logger) *ActivityService {
	return &ActivityService{
		store:  store,
		client: client,
		logger: logger.With("component", "activity_service"),
	}
}

// Vote records a swipe decision. Repeat votes append; the latest wins.
func (a *ActivityService) Vote(ctx context.Context, req models.CreateVoteRequest) (*models.VoteResponse, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "must not be empty")
	}
	if req.StartupID == 0 {
		return nil, NewValidationError("startup_id", "must not be zero")
	}

	v, err := a.store.RecordVote(ctx, req)
	if err != nil {
		return nil, a.translate(err)
	}
	return &models.VoteResponse{
		VoteID:     v.ID,
		UserID:     v.UserID,
		StartupID:  v.StartupID,
		Interested: v.Interested,
		CreatedAt:  v.CreatedAt,
	}, nil
}

// Rate records a 1-5 rating. Re-rating the same startup overwrites.
func (a *ActivityService) Rate(ctx context.Context, req models.CreateRatingRequest) (*models.RatingResponse, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "must not be empty")
	}
	if req.StartupID == 0 {
		return nil, NewValidationError("startup_id", "must not be zero")
	}
	if req.Score < 1 || req.Score > 5 {
		return nil, NewValidationError("score", "must be between 1 and 5")
	}

	r, err := a.store.RecordRating(ctx, req)
	if err != nil {
		return nil, a.translate(err)
	}
	return &models.RatingResponse{
		RatingID:  r.ID,
		UserID:    r.UserID,
		StartupID: r.StartupID,
		Score:     r.Score,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

// CreateEvent schedules a calendar event, rejecting attendee double-booking.
func (a *ActivityService) CreateEvent(ctx context.Context, req models.CreateEventRequest) (*models.EventResponse, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "must not be empty")
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return nil, NewValidationError("start", "start and end are required")
	}
	if !req.End.After(req.Start) {
		return nil, NewValidationError("end", "must be after start")
	}

	ev, err := a.store.RecordEvent(ctx, req)
	if err != nil {
		return nil, a.translate(err)
	}
	return eventResponse(ev), nil
}

// ListEvents returns calendar events intersecting [from, to).
func (a *ActivityService) ListEvents(ctx context.Context, from, to time.Time) ([]*models.EventResponse, error) {
	if !to.After(from) {
		return nil, NewValidationError("to", "must be after from")
	}
	events, err := a.store.EventsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]*models.EventResponse, len(events))
	for i, ev := range events {
		out[i] = eventResponse(ev)
	}
	return out, nil
}

// CreateIdea stores a free-form idea.
func (a *ActivityService) CreateIdea(ctx context.Context, req models.CreateIdeaRequest) (*models.IdeaResponse, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "must not be empty")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "must not be empty")
	}

	row, err := a.client.Idea.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetTitle(req.Title).
		SetContent(req.Content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}
	a.logger.Info("Idea recorded", "idea_id", row.ID, "user_id", row.UserID)
	return ideaResponse(row), nil
}

// ListIdeas returns a user's ideas, newest first.
func (a *ActivityService) ListIdeas(ctx context.Context, userID string) ([]*models.IdeaResponse, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "must not be empty")
	}
	rows, err := a.client.Idea.Query().
		Where(idea.UserID(userID)).
		Order(ent.Desc(idea.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	out := make([]*models.IdeaResponse, len(rows))
	for i, row := range rows {
		out[i] = ideaResponse(row)
	}
	return out, nil
}

// translate maps corpus sentinels onto the service error vocabulary.
func (a *ActivityService) translate(err error) error {
	switch {
	case errors.Is(err, corpus.ErrStartupNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, err)
	case errors.Is(err, corpus.ErrEventConflict), errors.Is(err, corpus.ErrDuplicateVote):
		return fmt.Errorf("%w: %s", ErrConflict, err)
	default:
		return err
	}
}

func eventResponse(ev *ent.CalendarEvent) *models.EventResponse {
	return &models.EventResponse{
		EventID:   ev.ID,
		Title:     ev.Title,
		Start:     ev.Start,
		End:       ev.End,
		Attendees: ev.Attendees,
		EventType: ev.EventType,
		Category:  ev.Category,
		Stage:     ev.Stage,
	}
}

func ideaResponse(row *ent.Idea) *models.IdeaResponse {
	return &models.IdeaResponse{
		IdeaID:    row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
