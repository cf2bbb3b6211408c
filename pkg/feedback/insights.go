package feedback

import (
	"context"
	"fmt"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/ent/insight"
	"github.com/confscout/scout/pkg/models"
	"github.com/confscout/scout/pkg/services"
)

// GetInsight returns a persisted insight by id.
func (s *Service) GetInsight(ctx context.Context, insightID string) (*models.InsightResponse, error) {
	ins, err := s.client.Insight.Get(ctx, insightID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: insight %s", services.ErrNotFound, insightID)
		}
		return nil, fmt.Errorf("failed to load insight: %w", err)
	}
	return insightResponse(ins), nil
}

// EditInsight replaces the structured Q/A of an insight. The session history
// is untouched, only the distilled answers change.
func (s *Service) EditInsight(ctx context.Context, insightID string, req *models.EditInsightRequest) (*models.InsightResponse, error) {
	if len(req.StructuredQA) == 0 {
		return nil, services.NewValidationError("structured_qa", "must not be empty")
	}
	for i, qa := range req.StructuredQA {
		if qa.QuestionID == "" {
			return nil, services.NewValidationError("structured_qa", fmt.Sprintf("entry %d is missing question_id", i))
		}
	}

	ins, err := s.client.Insight.Get(ctx, insightID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: insight %s", services.ErrNotFound, insightID)
		}
		return nil, fmt.Errorf("failed to load insight: %w", err)
	}

	// Edits race against the completing chat turn of the same session.
	mu := s.lock(ins.SessionID)
	defer mu.Unlock()

	updated, err := ins.Update().
		SetStructuredQa(req.StructuredQA).
		SetUpdatedAt(s.now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update insight: %w", err)
	}

	s.logger.Info("Insight edited", "insight_id", insightID, "session_id", ins.SessionID)
	return insightResponse(updated), nil
}

// InsightsByMeetings returns the insights for a batch of meeting ids, keyed
// by meeting id. Meetings without an insight are simply absent.
func (s *Service) InsightsByMeetings(ctx context.Context, meetingIDs []string) (map[string]*models.InsightResponse, error) {
	if len(meetingIDs) == 0 {
		return map[string]*models.InsightResponse{}, nil
	}

	rows, err := s.client.Insight.Query().
		Where(insight.MeetingIDIn(meetingIDs...)).
		Order(ent.Asc(insight.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query insights: %w", err)
	}

	// Later insights win when a meeting somehow has more than one.
	out := make(map[string]*models.InsightResponse, len(rows))
	for _, ins := range rows {
		out[ins.MeetingID] = insightResponse(ins)
	}
	return out, nil
}

// InsightsByUser lists a user's insights, newest first.
func (s *Service) InsightsByUser(ctx context.Context, userID string) ([]*models.InsightResponse, error) {
	rows, err := s.client.Insight.Query().
		Where(insight.UserID(userID)).
		Order(ent.Desc(insight.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query insights: %w", err)
	}
	out := make([]*models.InsightResponse, len(rows))
	for i, ins := range rows {
		out[i] = insightResponse(ins)
	}
	return out, nil
}

func insightResponse(ins *ent.Insight) *models.InsightResponse {
	return &models.InsightResponse{
		InsightID:    ins.ID,
		SessionID:    ins.SessionID,
		MeetingID:    ins.MeetingID,
		UserID:       ins.UserID,
		StartupName:  ins.StartupName,
		StructuredQA: ins.StructuredQa,
		CreatedAt:    ins.CreatedAt,
		UpdatedAt:    ins.UpdatedAt,
	}
}
