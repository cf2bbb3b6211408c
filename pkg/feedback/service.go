// Package feedback implements the structured three-question feedback
// conversation. Sessions are persisted rows, never in-memory continuations,
// so any replica can resume a conversation.
package feedback

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/ent/feedbacksession"
	"github.com/confscout/scout/ent/schema/schematype"
	"github.com/confscout/scout/pkg/config"
	"github.com/confscout/scout/pkg/llm"
	"github.com/confscout/scout/pkg/models"
	"github.com/confscout/scout/pkg/services"
)

const (
	questionCount       = 3
	defaultAbandonAfter = 24 * time.Hour
)

// Service owns the feedback session state machine.
type Service struct {
	client       *ent.Client
	llm          llm.Client
	logger       *slog.Logger
	abandonAfter time.Duration

	// locks serialize reply against edit per session.
	locks [64]sync.Mutex

	now func() time.Time
}

// NewService creates the feedback service. A nil defaults falls back to the
// builtin abandonment window.
func NewService(client *ent.Client, llmClient llm.Client, defaults *config.Defaults, logger *slog.Logger) *Service {
	abandonAfter := defaultAbandonAfter
	if defaults != nil && defaults.FeedbackAbandonHours > 0 {
		abandonAfter = time.Duration(defaults.FeedbackAbandonHours) * time.Hour
	}
	return &Service{
		client:       client,
		llm:          llmClient,
		logger:       logger.With("component", "feedback"),
		abandonAfter: abandonAfter,
		now:          time.Now,
	}
}

func (s *Service) lock(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	mu := &s.locks[h.Sum32()%uint32(len(s.locks))]
	mu.Lock()
	return mu
}

// Start generates the three questions and opens a session.
func (s *Service) Start(ctx context.Context, req *models.StartFeedbackRequest) (*models.FeedbackSessionResponse, error) {
	switch {
	case req.MeetingID == "":
		return nil, services.NewValidationError("meeting_id", "must not be empty")
	case req.UserID == "":
		return nil, services.NewValidationError("user_id", "must not be empty")
	case req.StartupName == "":
		return nil, services.NewValidationError("startup_name", "must not be empty")
	}

	questions := s.generateQuestions(ctx, req.StartupName, req.StartupDescription)
	now := s.now().UTC()
	greeting := fmt.Sprintf("Thanks for meeting %s! Three quick questions to capture your impressions.\n\n%s",
		req.StartupName, questions[0].Text)

	create := s.client.FeedbackSession.Create().
		SetID(uuid.New().String()).
		SetMeetingID(req.MeetingID).
		SetUserID(req.UserID).
		SetStartupName(req.StartupName).
		SetStartupDescription(req.StartupDescription).
		SetQuestions(questions).
		SetAnswers(map[string]string{}).
		SetCurrentIndex(0).
		SetStatus(feedbacksession.StatusInProgress).
		SetHistory([]schematype.ChatTurn{assistantTurn(greeting, now)}).
		SetCreatedAt(now).
		SetLastActivityAt(now)
	if req.StartupID != 0 {
		create.SetStartupID(req.StartupID)
	}

	sess, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback session: %w", err)
	}

	s.logger.Info("Feedback session started",
		"session_id", sess.ID, "meeting_id", sess.MeetingID, "user_id", sess.UserID)
	return toResponse(sess, greeting, ""), nil
}

// Chat records one reply and advances the machine. The third reply completes
// the session and persists the insight.
func (s *Service) Chat(ctx context.Context, req *models.FeedbackChatRequest) (*models.FeedbackSessionResponse, error) {
	if req.SessionID == "" {
		return nil, services.NewValidationError("session_id", "must not be empty")
	}
	if req.Message == "" {
		return nil, services.NewValidationError("message", "must not be empty")
	}

	mu := s.lock(req.SessionID)
	defer mu.Unlock()

	sess, err := s.loadSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != feedbacksession.StatusInProgress {
		return nil, fmt.Errorf("%w: session is %s", services.ErrConflict, sess.Status)
	}

	now := s.now().UTC()
	question := sess.Questions[sess.CurrentIndex]

	answers := make(map[string]string, len(sess.Answers)+1)
	for k, v := range sess.Answers {
		answers[k] = v
	}
	answers[question.ID] = req.Message

	history := append(append([]schematype.ChatTurn(nil), sess.History...),
		schematype.ChatTurn{Role: "user", Content: req.Message, Timestamp: now})

	nextIndex := sess.CurrentIndex + 1
	completed := nextIndex == questionCount

	var reply string
	if completed {
		reply = fmt.Sprintf("That completes the debrief on %s. Your notes are saved and ready to review.", sess.StartupName)
	} else {
		reply = fmt.Sprintf("Noted. %s", sess.Questions[nextIndex].Text)
	}
	history = append(history, assistantTurn(reply, now))

	update := sess.Update().
		SetAnswers(answers).
		SetCurrentIndex(nextIndex).
		SetHistory(history).
		SetLastActivityAt(now)

	insightID := ""
	if completed {
		update.SetStatus(feedbacksession.StatusCompleted).SetCompletedAt(now)

		insight, err := s.client.Insight.Create().
			SetID(uuid.New().String()).
			SetSessionID(sess.ID).
			SetMeetingID(sess.MeetingID).
			SetUserID(sess.UserID).
			SetStartupName(sess.StartupName).
			SetStructuredQa(structuredQA(sess.Questions, answers)).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to persist insight: %w", err)
		}
		update.SetInsight(insight)
		insightID = insight.ID
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update feedback session: %w", err)
	}

	if completed {
		s.logger.Info("Feedback session completed", "session_id", sess.ID, "insight_id", insightID)
	}
	return toResponse(updated, reply, insightID), nil
}

// Get returns the full session state for resumption.
func (s *Service) Get(ctx context.Context, sessionID string) (*models.FeedbackSessionResponse, error) {
	mu := s.lock(sessionID)
	defer mu.Unlock()

	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	insightID := ""
	if ins, err := sess.QueryInsight().Only(ctx); err == nil {
		insightID = ins.ID
	}
	return toResponse(sess, "", insightID), nil
}

// Preview returns the questions of the most recent session for a meeting.
func (s *Service) Preview(ctx context.Context, meetingID string) (*models.FeedbackPreviewResponse, error) {
	sess, err := s.client.FeedbackSession.Query().
		Where(feedbacksession.MeetingID(meetingID)).
		Order(ent.Desc(feedbacksession.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: no feedback session for meeting %s", services.ErrNotFound, meetingID)
		}
		return nil, fmt.Errorf("failed to query feedback session: %w", err)
	}
	return &models.FeedbackPreviewResponse{
		MeetingID:   sess.MeetingID,
		StartupName: sess.StartupName,
		Questions:   sess.Questions,
	}, nil
}

// loadSession fetches a session and applies the abandonment timeout.
func (s *Service) loadSession(ctx context.Context, sessionID string) (*ent.FeedbackSession, error) {
	sess, err := s.client.FeedbackSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: feedback session %s", services.ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to load feedback session: %w", err)
	}

	if sess.Status == feedbacksession.StatusInProgress &&
		s.now().UTC().Sub(sess.LastActivityAt) > s.abandonAfter {
		sess, err = sess.Update().SetStatus(feedbacksession.StatusAbandoned).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to abandon stale session: %w", err)
		}
		s.logger.Info("Feedback session abandoned after inactivity", "session_id", sess.ID)
	}
	return sess, nil
}

// AbandonStale marks every in-progress session without recent activity as
// abandoned. Run periodically by the retention worker.
func (s *Service) AbandonStale(ctx context.Context) (int, error) {
	cutoff := s.now().UTC().Add(-s.abandonAfter)
	n, err := s.client.FeedbackSession.Update().
		Where(
			feedbacksession.StatusEQ(feedbacksession.StatusInProgress),
			feedbacksession.LastActivityAtLT(cutoff),
		).
		SetStatus(feedbacksession.StatusAbandoned).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to abandon stale sessions: %w", err)
	}
	if n > 0 {
		s.logger.Info("Abandoned stale feedback sessions", "count", n)
	}
	return n, nil
}

func assistantTurn(content string, at time.Time) schematype.ChatTurn {
	return schematype.ChatTurn{Role: "assistant", Content: content, Timestamp: at}
}

// structuredQA serializes questions and answers into the insight payload,
// preserving question order.
func structuredQA(questions []schematype.Question, answers map[string]string) []schematype.QAPair {
	qa := make([]schematype.QAPair, 0, len(questions))
	for _, q := range questions {
		qa = append(qa, schematype.QAPair{
			QuestionID: q.ID,
			Question:   q.Text,
			Category:   q.Category,
			Answer:     answers[q.ID],
		})
	}
	return qa
}

func toResponse(sess *ent.FeedbackSession, reply, insightID string) *models.FeedbackSessionResponse {
	return &models.FeedbackSessionResponse{
		SessionID:      sess.ID,
		MeetingID:      sess.MeetingID,
		UserID:         sess.UserID,
		StartupName:    sess.StartupName,
		Status:         string(sess.Status),
		CurrentIndex:   sess.CurrentIndex,
		Questions:      sess.Questions,
		Answers:        sess.Answers,
		History:        sess.History,
		Reply:          reply,
		InsightID:      insightID,
		CreatedAt:      sess.CreatedAt,
		LastActivityAt: sess.LastActivityAt,
		CompletedAt:    sess.CompletedAt,
	}
}
