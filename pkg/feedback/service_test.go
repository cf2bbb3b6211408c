package feedback

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confscout/scout/ent/schema/schematype"
	"github.com/confscout/scout/pkg/llm"
	"github.com/confscout/scout/pkg/models"
	"github.com/confscout/scout/pkg/services"
	"github.com/confscout/scout/test/util"
)

// scriptedLLM replays responses in order.
type scriptedLLM struct {
	responses []*llm.Response
	calls     int
}

func (s *scriptedLLM) Complete(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	if s.calls >= len(s.responses) {
		return nil, errors.New("scripted client exhausted")
	}
	resp := s.responses[s.calls]
	s.calls++
	return resp, nil
}

// newTestService wires the service against a real database and a disabled
// LLM, so question generation takes the deterministic fallback path.
func newTestService(t *testing.T) *Service {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	return NewService(client, llm.Disabled(), nil, slog.Default())
}

func startRequest() *models.StartFeedbackRequest {
	return &models.StartFeedbackRequest{
		MeetingID:          "m1",
		UserID:             "u1",
		StartupName:        "Hookle",
		StartupDescription: "Social media automation for small businesses",
	}
}

func TestFeedbackRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Start(ctx, startRequest())
	require.NoError(t, err)
	assert.Equal(t, "in_progress", sess.Status)
	assert.Equal(t, 0, sess.CurrentIndex)
	require.Len(t, sess.Questions, 3)
	assert.Equal(t, CategoryTechnical, sess.Questions[0].Category)
	assert.Equal(t, CategoryBusiness, sess.Questions[1].Category)
	assert.Equal(t, CategoryAction, sess.Questions[2].Category)
	assert.Contains(t, sess.Reply, "Hookle")
	assert.Contains(t, sess.Reply, sess.Questions[0].Text)

	answers := []string{
		"Multi-platform automation",
		"60% workload reduction",
		"Schedule demo",
	}

	resp, err := svc.Chat(ctx, &models.FeedbackChatRequest{SessionID: sess.SessionID, Message: answers[0]})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", resp.Status)
	assert.Equal(t, 1, resp.CurrentIndex)
	assert.Contains(t, resp.Reply, resp.Questions[1].Text)
	assert.Empty(t, resp.InsightID)

	resp, err = svc.Chat(ctx, &models.FeedbackChatRequest{SessionID: sess.SessionID, Message: answers[1]})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.CurrentIndex)

	resp, err = svc.Chat(ctx, &models.FeedbackChatRequest{SessionID: sess.SessionID, Message: answers[2]})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, 3, resp.CurrentIndex)
	require.NotEmpty(t, resp.InsightID)
	require.NotNil(t, resp.CompletedAt)

	ins, err := svc.GetInsight(ctx, resp.InsightID)
	require.NoError(t, err)
	assert.Equal(t, sess.SessionID, ins.SessionID)
	assert.Equal(t, "Hookle", ins.StartupName)
	require.Len(t, ins.StructuredQA, 3)
	for i, qa := range ins.StructuredQA {
		assert.Equal(t, sess.Questions[i].ID, qa.QuestionID)
		assert.Equal(t, sess.Questions[i].Text, qa.Question)
		assert.Equal(t, answers[i], qa.Answer)
	}
	assert.Equal(t, "Schedule demo", ins.StructuredQA[2].Answer)

	// The answer map always matches the cursor.
	got, err := svc.Get(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Len(t, got.Answers, got.CurrentIndex)
	assert.Equal(t, resp.InsightID, got.InsightID)

	// A fourth reply is rejected.
	_, err = svc.Chat(ctx, &models.FeedbackChatRequest{SessionID: sess.SessionID, Message: "one more"})
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestFeedbackTailoredQuestions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	scripted := &scriptedLLM{responses: []*llm.Response{
		{Content: "```json\n[\"How does the scheduling engine work?\", \"Who pays for this?\", \"What happens next?\"]\n```"},
	}}
	svc := NewService(client, scripted, nil, slog.Default())

	sess, err := svc.Start(context.Background(), startRequest())
	require.NoError(t, err)
	require.Len(t, sess.Questions, 3)
	assert.Equal(t, "How does the scheduling engine work?", sess.Questions[0].Text)
	assert.Equal(t, "q1", sess.Questions[0].ID)
	assert.Equal(t, 1, scripted.calls)
}

func TestFeedbackFallbackOnBadQuestionOutput(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	scripted := &scriptedLLM{responses: []*llm.Response{
		{Content: "Here are two questions: what and why"},
	}}
	svc := NewService(client, scripted, nil, slog.Default())

	sess, err := svc.Start(context.Background(), startRequest())
	require.NoError(t, err)
	require.Len(t, sess.Questions, 3)
	assert.Contains(t, sess.Questions[0].Text, "Hookle")
}

func TestFeedbackStartValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, &models.StartFeedbackRequest{UserID: "u1", StartupName: "X"})
	assert.True(t, services.IsValidationError(err))
	_, err = svc.Start(ctx, &models.StartFeedbackRequest{MeetingID: "m1", StartupName: "X"})
	assert.True(t, services.IsValidationError(err))
	_, err = svc.Start(ctx, &models.StartFeedbackRequest{MeetingID: "m1", UserID: "u1"})
	assert.True(t, services.IsValidationError(err))

	_, err = svc.Chat(ctx, &models.FeedbackChatRequest{SessionID: "s", Message: ""})
	assert.True(t, services.IsValidationError(err))
	_, err = svc.Chat(ctx, &models.FeedbackChatRequest{SessionID: "does-not-exist", Message: "hi"})
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = svc.Get(ctx, "does-not-exist")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestFeedbackAbandonment(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	svc.now = func() time.Time { return now }

	sess, err := svc.Start(ctx, startRequest())
	require.NoError(t, err)

	// 25 hours later the session is stale; the next touch abandons it.
	now = now.Add(25 * time.Hour)
	_, err = svc.Chat(ctx, &models.FeedbackChatRequest{SessionID: sess.SessionID, Message: "too late"})
	require.ErrorIs(t, err, services.ErrConflict)
	assert.Contains(t, err.Error(), "abandoned")

	got, err := svc.Get(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "abandoned", got.Status)
	assert.Equal(t, 0, got.CurrentIndex, "no answer was recorded")
}

func TestFeedbackAbandonStaleBatch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	svc.now = func() time.Time { return now }

	stale, err := svc.Start(ctx, startRequest())
	require.NoError(t, err)

	now = now.Add(25 * time.Hour)
	fresh, err := svc.Start(ctx, &models.StartFeedbackRequest{
		MeetingID: "m2", UserID: "u1", StartupName: "AgentForge",
	})
	require.NoError(t, err)

	n, err := svc.AbandonStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := svc.Get(ctx, stale.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "abandoned", got.Status)

	got, err = svc.Get(ctx, fresh.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "in_progress", got.Status)
}

func TestFeedbackPreview(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Preview(ctx, "m1")
	assert.ErrorIs(t, err, services.ErrNotFound)

	sess, err := svc.Start(ctx, startRequest())
	require.NoError(t, err)

	preview, err := svc.Preview(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "Hookle", preview.StartupName)
	assert.Equal(t, sess.Questions, preview.Questions)
}

func TestEditInsight(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Start(ctx, startRequest())
	require.NoError(t, err)
	var last *models.FeedbackSessionResponse
	for _, msg := range []string{"tech answer", "biz answer", "next step"} {
		last, err = svc.Chat(ctx, &models.FeedbackChatRequest{SessionID: sess.SessionID, Message: msg})
		require.NoError(t, err)
	}
	require.NotEmpty(t, last.InsightID)

	edited := make([]schematype.QAPair, 3)
	for i, qa := range last.Questions {
		edited[i] = schematype.QAPair{QuestionID: qa.ID, Question: qa.Text, Category: qa.Category, Answer: "revised"}
	}
	ins, err := svc.EditInsight(ctx, last.InsightID, &models.EditInsightRequest{StructuredQA: edited})
	require.NoError(t, err)
	assert.Equal(t, "revised", ins.StructuredQA[0].Answer)

	// Editing replaces the distilled answers but never the transcript.
	got, err := svc.Get(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, last.History, got.History)

	_, err = svc.EditInsight(ctx, last.InsightID, &models.EditInsightRequest{})
	assert.True(t, services.IsValidationError(err))
	_, err = svc.EditInsight(ctx, "missing", &models.EditInsightRequest{StructuredQA: edited})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestInsightsByMeetings(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	complete := func(meetingID, startupName string) string {
		sess, err := svc.Start(ctx, &models.StartFeedbackRequest{
			MeetingID: meetingID, UserID: "u1", StartupName: startupName,
		})
		require.NoError(t, err)
		var last *models.FeedbackSessionResponse
		for _, msg := range []string{"a", "b", "c"} {
			last, err = svc.Chat(ctx, &models.FeedbackChatRequest{SessionID: sess.SessionID, Message: msg})
			require.NoError(t, err)
		}
		return last.InsightID
	}

	id1 := complete("m1", "Hookle")
	id2 := complete("m2", "AgentForge")

	byMeeting, err := svc.InsightsByMeetings(ctx, []string{"m1", "m2", "m3"})
	require.NoError(t, err)
	require.Len(t, byMeeting, 2)
	assert.Equal(t, id1, byMeeting["m1"].InsightID)
	assert.Equal(t, id2, byMeeting["m2"].InsightID)

	mine, err := svc.InsightsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	empty, err := svc.InsightsByMeetings(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
