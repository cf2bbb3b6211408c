package concierge

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/ent/startup"
	"github.com/confscout/scout/pkg/corpus"
	"github.com/confscout/scout/pkg/llm"
	"github.com/confscout/scout/pkg/models"
	"github.com/confscout/scout/pkg/services"
	"github.com/confscout/scout/pkg/tools"
)

// scriptedLLM replays responses in order and records every request.
type scriptedLLM struct {
	responses []*llm.Response
	errs      []error
	requests  []*llm.Request
}

func (s *scriptedLLM) Complete(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	i := len(s.requests)
	s.requests = append(s.requests, req)
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i >= len(s.responses) {
		return nil, errors.New("scripted client exhausted")
	}
	return s.responses[i], nil
}

type staticSource struct{ snap *corpus.Snapshot }

func (s *staticSource) Snapshot() *corpus.Snapshot { return s.snap }

func toolCallResponse(calls ...llm.ToolCall) *llm.Response {
	return &llm.Response{Role: llm.RoleAssistant, FinishReason: "tool_calls", ToolCalls: calls}
}

func finalResponse(content string) *llm.Response {
	return &llm.Response{Role: llm.RoleAssistant, Content: content, FinishReason: "stop"}
}

func newTestConcierge(t *testing.T, client llm.Client) *Concierge {
	t.Helper()
	funding := func(v float64) *float64 { return &v }
	source := &staticSource{snap: corpus.NewSnapshot([]*ent.Startup{
		{
			ID: 1, Name: "AgentForge", Description: "multi-agent platform",
			PrimaryIndustry: "AI", Country: "Germany", City: "Berlin",
			Stage: startup.StageSeed, TotalFundingUsdMillions: funding(25),
		},
		{
			ID: 2, Name: "Coverly", Description: "insurance software",
			PrimaryIndustry: "InsurTech", Country: "Germany", City: "Munich",
			Stage: startup.StageSeriesA, TotalFundingUsdMillions: funding(12),
		},
	})}
	registry, err := tools.NewStartupRegistry(source)
	require.NoError(t, err)
	return New(client, registry, slog.Default())
}

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		question string
		want     QuestionType
	}{
		{"Write a LinkedIn post about my day", IntentLinkedInPost},
		{"generate post for the keynote", IntentLinkedInPost},
		{"I want to leave feedback on the meeting", IntentFeedbackFlow},
		{"directions to hall B please", IntentDirections},
		{"Which startup works on claims automation?", IntentStartupInfo},
		{"When does the keynote start?", IntentEventInfo},
		{"What should I eat for lunch?", IntentGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyIntent(tt.question, nil))
		})
	}

	// Context hint decides when no keyword matches.
	hint := &models.UserContext{Role: "event_info"}
	assert.Equal(t, IntentEventInfo, classifyIntent("anything interesting today?", hint))
}

func TestAskToolCallLoop(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{
		toolCallResponse(llm.ToolCall{
			ID: "c1", Name: "search_startups_by_location", Arguments: `{"country":"Germany"}`,
		}),
		toolCallResponse(llm.ToolCall{
			ID: "c2", Name: "search_startups_by_industry", Arguments: `{"industry":"AI"}`,
		}),
		finalResponse("AgentForge in Berlin has raised $25M."),
	}}
	c := newTestConcierge(t, client)

	resp, err := c.Ask(context.Background(), &models.AskRequest{
		Question: "Find AI startups in Germany with over $10M funding",
	})
	require.NoError(t, err)
	assert.Equal(t, "AgentForge in Berlin has raised $25M.", resp.Answer)
	assert.Equal(t, string(IntentStartupInfo), resp.QuestionType)

	// Three completions, each carrying the tool declarations.
	require.Len(t, client.requests, 3)
	for _, req := range client.requests {
		assert.Len(t, req.Tools, 7)
	}

	// The transcript grows in order: tool results follow their calls.
	final := client.requests[2].Messages
	require.Len(t, final, 6) // system, user, assistant, tool, assistant, tool
	assert.Equal(t, "search_startups_by_location", final[2].ToolCalls[0].Name)
	assert.Equal(t, "c1", final[3].ToolCallID)
	assert.Contains(t, final[3].Content, "AgentForge")
	assert.Equal(t, "search_startups_by_industry", final[4].ToolCalls[0].Name)
	assert.Equal(t, "c2", final[5].ToolCallID)
}

func TestAskSchemaCorrectionRound(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{
		// Missing the required query argument.
		toolCallResponse(llm.ToolCall{ID: "c1", Name: "search_startups_by_name", Arguments: `{}`}),
		// Corrected call.
		toolCallResponse(llm.ToolCall{ID: "c2", Name: "search_startups_by_name", Arguments: `{"query":"AgentForge"}`}),
		finalResponse("Found it."),
	}}
	c := newTestConcierge(t, client)

	resp, err := c.Ask(context.Background(), &models.AskRequest{Question: "tell me about the startup AgentForge"})
	require.NoError(t, err)
	assert.Equal(t, "Found it.", resp.Answer)

	// The correction payload went back as the tool result of c1.
	correction := client.requests[1].Messages[3]
	assert.Equal(t, "c1", correction.ToolCallID)
	assert.Contains(t, correction.Content, "corrected arguments")
}

func TestAskSecondSchemaViolationFails(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{
		toolCallResponse(llm.ToolCall{ID: "c1", Name: "search_startups_by_name", Arguments: `{}`}),
		toolCallResponse(llm.ToolCall{ID: "c2", Name: "search_startups_by_name", Arguments: `{"query":12}`}),
	}}
	c := newTestConcierge(t, client)

	_, err := c.Ask(context.Background(), &models.AskRequest{Question: "tell me about the startup AgentForge"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remained invalid")
}

func TestAskUnknownToolFedBackToModel(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{
		toolCallResponse(llm.ToolCall{ID: "c1", Name: "search_investors", Arguments: `{}`}),
		finalResponse("Let me answer without that."),
	}}
	c := newTestConcierge(t, client)

	resp, err := c.Ask(context.Background(), &models.AskRequest{Question: "which startup should I meet?"})
	require.NoError(t, err)
	assert.Equal(t, "Let me answer without that.", resp.Answer)
	assert.Contains(t, client.requests[1].Messages[3].Content, "unknown tool")
}

func TestAskIterationCapYieldsGracefulAnswer(t *testing.T) {
	call := toolCallResponse(llm.ToolCall{
		ID: "c", Name: "get_top_startups_by_funding", Arguments: `{}`,
	})
	client := &scriptedLLM{responses: []*llm.Response{call, call, call, call, call}}
	c := newTestConcierge(t, client)

	resp, err := c.Ask(context.Background(), &models.AskRequest{Question: "best funded startup?"})
	require.NoError(t, err)
	assert.Equal(t, exhaustedAnswer, resp.Answer)
	assert.Len(t, client.requests, 5, "loop stops at the iteration cap")
}

func TestAskMapsGatewayErrorsToServiceBusy(t *testing.T) {
	for _, kind := range []llm.ErrorKind{llm.KindCircuitOpen, llm.KindRateLimitExceeded, llm.KindUnavailable} {
		client := &scriptedLLM{errs: []error{&llm.Error{Kind: kind, Message: "down"}}}
		c := newTestConcierge(t, client)

		_, err := c.Ask(context.Background(), &models.AskRequest{Question: "any good startup here?"})
		assert.True(t, errors.Is(err, services.ErrServiceBusy), "kind %s", kind)
	}
}

func TestAskValidation(t *testing.T) {
	c := newTestConcierge(t, &scriptedLLM{})
	_, err := c.Ask(context.Background(), &models.AskRequest{Question: "   "})
	assert.True(t, services.IsValidationError(err))
}

func TestAskFeedbackAndDirectionsShortCircuit(t *testing.T) {
	c := newTestConcierge(t, &scriptedLLM{}) // any LLM call would panic the script

	resp, err := c.Ask(context.Background(), &models.AskRequest{Question: "I want to give feedback about my meeting"})
	require.NoError(t, err)
	assert.Equal(t, string(IntentFeedbackFlow), resp.QuestionType)

	resp, err = c.Ask(context.Background(), &models.AskRequest{Question: "directions to the main stage"})
	require.NoError(t, err)
	assert.Equal(t, string(IntentDirections), resp.QuestionType)
}

func TestGenerateLinkedInPost(t *testing.T) {
	client := &scriptedLLM{responses: []*llm.Response{finalResponse("Great post content")}}
	c := newTestConcierge(t, client)

	resp, err := c.GenerateLinkedInPost(context.Background(), &models.LinkedInPostRequest{
		Topic:      "Meeting AgentForge at the conference",
		KeyPoints:  []string{"multi-agent tech", "strong team"},
		TagHandles: []string{"@AgentForge"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Great post content", resp.Answer)
	assert.Equal(t, "linkedin_post", resp.QuestionType)

	req := client.requests[0]
	require.NotNil(t, req.Temperature)
	assert.Equal(t, 0.8, *req.Temperature)
	assert.Equal(t, linkedInMaxTokens, req.MaxTokens)
	assert.Contains(t, req.Messages[1].Content, "multi-agent tech")

	_, err = c.GenerateLinkedInPost(context.Background(), &models.LinkedInPostRequest{})
	assert.True(t, services.IsValidationError(err))
}
