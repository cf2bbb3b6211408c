package concierge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/confscout/scout/pkg/llm"
	"github.com/confscout/scout/pkg/models"
	"github.com/confscout/scout/pkg/services"
	"github.com/confscout/scout/pkg/tools"
)

const (
	defaultMaxIterations = 5

	systemPrompt = `You are the concierge of a startup discovery service at a technology conference. Answer questions about startups, funding and events using the provided tools. Ground every factual claim in tool results. Keep answers concise and conversational. If the tools return nothing useful, say so instead of guessing.`

	feedbackHint = "It sounds like you want to capture meeting feedback. Start a feedback session for the meeting and I will walk you through three short questions."

	directionsHint = "Directions are handled by the venue maps service. Open the map view and search for the location you need."

	exhaustedAnswer = "I could not gather enough information from the available tools to answer that reliably. Try narrowing the question, for example to a specific startup, industry or country."
)

// Concierge drives question answering. Safe for concurrent use.
type Concierge struct {
	client        llm.Client
	registry      *tools.Registry
	logger        *slog.Logger
	maxIterations int
}

// New creates the orchestrator over an LLM client and a tool registry.
func New(client llm.Client, registry *tools.Registry, logger *slog.Logger) *Concierge {
	return &Concierge{
		client:        client,
		registry:      registry,
		logger:        logger.With("component", "concierge"),
		maxIterations: defaultMaxIterations,
	}
}

// Ask classifies the question and dispatches to the matching flow.
func (c *Concierge) Ask(ctx context.Context, req *models.AskRequest) (*models.AskResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, services.NewValidationError("question", "must not be empty")
	}

	intent := classifyIntent(question, req.UserContext)
	c.logger.Info("Question classified", "question_type", intent)

	switch intent {
	case IntentLinkedInPost:
		return c.GenerateLinkedInPost(ctx, &models.LinkedInPostRequest{Topic: question})
	case IntentFeedbackFlow:
		return &models.AskResponse{Answer: feedbackHint, QuestionType: string(intent)}, nil
	case IntentDirections:
		return &models.AskResponse{Answer: directionsHint, QuestionType: string(intent)}, nil
	default:
		answer, err := c.toolLoop(ctx, question, req.UserContext)
		if err != nil {
			return nil, err
		}
		return &models.AskResponse{Answer: answer, QuestionType: string(intent)}, nil
	}
}

// toolLoop runs the bounded tool-call conversation. Tool calls execute
// sequentially in the order the model emitted them; a schema violation gets
// one correction round before the request fails.
func (c *Concierge) toolLoop(ctx context.Context, question string, userCtx *models.UserContext) (string, error) {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: renderQuestion(question, userCtx)},
	}
	defs := c.registry.Defs()

	correctionUsed := false
	lastContent := ""

	for iteration := 1; iteration <= c.maxIterations; iteration++ {
		resp, err := c.client.Complete(ctx, &llm.Request{Messages: messages, Tools: defs})
		if err != nil {
			return "", mapLLMError(err)
		}
		if resp.Content != "" {
			lastContent = resp.Content
		}

		if len(resp.ToolCalls) == 0 {
			if resp.Content == "" {
				break
			}
			return resp.Content, nil
		}

		messages = append(messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		for _, call := range resp.ToolCalls {
			result, execErr := c.registry.Execute(ctx, call.Name, call.Arguments)
			switch {
			case execErr == nil:
				messages = append(messages, toolMessage(call, result.JSON()))
			case errors.Is(execErr, tools.ErrUnknownTool):
				c.logger.Warn("Model called unknown tool", "tool", call.Name)
				messages = append(messages, toolMessage(call,
					fmt.Sprintf(`{"success":false,"error":"unknown tool %q"}`, call.Name)))
			default:
				var ve *tools.ValidationError
				if !errors.As(execErr, &ve) {
					return "", fmt.Errorf("tool execution failed: %w", execErr)
				}
				if correctionUsed {
					c.logger.Warn("Tool arguments invalid after correction round", "tool", call.Name)
					return "", fmt.Errorf("tool arguments for %s remained invalid: %w", call.Name, execErr)
				}
				correctionUsed = true
				messages = append(messages, toolMessage(call, correctionPayload(ve)))
			}
		}
	}

	if lastContent != "" {
		return lastContent, nil
	}
	return exhaustedAnswer, nil
}

func toolMessage(call llm.ToolCall, payload string) llm.Message {
	return llm.Message{Role: llm.RoleTool, ToolCallID: call.ID, Content: payload}
}

// correctionPayload tells the model exactly what was wrong so it can retry
// the call with fixed arguments.
func correctionPayload(ve *tools.ValidationError) string {
	r := &tools.Result{
		Error: fmt.Sprintf("invalid arguments: %s. Call %s again with corrected arguments matching its schema.",
			strings.Join(ve.Problems, "; "), ve.Tool),
	}
	return r.JSON()
}

func renderQuestion(question string, userCtx *models.UserContext) string {
	if userCtx == nil {
		return question
	}
	var b strings.Builder
	b.WriteString(question)
	if userCtx.Role != "" || userCtx.Location != "" || len(userCtx.Interests) > 0 {
		b.WriteString("\n\nAbout me:")
		if userCtx.Role != "" {
			fmt.Fprintf(&b, " role=%s", userCtx.Role)
		}
		if userCtx.Location != "" {
			fmt.Fprintf(&b, " location=%s", userCtx.Location)
		}
		if len(userCtx.Interests) > 0 {
			fmt.Fprintf(&b, " interests=%s", strings.Join(userCtx.Interests, ","))
		}
	}
	return b.String()
}

// mapLLMError converts gateway failures into the user-visible service
// errors. Raw transport errors never leave this package.
func mapLLMError(err error) error {
	switch llm.KindOf(err) {
	case llm.KindRateLimitExceeded, llm.KindCircuitOpen, llm.KindUnavailable:
		// Keep the gateway error in the chain so the HTTP layer can report
		// the precise kind and a Retry-After.
		return fmt.Errorf("%w: assistant is temporarily unavailable: %w", services.ErrServiceBusy, err)
	case llm.KindBadRequest:
		return fmt.Errorf("%w: %v", services.ErrBadRequest, err)
	default:
		return fmt.Errorf("assistant request failed: %w", err)
	}
}
