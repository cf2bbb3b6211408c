package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Transport talks to an OpenAI-compatible chat-completions endpoint. It is
// the innermost gateway layer; resilience lives in the wrappers.
type Transport struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	httpClient  *http.Client
}

// NewTransport creates the HTTP transport. model and temperature are the
// defaults applied when a request leaves them unset.
func NewTransport(baseURL, apiKey, model string, temperature float64, timeout time.Duration) *Transport {
	return &Transport{
		baseURL:     baseURL,
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// Wire types for the chat-completions protocol.

type wireMessage struct {
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
	ToolCalls  []wireToolCall `json:"tool_calls,omitempty"`
}

type wireToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type wireTool struct {
	Type     string  `json:"type"`
	Function ToolDef `json:"function"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []wireMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Tools       []wireTool    `json:"tools,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message      wireMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage Usage `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete implements Client against the HTTP endpoint.
func (t *Transport) Complete(ctx context.Context, req *Request) (*Response, error) {
	body := chatRequest{
		Model:       req.Model,
		Temperature: t.temperature,
		MaxTokens:   req.MaxTokens,
	}
	if body.Model == "" {
		body.Model = t.model
	}
	if req.Temperature != nil {
		body.Temperature = *req.Temperature
	}
	for _, m := range req.Messages {
		wm := wireMessage{Role: m.Role, Content: m.Content, ToolCallID: m.ToolCallID}
		for _, tc := range m.ToolCalls {
			wtc := wireToolCall{ID: tc.ID, Type: "function"}
			wtc.Function.Name = tc.Name
			wtc.Function.Arguments = tc.Arguments
			wm.ToolCalls = append(wm.ToolCalls, wtc)
		}
		body.Messages = append(body.Messages, wm)
	}
	for _, tool := range req.Tools {
		body.Tools = append(body.Tools, wireTool{Type: "function", Function: tool})
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Kind: KindInternal, Message: "failed to encode request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Kind: KindInternal, Message: "failed to build request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+t.apiKey)

	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &Error{Kind: KindTransport, Message: "request failed", Err: err}
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, 10<<20))
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "failed to read response", Err: err}
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, statusError(httpResp.StatusCode, raw)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &Error{Kind: KindTransport, Message: "failed to decode response", Err: err}
	}
	if parsed.Error != nil {
		return nil, &Error{Kind: KindInternal, Message: parsed.Error.Message}
	}
	if len(parsed.Choices) == 0 {
		return nil, &Error{Kind: KindInternal, Message: "response contained no choices"}
	}

	choice := parsed.Choices[0]
	resp := &Response{
		Content:      choice.Message.Content,
		Role:         choice.Message.Role,
		FinishReason: choice.FinishReason,
		Usage:        parsed.Usage,
	}
	for _, tc := range choice.Message.ToolCalls {
		resp.ToolCalls = append(resp.ToolCalls, ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return resp, nil
}

func statusError(status int, body []byte) *Error {
	msg := upstreamMessage(body)
	switch {
	case status == http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimitExceeded, Message: msg, Status: status}
	case status >= 500:
		return &Error{Kind: KindUnavailable, Message: msg, Status: status}
	default:
		return &Error{Kind: KindBadRequest, Message: msg, Status: status}
	}
}

func upstreamMessage(body []byte) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	if len(body) > 200 {
		body = body[:200]
	}
	return fmt.Sprintf("upstream error: %s", bytes.TrimSpace(body))
}

var _ Client = (*Transport)(nil)
