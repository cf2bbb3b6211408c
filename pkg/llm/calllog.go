package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// callRecord is the JSON document written per LLM call.
type callRecord struct {
	RequestID  string    `json:"request_id"`
	Model      string    `json:"model"`
	StartedAt  time.Time `json:"started_at"`
	DurationMS int64     `json:"duration_ms"`
	Success    bool      `json:"success"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	Error      string    `json:"error,omitempty"`
	Usage      *Usage    `json:"token_usage,omitempty"`
	Request    *Request  `json:"request"`
	Response   *Response `json:"response,omitempty"`
}

// callLogger records every completion to slog and to an append-only directory
// of JSON files, one file per call.
type callLogger struct {
	next         Client
	logger       *slog.Logger
	dir          string
	defaultModel string

	now func() time.Time
}

// WithCallLog wraps a client with call logging. dir may be empty to disable
// the file log while keeping the structured log records.
func WithCallLog(next Client, dir, defaultModel string, logger *slog.Logger) Client {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("Failed to create LLM log directory, file logging disabled", "dir", dir, "error", err)
			dir = ""
		}
	}
	return &callLogger{next: next, logger: logger, dir: dir, defaultModel: defaultModel, now: time.Now}
}

func (c *callLogger) Complete(ctx context.Context, req *Request) (*Response, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()[:8]
	}
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	started := c.now().UTC()
	resp, err := c.next.Complete(ctx, req)
	duration := c.now().UTC().Sub(started)

	record := callRecord{
		RequestID:  req.RequestID,
		Model:      model,
		StartedAt:  started,
		DurationMS: duration.Milliseconds(),
		Success:    err == nil,
		Request:    req,
		Response:   resp,
	}
	if err != nil {
		record.ErrorKind = string(KindOf(err))
		record.Error = err.Error()
		// Stamp the failure with the id of its log record.
		var le *Error
		if errors.As(err, &le) && le.RequestID == "" {
			stamped := *le
			stamped.RequestID = req.RequestID
			err = &stamped
		}
	}
	if resp != nil {
		record.Usage = &resp.Usage
	}

	attrs := []any{
		"request_id", record.RequestID,
		"model", model,
		"duration_ms", record.DurationMS,
		"success", record.Success,
	}
	if resp != nil {
		attrs = append(attrs, "prompt_tokens", resp.Usage.PromptTokens, "completion_tokens", resp.Usage.CompletionTokens)
	}
	if err != nil {
		attrs = append(attrs, "error_kind", record.ErrorKind)
		c.logger.Warn("LLM call failed", attrs...)
	} else {
		c.logger.Info("LLM call completed", attrs...)
	}

	c.writeRecord(started, model, &record)
	return resp, err
}

// writeRecord appends the call record as
// YYYYMMDD_HHMMSS_microseconds_<model>_<reqid>.json. Failures are logged and
// swallowed; the call result stands regardless.
func (c *callLogger) writeRecord(started time.Time, model string, record *callRecord) {
	if c.dir == "" {
		return
	}
	name := fmt.Sprintf("%s_%06d_%s_%s.json",
		started.Format("20060102_150405"),
		started.Nanosecond()/1000,
		model,
		record.RequestID)

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		c.logger.Error("Failed to encode LLM call record", "request_id", record.RequestID, "error", err)
		return
	}
	if err := os.WriteFile(filepath.Join(c.dir, name), data, 0o644); err != nil {
		c.logger.Error("Failed to write LLM call record", "request_id", record.RequestID, "error", err)
	}
}
