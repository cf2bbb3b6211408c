package llm

import (
	"context"
	"log/slog"
	"time"
)

const (
	maxAttempts     = 3
	initialBackoff  = time.Second
	maxBackoff      = 60 * time.Second
	backoffMultiply = 2
)

// retrying retries failed completions with exponential backoff. Only
// transport errors and upstream 429/5xx are retried; client errors and
// cancellations surface immediately.
type retrying struct {
	next   Client
	logger *slog.Logger

	// sleep is replaceable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps a client with the standard backoff policy.
func WithRetry(next Client, logger *slog.Logger) Client {
	return &retrying{next: next, logger: logger, sleep: sleepCtx}
}

func (r *retrying) Complete(ctx context.Context, req *Request) (*Response, error) {
	backoff := initialBackoff
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := r.next.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if attempt == maxAttempts || !retryable(err) {
			break
		}

		r.logger.Warn("LLM call failed, retrying",
			"request_id", req.RequestID,
			"attempt", attempt,
			"backoff", backoff,
			"error", err)
		if err := r.sleep(ctx, backoff); err != nil {
			return nil, err
		}
		backoff *= backoffMultiply
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
	return nil, lastErr
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
