package llm

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient fails until failuresLeft reaches zero, then succeeds.
type scriptedClient struct {
	calls        atomic.Int64
	failuresLeft atomic.Int64
	err          error
}

func (s *scriptedClient) Complete(ctx context.Context, req *Request) (*Response, error) {
	s.calls.Add(1)
	if s.failuresLeft.Add(-1) >= 0 {
		return nil, s.err
	}
	return &Response{Content: "ok", Role: RoleAssistant, FinishReason: "stop"}, nil
}

func newTestBreaker(next Client) (*breaker, *time.Time) {
	b := WithBreaker(next, 5, 60*time.Second, slog.Default()).(*breaker)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	return b, &now
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	upstream := &scriptedClient{err: &Error{Kind: KindTransport, Message: "boom"}}
	upstream.failuresLeft.Store(1000)
	b, _ := newTestBreaker(upstream)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := b.Complete(ctx, &Request{})
		require.Error(t, err)
		assert.Equal(t, KindTransport, KindOf(err))
	}
	assert.EqualValues(t, 5, upstream.calls.Load())

	// Sixth call is rejected without touching the upstream.
	_, err := b.Complete(ctx, &Request{})
	require.Error(t, err)
	assert.Equal(t, KindCircuitOpen, KindOf(err))
	assert.EqualValues(t, 5, upstream.calls.Load())

	var le *Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 60*time.Second, le.RetryAfter)
}

func TestBreakerProbeAndReclose(t *testing.T) {
	upstream := &scriptedClient{err: &Error{Kind: KindUnavailable, Message: "boom", Status: 503}}
	upstream.failuresLeft.Store(6) // 5 to trip plus 1 failed probe
	b, now := newTestBreaker(upstream)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		b.Complete(ctx, &Request{})
	}
	require.EqualValues(t, 5, upstream.calls.Load())

	// Cooldown elapsed: exactly one probe goes through and fails.
	*now = now.Add(61 * time.Second)
	_, err := b.Complete(ctx, &Request{})
	require.Error(t, err)
	assert.EqualValues(t, 6, upstream.calls.Load())

	// Re-opened with doubled cooldown.
	_, err = b.Complete(ctx, &Request{})
	var le *Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, KindCircuitOpen, le.Kind)
	assert.Equal(t, 120*time.Second, le.RetryAfter)

	// Not yet: 61s into a 120s cooldown.
	*now = now.Add(61 * time.Second)
	_, err = b.Complete(ctx, &Request{})
	assert.Equal(t, KindCircuitOpen, KindOf(err))
	assert.EqualValues(t, 6, upstream.calls.Load())

	// Cooldown over; the probe now succeeds and the circuit closes.
	*now = now.Add(60 * time.Second)
	resp, err := b.Complete(ctx, &Request{})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)

	resp, err = b.Complete(ctx, &Request{})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
}

func TestBreakerCooldownCap(t *testing.T) {
	b, _ := newTestBreaker(Disabled())
	b.cooldown = 280 * time.Second
	b.state = stateHalfOpen

	b.settle(true, &Error{Kind: KindTransport, Message: "boom"})
	assert.Equal(t, stateOpen, b.state)
	assert.Equal(t, maxCooldown, b.cooldown)
}

func TestBreakerIgnoresCancellation(t *testing.T) {
	cancelled := ClientFunc(func(ctx context.Context, req *Request) (*Response, error) {
		return nil, context.Canceled
	})
	b, _ := newTestBreaker(cancelled)

	for i := 0; i < 10; i++ {
		_, err := b.Complete(context.Background(), &Request{})
		require.True(t, errors.Is(err, context.Canceled))
	}
	assert.Equal(t, stateClosed, b.state, "cancellations must not trip the breaker")
}
