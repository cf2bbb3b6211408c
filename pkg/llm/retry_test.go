package llm

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRetry(next Client) (*retrying, *[]time.Duration) {
	r := WithRetry(next, slog.Default()).(*retrying)
	var slept []time.Duration
	r.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return r, &slept
}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	upstream := &scriptedClient{err: &Error{Kind: KindUnavailable, Message: "boom", Status: 502}}
	upstream.failuresLeft.Store(2)
	r, slept := newTestRetry(upstream)

	resp, err := r.Complete(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	assert.EqualValues(t, 3, upstream.calls.Load())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *slept)
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	upstream := &scriptedClient{err: &Error{Kind: KindTransport, Message: "boom"}}
	upstream.failuresLeft.Store(1000)
	r, slept := newTestRetry(upstream)

	_, err := r.Complete(context.Background(), &Request{})
	require.Error(t, err)
	assert.Equal(t, KindTransport, KindOf(err))
	assert.EqualValues(t, 3, upstream.calls.Load())
	assert.Len(t, *slept, 2)
}

func TestRetrySkipsClientErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"bad request", &Error{Kind: KindBadRequest, Message: "invalid", Status: 400}},
		{"circuit open", &Error{Kind: KindCircuitOpen, Message: "open"}},
		{"local rate limit", &Error{Kind: KindRateLimitExceeded, Message: "limited"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := &scriptedClient{err: tt.err}
			upstream.failuresLeft.Store(1000)
			r, slept := newTestRetry(upstream)

			_, err := r.Complete(context.Background(), &Request{})
			require.Error(t, err)
			assert.EqualValues(t, 1, upstream.calls.Load())
			assert.Empty(t, *slept)
		})
	}
}

func TestRetryUpstream429IsRetryable(t *testing.T) {
	upstream := &scriptedClient{err: &Error{Kind: KindRateLimitExceeded, Message: "slow down", Status: 429}}
	upstream.failuresLeft.Store(1)
	r, _ := newTestRetry(upstream)

	resp, err := r.Complete(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	assert.EqualValues(t, 2, upstream.calls.Load())
}

func TestRetryStopsOnCancellation(t *testing.T) {
	upstream := &scriptedClient{err: context.Canceled}
	upstream.failuresLeft.Store(1000)
	r, slept := newTestRetry(upstream)

	_, err := r.Complete(context.Background(), &Request{})
	require.ErrorIs(t, err, context.Canceled)
	assert.EqualValues(t, 1, upstream.calls.Load())
	assert.Empty(t, *slept)
}
