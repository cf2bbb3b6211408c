package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okClient() Client {
	return ClientFunc(func(ctx context.Context, req *Request) (*Response, error) {
		return &Response{Content: "ok", Role: RoleAssistant, FinishReason: "stop"}, nil
	})
}

func TestRateLimitAllowsBurst(t *testing.T) {
	// The bucket starts full: perMinute requests pass without waiting.
	r := WithRateLimit(okClient(), 3, 10*time.Millisecond)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := r.Complete(ctx, &Request{})
		require.NoError(t, err, "burst call %d", i+1)
	}

	_, err := r.Complete(ctx, &Request{})
	require.Error(t, err)
	assert.Equal(t, KindRateLimitExceeded, KindOf(err))

	var le *Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 10*time.Millisecond, le.RetryAfter, "retry hint is the acquire ceiling")
	assert.Equal(t, 0, le.Status, "local limiter errors carry no upstream status")
}

func TestRateLimitAcquireTimeout(t *testing.T) {
	r := WithRateLimit(Disabled(), 1, 20*time.Millisecond)

	// First call drains the bucket (the disabled upstream still errors, but
	// the token was granted).
	_, err := r.Complete(context.Background(), &Request{})
	assert.Equal(t, KindUnavailable, KindOf(err))

	// Second call cannot acquire within the ceiling.
	_, err = r.Complete(context.Background(), &Request{})
	require.Error(t, err)
	assert.Equal(t, KindRateLimitExceeded, KindOf(err))
}

func TestRateLimitReportsCallerCancellation(t *testing.T) {
	r := WithRateLimit(okClient(), 1, time.Minute)

	_, err := r.Complete(context.Background(), &Request{})
	require.NoError(t, err)

	// A caller that goes away while queued sees its own cancellation, not a
	// rate-limit error.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Complete(ctx, &Request{})
	require.ErrorIs(t, err, context.Canceled)
	assert.NotEqual(t, KindRateLimitExceeded, KindOf(err))
}
