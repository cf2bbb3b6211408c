package llm

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// rateLimited gates completions through a token bucket. Acquisition blocks up
// to acquireTimeout, then fails with KindRateLimitExceeded so callers can
// surface a 429 instead of queueing forever.
type rateLimited struct {
	next           Client
	limiter        *rate.Limiter
	acquireTimeout time.Duration
}

// WithRateLimit wraps a client with a bucket of perMinute requests per
// minute, refilled continuously.
func WithRateLimit(next Client, perMinute int, acquireTimeout time.Duration) Client {
	return &rateLimited{
		next:           next,
		limiter:        rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute),
		acquireTimeout: acquireTimeout,
	}
}

func (r *rateLimited) Complete(ctx context.Context, req *Request) (*Response, error) {
	waitCtx, cancel := context.WithTimeout(ctx, r.acquireTimeout)
	defer cancel()

	if err := r.limiter.Wait(waitCtx); err != nil {
		if ctx.Err() != nil {
			// The caller went away while we were queued.
			return nil, ctx.Err()
		}
		return nil, &Error{
			Kind:       KindRateLimitExceeded,
			Message:    "request rate limit reached",
			RetryAfter: r.acquireTimeout,
			Err:        err,
		}
	}
	return r.next.Complete(ctx, req)
}
