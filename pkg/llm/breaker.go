package llm

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Circuit breaker states.
type breakerState int

const (
	stateClosed breakerState = iota
	stateOpen
	stateHalfOpen
)

func (s breakerState) String() string {
	switch s {
	case stateOpen:
		return "open"
	case stateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

const maxCooldown = 300 * time.Second

// breaker trips after a run of consecutive failures and rejects calls until a
// cooldown elapses. The first call after the cooldown runs as a single probe;
// its outcome decides whether the circuit closes or re-opens with a doubled
// cooldown.
type breaker struct {
	next   Client
	logger *slog.Logger

	failThreshold int
	baseCooldown  time.Duration

	mu            sync.Mutex
	state         breakerState
	failures      int
	cooldown      time.Duration
	openedAt      time.Time
	probeInFlight bool

	now func() time.Time
}

// WithBreaker wraps a client with a circuit breaker.
func WithBreaker(next Client, failThreshold int, cooldown time.Duration, logger *slog.Logger) Client {
	return &breaker{
		next:          next,
		logger:        logger,
		failThreshold: failThreshold,
		baseCooldown:  cooldown,
		cooldown:      cooldown,
		now:           time.Now,
	}
}

func (b *breaker) Complete(ctx context.Context, req *Request) (*Response, error) {
	isProbe, err := b.admit()
	if err != nil {
		return nil, err
	}

	resp, callErr := b.next.Complete(ctx, req)
	b.settle(isProbe, callErr)
	return resp, callErr
}

// admit decides whether a call may proceed. Returns whether the admitted call
// is the half-open probe.
func (b *breaker) admit() (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case stateClosed:
		return false, nil
	case stateOpen:
		remaining := b.cooldown - b.now().Sub(b.openedAt)
		if remaining > 0 {
			return false, &Error{
				Kind:       KindCircuitOpen,
				Message:    "circuit breaker is open",
				RetryAfter: remaining,
			}
		}
		b.state = stateHalfOpen
		b.probeInFlight = true
		b.logger.Info("Circuit breaker half-open, probing")
		return true, nil
	default: // stateHalfOpen
		if b.probeInFlight {
			return false, &Error{
				Kind:       KindCircuitOpen,
				Message:    "circuit breaker is probing",
				RetryAfter: b.cooldown,
			}
		}
		b.probeInFlight = true
		return true, nil
	}
}

// settle records a call outcome. Cancellations count neither as success nor
// failure.
func (b *breaker) settle(isProbe bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil && !countsAsFailure(err) {
		if isProbe {
			b.probeInFlight = false
		}
		return
	}

	if err == nil {
		if b.state != stateClosed {
			b.logger.Info("Circuit breaker closed after successful probe")
		}
		b.state = stateClosed
		b.failures = 0
		b.cooldown = b.baseCooldown
		b.probeInFlight = false
		return
	}

	if isProbe || b.state == stateHalfOpen {
		b.cooldown *= 2
		if b.cooldown > maxCooldown {
			b.cooldown = maxCooldown
		}
		b.trip()
		return
	}

	b.failures++
	if b.failures >= b.failThreshold {
		b.trip()
	}
}

func (b *breaker) trip() {
	b.state = stateOpen
	b.openedAt = b.now()
	b.failures = 0
	b.probeInFlight = false
	b.logger.Warn("Circuit breaker opened", "cooldown", b.cooldown)
}
