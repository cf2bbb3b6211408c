package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrorKind classifies gateway failures. Callers branch on the kind, never on
// raw transport errors.
type ErrorKind string

const (
	KindBadRequest        ErrorKind = "bad_request"
	KindRateLimitExceeded ErrorKind = "rate_limit_exceeded"
	KindCircuitOpen       ErrorKind = "circuit_open"
	KindTimeout           ErrorKind = "timeout"
	KindUnavailable       ErrorKind = "unavailable"
	KindTransport         ErrorKind = "transport"
	KindInternal          ErrorKind = "internal"
)

// Error is the typed failure every gateway layer returns.
type Error struct {
	Kind    ErrorKind
	Message string

	// Status is the upstream HTTP status when one was received.
	Status int

	// RetryAfter is how long callers should wait; set for circuit-open and
	// rate-limit errors.
	RetryAfter time.Duration

	// RequestID correlates the failure with its call-log record. Assigned by
	// the call-log layer.
	RequestID string

	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("llm %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the error kind; unclassified errors report KindInternal,
// cancellations KindTimeout.
func KindOf(err error) ErrorKind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindTimeout
	}
	return KindInternal
}

// retryable reports whether a failed attempt may be retried: transport
// errors, 429 and 5xx qualify; other 4xx and cancellations do not.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var le *Error
	if !errors.As(err, &le) {
		return false
	}
	switch le.Kind {
	case KindTransport:
		return true
	case KindRateLimitExceeded:
		// Upstream 429, not our own limiter.
		return le.Status == 429
	case KindUnavailable:
		return le.Status >= 500
	default:
		return false
	}
}

// countsAsFailure reports whether an error should advance the circuit
// breaker. Caller cancellations are not endpoint failures.
func countsAsFailure(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
