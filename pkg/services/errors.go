package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrBadRequest is returned when a request is malformed
	ErrBadRequest = errors.New("bad request")

	// ErrConflict is returned when a write collides with existing state
	ErrConflict = errors.New("conflict")

	// ErrRateLimited is returned when the LLM rate limit was exhausted
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCircuitOpen is returned while the LLM circuit breaker is open
	ErrCircuitOpen = errors.New("upstream circuit open")

	// ErrServiceBusy is returned when an LLM-dependent operation cannot run
	ErrServiceBusy = errors.New("service busy")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap maps validation failures onto ErrBadRequest for HTTP translation
func (e *ValidationError) Unwrap() error { return ErrBadRequest }

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
