package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/confscout/scout/pkg/llm"
	"github.com/confscout/scout/pkg/services"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{
			name:       "not found",
			err:        fmt.Errorf("%w: startup 99", services.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantKind:   kindNotFound,
		},
		{
			name:       "conflict",
			err:        fmt.Errorf("%w: double booked", services.ErrConflict),
			wantStatus: http.StatusConflict,
			wantKind:   kindConflict,
		},
		{
			name:       "bad request sentinel",
			err:        fmt.Errorf("%w: nope", services.ErrBadRequest),
			wantStatus: http.StatusBadRequest,
			wantKind:   kindBadRequest,
		},
		{
			name:       "service busy",
			err:        fmt.Errorf("%w: assistant down", services.ErrServiceBusy),
			wantStatus: http.StatusServiceUnavailable,
			wantKind:   kindServiceBusy,
		},
		{
			name:       "plain error is opaque",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantKind:   kindInternalError,
		},
		{
			name:       "echo 404 keeps its status",
			err:        echo.NewHTTPError(http.StatusNotFound, "no such route"),
			wantStatus: http.StatusNotFound,
			wantKind:   kindNotFound,
		},
		{
			name:       "echo 400 maps to bad request",
			err:        echo.NewHTTPError(http.StatusBadRequest, "invalid limit"),
			wantStatus: http.StatusBadRequest,
			wantKind:   kindBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body, _ := translateError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantKind, body.Kind)
		})
	}
}

func TestTranslateErrorValidation(t *testing.T) {
	status, body, _ := translateError(services.NewValidationError("score", "must be between 1 and 5"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, kindBadRequest, body.Kind)
	assert.Equal(t, "must be between 1 and 5", body.Details["score"])
}

func TestTranslateErrorGatewayKinds(t *testing.T) {
	rateLimited := fmt.Errorf("%w: assistant is temporarily unavailable: %w",
		services.ErrServiceBusy, &llm.Error{Kind: llm.KindRateLimitExceeded, RetryAfter: 30 * time.Second})
	status, body, retryAfter := translateError(rateLimited)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, kindRateLimitExceeded, body.Kind)
	assert.Equal(t, 30, retryAfter)

	open := fmt.Errorf("%w: assistant is temporarily unavailable: %w",
		services.ErrServiceBusy, &llm.Error{Kind: llm.KindCircuitOpen, RetryAfter: 45 * time.Second, RequestID: "ab12cd34"})
	status, body, retryAfter = translateError(open)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, kindCircuitOpen, body.Kind)
	assert.Equal(t, 45, retryAfter)
	assert.Equal(t, "ab12cd34", body.Details["request_id"])

	// Unavailable keeps the generic busy kind with no retry hint.
	busy := fmt.Errorf("%w: assistant is temporarily unavailable: %w",
		services.ErrServiceBusy, &llm.Error{Kind: llm.KindUnavailable})
	status, body, retryAfter = translateError(busy)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, kindServiceBusy, body.Kind)
	assert.Zero(t, retryAfter)
}
