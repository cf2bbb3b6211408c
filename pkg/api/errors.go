package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/confscout/scout/pkg/llm"
	"github.com/confscout/scout/pkg/services"
)

// Error kinds of the wire envelope.
const (
	kindNotFound          = "NotFound"
	kindBadRequest        = "BadRequest"
	kindConflict          = "Conflict"
	kindRateLimitExceeded = "RateLimitExceeded"
	kindCircuitOpen       = "CircuitOpen"
	kindServiceBusy       = "ServiceBusy"
	kindInternalError     = "InternalError"
)

// ErrorBody is the inner error object of the envelope.
type ErrorBody struct {
	Kind    string            `json:"kind"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ErrorEnvelope is the wire shape of every error response.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// httpErrorHandler renders every handler error as the error envelope.
func (s *Server) httpErrorHandler(c *echo.Context, err error) {
	if r, _ := echo.UnwrapResponse(c.Response()); r != nil && r.Committed {
		return
	}

	status, body, retryAfter := translateError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
	}
	if retryAfter > 0 {
		c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
	}
	if writeErr := c.JSON(status, &ErrorEnvelope{Error: body}); writeErr != nil {
		s.logger.Error("Failed to write error response", "error", writeErr)
	}
}

// translateError maps service-layer errors onto (status, envelope body,
// retry-after seconds). Raw error text of internal failures never reaches the
// client.
func translateError(err error) (int, ErrorBody, int) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, ErrorBody{
			Kind:    kindBadRequest,
			Message: "invalid request",
			Details: map[string]string{validErr.Field: validErr.Message},
		}, 0
	}

	// Gateway errors surface with their precise kind when the chain kept them.
	var llmErr *llm.Error
	if errors.As(err, &llmErr) {
		switch llmErr.Kind {
		case llm.KindRateLimitExceeded:
			return http.StatusTooManyRequests, ErrorBody{
				Kind:    kindRateLimitExceeded,
				Message: "assistant rate limit exceeded, try again shortly",
				Details: llmDetails(llmErr),
			}, retryAfterSeconds(llmErr)
		case llm.KindCircuitOpen:
			return http.StatusServiceUnavailable, ErrorBody{
				Kind:    kindCircuitOpen,
				Message: "assistant is recovering from repeated failures",
				Details: llmDetails(llmErr),
			}, retryAfterSeconds(llmErr)
		}
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, ErrorBody{Kind: kindNotFound, Message: err.Error()}, 0
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict, ErrorBody{Kind: kindConflict, Message: err.Error()}, 0
	case errors.Is(err, services.ErrBadRequest):
		return http.StatusBadRequest, ErrorBody{Kind: kindBadRequest, Message: err.Error()}, 0
	case errors.Is(err, services.ErrRateLimited):
		return http.StatusTooManyRequests, ErrorBody{Kind: kindRateLimitExceeded, Message: err.Error()}, 0
	case errors.Is(err, services.ErrCircuitOpen):
		return http.StatusServiceUnavailable, ErrorBody{Kind: kindCircuitOpen, Message: err.Error()}, 0
	case errors.Is(err, services.ErrServiceBusy):
		body := ErrorBody{
			Kind:    kindServiceBusy,
			Message: "assistant is temporarily unavailable, try again shortly",
		}
		if llmErr != nil {
			body.Details = llmDetails(llmErr)
		}
		return http.StatusServiceUnavailable, body, 0
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		kind := kindInternalError
		switch {
		case httpErr.Code == http.StatusNotFound:
			kind = kindNotFound
		case httpErr.Code >= 400 && httpErr.Code < 500:
			kind = kindBadRequest
		}
		return httpErr.Code, ErrorBody{Kind: kind, Message: fmt.Sprintf("%v", httpErr.Message)}, 0
	}

	return http.StatusInternalServerError, ErrorBody{
		Kind:    kindInternalError,
		Message: "internal server error",
	}, 0
}

// llmDetails exposes the call-log correlation id when the gateway stamped one.
func llmDetails(err *llm.Error) map[string]string {
	if err.RequestID == "" {
		return nil
	}
	return map[string]string{"request_id": err.RequestID}
}

func retryAfterSeconds(err *llm.Error) int {
	if err.RetryAfter <= 0 {
		return 0
	}
	secs := int(err.RetryAfter.Seconds())
	if secs < 1 {
		secs = 1
	}
	return secs
}
