package api

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggerRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	s := &Server{logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	e := echo.New()
	e.Use(s.requestLogger())
	e.GET("/ping", func(c *echo.Context) error {
		return c.JSON(http.StatusTeapot, map[string]string{"ok": "yes"})
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"path":"/ping"`)
}

func TestErrorHandlerSkipsCommittedResponses(t *testing.T) {
	s := &Server{logger: slog.Default()}

	e := echo.New()
	e.HTTPErrorHandler = s.httpErrorHandler
	e.GET("/stream", func(c *echo.Context) error {
		if err := c.JSON(http.StatusOK, map[string]string{"phase": "started"}); err != nil {
			return err
		}
		return errors.New("failed after the response was written")
	})

	req := httptest.NewRequest(http.MethodGet, "/stream", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// The committed body must survive; no error envelope on top.
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"phase":"started"}`, rec.Body.String())
}
