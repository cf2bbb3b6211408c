package api

import (
	"fmt"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/confscout/scout/pkg/models"
)

// askHandler handles POST /concierge/ask.
func (s *Server) askHandler(c *echo.Context) error {
	var req models.AskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := s.concierge.Ask(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// linkedInPostHandler handles POST /concierge/generate-linkedin-post.
func (s *Server) linkedInPostHandler(c *echo.Context) error {
	var req models.LinkedInPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := s.concierge.GenerateLinkedInPost(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// DirectionsRequest is the body of POST /concierge/directions.
type DirectionsRequest struct {
	Destination string              `json:"destination"`
	UserContext *models.UserContext `json:"user_context,omitempty"`
}

// directionsHandler handles POST /concierge/directions. Navigation itself is
// delegated to the venue maps service; the concierge only phrases the answer.
func (s *Server) directionsHandler(c *echo.Context) error {
	var req DirectionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	question := "directions"
	if req.Destination != "" {
		question = fmt.Sprintf("directions to %s", req.Destination)
	}

	resp, err := s.concierge.Ask(c.Request().Context(), &models.AskRequest{
		Question:    question,
		UserContext: req.UserContext,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// EntityDetailsRequest is the body of the startup-details and event-details
// delegated endpoints.
type EntityDetailsRequest struct {
	StartupID   int64               `json:"startup_id,omitempty"`
	CompanyName string              `json:"company_name,omitempty"`
	EventName   string              `json:"event_name,omitempty"`
	UserContext *models.UserContext `json:"user_context,omitempty"`
}

// startupDetailsHandler handles POST /concierge/startup-details by delegating
// to the tool-call loop with a focused question.
func (s *Server) startupDetailsHandler(c *echo.Context) error {
	var req EntityDetailsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var question string
	switch {
	case req.CompanyName != "":
		question = fmt.Sprintf("Tell me about the startup %s", req.CompanyName)
	case req.StartupID != 0:
		question = fmt.Sprintf("Tell me about the startup with id %d", req.StartupID)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "startup_id or company_name is required")
	}

	resp, err := s.concierge.Ask(c.Request().Context(), &models.AskRequest{
		Question:    question,
		UserContext: req.UserContext,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// eventDetailsHandler handles POST /concierge/event-details.
func (s *Server) eventDetailsHandler(c *echo.Context) error {
	var req EntityDetailsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.EventName) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "event_name is required")
	}

	resp, err := s.concierge.Ask(c.Request().Context(), &models.AskRequest{
		Question:    fmt.Sprintf("Tell me about the event %s", req.EventName),
		UserContext: req.UserContext,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
