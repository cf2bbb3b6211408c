package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/confscout/scout/pkg/models"
)

// createVoteHandler handles POST /votes.
func (s *Server) createVoteHandler(c *echo.Context) error {
	var req models.CreateVoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	vote, err := s.activity.Vote(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, vote)
}

// createRatingHandler handles POST /ratings.
func (s *Server) createRatingHandler(c *echo.Context) error {
	var req models.CreateRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rating, err := s.activity.Rate(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rating)
}

// createEventHandler handles POST /calendar/events.
func (s *Server) createEventHandler(c *echo.Context) error {
	var req models.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := s.activity.CreateEvent(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// listEventsHandler handles GET /calendar/events?from&to.
func (s *Server) listEventsHandler(c *echo.Context) error {
	from, err := timeQueryParam(c, "from")
	if err != nil {
		return err
	}
	to, err := timeQueryParam(c, "to")
	if err != nil {
		return err
	}
	// Default to the surrounding week when the caller gives no range.
	now := time.Now().UTC()
	if from.IsZero() {
		from = now.AddDate(0, 0, -1)
	}
	if to.IsZero() {
		to = now.AddDate(0, 0, 6)
	}

	events, listErr := s.activity.ListEvents(c.Request().Context(), from, to)
	if listErr != nil {
		return listErr
	}
	return c.JSON(http.StatusOK, map[string]any{"events": events, "count": len(events)})
}

// createIdeaHandler handles POST /ideas.
func (s *Server) createIdeaHandler(c *echo.Context) error {
	var req models.CreateIdeaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	idea, err := s.activity.CreateIdea(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, idea)
}

// listIdeasHandler handles GET /ideas?user_id.
func (s *Server) listIdeasHandler(c *echo.Context) error {
	ideas, err := s.activity.ListIdeas(c.Request().Context(), c.QueryParam("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"ideas": ideas, "count": len(ideas)})
}

func timeQueryParam(c *echo.Context, name string) (time.Time, error) {
	v := c.QueryParam(name)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+": must be RFC3339")
	}
	return t, nil
}
