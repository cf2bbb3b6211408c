package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/confscout/scout/pkg/models"
)

// startFeedbackHandler handles POST /feedback/start.
func (s *Server) startFeedbackHandler(c *echo.Context) error {
	var req models.StartFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := s.feedback.Start(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sess)
}

// feedbackChatHandler handles POST /feedback/chat.
func (s *Server) feedbackChatHandler(c *echo.Context) error {
	var req models.FeedbackChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := s.feedback.Chat(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess)
}

// getFeedbackSessionHandler handles GET /feedback/session/:id.
func (s *Server) getFeedbackSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	sess, err := s.feedback.Get(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess)
}

// feedbackPreviewHandler handles GET /feedback/preview/:meeting_id.
func (s *Server) feedbackPreviewHandler(c *echo.Context) error {
	meetingID := c.Param("meeting_id")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting id is required")
	}

	preview, err := s.feedback.Preview(c.Request().Context(), meetingID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, preview)
}

// getInsightHandler handles GET /insights/:insight_id.
func (s *Server) getInsightHandler(c *echo.Context) error {
	insightID := c.Param("insight_id")
	if insightID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "insight id is required")
	}

	ins, err := s.feedback.GetInsight(c.Request().Context(), insightID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ins)
}

// InsightsByMeetingsRequest is the body of POST /insights/by-meetings.
type InsightsByMeetingsRequest struct {
	MeetingIDs []string `json:"meeting_ids"`
}

// insightsByMeetingsHandler handles POST /insights/by-meetings. Meetings
// without a completed debrief are simply absent from the result.
func (s *Server) insightsByMeetingsHandler(c *echo.Context) error {
	var req InsightsByMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.MeetingIDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "meeting_ids is required")
	}

	insights, err := s.feedback.InsightsByMeetings(c.Request().Context(), req.MeetingIDs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"insights": insights, "count": len(insights)})
}

// userInsightsHandler handles GET /users/:user_id/insights.
func (s *Server) userInsightsHandler(c *echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user id is required")
	}

	insights, err := s.feedback.InsightsByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"insights": insights, "count": len(insights)})
}

// editInsightHandler handles PUT /insights/:insight_id/edit.
func (s *Server) editInsightHandler(c *echo.Context) error {
	insightID := c.Param("insight_id")
	if insightID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "insight id is required")
	}

	var req models.EditInsightRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ins, err := s.feedback.EditInsight(c.Request().Context(), insightID, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ins)
}
