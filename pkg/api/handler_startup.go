package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/confscout/scout/pkg/models"
)

// listStartupsHandler handles GET /startups/all.
func (s *Server) listStartupsHandler(c *echo.Context) error {
	var page models.Page
	if v := c.QueryParam("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid skip: must be a non-negative integer")
		}
		page.Skip = n
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be a positive integer")
		}
		page.Limit = n
	}

	filter := models.StartupFilter{
		Industry:      c.QueryParam("industry"),
		Country:       c.QueryParam("country"),
		Stage:         c.QueryParam("stage"),
		NameSubstring: c.QueryParam("name"),
	}
	if v := c.QueryParam("min_funding"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid min_funding: must be a non-negative number")
		}
		filter.MinFunding = f
	}

	return c.JSON(http.StatusOK, s.startups.List(filter, page))
}

// prioritizedHandler handles GET /startups/prioritized.
func (s *Server) prioritizedHandler(c *echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be a positive integer")
		}
		limit = n
	}
	minScore := 0
	if v := c.QueryParam("min_score"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid min_score: must be a non-negative integer")
		}
		minScore = n
	}

	return c.JSON(http.StatusOK, s.startups.Prioritized(c.QueryParam("user_id"), limit, minScore))
}

// getStartupHandler handles GET /startups/:id.
func (s *Server) getStartupHandler(c *echo.Context) error {
	id, err := startupIDParam(c)
	if err != nil {
		return err
	}
	detail, err := s.startups.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// startupInsightsHandler handles GET /startups/:id/insights.
func (s *Server) startupInsightsHandler(c *echo.Context) error {
	id, err := startupIDParam(c)
	if err != nil {
		return err
	}
	insight, err := s.startups.Insight(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, insight)
}

// batchInsightsHandler handles POST /startups/batch-insights.
func (s *Server) batchInsightsHandler(c *echo.Context) error {
	var req models.BatchInsightsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	insights, err := s.startups.BatchInsights(req.StartupIDs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"insights": insights, "count": len(insights)})
}

// enrichedSearchHandler handles GET /startups/enriched/search.
func (s *Server) enrichedSearchHandler(c *echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be a positive integer")
		}
		limit = n
	}
	results := s.startups.SearchEnriched(c.QueryParam("query"), c.QueryParam("enrichment_type"), limit)
	return c.JSON(http.StatusOK, map[string]any{"results": results, "count": len(results)})
}

// startupEnrichmentHandler handles GET /startups/:id/enrichment.
func (s *Server) startupEnrichmentHandler(c *echo.Context) error {
	id, err := startupIDParam(c)
	if err != nil {
		return err
	}
	enr, err := s.startups.Enrichment(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enr)
}

// enrichmentStatsHandler handles GET /startups/enrichment/stats.
func (s *Server) enrichmentStatsHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, s.startups.EnrichmentStats())
}

func startupIDParam(c *echo.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid startup id: must be a positive integer")
	}
	return id, nil
}
