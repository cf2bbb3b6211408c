package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/confscout/scout/pkg/models"
	"github.com/confscout/scout/pkg/viability"
)

// refreshCorpusHandler handles POST /admin/corpus/refresh.
func (s *Server) refreshCorpusHandler(c *echo.Context) error {
	if err := s.startups.RefreshCorpus(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "refreshed", "corpus_size": s.startups.CorpusSize()})
}

// AssessViabilityRequest is the body of POST /admin/viability/assess.
type AssessViabilityRequest struct {
	StartupIDs models.IDList `json:"startup_ids"`
}

// ViabilityVerdict is one assessed startup in the response.
type ViabilityVerdict struct {
	StartupID int64   `json:"startup_id"`
	Name      string  `json:"name"`
	Reason    string  `json:"reason"`
	Score     float64 `json:"score,omitempty"`
}

// AssessViabilityResponse partitions the assessed batch.
type AssessViabilityResponse struct {
	Accepted []ViabilityVerdict `json:"accepted"`
	Rejected []ViabilityVerdict `json:"rejected"`
	Pending  int                `json:"pending"`
}

// assessViabilityHandler handles POST /admin/viability/assess. It runs the
// provider-viability pipeline over corpus rows on demand, mainly for
// re-assessing candidates after a taxonomy or filter-list change.
func (s *Server) assessViabilityHandler(c *echo.Context) error {
	var req AssessViabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.StartupIDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "startup_ids is required")
	}

	rows := s.startups.GetMany(req.StartupIDs)
	if len(rows) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "none of the given startup ids exist")
	}

	result := s.viability.Filter(c.Request().Context(), rows)
	resp := &AssessViabilityResponse{
		Accepted: verdicts(result.Accepted),
		Rejected: verdicts(result.Rejected),
		Pending:  len(result.Pending),
	}
	return c.JSON(http.StatusOK, resp)
}

func verdicts(outcomes []viability.Outcome) []ViabilityVerdict {
	out := make([]ViabilityVerdict, len(outcomes))
	for i, o := range outcomes {
		out[i] = ViabilityVerdict{
			StartupID: o.Startup.ID,
			Name:      o.Startup.Name,
			Reason:    o.Reason,
			Score:     o.Score,
		}
	}
	return out
}
