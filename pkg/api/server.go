// Package api is the HTTP surface of the discovery backend: echo server,
// one handler file per resource, and the error envelope mapping.
package api

import (
	"log/slog"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/confscout/scout/pkg/concierge"
	"github.com/confscout/scout/pkg/database"
	"github.com/confscout/scout/pkg/feedback"
	"github.com/confscout/scout/pkg/services"
	"github.com/confscout/scout/pkg/viability"
)

// requestTimeout caps end-to-end request handling; LLM-backed endpoints need
// headroom for retries inside the gateway.
const requestTimeout = 90 * time.Second

// Server holds the wired services behind the HTTP handlers.
type Server struct {
	startups  *services.StartupService
	activity  *services.ActivityService
	feedback  *feedback.Service
	concierge *concierge.Concierge
	viability *viability.Filter
	dbClient  *database.Client
	logger    *slog.Logger
}

// NewServer creates the API server over the given services.
func NewServer(
	startups *services.StartupService,
	activity *services.ActivityService,
	feedbackSvc *feedback.Service,
	conciergeSvc *concierge.Concierge,
	viabilityFilter *viability.Filter,
	dbClient *database.Client,
	logger *slog.Logger,
) *Server {
	return &Server{
		startups:  startups,
		activity:  activity,
		feedback:  feedbackSvc,
		concierge: conciergeSvc,
		viability: viabilityFilter,
		dbClient:  dbClient,
		logger:    logger.With("component", "api"),
	}
}

// Router builds the echo instance with all routes registered.
func (s *Server) Router() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = s.httpErrorHandler
	e.Use(securityHeaders())
	e.Use(s.requestLogger())

	e.GET("/health", s.healthHandler)

	e.POST("/concierge/ask", s.askHandler)
	e.POST("/concierge/generate-linkedin-post", s.linkedInPostHandler)
	e.POST("/concierge/directions", s.directionsHandler)
	e.POST("/concierge/startup-details", s.startupDetailsHandler)
	e.POST("/concierge/event-details", s.eventDetailsHandler)

	e.GET("/startups/all", s.listStartupsHandler)
	e.GET("/startups/prioritized", s.prioritizedHandler)
	e.GET("/startups/enriched/search", s.enrichedSearchHandler)
	e.GET("/startups/enrichment/stats", s.enrichmentStatsHandler)
	e.GET("/startups/:id", s.getStartupHandler)
	e.GET("/startups/:id/insights", s.startupInsightsHandler)
	e.GET("/startups/:id/enrichment", s.startupEnrichmentHandler)
	e.POST("/startups/batch-insights", s.batchInsightsHandler)

	e.POST("/feedback/start", s.startFeedbackHandler)
	e.POST("/feedback/chat", s.feedbackChatHandler)
	e.GET("/feedback/session/:id", s.getFeedbackSessionHandler)
	e.GET("/feedback/preview/:meeting_id", s.feedbackPreviewHandler)
	e.POST("/insights/by-meetings", s.insightsByMeetingsHandler)
	e.PUT("/insights/:insight_id/edit", s.editInsightHandler)
	e.GET("/insights/:insight_id", s.getInsightHandler)
	e.GET("/users/:user_id/insights", s.userInsightsHandler)

	e.POST("/votes", s.createVoteHandler)
	e.POST("/ratings", s.createRatingHandler)
	e.POST("/calendar/events", s.createEventHandler)
	e.GET("/calendar/events", s.listEventsHandler)
	e.POST("/ideas", s.createIdeaHandler)
	e.GET("/ideas", s.listIdeasHandler)

	e.POST("/admin/corpus/refresh", s.refreshCorpusHandler)
	e.POST("/admin/viability/assess", s.assessViabilityHandler)

	return e
}
