package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confscout/scout/ent/startup"
	"github.com/confscout/scout/pkg/concierge"
	"github.com/confscout/scout/pkg/config"
	"github.com/confscout/scout/pkg/corpus"
	"github.com/confscout/scout/pkg/database"
	"github.com/confscout/scout/pkg/feedback"
	"github.com/confscout/scout/pkg/llm"
	"github.com/confscout/scout/pkg/llm/cache"
	"github.com/confscout/scout/pkg/models"
	"github.com/confscout/scout/pkg/ranking"
	"github.com/confscout/scout/pkg/services"
	"github.com/confscout/scout/pkg/taxonomy"
	"github.com/confscout/scout/pkg/tools"
	"github.com/confscout/scout/pkg/viability"
	"github.com/confscout/scout/test/util"
)

// newTestRouter wires the full stack against a real database and a disabled
// LLM gateway.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	funding := 25.0
	_, err := client.Startup.Create().
		SetID(1).SetName("AgentForge").
		SetDescription("Multi-agent orchestration platform").
		SetPrimaryIndustry("AI").
		SetStage(startup.StageSeed).
		SetTotalFundingUsdMillions(funding).
		SetCountry("Germany").SetCity("Berlin").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Startup.Create().
		SetID(2).SetName("Coverly").
		SetDescription("Claims automation for insurers").
		SetPrimaryIndustry("InsurTech").
		SetStage(startup.StageSeriesA).
		Save(ctx)
	require.NoError(t, err)

	store := corpus.NewStore(client, slog.Default())
	require.NoError(t, store.Load(ctx))

	classifier := taxonomy.NewClassifier(config.GetBuiltinPriorities())
	engine := ranking.NewEngine(store, classifier, slog.Default())

	registry, err := tools.NewStartupRegistry(store)
	require.NoError(t, err)

	gateway := llm.Disabled()
	assessCache, err := cache.New[viability.Decision](16, time.Hour)
	require.NoError(t, err)
	t.Cleanup(assessCache.Close)
	filter := viability.NewFilter(
		config.GetBuiltinViability(),
		&config.LLMConfig{Model: "gpt-4o-mini", Temperature: 0.3},
		gateway, assessCache, classifier, slog.Default())

	srv := NewServer(
		services.NewStartupService(store, engine, classifier, slog.Default()),
		services.NewActivityService(store, client, slog.Default()),
		feedback.NewService(client, gateway, nil, slog.Default()),
		concierge.New(gateway, registry, slog.Default()),
		filter,
		database.NewClientFromEnt(client, db),
		slog.Default(),
	)
	return srv.Router()
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var env ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Error
}

func TestHTTPHealth(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, 2, resp.Corpus)
	assert.Equal(t, "healthy", resp.Checks["database"].Status)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestHTTPStartupEndpoints(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/startups/all", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list models.StartupListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 2, list.Total)

	rec = doJSON(t, e, http.MethodGet, "/startups/all?country=Germany", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "AgentForge", list.Startups[0].Name)

	rec = doJSON(t, e, http.MethodGet, "/startups/prioritized?limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var prioritized models.PrioritizedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prioritized))
	assert.Equal(t, 2, prioritized.Total)
	assert.False(t, prioritized.Personalized)

	rec = doJSON(t, e, http.MethodGet, "/startups/1/insights", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var insight models.StartupInsight
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &insight))
	assert.Equal(t, 1, insight.Tier)

	rec = doJSON(t, e, http.MethodGet, "/startups/99", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, kindNotFound, decodeEnvelope(t, rec).Kind)

	rec = doJSON(t, e, http.MethodGet, "/startups/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, kindBadRequest, decodeEnvelope(t, rec).Kind)

	// Ids arrive as numbers or numeric strings, often mixed.
	rec = doJSON(t, e, http.MethodPost, "/startups/batch-insights", `{"startup_ids":["1",2,99]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var batch struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &batch))
	assert.Equal(t, 2, batch.Count)

	rec = doJSON(t, e, http.MethodPost, "/startups/batch-insights", `{"startup_ids":["one"]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTPVotesAndRatings(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodPost, "/votes", `{"user_id":"u1","startup_id":1,"interested":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Double-submitting the same vote right away conflicts.
	rec = doJSON(t, e, http.MethodPost, "/votes", `{"user_id":"u1","startup_id":1,"interested":true}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, kindConflict, decodeEnvelope(t, rec).Kind)

	rec = doJSON(t, e, http.MethodPost, "/ratings", `{"user_id":"u1","startup_id":1,"score":9}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, kindBadRequest, body.Kind)
	assert.Contains(t, body.Details["score"], "between 1 and 5")

	rec = doJSON(t, e, http.MethodPost, "/votes", `{"user_id":"u1","startup_id":99,"interested":true}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPFeedbackFlow(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodPost, "/feedback/start",
		`{"meeting_id":"m1","user_id":"u1","startup_name":"Hookle","startup_description":"Social media automation"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var sess models.FeedbackSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	require.Len(t, sess.Questions, 3)

	for i, answer := range []string{"Multi-platform automation", "60% workload reduction", "Schedule demo"} {
		rec = doJSON(t, e, http.MethodPost, "/feedback/chat",
			fmt.Sprintf(`{"session_id":%q,"message":%q}`, sess.SessionID, answer))
		require.Equal(t, http.StatusOK, rec.Code, "reply %d", i+1)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	}
	assert.Equal(t, "completed", sess.Status)
	require.NotEmpty(t, sess.InsightID)

	rec = doJSON(t, e, http.MethodGet, "/feedback/session/"+sess.SessionID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.FeedbackSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "completed", got.Status)

	rec = doJSON(t, e, http.MethodGet, "/insights/"+sess.InsightID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var ins models.InsightResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ins))
	require.Len(t, ins.StructuredQA, 3)
	assert.Equal(t, "Schedule demo", ins.StructuredQA[2].Answer)

	// One more reply after completion conflicts.
	rec = doJSON(t, e, http.MethodPost, "/feedback/chat",
		fmt.Sprintf(`{"session_id":%q,"message":"extra"}`, sess.SessionID))
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, kindConflict, decodeEnvelope(t, rec).Kind)

	rec = doJSON(t, e, http.MethodGet, "/feedback/preview/m1", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTPConciergeUnavailableWithoutAPIKey(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodPost, "/concierge/ask",
		`{"question":"Which startup works on claims automation?"}`)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, kindServiceBusy, decodeEnvelope(t, rec).Kind)

	// Intents that never touch the LLM still answer.
	rec = doJSON(t, e, http.MethodPost, "/concierge/ask",
		`{"question":"directions to hall B"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.AskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "directions", resp.QuestionType)
}

func TestHTTPAdminViabilityAssess(t *testing.T) {
	e := newTestRouter(t)

	// Both seeded startups pass the keyword gate, so no LLM call is needed
	// even with the gateway disabled.
	rec := doJSON(t, e, http.MethodPost, "/admin/viability/assess", `{"startup_ids":[1,2,99]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp AssessViabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Accepted, 2)
	assert.Contains(t, resp.Accepted[0].Reason, "KeywordMatch")
	assert.Greater(t, resp.Accepted[0].Score, 0.0)
	assert.Zero(t, resp.Pending)

	rec = doJSON(t, e, http.MethodPost, "/admin/viability/assess", `{"startup_ids":[]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/admin/corpus/refresh", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListStartupsHandlerValidation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name  string
		query string
	}{
		{"negative skip", "skip=-1"},
		{"zero limit", "limit=0"},
		{"non-numeric limit", "limit=ten"},
		{"negative min_funding", "min_funding=-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/startups/all?"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := s.listStartupsHandler(c)
			require.Error(t, err)
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok, "expected echo.HTTPError")
			assert.Equal(t, http.StatusBadRequest, he.Code)
		})
	}
}
