package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/ent/startup"
	"github.com/confscout/scout/pkg/corpus"
	"github.com/confscout/scout/pkg/models"
)

type staticSource struct {
	snap *corpus.Snapshot
}

func (s *staticSource) Snapshot() *corpus.Snapshot { return s.snap }

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	funding := func(v float64) *float64 { return &v }
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	source := &staticSource{snap: corpus.NewSnapshot([]*ent.Startup{
		{
			ID:                      1,
			Name:                    "AgentForge",
			Description:             "multi-agent orchestration",
			PrimaryIndustry:         "AI",
			Country:                 "Germany",
			City:                    "Berlin",
			Stage:                   startup.StageSeriesA,
			TotalFundingUsdMillions: funding(25),
			LastFundingDate:         &date,
			Enrichment:              map[string]any{"emails": []any{"hello@agentforge.example"}},
		},
		{
			ID:              2,
			Name:            "Coverly",
			Description:     "insurance claims software",
			PrimaryIndustry: "InsurTech",
			Country:         "Germany",
			City:            "Munich",
			Stage:           startup.StageSeed,
		},
		{
			ID:                      3,
			Name:                    "VectorVault",
			Description:             "vector database",
			PrimaryIndustry:         "AI",
			Country:                 "USA",
			City:                    "Austin",
			Stage:                   startup.StageSeriesA,
			TotalFundingUsdMillions: funding(80),
		},
	})}

	r, err := NewStartupRegistry(source)
	require.NoError(t, err)
	return r
}

func TestRegistryDeclaresSevenTools(t *testing.T) {
	r := newTestRegistry(t)

	want := []string{
		"search_startups_by_name",
		"search_startups_by_industry",
		"search_startups_by_funding",
		"search_startups_by_location",
		"get_startup_details",
		"get_startup_enrichment_data",
		"get_top_startups_by_funding",
	}
	assert.Equal(t, want, r.Names())

	defs := r.Defs()
	require.Len(t, defs, 7)
	assert.Equal(t, want[0], defs[0].Name)
	assert.NotEmpty(t, defs[0].Description)
	assert.NotEmpty(t, defs[0].Parameters)
}

func TestExecuteUnknownTool(t *testing.T) {
	r := newTestRegistry(t)
	_, err := r.Execute(context.Background(), "drop_tables", `{}`)
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestExecuteSchemaValidation(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name string
		tool string
		args string
	}{
		{"missing required", "search_startups_by_name", `{}`},
		{"wrong type", "search_startups_by_name", `{"query":42}`},
		{"limit above max", "search_startups_by_name", `{"query":"a","limit":500}`},
		{"not an object", "search_startups_by_name", `"query"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Execute(context.Background(), tt.tool, tt.args)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.tool, ve.Tool)
			assert.NotEmpty(t, ve.Problems)
		})
	}
}

func TestSearchByNameAndIndustry(t *testing.T) {
	r := newTestRegistry(t)

	res, err := r.Execute(context.Background(), "search_startups_by_name", `{"query":"vector"}`)
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "VectorVault", res.Results.([]models.StartupSummary)[0].Name)

	res, err = r.Execute(context.Background(), "search_startups_by_industry", `{"industry":"AI","limit":1}`)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count, "limit respected")
}

func TestSearchByFundingAndLocation(t *testing.T) {
	r := newTestRegistry(t)

	res, err := r.Execute(context.Background(), "search_startups_by_funding", `{"stage":"Series A","min_funding":50}`)
	require.NoError(t, err)
	require.Equal(t, 1, res.Count, "stage spelling normalized, min funding applied")
	assert.Equal(t, "VectorVault", res.Results.([]models.StartupSummary)[0].Name)

	res, err = r.Execute(context.Background(), "search_startups_by_location", `{"country":"Germany","city":"Berlin"}`)
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "AgentForge", res.Results.([]models.StartupSummary)[0].Name)
}

func TestGetStartupDetails(t *testing.T) {
	r := newTestRegistry(t)

	res, err := r.Execute(context.Background(), "get_startup_details", `{"startup_id":1}`)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "AgentForge", res.Results.(*ent.Startup).Name)

	res, err = r.Execute(context.Background(), "get_startup_details", `{"company_name":"coverly"}`)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, int64(2), res.Results.(*ent.Startup).ID)

	res, err = r.Execute(context.Background(), "get_startup_details", `{"startup_id":1,"company_name":"coverly"}`)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "not both")

	res, err = r.Execute(context.Background(), "get_startup_details", `{}`)
	require.NoError(t, err)
	assert.False(t, res.Success)

	res, err = r.Execute(context.Background(), "get_startup_details", `{"startup_id":99}`)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "99")
}

func TestGetEnrichmentData(t *testing.T) {
	r := newTestRegistry(t)

	res, err := r.Execute(context.Background(), "get_startup_enrichment_data", `{"company_name":"AgentForge"}`)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Contains(t, res.Results.(map[string]any), "emails")

	res, err = r.Execute(context.Background(), "get_startup_enrichment_data", `{"startup_id":2}`)
	require.NoError(t, err)
	assert.False(t, res.Success, "startup without enrichment reports an error payload")
}

func TestTopByFundingTool(t *testing.T) {
	r := newTestRegistry(t)

	res, err := r.Execute(context.Background(), "get_top_startups_by_funding", `{"limit":2}`)
	require.NoError(t, err)
	require.Equal(t, 2, res.Count)
	got := res.Results.([]models.StartupSummary)
	assert.Equal(t, "VectorVault", got[0].Name)
	assert.Equal(t, "AgentForge", got[1].Name)
}

func TestResultJSONRoundTrip(t *testing.T) {
	res := &Result{Success: true, Count: 1, Results: []string{"x"}}
	assert.JSONEq(t, `{"success":true,"count":1,"results":["x"]}`, res.JSON())

	res = &Result{Error: "boom"}
	assert.JSONEq(t, `{"success":false,"error":"boom"}`, res.JSON())
}
