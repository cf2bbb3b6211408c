package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/ent/startup"
	"github.com/confscout/scout/pkg/config"
	"github.com/confscout/scout/pkg/corpus"
	"github.com/confscout/scout/pkg/models"
	"github.com/confscout/scout/pkg/ranking"
	"github.com/confscout/scout/pkg/taxonomy"
	"github.com/confscout/scout/test/util"
)

// seedCorpus inserts a small corpus with one enriched startup.
func seedCorpus(t *testing.T, client *ent.Client) {
	t.Helper()
	ctx := context.Background()
	funding := 25.0
	_, err := client.Startup.Create().
		SetID(1).SetName("AgentForge").
		SetDescription("Multi-agent orchestration platform for enterprises").
		SetPrimaryIndustry("AI").
		SetStage(startup.StageSeed).
		SetTotalFundingUsdMillions(funding).
		SetCountry("Germany").SetCity("Berlin").
		SetEnrichment(map[string]any{
			"emails":       []any{"hello@agentforge.example"},
			"social_links": map[string]any{"linkedin": "agentforge"},
		}).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Startup.Create().
		SetID(2).SetName("Coverly").
		SetDescription("Claims automation software for insurance carriers").
		SetPrimaryIndustry("InsurTech").
		SetStage(startup.StageSeriesA).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Startup.Create().
		SetID(3).SetName("BrewBuddy").
		SetDescription("Subscription coffee delivery").
		SetPrimaryIndustry("Consumer").
		SetStage(startup.StageGrowth).
		Save(ctx)
	require.NoError(t, err)
}

func newStartupService(t *testing.T) (*StartupService, *corpus.Store) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	seedCorpus(t, client)

	store := corpus.NewStore(client, slog.Default())
	require.NoError(t, store.Load(context.Background()))

	classifier := taxonomy.NewClassifier(config.GetBuiltinPriorities())
	engine := ranking.NewEngine(store, classifier, slog.Default())
	return NewStartupService(store, engine, classifier, slog.Default()), store
}

func TestStartupServiceList(t *testing.T) {
	svc, _ := newStartupService(t)

	all := svc.List(models.StartupFilter{}, models.Page{})
	assert.Equal(t, 3, all.Total)
	assert.Equal(t, 3, all.Count)

	german := svc.List(models.StartupFilter{Country: "germany"}, models.Page{})
	require.Equal(t, 1, german.Count)
	assert.Equal(t, "AgentForge", german.Startups[0].Name)

	paged := svc.List(models.StartupFilter{}, models.Page{Skip: 2, Limit: 10})
	assert.Equal(t, 3, paged.Total)
	assert.Equal(t, 1, paged.Count)
}

func TestStartupServicePrioritized(t *testing.T) {
	svc, _ := newStartupService(t)

	resp := svc.Prioritized("", 0, 0)
	assert.Equal(t, 3, resp.Total)
	assert.False(t, resp.Personalized)
	require.NotEmpty(t, resp.Startups)
	// AI tooling outranks the consumer startup.
	assert.NotEqual(t, "BrewBuddy", resp.Startups[0].Name)

	limited := svc.Prioritized("u1", 2, 0)
	assert.Len(t, limited.Startups, 2)
}

func TestStartupServicePrioritizedDefaultLimit(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	seedCorpus(t, client)
	ctx := context.Background()

	// Pad the corpus past the default page size.
	for i := int64(100); i < 160; i++ {
		_, err := client.Startup.Create().
			SetID(i).SetName(fmt.Sprintf("Forge-%d", i)).
			SetDescription("Claims automation for insurance carriers").
			SetPrimaryIndustry("InsurTech").
			SetStage(startup.StageSeed).
			Save(ctx)
		require.NoError(t, err)
	}

	store := corpus.NewStore(client, slog.Default())
	require.NoError(t, store.Load(ctx))
	classifier := taxonomy.NewClassifier(config.GetBuiltinPriorities())
	engine := ranking.NewEngine(store, classifier, slog.Default())
	svc := NewStartupService(store, engine, classifier, slog.Default())

	// Omitted limit pages at 50 entries.
	resp := svc.Prioritized("", 0, 0)
	assert.Equal(t, 63, resp.Total)
	assert.Len(t, resp.Startups, 50)
}

func TestStartupServiceGetAndInsights(t *testing.T) {
	svc, _ := newStartupService(t)

	detail, err := svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "AgentForge", detail.Name)
	assert.True(t, detail.HasEnrichment)

	_, err = svc.Get(99)
	assert.ErrorIs(t, err, ErrNotFound)

	insight, err := svc.Insight(1)
	require.NoError(t, err)
	assert.Equal(t, 1, insight.Tier, "multi-agent platforms are tier 1")
	assert.NotEmpty(t, insight.Categories)

	batch, err := svc.BatchInsights([]int64{1, 99, 2})
	require.NoError(t, err)
	assert.Len(t, batch, 2, "unknown ids are skipped")

	_, err = svc.BatchInsights(nil)
	assert.True(t, IsValidationError(err))
}

func TestStartupServiceEnrichment(t *testing.T) {
	svc, _ := newStartupService(t)

	enr, err := svc.Enrichment(1)
	require.NoError(t, err)
	assert.Contains(t, enr.Enrichment, "emails")

	_, err = svc.Enrichment(2)
	assert.ErrorIs(t, err, ErrNotFound)

	found := svc.SearchEnriched("orchestration", "", 10)
	require.Len(t, found, 1)
	assert.Equal(t, "AgentForge", found[0].Name)
	assert.Empty(t, svc.SearchEnriched("coffee", "", 10), "unenriched startups are never returned")
	assert.Len(t, svc.SearchEnriched("", "emails", 10), 1)
	assert.Empty(t, svc.SearchEnriched("", "patents", 10))

	stats := svc.EnrichmentStats()
	assert.Equal(t, 3, stats.TotalStartups)
	assert.Equal(t, 1, stats.WithEnrichment)
	assert.Equal(t, 1, stats.ByType["emails"])
}

func TestStartupServiceRefreshCorpus(t *testing.T) {
	svc, store := newStartupService(t)

	before := store.Snapshot().Generation()
	require.NoError(t, svc.RefreshCorpus(context.Background()))
	assert.Greater(t, store.Snapshot().Generation(), before)
}
