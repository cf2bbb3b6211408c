package ranking

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/ent/startup"
	"github.com/confscout/scout/pkg/config"
	"github.com/confscout/scout/pkg/corpus"
	"github.com/confscout/scout/pkg/taxonomy"
)

// fakeCorpus satisfies CorpusReader without a database.
type fakeCorpus struct {
	snap  *corpus.Snapshot
	votes map[string]map[int64]bool
}

func (f *fakeCorpus) Snapshot() *corpus.Snapshot { return f.snap }

func (f *fakeCorpus) VotesOf(userID string) map[int64]bool {
	out := make(map[int64]bool, len(f.votes[userID]))
	for id, interested := range f.votes[userID] {
		out[id] = interested
	}
	return out
}

func (f *fakeCorpus) SeenStartups(userID string) map[int64]bool {
	return f.VotesOf(userID)
}

func newTestEngine(t *testing.T, startups []*ent.Startup, votes map[string]map[int64]bool) *Engine {
	t.Helper()
	store := &fakeCorpus{snap: corpus.NewSnapshot(startups), votes: votes}
	e := NewEngine(store, taxonomy.NewClassifier(config.GetBuiltinPriorities()), slog.Default())
	e.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }
	return e
}

func marketingStartup(id int64) *ent.Startup {
	return &ent.Startup{
		ID:          id,
		Name:        "Marketly",
		Description: "marketing automation for mid-size brands",
		Stage:       startup.StageSeed,
	}
}

func insuranceStartup(id int64) *ent.Startup {
	return &ent.Startup{
		ID:          id,
		Name:        "Coverly",
		Description: "insurance policy administration software",
		Stage:       startup.StageSeriesB,
	}
}

func enablerStartup(id int64) *ent.Startup {
	return &ent.Startup{
		ID:          id,
		Name:        "AgentMesh",
		Description: "multi-agent orchestration for enterprise workflows",
		Stage:       startup.StageSeed,
	}
}

func TestPrioritizeDiversity(t *testing.T) {
	var pool []*ent.Startup
	for i := int64(1); i <= 10; i++ {
		pool = append(pool, marketingStartup(i))
	}
	for i := int64(11); i <= 20; i++ {
		pool = append(pool, insuranceStartup(i))
	}
	pool = append(pool, enablerStartup(21))

	e := newTestEngine(t, pool, nil)
	ranked, personalized := e.Prioritize("", 10, 30)

	require.Len(t, ranked, 10)
	assert.False(t, personalized)

	sawEnabler, sawInsurance := false, false
	run, maxRun := 0, 0
	prevCategory := ""
	for _, r := range ranked {
		cat := r.Categories[0]
		if cat == prevCategory {
			run++
		} else {
			run = 1
			prevCategory = cat
		}
		if run > maxRun {
			maxRun = run
		}
		switch cat {
		case config.CategoryAgenticPlatformEnabler:
			sawEnabler = true
		case config.CategoryInsuranceTech:
			sawInsurance = true
		}
	}
	assert.True(t, sawEnabler, "top 10 should surface the tier-1 startup")
	assert.True(t, sawInsurance, "top 10 should include an insurance entry")
	assert.LessOrEqual(t, maxRun, 3, "no more than 3 consecutive same-category entries")
}

func TestPrioritizePersonalization(t *testing.T) {
	var pool []*ent.Startup
	for i := int64(1); i <= 15; i++ {
		pool = append(pool, marketingStartup(i))
	}
	for i := int64(16); i <= 20; i++ {
		pool = append(pool, insuranceStartup(i))
	}
	pool = append(pool, enablerStartup(21), enablerStartup(22))

	votes := map[string]map[int64]bool{
		"u1": {1: true, 2: true, 3: true},
	}
	e := newTestEngine(t, pool, votes)
	ranked, personalized := e.Prioritize("u1", 20, 30)

	require.Len(t, ranked, 20)
	assert.True(t, personalized)

	marketing, otherTiers := 0, 0
	for _, r := range ranked {
		if r.Categories[0] == config.CategoryAgenticMarketing {
			marketing++
		} else {
			otherTiers++
		}
	}
	assert.GreaterOrEqual(t, marketing, 10, "liked category should dominate the top 20")
	assert.GreaterOrEqual(t, otherTiers, 2, "other tiers still represented")
}

func TestPrioritizeLikedCategoryOutranksEqualBase(t *testing.T) {
	// Marketing and claims share tier and base score; only marketing is liked.
	pool := []*ent.Startup{
		marketingStartup(1),
		marketingStartup(2),
		{
			ID:          3,
			Name:        "ClaimsPilot",
			Description: "claims automation for carriers",
			Stage:       startup.StageSeriesB,
		},
	}
	votes := map[string]map[int64]bool{"u1": {1: true}}

	e := newTestEngine(t, pool, votes)
	ranked, _ := e.Prioritize("u1", 3, 30)

	require.Len(t, ranked, 3)
	// The unseen liked-category startup gets freshness 1.5 and the capped 1.5
	// personalization boost; the claims startup only freshness. The margin
	// exceeds the widest possible exploration spread, so this holds for any
	// seed.
	assert.Equal(t, int64(2), ranked[0].ID)
}

func TestPrioritizeRespectsLimitAndMinScore(t *testing.T) {
	var pool []*ent.Startup
	for i := int64(1); i <= 8; i++ {
		pool = append(pool, insuranceStartup(i))
	}
	// Below any realistic min_score threshold of 70.
	pool = append(pool, &ent.Startup{ID: 9, Name: "BrickWorks", Description: "reclaimed bricks"})

	e := newTestEngine(t, pool, nil)

	ranked, _ := e.Prioritize("", 5, 30)
	assert.Len(t, ranked, 5)

	ranked, _ = e.Prioritize("", 50, 60)
	assert.Len(t, ranked, 8, "uncategorized startup filtered by min_score")
	for _, r := range ranked {
		assert.NotEqual(t, int64(9), r.ID)
	}
}

func TestPrioritizeStableWithinDay(t *testing.T) {
	var pool []*ent.Startup
	for i := int64(1); i <= 10; i++ {
		pool = append(pool, marketingStartup(i))
	}
	for i := int64(11); i <= 20; i++ {
		pool = append(pool, insuranceStartup(i))
	}

	e := newTestEngine(t, pool, nil)

	first, _ := e.Prioritize("u1", 20, 30)
	second, _ := e.Prioritize("u1", 20, 30)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID, "order must be stable within a day")
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}

func TestPrioritizeEmptyCorpus(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	ranked, personalized := e.Prioritize("u1", 10, 30)
	assert.Empty(t, ranked)
	assert.False(t, personalized)
}

func TestEnforceFirstTenTiers(t *testing.T) {
	mk := func(id int64, tier int, score float64) *candidate {
		return &candidate{
			startup: &ent.Startup{ID: id},
			class:   taxonomy.Result{Tier: tier, Categories: []string{"c"}},
			score:   score,
		}
	}

	// Ten tier-2 entries on top, then one each of tiers 1, 3, 4.
	var emitted []*candidate
	for i := int64(1); i <= 10; i++ {
		emitted = append(emitted, mk(i, 2, 100-float64(i)))
	}
	emitted = append(emitted, mk(11, 1, 80), mk(12, 3, 79), mk(13, 4, 78))

	out := enforceFirstTenTiers(emitted, nil)

	require.Len(t, out, 13)
	have := map[int]int{}
	for _, c := range out[:firstTenWindow] {
		have[c.class.Tier]++
	}
	assert.GreaterOrEqual(t, have[1], 1)
	assert.GreaterOrEqual(t, have[2], 2)
	assert.GreaterOrEqual(t, have[3], 1)
	assert.GreaterOrEqual(t, have[4], 1)

	// Promotion preserves relative order of the untouched leaders.
	assert.Equal(t, int64(1), out[0].startup.ID)
}

func TestEnforceFirstTenTiersPromotesFromCutOffCandidates(t *testing.T) {
	mk := func(id int64, tier int, score float64) *candidate {
		return &candidate{
			startup: &ent.Startup{ID: id},
			class:   taxonomy.Result{Tier: tier, Categories: []string{"c"}},
			score:   score,
		}
	}

	// A limit of 10 emitted only tier-2 and tier-5 entries; the quota tiers
	// sit past the cut.
	var emitted []*candidate
	for i := int64(1); i <= 7; i++ {
		emitted = append(emitted, mk(i, 2, 100-float64(i)))
	}
	for i := int64(8); i <= 10; i++ {
		emitted = append(emitted, mk(i, 5, 100-float64(i)))
	}
	rest := []*candidate{mk(11, 1, 80), mk(12, 3, 79), mk(13, 4, 78)}

	out := enforceFirstTenTiers(emitted, rest)

	require.Len(t, out, 10)
	have := map[int]int{}
	for _, c := range out {
		have[c.class.Tier]++
	}
	assert.GreaterOrEqual(t, have[1], 1)
	assert.GreaterOrEqual(t, have[2], 2)
	assert.GreaterOrEqual(t, have[3], 1)
	assert.GreaterOrEqual(t, have[4], 1)
	assert.Equal(t, int64(1), out[0].startup.ID, "leading tier-2 entry keeps its slot")
}

func TestEnforceFirstTenTiersUnsatisfiablePool(t *testing.T) {
	mk := func(id int64, tier int) *candidate {
		return &candidate{
			startup: &ent.Startup{ID: id},
			class:   taxonomy.Result{Tier: tier, Categories: []string{"c"}},
			score:   float64(100 - id),
		}
	}
	// No tier-3 entries anywhere: quotas cannot be met, order is untouched.
	var emitted []*candidate
	for i := int64(1); i <= 12; i++ {
		emitted = append(emitted, mk(i, 2))
	}
	out := enforceFirstTenTiers(emitted, nil)
	for i, c := range out {
		assert.Equal(t, int64(i+1), c.startup.ID)
	}
}
