// Package ranking orders the startup corpus per request. Scoring combines the
// taxonomy base score with stage weighting, per-user freshness and
// personalization, a sliding-window diversity penalty, and seeded exploration
// noise.
package ranking

import (
	"log/slog"
	"sort"
	"time"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/ent/startup"
	"github.com/confscout/scout/pkg/corpus"
	"github.com/confscout/scout/pkg/models"
	"github.com/confscout/scout/pkg/taxonomy"
)

// Stage weights favour earlier-stage companies.
var stageWeights = map[startup.Stage]float64{
	startup.StagePreSeed:     1.10,
	startup.StageSeed:        1.00,
	startup.StageSeriesA:     1.00,
	startup.StageSeriesB:     1.00,
	startup.StageSeriesC:     0.90,
	startup.StageSeriesDPlus: 0.80,
	startup.StageGrowth:      0.80,
	startup.StageUndisclosed: 1.00,
}

const (
	freshnessBoost     = 1.5
	categoryMatchBoost = 1.3
	stageMatchBoost    = 1.2
	personalizationCap = 1.5
	diversityWindow    = 5
	categoryPenalty    = 0.9
	stagePenalty       = 0.95
	explorationLow     = 0.9
	explorationHigh    = 1.1
	firstTenWindow     = 10
)

// CorpusReader is the corpus surface the engine needs. *corpus.Store
// satisfies it.
type CorpusReader interface {
	Snapshot() *corpus.Snapshot
	VotesOf(userID string) map[int64]bool
	SeenStartups(userID string) map[int64]bool
}

// Engine ranks startups against the current corpus snapshot. Stateless apart
// from its collaborators; safe for concurrent use.
type Engine struct {
	store      CorpusReader
	classifier *taxonomy.Classifier
	logger     *slog.Logger

	// now is replaceable in tests to pin the epoch day.
	now func() time.Time
}

// NewEngine creates a ranking engine over the given store and classifier.
func NewEngine(store CorpusReader, classifier *taxonomy.Classifier, logger *slog.Logger) *Engine {
	return &Engine{
		store:      store,
		classifier: classifier,
		logger:     logger.With("component", "ranking"),
		now:        time.Now,
	}
}

// candidate carries a startup through the scoring pipeline.
type candidate struct {
	startup *ent.Startup
	class   taxonomy.Result
	score   float64
}

// Prioritize scores and orders the corpus for a user. userID may be empty for
// anonymous requests. Returns at most limit startups, each with base score at
// least minScore, and whether personalization was applied. Never fails: an
// empty corpus yields an empty list with a warning.
func (e *Engine) Prioritize(userID string, limit, minScore int) ([]models.RankedStartup, bool) {
	snap := e.store.Snapshot()
	if snap.Len() == 0 {
		e.logger.Warn("Prioritize called with empty corpus snapshot")
		return []models.RankedStartup{}, false
	}

	var (
		seen            map[int64]bool
		likedCategories map[string]bool
		likedStages     map[startup.Stage]bool
		personalized    bool
	)
	if userID != "" {
		seen = e.store.SeenStartups(userID)
		likedCategories, likedStages = e.likedPreferences(snap, userID)
		personalized = len(likedCategories) > 0 || len(likedStages) > 0
	}

	// Base score, stage weight, freshness, personalization.
	candidates := make([]*candidate, 0, snap.Len())
	for _, s := range snap.All() {
		class := e.classifier.Classify(s)
		if class.BaseScore < minScore {
			continue
		}
		score := float64(class.BaseScore)
		if w, ok := stageWeights[s.Stage]; ok {
			score *= w
		}
		if userID != "" && !seen[s.ID] {
			score *= freshnessBoost
		}
		if personalized {
			score *= personalBoost(class.Categories, s.Stage, likedCategories, likedStages)
		}
		candidates = append(candidates, &candidate{startup: s, class: class, score: score})
	}
	if len(candidates) == 0 {
		return []models.RankedStartup{}, personalized
	}

	// Exploration noise perturbs the order before the greedy diversity pass.
	// The seed is fixed per (user, day) so repeated requests within a day see
	// the same order.
	rng := newExplorationRNG(userID, e.now().UTC())
	for _, c := range candidates {
		c.score *= explorationLow + rng.Float64()*(explorationHigh-explorationLow)
	}

	sortCandidates(candidates)
	emitted, rest := emitWithDiversity(candidates, limit)
	emitted = enforceFirstTenTiers(emitted, rest)

	out := make([]models.RankedStartup, 0, len(emitted))
	for _, c := range emitted {
		out = append(out, models.RankedStartup{
			StartupSummary: models.SummarizeStartup(c.startup),
			Score:          c.score,
			Categories:     c.class.Categories,
			Tier:           c.class.Tier,
		})
	}
	return out, personalized
}

// likedPreferences derives the user's preferred categories and stages from
// their interested votes.
func (e *Engine) likedPreferences(snap *corpus.Snapshot, userID string) (map[string]bool, map[startup.Stage]bool) {
	votes := e.store.VotesOf(userID)
	categories := make(map[string]bool)
	stages := make(map[startup.Stage]bool)
	for id, interested := range votes {
		if !interested {
			continue
		}
		s := snap.Get(id)
		if s == nil {
			continue
		}
		for _, cat := range e.classifier.Classify(s).Categories {
			categories[cat] = true
		}
		stages[s.Stage] = true
	}
	return categories, stages
}

func personalBoost(categories []string, stage startup.Stage, likedCategories map[string]bool, likedStages map[startup.Stage]bool) float64 {
	boost := 1.0
	for _, cat := range categories {
		if likedCategories[cat] {
			boost *= categoryMatchBoost
			break
		}
	}
	if likedStages[stage] {
		boost *= stageMatchBoost
	}
	if boost > personalizationCap {
		boost = personalizationCap
	}
	return boost
}

func sortCandidates(cs []*candidate) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].score != cs[j].score {
			return cs[i].score > cs[j].score
		}
		return cs[i].startup.ID < cs[j].startup.ID
	})
}

// emitWithDiversity emits candidates greedily. At every step each pending
// candidate's running score decays for category and stage repetition against
// the last five emitted entries, then the best running score is emitted.
// Repetition therefore gets progressively more expensive the longer a
// candidate competes against a window it resembles. Returns the emitted
// entries and the candidates left over once the limit is reached.
func emitWithDiversity(candidates []*candidate, limit int) (emitted, rest []*candidate) {
	if limit <= 0 || limit > len(candidates) {
		limit = len(candidates)
	}
	emitted = make([]*candidate, 0, limit)
	remaining := candidates

	for len(emitted) < limit && len(remaining) > 0 {
		window := emitted
		if len(window) > diversityWindow {
			window = window[len(window)-diversityWindow:]
		}

		bestIdx := -1
		for i, c := range remaining {
			stageSeen := false
			for _, prev := range window {
				if categoriesOverlap(prev.class.Categories, c.class.Categories) {
					c.score *= categoryPenalty
				}
				if prev.startup.Stage == c.startup.Stage {
					stageSeen = true
				}
			}
			if stageSeen {
				c.score *= stagePenalty
			}
			if bestIdx == -1 || c.score > remaining[bestIdx].score ||
				(c.score == remaining[bestIdx].score && c.startup.ID < remaining[bestIdx].startup.ID) {
				bestIdx = i
			}
		}

		emitted = append(emitted, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return emitted, remaining
}

// enforceFirstTenTiers promotes entries so the first ten results include at
// least one tier-1, two tier-2, one tier-3 and one tier-4 startup. Promotion
// sources are the emitted entries past the window first, then the leftover
// candidates that the limit cut off. When the whole pool cannot satisfy a
// quota the order is left as scored.
func enforceFirstTenTiers(emitted, rest []*candidate) []*candidate {
	window := firstTenWindow
	if len(emitted) < window {
		window = len(emitted)
	}
	quotas := map[int]int{1: 1, 2: 2, 3: 1, 4: 1}

	// Skip quotas the whole pool cannot satisfy.
	poolCount := map[int]int{}
	for _, c := range emitted {
		poolCount[c.class.Tier]++
	}
	for _, c := range rest {
		poolCount[c.class.Tier]++
	}
	for tier, want := range quotas {
		if poolCount[tier] < want {
			return emitted
		}
	}

	have := map[int]int{}
	for _, c := range emitted[:window] {
		have[c.class.Tier]++
	}
	for _, tier := range []int{1, 2, 3, 4} {
		for have[tier] < quotas[tier] {
			dst := demotionSlot(emitted, window, quotas, have)
			if dst == -1 {
				break
			}
			if src := indexOfTier(emitted, window, tier); src != -1 {
				have[emitted[dst].class.Tier]--
				emitted[dst], emitted[src] = emitted[src], emitted[dst]
				have[tier]++
				continue
			}
			src := indexOfTier(rest, 0, tier)
			if src == -1 {
				break
			}
			have[emitted[dst].class.Tier]--
			emitted[dst], rest[src] = rest[src], emitted[dst]
			have[tier]++
		}
	}
	return emitted
}

// indexOfTier finds the best-scored candidate of the tier at or after from.
func indexOfTier(pool []*candidate, from, tier int) int {
	for i := from; i < len(pool); i++ {
		if pool[i].class.Tier == tier {
			return i
		}
	}
	return -1
}

// demotionSlot picks the lowest-ranked in-window entry whose tier is not
// itself at risk of dropping below quota.
func demotionSlot(emitted []*candidate, window int, quotas, have map[int]int) int {
	for i := window - 1; i >= 0; i-- {
		tier := emitted[i].class.Tier
		if have[tier] > quotas[tier] {
			return i
		}
	}
	return -1
}

func categoriesOverlap(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
