package viability

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/pkg/config"
	"github.com/confscout/scout/pkg/llm"
	"github.com/confscout/scout/pkg/llm/cache"
	"github.com/confscout/scout/pkg/taxonomy"
)

const assessMaxTokens = 300

// Filter runs candidates through the viability pipeline. Safe for concurrent
// use; each Filter call runs its own worker pool.
type Filter struct {
	cfg        *config.ViabilityConfig
	llmCfg     *config.LLMConfig
	client     llm.Client
	cache      *cache.Cache[Decision]
	classifier *taxonomy.Classifier
	logger     *slog.Logger
}

// NewFilter wires the pipeline. assessCache may be shared with other LLM
// consumers.
func NewFilter(
	cfg *config.ViabilityConfig,
	llmCfg *config.LLMConfig,
	client llm.Client,
	assessCache *cache.Cache[Decision],
	classifier *taxonomy.Classifier,
	logger *slog.Logger,
) *Filter {
	return &Filter{
		cfg:        cfg,
		llmCfg:     llmCfg,
		client:     client,
		cache:      assessCache,
		classifier: classifier,
		logger:     logger.With("component", "viability"),
	}
}

// Filter classifies every candidate as accepted or rejected, preserving input
// order within each list. On cancellation the verdicts computed so far are
// returned and the rest are listed as pending.
func (f *Filter) Filter(ctx context.Context, candidates []*ent.Startup) *Result {
	workers := f.cfg.Workers
	if workers < 1 {
		workers = 1
	}

	outcomes := make([]*Outcome, len(candidates))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				o := f.evaluate(ctx, candidates[i])
				outcomes[i] = &o
			}
		}()
	}

feed:
	for i := range candidates {
		if ctx.Err() != nil {
			break
		}
		select {
		case indexes <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	result := &Result{}
	for i, o := range outcomes {
		switch {
		case o == nil:
			result.Pending = append(result.Pending, candidates[i])
		case o.Accepted:
			result.Accepted = append(result.Accepted, *o)
		default:
			result.Rejected = append(result.Rejected, *o)
		}
	}

	f.logger.Info("Viability filter finished",
		"candidates", len(candidates),
		"accepted", len(result.Accepted),
		"rejected", len(result.Rejected),
		"pending", len(result.Pending))
	return result
}

// evaluate runs the short-circuiting pipeline for one candidate.
func (f *Filter) evaluate(ctx context.Context, s *ent.Startup) Outcome {
	nameAndDesc := strings.ToLower(s.Name + " " + s.Description)

	// Stage 1: hard exclusions, no I/O.
	for _, phrase := range f.cfg.ExclusionPhrases {
		if strings.Contains(nameAndDesc, phrase) {
			return Outcome{Startup: s, Reason: fmt.Sprintf("HardExcluded(%s)", phrase)}
		}
	}

	// Stage 2: keyword gate accepts without an LLM call.
	desc := strings.ToLower(s.Description)
	for _, kw := range f.cfg.GateKeywords {
		if strings.Contains(desc, kw) {
			return f.accept(s, fmt.Sprintf("KeywordMatch(%s)", kw))
		}
	}

	// Stage 3: cached LLM assessment.
	decision, err := f.assess(ctx, s)
	if err != nil {
		return Outcome{Startup: s, Reason: "Unavailable"}
	}
	accepted, reason := fold(decision, f.cfg.ConfidenceThreshold)
	if accepted {
		return f.accept(s, reason)
	}
	return Outcome{Startup: s, Reason: reason}
}

func (f *Filter) accept(s *ent.Startup, reason string) Outcome {
	return Outcome{
		Startup:  s,
		Accepted: true,
		Reason:   reason,
		Score:    compositeScore(s, f.classifier.Classify(s)),
	}
}

// assess asks the LLM for a verdict, caching by candidate fingerprint and
// model.
func (f *Filter) assess(ctx context.Context, s *ent.Startup) (Decision, error) {
	prompt := assessUserPrompt(s.Name, s.Description, s.PrimaryIndustry)
	key := cache.Key(f.llmCfg.Model, prompt, map[string]any{
		"temperature": f.llmCfg.Temperature,
		"max_tokens":  assessMaxTokens,
	})
	if d, ok := f.cache.Get(key); ok {
		return d, nil
	}

	temp := f.llmCfg.Temperature
	resp, err := f.client.Complete(ctx, &llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: assessSystemPrompt},
			{Role: llm.RoleUser, Content: prompt},
		},
		Temperature: &temp,
		MaxTokens:   assessMaxTokens,
	})
	if err != nil {
		f.logger.Warn("Viability assessment unavailable",
			"startup_id", s.ID, "error_kind", llm.KindOf(err))
		return Decision{}, err
	}

	d := parseAssessment(resp.Content)
	f.cache.Put(key, d, 0)
	return d, nil
}
