package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/pkg/corpus"
	"github.com/confscout/scout/pkg/models"
	"github.com/confscout/scout/pkg/ranking"
	"github.com/confscout/scout/pkg/taxonomy"
)

const (
	defaultPrioritizedLimit = 50
	maxPrioritizedLimit     = 100
	defaultListLimit        = 50
	maxListLimit            = 200
	maxBatchInsights        = 100
)

// StartupService exposes the corpus, the prioritization engine and the
// classification rationale to the API layer.
type StartupService struct {
	store      *corpus.Store
	engine     *ranking.Engine
	classifier *taxonomy.Classifier
	logger     *slog.Logger
}

// NewStartupService creates a new startup service.
func NewStartupService(store *corpus.Store, engine *ranking.Engine, classifier *taxonomy.Classifier, logger *slog.Logger) *StartupService {
	return &StartupService{
		store:      store,
		engine:     engine,
		classifier: classifier,
		logger:     logger.With("component", "startup_service"),
	}
}

// List returns a filtered page of the corpus.
func (s *StartupService) List(filter models.StartupFilter, page models.Page) *models.StartupListResponse {
	if page.Limit <= 0 {
		page.Limit = defaultListLimit
	}
	if page.Limit > maxListLimit {
		page.Limit = maxListLimit
	}
	if page.Skip < 0 {
		page.Skip = 0
	}

	rows, total := s.store.Snapshot().List(filter, page)
	startups := make([]models.StartupSummary, len(rows))
	for i, row := range rows {
		startups[i] = models.SummarizeStartup(row)
	}
	return &models.StartupListResponse{Total: total, Count: len(startups), Startups: startups}
}

// Prioritized returns the ranked discovery feed for a user. An empty user id
// yields the non-personalized ranking.
func (s *StartupService) Prioritized(userID string, limit, minScore int) *models.PrioritizedResponse {
	if limit <= 0 {
		limit = defaultPrioritizedLimit
	}
	if limit > maxPrioritizedLimit {
		limit = maxPrioritizedLimit
	}

	ranked, personalized := s.engine.Prioritize(userID, limit, minScore)
	return &models.PrioritizedResponse{
		Total:            s.store.Snapshot().Len(),
		PrioritizedCount: len(ranked),
		Personalized:     personalized,
		UserID:           userID,
		Startups:         ranked,
	}
}

// Get returns the full detail of one startup.
func (s *StartupService) Get(id int64) (*models.StartupDetail, error) {
	row, err := s.getStartup(id)
	if err != nil {
		return nil, err
	}
	return models.DetailStartup(row), nil
}

// Insight returns the classification rationale for one startup.
func (s *StartupService) Insight(id int64) (*models.StartupInsight, error) {
	row, err := s.getStartup(id)
	if err != nil {
		return nil, err
	}
	insight := s.insightOf(row)
	return &insight, nil
}

// BatchInsights returns the classification rationale for a set of startups.
// Unknown ids are skipped rather than failing the whole batch.
func (s *StartupService) BatchInsights(ids []int64) ([]models.StartupInsight, error) {
	if len(ids) == 0 {
		return nil, NewValidationError("startup_ids", "must not be empty")
	}
	if len(ids) > maxBatchInsights {
		return nil, NewValidationError("startup_ids", fmt.Sprintf("at most %d ids per batch", maxBatchInsights))
	}

	snap := s.store.Snapshot()
	insights := make([]models.StartupInsight, 0, len(ids))
	for _, id := range ids {
		if row := snap.Get(id); row != nil {
			insights = append(insights, s.insightOf(row))
		}
	}
	return insights, nil
}

// SearchEnriched searches startups that carry an enrichment payload. The
// query matches name, description, industry and topics; enrichmentType
// restricts results to startups with that enrichment key.
func (s *StartupService) SearchEnriched(query, enrichmentType string, limit int) []models.StartupSummary {
	if limit <= 0 {
		limit = defaultListLimit
	}
	needle := strings.ToLower(strings.TrimSpace(query))

	var out []models.StartupSummary
	for _, row := range s.store.Snapshot().All() {
		if len(row.Enrichment) == 0 {
			continue
		}
		if enrichmentType != "" {
			if _, ok := row.Enrichment[enrichmentType]; !ok {
				continue
			}
		}
		if needle != "" && !strings.Contains(taxonomy.SearchableText(row), needle) {
			continue
		}
		out = append(out, models.SummarizeStartup(row))
		if len(out) >= limit {
			break
		}
	}
	return out
}

// Enrichment returns the raw enrichment payload of one startup.
func (s *StartupService) Enrichment(id int64) (*models.EnrichmentResponse, error) {
	row, err := s.getStartup(id)
	if err != nil {
		return nil, err
	}
	if len(row.Enrichment) == 0 {
		return nil, fmt.Errorf("%w: startup %d has no enrichment data", ErrNotFound, id)
	}
	return &models.EnrichmentResponse{
		StartupID:  row.ID,
		Name:       row.Name,
		Enrichment: row.Enrichment,
	}, nil
}

// EnrichmentStats aggregates enrichment coverage over the whole corpus.
func (s *StartupService) EnrichmentStats() *models.EnrichmentStats {
	stats := &models.EnrichmentStats{
		ByType:      map[string]int{},
		GeneratedAt: time.Now().UTC(),
	}
	for _, row := range s.store.Snapshot().All() {
		stats.TotalStartups++
		if len(row.Enrichment) == 0 {
			continue
		}
		stats.WithEnrichment++
		for key := range row.Enrichment {
			stats.ByType[key]++
		}
	}
	return stats
}

// GetMany resolves a set of ids against the snapshot, skipping unknown ones.
func (s *StartupService) GetMany(ids []int64) []*ent.Startup {
	snap := s.store.Snapshot()
	rows := make([]*ent.Startup, 0, len(ids))
	for _, id := range ids {
		if row := snap.Get(id); row != nil {
			rows = append(rows, row)
		}
	}
	return rows
}

// CorpusSize reports how many startups the current snapshot holds.
func (s *StartupService) CorpusSize() int {
	return s.store.Snapshot().Len()
}

// RefreshCorpus reloads the snapshot from the database.
func (s *StartupService) RefreshCorpus(ctx context.Context) error {
	if err := s.store.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to refresh corpus: %w", err)
	}
	s.logger.Info("Corpus refreshed", "generation", s.store.Snapshot().Generation(), "startups", s.store.Snapshot().Len())
	return nil
}

func (s *StartupService) getStartup(id int64) (*ent.Startup, error) {
	row, err := s.store.GetStartup(id)
	if err != nil {
		if errors.Is(err, corpus.ErrStartupNotFound) {
			return nil, fmt.Errorf("%w: startup %d", ErrNotFound, id)
		}
		return nil, err
	}
	return row, nil
}

func (s *StartupService) insightOf(row *ent.Startup) models.StartupInsight {
	result := s.classifier.Classify(row)
	return models.StartupInsight{
		StartupID:  row.ID,
		Name:       row.Name,
		Categories: result.Categories,
		Tier:       result.Tier,
		BaseScore:  result.BaseScore,
	}
}
