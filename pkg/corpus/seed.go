package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/ent/startup"
)

// seedRecord mirrors the startup export format produced by the ingestion
// pipeline.
type seedRecord struct {
	ID                  int64          `json:"id"`
	Name                string         `json:"name"`
	Description         string         `json:"description"`
	ShortDescription    string         `json:"short_description"`
	PrimaryIndustry     string         `json:"primary_industry"`
	SecondaryIndustries []string       `json:"secondary_industries"`
	BusinessTypes       []string       `json:"business_types"`
	Topics              []string       `json:"topics"`
	TechStack           []string       `json:"tech_stack"`
	Stage               string         `json:"stage"`
	TotalFundingUSDM    *float64       `json:"total_funding_usd_millions"`
	LastFundingDate     *time.Time     `json:"last_funding_date"`
	Employees           string         `json:"employees"`
	Country             string         `json:"country"`
	City                string         `json:"city"`
	Website             *string        `json:"website"`
	LogoURL             *string        `json:"logo_url"`
	MaturityScore       *int           `json:"maturity_score"`
	Enrichment          map[string]any `json:"enrichment"`
}

// SeedFromFile imports startups from a JSON export when the startups table is
// empty. It is a no-op when data already exists, so restarts are safe.
func (s *Store) SeedFromFile(ctx context.Context, path string) error {
	count, err := s.client.Startup.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count startups: %w", err)
	}
	if count > 0 {
		s.logger.Debug("Skipping corpus seed, table not empty", "existing", count)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}
	var records []seedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse corpus file %s: %w", path, err)
	}

	builders := make([]*ent.StartupCreate, 0, len(records))
	for _, r := range records {
		stage := startup.Stage(r.Stage)
		if err := startup.StageValidator(stage); err != nil {
			stage = startup.StageUndisclosed
		}
		b := s.client.Startup.Create().
			SetID(r.ID).
			SetName(r.Name).
			SetDescription(r.Description).
			SetShortDescription(r.ShortDescription).
			SetPrimaryIndustry(r.PrimaryIndustry).
			SetSecondaryIndustries(r.SecondaryIndustries).
			SetBusinessTypes(r.BusinessTypes).
			SetTopics(r.Topics).
			SetTechStack(r.TechStack).
			SetStage(stage).
			SetNillableTotalFundingUsdMillions(r.TotalFundingUSDM).
			SetNillableLastFundingDate(r.LastFundingDate).
			SetEmployees(r.Employees).
			SetCountry(r.Country).
			SetCity(r.City).
			SetNillableWebsite(r.Website).
			SetNillableLogoURL(r.LogoURL).
			SetNillableMaturityScore(r.MaturityScore)
		if r.Enrichment != nil {
			b.SetEnrichment(r.Enrichment)
		}
		builders = append(builders, b)
	}

	if _, err := s.client.Startup.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to seed corpus: %w", err)
	}
	s.logger.Info("Corpus seeded from file", "path", path, "startups", len(records))
	return nil
}
