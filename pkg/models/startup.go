// Package models contains request/response types shared by services and API handlers.
package models

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/confscout/scout/ent"
)

// StartupFilter restricts list_startups queries. Zero values mean "no filter".
type StartupFilter struct {
	Industry      string  `json:"industry,omitempty"`
	Country       string  `json:"country,omitempty"`
	Stage         string  `json:"stage,omitempty"`
	MinFunding    float64 `json:"min_funding,omitempty"`
	NameSubstring string  `json:"name_substring,omitempty"`
}

// Page describes pagination for list queries.
type Page struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// StartupSummary is the compact projection returned by list endpoints and tools.
type StartupSummary struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	PrimaryIndustry string   `json:"primary_industry"`
	Stage           string   `json:"stage"`
	FundingUSDM     *float64 `json:"total_funding_usd_millions,omitempty"`
	Employees       string   `json:"employees,omitempty"`
	Country         string   `json:"country,omitempty"`
	City            string   `json:"city,omitempty"`
	Website         *string  `json:"website,omitempty"`
}

// SummarizeStartup builds the compact projection from an ent row.
func SummarizeStartup(s *ent.Startup) StartupSummary {
	desc := s.ShortDescription
	if desc == "" {
		desc = truncate(s.Description, 280)
	}
	return StartupSummary{
		ID:              s.ID,
		Name:            s.Name,
		Description:     desc,
		PrimaryIndustry: s.PrimaryIndustry,
		Stage:           string(s.Stage),
		FundingUSDM:     s.TotalFundingUsdMillions,
		Employees:       s.Employees,
		Country:         s.Country,
		City:            s.City,
		Website:         s.Website,
	}
}

// StartupListResponse is returned by GET /startups/all.
type StartupListResponse struct {
	Total    int              `json:"total"`
	Count    int              `json:"count"`
	Startups []StartupSummary `json:"startups"`
}

// PrioritizedResponse is returned by GET /startups/prioritized.
type PrioritizedResponse struct {
	Total            int             `json:"total"`
	PrioritizedCount int             `json:"prioritized_count"`
	Personalized     bool            `json:"personalized"`
	UserID           string          `json:"user_id,omitempty"`
	Startups         []RankedStartup `json:"startups"`
}

// RankedStartup is a startup with its prioritization rationale.
type RankedStartup struct {
	StartupSummary
	Score      float64  `json:"score"`
	Categories []string `json:"categories"`
	Tier       int      `json:"tier"`
}

// StartupInsight is the per-startup classification rationale returned by the
// insights endpoints.
type StartupInsight struct {
	StartupID  int64    `json:"startup_id"`
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
	Tier       int      `json:"tier"`
	BaseScore  int      `json:"base_score"`
}

// IDList unmarshals a JSON array whose elements are numbers or numeric
// strings. Conference clients send startup ids in both forms.
type IDList []int64

func (l *IDList) UnmarshalJSON(data []byte) error {
	var raw []json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ids := make([]int64, len(raw))
	for i, n := range raw {
		id, err := n.Int64()
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		ids[i] = id
	}
	*l = ids
	return nil
}

// BatchInsightsRequest is the body of POST /startups/batch-insights.
type BatchInsightsRequest struct {
	StartupIDs IDList `json:"startup_ids"`
}

// StartupDetail is the full projection returned by GET /startups/:id.
type StartupDetail struct {
	StartupSummary
	ShortDescription    string     `json:"short_description,omitempty"`
	SecondaryIndustries []string   `json:"secondary_industries,omitempty"`
	BusinessTypes       []string   `json:"business_types,omitempty"`
	Topics              []string   `json:"topics,omitempty"`
	TechStack           []string   `json:"tech_stack,omitempty"`
	LastFundingDate     *time.Time `json:"last_funding_date,omitempty"`
	MaturityScore       *int       `json:"maturity_score,omitempty"`
	LogoURL             *string    `json:"logo_url,omitempty"`
	HasEnrichment       bool       `json:"has_enrichment"`
}

// DetailStartup builds the full projection from an ent row.
func DetailStartup(s *ent.Startup) *StartupDetail {
	summary := SummarizeStartup(s)
	summary.Description = s.Description
	return &StartupDetail{
		StartupSummary:      summary,
		ShortDescription:    s.ShortDescription,
		SecondaryIndustries: s.SecondaryIndustries,
		BusinessTypes:       s.BusinessTypes,
		Topics:              s.Topics,
		TechStack:           s.TechStack,
		LastFundingDate:     s.LastFundingDate,
		MaturityScore:       s.MaturityScore,
		LogoURL:             s.LogoURL,
		HasEnrichment:       len(s.Enrichment) > 0,
	}
}

// EnrichmentResponse is the raw enrichment payload of one startup.
type EnrichmentResponse struct {
	StartupID  int64          `json:"startup_id"`
	Name       string         `json:"name"`
	Enrichment map[string]any `json:"enrichment"`
}

// EnrichmentStats aggregates enrichment coverage over the corpus.
type EnrichmentStats struct {
	TotalStartups  int            `json:"total_startups"`
	WithEnrichment int            `json:"with_enrichment"`
	ByType         map[string]int `json:"by_type"`
	GeneratedAt    time.Time      `json:"generated_at"`
}

// truncate shortens s to at most n bytes plus an ellipsis, backing off to a
// rune boundary so the cut never splits a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
