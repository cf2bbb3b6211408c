package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/pkg/corpus"
	"github.com/confscout/scout/pkg/models"
)

// SnapshotSource provides the corpus view handlers read from.
// *corpus.Store satisfies it.
type SnapshotSource interface {
	Snapshot() *corpus.Snapshot
}

const defaultLimit = 10

var limitSchema = `"limit":{"type":"integer","minimum":1,"maximum":50,"description":"Maximum results to return, default 10"}`

// NewStartupRegistry builds the standard seven-tool set over the corpus.
func NewStartupRegistry(source SnapshotSource) (*Registry, error) {
	r := NewRegistry()

	register := []struct {
		name        string
		description string
		schema      string
		handler     Handler
	}{
		{
			"search_startups_by_name",
			"Search startups whose name contains the query, case-insensitive.",
			`{"type":"object","properties":{"query":{"type":"string","minLength":1},` + limitSchema + `},"required":["query"]}`,
			searchByName(source),
		},
		{
			"search_startups_by_industry",
			"Search startups by primary or secondary industry.",
			`{"type":"object","properties":{"industry":{"type":"string","minLength":1},` + limitSchema + `},"required":["industry"]}`,
			searchByIndustry(source),
		},
		{
			"search_startups_by_funding",
			"Search startups by funding stage, optionally with a minimum total funding in USD millions.",
			`{"type":"object","properties":{"stage":{"type":"string","minLength":1},"min_funding":{"type":"number","minimum":0},` + limitSchema + `},"required":["stage"]}`,
			searchByFunding(source),
		},
		{
			"search_startups_by_location",
			"Search startups by country and optionally city.",
			`{"type":"object","properties":{"country":{"type":"string","minLength":1},"city":{"type":"string"},` + limitSchema + `},"required":["country"]}`,
			searchByLocation(source),
		},
		{
			"get_startup_details",
			"Fetch the full record of one startup by id or by company name.",
			`{"type":"object","properties":{"startup_id":{"type":"integer"},"company_name":{"type":"string","minLength":1}}}`,
			getDetails(source),
		},
		{
			"get_startup_enrichment_data",
			"Fetch the enrichment object (contacts, social links, team) of one startup by id or company name.",
			`{"type":"object","properties":{"startup_id":{"type":"integer"},"company_name":{"type":"string","minLength":1}}}`,
			getEnrichment(source),
		},
		{
			"get_top_startups_by_funding",
			"List the best-funded startups.",
			`{"type":"object","properties":{` + limitSchema + `}}`,
			topByFunding(source),
		},
	}
	for _, t := range register {
		if err := r.Register(t.name, t.description, json.RawMessage(t.schema), t.handler); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func searchByName(source SnapshotSource) Handler {
	return func(ctx context.Context, args map[string]any) *Result {
		matches, _ := source.Snapshot().List(
			models.StartupFilter{NameSubstring: argString(args, "query")},
			models.Page{Limit: limitArg(args)},
		)
		return listResult(matches)
	}
}

func searchByIndustry(source SnapshotSource) Handler {
	return func(ctx context.Context, args map[string]any) *Result {
		matches, _ := source.Snapshot().List(
			models.StartupFilter{Industry: argString(args, "industry")},
			models.Page{Limit: limitArg(args)},
		)
		return listResult(matches)
	}
}

func searchByFunding(source SnapshotSource) Handler {
	return func(ctx context.Context, args map[string]any) *Result {
		matches, _ := source.Snapshot().List(
			models.StartupFilter{
				Stage:      normalizeStage(argString(args, "stage")),
				MinFunding: argFloat(args, "min_funding"),
			},
			models.Page{Limit: limitArg(args)},
		)
		return listResult(matches)
	}
}

func searchByLocation(source SnapshotSource) Handler {
	return func(ctx context.Context, args map[string]any) *Result {
		matches, _ := source.Snapshot().List(
			models.StartupFilter{Country: argString(args, "country")},
			models.Page{},
		)
		city := argString(args, "city")
		limit := limitArg(args)

		filtered := make([]*ent.Startup, 0, limit)
		for _, s := range matches {
			if city != "" && !strings.EqualFold(s.City, city) {
				continue
			}
			filtered = append(filtered, s)
			if len(filtered) == limit {
				break
			}
		}
		return listResult(filtered)
	}
}

func getDetails(source SnapshotSource) Handler {
	return func(ctx context.Context, args map[string]any) *Result {
		s, errMsg := resolveStartup(source.Snapshot(), args)
		if errMsg != "" {
			return &Result{Error: errMsg}
		}
		return &Result{Success: true, Count: 1, Results: s}
	}
}

func getEnrichment(source SnapshotSource) Handler {
	return func(ctx context.Context, args map[string]any) *Result {
		s, errMsg := resolveStartup(source.Snapshot(), args)
		if errMsg != "" {
			return &Result{Error: errMsg}
		}
		if len(s.Enrichment) == 0 {
			return &Result{Error: fmt.Sprintf("no enrichment data for %s", s.Name)}
		}
		return &Result{Success: true, Count: 1, Results: s.Enrichment}
	}
}

func topByFunding(source SnapshotSource) Handler {
	return func(ctx context.Context, args map[string]any) *Result {
		return listResult(source.Snapshot().TopByFunding(limitArg(args)))
	}
}

// resolveStartup implements the id-XOR-name lookup shared by the detail
// tools.
func resolveStartup(snap *corpus.Snapshot, args map[string]any) (*ent.Startup, string) {
	_, hasID := args["startup_id"]
	name := argString(args, "company_name")

	switch {
	case hasID && name != "":
		return nil, "provide either startup_id or company_name, not both"
	case hasID:
		id := int64(argFloat(args, "startup_id"))
		if s := snap.Get(id); s != nil {
			return s, ""
		}
		return nil, fmt.Sprintf("no startup with id %d", id)
	case name != "":
		if s := findByName(snap, name); s != nil {
			return s, ""
		}
		return nil, fmt.Sprintf("no startup named %q", name)
	default:
		return nil, "provide startup_id or company_name"
	}
}

// findByName prefers an exact case-insensitive match, then falls back to the
// first substring match in id order.
func findByName(snap *corpus.Snapshot, name string) *ent.Startup {
	lower := strings.ToLower(name)
	var partial *ent.Startup
	for _, s := range snap.All() {
		sl := strings.ToLower(s.Name)
		if sl == lower {
			return s
		}
		if partial == nil && strings.Contains(sl, lower) {
			partial = s
		}
	}
	return partial
}

// normalizeStage maps loose stage spellings ("Series A") onto the enum form.
func normalizeStage(stage string) string {
	s := strings.ToLower(strings.TrimSpace(stage))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	switch s {
	case "series_d", "series_d+":
		return "series_d_plus"
	case "preseed":
		return "pre_seed"
	}
	return s
}

func listResult(startups []*ent.Startup) *Result {
	summaries := make([]models.StartupSummary, 0, len(startups))
	for _, s := range startups {
		summaries = append(summaries, models.SummarizeStartup(s))
	}
	return &Result{Success: true, Count: len(summaries), Results: summaries}
}

func argString(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func argFloat(args map[string]any, key string) float64 {
	if v, ok := args[key].(float64); ok {
		return v
	}
	return 0
}

func limitArg(args map[string]any) int {
	limit := int(argFloat(args, "limit"))
	if limit <= 0 {
		return defaultLimit
	}
	if limit > 50 {
		return 50
	}
	return limit
}
