// Package taxonomy classifies startups into the configured priority
// categories and assigns base scores. Classification is pure string matching
// over the startup's text; it never calls out.
package taxonomy

import (
	"strings"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/pkg/config"
)

// Classifier evaluates the priority taxonomy against startups. Immutable
// after construction, safe for concurrent use.
type Classifier struct {
	categories []config.CategoryConfig
	tierByName map[string]int
	floorScore int
}

// NewClassifier builds a classifier from the taxonomy config. Category order
// is preserved, so higher-priority categories are reported first.
func NewClassifier(priorities *config.PriorityConfig) *Classifier {
	tiers := make(map[string]int, len(priorities.Categories))
	for _, cat := range priorities.Categories {
		tiers[cat.Name] = cat.Tier
	}
	return &Classifier{
		categories: priorities.Categories,
		tierByName: tiers,
		floorScore: priorities.UncategorizedScore,
	}
}

// Result is a startup's classification outcome.
type Result struct {
	// Categories lists matched category names in taxonomy order. Empty means
	// uncategorized.
	Categories []string

	// Tier is the best (lowest) tier among matches; uncategorized reports
	// UncategorizedTier.
	Tier int

	// BaseScore is the highest matched category score, floored at the
	// uncategorized score.
	BaseScore int
}

// UncategorizedTier sorts below every configured tier.
const UncategorizedTier = 99

// Classify matches the startup's searchable text against every category.
func (c *Classifier) Classify(s *ent.Startup) Result {
	text := SearchableText(s)

	res := Result{Tier: UncategorizedTier, BaseScore: c.floorScore}
	for _, cat := range c.categories {
		if !matches(text, cat.Triggers) {
			continue
		}
		res.Categories = append(res.Categories, cat.Name)
		if cat.Tier < res.Tier {
			res.Tier = cat.Tier
		}
		if cat.Score > res.BaseScore {
			res.BaseScore = cat.Score
		}
	}
	if len(res.Categories) == 0 {
		res.Categories = []string{config.CategoryUncategorized}
	}
	return res
}

// TierOf returns the configured tier for a category name, or
// UncategorizedTier for unknown names.
func (c *Classifier) TierOf(name string) int {
	if t, ok := c.tierByName[name]; ok {
		return t
	}
	return UncategorizedTier
}

// SearchableText is the lowercased concatenation of the fields trigger
// phrases match against. Fields are space-separated so phrases cannot match
// across field boundaries by accident.
func SearchableText(s *ent.Startup) string {
	parts := make([]string, 0, 4+len(s.Topics)+len(s.TechStack))
	parts = append(parts, s.Name, s.Description, s.ShortDescription, s.PrimaryIndustry)
	parts = append(parts, s.Topics...)
	parts = append(parts, s.TechStack...)
	// Pad with spaces so word-boundary phrases like " ai " can match at the
	// start and end of the text.
	return " " + strings.ToLower(strings.Join(parts, " ")) + " "
}

func matches(text string, triggers []config.Trigger) bool {
	for _, tr := range triggers {
		if matchAnyOf(text, tr.AnyOf) || matchAllOf(text, tr.AllOf) {
			return true
		}
	}
	return false
}

func matchAnyOf(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

func matchAllOf(text string, phrases []string) bool {
	if len(phrases) == 0 {
		return false
	}
	for _, p := range phrases {
		if !strings.Contains(text, strings.ToLower(p)) {
			return false
		}
	}
	return true
}
