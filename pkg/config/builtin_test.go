package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPriorities(t *testing.T) {
	pc := GetBuiltinPriorities()
	require.NotNil(t, pc)
	require.NoError(t, validatePriorities(pc), "builtin taxonomy must pass its own validation")

	// The taxonomy is ordered by tier so the classifier reports the best
	// matching tier first.
	lastTier := 0
	byName := map[string]CategoryConfig{}
	for _, cat := range pc.Categories {
		assert.GreaterOrEqual(t, cat.Tier, lastTier, "categories out of tier order: %s", cat.Name)
		lastTier = cat.Tier
		byName[cat.Name] = cat
	}

	enabler, ok := byName[CategoryAgenticPlatformEnabler]
	require.True(t, ok)
	assert.Equal(t, 1, enabler.Tier)
	assert.Equal(t, 100, enabler.Score)

	catchAll, ok := byName[CategoryGeneralAIML]
	require.True(t, ok)
	assert.Equal(t, 5, catchAll.Tier)

	assert.Equal(t, 30, pc.UncategorizedScore)
}

func TestBuiltinViability(t *testing.T) {
	vc := GetBuiltinViability()
	require.NotNil(t, vc)
	require.NoError(t, validateViability(vc))

	assert.Equal(t, 70, vc.ConfidenceThreshold)
	assert.Equal(t, 3, vc.Workers)
	assert.Contains(t, vc.ExclusionPhrases, "dating app")
	assert.Contains(t, vc.GateKeywords, "b2b")

	// Both tables are matched against lowercased text.
	for _, p := range vc.ExclusionPhrases {
		assert.Equal(t, strings.ToLower(p), p, "exclusion phrase must be lowercase: %q", p)
	}
	for _, k := range vc.GateKeywords {
		assert.Equal(t, strings.ToLower(k), k, "gate keyword must be lowercase: %q", k)
	}
}

func TestBuiltinsReturnFreshCopies(t *testing.T) {
	a := GetBuiltinPriorities()
	a.Categories[0].Score = 1

	b := GetBuiltinPriorities()
	assert.Equal(t, 100, b.Categories[0].Score, "callers must not share builtin state")
}
