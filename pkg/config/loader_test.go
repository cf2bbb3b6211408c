package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestInitializeBuiltinsOnly(t *testing.T) {
	// An empty config dir runs fully on built-in tables.
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://api.openai.com/v1", cfg.LLM.BaseURL)
	assert.Equal(t, 60, cfg.LLM.RateLimitPerMin)
	assert.Equal(t, 5, cfg.LLM.CircuitFailThreshold)
	assert.Equal(t, 86400, cfg.Defaults.CacheTTLSeconds)
	assert.NotEmpty(t, cfg.Priorities.Categories)
	assert.NotEmpty(t, cfg.Viability.ExclusionPhrases)

	stats := cfg.Stats()
	assert.Greater(t, stats.Categories, 0)
	assert.Greater(t, stats.ExclusionPhrases, 0)
	assert.Greater(t, stats.GateKeywords, 0)
}

func TestInitializeMissingDirIsFine(t *testing.T) {
	// A nonexistent dir behaves like an empty one: both files are optional.
	cfg, err := Initialize(context.Background(), "/nonexistent/scout-config")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
}

func TestInitializeScoutYAMLMergesOverBuiltins(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "scout.yaml", `
defaults:
  cache_ttl_seconds: 600
llm:
  model: gpt-4.1
  temperature: 0.7
viability:
  gate_keywords: ["fintech"]
  workers: 5
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Overridden values win, untouched ones keep their built-in defaults.
	assert.Equal(t, 600, cfg.Defaults.CacheTTLSeconds)
	assert.Equal(t, 1000, cfg.Defaults.CacheMaxSize)
	assert.Equal(t, "gpt-4.1", cfg.LLM.Model)
	assert.Equal(t, 0.7, cfg.LLM.Temperature)
	assert.Equal(t, "https://api.openai.com/v1", cfg.LLM.BaseURL)

	// Keyword lists replace wholesale instead of mixing with builtins.
	assert.Equal(t, []string{"fintech"}, cfg.Viability.GateKeywords)
	assert.NotEmpty(t, cfg.Viability.ExclusionPhrases, "untouched list keeps the builtin table")
	assert.Equal(t, 5, cfg.Viability.Workers)
	assert.Equal(t, 70, cfg.Viability.ConfidenceThreshold)
}

func TestInitializePrioritiesYAMLReplacesTaxonomy(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "priorities.yaml", `
categories:
  - name: robotics
    tier: 1
    score: 90
    triggers:
      - any_of: ["robot", "actuator"]
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, cfg.Priorities.Categories, 1)
	assert.Equal(t, "robotics", cfg.Priorities.Categories[0].Name)
	assert.Equal(t, 30, cfg.Priorities.UncategorizedScore,
		"unset uncategorized_score inherits the builtin floor")
}

func TestInitializeExpandsEnvInYAML(t *testing.T) {
	t.Setenv("TEST_SCOUT_MODEL", "gpt-4o")
	dir := t.TempDir()
	writeConfig(t, dir, "scout.yaml", "llm:\n  model: \"{{.TEST_SCOUT_MODEL}}\"\n")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
}

func TestInitializeEnvOverridesWinOverFiles(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "scout.yaml", "llm:\n  model: from-file\n")

	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("LLM_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("LLM_DEFAULT_MODEL", "from-env")
	t.Setenv("LLM_TEMPERATURE", "0.9")
	t.Setenv("RATE_LIMIT_PER_MIN", "120")
	t.Setenv("CIRCUIT_FAIL_THRESHOLD", "3")
	t.Setenv("CIRCUIT_COOLDOWN_SECONDS", "10")
	t.Setenv("CACHE_TTL_SECONDS", "300")
	t.Setenv("CACHE_MAX_SIZE", "50")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "http://localhost:8080/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "from-env", cfg.LLM.Model)
	assert.Equal(t, 0.9, cfg.LLM.Temperature)
	assert.Equal(t, 120, cfg.LLM.RateLimitPerMin)
	assert.Equal(t, 3, cfg.LLM.CircuitFailThreshold)
	assert.Equal(t, 10, cfg.LLM.CircuitCooldownSeconds)
	assert.Equal(t, 300, cfg.Defaults.CacheTTLSeconds)
	assert.Equal(t, 50, cfg.Defaults.CacheMaxSize)
	assert.True(t, cfg.Stats().LLMConfigured)
}

func TestInitializeIgnoresMalformedEnvNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MIN", "lots")
	t.Setenv("CACHE_TTL_SECONDS", "-1")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.LLM.RateLimitPerMin)
	assert.Equal(t, 86400, cfg.Defaults.CacheTTLSeconds)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "scout.yaml", "llm: [unclosed")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.Contains(t, err.Error(), "scout.yaml")
}

func TestInitializeValidationFailure(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "priorities.yaml", `
categories:
  - name: broken
    tier: 0
    score: 90
`)

	_, err := Initialize(context.Background(), dir)
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "tier")
}
