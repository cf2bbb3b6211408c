package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Defaults:   defaultDefaults(),
		LLM:        defaultLLM(),
		Priorities: GetBuiltinPriorities(),
		Viability:  GetBuiltinViability(),
	}
}

func TestValidateAcceptsBuiltins(t *testing.T) {
	require.NoError(t, validate(validConfig()))
}

func TestValidatePriorities(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PriorityConfig)
		errMsg string
	}{
		{
			name:   "no categories",
			mutate: func(pc *PriorityConfig) { pc.Categories = nil },
			errMsg: "missing required field",
		},
		{
			name: "unnamed category",
			mutate: func(pc *PriorityConfig) {
				pc.Categories[0].Name = ""
			},
			errMsg: "missing required field",
		},
		{
			name: "duplicate category name",
			mutate: func(pc *PriorityConfig) {
				pc.Categories[1].Name = pc.Categories[0].Name
			},
			errMsg: "duplicate category",
		},
		{
			name: "score out of range",
			mutate: func(pc *PriorityConfig) {
				pc.Categories[0].Score = 101
			},
			errMsg: "must be in [0,100]",
		},
		{
			name: "tier below one",
			mutate: func(pc *PriorityConfig) {
				pc.Categories[0].Tier = 0
			},
			errMsg: "must be >= 1",
		},
		{
			name: "empty trigger",
			mutate: func(pc *PriorityConfig) {
				pc.Categories[0].Triggers = []Trigger{{}}
			},
			errMsg: "trigger needs any_of or all_of",
		},
		{
			name: "uncategorized score out of range",
			mutate: func(pc *PriorityConfig) {
				pc.UncategorizedScore = 150
			},
			errMsg: "uncategorized_score",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg.Priorities)
			err := validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateViability(t *testing.T) {
	cfg := validConfig()
	cfg.Viability.ConfidenceThreshold = 120
	err := validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confidence_threshold")

	cfg = validConfig()
	cfg.Viability.Workers = 0
	err = validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")

	cfg = validConfig()
	cfg.Viability = nil
	assert.Error(t, validate(cfg))
}

func TestValidateLLM(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LLMConfig)
		errMsg string
	}{
		{"missing base url", func(lc *LLMConfig) { lc.BaseURL = "" }, "base_url"},
		{"missing model", func(lc *LLMConfig) { lc.Model = "" }, "model"},
		{"temperature too high", func(lc *LLMConfig) { lc.Temperature = 2.5 }, "temperature"},
		{"rate limit zero", func(lc *LLMConfig) { lc.RateLimitPerMin = 0 }, "rate_limit_per_min"},
		{"fail threshold zero", func(lc *LLMConfig) { lc.CircuitFailThreshold = 0 }, "circuit_fail_threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg.LLM)
			err := validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "llm", verr.Component)
		})
	}
}
