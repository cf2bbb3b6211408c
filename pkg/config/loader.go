package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ScoutYAMLConfig represents the complete scout.yaml file structure.
type ScoutYAMLConfig struct {
	Defaults  *Defaults        `yaml:"defaults"`
	LLM       *LLMConfig       `yaml:"llm"`
	Viability *ViabilityConfig `yaml:"viability"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load scout.yaml and priorities.yaml from configDir (both optional)
//  2. Expand environment variables in file content
//  3. Merge user-defined values over built-in defaults
//  4. Apply environment variable overrides (LLM_*, CACHE_*, RATE_LIMIT_*, CIRCUIT_*)
//  5. Validate and return
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"categories", stats.Categories,
		"exclusion_phrases", stats.ExclusionPhrases,
		"gate_keywords", stats.GateKeywords,
		"llm_configured", stats.LLMConfigured)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	cfg := &Config{
		configDir:  configDir,
		Defaults:   defaultDefaults(),
		LLM:        defaultLLM(),
		Priorities: GetBuiltinPriorities(),
		Viability:  GetBuiltinViability(),
	}

	// 1. scout.yaml: defaults + llm + viability overrides
	scoutPath := filepath.Join(configDir, "scout.yaml")
	if data, err := os.ReadFile(scoutPath); err == nil {
		var fileCfg ScoutYAMLConfig
		if err := yaml.Unmarshal(expandEnv(data), &fileCfg); err != nil {
			return nil, NewLoadError("scout.yaml", fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
		if fileCfg.Defaults != nil {
			if err := mergo.Merge(cfg.Defaults, fileCfg.Defaults, mergo.WithOverride); err != nil {
				return nil, NewLoadError("scout.yaml", err)
			}
		}
		if fileCfg.LLM != nil {
			if err := mergo.Merge(cfg.LLM, fileCfg.LLM, mergo.WithOverride); err != nil {
				return nil, NewLoadError("scout.yaml", err)
			}
		}
		if fileCfg.Viability != nil {
			// Lists replace wholesale: merging keyword lists element-wise
			// would silently mix built-in and user tables.
			if len(fileCfg.Viability.ExclusionPhrases) > 0 {
				cfg.Viability.ExclusionPhrases = fileCfg.Viability.ExclusionPhrases
			}
			if len(fileCfg.Viability.GateKeywords) > 0 {
				cfg.Viability.GateKeywords = fileCfg.Viability.GateKeywords
			}
			if fileCfg.Viability.ConfidenceThreshold > 0 {
				cfg.Viability.ConfidenceThreshold = fileCfg.Viability.ConfidenceThreshold
			}
			if fileCfg.Viability.Workers > 0 {
				cfg.Viability.Workers = fileCfg.Viability.Workers
			}
		}
	} else if !os.IsNotExist(err) {
		return nil, NewLoadError("scout.yaml", err)
	}

	// 2. priorities.yaml: full taxonomy replacement when present
	prioritiesPath := filepath.Join(configDir, "priorities.yaml")
	if data, err := os.ReadFile(prioritiesPath); err == nil {
		var pc PriorityConfig
		if err := yaml.Unmarshal(expandEnv(data), &pc); err != nil {
			return nil, NewLoadError("priorities.yaml", fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
		if len(pc.Categories) > 0 {
			if pc.UncategorizedScore == 0 {
				pc.UncategorizedScore = cfg.Priorities.UncategorizedScore
			}
			cfg.Priorities = &pc
		}
	} else if !os.IsNotExist(err) {
		return nil, NewLoadError("priorities.yaml", err)
	}

	// 3. Environment overrides
	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides applies the documented environment variables on top of
// file and built-in values. The API key only ever comes from the environment.
func applyEnvOverrides(cfg *Config) {
	cfg.LLM.APIKey = os.Getenv("LLM_API_KEY")

	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_DEFAULT_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.LLM.Temperature = f
		}
	}
	if v := os.Getenv("LLM_LOG_DIR"); v != "" {
		cfg.LLM.LogDir = v
	}
	if v := os.Getenv("RATE_LIMIT_PER_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LLM.RateLimitPerMin = n
		}
	}
	if v := os.Getenv("CIRCUIT_FAIL_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LLM.CircuitFailThreshold = n
		}
	}
	if v := os.Getenv("CIRCUIT_COOLDOWN_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LLM.CircuitCooldownSeconds = n
		}
	}
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Defaults.CacheTTLSeconds = n
		}
	}
	if v := os.Getenv("CACHE_MAX_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Defaults.CacheMaxSize = n
		}
	}
}
