package config

// Trigger is a single match rule for a priority category. A trigger fires
// when any phrase in AnyOf matches, or when every phrase in AllOf matches.
// Matching is case-insensitive substring over the startup's searchable text.
type Trigger struct {
	AnyOf []string `yaml:"any_of,omitempty"`
	AllOf []string `yaml:"all_of,omitempty"`
}

// CategoryConfig defines one priority category in the taxonomy.
type CategoryConfig struct {
	// Name is the stable category identifier, e.g. "agentic_platform_enabler".
	Name string `yaml:"name"`

	// Tier groups categories by priority; tier 1 is highest.
	Tier int `yaml:"tier"`

	// Score is the base score contributed when this category matches [0,100].
	Score int `yaml:"score"`

	// Triggers fire the category; empty triggers mark fallback categories.
	Triggers []Trigger `yaml:"triggers,omitempty"`
}

// PriorityConfig is the full taxonomy, ordered by priority (tier ascending).
type PriorityConfig struct {
	Categories []CategoryConfig `yaml:"categories"`

	// UncategorizedScore is the floor score for startups matching nothing.
	UncategorizedScore int `yaml:"uncategorized_score"`
}

// ViabilityConfig holds the provider-viability filter data tables.
type ViabilityConfig struct {
	// ExclusionPhrases reject a candidate outright when found in
	// name+description (lowercased substring).
	ExclusionPhrases []string `yaml:"exclusion_phrases"`

	// GateKeywords provisionally accept a candidate without an LLM call.
	GateKeywords []string `yaml:"gate_keywords"`

	// ConfidenceThreshold is the minimum LLM confidence to honour a decision.
	ConfidenceThreshold int `yaml:"confidence_threshold"`

	// Workers is the filter worker pool size.
	Workers int `yaml:"workers"`
}

// LLMConfig holds LLM gateway settings. The API key is always read from the
// environment, never from YAML.
type LLMConfig struct {
	// APIKey comes from LLM_API_KEY. Empty means the gateway runs disabled
	// and LLM-dependent endpoints return ServiceUnavailable.
	APIKey string `yaml:"-"`

	// BaseURL is the chat-completions endpoint base, e.g. an OpenAI-compatible
	// server. From LLM_BASE_URL or YAML.
	BaseURL string `yaml:"base_url,omitempty"`

	// Model is the default model name. From LLM_DEFAULT_MODEL or YAML.
	Model string `yaml:"model,omitempty"`

	// Temperature is the default sampling temperature for assessments.
	Temperature float64 `yaml:"temperature,omitempty"`

	// TimeoutSeconds bounds a single LLM call end-to-end.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`

	// RateLimitPerMin is the token-bucket capacity per minute.
	RateLimitPerMin int `yaml:"rate_limit_per_min,omitempty"`

	// AcquireTimeoutSeconds bounds how long a caller blocks on the limiter.
	AcquireTimeoutSeconds int `yaml:"acquire_timeout_seconds,omitempty"`

	// CircuitFailThreshold is the consecutive-failure count that opens the breaker.
	CircuitFailThreshold int `yaml:"circuit_fail_threshold,omitempty"`

	// CircuitCooldownSeconds is the initial Open-state cooldown.
	CircuitCooldownSeconds int `yaml:"circuit_cooldown_seconds,omitempty"`

	// LogDir is the append-only request/response log directory.
	LogDir string `yaml:"log_dir,omitempty"`
}
