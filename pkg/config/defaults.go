package config

// Defaults contains system-wide default configurations.
// These values are used when specific components don't specify their own.
type Defaults struct {
	// Prioritization defaults
	PrioritizeLimit int `yaml:"prioritize_limit,omitempty"`
	MinScore        int `yaml:"min_score,omitempty"`

	// Assessment cache
	CacheTTLSeconds int `yaml:"cache_ttl_seconds,omitempty"`
	CacheMaxSize    int `yaml:"cache_max_size,omitempty"`

	// Tool-call loop
	MaxToolIterations  int `yaml:"max_tool_iterations,omitempty"`
	ToolTimeoutSeconds int `yaml:"tool_timeout_seconds,omitempty"`

	// HTTP request end-to-end budget
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds,omitempty"`

	// Feedback sessions older than this with no activity become abandoned.
	FeedbackAbandonHours int `yaml:"feedback_abandon_hours,omitempty"`
}

func defaultDefaults() *Defaults {
	return &Defaults{
		PrioritizeLimit:       50,
		MinScore:              30,
		CacheTTLSeconds:       86400,
		CacheMaxSize:          1000,
		MaxToolIterations:     5,
		ToolTimeoutSeconds:    2,
		RequestTimeoutSeconds: 90,
		FeedbackAbandonHours:  24,
	}
}

func defaultLLM() *LLMConfig {
	return &LLMConfig{
		BaseURL:                "https://api.openai.com/v1",
		Model:                  "gpt-4o-mini",
		Temperature:            0.3,
		TimeoutSeconds:         60,
		RateLimitPerMin:        60,
		AcquireTimeoutSeconds:  30,
		CircuitFailThreshold:   5,
		CircuitCooldownSeconds: 60,
		LogDir:                 "./data/llm-logs",
	}
}
