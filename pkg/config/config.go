package config

// Config is the umbrella configuration object returned by Initialize()
// and passed to every component that needs settings.
type Config struct {
	configDir string

	// System-wide defaults (timeouts, limits)
	Defaults *Defaults

	// LLM gateway settings
	LLM *LLMConfig

	// Priority category taxonomy used by the classifier and ranking engine
	Priorities *PriorityConfig

	// Provider-viability filter settings (exclusion phrases, keyword gate)
	Viability *ViabilityConfig
}

// Stats contains statistics about loaded configuration.
type Stats struct {
	Categories       int
	ExclusionPhrases int
	GateKeywords     int
	LLMConfigured    bool
}

// Stats returns configuration statistics for logging/monitoring.
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Priorities != nil {
		s.Categories = len(c.Priorities.Categories)
	}
	if c.Viability != nil {
		s.ExclusionPhrases = len(c.Viability.ExclusionPhrases)
		s.GateKeywords = len(c.Viability.GateKeywords)
	}
	if c.LLM != nil {
		s.LLMConfigured = c.LLM.APIKey != ""
	}
	return s
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
