package config

import "fmt"

// validate checks the assembled configuration for structural problems.
// Called by Initialize() after loading and merging.
func validate(cfg *Config) error {
	if err := validatePriorities(cfg.Priorities); err != nil {
		return err
	}
	if err := validateViability(cfg.Viability); err != nil {
		return err
	}
	if err := validateLLM(cfg.LLM); err != nil {
		return err
	}
	return nil
}

func validatePriorities(pc *PriorityConfig) error {
	if pc == nil || len(pc.Categories) == 0 {
		return NewValidationError("priorities", "", "categories", ErrMissingRequiredField)
	}

	seen := make(map[string]bool, len(pc.Categories))
	for _, cat := range pc.Categories {
		if cat.Name == "" {
			return NewValidationError("priorities", cat.Name, "name", ErrMissingRequiredField)
		}
		if seen[cat.Name] {
			return NewValidationError("priorities", cat.Name, "name",
				fmt.Errorf("%w: duplicate category", ErrInvalidValue))
		}
		seen[cat.Name] = true

		if cat.Score < 0 || cat.Score > 100 {
			return NewValidationError("priorities", cat.Name, "score",
				fmt.Errorf("%w: must be in [0,100], got %d", ErrInvalidValue, cat.Score))
		}
		if cat.Tier < 1 {
			return NewValidationError("priorities", cat.Name, "tier",
				fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, cat.Tier))
		}
		for _, tr := range cat.Triggers {
			if len(tr.AnyOf) == 0 && len(tr.AllOf) == 0 {
				return NewValidationError("priorities", cat.Name, "triggers",
					fmt.Errorf("%w: trigger needs any_of or all_of", ErrInvalidValue))
			}
		}
	}

	if pc.UncategorizedScore < 0 || pc.UncategorizedScore > 100 {
		return NewValidationError("priorities", "", "uncategorized_score",
			fmt.Errorf("%w: must be in [0,100]", ErrInvalidValue))
	}
	return nil
}

func validateViability(vc *ViabilityConfig) error {
	if vc == nil {
		return NewValidationError("viability", "", "", ErrMissingRequiredField)
	}
	if vc.ConfidenceThreshold < 0 || vc.ConfidenceThreshold > 100 {
		return NewValidationError("viability", "", "confidence_threshold",
			fmt.Errorf("%w: must be in [0,100]", ErrInvalidValue))
	}
	if vc.Workers < 1 {
		return NewValidationError("viability", "", "workers",
			fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	return nil
}

func validateLLM(lc *LLMConfig) error {
	if lc == nil {
		return NewValidationError("llm", "", "", ErrMissingRequiredField)
	}
	if lc.BaseURL == "" {
		return NewValidationError("llm", "", "base_url", ErrMissingRequiredField)
	}
	if lc.Model == "" {
		return NewValidationError("llm", "", "model", ErrMissingRequiredField)
	}
	if lc.Temperature < 0 || lc.Temperature > 2 {
		return NewValidationError("llm", "", "temperature",
			fmt.Errorf("%w: must be in [0,2]", ErrInvalidValue))
	}
	if lc.RateLimitPerMin < 1 {
		return NewValidationError("llm", "", "rate_limit_per_min",
			fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if lc.CircuitFailThreshold < 1 {
		return NewValidationError("llm", "", "circuit_fail_threshold",
			fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	return nil
}
