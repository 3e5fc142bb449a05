package config

import (
	"fmt"
	"strings"
)

// maxTokensCeiling is the largest response budget either provider accepts.
const maxTokensCeiling = 16384

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Provider != "" {
		switch cfg.Provider {
		case ProviderOpenAI, ProviderAnthropic:
			// valid
		default:
			errs = append(errs, fmt.Sprintf("provider: invalid value %q (must be %s or %s)",
				cfg.Provider, ProviderOpenAI, ProviderAnthropic))
		}
	}

	if cfg.Temperature != nil && (*cfg.Temperature < 0 || *cfg.Temperature > 2) {
		errs = append(errs, fmt.Sprintf("temperature: must be between 0.0 and 2.0, got %g", *cfg.Temperature))
	}

	if cfg.MaxTokens < 0 {
		errs = append(errs, fmt.Sprintf("max_tokens: must be non-negative, got %d", cfg.MaxTokens))
	}
	if cfg.MaxTokens > maxTokensCeiling {
		errs = append(errs, fmt.Sprintf("max_tokens: must be at most %d, got %d", maxTokensCeiling, cfg.MaxTokens))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
