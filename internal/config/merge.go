package config

// Overrides carries generation settings provided on the command line.
// Zero-value fields fall through to file config, then to defaults.
type Overrides struct {
	Provider    string
	Model       string
	Temperature *float64
	MaxTokens   int
	DraftDir    string
}

// Resolved is the effective configuration after CLI flags, config file, and
// built-in defaults have been applied, in that order of precedence.
type Resolved struct {
	Provider    string
	Model       string
	Temperature float64
	MaxTokens   int
	DraftDir    string
}

// Merge combines file-based config with CLI-provided overrides.
// CLI values take precedence; zero-value CLI fields fall through to file
// config, then to the package defaults. An empty Model stays empty so the
// provider default applies.
func Merge(fileCfg *Config, cli Overrides) Resolved {
	res := Resolved{
		Provider:    DefaultProvider,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		DraftDir:    DefaultDraftDir,
	}

	if fileCfg != nil {
		if fileCfg.Provider != "" {
			res.Provider = fileCfg.Provider
		}
		if fileCfg.Model != "" {
			res.Model = fileCfg.Model
		}
		if fileCfg.Temperature != nil {
			res.Temperature = *fileCfg.Temperature
		}
		if fileCfg.MaxTokens > 0 {
			res.MaxTokens = fileCfg.MaxTokens
		}
		if fileCfg.DraftDir != "" {
			res.DraftDir = fileCfg.DraftDir
		}
	}

	if cli.Provider != "" {
		res.Provider = cli.Provider
	}
	if cli.Model != "" {
		res.Model = cli.Model
	}
	if cli.Temperature != nil {
		res.Temperature = *cli.Temperature
	}
	if cli.MaxTokens > 0 {
		res.MaxTokens = cli.MaxTokens
	}
	if cli.DraftDir != "" {
		res.DraftDir = cli.DraftDir
	}

	return res
}

// MergeFiles overlays a local config on top of a global one. Local values
// take precedence; unset local fields keep the global value.
func MergeFiles(global, local *Config) *Config {
	merged := *global

	if local.Provider != "" {
		merged.Provider = local.Provider
	}
	if local.Model != "" {
		merged.Model = local.Model
	}
	if local.Temperature != nil {
		merged.Temperature = local.Temperature
	}
	if local.MaxTokens > 0 {
		merged.MaxTokens = local.MaxTokens
	}
	if local.DraftDir != "" {
		merged.DraftDir = local.DraftDir
	}

	return &merged
}
