// Package config handles .postsmith.yaml configuration files.
package config

// Config represents the contents of a .postsmith.yaml file.
type Config struct {
	Provider    string   `yaml:"provider,omitempty"`
	Model       string   `yaml:"model,omitempty"`
	Temperature *float64 `yaml:"temperature,omitempty"`
	MaxTokens   int      `yaml:"max_tokens,omitempty"`
	DraftDir    string   `yaml:"draft_dir,omitempty"`
}

// Supported provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Defaults applied when neither the CLI nor a config file sets a value.
const (
	DefaultProvider    = ProviderOpenAI
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
	DefaultDraftDir    = "drafts"
)

// FileName is the expected config file name in the working directory.
const FileName = ".postsmith.yaml"
