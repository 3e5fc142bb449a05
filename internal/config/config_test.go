package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig_YAMLRoundTrip(t *testing.T) {
	temp := 0.9
	original := &Config{
		Provider:    ProviderAnthropic,
		Model:       "claude-sonnet-4-5-20250929",
		Temperature: &temp,
		MaxTokens:   1500,
		DraftDir:    "out/drafts",
	}

	data, err := yaml.Marshal(original)
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	assert.Equal(t, original.Provider, decoded.Provider)
	assert.Equal(t, original.Model, decoded.Model)
	require.NotNil(t, decoded.Temperature)
	assert.InDelta(t, 0.9, *decoded.Temperature, 0.001)
	assert.Equal(t, original.MaxTokens, decoded.MaxTokens)
	assert.Equal(t, original.DraftDir, decoded.DraftDir)
}

func TestConfig_TemperatureNilDistinct(t *testing.T) {
	// When temperature is not set in YAML, it should unmarshal as nil so a
	// configured 0.0 can be told apart from "not configured".
	data := []byte("provider: openai\n")

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Nil(t, cfg.Temperature)

	data = []byte("provider: openai\ntemperature: 0\n")
	var cfg2 Config
	require.NoError(t, yaml.Unmarshal(data, &cfg2))
	require.NotNil(t, cfg2.Temperature)
	assert.Zero(t, *cfg2.Temperature)
}

func TestConfig_OmitsEmptyFields(t *testing.T) {
	data, err := yaml.Marshal(&Config{Provider: ProviderOpenAI})
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "provider: openai")
	assert.NotContains(t, out, "model")
	assert.NotContains(t, out, "temperature")
	assert.NotContains(t, out, "max_tokens")
	assert.NotContains(t, out, "draft_dir")
}
