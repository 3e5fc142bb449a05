package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_CLIOverridesFile(t *testing.T) {
	fileTemp := 0.3
	fileCfg := &Config{
		Provider:    ProviderAnthropic,
		Model:       "claude-sonnet-4-5-20250929",
		Temperature: &fileTemp,
		MaxTokens:   1000,
	}
	cliTemp := 1.1
	cli := Overrides{
		Provider:    ProviderOpenAI,
		Model:       "gpt-4o-mini",
		Temperature: &cliTemp,
		MaxTokens:   500,
	}

	res := Merge(fileCfg, cli)
	assert.Equal(t, ProviderOpenAI, res.Provider)
	assert.Equal(t, "gpt-4o-mini", res.Model)
	assert.InDelta(t, 1.1, res.Temperature, 0.001)
	assert.Equal(t, 500, res.MaxTokens)
}

func TestMerge_FileFillsInDefaults(t *testing.T) {
	temp := 0.3
	fileCfg := &Config{
		Provider:    ProviderAnthropic,
		Temperature: &temp,
		MaxTokens:   1000,
		DraftDir:    "posts",
	}

	res := Merge(fileCfg, Overrides{})
	assert.Equal(t, ProviderAnthropic, res.Provider)
	assert.Empty(t, res.Model, "provider default model applies when unset")
	assert.InDelta(t, 0.3, res.Temperature, 0.001)
	assert.Equal(t, 1000, res.MaxTokens)
	assert.Equal(t, "posts", res.DraftDir)
}

func TestMerge_BuiltInDefaults(t *testing.T) {
	res := Merge(&Config{}, Overrides{})
	assert.Equal(t, DefaultProvider, res.Provider)
	assert.Empty(t, res.Model)
	assert.InDelta(t, DefaultTemperature, res.Temperature, 0.001)
	assert.Equal(t, DefaultMaxTokens, res.MaxTokens)
	assert.Equal(t, DefaultDraftDir, res.DraftDir)
}

func TestMerge_NilFileConfig(t *testing.T) {
	res := Merge(nil, Overrides{Provider: ProviderAnthropic})
	assert.Equal(t, ProviderAnthropic, res.Provider)
	assert.InDelta(t, DefaultTemperature, res.Temperature, 0.001)
}

func TestMerge_ZeroTemperatureRespected(t *testing.T) {
	// temperature: 0 in the file is a deliberate choice, not an unset field.
	zero := 0.0
	res := Merge(&Config{Temperature: &zero}, Overrides{})
	assert.Zero(t, res.Temperature)

	res = Merge(&Config{Temperature: &zero}, Overrides{Temperature: &zero})
	assert.Zero(t, res.Temperature)
}

func TestMergeFiles_LocalOverridesGlobal(t *testing.T) {
	globalTemp := 0.5
	global := &Config{
		Provider:    ProviderOpenAI,
		Model:       "gpt-4o",
		Temperature: &globalTemp,
		DraftDir:    "global-drafts",
	}
	local := &Config{
		Provider: ProviderAnthropic,
		DraftDir: "local-drafts",
	}

	merged := MergeFiles(global, local)
	assert.Equal(t, ProviderAnthropic, merged.Provider)
	assert.Equal(t, "gpt-4o", merged.Model, "unset local field keeps global value")
	require.NotNil(t, merged.Temperature)
	assert.InDelta(t, 0.5, *merged.Temperature, 0.001)
	assert.Equal(t, "local-drafts", merged.DraftDir)
}

func TestMergeFiles_EmptyLocal(t *testing.T) {
	global := &Config{Provider: ProviderAnthropic, MaxTokens: 800}

	merged := MergeFiles(global, &Config{})
	assert.Equal(t, ProviderAnthropic, merged.Provider)
	assert.Equal(t, 800, merged.MaxTokens)
}

func TestMergeFiles_DoesNotMutateInputs(t *testing.T) {
	global := &Config{Provider: ProviderOpenAI}
	local := &Config{Provider: ProviderAnthropic}

	_ = MergeFiles(global, local)
	assert.Equal(t, ProviderOpenAI, global.Provider)
	assert.Equal(t, ProviderAnthropic, local.Provider)
}
