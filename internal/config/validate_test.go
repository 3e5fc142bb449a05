// Copyright 2026 The Postsmith Authors
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	temp := 0.7
	cfg := &Config{
		Provider:    ProviderAnthropic,
		Model:       "claude-sonnet-4-5-20250929",
		Temperature: &temp,
		MaxTokens:   2000,
		DraftDir:    "drafts",
	}
	require.NoError(t, Validate(cfg))
}

func TestValidate_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, Validate(cfg))
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{Provider: "gemini"}
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider")
	assert.Contains(t, err.Error(), "gemini")
}

func TestValidate_TemperatureOutOfRange(t *testing.T) {
	high := 2.5
	err := Validate(&Config{Temperature: &high})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temperature: must be between 0.0 and 2.0")

	low := -0.1
	err = Validate(&Config{Temperature: &low})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temperature")
}

func TestValidate_TemperatureBoundsInclusive(t *testing.T) {
	zero := 0.0
	assert.NoError(t, Validate(&Config{Temperature: &zero}))

	two := 2.0
	assert.NoError(t, Validate(&Config{Temperature: &two}))
}

func TestValidate_NegativeMaxTokens(t *testing.T) {
	err := Validate(&Config{MaxTokens: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_tokens: must be non-negative")
}

func TestValidate_MaxTokensCeiling(t *testing.T) {
	err := Validate(&Config{MaxTokens: 100000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_tokens: must be at most 16384")

	assert.NoError(t, Validate(&Config{MaxTokens: 16384}))
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	temp := 3.0
	cfg := &Config{
		Provider:    "gemini",
		Temperature: &temp,
		MaxTokens:   -5,
	}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
	assert.Contains(t, err.Error(), "provider")
	assert.Contains(t, err.Error(), "temperature")
	assert.Contains(t, err.Error(), "max_tokens")
}
