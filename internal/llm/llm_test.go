// Copyright 2026 The Postsmith Authors
// SPDX-License-Identifier: MIT

package llm_test

import (
	"testing"

	"github.com/postsmith/postsmith/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProviderInterfaceCompliance verifies that all provider types satisfy
// the Provider interface at compile time. The var _ assignments above each
// type already do this, but this test makes it explicit and documents the
// contract in test output.
func TestProviderInterfaceCompliance(t *testing.T) {
	t.Run("MockProvider implements Provider", func(t *testing.T) {
		var p llm.Provider = llm.NewMockProvider()
		assert.NotNil(t, p)
	})

	t.Run("OpenAIProvider implements Provider", func(t *testing.T) {
		p, err := llm.NewOpenAIProvider(llm.WithAPIKey("test-key"))
		require.NoError(t, err)
		var _ llm.Provider = p
	})

	t.Run("AnthropicProvider implements Provider", func(t *testing.T) {
		p, err := llm.NewAnthropicProvider(llm.WithAPIKey("test-key"))
		require.NoError(t, err)
		var _ llm.Provider = p
	})
}

func TestRequestZeroValue(t *testing.T) {
	var req llm.Request
	assert.Empty(t, req.Prompt)
	assert.Empty(t, req.Model)
	assert.Zero(t, req.MaxTokens)
	assert.Nil(t, req.Temperature)
	assert.Empty(t, req.SystemPrompt)
	assert.Nil(t, req.Schema)
}

func TestResponseZeroValue(t *testing.T) {
	var resp llm.Response
	assert.Empty(t, resp.Content)
	assert.Empty(t, resp.Model)
	assert.Zero(t, resp.Usage.InputTokens)
	assert.Zero(t, resp.Usage.OutputTokens)
}

func TestDefaultModel(t *testing.T) {
	assert.Equal(t, "gpt-4o-2024-08-06", llm.DefaultModel("openai"))
	assert.Equal(t, "claude-sonnet-4-5-20250929", llm.DefaultModel("anthropic"))
	assert.Equal(t, "gpt-4o-2024-08-06", llm.DefaultModel(""), "unknown providers fall back to the OpenAI default")
}

func TestAPIKeyEnv(t *testing.T) {
	assert.Equal(t, "OPENAI_API_KEY", llm.APIKeyEnv("openai"))
	assert.Equal(t, "ANTHROPIC_API_KEY", llm.APIKeyEnv("anthropic"))
	assert.Equal(t, "OPENAI_API_KEY", llm.APIKeyEnv(""))
}
