// Copyright 2026 The Postsmith Authors
// SPDX-License-Identifier: MIT

package generator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/postsmith/postsmith/internal/generator"
	"github.com/postsmith/postsmith/internal/llm"
	"github.com/postsmith/postsmith/internal/post"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validJSON is a provider reply that passes schema and field rules.
const validJSON = `{
	"title": "Lessons from a production incident",
	"content": "Last week our checkout service fell over during a traffic spike. Here is what we changed to keep it from happening again, and what we learned along the way.",
	"hashtags": ["DevOps", "Reliability", "Engineering"],
	"category": "technology"
}`

func TestGenerate_ValidPost(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validJSON})
	gen := generator.New(mock, generator.DefaultSettings())

	p, err := gen.Generate(context.Background(), "what we learned from an outage")
	require.NoError(t, err)
	assert.Equal(t, "Lessons from a production incident", p.Title)
	assert.Equal(t, "Technology", p.Category)
}

func TestGenerate_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validJSON})
	gen := generator.New(mock, generator.Settings{
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   2000,
	})

	_, err := gen.Generate(context.Background(), "remote onboarding tips")
	require.NoError(t, err)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	req := calls[0]

	assert.Equal(t, "gpt-4o-mini", req.Model)
	assert.Equal(t, 2000, req.MaxTokens)
	require.NotNil(t, req.Temperature)
	assert.Equal(t, 0.7, *req.Temperature)

	assert.Contains(t, req.Prompt, "remote onboarding tips")
	assert.Contains(t, req.SystemPrompt, "LinkedIn")
	assert.Contains(t, req.SystemPrompt, "Hashtags")

	require.NotNil(t, req.Schema)
	assert.Equal(t, post.SchemaName, req.Schema.Name)
	assert.True(t, req.Schema.Strict)
	assert.Equal(t, "object", req.Schema.Schema["type"])
}

func TestGenerate_EmptyIdea(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validJSON})
	gen := generator.New(mock, generator.DefaultSettings())

	_, err := gen.Generate(context.Background(), "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "idea must not be empty")
	assert.Empty(t, mock.Calls(), "no request should be sent for an empty idea")
}

func TestGenerate_ProviderErrorPassesThrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: llm.ErrRateLimited})
	gen := generator.New(mock, generator.DefaultSettings())

	_, err := gen.Generate(context.Background(), "an idea")
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrRateLimited)
}

func TestGenerate_MalformedReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "not json at all"})
	gen := generator.New(mock, generator.DefaultSettings())

	_, err := gen.Generate(context.Background(), "an idea")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation")
}

func TestGenerate_RuleBreakingReply(t *testing.T) {
	raw := `{
		"title": "Lessons from a production incident",
		"content": "Last week our checkout service fell over during a traffic spike. Here is what we changed to keep it from happening again.",
		"hashtags": ["DevOps", "devops", "Engineering"],
		"category": "technology"
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := generator.New(mock, generator.DefaultSettings())

	_, err := gen.Generate(context.Background(), "an idea")
	require.Error(t, err)

	var res *post.Result
	require.True(t, errors.As(err, &res), "validation failures should carry the full result")
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, "duplicate")
}

func TestGenerate_CancelledContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validJSON})
	gen := generator.New(mock, generator.DefaultSettings())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, "an idea")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckConnection(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := generator.New(mock, generator.DefaultSettings())
	assert.NoError(t, gen.CheckConnection(context.Background()))

	mock.ConnErr = llm.ErrInvalidAPIKey
	assert.ErrorIs(t, gen.CheckConnection(context.Background()), llm.ErrInvalidAPIKey)
}

func TestDefaultSettings(t *testing.T) {
	s := generator.DefaultSettings()
	assert.Equal(t, 0.7, s.Temperature)
	assert.Equal(t, 2000, s.MaxTokens)
	assert.Empty(t, s.Model)
}
