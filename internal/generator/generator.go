// Copyright 2026 The Postsmith Authors
// SPDX-License-Identifier: MIT

// Package generator turns a short idea into a complete, validated LinkedIn
// post by prompting an LLM provider with the fixed post schema.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/postsmith/postsmith/internal/llm"
	"github.com/postsmith/postsmith/internal/post"
)

// Settings control how posts are requested from the provider.
type Settings struct {
	// Model overrides the provider default when non-empty.
	Model string

	// Temperature is the sampling temperature sent with every request.
	Temperature float64

	// MaxTokens is the response budget. Zero means the provider default.
	MaxTokens int
}

// DefaultSettings returns the values used when the caller does not override
// them.
func DefaultSettings() Settings {
	return Settings{
		Temperature: 0.7,
		MaxTokens:   2000,
	}
}

// Generator requests schema-constrained posts from a Provider and refuses
// to hand back anything that fails validation.
type Generator struct {
	provider llm.Provider
	settings Settings
}

// New creates a Generator backed by the given provider.
func New(provider llm.Provider, settings Settings) *Generator {
	return &Generator{
		provider: provider,
		settings: settings,
	}
}

// Generate produces a validated post from the user's idea.
//
// Provider failures come back wrapped around the llm sentinel errors so
// callers can map them to user-facing messages. A structurally broken or
// rule-breaking reply surfaces as a *post.Result via errors.As.
func (g *Generator) Generate(ctx context.Context, idea string) (*post.Post, error) {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return nil, errors.New("generator: idea must not be empty")
	}

	temp := g.settings.Temperature
	req := llm.Request{
		Prompt:       userPrompt(idea),
		SystemPrompt: systemPrompt,
		Model:        g.settings.Model,
		MaxTokens:    g.settings.MaxTokens,
		Temperature:  &temp,
		Schema: &llm.ResponseSchema{
			Name:        post.SchemaName,
			Description: post.SchemaDescription,
			Schema:      post.Schema(),
			Strict:      true,
		},
	}

	slog.Debug("requesting post", "model", g.settings.Model, "idea_chars", len(idea))

	resp, err := g.provider.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	slog.Debug("provider responded",
		"model", resp.Model,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens)

	p, err := post.Decode([]byte(resp.Content))
	if err != nil {
		return nil, fmt.Errorf("generated post failed validation: %w", err)
	}
	return p, nil
}

// CheckConnection verifies the provider is reachable with the configured
// credentials before a session starts.
func (g *Generator) CheckConnection(ctx context.Context) error {
	return g.provider.CheckConnection(ctx)
}
