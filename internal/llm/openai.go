// Copyright 2026 The Postsmith Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// defaultOpenAIModel is the model used when no override is provided. It is
// the snapshot verified for strict structured outputs.
const defaultOpenAIModel = "gpt-4o-2024-08-06"

// openAICompatibleModels lists models known to honor json_schema response
// formats. Other models may work but are not verified.
var openAICompatibleModels = []string{
	"gpt-4o-2024-08-06",
	"gpt-4o",
	"gpt-4o-mini",
	"gpt-4-turbo",
}

// OpenAIProvider implements Provider using the official OpenAI SDK. Schema
// requests use the chat completions json_schema response format, so the API
// itself constrains the reply shape.
type OpenAIProvider struct {
	client     openai.Client
	model      string
	maxRetries int
}

// Compile-time check that OpenAIProvider satisfies the Provider interface.
var _ Provider = (*OpenAIProvider)(nil)

// NewOpenAIProvider creates a new OpenAI provider.
// It returns an error if no API key is available (neither via option nor env).
func NewOpenAIProvider(opts ...Option) (*OpenAIProvider, error) {
	cfg := providerConfig{
		model:      defaultOpenAIModel,
		maxRetries: defaultMaxRetries,
	}
	for _, o := range opts {
		o(&cfg)
	}

	apiKey := cfg.apiKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("llm: OPENAI_API_KEY not set and no API key provided")
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(cfg.maxRetries),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}

	if !IsCompatibleOpenAIModel(cfg.model) {
		slog.Warn("model is not verified for structured outputs", "model", cfg.model)
	}

	return &OpenAIProvider{
		client:     openai.NewClient(clientOpts...),
		model:      cfg.model,
		maxRetries: cfg.maxRetries,
	}, nil
}

// IsCompatibleOpenAIModel reports whether the model is on the verified list
// for json_schema response formats.
func IsCompatibleOpenAIModel(model string) bool {
	for _, m := range openAICompatibleModels {
		if model == m {
			return true
		}
	}
	return false
}

// Complete sends a completion request to the Chat Completions API.
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
	}

	if req.SystemPrompt != "" {
		params.Messages = append(params.Messages, openai.SystemMessage(req.SystemPrompt))
	}
	params.Messages = append(params.Messages, openai.UserMessage(req.Prompt))

	maxTokens := int64(defaultMaxTokens)
	if req.MaxTokens > 0 {
		maxTokens = int64(req.MaxTokens)
	}
	params.MaxTokens = openai.Int(maxTokens)

	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	if req.Schema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        req.Schema.Name,
					Description: openai.String(req.Schema.Description),
					Schema:      req.Schema.Schema,
					Strict:      openai.Bool(req.Schema.Strict),
				},
			},
		}
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, p.classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: empty response from model %s", model)
	}

	choice := resp.Choices[0]
	if choice.Message.Refusal != "" {
		return nil, fmt.Errorf("openai: %w: %s", ErrRefused, choice.Message.Refusal)
	}
	// A truncated reply only matters for schema requests, where a partial
	// JSON document is unusable.
	if req.Schema != nil && choice.FinishReason == "length" {
		return nil, fmt.Errorf("openai: %w: response truncated at %d tokens", ErrTokenLimit, maxTokens)
	}

	return &Response{
		Content: choice.Message.Content,
		Model:   resp.Model,
		Usage: Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
	}, nil
}

// CheckConnection verifies the API key and network path with a minimal
// completion request.
func (p *OpenAIProvider) CheckConnection(ctx context.Context) error {
	_, err := p.Complete(ctx, Request{Prompt: "ping", MaxTokens: 5})
	return err
}

// classifyError maps SDK errors onto the sentinel categories. The quota
// check runs before the status check because quota errors also arrive with
// status 429.
func (p *OpenAIProvider) classifyError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch {
		case apierr.Code == "invalid_api_key" || apierr.StatusCode == http.StatusUnauthorized:
			return fmt.Errorf("openai: %w", ErrInvalidAPIKey)
		case apierr.Code == "insufficient_quota":
			return fmt.Errorf("openai: %w", ErrQuotaExhausted)
		case apierr.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("openai: %w", ErrRateLimited)
		case apierr.Code == "context_length_exceeded" ||
			strings.Contains(apierr.Message, "maximum context length"):
			return fmt.Errorf("openai: %w", ErrTokenLimit)
		}
		return fmt.Errorf("openai: api error (status %d): %s", apierr.StatusCode, apierr.Message)
	}

	if isConnectionError(err) {
		return fmt.Errorf("openai: %w: %v", ErrConnection, err)
	}
	return fmt.Errorf("openai: completion failed: %w", err)
}

// Model returns the default model configured for this provider.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// MaxRetries returns the configured max retry count.
func (p *OpenAIProvider) MaxRetries() int {
	return p.maxRetries
}
