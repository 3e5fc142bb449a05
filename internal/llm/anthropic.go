package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// defaultAnthropicModel is the model used when no override is provided.
const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

// AnthropicProvider implements Provider using the official Anthropic SDK.
// The Messages API has no json_schema response format, so schema requests
// embed the schema in the system prompt and the reply is trimmed down to
// its JSON payload.
type AnthropicProvider struct {
	client     anthropic.Client
	model      string
	maxRetries int
}

// Compile-time check that AnthropicProvider satisfies the Provider interface.
var _ Provider = (*AnthropicProvider)(nil)

// NewAnthropicProvider creates a new Anthropic provider.
// It returns an error if no API key is available (neither via option nor env).
func NewAnthropicProvider(opts ...Option) (*AnthropicProvider, error) {
	cfg := providerConfig{
		model:      defaultAnthropicModel,
		maxRetries: defaultMaxRetries,
	}
	for _, o := range opts {
		o(&cfg)
	}

	apiKey := cfg.apiKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("llm: ANTHROPIC_API_KEY not set and no API key provided")
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(cfg.maxRetries),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}

	return &AnthropicProvider{
		client:     anthropic.NewClient(clientOpts...),
		model:      cfg.model,
		maxRetries: cfg.maxRetries,
	}, nil
}

// Complete sends a completion request to the Anthropic Messages API.
func (p *AnthropicProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	maxTokens := int64(defaultMaxTokens)
	if req.MaxTokens > 0 {
		maxTokens = int64(req.MaxTokens)
	}

	system := req.SystemPrompt
	if req.Schema != nil {
		instr, err := schemaInstruction(req.Schema)
		if err != nil {
			return nil, fmt.Errorf("anthropic: %w", err)
		}
		if system != "" {
			system += "\n\n"
		}
		system += instr
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}

	if system != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: system},
		}
	}

	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, p.classifyError(err)
	}

	switch msg.StopReason {
	case "refusal":
		return nil, fmt.Errorf("anthropic: %w", ErrRefused)
	case "max_tokens":
		if req.Schema != nil {
			return nil, fmt.Errorf("anthropic: %w: response truncated at %d tokens", ErrTokenLimit, maxTokens)
		}
	}

	// Extract text from content blocks.
	var content string
	for _, block := range msg.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			content += variant.Text
		}
	}

	if req.Schema != nil {
		content = extractJSON(content)
	}

	return &Response{
		Content: content,
		Model:   string(msg.Model),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
		},
	}, nil
}

// CheckConnection verifies the API key and network path with a minimal
// completion request.
func (p *AnthropicProvider) CheckConnection(ctx context.Context) error {
	_, err := p.Complete(ctx, Request{Prompt: "ping", MaxTokens: 5})
	return err
}

// classifyError maps SDK errors onto the sentinel categories. Anthropic
// reports exhausted credit as a 400 invalid_request_error, so that case is
// matched on the message body.
func (p *AnthropicProvider) classifyError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		body := strings.ToLower(apierr.Error())
		switch {
		case apierr.StatusCode == http.StatusUnauthorized || apierr.StatusCode == http.StatusForbidden:
			return fmt.Errorf("anthropic: %w", ErrInvalidAPIKey)
		case strings.Contains(body, "credit balance"):
			return fmt.Errorf("anthropic: %w", ErrQuotaExhausted)
		case apierr.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("anthropic: %w", ErrRateLimited)
		case strings.Contains(body, "prompt is too long"):
			return fmt.Errorf("anthropic: %w", ErrTokenLimit)
		}
		return fmt.Errorf("anthropic: api error (status %d)", apierr.StatusCode)
	}

	if isConnectionError(err) {
		return fmt.Errorf("anthropic: %w: %v", ErrConnection, err)
	}
	return fmt.Errorf("anthropic: completion failed: %w", err)
}

// Model returns the default model configured for this provider.
func (p *AnthropicProvider) Model() string {
	return p.model
}

// MaxRetries returns the configured max retry count.
func (p *AnthropicProvider) MaxRetries() int {
	return p.maxRetries
}

// schemaInstruction renders the response-format instruction embedded in the
// system prompt for APIs without native schema support.
func schemaInstruction(s *ResponseSchema) (string, error) {
	doc, err := json.Marshal(s.Schema)
	if err != nil {
		return "", fmt.Errorf("marshaling response schema: %w", err)
	}

	var b strings.Builder
	b.WriteString("Respond with ONLY a JSON object, no prose and no markdown fences. ")
	fmt.Fprintf(&b, "The object is a %s: %s.\n", s.Name, s.Description)
	b.WriteString("It must conform to this JSON Schema:\n")
	b.Write(doc)
	return b.String(), nil
}

// extractJSON strips markdown fences and any surrounding chatter from a
// reply, leaving the outermost JSON object.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
