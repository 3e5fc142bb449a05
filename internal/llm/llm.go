// Package llm provides a provider-agnostic client interface for
// schema-constrained chat completions, with implementations for the OpenAI
// and Anthropic APIs.
package llm

import "context"

// Provider abstracts an LLM API behind a synchronous completion method.
type Provider interface {
	// Complete sends a prompt to the LLM and returns the response.
	// Implementations must respect context cancellation and deadlines.
	Complete(ctx context.Context, req Request) (*Response, error)

	// CheckConnection performs a minimal round trip to verify the API key
	// and network path before a session starts.
	CheckConnection(ctx context.Context) error
}

// Request describes a single completion request.
type Request struct {
	// Prompt is the user message to send.
	Prompt string

	// Model overrides the provider's default model. If empty, the provider
	// uses its configured default.
	Model string

	// MaxTokens limits the response length. If zero, the provider uses its
	// own default.
	MaxTokens int

	// Temperature controls randomness. If nil, the provider uses its default.
	Temperature *float64

	// SystemPrompt sets the system instruction for the completion.
	SystemPrompt string

	// Schema, when set, constrains the response to a JSON document matching
	// the given JSON Schema. Providers without native schema support embed
	// the schema in the prompt instead.
	Schema *ResponseSchema
}

// ResponseSchema describes the JSON Schema a response must conform to.
type ResponseSchema struct {
	// Name identifies the schema to the API.
	Name string

	// Description tells the model what the document represents.
	Description string

	// Schema is the JSON Schema document itself.
	Schema map[string]any

	// Strict requests server-side enforcement where the API supports it.
	Strict bool
}

// Response holds the result of a completion call.
type Response struct {
	// Content is the text returned by the model. For schema requests this
	// is the raw JSON document.
	Content string

	// Model is the model that actually served the request (may differ from
	// the requested model if the provider remapped it).
	Model string

	// Usage reports token consumption.
	Usage Usage
}

// Usage tracks input and output token counts for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}
