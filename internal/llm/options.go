package llm

const (
	// defaultMaxTokens is the default maximum output tokens per request.
	defaultMaxTokens = 2000

	// defaultMaxRetries is the number of automatic retries on transient
	// errors (429 rate-limit, 5xx server errors). The SDKs handle backoff.
	defaultMaxRetries = 3
)

// DefaultModel returns the default model for a provider name
// ("openai" or "anthropic").
func DefaultModel(provider string) string {
	if provider == "anthropic" {
		return defaultAnthropicModel
	}
	return defaultOpenAIModel
}

// APIKeyEnv returns the environment variable that holds a provider's API key.
func APIKeyEnv(provider string) string {
	if provider == "anthropic" {
		return "ANTHROPIC_API_KEY"
	}
	return "OPENAI_API_KEY"
}

// Option configures a provider constructor. The same options apply to every
// provider; each reads its own environment fallback for the API key.
type Option func(*providerConfig)

type providerConfig struct {
	apiKey     string
	model      string
	maxRetries int
	baseURL    string
}

// WithAPIKey sets the API key. If not provided, the provider reads its
// key environment variable (OPENAI_API_KEY or ANTHROPIC_API_KEY).
func WithAPIKey(key string) Option {
	return func(c *providerConfig) {
		c.apiKey = key
	}
}

// WithModel overrides the default model for all requests.
func WithModel(model string) Option {
	return func(c *providerConfig) {
		if model != "" {
			c.model = model
		}
	}
}

// WithMaxRetries sets the maximum number of retries for transient errors.
func WithMaxRetries(n int) Option {
	return func(c *providerConfig) {
		c.maxRetries = n
	}
}

// WithBaseURL points the provider at a different API endpoint. Tests use
// this to target a local server.
func WithBaseURL(u string) Option {
	return func(c *providerConfig) {
		c.baseURL = u
	}
}
