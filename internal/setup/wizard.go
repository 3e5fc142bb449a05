package setup

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/postsmith/postsmith/internal/config"
	"github.com/postsmith/postsmith/internal/llm"
)

// Result holds the user's choices from the interactive wizard.
type Result struct {
	Provider     string
	Model        string
	DraftDir     string
	KeyValid     bool
	ConfigAction Action
}

// RunWizard runs the interactive wizard, prompting for provider, model,
// draft directory, and an API key to validate. It returns a Result with all
// selections; writing the config file is Run's job.
func RunWizard(r io.Reader, w io.Writer) (*Result, error) {
	scanner := bufio.NewScanner(r)

	result := &Result{
		Provider: config.DefaultProvider,
		DraftDir: config.DefaultDraftDir,
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Welcome to postsmith init!")
	_, _ = fmt.Fprintln(w)

	// 1. Provider.
	_, _ = fmt.Fprintf(w, "  Provider (%s/%s) [%s]: ",
		config.ProviderOpenAI, config.ProviderAnthropic, result.Provider)
	result.Provider = promptProvider(scanner, result.Provider)

	// 2. Model.
	defaultModel := llm.DefaultModel(result.Provider)
	_, _ = fmt.Fprintf(w, "  Model [%s]: ", defaultModel)
	result.Model = promptString(scanner, defaultModel)
	if result.Provider == config.ProviderOpenAI && !llm.IsCompatibleOpenAIModel(result.Model) {
		_, _ = fmt.Fprintf(w, "  Note: %s is not verified for structured outputs; %s is the safe default.\n",
			result.Model, defaultModel)
	}

	// 3. Draft directory.
	_, _ = fmt.Fprintf(w, "  Draft directory [%s]: ", result.DraftDir)
	result.DraftDir = promptString(scanner, result.DraftDir)
	_, _ = fmt.Fprintln(w)

	// 4. API key validation. Keys live in the environment, never in config.
	envVar := llm.APIKeyEnv(result.Provider)
	if key := os.Getenv(envVar); key != "" {
		_, _ = fmt.Fprintf(w, "  Found %s in the environment. Validating... ", envVar)
		if validateKey(result.Provider, key) {
			_, _ = fmt.Fprintln(w, "valid!")
			result.KeyValid = true
		} else {
			_, _ = fmt.Fprintln(w, "invalid or expired. Update it before generating posts.")
		}
	} else {
		_, _ = fmt.Fprintf(w, "  API key (%s) - enter to validate, or press Enter to skip: ", envVar)
		key := promptString(scanner, "")
		if key != "" {
			_, _ = fmt.Fprintf(w, "  Validating key... ")
			if validateKey(result.Provider, key) {
				_, _ = fmt.Fprintln(w, "valid!")
				_, _ = fmt.Fprintf(w, "  Add it to .env as %s=<key> so postsmith finds it.\n", envVar)
				result.KeyValid = true
			} else {
				_, _ = fmt.Fprintf(w, "invalid or expired. Set %s later to generate posts.\n", envVar)
			}
		} else {
			_, _ = fmt.Fprintf(w, "  Skipped. Set %s before generating posts.\n", envVar)
		}
	}

	_, _ = fmt.Fprintln(w)
	return result, nil
}

// promptProvider reads a provider choice. Unrecognized input keeps the
// default; numeric shortcuts match the prompt order.
func promptProvider(scanner *bufio.Scanner, defaultVal string) string {
	if !scanner.Scan() {
		return defaultVal
	}
	switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
	case config.ProviderOpenAI, "1":
		return config.ProviderOpenAI
	case config.ProviderAnthropic, "2":
		return config.ProviderAnthropic
	default:
		return defaultVal
	}
}

// promptString reads a string response. Empty input returns the default.
func promptString(scanner *bufio.Scanner, defaultVal string) string {
	if !scanner.Scan() {
		return defaultVal
	}
	input := strings.TrimSpace(scanner.Text())
	if input == "" {
		return defaultVal
	}
	return input
}

// validateKey tests an API key by listing the provider's models.
func validateKey(provider, key string) bool {
	if provider == config.ProviderAnthropic {
		return validateAnthropicKey(key)
	}
	return validateOpenAIKey(key)
}

// validateOpenAIKey tests an OpenAI API key by listing models.
func validateOpenAIKey(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.openai.com/v1/models", nil)
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close() //nolint:errcheck // validation only
	return resp.StatusCode == http.StatusOK
}

// validateAnthropicKey tests an Anthropic API key by listing models.
func validateAnthropicKey(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.anthropic.com/v1/models", nil)
	if err != nil {
		return false
	}
	req.Header.Set("x-api-key", key)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close() //nolint:errcheck // validation only
	return resp.StatusCode == http.StatusOK
}

// httpClient is the HTTP client used for key validation.
// Tests can replace this to avoid real network calls.
var httpClient HTTPClient = &http.Client{Timeout: 10 * time.Second}

// HTTPClient is an interface for HTTP requests, allowing test injection.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
