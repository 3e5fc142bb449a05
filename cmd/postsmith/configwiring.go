package main

import (
	"fmt"
	"io"
	"os"

	"github.com/postsmith/postsmith/internal/config"
	"github.com/postsmith/postsmith/internal/llm"
	"github.com/postsmith/postsmith/internal/render"
)

// loadSettings resolves generation settings from built-in defaults, the
// global config, the local config, and CLI flags, in increasing precedence.
// Both runChat and runGenerate build an Overrides and pass it here so the
// wiring logic lives in a single place.
func loadSettings(cli config.Overrides) (config.Resolved, error) {
	global, err := config.LoadGlobal()
	if err != nil {
		return config.Resolved{}, fmt.Errorf("loading global config: %w", err)
	}
	local, err := config.Load(".")
	if err != nil {
		return config.Resolved{}, fmt.Errorf("loading config: %w", err)
	}

	merged := config.MergeFiles(global, local)
	if err := config.Validate(merged); err != nil {
		return config.Resolved{}, err
	}

	return config.Merge(merged, cli), nil
}

// newProvider builds the LLM client for the resolved settings. Tests replace
// it to run commands against a mock provider.
var newProvider = func(cfg config.Resolved) (llm.Provider, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return llm.NewOpenAIProvider(llm.WithModel(cfg.Model))
	case config.ProviderAnthropic:
		return llm.NewAnthropicProvider(llm.WithModel(cfg.Model))
	default:
		return nil, exitError(ExitInvalidArgs,
			"postsmith: unknown provider %q (use %s or %s)",
			cfg.Provider, config.ProviderOpenAI, config.ProviderAnthropic)
	}
}

// requireAPIKey checks that the provider's key is present in the environment
// and prints setup instructions to w when it is not.
func requireAPIKey(w io.Writer, provider string) error {
	env := llm.APIKeyEnv(provider)
	if os.Getenv(env) != "" {
		return nil
	}

	render.Warn(w, "No API key found for provider %q.", provider)
	_, _ = fmt.Fprintf(w, "\nSet %s in your environment or in a .env file:\n", env)
	_, _ = fmt.Fprintf(w, "  echo '%s=<your key>' >> .env\n\n", env)
	_, _ = fmt.Fprintln(w, "Run 'postsmith init' for guided setup.")

	return &exitCodeError{code: ExitInvalidArgs}
}
