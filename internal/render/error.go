// Copyright 2026 The Postsmith Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/postsmith/postsmith/internal/llm"
	"github.com/postsmith/postsmith/internal/post"
	"github.com/postsmith/postsmith/internal/redact"
)

// Error writes a user-facing explanation of err with recovery hints.
// Provider errors map to fixed messages; anything unrecognized is printed
// redacted so secret values never reach the terminal.
func Error(w io.Writer, err error) {
	var result *post.Result
	if errors.As(err, &result) {
		_, _ = colorRed.Fprintln(w, "The generated post did not pass validation:")
		for _, ve := range result.Errors {
			_, _ = fmt.Fprintf(w, "  - %s: %s\n", ve.Field, ve.Message)
			if ve.Suggestion != "" {
				_, _ = colorDim.Fprintf(w, "    %s\n", ve.Suggestion)
			}
		}
		hint(w, "generate again; results vary between attempts")
		return
	}

	headline, hints := classify(err)
	_, _ = colorRed.Fprintln(w, headline)
	for _, h := range hints {
		hint(w, h)
	}
}

// hint writes a single recovery suggestion.
func hint(w io.Writer, s string) {
	_, _ = colorYellow.Fprintf(w, "  try: %s\n", s)
}

// classify maps an error to a headline plus recovery hints.
func classify(err error) (string, []string) {
	switch {
	case errors.Is(err, llm.ErrInvalidAPIKey):
		return "Your API key was rejected.", []string{
			"check the key in .env or your environment",
			"run 'postsmith init' to set up credentials again",
		}
	case errors.Is(err, llm.ErrQuotaExhausted):
		return "Your account is out of credit.", []string{
			"review your plan and billing on the provider dashboard",
			"switch providers with --provider",
		}
	case errors.Is(err, llm.ErrRateLimited):
		return "The provider is rate limiting requests.", []string{
			"wait a minute and retry",
		}
	case errors.Is(err, llm.ErrTokenLimit):
		return "The request exceeded the model's token limit.", []string{
			"shorten the idea text",
			"raise --max-tokens if the reply was cut off",
		}
	case errors.Is(err, llm.ErrRefused):
		return "The model declined to write this post.", []string{
			"rephrase the idea and try again",
		}
	case errors.Is(err, llm.ErrConnection):
		return "Could not reach the provider.", []string{
			"check your network connection",
			"retry in a few seconds",
		}
	default:
		return redact.String(fmt.Sprintf("Something went wrong: %v", err)), nil
	}
}
