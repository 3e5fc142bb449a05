// Copyright 2026 The Postsmith Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/postsmith/postsmith/internal/config"
	"github.com/postsmith/postsmith/internal/draft"
	"github.com/postsmith/postsmith/internal/generator"
	"github.com/postsmith/postsmith/internal/post"
	"github.com/postsmith/postsmith/internal/render"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
)

// Generate-specific flag values.
var (
	generateProvider    string
	generateModel       string
	generateTemperature float64
	generateMaxTokens   int
	generateFormat      string
	generateOutput      string
	generateSave        bool
)

// generateCmd is the subcommand for one-shot post generation.
var generateCmd = &cobra.Command{
	Use:   "generate [idea]",
	Short: "Generate a post from an idea without entering the chat",
	Long: `Generate a single post and print it. The idea comes from the arguments,
or from stdin when no arguments are given, so the command composes with
pipes:

  postsmith generate "lessons from our last outage"
  echo "why small teams ship faster" | postsmith generate --format json

The post only prints if it passes validation. Status messages go to stderr
so stdout stays clean for piping.`,
	Args: cobra.ArbitraryArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateProvider, "provider", "", "LLM provider (openai or anthropic)")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "model override for the provider")
	generateCmd.Flags().Float64Var(&generateTemperature, "temperature", 0, "sampling temperature (0.0-2.0)")
	generateCmd.Flags().IntVar(&generateMaxTokens, "max-tokens", 0, "response token budget (0 = configured default)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", formatText, "output format (text, json)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "write the post to this file instead of stdout")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "also save the post as a draft file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	idea, err := resolveIdea(cmd, args)
	if err != nil {
		return err
	}

	if generateFormat != formatText && generateFormat != formatJSON {
		return exitError(ExitInvalidArgs,
			"postsmith: --format must be %s or %s (got %q)", formatText, formatJSON, generateFormat)
	}
	if generateMaxTokens < 0 {
		return exitError(ExitInvalidArgs,
			"postsmith: --max-tokens must be non-negative (got %d)", generateMaxTokens)
	}

	cli := config.Overrides{
		Provider:  generateProvider,
		Model:     generateModel,
		MaxTokens: generateMaxTokens,
	}
	if cmd.Flags().Changed("temperature") {
		if generateTemperature < 0 || generateTemperature > 2.0 {
			return exitError(ExitInvalidArgs,
				"postsmith: --temperature must be between 0.0 and 2.0 (got %.2f)", generateTemperature)
		}
		t := generateTemperature
		cli.Temperature = &t
	}

	resolved, err := loadSettings(cli)
	if err != nil {
		return err
	}

	if err := requireAPIKey(cmd.ErrOrStderr(), resolved.Provider); err != nil {
		return err
	}
	provider, err := newProvider(resolved)
	if err != nil {
		return err
	}

	gen := generator.New(provider, generator.Settings{
		Model:       resolved.Model,
		Temperature: resolved.Temperature,
		MaxTokens:   resolved.MaxTokens,
	})

	slog.Debug("generating post",
		"provider", resolved.Provider,
		"model", resolved.Model,
		"format", generateFormat)

	p, err := gen.Generate(cmd.Context(), idea)
	if err != nil {
		render.Error(cmd.ErrOrStderr(), err)
		return &exitCodeError{code: ExitGenerationFailed}
	}

	if err := writePost(cmd, p); err != nil {
		return err
	}

	if generateSave {
		path, err := draft.Save(resolved.DraftDir, "", p)
		if err != nil {
			render.Error(cmd.ErrOrStderr(), err)
			return &exitCodeError{code: ExitGenerationFailed}
		}
		render.Success(cmd.ErrOrStderr(), "Draft saved to %s", path)
	}

	return nil
}

// resolveIdea takes the idea from the arguments, falling back to stdin for
// piped use.
func resolveIdea(cmd *cobra.Command, args []string) (string, error) {
	idea := strings.TrimSpace(strings.Join(args, " "))
	if idea == "" && len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", exitError(ExitInvalidArgs, "postsmith: reading idea from stdin: %v", err)
		}
		idea = strings.TrimSpace(string(data))
	}
	if idea == "" {
		return "", exitError(ExitInvalidArgs,
			"postsmith: no idea given (pass it as an argument or pipe it on stdin)")
	}
	return idea, nil
}

// writePost renders the post to --output or stdout in the selected format.
// File output is never colored.
func writePost(cmd *cobra.Command, p *post.Post) error {
	if generateOutput != "" {
		var buf bytes.Buffer
		if generateFormat == formatJSON {
			if err := render.PostJSON(&buf, p); err != nil {
				return err
			}
		} else {
			buf.WriteString(render.PlainPost(p))
		}
		if err := cmdFS.WriteFile(generateOutput, buf.Bytes(), 0o600); err != nil {
			return fmt.Errorf("postsmith: writing %s: %w", generateOutput, err)
		}
		return nil
	}

	if generateFormat == formatJSON {
		return render.PostJSON(cmd.OutOrStdout(), p)
	}
	render.Post(cmd.OutOrStdout(), p)
	return nil
}

// exitCodeError carries a non-zero exit code through cobra's error handling.
// An empty msg means the failure was already rendered to stderr.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitGenerationFailed:
			msg = "postsmith: generation failed"
		default:
			msg = "postsmith: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
