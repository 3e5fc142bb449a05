package main

import (
	"github.com/spf13/cobra"

	"github.com/postsmith/postsmith/internal/chat"
	"github.com/postsmith/postsmith/internal/config"
	"github.com/postsmith/postsmith/internal/generator"
)

// Chat-specific flag values.
var (
	chatProvider string
	chatModel    string
)

// chatCmd is the subcommand for the interactive session. Running postsmith
// with no subcommand lands here too.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive post-writing session",
	Long: `Start an interactive session. Type an idea, get a validated post back,
and choose whether to keep it as a draft. Type 'help' inside the session
for the available commands.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatProvider, "provider", "", "LLM provider (openai or anthropic)")
	chatCmd.Flags().StringVar(&chatModel, "model", "", "model override for the provider")
}

func runChat(cmd *cobra.Command, _ []string) error {
	resolved, err := loadSettings(config.Overrides{
		Provider: chatProvider,
		Model:    chatModel,
	})
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

	session := chat.New(gen, cmd.InOrStdin(), cmd.OutOrStdout(), chat.Options{
		DraftDir: resolved.DraftDir,
	})
	if err := session.Run(cmd.Context()); err != nil {
		// The session already rendered the failure.
		return &exitCodeError{code: ExitGenerationFailed}
	}
	return nil
}
