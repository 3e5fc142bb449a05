package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	postsmithlog "github.com/postsmith/postsmith/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for postsmith. Invoked bare it starts the
// interactive chat session.
var rootCmd = &cobra.Command{
	Use:   "postsmith",
	Short: "Turn rough ideas into polished LinkedIn posts",
	Long: `Postsmith turns rough ideas into polished LinkedIn posts. It prompts an
LLM provider (OpenAI or Anthropic) with a fixed post schema, validates the
reply against the formatting rules, and renders the result ready to publish
or to keep as a draft.

Run it bare for an interactive session, or use 'postsmith generate' for
one-shot scripting.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		postsmithlog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
	RunE: runChat,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
