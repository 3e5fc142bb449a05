package main

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/postsmith/postsmith/internal/setup"
)

// Init-specific flag values.
var initForce bool

// initCmd is the subcommand for first-run setup.
var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Set up postsmith with a guided wizard",
	Long: `Set up postsmith by answering a few questions: which provider to use,
which model, and where drafts go. The wizard checks your API key against the
provider and writes .postsmith.yaml.

This command is non-destructive by default: it leaves an existing config
alone. Use --force to regenerate .postsmith.yaml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing .postsmith.yaml")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	absPath, err := cmdFS.Abs(dir)
	if err != nil {
		return fmt.Errorf("postsmith: cannot resolve path %q (%v)", dir, err)
	}

	info, err := cmdFS.Stat(absPath)
	if err != nil {
		return fmt.Errorf("postsmith: path %q does not exist", dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("postsmith: %q is not a directory", dir)
	}

	slog.Info("initializing postsmith", "path", absPath)

	result, err := setup.Run(setup.InitConfig{
		Dir:   absPath,
		Force: initForce,
	}, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("postsmith: init failed (%v)", err)
	}

	// Print summary to cobra's stdout so tests can capture it.
	w := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	dim := color.New(color.Faint)

	_, _ = fmt.Fprintln(w)
	_, _ = bold.Fprintln(w, "postsmith init complete")
	_, _ = fmt.Fprintln(w)

	a := result.ConfigAction
	prefix := dim.Sprint("  - ")
	if a.Operation == "created" {
		prefix = green.Sprint("  + ")
	}
	_, _ = fmt.Fprintf(w, "%s%-20s %s\n", prefix, a.File, dim.Sprintf("(%s)", a.Description))

	if a.Operation == "created" {
		_, _ = fmt.Fprintln(w)
		_, _ = bold.Fprintln(w, "Next steps:")
		_, _ = fmt.Fprintln(w, "  1. Review .postsmith.yaml and adjust settings")
		_, _ = fmt.Fprintln(w, "  2. Run: postsmith")
		_, _ = fmt.Fprintln(w, "  3. Or script it: postsmith generate \"your idea\"")
	}

	_, _ = fmt.Fprintln(w)
	return nil
}
