// Copyright 2026 The Postsmith Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/postsmith/postsmith/internal/config"
	"github.com/postsmith/postsmith/internal/llm"
	"github.com/postsmith/postsmith/internal/testable"
)

// validJSON is a provider reply that passes schema and field rules.
const validJSON = `{
	"title": "Lessons from a production incident",
	"content": "Last week our checkout service fell over during a traffic spike. Here is what we changed to keep it from happening again, and what we learned along the way.",
	"hashtags": ["DevOps", "Reliability", "Engineering"],
	"category": "technology"
}`

// newTestCmd redirects the root command's I/O to fresh buffers and an empty
// stdin, so commands that fall back to stdin never block on the real one.
// The returned command and buffers let tests verify output without touching
// the process streams.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(strings.NewReader(""))
	return rootCmd, stdout, stderr
}

// isolate moves the test into an empty temp directory and points the global
// config lookup at an empty XDG home, so commands never read or write the
// developer's real files. Returns the working directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

// withProvider routes provider construction to the given provider for the
// duration of a test. The returned pointer receives the resolved settings the
// command passed to the factory.
func withProvider(t *testing.T, p llm.Provider) *config.Resolved {
	t.Helper()
	got := &config.Resolved{}
	orig := newProvider
	newProvider = func(cfg config.Resolved) (llm.Provider, error) {
		*got = cfg
		return p, nil
	}
	t.Cleanup(func() { newProvider = orig })
	return got
}

// withMockFS swaps cmdFS with the given mock and restores it on test cleanup.
func withMockFS(t *testing.T, mock *testable.MockFileSystem) {
	t.Helper()
	orig := cmdFS
	cmdFS = mock
	t.Cleanup(func() { cmdFS = orig })
}

func resetFlagSet(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	})
}

// resetRootFlags resets the persistent flags shared by every command.
func resetRootFlags() {
	verbose = false
	quiet = false
	noColor = false
	resetFlagSet(rootCmd.PersistentFlags())
}

// resetGenerateFlags resets all package-level generate flags to their default
// values. Call before each test that invokes the generate command to avoid
// contamination from previous tests.
func resetGenerateFlags() {
	generateProvider = ""
	generateModel = ""
	generateTemperature = 0
	generateMaxTokens = 0
	generateFormat = formatText
	generateOutput = ""
	generateSave = false
	resetFlagSet(generateCmd.Flags())
	resetRootFlags()
}

// resetChatFlags resets the chat command flags.
func resetChatFlags() {
	chatProvider = ""
	chatModel = ""
	resetFlagSet(chatCmd.Flags())
	resetRootFlags()
}

// resetInitFlags resets the init command flags.
func resetInitFlags() {
	initForce = false
	resetFlagSet(initCmd.Flags())
	resetRootFlags()
}

// resetConfigFlags resets the config command flags.
func resetConfigFlags() {
	configGlobal = false
	resetFlagSet(configGetCmd.Flags())
	resetFlagSet(configSetCmd.Flags())
	resetRootFlags()
}
