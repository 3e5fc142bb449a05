// Package setup implements the interactive first-run wizard behind
// `postsmith init`.
package setup

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/postsmith/postsmith/internal/config"
	"github.com/postsmith/postsmith/internal/testable"
)

// FS is the file system implementation used by this package.
// Override in tests with a testable.MockFileSystem.
var FS testable.FileSystem = testable.DefaultFS

// InitConfig holds the inputs for the init command.
type InitConfig struct {
	Dir   string
	Force bool
}

// Action records a single file operation performed during init.
type Action struct {
	File        string // ".postsmith.yaml"
	Operation   string // "created", "skipped"
	Description string // human-readable detail
}

// Run drives the init process: ask the wizard questions, then write the
// config file. The returned Result carries the choices and the file action
// for the command layer to summarize.
func Run(cfg InitConfig, r io.Reader, w io.Writer) (*Result, error) {
	result, err := RunWizard(r, w)
	if err != nil {
		return nil, err
	}

	action, err := writeConfig(cfg.Dir, result, cfg.Force)
	if err != nil {
		return nil, err
	}
	result.ConfigAction = action

	return result, nil
}

// writeConfig renders .postsmith.yaml from the wizard's choices. An existing
// file is skipped unless force is set; force always regenerates.
func writeConfig(dir string, res *Result, force bool) (Action, error) {
	path := filepath.Join(dir, config.FileName)

	if !force {
		if _, err := FS.Stat(path); err == nil {
			return Action{
				File:        config.FileName,
				Operation:   "skipped",
				Description: "already exists, use --force to regenerate",
			}, nil
		}
	}

	cfg := &config.Config{
		Provider: res.Provider,
		Model:    res.Model,
		DraftDir: res.DraftDir,
	}

	var buf bytes.Buffer
	if err := config.Write(&buf, cfg); err != nil {
		return Action{}, fmt.Errorf("rendering %s: %w", config.FileName, err)
	}
	if err := FS.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return Action{}, fmt.Errorf("writing %s: %w", config.FileName, err)
	}

	return Action{
		File:        config.FileName,
		Operation:   "created",
		Description: "provider " + res.Provider,
	}, nil
}
