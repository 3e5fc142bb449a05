// Copyright 2026 The Postsmith Authors
// SPDX-License-Identifier: MIT

// Package chat implements the interactive session that turns typed ideas
// into LinkedIn posts.
package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/postsmith/postsmith/internal/draft"
	"github.com/postsmith/postsmith/internal/post"
	"github.com/postsmith/postsmith/internal/render"
)

// PostGenerator produces validated posts from ideas. *generator.Generator
// satisfies it; tests substitute doubles.
type PostGenerator interface {
	Generate(ctx context.Context, idea string) (*post.Post, error)
	CheckConnection(ctx context.Context) error
}

// SaveFunc writes a post to a draft file and returns the path.
type SaveFunc func(dir, name string, p *post.Post) (string, error)

// Options configure a Session.
type Options struct {
	// DraftDir is where accepted posts are saved. Empty means "drafts".
	DraftDir string

	// Save overrides the draft writer. Nil means draft.Save.
	Save SaveFunc
}

// Session is one interactive conversation over a reader/writer pair.
type Session struct {
	gen      PostGenerator
	in       *bufio.Scanner
	out      io.Writer
	draftDir string
	save     SaveFunc
}

// New creates a Session reading ideas from r and writing to w.
func New(gen PostGenerator, r io.Reader, w io.Writer, opts Options) *Session {
	if opts.DraftDir == "" {
		opts.DraftDir = "drafts"
	}
	if opts.Save == nil {
		opts.Save = draft.Save
	}
	return &Session{
		gen:      gen,
		in:       bufio.NewScanner(r),
		out:      w,
		draftDir: opts.DraftDir,
		save:     opts.Save,
	}
}

// Run drives the session until the user leaves or input ends. A failed
// connection check aborts with the underlying error; everything after that
// keeps the loop alive.
func (s *Session) Run(ctx context.Context) error {
	s.welcome()

	_, _ = fmt.Fprint(s.out, "Checking provider connection... ")
	if err := s.gen.CheckConnection(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			_, _ = fmt.Fprintln(s.out)
			s.goodbye()
			return nil
		}
		_, _ = fmt.Fprintln(s.out, "failed.")
		render.Error(s.out, err)
		return err
	}
	_, _ = fmt.Fprintln(s.out, "ok.")
	_, _ = fmt.Fprintln(s.out)

	for {
		if ctx.Err() != nil {
			s.goodbye()
			return nil
		}

		_, _ = fmt.Fprint(s.out, "> ")
		line, ok := s.read()
		if !ok {
			_, _ = fmt.Fprintln(s.out)
			s.goodbye()
			return nil
		}

		switch strings.ToLower(line) {
		case "":
			render.Warn(s.out, "Type an idea first, or 'help' for commands.")
			continue
		case "exit", "quit":
			s.goodbye()
			return nil
		case "help":
			s.help()
			continue
		case "examples":
			s.examples()
			continue
		case "categories":
			s.categories()
			continue
		}

		_, _ = fmt.Fprintln(s.out, "Generating post...")
		p, err := s.gen.Generate(ctx, line)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				s.goodbye()
				return nil
			}
			render.Error(s.out, err)
			continue
		}

		_, _ = fmt.Fprintln(s.out)
		render.Post(s.out, p)
		_, _ = fmt.Fprintln(s.out)
		s.offerSave(p)
	}
}

// offerSave asks whether to keep the post as a draft file.
func (s *Session) offerSave(p *post.Post) {
	_, _ = fmt.Fprint(s.out, "Save as draft? (y/N) ")
	line, ok := s.read()
	if !ok || !isYes(line) {
		return
	}

	_, _ = fmt.Fprintf(s.out, "File name [%s]: ", draft.Slugify(p.Title))
	name, _ := s.read()

	path, err := s.save(s.draftDir, name, p)
	if err != nil {
		render.Error(s.out, err)
		return
	}
	render.Success(s.out, "Draft saved to %s", path)
}

func (s *Session) welcome() {
	rule := strings.Repeat("=", 60)
	_, _ = fmt.Fprintln(s.out, rule)
	_, _ = fmt.Fprintln(s.out, render.Title("  Postsmith")+" - turn ideas into LinkedIn posts")
	_, _ = fmt.Fprintln(s.out, rule)
	_, _ = fmt.Fprintln(s.out, "Type an idea and press Enter. Commands: help, examples, categories, exit.")
	_, _ = fmt.Fprintln(s.out)
}

func (s *Session) goodbye() {
	_, _ = fmt.Fprintln(s.out, "See you! Your drafts live in "+s.draftDir+".")
}

func (s *Session) help() {
	_, _ = fmt.Fprintln(s.out, "Commands:")
	_, _ = fmt.Fprintln(s.out, "  help        show this help")
	_, _ = fmt.Fprintln(s.out, "  examples    show example ideas")
	_, _ = fmt.Fprintln(s.out, "  categories  list post categories")
	_, _ = fmt.Fprintln(s.out, "  exit        leave the session")
	_, _ = fmt.Fprintln(s.out, "Anything else is treated as a post idea.")
	_, _ = fmt.Fprintln(s.out)
}

func (s *Session) examples() {
	_, _ = fmt.Fprintln(s.out, "Example ideas:")
	_, _ = fmt.Fprintln(s.out, "  - the benefits of remote work for engineering teams")
	_, _ = fmt.Fprintln(s.out, "  - lessons learned migrating our API to Go")
	_, _ = fmt.Fprintln(s.out, "  - why code review culture beats tooling")
	_, _ = fmt.Fprintln(s.out)
}

func (s *Session) categories() {
	_, _ = fmt.Fprintln(s.out, "Categories:")
	for _, c := range post.Categories() {
		_, _ = fmt.Fprintln(s.out, "  - "+c)
	}
	_, _ = fmt.Fprintln(s.out)
}

// read returns the next trimmed input line. ok is false at end of input.
func (s *Session) read() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func isYes(line string) bool {
	switch strings.ToLower(line) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
