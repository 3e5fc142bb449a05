// Copyright 2026 The Postsmith Authors
// SPDX-License-Identifier: MIT

// Package render writes user-facing views of posts and errors to a terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/postsmith/postsmith/internal/post"
)

// bannerWidth is the width of the rule framing a rendered post.
const bannerWidth = 60

// Shared color printers for terminal views.
var (
	colorBold   = color.New(color.Bold)
	colorCyan   = color.New(color.FgCyan)
	colorGreen  = color.New(color.FgGreen)
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorDim    = color.New(color.Faint)
)

// Post writes the terminal view of a post: a framed block with TITLE,
// CONTENT, HASHTAGS, and CATEGORY sections.
func Post(w io.Writer, p *post.Post) {
	writePost(w, p, colorBold.Sprint, colorCyan.Sprint)
}

// PlainPost returns the uncolored view of a post, suitable for writing to
// files.
func PlainPost(p *post.Post) string {
	var sb strings.Builder
	writePost(&sb, p, fmt.Sprint, fmt.Sprint)
	return sb.String()
}

// PostJSON writes the validated post as indented JSON.
func PostJSON(w io.Writer, p *post.Post) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writePost renders the framed post block. label decorates section headers
// and tags decorates the hashtag line, so the same layout serves both the
// colored terminal view and plain file output.
func writePost(w io.Writer, p *post.Post, label, tags func(...any) string) {
	rule := strings.Repeat("=", bannerWidth)

	_, _ = fmt.Fprintln(w, rule)
	_, _ = fmt.Fprintln(w, label("TITLE:"))
	_, _ = fmt.Fprintln(w, p.Title)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, label("CONTENT:"))
	_, _ = fmt.Fprintln(w, p.Content)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, label("HASHTAGS:"))
	_, _ = fmt.Fprintln(w, tags(hashtagLine(p.Hashtags)))
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, label("CATEGORY:"))
	_, _ = fmt.Fprintln(w, p.Category)
	_, _ = fmt.Fprintln(w, rule)
}

// hashtagLine joins hashtags into a single line, each prefixed with '#'.
func hashtagLine(tags []string) string {
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = "#" + tag
	}
	return strings.Join(parts, " ")
}
