// Copyright 2026 The Postsmith Authors
// SPDX-License-Identifier: MIT

// Package draft exports generated posts to text files.
package draft

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/postsmith/postsmith/internal/post"
	"github.com/postsmith/postsmith/internal/render"
	"github.com/postsmith/postsmith/internal/testable"
)

// FS is the file system implementation used by this package.
// Override in tests with a testable.MockFileSystem.
var FS testable.FileSystem = testable.DefaultFS

const (
	dirPerm  = 0o750
	filePerm = 0o600

	// maxSlugLen bounds slugs derived from long titles.
	maxSlugLen = 60

	// maxCollisions bounds the numeric suffix search.
	maxCollisions = 1000
)

// Save renders p to a text file under dir and returns the written path.
// name becomes the file name after slugging; when empty, the slug derives
// from the post title. Existing files are never overwritten; colliding
// names get a numeric suffix.
func Save(dir, name string, p *post.Post) (string, error) {
	if p == nil {
		return "", fmt.Errorf("draft: nil post")
	}

	slug := Slugify(name)
	if slug == "" {
		slug = Slugify(p.Title)
	}
	if slug == "" {
		slug = "post"
	}

	if err := FS.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("draft: creating %s: %w", dir, err)
	}

	path, err := freePath(dir, slug)
	if err != nil {
		return "", err
	}

	content := header() + render.PlainPost(p)
	if err := FS.WriteFile(path, []byte(content), filePerm); err != nil {
		return "", fmt.Errorf("draft: writing %s: %w", path, err)
	}
	return path, nil
}

// Slugify lowercases s and maps runs of non-alphanumeric characters to
// single hyphens, trimming hyphens at both ends.
func Slugify(s string) string {
	var sb strings.Builder
	lastHyphen := true // swallows leading separators
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				sb.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	out := strings.TrimRight(sb.String(), "-")
	if utf8.RuneCountInString(out) > maxSlugLen {
		runes := []rune(out)
		out = strings.TrimRight(string(runes[:maxSlugLen]), "-")
	}
	return out
}

// header returns the draft file preamble: a unique draft ID plus timestamp.
func header() string {
	return fmt.Sprintf("Draft-ID: %s\nSaved-At: %s\n\n",
		uuid.NewString(), time.Now().Format(time.RFC3339))
}

// freePath picks the first unused file name: slug.txt, slug-2.txt, and so on.
func freePath(dir, slug string) (string, error) {
	path := filepath.Join(dir, slug+".txt")
	if !exists(path) {
		return path, nil
	}
	for i := 2; i <= maxCollisions; i++ {
		path = filepath.Join(dir, fmt.Sprintf("%s-%d.txt", slug, i))
		if !exists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("draft: too many drafts named %q in %s", slug, dir)
}

func exists(path string) bool {
	_, err := FS.Stat(path)
	return err == nil
}
