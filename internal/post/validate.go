// Copyright 2026 The Postsmith Authors
// SPDX-License-Identifier: MIT

package post

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError describes a single problem with a generated post field.
type ValidationError struct {
	Field      string // record field the problem is on
	Message    string // what's wrong
	Suggestion string // how to fix it
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Result collects every validation problem found in one pass over a record.
type Result struct {
	Errors []ValidationError
}

// Valid reports whether no problems were found.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// Error joins all problems into a single message so a Result can travel as
// an error value.
func (r *Result) Error() string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Error()
	}
	return "invalid post: " + strings.Join(msgs, "; ")
}

// Sanitize normalizes a decoded post and checks every field rule, returning
// the cleaned record together with all problems found. The cleaned record is
// only meaningful when the result is valid.
func Sanitize(p Post) (Post, *Result) {
	res := &Result{}

	p.Title = strings.TrimSpace(p.Title)
	checkTitle(p.Title, res)

	p.Content = strings.TrimSpace(p.Content)
	checkContent(p.Content, res)

	p.Hashtags = cleanHashtags(p.Hashtags, res)

	if canon, ok := NormalizeCategory(p.Category); ok {
		p.Category = canon
	} else {
		suggestion := fmt.Sprintf("category must be one of: %s", strings.Join(CategoryKeys(), ", "))
		if hint := closestMatch(normalizeCategoryKey(p.Category), categoryKeys, 3); hint != "" {
			suggestion = fmt.Sprintf("did you mean %q?", hint)
		}
		res.Errors = append(res.Errors, ValidationError{
			Field:      "category",
			Message:    fmt.Sprintf("invalid category %q", p.Category),
			Suggestion: suggestion,
		})
	}

	return p, res
}

// checkTitle validates the trimmed title length bounds.
func checkTitle(title string, res *Result) {
	n := utf8.RuneCountInString(title)
	switch {
	case title == "":
		res.Errors = append(res.Errors, ValidationError{
			Field:      "title",
			Message:    "must not be empty",
			Suggestion: "provide a short, engaging title",
		})
	case n < TitleMinLen:
		res.Errors = append(res.Errors, ValidationError{
			Field:      "title",
			Message:    fmt.Sprintf("too short (%d characters, minimum %d)", n, TitleMinLen),
			Suggestion: "expand the title to a full phrase",
		})
	case n > TitleMaxLen:
		res.Errors = append(res.Errors, ValidationError{
			Field:      "title",
			Message:    fmt.Sprintf("too long (%d characters, maximum %d)", n, TitleMaxLen),
			Suggestion: "shorten the title to one line",
		})
	}
}

// checkContent validates the trimmed content. Besides the raw length bounds,
// the content must carry a minimum of real text once newlines are removed,
// so a wall of blank lines cannot pass.
func checkContent(content string, res *Result) {
	if content == "" {
		res.Errors = append(res.Errors, ValidationError{
			Field:      "content",
			Message:    "must not be empty",
			Suggestion: "provide the post body",
		})
		return
	}

	n := utf8.RuneCountInString(content)
	switch {
	case n < ContentMinLen:
		res.Errors = append(res.Errors, ValidationError{
			Field:      "content",
			Message:    fmt.Sprintf("too short (%d characters, minimum %d)", n, ContentMinLen),
			Suggestion: "write a fuller post body",
		})
		return
	case n > ContentMaxLen:
		res.Errors = append(res.Errors, ValidationError{
			Field:      "content",
			Message:    fmt.Sprintf("too long (%d characters, maximum %d)", n, ContentMaxLen),
			Suggestion: "trim the post body",
		})
		return
	}

	real := strings.TrimSpace(strings.NewReplacer("\n", "", "\r", "").Replace(content))
	if utf8.RuneCountInString(real) < ContentMinLen {
		res.Errors = append(res.Errors, ValidationError{
			Field:      "content",
			Message:    fmt.Sprintf("must contain at least %d characters of real text", ContentMinLen),
			Suggestion: "replace filler line breaks with prose",
		})
	}
}

// cleanHashtags strips whitespace and leading '#' from every tag, validates
// each entry, rejects case-insensitive duplicates, and returns the cleaned
// list. Invalid entries are reported and dropped from the cleaned list.
func cleanHashtags(tags []string, res *Result) []string {
	switch n := len(tags); {
	case n < HashtagsMin:
		res.Errors = append(res.Errors, ValidationError{
			Field:      "hashtags",
			Message:    fmt.Sprintf("needs at least %d hashtags, got %d", HashtagsMin, n),
			Suggestion: "add more topical hashtags",
		})
	case n > HashtagsMax:
		res.Errors = append(res.Errors, ValidationError{
			Field:      "hashtags",
			Message:    fmt.Sprintf("too many hashtags (%d, maximum %d)", n, HashtagsMax),
			Suggestion: "keep the most relevant hashtags",
		})
	}

	clean := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		t := strings.TrimLeft(strings.TrimSpace(tag), "#")
		switch {
		case t == "":
			res.Errors = append(res.Errors, ValidationError{
				Field:      "hashtags",
				Message:    "hashtags must not be empty",
				Suggestion: "remove the empty entry",
			})
			continue
		case strings.ContainsAny(t, " \t"):
			res.Errors = append(res.Errors, ValidationError{
				Field:      "hashtags",
				Message:    fmt.Sprintf("hashtag %q must not contain spaces", t),
				Suggestion: "join multi-word hashtags in CamelCase",
			})
			continue
		case utf8.RuneCountInString(t) < 2:
			res.Errors = append(res.Errors, ValidationError{
				Field:      "hashtags",
				Message:    fmt.Sprintf("hashtag %q is too short", t),
				Suggestion: "use hashtags of at least 2 characters",
			})
			continue
		}

		low := strings.ToLower(t)
		if seen[low] {
			res.Errors = append(res.Errors, ValidationError{
				Field:      "hashtags",
				Message:    fmt.Sprintf("duplicate hashtag %q", t),
				Suggestion: "hashtags must be unique",
			})
			continue
		}
		seen[low] = true
		clean = append(clean, t)
	}
	return clean
}

// closestMatch finds the closest string in candidates to input using
// Levenshtein distance. Returns empty string if no match is within maxDist.
func closestMatch(input string, candidates []string, maxDist int) string {
	best := ""
	bestDist := maxDist + 1

	for _, c := range candidates {
		d := levenshtein(input, c)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}

	if bestDist <= maxDist {
		return best
	}
	return ""
}

// levenshtein computes the Levenshtein edit distance between two strings.
func levenshtein(a, b string) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Use a single-row DP approach.
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)

	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[lb]
}
