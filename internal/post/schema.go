// Copyright 2026 The Postsmith Authors
// SPDX-License-Identifier: MIT

package post

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaName identifies the response schema in provider requests.
const SchemaName = "linkedin_post"

// SchemaDescription tells the model what the schema holds.
const SchemaDescription = "A complete LinkedIn post with title, content, hashtags and category"

// Schema returns the JSON Schema document every generated post must match.
// The schema is strict: all four fields are required and unknown fields are
// rejected.
func Schema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"title", "content", "hashtags", "category"},
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"minLength":   TitleMinLen,
				"maxLength":   TitleMaxLen,
				"description": "Concise, engaging post title",
			},
			"content": map[string]any{
				"type":        "string",
				"minLength":   ContentMinLen,
				"maxLength":   ContentMaxLen,
				"description": "Full post body, formatted for LinkedIn",
			},
			"hashtags": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    HashtagsMin,
				"maxItems":    HashtagsMax,
				"description": "Relevant hashtags without the # symbol",
			},
			// Category stays a plain string so responses like "Technology"
			// or "tech" survive schema validation and are normalized by
			// Sanitize. Membership is enforced there, not here.
			"category": map[string]any{
				"type":        "string",
				"description": "Post category, one of: " + strings.Join(CategoryKeys(), ", "),
			},
		},
	}
}

// Decode validates raw provider JSON against the schema and returns the
// sanitized record. Schema violations and field rule violations are both
// reported through *Result so callers can show every problem at once.
func Decode(data []byte) (*Post, error) {
	schemaLoader := gojsonschema.NewGoLoader(Schema())
	docLoader := gojsonschema.NewBytesLoader(data)

	schemaRes, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}
	if !schemaRes.Valid() {
		res := &Result{}
		for _, desc := range schemaRes.Errors() {
			field := desc.Field()
			if field == "(root)" {
				field = "post"
			}
			res.Errors = append(res.Errors, ValidationError{
				Field:   field,
				Message: desc.Description(),
			})
		}
		return nil, res
	}

	var p Post
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	clean, res := Sanitize(p)
	if !res.Valid() {
		return nil, res
	}
	return &clean, nil
}
