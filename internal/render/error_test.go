package render

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/postsmith/postsmith/internal/llm"
	"github.com/postsmith/postsmith/internal/post"
	"github.com/postsmith/postsmith/internal/redact"
)

func TestError_Sentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		headline string
		hint     string
	}{
		{"invalid key", llm.ErrInvalidAPIKey, "API key was rejected", ".env"},
		{"quota", llm.ErrQuotaExhausted, "out of credit", "billing"},
		{"rate limited", llm.ErrRateLimited, "rate limiting", "wait a minute"},
		{"token limit", llm.ErrTokenLimit, "token limit", "shorten the idea"},
		{"refused", llm.ErrRefused, "declined to write", "rephrase"},
		{"connection", llm.ErrConnection, "Could not reach", "network"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Error(&buf, fmt.Errorf("openai: %w", tt.err))

			out := buf.String()
			assert.Contains(t, out, tt.headline)
			assert.Contains(t, out, "try: ")
			assert.Contains(t, out, tt.hint)
		})
	}
}

func TestError_ValidationResult(t *testing.T) {
	result := &post.Result{Errors: []post.ValidationError{
		{Field: "title", Message: "too short", Suggestion: "add a few more words"},
		{Field: "hashtags", Message: "need at least 3"},
	}}

	var buf bytes.Buffer
	Error(&buf, fmt.Errorf("generated post failed validation: %w", result))

	out := buf.String()
	assert.Contains(t, out, "did not pass validation")
	assert.Contains(t, out, "- title: too short")
	assert.Contains(t, out, "add a few more words")
	assert.Contains(t, out, "- hashtags: need at least 3")
	assert.Contains(t, out, "generate again")
}

func TestError_Unknown(t *testing.T) {
	var buf bytes.Buffer
	Error(&buf, errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "Something went wrong")
	assert.Contains(t, out, "boom")
	assert.NotContains(t, out, "try: ")
}

func TestError_UnknownRedactsSecrets(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-super-secret-12345")
	redact.ResetForTest()
	t.Cleanup(redact.ResetForTest)

	var buf bytes.Buffer
	Error(&buf, errors.New("request failed: bearer sk-super-secret-12345"))

	out := buf.String()
	assert.NotContains(t, out, "sk-super-secret-12345")
	assert.Contains(t, out, "[REDACTED]")
}
