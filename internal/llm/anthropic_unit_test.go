package llm

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"bare object":         {`{"a":1}`, `{"a":1}`},
		"fenced":              {"```json\n{\"a\":1}\n```", `{"a":1}`},
		"fence no lang":       {"```\n{\"a\":1}\n```", `{"a":1}`},
		"leading chatter":     {"Here is the post:\n{\"a\":1}", `{"a":1}`},
		"trailing chatter":    {"{\"a\":1}\nHope that helps!", `{"a":1}`},
		"nested braces":       {`{"a":{"b":2}}`, `{"a":{"b":2}}`},
		"whitespace":          {"  \n {\"a\":1} \n ", `{"a":1}`},
		"no json passthrough": {"sorry, no can do", "sorry, no can do"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractJSON(tc.in))
		})
	}
}

func TestSchemaInstruction(t *testing.T) {
	instr, err := schemaInstruction(&ResponseSchema{
		Name:        "linkedin_post",
		Description: "a complete post",
		Schema:      map[string]any{"type": "object"},
	})
	require.NoError(t, err)

	assert.Contains(t, instr, "ONLY a JSON object")
	assert.Contains(t, instr, "linkedin_post")
	assert.Contains(t, instr, "a complete post")
	assert.Contains(t, instr, `{"type":"object"}`)
}

func TestIsConnectionError(t *testing.T) {
	assert.True(t, isConnectionError(&net.OpError{Op: "dial", Err: errors.New("refused")}))
	assert.False(t, isConnectionError(context.Canceled))
	assert.False(t, isConnectionError(errors.New("some api error")))
}
