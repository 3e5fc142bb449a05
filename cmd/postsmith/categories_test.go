package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postsmith/postsmith/internal/post"
)

func TestCategoriesCmd(t *testing.T) {
	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"categories"})

	require.NoError(t, cmd.Execute())

	out := stdout.String()
	for _, c := range post.Categories() {
		assert.Contains(t, out, "- "+c)
	}
	assert.Contains(t, out, "Technology")
	assert.Contains(t, out, "Human Resources")
}
