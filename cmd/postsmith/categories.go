package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/postsmith/postsmith/internal/post"
)

// categoriesCmd prints the allowed post categories.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the allowed post categories",
	Long:  "List the categories a generated post can be filed under.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(w, "Every post is filed under one of these categories:")
		for _, c := range post.Categories() {
			_, _ = fmt.Fprintln(w, "  - "+c)
		}
	},
}
