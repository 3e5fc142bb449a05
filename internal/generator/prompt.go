// Copyright 2026 The Postsmith Authors
// SPDX-License-Identifier: MIT

package generator

import "strings"

// systemPrompt primes the model as a LinkedIn content specialist. It carries
// the style guidance the response schema cannot express: tone, length and
// structure.
const systemPrompt = `You are an expert LinkedIn content creator specializing in professional, engaging posts.

Follow these guidelines for every post:
- Title: catchy and descriptive, at most 100 characters
- Content: between 200 and 500 words of professional, valuable writing
- Use short paragraphs and blank lines so the post is easy to scan
- Use 3 to 5 emojis at most, placed where they add emphasis
- Close with a question or call to action that invites comments
- Hashtags: between 3 and 10, relevant to the topic, without the # symbol
- Category: pick the single best fit for the topic

Write the post in the language of the user's idea.`

// userPrompt wraps the raw idea in the generation instruction.
func userPrompt(idea string) string {
	var b strings.Builder
	b.WriteString("Create a complete LinkedIn post about the following idea:\n\n")
	b.WriteString(idea)
	return b.String()
}
