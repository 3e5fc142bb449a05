// Package post defines the LinkedIn post record produced by generation,
// the fixed JSON schema sent to providers, and the validation rules every
// record must satisfy before it is shown to the user.
package post

import "strings"

// Field limits for a generated post. Records outside these bounds are
// rejected even when the provider reports success.
const (
	TitleMinLen   = 10
	TitleMaxLen   = 100
	ContentMinLen = 50
	ContentMaxLen = 3000
	HashtagsMin   = 3
	HashtagsMax   = 10
)

// Post is a single generated LinkedIn post. Hashtags are stored without the
// leading '#'. Category holds the canonical display form, e.g. "Professional
// Development".
type Post struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Hashtags []string `json:"hashtags"`
	Category string   `json:"category"`
}

// categoryKeys is the closed set of post categories in normalized
// (lowercase) form, in schema order.
var categoryKeys = []string{
	"technology",
	"business",
	"marketing",
	"leadership",
	"professional development",
	"industry",
	"innovation",
	"human resources",
}

// categoryAliases maps common shorthand to a member of categoryKeys.
var categoryAliases = map[string]string{
	"hr":   "human resources",
	"tech": "technology",
}

// Categories returns the allowed categories in display form, in a fixed order.
func Categories() []string {
	out := make([]string, len(categoryKeys))
	for i, c := range categoryKeys {
		out[i] = titleCase(c)
	}
	return out
}

// CategoryKeys returns the allowed categories in normalized form. This is
// the form used for the schema enum sent to providers.
func CategoryKeys() []string {
	return append([]string(nil), categoryKeys...)
}

// NormalizeCategory maps free-form category text to its canonical display
// form. Matching is case-insensitive, ignores surrounding whitespace, and
// treats underscores as spaces. The second return is false when the value
// is not in the allowed set.
func NormalizeCategory(s string) (string, bool) {
	key := normalizeCategoryKey(s)
	if alias, ok := categoryAliases[key]; ok {
		key = alias
	}
	for _, c := range categoryKeys {
		if key == c {
			return titleCase(c), true
		}
	}
	return "", false
}

func normalizeCategoryKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

// titleCase uppercases the first letter of each word. The category set is
// plain ASCII so byte indexing on word heads is safe.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
