package directory

import "strings"

// NormalizeCategoryForURL canonicalizes a category name into its URL-safe
// form: trimmed and lower-cased. Idempotent.
func NormalizeCategoryForURL(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// FindOriginalCategory resolves a URL-normalized category back to its
// original-cased form by scanning the category list. Returns the first
// category whose normalized form matches, or false if none does.
func FindOriginalCategory(normalized string, categories []string) (string, bool) {
	want := NormalizeCategoryForURL(normalized)
	for _, c := range categories {
		if NormalizeCategoryForURL(c) == want {
			return c, true
		}
	}
	return "", false
}
