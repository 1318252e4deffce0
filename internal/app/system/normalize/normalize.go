// Package normalize provides input normalization helpers shared by the
// identity store and workspace features.
package normalize

import "strings"

// Email trims surrounding whitespace. Emails are stored and compared
// verbatim apart from trimming, matching the legacy deployment's data.
func Email(s string) string {
	return strings.TrimSpace(s)
}

// Name trims surrounding whitespace and preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Fold lowercases a trimmed string for case-insensitive comparison.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
