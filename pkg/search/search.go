// Package search filters fetched records by a case-insensitive substring
// match on a few designated text fields.
package search

import "strings"

// Normalize trims the term and folds it to lower case. It keys search
// analytics; matching uses the term as typed.
func Normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Matches reports whether any field contains term, ignoring case. The term
// is not trimmed: "de " only matches fields containing "de" followed by a
// space. An empty term matches everything; a nil field never matches a
// non-empty term.
func Matches(term string, fields ...*string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, field := range fields {
		if field == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*field), needle) {
			return true
		}
	}
	return false
}

// Filter returns the items whose designated fields match term, in their
// original order. The input slice is not modified.
func Filter[T any](items []T, term string, fields func(*T) []*string) []T {
	filtered := make([]T, 0, len(items))
	for i := range items {
		if Matches(term, fields(&items[i])...) {
			filtered = append(filtered, items[i])
		}
	}
	return filtered
}
