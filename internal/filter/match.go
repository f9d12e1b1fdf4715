// Package filter provides string normalization and matching helpers shared by
// the registry search, skills search and aggregated catalog views.
package filter

import (
	"strings"
)

// NormalizeString can be used to normalize a string value for filtering/comparison.
// The value is made lowercase and has any leading and/or trailing whitespace removed.
func NormalizeString(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeSlice can be used to normalize all values of a slice, returning a new slice.
// The values are normalized with the same behavior as NormalizeString.
func NormalizeSlice(s []string) []string {
	s2 := make([]string, len(s))
	for i := range s {
		s2[i] = NormalizeString(s[i])
	}
	return s2
}

// ContainsFold reports whether value contains query as a substring after both
// sides have been normalized. An empty query matches everything.
func ContainsFold(value, query string) bool {
	q := NormalizeString(query)
	if q == "" {
		return true
	}
	return strings.Contains(NormalizeString(value), q)
}

// AnyContainsFold reports whether any of the supplied values contains query as
// a substring (case-insensitive, normalized).
func AnyContainsFold(query string, values ...string) bool {
	for _, v := range values {
		if ContainsFold(v, query) {
			return true
		}
	}
	return false
}
