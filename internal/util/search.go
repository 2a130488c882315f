package util

import "strings"

// FilterByPrefix keeps the items whose key starts with prefix, preserving
// their original order. The match is exact and case-sensitive; the prefix is
// used as given, surrounding whitespace included.
func FilterByPrefix[T any](items []T, prefix string, key func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.HasPrefix(key(item), prefix) {
			out = append(out, item)
		}
	}
	return out
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
