package testing

import "strings"

// containsNormalizedSpace reports whether needle occurs in haystack once runs of
// whitespace in both are collapsed to a single space
func containsNormalizedSpace(haystack, needle string) bool {
	return strings.Contains(strings.Join(strings.Fields(haystack), " "), strings.Join(strings.Fields(needle), " "))
}
