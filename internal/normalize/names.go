package normalize

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// NameKey lowercases, collapses whitespace, and trims s. It keys
// case-insensitive service-name lookups.
func NameKey(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	return multiSpace.ReplaceAllString(s, " ")
}

// OptString returns nil for an empty string.
func OptString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// DerefString returns "" for nil.
func DerefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
