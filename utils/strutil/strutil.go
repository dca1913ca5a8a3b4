// Package strutil holds string helpers that accept nil as a valid input.
package strutil

import "strings"

// Compare orders a and b like strings.Compare; nil sorts before any string
// and two nils are equal.
func Compare(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return strings.Compare(*a, *b)
}

// IsEmpty reports whether s is nil or "". Whitespace is not empty.
func IsEmpty(s *string) bool {
	return s == nil || *s == ""
}

// Dup returns a pointer to a copy of *s, or nil.
func Dup(s *string) *string {
	if s == nil {
		return nil
	}
	c := strings.Clone(*s)
	return &c
}

// Trim returns *s without leading and trailing whitespace, or nil.
func Trim(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// Lower returns *s in lower case, or nil.
func Lower(s *string) *string {
	if s == nil {
		return nil
	}
	l := strings.ToLower(*s)
	return &l
}
