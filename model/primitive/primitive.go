// Package primitive checks the lexical form of FHIR primitive values.
//
// The checks are format-only. They say nothing about whether a code belongs
// to a code system or a date exists in the calendar: day numbers are only
// checked to lie in 1..31, so "2023-02-31" is accepted.
package primitive

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxIDLength is the longest permitted resource id.
const MaxIDLength = 64

var idPattern = regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`)

// ValidateID reports whether id matches the resource id grammar.
func ValidateID(id string) bool {
	return idPattern.MatchString(id)
}

// ValidateDate accepts YYYY, YYYY-MM and YYYY-MM-DD with leading zeros.
func ValidateDate(s string) bool {
	switch len(s) {
	case 4, 7, 10:
	default:
		return false
	}
	if !digits(s[0:4]) {
		return false
	}
	if len(s) == 4 {
		return true
	}
	if s[4] != '-' || !digits(s[5:7]) || !inRange(s[5:7], 1, 12) {
		return false
	}
	if len(s) == 7 {
		return true
	}
	return s[7] == '-' && digits(s[8:10]) && inRange(s[8:10], 1, 31)
}

// ValidateTime accepts HH:MM:SS with an optional fractional second.
func ValidateTime(s string) bool {
	if len(s) < 8 || !clock(s[:8]) {
		return false
	}
	return fraction(s[8:]) == len(s[8:])
}

// ValidateDateTime accepts a partial date or a full date with a time of day
// and an optional timezone.
func ValidateDateTime(s string) bool {
	if len(s) <= 10 {
		return ValidateDate(s)
	}
	return ValidateDateTimeStrict(s)
}

// ValidateDateTimeStrict requires YYYY-MM-DDThh:mm:ss, optionally followed by
// a fractional second and a timezone.
func ValidateDateTimeStrict(s string) bool {
	date, rest, ok := strings.Cut(s, "T")
	if !ok || len(date) != 10 || !ValidateDate(date) {
		return false
	}
	if len(rest) < 8 || !clock(rest[:8]) {
		return false
	}
	rest = rest[8:]
	rest = rest[fraction(rest):]
	return rest == "" || timezone(rest)
}

// ValidateInstant is like ValidateDateTimeStrict but requires a timezone.
func ValidateInstant(s string) bool {
	if !ValidateDateTimeStrict(s) {
		return false
	}
	return strings.HasSuffix(s, "Z") || timezone(s[len(s)-6:])
}

// ValidateURI reports whether s has a scheme separator.
func ValidateURI(s string) bool {
	return strings.Contains(s, ":")
}

// ValidateURL reports whether s is an http or https URL.
func ValidateURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// ValidateCode reports whether s is a non-empty token without whitespace.
func ValidateCode(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, unicode.IsSpace) < 0
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// inRange parses two digits.
func inRange(s string, lo, hi int) bool {
	n := int(s[0]-'0')*10 + int(s[1]-'0')
	return n >= lo && n <= hi
}

func clock(s string) bool {
	if s[2] != ':' || s[5] != ':' {
		return false
	}
	if !digits(s[0:2]) || !digits(s[3:5]) || !digits(s[6:8]) {
		return false
	}
	return inRange(s[0:2], 0, 23) && inRange(s[3:5], 0, 59) && inRange(s[6:8], 0, 59)
}

// fraction returns the length of a leading ".digits" in s, or 0.
func fraction(s string) int {
	if len(s) < 2 || s[0] != '.' {
		return 0
	}
	n := 1
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 1 {
		return 0
	}
	return n
}

func timezone(s string) bool {
	if s == "Z" {
		return true
	}
	if len(s) != 6 || (s[0] != '+' && s[0] != '-') || s[3] != ':' {
		return false
	}
	return digits(s[1:3]) && digits(s[4:6]) && inRange(s[1:3], 0, 14) && inRange(s[4:6], 0, 59)
}
