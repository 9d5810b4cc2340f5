// Package validate provides pure string validation predicates used by the
// resource services. Every function is total: invalid input yields false,
// never an error or a panic.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	// E.164-shaped: optional "+", then a non-zero digit, then 1-14 more digits.
	phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{1,14}$`)
)

// NotEmpty reports whether s contains anything besides whitespace.
func NotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Email reports whether s looks like a local@domain.tld address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Phone reports whether s is an E.164-shaped phone number.
// A leading zero after the optional "+" is rejected.
func Phone(s string) bool {
	return phonePattern.MatchString(s)
}

// MinLength reports whether s is at least n runes long.
func MinLength(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}
