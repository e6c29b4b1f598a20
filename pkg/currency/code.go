package currency

import (
	"strings"
	"unicode/utf8"
)

// DefaultFavorites is the favorites list used when none is configured.
const DefaultFavorites = "USD,EUR"

// CodeLength is the number of characters in a currency code.
const CodeLength = 3

// Code is an uppercase three-letter currency code such as "USD".
type Code string

// String returns the code as a plain string.
func (c Code) String() string {
	return string(c)
}

// IsCode reports whether s has the shape of a currency code.
// Only the length is checked; any three characters are accepted and the
// provider decides whether the code exists.
func IsCode(s string) bool {
	return utf8.RuneCountInString(s) == CodeLength
}

// Normalize trims and uppercases s.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ParseList splits a comma-separated list into codes, keeping their
// order and dropping entries that are not codes. Repeated codes are kept.
func ParseList(raw string) []Code {
	var codes []Code
	for _, part := range strings.Split(raw, ",") {
		code := Normalize(part)
		if !IsCode(code) {
			continue
		}
		codes = append(codes, Code(code))
	}
	return codes
}

// Favorites parses the configured favorites list, falling back to
// DefaultFavorites when raw is blank.
func Favorites(raw string) []Code {
	if strings.TrimSpace(raw) == "" {
		raw = DefaultFavorites
	}
	return ParseList(raw)
}

// Without returns codes with every occurrence of c removed.
func Without(codes []Code, c Code) []Code {
	out := make([]Code, 0, len(codes))
	for _, code := range codes {
		if code != c {
			out = append(out, code)
		}
	}
	return out
}

// Contains reports whether c is in codes.
func Contains(codes []Code, c Code) bool {
	for _, code := range codes {
		if code == c {
			return true
		}
	}
	return false
}
