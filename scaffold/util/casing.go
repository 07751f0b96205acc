package util

import (
	"strings"
	"unicode"
)

// ToKebabCase converts a PascalCase identifier to lowercase hyphenated form.
//
// Every uppercase ASCII letter becomes '-' followed by its lowercase form,
// except at position 0 where no hyphen is emitted. Everything else passes
// through unchanged, so acronyms are split per letter ("CMSBlock" ->
// "c-m-s-block") and digits or existing hyphens are kept literally.
func ToKebabCase(s string) string {
	var result strings.Builder
	result.Grow(len(s) + 4)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result.WriteByte('-')
			}
			result.WriteByte(c + ('a' - 'A'))
			continue
		}
		result.WriteByte(c)
	}

	return result.String()
}

// IsPascalIdentifier reports whether s starts with an ASCII uppercase letter
// and contains only ASCII letters and digits.
func IsPascalIdentifier(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for _, ch := range s {
		if ch > unicode.MaxASCII || !(unicode.IsLetter(ch) || unicode.IsDigit(ch)) {
			return false
		}
	}
	return true
}
