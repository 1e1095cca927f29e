package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Normalize lowercases, trims and collapses inner whitespace, making
// scraped cell text safe for substring matching.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.Trim(text, " \n\t")
	return whitespaceRegex.ReplaceAllString(text, " ")
}

// ContainsAny reports whether the normalized text contains any of the
// given markers. Markers are expected to already be lowercase.
func ContainsAny(text string, markers []string) bool {
	text = Normalize(text)
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// EqualsAny reports whether the normalized text equals one of the given
// values exactly.
func EqualsAny(text string, values []string) bool {
	text = Normalize(text)
	for _, v := range values {
		if text == v {
			return true
		}
	}
	return false
}
