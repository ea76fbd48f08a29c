package api

import (
	"strings"
	"unicode"
)

// SanitizeTrackingID strips every non-alphanumeric rune from a caller-supplied
// tracking identifier before it is placed in a URL path or query parameter.
// Order is preserved and the empty string maps to itself.
func SanitizeTrackingID(trackingID string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, trackingID)
}
