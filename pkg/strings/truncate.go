// Package strings holds small text helpers shared by the CLI packages.
package strings

import (
	"strings"
)

// MinTruncateLen is the smallest maxLen SingleLine accepts: one character
// plus "...".
const MinTruncateLen = 4

// SingleLine collapses every run of whitespace in s (newlines included)
// into one space and cuts the result to at most maxLen runes, ending it
// with "..." when something was cut. maxLen is clamped to MinTruncateLen.
func SingleLine(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
