package utils

import (
	"fmt"
	"strings"
)

// ShortenString cuts s after l runes and marks the cut with "...".
// l == 0 disables shortening.
func ShortenString(s string, l int) string {
	r := []rune(s)
	if len(r) > l && l > 0 {
		return fmt.Sprintf("%s...", string(r[:l]))
	}
	return s
}

// CollapseSpace trims s and replaces every run of whitespace with a single
// space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
