package textinput

import "strings"

// Clean collapses every run of whitespace, including newlines, into a
// single space and trims the ends. Each character of the result occupies
// one spiral slot.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
