package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText returns value in NFC form with whitespace runs collapsed to a
// single space and leading/trailing whitespace removed.
func NormalizeText(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return strings.Join(strings.Fields(norm.NFC.String(value)), " ")
}

// Truncate shortens value to at most max runes, appending an ellipsis when
// anything was cut. Non-positive max returns value unchanged.
func Truncate(value string, max int) string {
	if max <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
