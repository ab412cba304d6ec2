package videoid

import "regexp"

// Length is the exact length of a canonical identifier.
const Length = 11

// space lists the characters that end a URL token: ASCII whitespace plus
// vertical tab, the Unicode separators, and the byte order mark.
const space = `\s\x{0B}\p{Z}\x{FEFF}`

var (
	urlPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/` + space + `]+/[^` + space + `]+/|(?:v|e(?:mbed)?)/|[^` + space + `]*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)
	idPattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// Extractor resolves the canonical identifier embedded in a raw URL.
type Extractor interface {
	Extract(raw string) (string, bool)
}

// ExtractorFunc adapts a plain function to the Extractor interface.
type ExtractorFunc func(raw string) (string, bool)

// Extract calls f(raw).
func (f ExtractorFunc) Extract(raw string) (string, bool) {
	return f(raw)
}

// Default is the Extractor backed by the package-level Extract function.
var Default Extractor = ExtractorFunc(Extract)

// Extract returns the first identifier found in raw, scanning left to right.
// It returns false when raw is empty or contains no recognised URL shape.
func Extract(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	match := urlPattern.FindStringSubmatch(raw)
	if len(match) < 2 || match[1] == "" {
		return "", false
	}
	return match[1], true
}

// Valid reports whether id has the canonical identifier shape.
func Valid(id string) bool {
	return idPattern.MatchString(id)
}
