package logging

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
)

const consoleTimeLayout = "2006-01-02 15:04:05"

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Local().Format(consoleTimeLayout)
}

// formatValue renders a console value, quoting anything that would break
// key=value parsing.
func formatValue(v slog.Value) string {
	v = v.Resolve()
	if v.Kind() == slog.KindTime {
		return formatTimestamp(v.Time())
	}
	s := v.String()
	if s == "" || strings.IndexFunc(s, breaksPair) >= 0 {
		return strconv.Quote(s)
	}
	return s
}

func breaksPair(r rune) bool {
	return r <= ' ' || r == '=' || r == '"'
}
