// Package report renders a normalized match record into the ordered,
// chunked-friendly plain-text report.
package report

import (
	"strconv"
	"strings"
	"time"
)

// CleanName trims a display name and substitutes "TBD" for empty or
// null-like values. Idempotent: cleaning "TBD" yields "TBD".
func CleanName(name string) string {
	trimmed := strings.TrimSpace(name)
	switch strings.ToLower(trimmed) {
	case "", "none", "null":
		return "TBD"
	}
	return trimmed
}

// FormatNumber renders a nullable quote with two decimals, trailing zeros
// and point stripped. Nil means "N/A".
func FormatNumber(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return trimFixed(*v, 2)
}

// FormatFloat is FormatNumber for a value known to be present.
func FormatFloat(v float64) string {
	return trimFixed(v, 2)
}

// FormatCelsius renders a temperature with one decimal, trailing zeros and
// point stripped.
func FormatCelsius(v float64) string {
	return trimFixed(v, 1)
}

// FormatUnixUTC renders an epoch-seconds timestamp as "YYYY-MM-DD HH:MM
// UTC". Nil or non-positive values yield the empty string.
func FormatUnixUTC(ts *int64) string {
	if ts == nil || *ts <= 0 {
		return ""
	}
	return time.Unix(*ts, 0).UTC().Format("2006-01-02 15:04") + " UTC"
}

func trimFixed(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
