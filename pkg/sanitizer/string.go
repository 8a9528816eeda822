package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// FoldCase maps s to its Unicode case-folded form so that two strings compare
// equal regardless of letter case ("STRASSE" and "straße" fold alike).
// A fresh Caser is created per call because cases.Caser is not safe for concurrent use.
func FoldCase(s string) string {
	return cases.Fold().String(s)
}

// ToBool interprets checkbox-style input. HTML forms submit "on" for a checked
// box; JSON and YAML submissions tend to use "true", "yes" or "1".
func ToBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1", "checked":
		return true
	default:
		return false
	}
}
