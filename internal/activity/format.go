package activity

import (
	"fmt"
	"strings"
)

// DisplayName turns a rule or location name into words.
func DisplayName(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// FormatLine renders one recommendation as a single output line.
func FormatLine(rec Recommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", DisplayName(rec.Activity), rec.Result.Suitability)
	if len(rec.Result.Notes) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(rec.Result.Notes, "; "))
	}
	if rec.Failed {
		b.WriteString(" (rule failed)")
	}
	return b.String()
}
