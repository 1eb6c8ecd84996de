package app

import "strings"

// joinOrDash joins tags with commas, or returns "-" for none.
func joinOrDash(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}

// indent prefixes every non-empty line with a single space to line up with
// section headers.
func indent(s string) string {
	lines := strings.SplitAfter(s, "\n")
	var sb strings.Builder
	for _, l := range lines {
		if l != "" && l != "\n" {
			sb.WriteString(" ")
		}
		sb.WriteString(l)
	}
	return sb.String()
}
