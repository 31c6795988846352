package diagnostics

import (
	"strings"
)

// Render formats diag followed by the offending source line and a caret
// under the reported column. Without a location only the header is
// produced.
func Render(src string, diag Diag) string {
	var sb strings.Builder
	sb.WriteString(diag.String())
	sb.WriteString("\n")

	if !diag.HasLoc() {
		return sb.String()
	}

	lines := strings.Split(src, "\n")
	idx := diag.Loc.Line - 1
	if idx < 0 || idx >= len(lines) {
		return sb.String()
	}
	line := strings.TrimRight(lines[idx], "\r")
	sb.WriteString(line)
	sb.WriteString("\n")

	// tabs are copied so the caret lines up whatever the tab width
	col := diag.Loc.Column - 1
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("^\n")

	return sb.String()
}
