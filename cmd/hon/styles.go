package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hon-lang/hon/internal/diagnostics"
)

var (
	colorError = lipgloss.Color("#EF4444")
	colorOk    = lipgloss.Color("#10B981")
	colorMuted = lipgloss.Color("#6B7280")
	colorTitle = lipgloss.Color("#7C3AED")
)

var (
	ErrorHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorError)

	SnippetStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	CaretStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	OkStyle = lipgloss.NewStyle().
		Foreground(colorOk)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle)
)

// styles renders single lines. Without color every field returns its
// input unchanged, tabs included.
type styles struct {
	header  func(string) string
	snippet func(string) string
	caret   func(string) string
	ok      func(string) string
	title   func(string) string
}

func newStyles(color bool) styles {
	if !color {
		plain := func(s string) string { return s }
		return styles{header: plain, snippet: plain, caret: plain, ok: plain, title: plain}
	}
	return styles{
		header:  func(s string) string { return ErrorHeaderStyle.Render(s) },
		snippet: func(s string) string { return SnippetStyle.Render(s) },
		caret:   func(s string) string { return CaretStyle.Render(s) },
		ok:      func(s string) string { return OkStyle.Render(s) },
		title:   func(s string) string { return TitleStyle.Render(s) },
	}
}

// diag styles the output of diagnostics.Render: the header, then the
// source line and the caret line when the location is known.
func (s styles) diag(src string, diag diagnostics.Diag) string {
	lines := strings.Split(strings.TrimSuffix(diagnostics.Render(src, diag), "\n"), "\n")

	var sb strings.Builder
	for i, line := range lines {
		switch i {
		case 0:
			line = s.header(line)
		case 1:
			line = s.snippet(line)
		default:
			line = s.caret(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
