package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Truncate shortens s to at most width visible cells, keeping ANSI styling
// intact and marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// PadRight pads s with spaces to width visible cells.
func PadRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// Panel frames lines in a box using the current theme.
func Panel(lines []string) string {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		maxw = max(maxw, ansi.StringWidth(ln))
	}
	padded := make([]string, len(lines))
	for i, ln := range lines {
		padded[i] = PadRight(ln, maxw)
	}
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(padded, "\n"))
}
