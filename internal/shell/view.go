package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/checklist/internal/ui"
)

func (m Model) View() string {
	if !m.placed {
		return ""
	}
	lay := LayoutFor(m.geom)

	var body string
	if m.dialog != "" {
		body = m.dialogView(lay)
	} else {
		body = strings.Join([]string{
			m.titleLine(lay.InnerWidth),
			m.list.View(),
			"",
			m.input.View(),
		}, "\n")
	}

	borderColor := m.theme.BorderColor
	if m.dialog != "" {
		borderColor = m.theme.FocusColor
	}
	frame := lipgloss.NewStyle().
		Border(m.theme.Border).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(m.geom.Width - 2).
		Height(m.geom.Height - 2).
		MaxHeight(m.geom.Height)

	return lipgloss.NewStyle().
		MarginLeft(m.geom.Left).
		MarginTop(m.geom.Top).
		Render(frame.Render(body))
}

func (m Model) titleLine(width int) string {
	count := m.theme.Muted.Render(fmt.Sprintf(" (%d)", m.items.Len()))
	if p := m.sched.Pending(); p > 0 {
		count = m.theme.Muted.Render(fmt.Sprintf(" (%d, %d closing)", m.items.Len(), p))
	}
	return ui.Truncate(m.theme.Title.Render(m.titleText())+count, width)
}

// dialogView is the blocking error dialog drawn in place of the window body.
func (m Model) dialogView(lay Layout) string {
	width := max(lay.InnerWidth-4, 10)
	msg := lipgloss.NewStyle().Width(width).Render(m.dialog)
	box := lipgloss.NewStyle().
		Border(m.theme.Border).
		BorderForeground(m.theme.FocusColor).
		Padding(0, 1).
		Render(strings.Join([]string{
			m.theme.Error.Render("Error"),
			msg,
			"",
			m.theme.Muted.Render("[enter] OK"),
		}, "\n"))
	return lipgloss.Place(lay.InnerWidth, m.geom.Height-2, lipgloss.Center, lipgloss.Center, box)
}
