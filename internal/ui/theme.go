package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + window borders.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.Style
	Selected, Input                      lipgloss.Style

	BorderColor, FocusColor lipgloss.Color
	Border                  lipgloss.Border

	BoxUnchecked string
	Cursor       string
}

var current = ThemeNamed("classic")

// ThemeNamed returns the theme called name; unknown names get classic.
func ThemeNamed(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:         "neon",
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
			Input:        lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			BorderColor:  lipgloss.Color("5"),
			FocusColor:   lipgloss.Color("13"),
			Border:       lipgloss.RoundedBorder(),
			BoxUnchecked: "◻",
			Cursor:       "› ",
		}
	case "mono":
		return Theme{
			Name:         "mono",
			Title:        lipgloss.NewStyle(),
			Muted:        lipgloss.NewStyle(),
			Accent:       lipgloss.NewStyle(),
			Success:      lipgloss.NewStyle(),
			Error:        lipgloss.NewStyle(),
			Selected:     lipgloss.NewStyle().Reverse(true),
			Input:        lipgloss.NewStyle(),
			BorderColor:  lipgloss.Color(""),
			FocusColor:   lipgloss.Color(""),
			Border:       lipgloss.NormalBorder(),
			BoxUnchecked: "[ ]",
			Cursor:       "> ",
		}
	default:
		return Theme{
			Name:         "classic",
			Title:        lipgloss.NewStyle().Bold(true),
			Muted:        lipgloss.NewStyle().Faint(true),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
			Input:        lipgloss.NewStyle(),
			BorderColor:  lipgloss.Color("8"),
			FocusColor:   lipgloss.Color("12"),
			Border:       lipgloss.RoundedBorder(),
			BoxUnchecked: "☐",
			Cursor:       "> ",
		}
	}
}

// SetTheme selects the theme used by the console helpers.
func SetTheme(name string) { current = ThemeNamed(name) }

// Current returns the theme used by the console helpers.
func Current() Theme { return current }
