package ui

import (
	"github.com/charmbracelet/lipgloss"

	"openrepo/internal/theme"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
	urlStyle    = lipgloss.NewStyle().Underline(true)
	statusStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

// badgeStyle renders the project name on its colour, with readable text.
func badgeStyle(color string) lipgloss.Style {
	if color == "" {
		return titleStyle
	}
	fg := "#000000"
	if theme.IsDark(color) {
		fg = "#ffffff"
	}
	return titleStyle.Background(lipgloss.Color(color)).Foreground(lipgloss.Color(fg)).Padding(0, 1)
}
