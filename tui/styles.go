package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	styleLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(8)

	styleMethod = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	styleFocused = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214"))

	styleHint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	styleResponse = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	styleResponseFocused = styleResponse.
				BorderForeground(lipgloss.Color("214"))
)
