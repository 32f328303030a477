package display

import "github.com/charmbracelet/lipgloss"

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	rankStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	invalidStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("1"))

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("13"))
)
