package utils

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle is used for section headings.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")) // Cyan

	// SuccessStyle is used for confirmation messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	// ErrorStyle is used for failure messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// WarnStyle is used for cancellations and cautions.
	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange

	// DimStyle is used for secondary detail.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")) // Dark gray

	// ValueStyle is used for keys, ids, and URLs.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")). // Bright white
			Bold(true)
)
