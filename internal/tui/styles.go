package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	descStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	ownerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	urlStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true)
	counterStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	inputErrorStyle = inputStyle.BorderForeground(lipgloss.Color("196"))

	entryStyle         = lipgloss.NewStyle().PaddingLeft(2)
	selectedEntryStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color("99")).
				PaddingLeft(1)
)
