package term

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("36")
	warning = lipgloss.Color("214")
	danger  = lipgloss.Color("196")
	dim     = lipgloss.Color("245")
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle        = lipgloss.NewStyle().Foreground(dim)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(danger)
	warnStyle       = lipgloss.NewStyle().Foreground(warning)
	priceStyle      = lipgloss.NewStyle().Bold(true)
	suggestionStyle = lipgloss.NewStyle().Foreground(accent)
	boxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
)
