package locations

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	location   lipgloss.Style
	active     lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	enabled    lipgloss.Style
	disabled   lipgloss.Style
	unresolved lipgloss.Style
	detail     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		location:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		active:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		enabled:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		disabled:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		unresolved: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
