package progress

import "github.com/charmbracelet/lipgloss"

type styles struct {
	stage   lipgloss.Style
	tool    lipgloss.Style
	line    lipgloss.Style
	meta    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	hint    lipgloss.Style
}

func newStyles() styles {
	return styles{
		stage:   lipgloss.NewStyle().Bold(true),
		tool:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		line:    lipgloss.NewStyle().Faint(true),
		meta:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
