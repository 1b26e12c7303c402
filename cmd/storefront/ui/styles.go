package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	SoldOut  lipgloss.Style
	Featured lipgloss.Style
	Price    lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Box      lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		SoldOut:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Featured: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Price:    lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
