package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Card     lipgloss.Style
	Metric   lipgloss.Style
	Label    lipgloss.Style
	Active   lipgloss.Style
	Curve    lipgloss.Style
	BandMark lipgloss.Style
	Help     lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Metric:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label:    lipgloss.NewStyle().Faint(true),
		Active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Curve:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		BandMark: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:     lipgloss.NewStyle().Faint(true),
	}
}
