package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/railinfo/internal/report"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Error    lipgloss.Style

	// Report styles the lookup report inside the result card.
	Report report.Theme
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		Report: reportTheme(),
	}
}

func reportTheme() report.Theme {
	t := report.DefaultTheme()
	t.Title = t.Title.Foreground(lipgloss.Color("63"))
	t.Header = t.Header.Foreground(lipgloss.Color("63"))
	return t
}
