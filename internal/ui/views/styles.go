package views

import (
	"github.com/charmbracelet/lipgloss"

	"booklike/internal/theme"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Palette theme.Palette

	Screen    lipgloss.Style
	Header    lipgloss.Style
	Title     lipgloss.Style
	Dim       lipgloss.Style
	Page      lipgloss.Style
	PageTitle lipgloss.Style
	Body      lipgloss.Style
	Blank     lipgloss.Style
	Frame     lipgloss.Style
	Pager     lipgloss.Style
	Track     lipgloss.Style
	Thumb     lipgloss.Style
	Play      lipgloss.Style
	InfoBox   lipgloss.Style
	Key       lipgloss.Style
	Status    lipgloss.Style
	Prompt    lipgloss.Style
}

// NewStyles derives the styles from a theme
func NewStyles(t theme.Theme) *Styles {
	p := t.Palette()
	c := theme.Color
	return &Styles{
		Palette: p,
		Screen:  lipgloss.NewStyle().Background(c(p.Bg0)).Foreground(c(p.Fg0)),
		Header:  lipgloss.NewStyle().Background(c(p.Bg1)).Foreground(c(p.Dim0)),
		Title: lipgloss.NewStyle().
			Bold(true).
			Background(c(p.Bg1)).
			Foreground(c(p.Fg1)),
		Dim: lipgloss.NewStyle().Foreground(c(p.Dim0)),
		Page: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(p.Bg2)).
			Foreground(c(p.Fg0)),
		PageTitle: lipgloss.NewStyle().Bold(true).Foreground(c(p.Fg1)),
		Body:      lipgloss.NewStyle().Foreground(c(p.Fg0)),
		Blank:     lipgloss.NewStyle().Foreground(c(p.Bg2)),
		Frame:     lipgloss.NewStyle().Foreground(c(p.Cyan)),
		Pager:     lipgloss.NewStyle().Bold(true).Foreground(c(p.Blue)),
		Track:     lipgloss.NewStyle().Foreground(c(p.Bg2)),
		Thumb:     lipgloss.NewStyle().Foreground(c(p.Orange)),
		Play:      lipgloss.NewStyle().Bold(true).Foreground(c(p.Green)),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(p.Violet)).
			Padding(1, 2).
			Background(c(p.Bg1)).
			Foreground(c(p.Fg0)),
		Key:    lipgloss.NewStyle().Foreground(c(p.Yellow)),
		Status: lipgloss.NewStyle().Foreground(c(p.Magenta)),
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(c(p.Violet)),
	}
}

