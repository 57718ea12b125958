package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the style definitions for the demo UI
type Styles struct {
	Title     lipgloss.Style
	Frame     lipgloss.Style
	FrameBody lipgloss.Style
	Dim       lipgloss.Style
	DotOn     lipgloss.Style
	DotOff    lipgloss.Style
	Gauge     lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Align(lipgloss.Center),
		FrameBody: lipgloss.NewStyle().Faint(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		DotOn:     lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		DotOff:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Gauge:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Help:      lipgloss.NewStyle().Faint(true),
	}
}
