package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")
)

var (
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleKey   = lipgloss.NewStyle().Foreground(colorDim).Width(16)
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
	StyleError = lipgloss.NewStyle().Foreground(colorRed)
	StyleBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// field is one labeled line of a report.
type field struct {
	key   string
	value any
}

// renderReport renders a titled box of key/value lines.
func renderReport(title string, fields []field) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(title))
	for _, f := range fields {
		b.WriteByte('\n')
		b.WriteString(StyleKey.Render(f.key))
		b.WriteString(StyleValue.Render(fmt.Sprint(f.value)))
	}
	return StyleBox.Render(b.String())
}
