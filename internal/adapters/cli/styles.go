// Package cli contains output adapters that translate CLI operations into
// primary port calls and print the results.
package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var headingStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#7D56F4"))

var (
	builtinMarker    = color.New(color.FgCyan).Sprint("built-in")
	registeredMarker = color.New(color.FgHiMagenta).Sprint("registered")
)

func heading(s string) string {
	return headingStyle.Render(s)
}

func rootNote(s string) string {
	return color.New(color.FgRed, color.Bold).Sprint(s)
}
