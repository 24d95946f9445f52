package ui

import "github.com/charmbracelet/lipgloss"

// Styles defines the lipgloss styles used in the CLI.
var Styles = struct {
	Bold      lipgloss.Style
	Header    lipgloss.Style
	Assistant lipgloss.Style
}{
	Bold: lipgloss.NewStyle().Bold(true),

	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")),

	Assistant: lipgloss.NewStyle().
		Foreground(lipgloss.Color("86")),
}
