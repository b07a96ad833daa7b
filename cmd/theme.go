package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds all lipgloss styles for help and error output.
type Theme struct {
	// Colors
	Primary lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Subtle  lipgloss.Color
	Accent  lipgloss.Color
	White   lipgloss.Color
	Gold    lipgloss.Color
	Dark    lipgloss.Color

	// Common styles
	Title     lipgloss.Style
	Section   lipgloss.Style
	Divider   lipgloss.Style
	Dim       lipgloss.Style
	Info      lipgloss.Style
	ErrorText lipgloss.Style
	HelpText  lipgloss.Style

	// Help styles
	Command     lipgloss.Style
	Flag        lipgloss.Style
	Description lipgloss.Style
	Example     lipgloss.Style
}

// NewTheme builds the theme for w. Color is only emitted when w is a
// terminal, so redirected output stays plain text.
func NewTheme(w io.Writer) *Theme {
	r := lipgloss.NewRenderer(w)
	t := &Theme{
		Primary: lipgloss.Color("#7D56F4"),
		Success: lipgloss.Color("#73F59F"),
		Error:   lipgloss.Color("#FF6B6B"),
		Subtle:  lipgloss.Color("#626262"),
		Accent:  lipgloss.Color("#00D4FF"),
		White:   lipgloss.Color("#FAFAFA"),
		Gold:    lipgloss.Color("#FFD700"),
		Dark:    lipgloss.Color("#444444"),
	}

	t.Title = r.NewStyle().
		Bold(true).
		Foreground(t.White).
		Background(t.Primary).
		Padding(0, 1)

	t.Section = r.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	t.Divider = r.NewStyle().
		Foreground(t.Dark)

	t.Dim = r.NewStyle().
		Foreground(t.Subtle)

	t.Info = r.NewStyle().
		Foreground(t.Accent)

	t.ErrorText = r.NewStyle().
		Bold(true).
		Foreground(t.Error)

	t.HelpText = r.NewStyle().
		Italic(true).
		Foreground(t.Subtle)

	t.Command = r.NewStyle().
		Foreground(t.Success)

	t.Flag = r.NewStyle().
		Foreground(t.Accent)

	t.Description = r.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	t.Example = r.NewStyle().
		Italic(true).
		Foreground(t.Gold)

	return t
}
