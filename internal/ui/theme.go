package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used on the console.
type Theme struct {
	Text    string
	Muted   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Dracula is the default palette.
var Dracula = Theme{
	Text:    "#F8F8F2",
	Muted:   "#6272A4",
	Accent:  "#BD93F9",
	Success: "#50FA7B",
	Warning: "#F1FA8C",
	Danger:  "#FF5555",
}

// Styles holds the lipgloss styles derived from a Theme.
type Styles struct {
	Timestamp lipgloss.Style
	Text      lipgloss.Style
	Warning   lipgloss.Style
	Danger    lipgloss.Style
	Success   lipgloss.Style
	Accent    lipgloss.Style
	Hint      lipgloss.Style
}

// Styles returns lipgloss styles for this theme bound to renderer r, so color
// support is detected for the writer actually being used.
func (t Theme) Styles(r *lipgloss.Renderer) Styles {
	return Styles{
		Timestamp: r.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Text:      r.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Warning:   r.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Danger:    r.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		Success:   r.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Accent:    r.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Hint:      r.NewStyle().Foreground(lipgloss.Color(t.Muted)).Italic(true),
	}
}
