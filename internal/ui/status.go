package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusPrinter keeps a single status line on the console, overwriting it
// in place on every change.
type StatusPrinter struct {
	out     io.Writer
	styles  Styles
	current string
}

// NewStatusPrinter returns a printer writing to out.
func NewStatusPrinter(out io.Writer) *StatusPrinter {
	return &StatusPrinter{
		out:    out,
		styles: Dracula.Styles(lipgloss.NewRenderer(out)),
	}
}

// Print replaces the status line with "[timestamp] status". Repeating the
// current message prints nothing.
func (p *StatusPrinter) Print(timestamp, status string) {
	plain := "[" + timestamp + "] " + status
	if plain == p.current {
		return
	}

	var b strings.Builder
	if p.current != "" {
		b.WriteString("\r")
		b.WriteString(strings.Repeat(" ", lipgloss.Width(p.current)))
	}
	b.WriteString("\r")
	b.WriteString(p.styles.Timestamp.Render("[" + timestamp + "]"))
	b.WriteString(" ")
	if strings.Contains(status, "!)") {
		b.WriteString(p.styles.Warning.Render(status))
	} else {
		b.WriteString(p.styles.Text.Render(status))
	}
	_, _ = io.WriteString(p.out, b.String())
	p.current = plain
}

// Println ends the status line and prints msg on a line of its own.
func (p *StatusPrinter) Println(msg string) {
	if p.current != "" {
		_, _ = io.WriteString(p.out, "\n")
		p.current = ""
	}
	_, _ = fmt.Fprintln(p.out, msg)
}

// Banner prints the startup summary.
func Banner(out io.Writer, url, overlayPath string) {
	styles := Dracula.Styles(lipgloss.NewRenderer(out))
	lines := []string{
		strings.Repeat("=", 22),
		styles.Success.Render("Connected to OpenLP at") + " " + styles.Accent.Render(url),
		"Using " + styles.Accent.Render(overlayPath) + " as text layer",
		styles.Hint.Render("Press Ctrl+C once to enable/disable, twice to quit"),
	}
	for _, line := range lines {
		_, _ = fmt.Fprintln(out, line)
	}
}
