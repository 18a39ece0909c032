// Package ui holds the console pieces around the control loop: the prompt
// that asks for the OpenLP URL and the printer that keeps the status line
// current.
//
// # URL Prompt
//
// PromptURL runs a small Bubble Tea program with a single textinput. Enter
// submits; an empty entry falls back to the previously saved URL. The entry
// is normalized with openlp.NormalizeBaseURL and then checked with the
// supplied CheckFunc as a tea.Cmd, so the view keeps rendering while the
// request is in flight. A failed check shows the error and keeps the prompt
// open. Ctrl+C or Esc returns ErrCancelled.
//
// # Status Line
//
// StatusPrinter writes "[HH:MM:SS] status" with a carriage return and blanks
// whatever the previous line held, so the terminal shows one line that
// changes in place. Repeated identical lines are not written. Statuses that
// carry a "(...!)" tag render in the warning color.
//
// # Styling
//
// Colors come from a Theme (Dracula by default) turned into lipgloss styles
// through a renderer bound to the output writer. Writers that are not a
// terminal get plain text.
package ui
