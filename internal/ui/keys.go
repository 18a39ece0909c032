package ui

import "github.com/charmbracelet/bubbles/key"

// promptKeys are the bindings of the URL prompt.
type promptKeys struct {
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultPromptKeys() promptKeys {
	return promptKeys{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "connect"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c", "cancel"),
		),
	}
}
