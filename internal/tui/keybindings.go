package tui

import "github.com/charmbracelet/bubbles/key"

// KeyBindings holds the dashboard's keyboard shortcuts.
type KeyBindings struct {
	Quit    key.Binding
	Refresh key.Binding
}

// DefaultKeyBindings returns the standard dashboard shortcuts.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh now"),
		),
	}
}
