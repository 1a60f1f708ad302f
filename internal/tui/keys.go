package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the board view. Plain typing is routed to
// the title input, so every action sits on a non printable key.
type KeyMap struct {
	Submit       key.Binding
	Cancel       key.Binding
	NextPriority key.Binding
	PrevPriority key.Binding
	Up           key.Binding
	Down         key.Binding
	Toggle       key.Binding
	Edit         key.Binding
	Delete       key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add/update"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/quit"),
		),
		NextPriority: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next priority"),
		),
		PrevPriority: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev priority"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle"),
		),
		Edit: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextPriority, k.Toggle, k.Edit, k.Delete, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Cancel, k.NextPriority, k.PrevPriority},
		{k.Up, k.Down, k.Toggle, k.Edit, k.Delete, k.Quit},
	}
}
