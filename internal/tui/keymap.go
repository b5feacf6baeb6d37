package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	Quit      key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Center    key.Binding
	FastLeft  key.Binding
	FastRight key.Binding
	Help      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "smaller θ"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "larger θ"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous coefficient"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next coefficient"),
		),
		Center: key.NewBinding(
			key.WithKeys("0", "home"),
			key.WithHelp("0", "jump to grid center"),
		),
		FastLeft: key.NewBinding(
			key.WithKeys("pgup", "H"),
			key.WithHelp("pgup", "10 steps left"),
		),
		FastRight: key.NewBinding(
			key.WithKeys("pgdown", "L"),
			key.WithHelp("pgdn", "10 steps right"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}
