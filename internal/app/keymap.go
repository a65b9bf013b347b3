package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains all key bindings.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	PlayPause key.Binding
	Skip      key.Binding
	Shuffle   key.Binding
	SeekBack  key.Binding
	SeekFwd   key.Binding
	VolUp     key.Binding
	VolDown   key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play track"),
		),
		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Skip: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "skip"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shuffle"),
		),
		SeekBack: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "seek back"),
		),
		SeekFwd: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "seek forward"),
		),
		VolUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "volume up"),
		),
		VolDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "volume down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
