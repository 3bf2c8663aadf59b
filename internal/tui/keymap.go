package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the editor-level chords. These are matched before the buffer
// sees the key, so they shadow the textarea bindings on the same chords
// (ctrl+n/ctrl+p line motion stays available via the arrow keys).
type KeyMap struct {
	Save    key.Binding
	Open    key.Binding
	New     key.Binding
	Theme   key.Binding
	Preview key.Binding
	Copy    key.Binding
	Paste   key.Binding
	Help    key.Binding
	Changes key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Open: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open"),
		),
		New: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Preview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "preview"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy buffer"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Changes: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "unsaved changes"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}
