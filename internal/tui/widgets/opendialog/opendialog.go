// Package opendialog is the modal file-open dialog, a filepicker that
// resolves to exactly one picked-or-cancelled outcome.
package opendialog

import (
	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PickedMsg is emitted once when the user chooses a file.
type PickedMsg struct {
	Path string
}

// CancelledMsg is emitted once when the user closes the dialog.
type CancelledMsg struct{}

var titleStyle = lipgloss.NewStyle().Bold(true)

type Model struct {
	fp filepicker.Model
}

// New returns a picker rooted at dir.
func New(dir string, height int) Model {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AutoHeight = false
	if height > 0 {
		fp.Height = height
	}
	return Model{fp: fp}
}

func (m Model) Init() tea.Cmd { return m.fp.Init() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "ctrl+g":
			return m, func() tea.Msg { return CancelledMsg{} }
		}
	}

	var cmd tea.Cmd
	m.fp, cmd = m.fp.Update(msg)

	if ok, path := m.fp.DidSelectFile(msg); ok {
		return m, tea.Batch(cmd, func() tea.Msg { return PickedMsg{Path: path} })
	}
	return m, cmd
}

func (m Model) View() string {
	return titleStyle.Render("Choose a text file...") + "\n\n" +
		m.fp.View() + "\n" +
		"enter: open   esc: cancel\n"
}
