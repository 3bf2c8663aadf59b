// Package saveprompt is the modal save-as dialog, a single text input for the
// target path. Like opendialog it resolves to exactly one outcome.
package saveprompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultName seeds the input for never-saved documents.
const DefaultName = "new.txt"

// SubmittedMsg is emitted once with the chosen target path.
type SubmittedMsg struct {
	Path string
}

// CancelledMsg is emitted once when the user backs out.
type CancelledMsg struct{}

var titleStyle = lipgloss.NewStyle().Bold(true)

type Model struct {
	input textinput.Model
}

// New returns a prompt pre-filled with name.
func New(name string) Model {
	ti := textinput.New()
	ti.Placeholder = DefaultName
	ti.CharLimit = 0
	ti.Width = 48
	ti.SetValue(name)
	ti.CursorEnd()
	ti.Focus()
	return Model{input: ti}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			path := strings.TrimSpace(m.input.Value())
			if path == "" {
				return m, nil
			}
			return m, func() tea.Msg { return SubmittedMsg{Path: path} }
		case tea.KeyEsc:
			return m, func() tea.Msg { return CancelledMsg{} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return titleStyle.Render("Choose a file name...") + "\n\n" +
		m.input.View() + "\n\n" +
		"enter: save   esc: cancel\n"
}
