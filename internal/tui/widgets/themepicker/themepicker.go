// Package themepicker is the modal list over the fixed highlighting themes.
package themepicker

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"scrawl/internal/tui/state"
)

// ChosenMsg is emitted once with the selected theme.
type ChosenMsg struct {
	Theme state.Theme
}

// CancelledMsg is emitted once when the picker is dismissed.
type CancelledMsg struct{}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
)

type Model struct {
	cursor int
}

// New returns a picker with the cursor on the active theme.
func New(active state.Theme) Model {
	m := Model{}
	for i, th := range state.Themes {
		if th == active {
			m.cursor = i
		}
	}
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(state.Themes)-1 {
			m.cursor++
		}
	case "enter":
		th := state.Themes[m.cursor]
		return m, func() tea.Msg { return ChosenMsg{Theme: th} }
	case "esc", "q":
		return m, func() tea.Msg { return CancelledMsg{} }
	}
	return m, nil
}

func (m Model) View() string {
	s := titleStyle.Render("Highlighting theme") + "\n\n"
	for i, th := range state.Themes {
		line := "  " + th.String()
		if i == m.cursor {
			line = selStyle.Render("> " + th.String())
		}
		s += line + "\n"
	}
	return s + "\nenter: select   esc: cancel\n"
}
