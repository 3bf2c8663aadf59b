package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"scrawl/internal/document"
	"scrawl/internal/tui/util"
	"scrawl/internal/tui/widgets/diff"
	"scrawl/internal/tui/widgets/helpoverlay"
	"scrawl/internal/tui/widgets/statusbar"
)

var (
	palette      = util.DefaultPalette()
	overlayStyle = lipgloss.NewStyle().Padding(1, 2)
	hintKeyStyle = lipgloss.NewStyle().Foreground(palette.Primary).Bold(true)
	hintOffStyle = lipgloss.NewStyle().Foreground(palette.MutedDark)
	themeStyle   = lipgloss.NewStyle().Foreground(palette.Muted)
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.mode {
	case modeOpen:
		return overlayStyle.Render(m.open.View())
	case modeSaveAs:
		return overlayStyle.Render(m.save.View())
	case modeTheme:
		return overlayStyle.Render(m.theme.View())
	case modeHelp:
		return overlayStyle.Render(helpoverlay.NewHelpOverlay().View())
	case modeChanges:
		return overlayStyle.Render(m.changes.View())
	}
	return m.viewEditor()
}

func (m Model) viewEditor() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	body := m.docView()
	if m.showPreview {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.preview.View())
	}

	return m.viewToolbar(width) + "\n" +
		body + "\n" +
		statusbar.View(m.st, m.lastSaved, m.notice, width)
}

// viewToolbar lays out the action hints left and the theme picker hint right,
// with the save hint dimmed while there is nothing to save.
func (m Model) viewToolbar(width int) string {
	save := action("^S", "Save")
	if m.st.Saved {
		save = hintOffStyle.Render("^S Save")
	}
	left := strings.Join([]string{
		action("^N", "New"),
		action("^O", "Open"),
		save,
	}, "  ")
	right := themeStyle.Render(m.st.Theme.String()) + " " + action("^T", "Theme")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func action(chord, label string) string {
	return hintKeyStyle.Render(chord) + " " + label
}

func (m Model) docView() string {
	if buf, ok := m.st.Doc.(document.Buffer); ok {
		return buf.View()
	}
	return m.st.Doc.Text()
}

// openChanges fills the changes overlay with the diff of saved vs buffer.
func (m Model) openChanges() Model {
	w, h := m.width, m.height-2
	if w == 0 {
		w, h = 80, 22
	}
	m.changes = viewport.New(w, h)
	m.changes.SetContent(diff.Unified(m.lastSaved, m.st.Doc.Text()))
	m.mode = modeChanges
	return m
}
