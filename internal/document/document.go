// Package document backs the editor's opaque buffer with a bubbles textarea.
package document

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"scrawl/internal/tui/state"
)

// KeyAction is a key press routed into the buffer.
type KeyAction struct {
	Key tea.KeyMsg
}

// editingKeys are the textarea bindings that change content rather than move
// the cursor. Keys the tui layer claims for itself (ctrl+s, ctrl+n, ...) are
// intercepted before they ever reach the buffer.
var editingKeys = map[string]bool{
	"ctrl+h":        true, // delete char backward
	"ctrl+d":        true, // delete char forward
	"ctrl+k":        true, // delete to end of line
	"ctrl+u":        true, // delete to start of line
	"ctrl+w":        true, // delete word backward
	"ctrl+m":        true, // newline
	"alt+backspace": true,
	"alt+delete":    true,
	"alt+d":         true,
	"alt+u":         true, // uppercase word
	"alt+l":         true, // lowercase word
	"alt+c":         true, // capitalize word
}

// IsEdit reports whether the key press changes buffer content.
func (a KeyAction) IsEdit() bool {
	switch a.Key.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyEnter, tea.KeyTab,
		tea.KeyBackspace, tea.KeyDelete:
		return true
	}
	return editingKeys[a.Key.String()]
}

// InsertAction inserts text at the cursor, used for clipboard paste.
type InsertAction struct {
	Text string
}

func (InsertAction) IsEdit() bool { return true }

// Buffer implements state.Document over a textarea. It carries value
// semantics: Apply and WithText return the updated buffer.
type Buffer struct {
	ta     textarea.Model
	width  int
	height int
}

// New returns an empty focused buffer sized width x height.
func New(width, height int) Buffer {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	ta.Cursor.SetMode(cursor.CursorStatic)
	ta.Focus()
	if width > 0 {
		ta.SetWidth(width)
	}
	if height > 0 {
		ta.SetHeight(height)
	}
	return Buffer{ta: ta, width: width, height: height}
}

// Apply implements state.Document.
func (b Buffer) Apply(action state.EditAction) state.Document {
	switch a := action.(type) {
	case KeyAction:
		b.ta, _ = b.ta.Update(a.Key)
	case InsertAction:
		b.ta.InsertString(a.Text)
	}
	return b
}

// WithText implements state.Document: a fresh buffer over text with the same
// dimensions.
func (b Buffer) WithText(text string) state.Document {
	nb := New(b.width, b.height)
	nb.ta.SetValue(text)
	return nb
}

// Text implements state.Document.
func (b Buffer) Text() string { return b.ta.Value() }

// CursorPosition implements state.Document, zero-based.
func (b Buffer) CursorPosition() (int, int) {
	info := b.ta.LineInfo()
	return b.ta.Line(), info.StartColumn + info.ColumnOffset
}

// SetSize resizes the underlying textarea. Sizing is a view concern and does
// not go through the reducer.
func (b Buffer) SetSize(width, height int) Buffer {
	b.width, b.height = width, height
	if width > 0 {
		b.ta.SetWidth(width)
	}
	if height > 0 {
		b.ta.SetHeight(height)
	}
	return b
}

// View renders the textarea.
func (b Buffer) View() string { return b.ta.View() }
