package document

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"scrawl/internal/tui/state"
)

func typeRunes(doc state.Document, s string) state.Document {
	for _, r := range s {
		doc = doc.Apply(KeyAction{Key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}})
	}
	return doc
}

func TestTypingUpdatesTextAndCursor(t *testing.T) {
	var doc state.Document = New(80, 10)
	doc = typeRunes(doc, "abc")
	if doc.Text() != "abc" {
		t.Fatalf("expected %q, got %q", "abc", doc.Text())
	}
	row, col := doc.CursorPosition()
	if row != 0 || col != 3 {
		t.Fatalf("expected cursor 0:3, got %d:%d", row, col)
	}
}

func TestEnterStartsNewLine(t *testing.T) {
	var doc state.Document = New(80, 10)
	doc = typeRunes(doc, "ab")
	doc = doc.Apply(KeyAction{Key: tea.KeyMsg{Type: tea.KeyEnter}})
	doc = typeRunes(doc, "c")
	if doc.Text() != "ab\nc" {
		t.Fatalf("expected %q, got %q", "ab\nc", doc.Text())
	}
	row, col := doc.CursorPosition()
	if row != 1 || col != 1 {
		t.Fatalf("expected cursor 1:1, got %d:%d", row, col)
	}
}

func TestWithTextReplacesContent(t *testing.T) {
	var doc state.Document = New(80, 10)
	doc = typeRunes(doc, "old")
	doc = doc.WithText("fresh")
	if doc.Text() != "fresh" {
		t.Fatalf("expected %q, got %q", "fresh", doc.Text())
	}
}

func TestInsertActionPastesAtCursor(t *testing.T) {
	var doc state.Document = New(80, 10)
	doc = typeRunes(doc, "ac")
	doc = doc.Apply(KeyAction{Key: tea.KeyMsg{Type: tea.KeyLeft}})
	doc = doc.Apply(InsertAction{Text: "b"})
	if doc.Text() != "abc" {
		t.Fatalf("expected %q, got %q", "abc", doc.Text())
	}
}

func TestActionClassification(t *testing.T) {
	cases := []struct {
		key  tea.KeyMsg
		edit bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, true},
		{tea.KeyMsg{Type: tea.KeyEnter}, true},
		{tea.KeyMsg{Type: tea.KeyBackspace}, true},
		{tea.KeyMsg{Type: tea.KeyDelete}, true},
		{tea.KeyMsg{Type: tea.KeyCtrlK}, true},
		{tea.KeyMsg{Type: tea.KeyLeft}, false},
		{tea.KeyMsg{Type: tea.KeyRight}, false},
		{tea.KeyMsg{Type: tea.KeyUp}, false},
		{tea.KeyMsg{Type: tea.KeyHome}, false},
		{tea.KeyMsg{Type: tea.KeyEnd}, false},
	}
	for _, tc := range cases {
		if got := (KeyAction{Key: tc.key}).IsEdit(); got != tc.edit {
			t.Fatalf("IsEdit(%s)=%v, want %v", tc.key.String(), got, tc.edit)
		}
	}
	if !(InsertAction{Text: "x"}).IsEdit() {
		t.Fatalf("InsertAction must be a content edit")
	}
}

func TestCursorMotionDoesNotChangeText(t *testing.T) {
	var doc state.Document = New(80, 10)
	doc = typeRunes(doc, "hello")
	doc = doc.Apply(KeyAction{Key: tea.KeyMsg{Type: tea.KeyHome}})
	if doc.Text() != "hello" {
		t.Fatalf("cursor motion changed text: %q", doc.Text())
	}
	_, col := doc.CursorPosition()
	if col != 0 {
		t.Fatalf("expected column 0 after Home, got %d", col)
	}
}
