// Package state holds the editor's core state and the pure transition
// function that drives it. It knows nothing about rendering or Bubble Tea;
// the tui package feeds it messages and executes the commands it returns.
package state

// Document is the opaque editable text buffer the editor owns. Implementations
// carry value semantics: Apply and WithText return the updated buffer rather
// than mutating in place.
type Document interface {
	// Apply routes one edit action into the buffer.
	Apply(action EditAction) Document
	// WithText returns a fresh buffer holding text.
	WithText(text string) Document
	// Text returns the full buffer contents.
	Text() string
	// CursorPosition returns the zero-based (row, column) of the cursor.
	CursorPosition() (row, col int)
}

// EditAction is a single user edit routed into the Document.
type EditAction interface {
	// IsEdit reports whether the action changes buffer content.
	// Pure cursor motion returns false.
	IsEdit() bool
}

// State is the whole editor state. It has exactly one owner and is only
// replaced through Apply.
type State struct {
	// Doc is the current document buffer.
	Doc Document

	// Path is where the document lives on disk. Empty means an unsaved
	// new document.
	Path string

	// Saved is true iff the buffer content matches what was last loaded
	// or written to disk.
	Saved bool

	// Err is the most recent pipeline failure. It is cleared by the next
	// edit and never set by one.
	Err error

	// Theme is the active highlighting theme.
	Theme Theme
}

// New returns the startup state: an empty unsaved-nothing document that is
// considered saved until the first edit.
func New(doc Document) State {
	return State{
		Doc:   doc,
		Saved: true,
		Theme: DefaultTheme,
	}
}
