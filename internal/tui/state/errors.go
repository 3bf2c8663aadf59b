package state

import (
	"errors"
	"fmt"
)

// ErrDialogClosed means the user cancelled a pick or save-as dialog.
// It is never fatal; it lands in State.Err like any other pipeline failure.
var ErrDialogClosed = errors.New("dialog closed")

// IOError wraps a read/write failure from the pipeline with enough context
// for the status bar. Unwrap keeps errors.Is/As working against the
// underlying OS error.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
