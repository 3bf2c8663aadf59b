// Package pipeline runs the editor's file I/O as Bubble Tea commands.
//
// Each command is one unit of asynchronous work: it runs off the update loop,
// touches the disk exactly once, and delivers exactly one result message back
// into the program, success or failure. Nothing here ever cancels; a result
// arriving after the state has moved on is applied like any other message.
package pipeline

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"scrawl/internal/tui/state"
)

// Load reads path and yields a state.FileOpened.
func Load(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("pipeline: read %s: %v", path, err)
			return state.FileOpened{Err: &state.IOError{Op: "read", Path: path, Err: err}}
		}
		return state.FileOpened{Path: path, Text: string(data)}
	}
}

// Write persists text to path and yields a state.FileSaved.
func Write(path, text string) tea.Cmd {
	return func() tea.Msg {
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			log.Printf("pipeline: write %s: %v", path, err)
			return state.FileSaved{Err: &state.IOError{Op: "write", Path: path, Err: err}}
		}
		return state.FileSaved{Path: path}
	}
}
