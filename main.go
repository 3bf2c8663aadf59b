// scrawl: a single-document terminal text editor with syntax-highlighted
// preview, built on Bubble Tea.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"

	"scrawl/internal/tui"
)

const Version = "0.1.0"

func main() {
	if os.Getenv("DEBUG") != "" {
		f, err := tea.LogToFile("scrawl.log", "scrawl")
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.Printf("scrawl %s starting", Version)
	}

	if err := tui.Run(defaultFile()); err != nil {
		fmt.Fprintf(os.Stderr, "scrawl: %v\n", err)
		os.Exit(1)
	}
}

// defaultFile is the build-time-known startup document: this source file,
// so the editor always opens with something highlightable on first paint.
func defaultFile() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return file
}
