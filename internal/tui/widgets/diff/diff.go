// Package diff renders the unsaved changes between the last persisted text
// and the current buffer as a unified line diff.
package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"

	"scrawl/internal/tui/util"
)

var (
	palette     = util.DefaultPalette()
	addStyle    = lipgloss.NewStyle().Foreground(palette.Success)
	delStyle    = lipgloss.NewStyle().Foreground(palette.Danger)
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// Unified returns a line diff of saved vs current, "+"/"-" prefixed. Equal
// lines pass through unprefixed so the change keeps its context.
func Unified(saved, current string) string {
	if saved == current {
		return headerStyle.Render("Unsaved changes") + "\n\nno changes\n"
	}

	dmp := diffmatchpatch.New()
	a, b, lineIndex := dmp.DiffLinesToChars(saved, current)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineIndex)

	var out strings.Builder
	out.WriteString(headerStyle.Render("Unsaved changes") + "\n\n")
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				out.WriteString(addStyle.Render("+ "+line) + "\n")
			case diffmatchpatch.DiffDelete:
				out.WriteString(delStyle.Render("- "+line) + "\n")
			default:
				out.WriteString("  " + line + "\n")
			}
		}
	}
	out.WriteString("\npress any key to close\n")
	return out.String()
}

// splitLines breaks a diff chunk into lines, dropping the trailing empty
// element a final newline leaves behind.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
