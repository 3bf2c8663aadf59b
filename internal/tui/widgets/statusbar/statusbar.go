package statusbar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"scrawl/internal/tui/state"
	"scrawl/internal/tui/util"
)

var (
	palette     = util.DefaultPalette()
	errorStyle  = lipgloss.NewStyle().Foreground(palette.Danger)
	dirtyStyle  = lipgloss.NewStyle().Foreground(palette.Warning)
	noticeStyle = lipgloss.NewStyle().Foreground(palette.Success)
	posStyle    = lipgloss.NewStyle().Faint(true)
)

// View composes the status line: the last I/O failure's description or the
// document path ("New File" when unsaved-new), a " *" dirty marker with a
// change summary, any ephemeral notice, and the cursor position right-aligned.
// A cancelled dialog lands in s.Err too but does not replace the path text.
func View(s state.State, lastSaved, notice string, width int) string {
	var left strings.Builder

	var ioErr *state.IOError
	if errors.As(s.Err, &ioErr) {
		left.WriteString(errorStyle.Render(ioErr.Error()))
	} else if s.Path != "" {
		left.WriteString(s.Path)
	} else {
		left.WriteString("New File")
	}

	if !s.Saved {
		left.WriteString(dirtyStyle.Render(" *"))
		if sum := util.FormatDiffStat(util.DiffStat(lastSaved, s.Doc.Text())); sum != "" {
			left.WriteString(dirtyStyle.Render(" " + sum))
		}
	}

	if notice != "" {
		left.WriteString("  " + noticeStyle.Render(notice))
	}

	row, col := s.Doc.CursorPosition()
	right := posStyle.Render(fmt.Sprintf("%d:%d", row+1, col+1))

	gap := width - lipgloss.Width(left.String()) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left.String() + strings.Repeat(" ", gap) + right
}
