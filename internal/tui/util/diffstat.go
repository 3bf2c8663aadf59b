package util

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffStat counts runes added and removed between the last persisted text and
// the current buffer. Shown next to the dirty marker in the status bar.
func DiffStat(before, after string) (added, removed int) {
	if before == after {
		return 0, 0
	}
	dmp := diffmatchpatch.New()
	for _, d := range dmp.DiffMain(before, after, false) {
		n := len([]rune(d.Text))
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += n
		case diffmatchpatch.DiffDelete:
			removed += n
		}
	}
	return added, removed
}

// FormatDiffStat renders the counts as "+a -r", omitting zero sides.
// Returns "" when nothing changed.
func FormatDiffStat(added, removed int) string {
	switch {
	case added > 0 && removed > 0:
		return fmt.Sprintf("+%d -%d", added, removed)
	case added > 0:
		return fmt.Sprintf("+%d", added)
	case removed > 0:
		return fmt.Sprintf("-%d", removed)
	}
	return ""
}
