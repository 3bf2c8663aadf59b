package helpoverlay

import (
	"fmt"
	"strings"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns the grouped key reference shown behind F1.
func (HelpOverlay) View() string {
	sections := []struct {
		title string
		keys  []string
	}{
		{"File", []string{"ctrl+n: new", "ctrl+o: open", "ctrl+s: save"}},
		{"Clipboard", []string{"ctrl+y: copy buffer", "ctrl+v: paste"}},
		{"View", []string{"ctrl+t: theme", "ctrl+p: highlighted preview", "f2: unsaved changes"}},
		{"Program", []string{"f1: this help", "ctrl+q: quit"}},
	}
	var b strings.Builder
	b.WriteString("Help\n")
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	b.WriteString("\npress any key to close\n")
	return b.String()
}
