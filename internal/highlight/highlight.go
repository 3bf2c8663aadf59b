// Package highlight renders buffer text through chroma for the preview pane.
package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"scrawl/internal/tui/state"
)

// fallbackExt is assumed for unsaved documents, matching the default file.
const fallbackExt = "go"

// Render colorizes text for the file at path using the theme's chroma style.
// On any failure it degrades to the plain text rather than erroring; the
// preview is decoration, not state.
func Render(text, path string, theme state.Theme) string {
	lex := lexerFor(path)
	lex = chroma.Coalesce(lex)

	sty := styles.Get(theme.ChromaStyle())
	if sty == nil {
		sty = styles.Fallback
	}
	fmtr := formatters.Get("terminal16m")
	if fmtr == nil {
		fmtr = formatters.Fallback
	}

	it, err := lex.Tokenise(nil, text)
	if err != nil {
		return text
	}
	var b strings.Builder
	if err := fmtr.Format(&b, sty, it); err != nil {
		return text
	}
	return strings.TrimRight(b.String(), "\n")
}

func lexerFor(path string) chroma.Lexer {
	if path != "" {
		if lex := lexers.Match(filepath.Base(path)); lex != nil {
			return lex
		}
	}
	if lex := lexers.Get(fallbackExt); lex != nil {
		return lex
	}
	return lexers.Fallback
}

// Extension returns the extension the highlighter keys on for the status
// line's language hint.
func Extension(path string) string {
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		return ext
	}
	return fallbackExt
}
