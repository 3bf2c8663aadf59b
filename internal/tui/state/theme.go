package state

// Theme is one of the fixed highlighting themes. Each maps onto a chroma
// style the highlight package resolves at render time.
type Theme int

const (
	SolarizedDark Theme = iota
	SolarizedLight
	Dracula
	Monokai
	Nord
	GitHub
)

// DefaultTheme is what the editor starts with.
const DefaultTheme = SolarizedDark

// Themes lists every theme in picker order.
var Themes = []Theme{
	SolarizedDark,
	SolarizedLight,
	Dracula,
	Monokai,
	Nord,
	GitHub,
}

func (t Theme) String() string {
	switch t {
	case SolarizedDark:
		return "Solarized Dark"
	case SolarizedLight:
		return "Solarized Light"
	case Dracula:
		return "Dracula"
	case Monokai:
		return "Monokai"
	case Nord:
		return "Nord"
	case GitHub:
		return "GitHub"
	}
	return "Solarized Dark"
}

// ChromaStyle returns the registered chroma style name for t.
func (t Theme) ChromaStyle() string {
	switch t {
	case SolarizedDark:
		return "solarized-dark"
	case SolarizedLight:
		return "solarized-light"
	case Dracula:
		return "dracula"
	case Monokai:
		return "monokai"
	case Nord:
		return "nord"
	case GitHub:
		return "github"
	}
	return "solarized-dark"
}

// Dark reports whether t is a dark-background theme.
func (t Theme) Dark() bool {
	switch t {
	case SolarizedLight, GitHub:
		return false
	}
	return true
}

// Next cycles to the following theme, wrapping at the end of the list.
func (t Theme) Next() Theme {
	for i, cur := range Themes {
		if cur == t {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return DefaultTheme
}
