package state

import "testing"

func TestThemeCycleCoversAllThemes(t *testing.T) {
	seen := map[Theme]bool{}
	cur := DefaultTheme
	for range Themes {
		seen[cur] = true
		cur = cur.Next()
	}
	if cur != DefaultTheme {
		t.Fatalf("expected cycle to wrap back to default, got %v", cur)
	}
	if len(seen) != len(Themes) {
		t.Fatalf("cycle visited %d of %d themes", len(seen), len(Themes))
	}
}

func TestThemeChromaStyles(t *testing.T) {
	for _, th := range Themes {
		if th.ChromaStyle() == "" {
			t.Fatalf("theme %v has no chroma style", th)
		}
		if th.String() == "" {
			t.Fatalf("theme %v has no display name", th)
		}
	}
}

func TestThemeDarkness(t *testing.T) {
	if !SolarizedDark.Dark() || SolarizedLight.Dark() {
		t.Fatalf("solarized darkness misclassified")
	}
	if GitHub.Dark() {
		t.Fatalf("github is a light theme")
	}
}
