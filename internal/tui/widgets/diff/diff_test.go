package diff

import (
	"strings"
	"testing"
)

func TestUnifiedNoChanges(t *testing.T) {
	out := Unified("same\n", "same\n")
	if !strings.Contains(out, "no changes") {
		t.Fatalf("expected no-changes notice, got %q", out)
	}
}

func TestUnifiedAddedLine(t *testing.T) {
	out := Unified("one\ntwo\n", "one\ntwo\nthree\n")
	if !strings.Contains(out, "+ three") {
		t.Fatalf("expected added line, got %q", out)
	}
	if strings.Contains(out, "- one") {
		t.Fatalf("unchanged line marked deleted: %q", out)
	}
}

func TestUnifiedRemovedLine(t *testing.T) {
	out := Unified("one\ntwo\n", "one\n")
	if !strings.Contains(out, "- two") {
		t.Fatalf("expected removed line, got %q", out)
	}
}

func TestUnifiedReplacedLine(t *testing.T) {
	out := Unified("hello world\n", "hello there\n")
	if !strings.Contains(out, "- hello world") || !strings.Contains(out, "+ hello there") {
		t.Fatalf("expected replaced pair, got %q", out)
	}
}
