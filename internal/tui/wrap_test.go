package tui

import "testing"

func TestWrapHintsFits(t *testing.T) {
	out := wrapHints("enter start · q quit", 40)
	if out != "enter start · q quit" {
		t.Fatalf("unexpected wrap: %q", out)
	}
}

func TestWrapHintsBreaksOnSpaces(t *testing.T) {
	out := wrapHints("one two three", 7)
	if out != "one two\nthree" {
		t.Fatalf("unexpected wrap: %q", out)
	}
}

func TestWrapHintsLongWord(t *testing.T) {
	out := wrapHints("a verylongword b", 4)
	if out != "a\nverylongword\nb" {
		t.Fatalf("unexpected wrap: %q", out)
	}
}

func TestWrapHintsZeroWidth(t *testing.T) {
	if out := wrapHints("abc", 0); out != "abc" {
		t.Fatalf("unexpected wrap: %q", out)
	}
}
