package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPlain(t *testing.T) {
	p := Plain()
	for _, f := range []func(...string) string{p.Success, p.Warning, p.Info, p.Error} {
		if got := f("Word not found."); got != "Word not found." {
			t.Errorf("plain render = %q", got)
		}
	}
}

func TestNewPaletteKeepsText(t *testing.T) {
	// A buffer is not a terminal, so colors may be stripped, but the text
	// must always survive.
	p := NewPalette(&bytes.Buffer{})
	if got := p.Success("Correct!"); !strings.Contains(got, "Correct!") {
		t.Errorf("Success() = %q", got)
	}
	if got := p.Error("Sai! Nghĩa đúng là: mèo"); !strings.Contains(got, "Sai! Nghĩa đúng là: mèo") {
		t.Errorf("Error() = %q", got)
	}
}
