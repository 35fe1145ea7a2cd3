// Package ui colors status lines for the terminal.
package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette renders text in one of four tones.
type Palette struct {
	Success func(...string) string
	Warning func(...string) string
	Info    func(...string) string
	Error   func(...string) string
}

// NewPalette builds a colored palette for w. Colors are dropped
// automatically when w is not a terminal.
func NewPalette(w io.Writer) Palette {
	r := lipgloss.NewRenderer(w)
	return Palette{
		Success: r.NewStyle().Foreground(lipgloss.Color("2")).Render,
		Warning: r.NewStyle().Foreground(lipgloss.Color("3")).Render,
		Info:    r.NewStyle().Foreground(lipgloss.Color("4")).Render,
		Error:   r.NewStyle().Foreground(lipgloss.Color("1")).Render,
	}
}

// Plain returns a palette that leaves text unchanged.
func Plain() Palette {
	plain := func(s ...string) string { return strings.Join(s, " ") }
	return Palette{Success: plain, Warning: plain, Info: plain, Error: plain}
}
