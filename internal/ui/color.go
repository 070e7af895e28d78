package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorEnabled reports whether styled output should be written to out.
func ColorEnabled(out *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return out != nil && term.IsTerminal(int(out.Fd()))
}

// DisableColor forces plain output for all styles.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
