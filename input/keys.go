// Package input turns keystrokes into control signals for the running
// countdown.
package input

import (
	"errors"

	"github.com/amonks/pomodoro/control"
)

// ErrClosed is returned by a KeyReader after it has been closed.
var ErrClosed = errors.New("key reader closed")

// KeyKind distinguishes presses from repeats and releases.
type KeyKind int

const (
	Press KeyKind = iota
	Repeat
	Release
)

// Key is one keyboard event.
type Key struct {
	Rune rune
	// Ctrl is set for control chords; Rune holds the lowercase letter.
	Ctrl bool
	Kind KeyKind
}

// KeyReader blocks until the next key event.
type KeyReader interface {
	ReadKey() (Key, error)
}

// SignalFor maps a key to a control signal. Only presses are significant.
func SignalFor(key Key) (control.Signal, bool) {
	if key.Kind != Press {
		return 0, false
	}
	if key.Ctrl {
		if key.Rune == 'c' {
			return control.Quit, true
		}
		return 0, false
	}
	switch key.Rune {
	case ' ', 'p', 'P':
		return control.PauseToggle, true
	case 'q', 'Q':
		return control.Quit, true
	}
	return 0, false
}
