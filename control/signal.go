// Package control defines the messages the keyboard listener sends to a
// running countdown. Signals are immutable values; the countdown is the only
// consumer and owns all timer state.
package control

// Signal is a user-originated instruction for the running phase.
type Signal int

const (
	// PauseToggle flips the paused state of the running phase.
	PauseToggle Signal = iota + 1
	// Quit ends the running phase and the whole session.
	Quit
)

func (s Signal) String() string {
	switch s {
	case PauseToggle:
		return "pause-toggle"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}
