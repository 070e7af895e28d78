package countdown

import (
	"fmt"

	"github.com/amonks/pomodoro/control"
)

// Outcome reports how a phase ended.
type Outcome int

const (
	// Completed means the countdown reached zero.
	Completed Outcome = iota + 1
	// Cancelled means the user quit before the countdown reached zero.
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// State is the mutable timer state of one running phase.
//
// Remaining only decreases while the phase is neither paused nor cancelled,
// and Cancelled never flips back to false.
type State struct {
	Remaining int
	Paused    bool
	Cancelled bool
}

// Tick advances the countdown by one second.
func (s *State) Tick() {
	if s.Paused || s.Cancelled || s.Remaining <= 0 {
		return
	}
	s.Remaining--
}

// Apply handles a control signal.
func (s *State) Apply(signal control.Signal) {
	if s.Cancelled {
		return
	}
	switch signal {
	case control.PauseToggle:
		s.Paused = !s.Paused
	case control.Quit:
		s.Cancelled = true
	}
}

// Frame is a snapshot of a phase handed to the display.
type Frame struct {
	Label     string
	Remaining int
	Total     int
	Paused    bool
	Cancelled bool
	// Final is set on the last frame of a phase.
	Final bool
}

// Clock formats the remaining time as MM:SS. Minutes are not wrapped into
// hours, so a 90 minute phase starts at 90:00.
func (f Frame) Clock() string {
	remaining := f.Remaining
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
}

// Progress returns the elapsed fraction of the phase in [0, 1].
func (f Frame) Progress() float64 {
	if f.Total <= 0 {
		return 1
	}
	progress := float64(f.Total-f.Remaining) / float64(f.Total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Body returns the notification text for the frame.
func (f Frame) Body() string {
	switch {
	case f.Cancelled:
		return "Stopped with " + f.Clock() + " left."
	case f.Paused:
		return f.Clock() + " remaining (paused)."
	default:
		return f.Clock() + " remaining."
	}
}
