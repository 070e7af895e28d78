package session

import "time"

// Kind distinguishes work phases from breaks.
type Kind string

const (
	// KindWork is a focused work interval.
	KindWork Kind = "work"
	// KindBreak is a rest interval between work intervals.
	KindBreak Kind = "break"
)

// Labels shown for each kind of phase.
const (
	WorkLabel  = "🍅 Work"
	BreakLabel = "☕ Break"
)

// Phase is one contiguous work or break interval.
type Phase struct {
	Kind Kind
	// Number is the 1-based work session the phase belongs to. A break
	// shares the number of the work phase before it.
	Number  int
	Seconds int
	Label   string
}

// Config describes a run.
type Config struct {
	Count        int
	WorkMinutes  int
	BreakMinutes int
}

// Summary describes a finished or stopped run.
type Summary struct {
	Start         time.Time
	End           time.Time
	Count         int
	WorkCompleted int
	Cancelled     bool
}

// Elapsed returns the wall-clock length of the run.
func (s Summary) Elapsed() time.Duration {
	if s.End.Before(s.Start) {
		return 0
	}
	return s.End.Sub(s.Start)
}
