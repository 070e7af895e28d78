package session

import "math"

const (
	// SecondsPerMinute converts configured minutes to counted seconds.
	SecondsPerMinute = 60
	// MaxMinutes is the longest phase whose length in seconds fits in an int.
	MaxMinutes = math.MaxInt / SecondsPerMinute
)

// Plan returns the phases of a run: count work phases with a break between
// each pair and no break after the last.
func Plan(cfg Config) ([]Phase, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	phases := make([]Phase, 0, 2*cfg.Count-1)
	for i := 1; i <= cfg.Count; i++ {
		phases = append(phases, Phase{
			Kind:    KindWork,
			Number:  i,
			Seconds: cfg.WorkMinutes * SecondsPerMinute,
			Label:   WorkLabel,
		})
		if i == cfg.Count {
			break
		}
		phases = append(phases, Phase{
			Kind:    KindBreak,
			Number:  i,
			Seconds: cfg.BreakMinutes * SecondsPerMinute,
			Label:   BreakLabel,
		})
	}
	return phases, nil
}

// Validate reports whether every field is positive and each phase length
// fits in an int once converted to seconds.
func (cfg Config) Validate() error {
	if cfg.Count <= 0 {
		return formatInvalidConfigError("count", cfg.Count)
	}
	if cfg.WorkMinutes <= 0 {
		return formatInvalidConfigError("work time", cfg.WorkMinutes)
	}
	if cfg.WorkMinutes > MaxMinutes {
		return formatConfigTooLargeError("work time", cfg.WorkMinutes)
	}
	if cfg.BreakMinutes <= 0 {
		return formatInvalidConfigError("break time", cfg.BreakMinutes)
	}
	if cfg.BreakMinutes > MaxMinutes {
		return formatConfigTooLargeError("break time", cfg.BreakMinutes)
	}
	return nil
}

func countWork(phases []Phase) int {
	count := 0
	for _, phase := range phases {
		if phase.Kind == KindWork {
			count++
		}
	}
	return count
}
