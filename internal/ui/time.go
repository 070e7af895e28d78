package ui

import (
	"fmt"
	"time"
)

// FormatElapsed formats a duration as hours, minutes and seconds, like
// "1h 2m 3s". Hours are always shown.
func FormatElapsed(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	seconds := int64(duration.Truncate(time.Second).Seconds())
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds %= 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}

// FormatClockTime formats a wall-clock time like "15:04:05".
func FormatClockTime(t time.Time) string {
	return t.Format("15:04:05")
}
