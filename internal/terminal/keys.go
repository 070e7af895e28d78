package terminal

import (
	"unicode/utf8"

	"github.com/amonks/pomodoro/input"
)

const (
	keyEscape    = 0x1b
	keyDelete    = 0x7f
	ctrlMaxValue = 0x1a
)

// DecodeKeys turns raw terminal bytes into key presses. Escape sequences
// such as arrow keys are skipped.
func DecodeKeys(data []byte) []input.Key {
	keys := make([]input.Key, 0, len(data))
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case c == keyEscape:
			i = skipEscape(data, i)
		case c == 0 || c == keyDelete:
		case c <= ctrlMaxValue:
			keys = append(keys, input.Key{Rune: rune('a' + c - 1), Ctrl: true})
		case c < 0x20:
		default:
			r, size := utf8.DecodeRune(data[i:])
			if r == utf8.RuneError {
				continue
			}
			keys = append(keys, input.Key{Rune: r})
			i += size - 1
		}
	}
	return keys
}

// skipEscape returns the index of the last byte of the escape sequence
// starting at data[start].
func skipEscape(data []byte, start int) int {
	next := start + 1
	if next >= len(data) {
		return start
	}
	switch data[next] {
	case '[':
		for i := next + 1; i < len(data); i++ {
			if data[i] >= 0x40 && data[i] <= 0x7e {
				return i
			}
		}
		return len(data) - 1
	case 'O':
		if next+1 < len(data) {
			return next + 1
		}
		return next
	default:
		// Alt chord.
		return next
	}
}
