// Package terminal owns the controlling terminal: raw key input, key
// decoding, and the single status line that is rewritten in place.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/amonks/pomodoro/input"
	"github.com/muesli/cancelreader"
	"github.com/muesli/reflow/truncate"
	"golang.org/x/term"
)

const clearToEOL = "\x1b[K"

// Terminal reads keys from in and writes lines to out.
type Terminal struct {
	in    *os.File
	inFd  int
	out   io.Writer
	outFd int
	ttyIn bool
	// ttyOut is false when out is a pipe or file; in-place writes then skip
	// the clear-to-EOL sequence and width truncation.
	ttyOut bool

	// reader is nil when in does not support cancellation, such as /dev/null.
	reader io.Reader
	cancel cancelreader.CancelReader
	readMu sync.Mutex

	mu      sync.Mutex
	state   *term.State
	closed  bool
	pending []input.Key
	readErr error
}

// Open wraps the given input and output.
func Open(in *os.File, out io.Writer) (*Terminal, error) {
	if in == nil {
		return nil, fmt.Errorf("open terminal: no input")
	}
	t := &Terminal{
		in:    in,
		inFd:  int(in.Fd()),
		out:   out,
		outFd: -1,
	}
	t.ttyIn = term.IsTerminal(t.inFd)
	if file, ok := out.(interface{ Fd() uintptr }); ok {
		t.outFd = int(file.Fd())
		t.ttyOut = term.IsTerminal(t.outFd)
	}

	reader, err := cancelreader.NewReader(in)
	if err != nil {
		t.reader = in
		return t, nil
	}
	t.cancel = reader
	t.reader = reader
	return t, nil
}

// Interactive reports whether input comes from a terminal.
func (t *Terminal) Interactive() bool {
	return t.ttyIn
}

// Raw reports whether raw input mode is active.
func (t *Terminal) Raw() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state != nil
}

// EnableRawInput switches the input terminal to raw mode so single
// keypresses are delivered without Enter. It is a no-op when input is not
// a terminal.
func (t *Terminal) EnableRawInput() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != nil || !t.ttyIn {
		return nil
	}
	state, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("enable raw input: %w", err)
	}
	t.state = state
	return nil
}

// DisableRawInput restores the terminal mode saved by EnableRawInput.
func (t *Terminal) DisableRawInput() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil
	if err := term.Restore(t.inFd, state); err != nil {
		return fmt.Errorf("restore terminal mode: %w", err)
	}
	return nil
}

// ReadKey blocks until the next key. After Close it returns input.ErrClosed.
func (t *Terminal) ReadKey() (input.Key, error) {
	var buf [64]byte
	for {
		t.mu.Lock()
		if t.closed {
			t.mu.Unlock()
			return input.Key{}, input.ErrClosed
		}
		if len(t.pending) > 0 {
			key := t.pending[0]
			t.pending = t.pending[1:]
			t.mu.Unlock()
			return key, nil
		}
		if t.readErr != nil {
			err := t.readErr
			t.mu.Unlock()
			return input.Key{}, err
		}
		t.mu.Unlock()

		t.readMu.Lock()
		n, err := t.reader.Read(buf[:])
		t.readMu.Unlock()

		t.mu.Lock()
		if n > 0 {
			t.pending = append(t.pending, DecodeKeys(buf[:n])...)
		}
		if err != nil {
			if t.closed || errors.Is(err, cancelreader.ErrCanceled) {
				err = input.ErrClosed
			}
			t.readErr = err
		}
		t.mu.Unlock()
	}
}

// WriteInPlace replaces the current line with text.
func (t *Terminal) WriteInPlace(text string) error {
	line := "\r" + text
	if t.ttyOut {
		if width, _, err := term.GetSize(t.outFd); err == nil && width > 1 {
			line = "\r" + truncate.StringWithTail(text, uint(width-1), "…")
		}
		line += clearToEOL
	}
	if _, err := io.WriteString(t.out, line); err != nil {
		return fmt.Errorf("write terminal: %w", err)
	}
	return nil
}

// Println writes text followed by a newline. While raw mode is active the
// terminal does not translate newlines, so they are written as CRLF.
func (t *Terminal) Println(text string) error {
	text += "\n"
	if t.Raw() {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	if _, err := io.WriteString(t.out, text); err != nil {
		return fmt.Errorf("write terminal: %w", err)
	}
	return nil
}

// Close restores the terminal mode and unblocks a pending ReadKey. It is
// safe to call more than once.
func (t *Terminal) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()

	restoreErr := t.DisableRawInput()

	var closeErr error
	if t.cancel != nil && t.cancel.Cancel() {
		// Wait for an in-flight Read to observe the cancellation before the
		// reader's descriptors are released.
		t.readMu.Lock()
		closeErr = t.cancel.Close()
		t.readMu.Unlock()
	}
	return errors.Join(restoreErr, closeErr)
}

// LogOutput returns a writer for diagnostics on w that uses CRLF line
// endings while raw mode is active.
func (t *Terminal) LogOutput(w io.Writer) io.Writer {
	return logOutput{terminal: t, w: w}
}

type logOutput struct {
	terminal *Terminal
	w        io.Writer
}

func (o logOutput) Write(p []byte) (int, error) {
	if !o.terminal.Raw() {
		return o.w.Write(p)
	}
	if _, err := io.WriteString(o.w, strings.ReplaceAll(string(p), "\n", "\r\n")); err != nil {
		return 0, err
	}
	return len(p), nil
}
