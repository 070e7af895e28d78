package input

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/amonks/pomodoro/control"
)

const defaultBuffer = 4

// ListenOptions configures a Listener.
type ListenOptions struct {
	// Buffer is the signal channel capacity. Defaults to 4.
	Buffer int
	Logger *log.Logger
}

// Listener reads keys in the background and emits control signals.
//
// The signal channel is closed when the listener stops: after a quit has
// been delivered, when the reader fails, or when ctx ends while a quit is
// waiting to be delivered.
type Listener struct {
	signals chan control.Signal
	done    chan struct{}
	logger  *log.Logger
	err     error
}

// Listen starts reading keys from reader.
func Listen(ctx context.Context, reader KeyReader, opts ListenOptions) *Listener {
	if opts.Buffer <= 0 {
		opts.Buffer = defaultBuffer
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	listener := &Listener{
		signals: make(chan control.Signal, opts.Buffer),
		done:    make(chan struct{}),
		logger:  opts.Logger,
	}
	go listener.run(ctx, reader)
	return listener
}

// Signals returns the channel of control signals.
func (l *Listener) Signals() <-chan control.Signal {
	return l.signals
}

// Done is closed once the listener has stopped.
func (l *Listener) Done() <-chan struct{} {
	return l.done
}

// Err returns the read error that stopped the listener, if any. It is only
// meaningful after Done is closed.
func (l *Listener) Err() error {
	return l.err
}

func (l *Listener) run(ctx context.Context, reader KeyReader) {
	defer close(l.done)
	defer close(l.signals)

	for {
		key, err := reader.ReadKey()
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, ErrClosed) {
				l.logger.Printf("read key: %v", err)
			}
			l.err = err
			return
		}
		signal, ok := SignalFor(key)
		if !ok {
			continue
		}
		if !l.deliver(ctx, signal) {
			return
		}
		if signal == control.Quit {
			return
		}
	}
}

// deliver never blocks on a pause toggle; a toggle that finds the channel
// full is dropped. A quit waits for room until ctx ends.
func (l *Listener) deliver(ctx context.Context, signal control.Signal) bool {
	if signal != control.Quit {
		select {
		case l.signals <- signal:
		default:
		}
		return true
	}
	select {
	case l.signals <- signal:
		return true
	case <-ctx.Done():
		return false
	}
}
