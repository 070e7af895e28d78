// Package countdown runs a single timed phase: it ticks once per second,
// renders every tick, keeps a live desktop notification current, and reacts
// to pause and quit signals as soon as they arrive.
package countdown

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/amonks/pomodoro/control"
	"github.com/amonks/pomodoro/notify"
)

// ErrInvalidPhase is returned for a non-positive duration or an empty label.
var ErrInvalidPhase = errors.New("invalid phase")

// DefaultTick is the production tick interval.
const DefaultTick = time.Second

// Display renders frames. Render errors abort the phase.
type Display interface {
	Render(frame Frame) error
}

// Options configures an Engine.
type Options struct {
	// Tick is the interval of one counted second. Defaults to DefaultTick.
	Tick     time.Duration
	Display  Display
	Notifier notify.Notifier
	Logger   *log.Logger
	Clock    Clock
}

// Result describes how a phase ended.
type Result struct {
	Outcome   Outcome
	Remaining int
}

// Engine runs phases one at a time.
type Engine struct {
	tick     time.Duration
	display  Display
	notifier notify.Notifier
	logger   *log.Logger
	clock    Clock
}

// New creates an Engine.
func New(opts Options) *Engine {
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.Display == nil {
		opts.Display = discardDisplay{}
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}
	return &Engine{
		tick:     opts.Tick,
		display:  opts.Display,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		clock:    opts.Clock,
	}
}

// RunPhase counts down from seconds, consuming signals until the phase
// completes or is cancelled. Cancellation of ctx is treated like a quit
// signal. A closed signals channel is ignored and the phase runs to
// completion.
func (e *Engine) RunPhase(ctx context.Context, seconds int, label string, signals <-chan control.Signal) (Result, error) {
	if seconds <= 0 {
		return Result{}, fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidPhase, seconds)
	}
	if strings.TrimSpace(label) == "" {
		return Result{}, fmt.Errorf("%w: label is required", ErrInvalidPhase)
	}

	run := &phaseRun{
		engine: e,
		label:  label,
		total:  seconds,
		state:  State{Remaining: seconds},
	}
	run.post()
	defer run.dismiss()

	if err := run.render(); err != nil {
		return run.result(), err
	}

	ticker := e.clock.NewTicker(e.tick)
	defer ticker.Stop()

	for run.state.Remaining > 0 {
		select {
		case <-ctx.Done():
			run.state.Apply(control.Quit)
			err := run.update()
			return run.result(), err
		case signal, ok := <-signals:
			if !ok {
				signals = nil
				continue
			}
			wasPaused := run.state.Paused
			run.state.Apply(signal)
			if wasPaused && !run.state.Paused {
				ticker.Reset(e.tick)
			}
			if err := run.update(); err != nil {
				return run.result(), err
			}
			if run.state.Cancelled {
				return run.result(), nil
			}
		case <-ticker.C():
			run.state.Tick()
			if err := run.update(); err != nil {
				return run.result(), err
			}
		}
	}

	return run.result(), nil
}

type phaseRun struct {
	engine       *Engine
	label        string
	total        int
	state        State
	handle       notify.Handle
	posted       bool
	notifyFailed bool
}

func (run *phaseRun) frame() Frame {
	return Frame{
		Label:     run.label,
		Remaining: run.state.Remaining,
		Total:     run.total,
		Paused:    run.state.Paused,
		Cancelled: run.state.Cancelled,
		Final:     run.state.Cancelled || run.state.Remaining == 0,
	}
}

func (run *phaseRun) result() Result {
	outcome := Completed
	if run.state.Cancelled {
		outcome = Cancelled
	}
	return Result{Outcome: outcome, Remaining: run.state.Remaining}
}

func (run *phaseRun) render() error {
	if err := run.engine.display.Render(run.frame()); err != nil {
		return fmt.Errorf("render %s: %w", run.label, err)
	}
	return nil
}

// update renders the current frame and refreshes the live notification.
func (run *phaseRun) update() error {
	if err := run.render(); err != nil {
		return err
	}
	if !run.posted || run.notifyFailed {
		return nil
	}
	frame := run.frame()
	if err := run.engine.notifier.Update(run.handle, frame.Label, frame.Body()); err != nil {
		run.notificationFailed("update", err)
	}
	return nil
}

// post shows the live notification. Notifiers that cannot update in place
// get none, since its text would stop matching the countdown.
func (run *phaseRun) post() {
	if !notify.CanUpdate(run.engine.notifier) {
		return
	}
	frame := run.frame()
	handle, err := run.engine.notifier.Post(frame.Label, frame.Body(), notify.Persistent)
	if err != nil {
		run.notificationFailed("post", err)
		return
	}
	run.handle = handle
	run.posted = true
}

func (run *phaseRun) dismiss() {
	dismisser, ok := run.engine.notifier.(notify.Dismisser)
	if !ok || !run.posted {
		return
	}
	if err := dismisser.Dismiss(run.handle); err != nil && !run.notifyFailed {
		run.notificationFailed("dismiss", err)
	}
}

func (run *phaseRun) notificationFailed(op string, err error) {
	run.notifyFailed = true
	if errors.Is(err, notify.ErrUnsupported) {
		return
	}
	run.engine.logger.Printf("%s notification for %s: %v", op, run.label, err)
}

type discardDisplay struct{}

func (discardDisplay) Render(Frame) error { return nil }
