// Package session sequences the work and break phases of a Pomodoro run.
package session

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/amonks/pomodoro/control"
	"github.com/amonks/pomodoro/countdown"
	"github.com/amonks/pomodoro/notify"
)

const (
	// NotificationTitle is the summary of transition notifications.
	NotificationTitle = "🍅 Pomodoro"
	// TransitionTimeout is how long transition notifications stay visible.
	TransitionTimeout = 5 * time.Second
)

// PhaseRunner runs a single phase.
type PhaseRunner interface {
	RunPhase(ctx context.Context, seconds int, label string, signals <-chan control.Signal) (countdown.Result, error)
}

// Reporter writes run progress for the user. Errors are fatal.
type Reporter interface {
	Started(count int) error
	PhaseStarting(phase Phase, count int) error
	Finished(summary Summary) error
}

// Options configures a Driver.
type Options struct {
	Runner   PhaseRunner
	Reporter Reporter
	Notifier notify.Notifier
	Logger   *log.Logger
	Now      func() time.Time
}

// Driver runs the phases of a plan in order.
type Driver struct {
	runner   PhaseRunner
	reporter Reporter
	notifier notify.Notifier
	logger   *log.Logger
	now      func() time.Time
}

// NewDriver creates a Driver. Runner and Reporter are required.
func NewDriver(opts Options) *Driver {
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Driver{
		runner:   opts.Runner,
		reporter: opts.Reporter,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		now:      opts.Now,
	}
}

// Run executes plan. A cancelled phase stops the run without error and
// sets Summary.Cancelled; any other phase failure aborts the run.
func (d *Driver) Run(ctx context.Context, plan []Phase, signals <-chan control.Signal) (Summary, error) {
	count := countWork(plan)
	summary := Summary{Start: d.now(), Count: count}

	if err := d.reporter.Started(count); err != nil {
		return d.finish(summary), err
	}

	for _, phase := range plan {
		if err := d.reporter.PhaseStarting(phase, count); err != nil {
			return d.finish(summary), err
		}
		d.announce(phase)

		result, err := d.runner.RunPhase(ctx, phase.Seconds, phase.Label, signals)
		if err != nil {
			return d.finish(summary), fmt.Errorf("%s phase %d/%d: %w", phase.Kind, phase.Number, count, err)
		}
		if result.Outcome == countdown.Cancelled {
			summary.Cancelled = true
			summary = d.finish(summary)
			return summary, d.reporter.Finished(summary)
		}
		if phase.Kind == KindWork {
			summary.WorkCompleted++
		}
	}

	summary = d.finish(summary)
	d.post(NotificationTitle, finishedBody(count))
	return summary, d.reporter.Finished(summary)
}

func (d *Driver) finish(summary Summary) Summary {
	summary.End = d.now()
	return summary
}

func (d *Driver) announce(phase Phase) {
	switch phase.Kind {
	case KindWork:
		d.post(NotificationTitle, "Time to focus!")
	case KindBreak:
		d.post(NotificationTitle, "Take a break!")
	}
}

func (d *Driver) post(summary, body string) {
	if _, err := d.notifier.Post(summary, body, TransitionTimeout); err != nil {
		d.logger.Printf("post notification %q: %v", body, err)
	}
}

func finishedBody(count int) string {
	if count == 1 {
		return "Finished 1 session. Time to rest."
	}
	return fmt.Sprintf("Finished %d sessions. Time to rest.", count)
}
