package session

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/amonks/pomodoro/control"
	"github.com/amonks/pomodoro/countdown"
	"github.com/amonks/pomodoro/notify"
)

type ranPhase struct {
	seconds int
	label   string
}

type scriptedRunner struct {
	ran     []ranPhase
	results map[int]countdown.Result
	errs    map[int]error
	now     *fakeNow
}

func (r *scriptedRunner) RunPhase(ctx context.Context, seconds int, label string, signals <-chan control.Signal) (countdown.Result, error) {
	index := len(r.ran)
	r.ran = append(r.ran, ranPhase{seconds: seconds, label: label})
	if r.now != nil {
		r.now.advance(time.Duration(seconds) * time.Second)
	}
	if err := r.errs[index]; err != nil {
		return countdown.Result{}, err
	}
	if result, ok := r.results[index]; ok {
		return result, nil
	}
	return countdown.Result{Outcome: countdown.Completed}, nil
}

type fakeNow struct {
	current time.Time
}

func (f *fakeNow) now() time.Time { return f.current }

func (f *fakeNow) advance(d time.Duration) { f.current = f.current.Add(d) }

type recordingReporter struct {
	events    []string
	summaries []Summary
	err       error
}

func (r *recordingReporter) Started(count int) error {
	r.events = append(r.events, "started")
	return r.err
}

func (r *recordingReporter) PhaseStarting(phase Phase, count int) error {
	r.events = append(r.events, string(phase.Kind))
	return nil
}

func (r *recordingReporter) Finished(summary Summary) error {
	r.events = append(r.events, "finished")
	r.summaries = append(r.summaries, summary)
	return nil
}

type postRecorder struct {
	bodies []string
	err    error
}

func (p *postRecorder) Post(summary, body string, timeout time.Duration) (notify.Handle, error) {
	p.bodies = append(p.bodies, body)
	return notify.Handle{}, p.err
}

func (p *postRecorder) Update(notify.Handle, string, string) error { return nil }

func mustPlan(t *testing.T, cfg Config) []Phase {
	t.Helper()
	phases, err := Plan(cfg)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	return phases
}

func TestDriver_RunsAllPhases(t *testing.T) {
	clock := &fakeNow{current: time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)}
	runner := &scriptedRunner{now: clock}
	reporter := &recordingReporter{}
	notifier := &postRecorder{}
	driver := NewDriver(Options{Runner: runner, Reporter: reporter, Notifier: notifier, Now: clock.now})

	summary, err := driver.Run(context.Background(), mustPlan(t, Config{Count: 2, WorkMinutes: 1, BreakMinutes: 1}), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []ranPhase{{60, WorkLabel}, {60, BreakLabel}, {60, WorkLabel}}
	if len(runner.ran) != len(want) {
		t.Fatalf("expected phases %v, got %v", want, runner.ran)
	}
	for i := range want {
		if runner.ran[i] != want[i] {
			t.Fatalf("expected phases %v, got %v", want, runner.ran)
		}
	}

	if summary.Cancelled {
		t.Fatal("expected a completed run")
	}
	if summary.WorkCompleted != 2 || summary.Count != 2 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.Elapsed() != 3*time.Minute {
		t.Fatalf("expected 3m elapsed, got %s", summary.Elapsed())
	}

	wantEvents := "started work break work finished"
	if got := strings.Join(reporter.events, " "); got != wantEvents {
		t.Fatalf("expected events %q, got %q", wantEvents, got)
	}

	wantBodies := []string{"Time to focus!", "Take a break!", "Time to focus!", "Finished 2 sessions. Time to rest."}
	if strings.Join(notifier.bodies, "|") != strings.Join(wantBodies, "|") {
		t.Fatalf("expected notifications %q, got %q", wantBodies, notifier.bodies)
	}
}

func TestDriver_StopsOnCancel(t *testing.T) {
	runner := &scriptedRunner{results: map[int]countdown.Result{
		0: {Outcome: countdown.Cancelled, Remaining: 45},
	}}
	reporter := &recordingReporter{}
	notifier := &postRecorder{}
	driver := NewDriver(Options{Runner: runner, Reporter: reporter, Notifier: notifier})

	summary, err := driver.Run(context.Background(), mustPlan(t, Config{Count: 4, WorkMinutes: 25, BreakMinutes: 5}), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(runner.ran) != 1 {
		t.Fatalf("expected only the first phase to run, got %d", len(runner.ran))
	}
	if !summary.Cancelled || summary.WorkCompleted != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if len(notifier.bodies) != 1 {
		t.Fatalf("expected no finished notification, got %q", notifier.bodies)
	}
	if len(reporter.summaries) != 1 || !reporter.summaries[0].Cancelled {
		t.Fatalf("expected cancelled summary to be reported, got %+v", reporter.summaries)
	}
}

func TestDriver_CancelDuringBreak(t *testing.T) {
	runner := &scriptedRunner{results: map[int]countdown.Result{
		1: {Outcome: countdown.Cancelled, Remaining: 100},
	}}
	driver := NewDriver(Options{Runner: runner, Reporter: &recordingReporter{}})

	summary, err := driver.Run(context.Background(), mustPlan(t, Config{Count: 3, WorkMinutes: 25, BreakMinutes: 5}), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(runner.ran) != 2 {
		t.Fatalf("expected 2 phases to run, got %d", len(runner.ran))
	}
	if !summary.Cancelled || summary.WorkCompleted != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestDriver_PhaseErrorAborts(t *testing.T) {
	phaseErr := errors.New("write terminal: broken pipe")
	runner := &scriptedRunner{errs: map[int]error{1: phaseErr}}
	reporter := &recordingReporter{}
	driver := NewDriver(Options{Runner: runner, Reporter: reporter})

	_, err := driver.Run(context.Background(), mustPlan(t, Config{Count: 2, WorkMinutes: 1, BreakMinutes: 1}), nil)
	if !errors.Is(err, phaseErr) {
		t.Fatalf("expected phase error, got %v", err)
	}
	if !strings.Contains(err.Error(), "break phase 1/2") {
		t.Fatalf("expected phase context in error, got %v", err)
	}
	if len(runner.ran) != 2 {
		t.Fatalf("expected run to stop after failing phase, got %d phases", len(runner.ran))
	}
	for _, event := range reporter.events {
		if event == "finished" {
			t.Fatal("expected no summary after a fatal error")
		}
	}
}

func TestDriver_NotifierFailureIsLogged(t *testing.T) {
	runner := &scriptedRunner{}
	logs := &bytes.Buffer{}
	driver := NewDriver(Options{
		Runner:   runner,
		Reporter: &recordingReporter{},
		Notifier: &postRecorder{err: notify.ErrUnsupported},
		Logger:   log.New(logs, "", 0),
	})

	summary, err := driver.Run(context.Background(), mustPlan(t, Config{Count: 1, WorkMinutes: 1, BreakMinutes: 1}), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.WorkCompleted != 1 {
		t.Fatalf("expected one completed session, got %d", summary.WorkCompleted)
	}
	if !strings.Contains(logs.String(), "unsupported") {
		t.Fatalf("expected notifier failure in logs, got %q", logs.String())
	}
}

func TestDriver_ReporterErrorIsFatal(t *testing.T) {
	runner := &scriptedRunner{}
	reporterErr := errors.New("write terminal: closed")
	driver := NewDriver(Options{Runner: runner, Reporter: &recordingReporter{err: reporterErr}})

	_, err := driver.Run(context.Background(), mustPlan(t, Config{Count: 1, WorkMinutes: 1, BreakMinutes: 1}), nil)
	if !errors.Is(err, reporterErr) {
		t.Fatalf("expected reporter error, got %v", err)
	}
	if len(runner.ran) != 0 {
		t.Fatalf("expected no phases to run, got %d", len(runner.ran))
	}
}

func TestSummaryElapsedNeverNegative(t *testing.T) {
	now := time.Now()
	summary := Summary{Start: now, End: now.Add(-time.Second)}
	if summary.Elapsed() != 0 {
		t.Fatalf("expected 0, got %s", summary.Elapsed())
	}
}
