package ui

import (
	"fmt"
	"strings"

	"github.com/amonks/pomodoro/countdown"
	"github.com/amonks/pomodoro/internal/markdown"
	"github.com/amonks/pomodoro/session"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const summaryWidth = 80

// KeyHelp describes the key bindings in markdown.
const KeyHelp = `Keys while a phase is running:

- space or p: pause or resume the countdown
- q or Ctrl-C: stop the run and print a summary`

// LineWriter is the terminal surface the console writes to.
type LineWriter interface {
	WriteInPlace(text string) error
	Println(text string) error
}

// Console renders countdown frames on a single line and reports run
// progress. It implements countdown.Display and session.Reporter.
type Console struct {
	out LineWriter
	bar progress.Model
}

// NewConsole returns a Console writing to out.
func NewConsole(out LineWriter) *Console {
	return &Console{
		out: out,
		bar: progress.New(
			progress.WithWidth(barWidth),
			progress.WithoutPercentage(),
			progress.WithSolidFill(barColor),
			progress.WithColorProfile(lipgloss.ColorProfile()),
		),
	}
}

// Render implements countdown.Display.
func (c *Console) Render(frame countdown.Frame) error {
	if err := c.out.WriteInPlace(c.CountdownLine(frame)); err != nil {
		return err
	}
	if frame.Final {
		return c.out.Println("")
	}
	return nil
}

// CountdownLine formats a frame, like "🍅 Work: 24:59 remaining. ████░░".
func (c *Console) CountdownLine(frame countdown.Frame) string {
	var builder strings.Builder
	builder.WriteString(labelStyle.Render(frame.Label))
	builder.WriteString(": ")
	builder.WriteString(clockStyle.Render(frame.Clock()))
	builder.WriteString(" remaining. ")
	builder.WriteString(c.bar.ViewAs(frame.Progress()))
	switch {
	case frame.Cancelled:
		builder.WriteString(" ")
		builder.WriteString(stoppedStyle.Render("stopped"))
	case frame.Paused:
		builder.WriteString(" ")
		builder.WriteString(pausedStyle.Render("paused, press space to resume"))
	}
	return builder.String()
}

// Started implements session.Reporter.
func (c *Console) Started(count int) error {
	if err := c.out.Println(headerStyle.Render(fmt.Sprintf("Starting Pomodoro cycle: %d %s.", count, sessionNoun(count)))); err != nil {
		return err
	}
	return c.out.Println(mutedStyle.Render("space/p pause · q quit"))
}

// PhaseStarting implements session.Reporter.
func (c *Console) PhaseStarting(phase session.Phase, count int) error {
	if phase.Kind != session.KindWork {
		return nil
	}
	if err := c.out.Println(""); err != nil {
		return err
	}
	return c.out.Println(headerStyle.Render(fmt.Sprintf("--- Session %d/%d ---", phase.Number, count)))
}

// Finished implements session.Reporter.
func (c *Console) Finished(summary session.Summary) error {
	rendered := markdown.Render(summaryWidth, SummaryMarkdown(summary))
	if err := c.out.Println(""); err != nil {
		return err
	}
	return c.out.Println(rendered)
}

// SummaryMarkdown describes a run in markdown.
func SummaryMarkdown(summary session.Summary) string {
	var builder strings.Builder
	if summary.Cancelled {
		fmt.Fprintf(&builder, "Stopped early after %d/%d work %s.\n\n", summary.WorkCompleted, summary.Count, sessionNoun(summary.Count))
	} else {
		fmt.Fprintf(&builder, "Finished all %d work %s.\n\n", summary.Count, sessionNoun(summary.Count))
	}
	fmt.Fprintf(&builder, "- Started at: %s\n", FormatClockTime(summary.Start))
	fmt.Fprintf(&builder, "- Finished at: %s\n", FormatClockTime(summary.End))
	fmt.Fprintf(&builder, "- Total time spent: %s\n", FormatElapsed(summary.Elapsed()))
	return builder.String()
}

func sessionNoun(count int) string {
	if count == 1 {
		return "session"
	}
	return "sessions"
}
