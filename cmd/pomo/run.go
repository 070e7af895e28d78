package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/amonks/pomodoro/countdown"
	"github.com/amonks/pomodoro/input"
	"github.com/amonks/pomodoro/internal/terminal"
	"github.com/amonks/pomodoro/internal/ui"
	"github.com/amonks/pomodoro/notify"
	"github.com/amonks/pomodoro/session"
	"github.com/spf13/cobra"
)

const appName = "pomodoro"

func runPomo(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := resolveRunOptions(cmd, cfg)
	if err != nil {
		return err
	}
	plan, err := session.Plan(opts.session)
	if err != nil {
		return usageError{err: err}
	}
	cmd.SilenceUsage = true

	if !opts.color || !ui.ColorEnabled(os.Stdout) {
		ui.DisableColor()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term, err := terminal.Open(os.Stdin, cmd.OutOrStdout())
	if err != nil {
		return fatal(err)
	}
	defer func() {
		if closeErr := term.Close(); closeErr != nil {
			err = errors.Join(err, fatal(fmt.Errorf("restore terminal: %w", closeErr)))
		}
	}()

	logger := log.New(term.LogOutput(cmd.ErrOrStderr()), "pomo: ", 0)

	if err := term.EnableRawInput(); err != nil {
		return fatal(err)
	}

	notifier := openNotifier(opts.notifications, logger)
	if closer, ok := notifier.(io.Closer); ok {
		defer closer.Close()
	}

	listenCtx, cancelListen := context.WithCancel(ctx)
	defer cancelListen()
	listener := input.Listen(listenCtx, term, input.ListenOptions{Logger: logger})

	console := ui.NewConsole(term)
	engine := countdown.New(countdown.Options{
		Tick:     opts.tick,
		Display:  console,
		Notifier: notifier,
		Logger:   logger,
	})
	driver := session.NewDriver(session.Options{
		Runner:   engine,
		Reporter: console,
		Notifier: notifier,
		Logger:   logger,
	})

	_, err = driver.Run(ctx, plan, listener.Signals())
	return fatal(err)
}

// openNotifier returns the platform notifier, or a no-op notifier when
// notifications are disabled or unavailable.
func openNotifier(enabled bool, logger *log.Logger) notify.Notifier {
	if !enabled {
		return notify.Nop{}
	}
	notifier, err := notify.New(appName)
	if err != nil {
		logger.Printf("notifications unavailable: %v", err)
		return notify.Nop{}
	}
	return notifier
}
