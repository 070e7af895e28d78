package main

import (
	"fmt"
	"os"
	"time"

	"github.com/amonks/pomodoro/internal/config"
	"github.com/amonks/pomodoro/internal/paths"
	"github.com/amonks/pomodoro/session"
	"github.com/spf13/cobra"
)

type runOptions struct {
	session       session.Config
	tick          time.Duration
	notifications bool
	color         bool
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := pomoConfigPath
	if hasChangedFlags(cmd, "config") {
		if _, err := os.Stat(path); err != nil {
			return nil, usageError{err: fmt.Errorf("config file: %w", err)}
		}
		return config.Load(path)
	}

	path, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// resolveRunOptions layers changed flags over the loaded defaults.
func resolveRunOptions(cmd *cobra.Command, cfg *config.Config) (runOptions, error) {
	opts := runOptions{
		session: session.Config{
			Count:        cfg.Count,
			WorkMinutes:  cfg.WorkTime,
			BreakMinutes: cfg.BreakTime,
		},
		tick:          pomoTick,
		notifications: cfg.Notifications,
		color:         cfg.Color,
	}

	if hasChangedFlags(cmd, "count") {
		opts.session.Count = pomoCount
	}
	if hasChangedFlags(cmd, "work-time") {
		opts.session.WorkMinutes = pomoWorkTime
	}
	if hasChangedFlags(cmd, "break-time") {
		opts.session.BreakMinutes = pomoBreakTime
	}
	if hasChangedFlags(cmd, "no-notify") && pomoNoNotify {
		opts.notifications = false
	}
	if hasChangedFlags(cmd, "no-color") && pomoNoColor {
		opts.color = false
	}

	if err := opts.session.Validate(); err != nil {
		return runOptions{}, usageError{err: err}
	}
	if opts.tick <= 0 {
		return runOptions{}, usageError{err: fmt.Errorf("tick must be positive, got %s", opts.tick)}
	}
	return opts, nil
}
