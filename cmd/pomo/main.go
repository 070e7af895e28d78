// Package main implements the pomo CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/amonks/pomodoro/countdown"
	"github.com/amonks/pomodoro/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "Pomodoro - a terminal focus timer",
	Long: `Run a cycle of work sessions separated by short breaks.

The countdown is shown on a single terminal line. Press space or p to pause
and resume, and q or Ctrl-C to stop early and print a summary.`,
	Args: cobra.NoArgs,
	RunE: runPomo,
}

var (
	pomoCount      int
	pomoWorkTime   int
	pomoBreakTime  int
	pomoNoNotify   bool
	pomoNoColor    bool
	pomoConfigPath string
	pomoTick       = countdown.DefaultTick
)

func init() {
	addRunFlags(rootCmd.Flags())

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err: err}
	})
}

func addRunFlags(flags *pflag.FlagSet) {
	flags.IntVarP(&pomoCount, "count", "c", config.DefaultCount, "Number of work sessions")
	flags.IntVarP(&pomoWorkTime, "work-time", "w", config.DefaultWorkTime, "Work session length in minutes")
	flags.IntVarP(&pomoBreakTime, "break-time", "b", config.DefaultBreakTime, "Break length in minutes")
	flags.BoolVar(&pomoNoNotify, "no-notify", false, "Disable desktop notifications")
	flags.BoolVar(&pomoNoColor, "no-color", false, "Disable styled output")
	flags.StringVar(&pomoConfigPath, "config", "", "Path to the defaults file (default ~/.config/pomodoro/config.toml)")
	flags.DurationVar(&pomoTick, "tick", countdown.DefaultTick, "Interval of one counted second")
	_ = flags.MarkHidden("tick")
}
