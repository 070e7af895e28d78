package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amonks/pomodoro/internal/config"
	"github.com/amonks/pomodoro/internal/testsupport"
	"github.com/amonks/pomodoro/session"
	"github.com/spf13/cobra"
)

func newRunCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "pomo"}
	addRunFlags(cmd.Flags())
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestResolveRunOptionsDefaults(t *testing.T) {
	cmd := newRunCommand(t)

	opts, err := resolveRunOptions(cmd, config.Default())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	expected := session.Config{Count: 4, WorkMinutes: 25, BreakMinutes: 5}
	if opts.session != expected {
		t.Fatalf("expected %+v, got %+v", expected, opts.session)
	}
	if opts.tick != time.Second {
		t.Fatalf("expected 1s tick, got %s", opts.tick)
	}
	if !opts.notifications || !opts.color {
		t.Fatalf("expected notifications and color enabled, got %+v", opts)
	}
}

func TestResolveRunOptionsFlagsOverrideConfig(t *testing.T) {
	cfg := &config.Config{Count: 2, WorkTime: 50, BreakTime: 10, Notifications: true, Color: true}
	cmd := newRunCommand(t, "-c", "3", "--break-time", "1", "--no-notify", "--tick", "10ms")

	opts, err := resolveRunOptions(cmd, cfg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	expected := session.Config{Count: 3, WorkMinutes: 50, BreakMinutes: 1}
	if opts.session != expected {
		t.Fatalf("expected %+v, got %+v", expected, opts.session)
	}
	if opts.notifications {
		t.Fatal("expected notifications disabled")
	}
	if !opts.color {
		t.Fatal("expected color to stay enabled")
	}
	if opts.tick != 10*time.Millisecond {
		t.Fatalf("expected 10ms tick, got %s", opts.tick)
	}
}

func TestResolveRunOptionsRejectsInvalidValues(t *testing.T) {
	for _, args := range [][]string{
		{"--count", "0"},
		{"--work-time", "-1"},
		{"--break-time", "0"},
		{"--tick", "0s"},
		{"--work-time", "153722867280912931"},
	} {
		cmd := newRunCommand(t, args...)

		_, err := resolveRunOptions(cmd, config.Default())
		if err == nil {
			t.Fatalf("expected error for %v", args)
		}
		var usage usageError
		if !errors.As(err, &usage) {
			t.Fatalf("expected usage error for %v, got %T", args, err)
		}
	}
}

func TestResolveRunOptionsRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Count = 0

	_, err := resolveRunOptions(newRunCommand(t), cfg)
	if !errors.Is(err, session.ErrInvalidConfig) {
		t.Fatalf("expected invalid config error, got %v", err)
	}
}

func TestLoadConfigUsesDefaultPath(t *testing.T) {
	home := testsupport.SetupTestHome(t)
	path := filepath.Join(home, ".config", "pomodoro", "config.toml")
	if err := os.WriteFile(path, []byte("count = 7\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(newRunCommand(t))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Count != 7 {
		t.Fatalf("expected count 7, got %d", cfg.Count)
	}
}

func TestLoadConfigRequiresExplicitFile(t *testing.T) {
	testsupport.SetupTestHome(t)
	missing := filepath.Join(t.TempDir(), "missing.toml")

	_, err := loadConfig(newRunCommand(t, "--config", missing))
	var usage usageError
	if !errors.As(err, &usage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}
