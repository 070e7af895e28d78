package main

import (
	"errors"
	"fmt"
	"testing"
)

func TestFatalWrapsWithExitCode(t *testing.T) {
	if err := fatal(nil); err != nil {
		t.Fatalf("expected nil for nil error, got %v", err)
	}

	cause := errors.New("write terminal: broken pipe")
	err := fatal(fmt.Errorf("work phase 1/4: %w", cause))

	var exitErr interface{ ExitCode() int }
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit code error, got %T", err)
	}
	if exitErr.ExitCode() != fatalExitCode {
		t.Fatalf("expected exit code %d, got %d", fatalExitCode, exitErr.ExitCode())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be preserved, got %v", err)
	}
	if err.Error() != "work phase 1/4: write terminal: broken pipe" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestFatalJoinedWithCleanupKeepsExitCode(t *testing.T) {
	err := errors.Join(nil, fatal(errors.New("restore terminal: bad file descriptor")))

	var exitErr interface{ ExitCode() int }
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != fatalExitCode {
		t.Fatalf("expected fatal exit code through join, got %v", err)
	}
}

func TestUsageErrorExitCode(t *testing.T) {
	err := usageError{err: errors.New("count must be positive")}
	if err.ExitCode() != usageExitCode {
		t.Fatalf("expected exit code %d, got %d", usageExitCode, err.ExitCode())
	}
}
