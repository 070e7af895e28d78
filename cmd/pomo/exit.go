package main

import "fmt"

const (
	fatalExitCode = 1
	usageExitCode = 2
)

type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit %d", e.code)
}

func (e exitError) ExitCode() int {
	return e.code
}

func (e exitError) Unwrap() error {
	return e.err
}

// usageError reports invalid flags or defaults.
type usageError struct {
	err error
}

func (e usageError) Error() string {
	return e.err.Error()
}

func (e usageError) ExitCode() int {
	return usageExitCode
}

func (e usageError) Unwrap() error {
	return e.err
}

// fatal marks err as ending the run with fatalExitCode.
func fatal(err error) error {
	if err == nil {
		return nil
	}
	return exitError{code: fatalExitCode, err: err}
}
