package session

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a count or duration is not positive.
var ErrInvalidConfig = errors.New("invalid session config")

func formatInvalidConfigError(field string, value int) error {
	return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, field, value)
}

func formatConfigTooLargeError(field string, value int) error {
	return fmt.Errorf("%w: %s must be at most %d minutes, got %d", ErrInvalidConfig, field, MaxMinutes, value)
}
