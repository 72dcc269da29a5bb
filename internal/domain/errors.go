package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the nmtlaunch domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("nmtlaunch: invalid configuration")

	// ErrTrainerNotFound is returned when the configured trainer binary
	// cannot be started at all (as opposed to exiting non-zero).
	ErrTrainerNotFound = errors.New("nmtlaunch: trainer binary not found")

	// ErrContextCanceled is returned when the operation context is canceled.
	ErrContextCanceled = errors.New("nmtlaunch: context canceled")
)

// TrainExitError reports a trainer process that ran and exited non-zero.
// The launcher propagates the code as its own exit status.
type TrainExitError struct {
	Code int
}

func (e *TrainExitError) Error() string {
	return fmt.Sprintf("nmtlaunch: trainer exited with code %d", e.Code)
}

// ExitCode extracts the trainer exit code from err.
// Returns 0 for nil and 1 for errors that carry no code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var te *TrainExitError
	if errors.As(err, &te) {
		return te.Code
	}
	return 1
}
