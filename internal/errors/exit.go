package errors

import (
	"context"
	"errors"
)

// Exit codes returned by the create-bread-app binary.
const (
	// ExitSuccess indicates the project was created.
	ExitSuccess = 0

	// ExitGeneralError covers invalid names, filesystem and installer failures.
	ExitGeneralError = 1

	// ExitInterrupted indicates the run was cancelled by SIGINT or SIGTERM.
	ExitInterrupted = 130
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the process exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}

	return ExitGeneralError
}
