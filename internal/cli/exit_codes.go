package cli

import (
	"fmt"

	"github.com/raveheart1/semrel/internal/errors"
)

// Exit codes for the semrel CLI. These support programmatic composition
// in CI pipelines: "no release needed" is distinguishable from both
// success-with-release and failure.
const (
	// ExitSuccess indicates successful command execution.
	ExitSuccess = 0

	// ExitFailure indicates command execution failed.
	ExitFailure = 1

	// ExitNoRelease indicates no release is needed. Only used when a
	// command is asked to fail on an unchanged version.
	ExitNoRelease = 2

	// ExitInvalidArguments indicates invalid command arguments.
	ExitInvalidArguments = 3
)

// ExitError carries a specific process exit code through cobra's error
// path without printing anything.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewExitError creates an ExitError for the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// ExitCode maps an Execute error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if exitErr, ok := err.(*ExitError); ok {
		return exitErr.Code
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil && cliErr.Category == errors.Argument {
		return ExitInvalidArguments
	}
	return ExitFailure
}
