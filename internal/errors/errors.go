// Package errors provides structured error handling for the semrel CLI.
// It includes categorized errors with actionable remediation guidance.
package errors

import "fmt"

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Argument errors are caused by invalid or missing command arguments.
	Argument ErrorCategory = iota
	// Configuration errors are caused by invalid or missing configuration.
	Configuration
	// Repository errors occur while reading local git history.
	Repository
	// Remote errors occur while talking to the GitHub API.
	Remote
	// Runtime errors occur during command execution.
	Runtime
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Repository:
		return "Repository Error"
	case Remote:
		return "Remote Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the type of error.
	Category ErrorCategory
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax (optional, for argument errors).
	Usage string
	// cause is the wrapped underlying error, when there is one.
	cause error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying error for errors.Is/As chains.
func (e *CLIError) Unwrap() error {
	return e.cause
}

// New creates a CLIError with the given category, message, and
// remediation steps.
func New(category ErrorCategory, message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    category,
		Message:     message,
		Remediation: remediation,
	}
}

// NewWithUsage creates an argument error that includes correct usage syntax.
func NewWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}

// Wrap wraps an existing error with a CLIError, preserving the original
// message and error chain.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		cause:       err,
	}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
		cause:       err,
	}
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error is not a CLIError.
func AsCLIError(err error) *CLIError {
	cliErr, ok := err.(*CLIError)
	if ok {
		return cliErr
	}
	return nil
}
