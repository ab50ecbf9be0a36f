// Package apperr defines the error categories used across EBPlot-cli.
//
// Error taxonomy
//
//	ErrInvalidParameter     – a parameter outside its valid domain (zero period,
//	                          negative padding, unknown color, bad config value).
//	ErrLengthMismatch       – paired sequences of unequal length.
//	ErrEmptyInput           – no data points where at least one is required.
//	ErrConfigurationMissing – a required style/config key is absent.
//	ErrBackendFailure       – the rendering backend cannot produce or persist a figure.
//
//	UserError    – caused by missing or invalid user input (wrong flag, bad value, …).
//	               The CLI prints only the message; usage help is NOT repeated.
//	               Exit code: 1.
//
//	ErrCancelled – the user deliberately aborted an interactive flow.
//	               Exit code: 0 (not a failure).
//
// Components wrap the sentinels with context at their boundary
// (fmt.Errorf("%w: ...", apperr.ErrEmptyInput)) and callers test them with
// errors.Is. Nothing is retried: every operation is deterministic.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrLengthMismatch       = errors.New("length mismatch")
	ErrEmptyInput           = errors.New("empty input")
	ErrConfigurationMissing = errors.New("configuration missing")
	ErrBackendFailure       = errors.New("rendering backend failure")
)

// ErrCancelled is returned when the user explicitly aborts an interactive
// operation.  The CLI should exit 0 rather than 1 when it sees this error.
var ErrCancelled = errors.New("operation cancelled")

// Wrap annotates one of the sentinel errors with a formatted message while
// keeping it matchable with errors.Is.
func Wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// Backend wraps an underlying rendering error as ErrBackendFailure, keeping
// the cause reachable through errors.Unwrap.
func Backend(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrBackendFailure, op, err)
}

// UserError represents an error caused by invalid or missing user input.
// Cobra command handlers return this instead of a bare fmt.Errorf so that
// the root command can suppress repeated usage output and format the message
// in a user-friendly way.
type UserError struct {
	Message string
}

func (e *UserError) Error() string { return e.Message }

// User creates a UserError with the given message.
func User(msg string) error { return &UserError{Message: msg} }

// Userf creates a formatted UserError.
func Userf(format string, args ...any) error {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// IsUser reports whether err is (or wraps) a *UserError.
func IsUser(err error) bool {
	var u *UserError
	return errors.As(err, &u)
}
