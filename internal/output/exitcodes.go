// Package output provides structured output and error handling for the hookkit CLI.
package output

import "errors"

// Exit codes:
// 0 = Success (also used for an aborted install, see NewAbortError)
// 1 = User error (bad args, unknown hook, target outside project)
// 2 = System error (I/O failure, unreadable copy source)
// 3 = Conflict (copy target already exists)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
	ExitConflict    = 3
)

// Kind distinguishes errors the entry point must treat specially.
type Kind int

const (
	// KindReturned errors are reported and mapped to their exit code.
	KindReturned Kind = iota
	// KindFatal errors halt the whole run: nothing after them should execute.
	KindFatal
	// KindAbort errors halt the run with a warning but exit successfully,
	// so a surrounding install pipeline keeps going.
	KindAbort
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for user-caused issues (exit code 1).
// Use for: bad arguments, unknown hook names, targets escaping the project.
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// NewUserErrorWithCause creates a user error wrapping a sentinel or cause.
func NewUserErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
		Cause:   cause,
	}
}

// NewSystemError creates an error for system failures (exit code 2).
func NewSystemError(message string) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
	}
}

// NewSystemErrorWithCause creates a system error wrapping an underlying cause.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
		Cause:   cause,
	}
}

// NewConflictError creates an error for conflict situations (exit code 3).
// Use for: copy target already exists and overwrite was not requested.
func NewConflictError(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitConflict,
		Message: message,
		Cause:   cause,
	}
}

// NewFatalErrorWithCause creates a fatal system error (exit code 2).
// Callers stop at the first fatal error instead of continuing a batch.
func NewFatalErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Kind:    KindFatal,
		Message: message,
		Cause:   cause,
	}
}

// NewAbortError creates a soft abort: the run stops, a warning is printed,
// and the process exits with ExitSuccess.
func NewAbortError(message string) *ExitError {
	return &ExitError{
		Code:    ExitSuccess,
		Kind:    KindAbort,
		Message: message,
	}
}

// IsFatal reports whether err is, or wraps, a fatal error.
// Joined errors are searched in full, not just up to the first ExitError.
func IsFatal(err error) bool {
	return hasKind(err, KindFatal)
}

// IsAbort reports whether err is, or wraps, a soft abort.
func IsAbort(err error) bool {
	return hasKind(err, KindAbort)
}

func hasKind(err error, kind Kind) bool {
	switch e := err.(type) {
	case nil:
		return false
	case *ExitError:
		if e.Kind == kind {
			return true
		}
		return hasKind(e.Cause, kind)
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			if hasKind(inner, kind) {
				return true
			}
		}
		return false
	default:
		return hasKind(errors.Unwrap(err), kind)
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and for aborts, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if IsFatal(err) {
		return ExitSystemError
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Default to user error for untyped errors
	return ExitUserError
}
