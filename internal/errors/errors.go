// Package errors contains helper functions for wrapping errors with stack traces and aggregating
// the failures of several glob compilations.
package errors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// New creates a new error with a stack trace from the given value. If the value is already an
// error carrying a stack trace, it is returned as is. Returns nil if the given value is nil.
func New(val any) error {
	if val == nil {
		return nil
	}

	if err, ok := val.(error); ok && ContainsStackTrace(err) {
		return err
	}

	return goerrors.Wrap(val, 1)
}

// Errorf creates a new error and wraps it in an Error type that contains the stack trace.
func Errorf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)

	return goerrors.Wrap(err, 1)
}

// ErrorStack returns the stack traces of all errors in the tree, if available.
func ErrorStack(err error) string {
	var goErr *goerrors.Error

	if errors.As(err, &goErr) {
		return goErr.ErrorStack()
	}

	return ""
}

// ContainsStackTrace returns true if the given error contains a stack trace.
// Useful to avoid creating a nested stack trace.
func ContainsStackTrace(err error) bool {
	var goErr *goerrors.Error

	return errors.As(err, &goErr)
}

// Recover tries to recover from panics, and if it succeeds, calls the given onPanic function with an error that
// explains the cause of the panic. This function should only be called from a defer statement.
func Recover(onPanic func(cause error)) {
	if rec := recover(); rec != nil {
		err, isError := rec.(error)
		if !isError {
			err = fmt.Errorf("%v", rec) //nolint:err113
		}

		onPanic(New(err))
	}
}
