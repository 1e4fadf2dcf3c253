package errors

import (
	"errors"
	"slices"
)

// As finds the first error in err's tree that matches target, and if one is found, sets
// target to that error value and returns true. Otherwise, it returns false.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Any reports whether match returns true for any error in err's tree. Unlike As, it keeps
// looking past the first error of a given type, so every branch of a MultiError is visited.
func Any(err error, match func(err error) bool) bool {
	if err == nil {
		return false
	}

	if match(err) {
		return true
	}

	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		return slices.ContainsFunc(multi.Unwrap(), func(err error) bool {
			return Any(err, match)
		})
	}

	return Any(errors.Unwrap(err), match)
}
