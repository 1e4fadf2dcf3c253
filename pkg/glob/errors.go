package glob

import (
	"fmt"

	"github.com/gruntwork-io/globre/internal/errors"
)

// ErrorCode categorizes parse errors for hint lookup.
type ErrorCode int

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodeBareEscape
	ErrorCodeUnclosedClass
	ErrorCodeUnclosedAlternation
	ErrorCodeReversedRange
	ErrorCodeRangeAfterRange
	ErrorCodeRangeEndEscape
	ErrorCodeClassInAlternation
)

// Title returns the one-line summary used as the diagnostic header.
func (code ErrorCode) Title() string {
	switch code {
	case ErrorCodeBareEscape:
		return "Bare escape character"
	case ErrorCodeUnclosedClass:
		return "Unclosed character class"
	case ErrorCodeUnclosedAlternation:
		return "Unclosed alternation"
	case ErrorCodeReversedRange:
		return "Reversed range"
	case ErrorCodeRangeAfterRange:
		return "Range following a range"
	case ErrorCodeRangeEndEscape:
		return "Escaped range end"
	case ErrorCodeClassInAlternation:
		return "Character class inside alternation"
	case ErrorCodeUnknown:
	}

	return "Unknown error"
}

// NotImplemented reports whether the code marks a construct the compiler rejects as unsupported
// rather than as malformed.
func (code ErrorCode) NotImplemented() bool {
	return code == ErrorCodeRangeEndEscape || code == ErrorCodeClassInAlternation
}

// ParseError represents a glob pattern that could not be translated.
type ParseError struct {
	Title         string
	Message       string
	Pattern       string    // Original glob pattern
	Offending     string    // The problematic characters
	Fragment      string    // Regex source produced before the failure
	Position      int       // Rune index where the failure was detected
	ErrorPosition int       // Rune index to point at, the opening of an unclosed construct
	ErrorCode     ErrorCode // For hint lookup
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("glob parse error at position %d: %s", e.Position, e.Message)
}

// IsParseErrorCode reports whether any ParseError in err's tree has the given code. Every
// failure aggregated by CompileAll is checked, not only the first one.
func IsParseErrorCode(err error, code ErrorCode) bool {
	return errors.Any(err, func(err error) bool {
		parseErr, ok := err.(*ParseError)

		return ok && parseErr.ErrorCode == code
	})
}

// InvalidRegexError is returned when the regex engine rejects a translated pattern.
type InvalidRegexError struct {
	Err     error
	Engine  string
	Pattern string
	Regex   string
}

func (e *InvalidRegexError) Error() string {
	return fmt.Sprintf("%s engine rejected %q translated from glob %q: %v", e.Engine, e.Regex, e.Pattern, e.Err)
}

func (e *InvalidRegexError) Unwrap() error {
	return e.Err
}
