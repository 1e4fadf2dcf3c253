package glob

import (
	"fmt"
	"strings"
)

// GetHint returns a single consolidated hint for a parse error.
func GetHint(code ErrorCode, offending, pattern string, position int) string {
	switch code {
	case ErrorCodeBareEscape:
		return fmt.Sprintf("A trailing '\\' escapes nothing. To match a literal backslash, double it: '%s\\'", pattern)
	case ErrorCodeUnclosedClass:
		return getUnclosedClassHint(offending, pattern)
	case ErrorCodeUnclosedAlternation:
		return getUnclosedAlternationHint(offending, pattern)
	case ErrorCodeReversedRange:
		return getReversedRangeHint(offending)
	case ErrorCodeRangeAfterRange:
		return "Two ranges cannot be joined by a dash. To match a literal '-', put it last in the class. e.g. '[a-z0-9-]'"
	case ErrorCodeRangeEndEscape:
		return "An escaped character cannot end a range. Write the range end without the backslash, or list the character on its own."
	case ErrorCodeClassInAlternation:
		return getClassInAlternationHint(pattern, position)

	// These are errors that don't have obvious hints that can be offered.
	case ErrorCodeUnknown:
		return ""
	}

	return ""
}

// getUnclosedClassHint returns a dynamic hint for a class left open at the end of the pattern.
func getUnclosedClassHint(offending, pattern string) string {
	if offending == "[" {
		return "To match a literal '[', escape it: '\\['"
	}

	return fmt.Sprintf("Character classes must be closed with ']'. Did you mean '%s]'?", pattern)
}

// getUnclosedAlternationHint returns a dynamic hint for an alternation left open at the end of the pattern.
func getUnclosedAlternationHint(offending, pattern string) string {
	if offending == "{" {
		return "To match a literal '{', escape it: '\\{'"
	}

	return fmt.Sprintf("Alternations must be closed with '}'. Did you mean '%s}'?", pattern)
}

// getReversedRangeHint suggests the range with its ends swapped.
func getReversedRangeHint(offending string) string {
	if start, end, found := strings.Cut(offending, "-"); found && start != "" && end != "" {
		return fmt.Sprintf("Range ends must not sort before their start. Did you mean '%s-%s'?", end, start)
	}

	return "Range ends must not sort before their start. e.g. '[a-z]'"
}

// getClassInAlternationHint points at the alternation branch that holds the class.
func getClassInAlternationHint(pattern string, position int) string {
	runes := []rune(pattern)
	if position < 0 || position >= len(runes) {
		return "Character classes cannot be used inside '{...}'. List each alternative as a separate branch instead. e.g. '{a1,a2}'"
	}

	branchStart := position
	for branchStart > 0 && runes[branchStart-1] != '{' && runes[branchStart-1] != ',' {
		branchStart--
	}

	return fmt.Sprintf(
		"Character classes cannot be used inside '{...}'. List each alternative of the branch starting with '%s' as a separate branch instead.",
		string(runes[branchStart:position+1]),
	)
}
