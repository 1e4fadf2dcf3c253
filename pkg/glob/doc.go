// Package glob compiles shell-style glob patterns into anchored regular expressions.
//
// # Overview
//
// A pattern is translated in a single left-to-right scan by a small state machine. The scan
// appends regex fragments to an output buffer and fails on the first malformed construct, so a
// caller either gets a complete expression or an error, never a partial one. The expression is
// then compiled by an Engine into a Matcher: the standard library regexp package by default, or
// github.com/coregx/coregex with WithEngine(CoregexEngine{}).
//
// Wildcards and classes never match the path separator, '/' unless configured otherwise with
// WithSeparator. A class left with no members once the separator is removed, such as "[/]",
// matches nothing.
//
// # Pattern Syntax
//
//	?           # Any single character except the separator
//	*           # Any run of characters not containing the separator
//	[abc]       # One of the listed characters
//	[a-z]       # One character from the inclusive range
//	[!a-z]      # One character outside the range, never the separator
//	[]a]        # A ']' right after '[' or '[!' is a member, not the end of the class
//	[a-]        # A '-' first, last, or after a complete range is a literal dash
//	{foo,bar}   # One of the comma-separated literal branches
//	\n          # Escapes; a b e f n r t v map to control characters, anything else is literal
//
// Everything else matches itself. The whole candidate must match: the expression is anchored
// at both ends.
//
// # Canonical Output
//
// Classes and alternations are emitted in a canonical form that does not depend on the order
// or repetition of their members: characters are sorted, then ranges are sorted by start and
// end, and a literal dash goes last. Alternation branches are escaped, deduplicated and sorted.
// For example, both "[ab0-9c-]" and "[c0-9ba-]" translate to "^[abc0-9-]$".
//
// # Unsupported Constructs
//
// Classes and alternations do not nest. A '[' inside an alternation fails with
// ErrorCodeClassInAlternation, and an escape right after a range dash fails with
// ErrorCodeRangeEndEscape, rather than being silently misread.
//
// # Errors
//
// Translation failures are returned as *ParseError, whose ErrorCode drives GetHint and
// FormatDiagnostic. An expression rejected by the engine is returned as *InvalidRegexError.
//
//	matcher, err := glob.Compile("src/*.{go,mod}")
//	if err != nil {
//		var parseErr *glob.ParseError
//		if errors.As(err, &parseErr) {
//			fmt.Fprint(os.Stderr, glob.FormatDiagnostic(parseErr, glob.ShouldUseColor(os.Stderr)))
//		}
//
//		return err
//	}
//
//	matcher.MatchString("src/main.go") // true
//	matcher.MatchString("src/a/b.go")  // false
package glob
