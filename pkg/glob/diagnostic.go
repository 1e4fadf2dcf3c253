package glob

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

const diagnosticIndent = "     "

var (
	arrowColorizer = ansi.ColorFunc("blue+b")
	caretColorizer = ansi.ColorFunc("red+b")
	hintColorizer  = ansi.ColorFunc("cyan+b")
)

// FormatDiagnostic produces a multi-line error message pointing at the offending part of the pattern.
func FormatDiagnostic(err *ParseError, useColor bool) string {
	var sb strings.Builder

	colorize := func(colorizer func(string) string, s string) string {
		if useColor {
			return colorizer(s)
		}

		return s
	}

	fmt.Fprintf(&sb, "Glob parsing error: %s\n", err.Title)
	fmt.Fprintf(&sb, "%s'%s'\n", colorize(arrowColorizer, " --> "), err.Pattern)
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "%s%s\n", diagnosticIndent, err.Pattern)

	// ErrorPosition may differ from Position for unclosed constructs
	spaces := strings.Repeat(" ", max(err.ErrorPosition, 0))
	fmt.Fprintf(&sb, "%s%s%s %s\n", diagnosticIndent, spaces, colorize(caretColorizer, "^"), err.Message)

	if hint := GetHint(err.ErrorCode, err.Offending, err.Pattern, err.Position); hint != "" {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "  %s %s\n", colorize(hintColorizer, "hint:"), hint)
	}

	return sb.String()
}

// ShouldUseColor reports whether diagnostics written to file should be colored.
func ShouldUseColor(file *os.File) bool {
	if file == nil || os.Getenv("NO_COLOR") != "" {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
