package glob

import (
	"strings"
	"unicode/utf8"

	"github.com/gruntwork-io/globre/internal/errors"
)

// compiler holds everything one translation owns. It is never shared between calls.
type compiler struct {
	pattern string
	anyChar string // matches a single character other than the separator
	out     strings.Builder
	pos     int // rune index of the character being consumed
	sep     rune
}

func newCompiler(pattern string, sep rune) *compiler {
	var anyChar strings.Builder

	anyChar.WriteString("[^")
	writeEscapedInClass(&anyChar, sep)
	anyChar.WriteByte(']')

	c := &compiler{
		pattern: pattern,
		anyChar: anyChar.String(),
		sep:     sep,
	}

	c.out.Grow(len(pattern) + len("^$"))
	c.out.WriteByte('^')

	return c
}

// translate scans the pattern once and returns the anchored regex source.
func translate(pattern string, sep rune) (string, error) {
	var (
		c       = newCompiler(pattern, sep)
		current = state(literalState{})
		err     error
	)

	for _, ch := range pattern {
		if current, err = current.next(c, ch); err != nil {
			return "", err
		}

		c.pos++
	}

	if err := current.endOfInput(c); err != nil {
		return "", err
	}

	return c.out.String(), nil
}

// fail builds a ParseError for the character at the current position.
func (c *compiler) fail(code ErrorCode, message, offending string, errorPosition int) error {
	return errors.New(&ParseError{
		Title:         code.Title(),
		Message:       message,
		Pattern:       c.pattern,
		Offending:     offending,
		Fragment:      c.out.String(),
		Position:      c.pos,
		ErrorPosition: errorPosition,
		ErrorCode:     code,
	})
}

// rest returns the pattern from the given rune index to the end.
func (c *compiler) rest(from int) string {
	str := c.pattern

	for range from {
		_, size := utf8.DecodeRuneInString(str)
		str = str[size:]
	}

	return str
}
