package glob

import "strings"

const (
	// metaChars are significant in a regular expression outside of a character class.
	metaChars = `[{()|^$.*?+\`

	// classMetaChars are significant inside a character class.
	classMetaChars = `]\[^-`
)

// mapEscapeLetter returns the control character denoted by a backslash-escaped letter.
// Any other character is returned unchanged.
func mapEscapeLetter(ch rune) rune {
	switch ch {
	case 'a':
		return '\a'
	case 'b':
		return '\b'
	case 'e':
		return '\x1b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'v':
		return '\v'
	}

	return ch
}

// writeEscaped appends ch to sb, backslash-prefixed if it is a regex metacharacter.
func writeEscaped(sb *strings.Builder, ch rune) {
	if strings.ContainsRune(metaChars, ch) {
		sb.WriteByte('\\')
	}

	sb.WriteRune(ch)
}

// writeEscapedInClass appends ch to sb, backslash-prefixed if it is significant inside a class.
func writeEscapedInClass(sb *strings.Builder, ch rune) {
	if strings.ContainsRune(classMetaChars, ch) {
		sb.WriteByte('\\')
	}

	sb.WriteRune(ch)
}

// escapeString runs every character of str through the general escaper.
func escapeString(str string) string {
	var sb strings.Builder

	sb.Grow(len(str))

	for _, ch := range str {
		writeEscaped(&sb, ch)
	}

	return sb.String()
}
