package log

// Field keys used by the glob compiler.
const (
	FieldKeyPattern   = "pattern"
	FieldKeyRegex     = "regex"
	FieldKeyEngine    = "engine"
	FieldKeySeparator = "separator"
)

// Fields type, used to pass to `WithFields`.
type Fields map[string]any
