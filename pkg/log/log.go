// Package log provides a leveled logger with structured logging support.
//
// The glob compiler logs through this package so that embedding applications can route compiler
// output into their own logrus pipeline, or silence it, with a single option.
package log

var (
	// std is the name of the default logger.
	std = New()
)

// Default returns the logger used by compilers that were not given a logger explicitly.
func Default() Logger {
	return std
}
