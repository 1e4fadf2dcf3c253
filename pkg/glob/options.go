package glob

import (
	"runtime"

	"github.com/gruntwork-io/globre/pkg/log"
)

// DefaultSeparator is the path separator wildcards and classes never match unless configured otherwise.
const DefaultSeparator = '/'

// Options configures a compilation.
type Options struct {
	Engine      Engine
	Logger      log.Logger
	Parallelism int // Maximum number of patterns CompileAll compiles at once
	Separator   rune
}

// Option is a functional option for configuring a compilation.
type Option func(*Options)

// DefaultOptions returns the options used when none are given.
func DefaultOptions() *Options {
	return &Options{
		Engine:      StdlibEngine{},
		Logger:      log.Default(),
		Parallelism: runtime.NumCPU(),
		Separator:   DefaultSeparator,
	}
}

// newOptions applies opts on top of the defaults.
func newOptions(opts ...Option) *Options {
	options := DefaultOptions()

	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithSeparator sets the character that `?`, `*` and classes never match.
func WithSeparator(sep rune) Option {
	return func(opts *Options) {
		opts.Separator = sep
	}
}

// WithEngine sets the regex engine the translated expression is compiled with.
func WithEngine(engine Engine) Option {
	return func(opts *Options) {
		if engine != nil {
			opts.Engine = engine
		}
	}
}

// WithLogger sets the logger compilation is reported to.
func WithLogger(logger log.Logger) Option {
	return func(opts *Options) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithParallelism limits how many patterns CompileAll compiles at once.
func WithParallelism(parallelism int) Option {
	return func(opts *Options) {
		opts.Parallelism = parallelism
	}
}
