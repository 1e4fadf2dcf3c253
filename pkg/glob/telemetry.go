package glob

import (
	"context"

	"github.com/gruntwork-io/globre/internal/telemetry"
)

// Telemetry operation names for glob compilation.
const (
	TelemetryOpGlobCompile    = "glob_compile"
	TelemetryOpGlobCompileAll = "glob_compile_all"
)

// Telemetry attribute keys for glob compilation.
const (
	AttrGlobPattern      = "glob.pattern"
	AttrGlobSeparator    = "glob.separator"
	AttrGlobEngine       = "glob.engine"
	AttrGlobPatternCount = "glob.pattern_count"
)

// TraceGlobCompile wraps a single glob compilation with telemetry.
// The underlying Telemeter.Collect handles nil/unconfigured telemetry gracefully.
func TraceGlobCompile(ctx context.Context, pattern string, opts *Options, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpGlobCompile, map[string]any{
		AttrGlobPattern:   pattern,
		AttrGlobSeparator: string(opts.Separator),
		AttrGlobEngine:    opts.Engine.Name(),
	}, fn)
}

// TraceGlobCompileAll wraps the compilation of a list of patterns with telemetry.
func TraceGlobCompileAll(ctx context.Context, patternCount int, opts *Options, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpGlobCompileAll, map[string]any{
		AttrGlobPatternCount: patternCount,
		AttrGlobSeparator:    string(opts.Separator),
		AttrGlobEngine:       opts.Engine.Name(),
	}, fn)
}

// CompileContext is like Compile but records a span and duration metrics with the telemeter
// carried by ctx, if any.
func CompileContext(ctx context.Context, pattern string, opts ...Option) (*Matcher, error) {
	return compileContext(ctx, pattern, newOptions(opts...))
}

func compileContext(ctx context.Context, pattern string, options *Options) (*Matcher, error) {
	var matcher *Matcher

	err := TraceGlobCompile(ctx, pattern, options, func(ctx context.Context) error {
		var err error

		matcher, err = compile(pattern, options)

		return err
	})
	if err != nil {
		return nil, err
	}

	return matcher, nil
}

// CompileAllContext is like CompileAll but records telemetry for the whole list and for each
// pattern with the telemeter carried by ctx, if any.
func CompileAllContext(ctx context.Context, patterns []string, opts ...Option) (Matchers, error) {
	options := newOptions(opts...)

	var matchers Matchers

	err := TraceGlobCompileAll(ctx, len(patterns), options, func(ctx context.Context) error {
		var err error

		matchers, err = compileAll(patterns, options, func(pattern string) (*Matcher, error) {
			return compileContext(ctx, pattern, options)
		})

		return err
	})

	return matchers, err
}
