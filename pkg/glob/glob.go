package glob

import (
	"fmt"
	"strings"

	"github.com/gruntwork-io/globre/internal/errors"
	"github.com/gruntwork-io/globre/pkg/log"
	"golang.org/x/sync/errgroup"
)

// Matcher tests strings against a compiled glob pattern. It is safe for concurrent use.
type Matcher struct {
	re        Regexp
	pattern   string
	separator rune
}

// Translate returns the anchored regex source for the given glob pattern without compiling it.
func Translate(pattern string, opts ...Option) (string, error) {
	options := newOptions(opts...)

	expr, err := translate(pattern, options.Separator)
	if err != nil {
		options.Logger.WithFields(log.Fields{
			log.FieldKeyPattern:   pattern,
			log.FieldKeySeparator: string(options.Separator),
		}).WithError(err).Tracef("Failed to translate glob")

		return "", err
	}

	return expr, nil
}

// Compile translates the glob pattern and compiles the result with the configured engine.
func Compile(pattern string, opts ...Option) (*Matcher, error) {
	options := newOptions(opts...)

	return compile(pattern, options)
}

func compile(pattern string, options *Options) (*Matcher, error) {
	logger := options.Logger.WithFields(log.Fields{
		log.FieldKeyPattern: pattern,
		log.FieldKeyEngine:  options.Engine.Name(),
	})

	expr, err := translate(pattern, options.Separator)
	if err != nil {
		logger.WithError(err).Tracef("Failed to translate glob")

		return nil, err
	}

	re, err := options.Engine.Compile(expr)
	if err != nil {
		logger.WithField(log.FieldKeyRegex, expr).WithError(err).Tracef("Regex engine rejected translated glob")

		return nil, errors.New(&InvalidRegexError{
			Err:     err,
			Engine:  options.Engine.Name(),
			Pattern: pattern,
			Regex:   expr,
		})
	}

	logger.WithField(log.FieldKeyRegex, expr).Debugf("Compiled glob %q", pattern)

	return &Matcher{
		re:        re,
		pattern:   pattern,
		separator: options.Separator,
	}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string, opts ...Option) *Matcher {
	matcher, err := Compile(pattern, opts...)
	if err != nil {
		panic(fmt.Sprintf("glob: Compile(%q): %v", pattern, err))
	}

	return matcher
}

// MatchString reports whether the whole of s matches the pattern.
func (m *Matcher) MatchString(s string) bool {
	return m.re.MatchString(s)
}

// Match reports whether the whole of b matches the pattern.
func (m *Matcher) Match(b []byte) bool {
	return m.re.Match(b)
}

// Pattern returns the glob pattern the matcher was compiled from.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Separator returns the path separator the matcher never matches with a wildcard.
func (m *Matcher) Separator() rune {
	return m.separator
}

// String returns the regex source the pattern was translated to.
func (m *Matcher) String() string {
	return m.re.String()
}

// Matchers is a list of compiled patterns evaluated together.
type Matchers []*Matcher

// CompileAll compiles every pattern with the same options, up to Options.Parallelism at a time.
// Collects all errors and returns them as a single multi-error if any occur, along with
// the matchers of the patterns that did compile.
func CompileAll(patterns []string, opts ...Option) (Matchers, error) {
	options := newOptions(opts...)

	return compileAll(patterns, options, func(pattern string) (*Matcher, error) {
		return compile(pattern, options)
	})
}

// compileAll runs compileOne for every pattern, at most options.Parallelism at a time, and keeps
// the results in pattern order. A panic while compiling one pattern becomes that pattern's error.
func compileAll(patterns []string, options *Options, compileOne func(pattern string) (*Matcher, error)) (Matchers, error) {
	var (
		results = make([]*Matcher, len(patterns))
		errs    = make([]error, len(patterns))
		group   errgroup.Group
	)

	group.SetLimit(max(options.Parallelism, 1))

	for i, pattern := range patterns {
		group.Go(func() error {
			defer errors.Recover(func(cause error) {
				options.Logger.WithField(log.FieldKeyPattern, pattern).WithError(cause).Warnf("Recovered from panic while compiling glob")

				errs[i] = cause
			})

			results[i], errs[i] = compileOne(pattern)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	matchers := make(Matchers, 0, len(patterns))

	var multiErr *errors.MultiError

	for i, pattern := range patterns {
		if errs[i] != nil {
			multiErr = multiErr.Append(fmt.Errorf("pattern %d (%q): %w", i, pattern, errs[i]))

			continue
		}

		matchers = append(matchers, results[i])
	}

	return matchers, multiErr.ErrorOrNil()
}

// MatchAny reports whether s matches at least one of the patterns.
func (ms Matchers) MatchAny(s string) bool {
	for _, m := range ms {
		if m.MatchString(s) {
			return true
		}
	}

	return false
}

// MatchAll reports whether s matches every pattern. An empty list matches nothing.
func (ms Matchers) MatchAll(s string) bool {
	if len(ms) == 0 {
		return false
	}

	for _, m := range ms {
		if !m.MatchString(s) {
			return false
		}
	}

	return true
}

// Matching returns the patterns that s matches, in list order.
func (ms Matchers) Matching(s string) []string {
	var patterns []string

	for _, m := range ms {
		if m.MatchString(s) {
			patterns = append(patterns, m.pattern)
		}
	}

	return patterns
}

// String returns the patterns joined by commas.
func (ms Matchers) String() string {
	patterns := make([]string, 0, len(ms))

	for _, m := range ms {
		patterns = append(patterns, m.pattern)
	}

	return strings.Join(patterns, ", ")
}
