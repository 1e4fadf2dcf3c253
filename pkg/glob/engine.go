package glob

import (
	"regexp"
	"regexp/syntax"
	"unicode/utf8"

	"github.com/coregx/coregex"
)

// Regexp is a compiled regular expression as produced by an Engine.
type Regexp interface {
	MatchString(s string) bool
	Match(b []byte) bool
	String() string
}

// Engine compiles the translated regex source into a Regexp.
type Engine interface {
	Name() string
	Compile(expr string) (Regexp, error)
}

var (
	_ Engine = CoregexEngine{}
	_ Engine = StdlibEngine{}

	_ Regexp = (*coregexRegexp)(nil)
	_ Regexp = (*regexp.Regexp)(nil)
)

// StdlibEngine compiles expressions with the standard library regexp package. It is the default engine.
type StdlibEngine struct{}

func (StdlibEngine) Name() string {
	return "regexp"
}

func (StdlibEngine) Compile(expr string) (Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	return re, nil
}

// CoregexEngine compiles expressions with github.com/coregx/coregex.
//
// coregex only handles negated classes byte by byte and compiles an empty class as an empty
// match, so ASCII input goes to coregex while non-ASCII input, and expressions with a class that
// matches nothing, are matched by the standard library.
type CoregexEngine struct{}

func (CoregexEngine) Name() string {
	return "coregex"
}

func (CoregexEngine) Compile(expr string) (Regexp, error) {
	fallback, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	tree, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return nil, err
	}

	if hasEmptyClass(tree) {
		return &coregexRegexp{fallback: fallback}, nil
	}

	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, err
	}

	return &coregexRegexp{re: re, fallback: fallback}, nil
}

// coregexRegexp matches ASCII input with coregex and everything else with fallback.
type coregexRegexp struct {
	re       *coregex.Regex
	fallback *regexp.Regexp
}

func (re *coregexRegexp) MatchString(s string) bool {
	if re.re == nil || !isASCIIString(s) {
		return re.fallback.MatchString(s)
	}

	return re.re.MatchString(s)
}

func (re *coregexRegexp) Match(b []byte) bool {
	if re.re == nil || !isASCII(b) {
		return re.fallback.Match(b)
	}

	return re.re.Match(b)
}

func (re *coregexRegexp) String() string {
	return re.fallback.String()
}

func hasEmptyClass(re *syntax.Regexp) bool {
	if re.Op == syntax.OpNoMatch || (re.Op == syntax.OpCharClass && len(re.Rune) == 0) {
		return true
	}

	for _, sub := range re.Sub {
		if hasEmptyClass(sub) {
			return true
		}
	}

	return false
}

func isASCIIString(s string) bool {
	for i := range len(s) {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}

	return true
}
