package glob_test

import (
	"testing"

	"github.com/gruntwork-io/globre/pkg/glob"
	"github.com/stretchr/testify/assert"
)

func TestGetHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		offending string
		pattern   string
		contains  string
		code      glob.ErrorCode
		position  int
	}{
		{
			name:      "bare escape suggests doubling",
			code:      glob.ErrorCodeBareEscape,
			offending: `\`,
			pattern:   `dir\`,
			position:  4,
			contains:  `'dir\\'`,
		},
		{
			name:      "unclosed class suggests closing",
			code:      glob.ErrorCodeUnclosedClass,
			offending: "[a-z",
			pattern:   "x[a-z",
			position:  5,
			contains:  "Did you mean 'x[a-z]'?",
		},
		{
			name:      "lone bracket suggests escaping",
			code:      glob.ErrorCodeUnclosedClass,
			offending: "[",
			pattern:   "x[",
			position:  2,
			contains:  `'\['`,
		},
		{
			name:      "unclosed alternation suggests closing",
			code:      glob.ErrorCodeUnclosedAlternation,
			offending: "{a,b",
			pattern:   "*.{a,b",
			position:  6,
			contains:  "Did you mean '*.{a,b}'?",
		},
		{
			name:      "lone brace suggests escaping",
			code:      glob.ErrorCodeUnclosedAlternation,
			offending: "{",
			pattern:   "{",
			position:  1,
			contains:  `'\{'`,
		},
		{
			name:      "reversed range suggests swapping",
			code:      glob.ErrorCodeReversedRange,
			offending: "z-a",
			pattern:   "[z-a]",
			position:  3,
			contains:  "Did you mean 'a-z'?",
		},
		{
			name:      "range after range suggests trailing dash",
			code:      glob.ErrorCodeRangeAfterRange,
			offending: "a-z-0",
			pattern:   "[a-z-0]",
			position:  5,
			contains:  "'[a-z0-9-]'",
		},
		{
			name:      "escaped range end",
			code:      glob.ErrorCodeRangeEndEscape,
			offending: `a-\`,
			pattern:   `[a-\]]`,
			position:  3,
			contains:  "cannot end a range",
		},
		{
			name:      "class inside alternation names the branch",
			code:      glob.ErrorCodeClassInAlternation,
			offending: "[",
			pattern:   "{ab,cd[0-9]}",
			position:  6,
			contains:  "'cd['",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := glob.GetHint(tt.code, tt.offending, tt.pattern, tt.position)
			assert.Contains(t, hint, tt.contains)
		})
	}
}

func TestGetHint_NoHint(t *testing.T) {
	t.Parallel()

	assert.Empty(t, glob.GetHint(glob.ErrorCodeUnknown, "", "", 0))
}

func TestGetHint_ClassInAlternationOutOfRange(t *testing.T) {
	t.Parallel()

	hint := glob.GetHint(glob.ErrorCodeClassInAlternation, "[", "{a[", 10)
	assert.Contains(t, hint, "e.g. '{a1,a2}'")
}
