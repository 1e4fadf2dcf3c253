package glob_test

import (
	"testing"

	gobwas "github.com/gobwas/glob"
	"github.com/gruntwork-io/globre/pkg/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Patterns in the syntax both implementations share must accept the same candidates. Classes
// are only checked with candidates that keep the separator out of class positions, since
// gobwas/glob lets a class match the separator.
func TestCompile_AgreesWithGobwas(t *testing.T) {
	t.Parallel()

	patterns := []string{
		"*", "?", "*.go", "src/*.go", "*/*", "a?c", "??", "{foo,bar}.txt", "file.{go,mod,sum}",
		"[a-c]x", "[!a-c]x", "[abc]?", "main", "*_test.go", "{a,b}/*",
	}

	candidates := []string{
		"", "a", "ab", "abc", "a/c", "ax", "dx", "bx", "main", "main.go", ".go", "src/main.go",
		"src/a/main.go", "a/b", "a/b/c", "foo.txt", "bar.txt", "baz.txt", "file.go", "file.sum",
		"file.txt", "glob_test.go", "dir/glob_test.go", "a/x", "b/", "c/x",
	}

	// Pairs where gobwas/glob is known to disagree, with the expected result.
	// A lone "?" must consume exactly one character, gobwas accepts the empty string.
	divergences := map[[2]string]bool{
		{"?", ""}: false,
	}

	for _, pattern := range patterns {
		reference, err := gobwas.Compile(pattern, '/')
		require.NoError(t, err, pattern)

		for _, engine := range engines {
			matcher, err := glob.Compile(pattern, glob.WithEngine(engine))
			require.NoError(t, err, pattern)

			for _, candidate := range candidates {
				expected, diverges := divergences[[2]string{pattern, candidate}]
				if !diverges {
					expected = reference.Match(candidate)
				}

				assert.Equal(t, expected, matcher.MatchString(candidate),
					"%s: %q against %q (%s)", engine.Name(), candidate, pattern, matcher)
			}
		}
	}
}
