package glob

import (
	"slices"
	"strings"

	"github.com/gruntwork-io/globre/internal/util"
)

// alternateAccumulator collects the branches of one `{...}` group.
type alternateAccumulator struct {
	current  []rune
	gathered []string
}

func (acc *alternateAccumulator) push(ch rune) {
	acc.current = append(acc.current, ch)
}

func (acc *alternateAccumulator) isEmpty() bool {
	return len(acc.current) == 0 && len(acc.gathered) == 0
}

// nextBranch finishes the branch being read.
func (acc *alternateAccumulator) nextBranch() {
	acc.gathered = append(acc.gathered, string(acc.current))
	acc.current = acc.current[:0]
}

// closeAlternate renders the gathered branches as a group of escaped literals,
// deduplicated and sorted by their escaped text.
func closeAlternate(gathered []string) string {
	branches := make([]string, 0, len(gathered))

	for _, branch := range util.RemoveDuplicates(gathered) {
		branches = append(branches, escapeString(branch))
	}

	slices.Sort(branches)

	return "(" + strings.Join(branches, "|") + ")"
}
