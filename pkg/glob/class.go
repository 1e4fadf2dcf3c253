package glob

import (
	"cmp"
	"slices"
	"strings"

	"github.com/gruntwork-io/globre/internal/util"
)

// classItem is a single class member: a character when start == end, an inclusive range otherwise.
type classItem struct {
	start rune
	end   rune
}

func charItem(ch rune) classItem {
	return classItem{start: ch, end: ch}
}

func rangeItem(start, end rune) classItem {
	return classItem{start: start, end: end}
}

func (item classItem) isRange() bool {
	return item.start != item.end
}

func (item classItem) contains(ch rune) bool {
	return item.start <= ch && ch <= item.end
}

func compareClassItems(a, b classItem) int {
	return cmp.Or(cmp.Compare(a.start, b.start), cmp.Compare(a.end, b.end))
}

// classAccumulator collects the members of one `[...]` class.
type classAccumulator struct {
	items   []classItem
	negated bool
}

func (acc *classAccumulator) push(item classItem) {
	acc.items = append(acc.items, item)
}

// pop removes and returns the last member, if any.
func (acc *classAccumulator) pop() (classItem, bool) {
	if len(acc.items) == 0 {
		return classItem{}, false
	}

	last := acc.items[len(acc.items)-1]
	acc.items = acc.items[:len(acc.items)-1]

	return last, true
}

// excludeSeparator removes sep from every member, splitting ranges that contain it.
func (acc *classAccumulator) excludeSeparator(sep rune) {
	items := make([]classItem, 0, len(acc.items)+1)

	for _, item := range acc.items {
		if !item.contains(sep) {
			items = append(items, item)

			continue
		}

		if item.start <= sep-1 {
			items = append(items, rangeItem(item.start, sep-1))
		}

		if sep+1 <= item.end {
			items = append(items, rangeItem(sep+1, item.end))
		}
	}

	acc.items = items
}

// includeSeparator adds sep as a member unless one already covers it.
func (acc *classAccumulator) includeSeparator(sep rune) {
	if slices.ContainsFunc(acc.items, func(item classItem) bool { return item.contains(sep) }) {
		return
	}

	acc.push(charItem(sep))
}

// emptyClass matches no character at all.
const emptyClass = `[^\x00-\x{10FFFF}]`

// closeClass renders the accumulated class in canonical form. The separator is forced out of
// the matched set: dropped from a plain class, added to a negated one. Characters come first in
// ascending order, then ranges ordered by start and end, then a literal dash if one was given.
func closeClass(acc classAccumulator, sep rune) string {
	if acc.negated {
		acc.includeSeparator(sep)
	} else {
		acc.excludeSeparator(sep)
	}

	if len(acc.items) == 0 {
		return emptyClass
	}

	var (
		chars  []rune
		ranges []classItem
	)

	for _, item := range acc.items {
		if item.isRange() {
			ranges = append(ranges, item)
		} else {
			chars = append(chars, item.start)
		}
	}

	chars = util.RemoveDuplicates(chars)
	ranges = util.RemoveDuplicatesFunc(ranges, compareClassItems)

	hasDash := slices.Contains(chars, '-')
	if hasDash {
		chars = slices.DeleteFunc(chars, func(ch rune) bool { return ch == '-' })
	}

	var sb strings.Builder

	sb.WriteByte('[')

	if acc.negated {
		sb.WriteByte('^')
	}

	for _, ch := range chars {
		writeEscapedInClass(&sb, ch)
	}

	for _, item := range ranges {
		writeEscapedInClass(&sb, item.start)
		sb.WriteByte('-')
		writeEscapedInClass(&sb, item.end)
	}

	if hasDash {
		sb.WriteByte('-')
	}

	sb.WriteByte(']')

	return sb.String()
}
