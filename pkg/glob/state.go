package glob

import "fmt"

// state is one step of the pattern compiler. Each implementation carries exactly the
// accumulator data it needs, so a class or alternation cannot be open without one.
type state interface {
	// next consumes one pattern character and returns the state for the following one.
	next(c *compiler, ch rune) (state, error)

	// endOfInput is called once the pattern is exhausted in this state.
	endOfInput(c *compiler) error
}

var (
	_ state = literalState{}
	_ state = escapeState{}
	_ state = classStartState{}
	_ state = classState{}
	_ state = classRangeState{}
	_ state = classRangeDashState{}
	_ state = classEscapeState{}
	_ state = alternateState{}
	_ state = alternateEscapeState{}
)

// literalState is the initial state, outside of any construct.
type literalState struct{}

func (st literalState) next(c *compiler, ch rune) (state, error) {
	switch ch {
	case '\\':
		return escapeState{opened: c.pos}, nil
	case '[':
		return classStartState{classConstruct{opened: c.pos}}, nil
	case '{':
		return alternateState{
			alternateConstruct: alternateConstruct{opened: c.pos},
			acc:                new(alternateAccumulator),
		}, nil
	case '?':
		c.out.WriteString(c.anyChar)
	case '*':
		c.out.WriteString(c.anyChar)
		c.out.WriteByte('*')
	case ']', '}', '.':
		c.out.WriteByte('\\')
		c.out.WriteRune(ch)
	default:
		writeEscaped(&c.out, ch)
	}

	return st, nil
}

func (st literalState) endOfInput(c *compiler) error {
	c.out.WriteByte('$')

	return nil
}

// escapeState follows a backslash outside of any construct.
type escapeState struct {
	opened int
}

func (st escapeState) next(c *compiler, ch rune) (state, error) {
	writeEscaped(&c.out, mapEscapeLetter(ch))

	return literalState{}, nil
}

func (st escapeState) endOfInput(c *compiler) error {
	return c.fail(ErrorCodeBareEscape, "the pattern ends with a bare '\\'", `\`, st.opened)
}

// classConstruct is embedded by every state inside `[...]`.
type classConstruct struct {
	opened int
}

func (con classConstruct) endOfInput(c *compiler) error {
	return c.fail(ErrorCodeUnclosedClass, "this character class is missing a closing ']'", c.rest(con.opened), con.opened)
}

// classStartState reads the first character after `[`.
type classStartState struct {
	classConstruct
}

func (st classStartState) next(c *compiler, ch rune) (state, error) {
	switch ch {
	case '!':
		return classState{st.classConstruct, &classAccumulator{negated: true}}, nil
	case '\\':
		return classEscapeState{st.classConstruct, new(classAccumulator)}, nil
	}

	acc := new(classAccumulator)
	acc.push(charItem(ch))

	return classState{st.classConstruct, acc}, nil
}

// classState reads class members.
type classState struct {
	classConstruct
	acc *classAccumulator
}

func (st classState) next(c *compiler, ch rune) (state, error) {
	switch ch {
	case ']':
		if len(st.acc.items) == 0 {
			st.acc.push(charItem(ch))

			return st, nil
		}

		c.out.WriteString(closeClass(*st.acc, c.sep))

		return literalState{}, nil
	case '-':
		last, ok := st.acc.pop()

		switch {
		case !ok:
			st.acc.push(charItem(ch))

			return st, nil
		case last.isRange():
			st.acc.push(last)

			return classRangeDashState{st.classConstruct, st.acc}, nil
		default:
			return classRangeState{st.classConstruct, st.acc, last.start}, nil
		}
	case '\\':
		return classEscapeState(st), nil
	}

	st.acc.push(charItem(ch))

	return st, nil
}

// classRangeState holds the start of a range whose dash has just been read.
type classRangeState struct {
	classConstruct
	acc   *classAccumulator
	start rune
}

func (st classRangeState) next(c *compiler, ch rune) (state, error) {
	switch {
	case ch == '\\':
		return nil, c.fail(ErrorCodeRangeEndEscape,
			fmt.Sprintf("an escaped character cannot end the range starting at %q", st.start),
			string(st.start)+`-\`, c.pos)
	case ch == ']':
		st.acc.push(charItem(st.start))
		st.acc.push(charItem('-'))
		c.out.WriteString(closeClass(*st.acc, c.sep))

		return literalState{}, nil
	case ch < st.start:
		return nil, c.fail(ErrorCodeReversedRange,
			fmt.Sprintf("reversed range from %q to %q", st.start, ch),
			string(st.start)+"-"+string(ch), c.pos)
	case ch == st.start:
		st.acc.push(charItem(ch))
	default:
		st.acc.push(rangeItem(st.start, ch))
	}

	return classState{st.classConstruct, st.acc}, nil
}

// classRangeDashState follows a dash read right after a complete range.
type classRangeDashState struct {
	classConstruct
	acc *classAccumulator
}

func (st classRangeDashState) next(c *compiler, ch rune) (state, error) {
	if ch == ']' {
		st.acc.push(charItem('-'))
		c.out.WriteString(closeClass(*st.acc, c.sep))

		return literalState{}, nil
	}

	last := st.acc.items[len(st.acc.items)-1]

	return nil, c.fail(ErrorCodeRangeAfterRange,
		fmt.Sprintf("range following the %q-%q range", last.start, last.end),
		string(last.start)+"-"+string(last.end)+"-"+string(ch), c.pos)
}

// classEscapeState follows a backslash inside a class.
type classEscapeState struct {
	classConstruct
	acc *classAccumulator
}

func (st classEscapeState) next(c *compiler, ch rune) (state, error) {
	st.acc.push(charItem(mapEscapeLetter(ch)))

	return classState(st), nil
}

// alternateConstruct is embedded by every state inside `{...}`.
type alternateConstruct struct {
	opened int
}

func (con alternateConstruct) endOfInput(c *compiler) error {
	return c.fail(ErrorCodeUnclosedAlternation, "this alternation is missing a closing '}'", c.rest(con.opened), con.opened)
}

// alternateState reads the branches of an alternation.
type alternateState struct {
	alternateConstruct
	acc *alternateAccumulator
}

func (st alternateState) next(c *compiler, ch rune) (state, error) {
	switch ch {
	case ',':
		st.acc.nextBranch()
	case '}':
		if st.acc.isEmpty() {
			writeEscaped(&c.out, '{')
			writeEscaped(&c.out, '}')

			return literalState{}, nil
		}

		st.acc.nextBranch()
		c.out.WriteString(closeAlternate(st.acc.gathered))

		return literalState{}, nil
	case '\\':
		return alternateEscapeState(st), nil
	case '[':
		return nil, c.fail(ErrorCodeClassInAlternation,
			"character classes are not supported inside an alternation", "[", c.pos)
	default:
		st.acc.push(ch)
	}

	return st, nil
}

// alternateEscapeState follows a backslash inside an alternation.
type alternateEscapeState struct {
	alternateConstruct
	acc *alternateAccumulator
}

func (st alternateEscapeState) next(c *compiler, ch rune) (state, error) {
	st.acc.push(mapEscapeLetter(ch))

	return alternateState(st), nil
}
