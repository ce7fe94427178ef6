package match

import "strings"

// literal matches a fixed string exactly, rune by rune off the reader
// rather than off a pre-sliced substring, so it works uniformly whether
// Reader is backed by a string or (for a streaming host) something else.
type literal struct {
	text string
}

// Literal returns an Engine that matches text exactly. text must not be
// empty: a zero-width literal always matches without consuming input,
// which would make any loop built on it (Delimited's content loop,
// While's condition) infinite.
func Literal(text string) Engine {
	if text == "" {
		panic("match: Literal pattern must not be empty")
	}
	return &literal{text: text}
}

func (l *literal) Match(r Reader) bool {
	start := r.Position()
	for _, want := range l.text {
		if r.Eof() || r.Peek() != want {
			r.Restore(start)
			return false
		}
		r.Bump()
	}
	return true
}

// literalFold is Literal's case-insensitive counterpart, grounded on the
// same rune-by-rune walk.
type literalFold struct {
	text string
}

// LiteralFold returns an Engine that matches text ignoring case.
func LiteralFold(text string) Engine {
	return &literalFold{text: text}
}

func (l *literalFold) Match(r Reader) bool {
	start := r.Position()
	for _, want := range l.text {
		if r.Eof() {
			r.Restore(start)
			return false
		}
		got := r.Peek()
		if got != want && !strings.EqualFold(string(got), string(want)) {
			r.Restore(start)
			return false
		}
		r.Bump()
	}
	return true
}
