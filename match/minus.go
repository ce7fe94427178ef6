package match

// minus matches positive, then fails (reporting a MinusFailureError) if
// excluded also matches positive's entire span exactly — e.g.
// until("!") - Literal("aa!") accepts "aaa!" but rejects "aa!", since the
// excluded literal consumes the whole thing.
type minus struct {
	positive, excluded Engine
}

// Minus returns an Engine that matches positive but rejects any match
// whose full span is also matched entirely by excluded.
func Minus(positive, excluded Engine) Engine {
	return &minus{positive: positive, excluded: excluded}
}

func (m *minus) Match(r Reader) bool {
	start := r.Position()
	if !m.positive.Match(r) {
		return false
	}
	end := r.Position()

	sub := NewReader(r.Slice(start, end), r.SourceName())
	if m.excluded.Match(sub) && sub.Eof() {
		r.Restore(start)
		return false
	}
	return true
}

// MinusFailureError reports that an excluded pattern fully matched the span
// its positive pattern matched.
type MinusFailureError struct {
	Begin, End Pos
	Source     string
}

func (e *MinusFailureError) Error() string {
	return "excluded pattern matched [" + e.Begin.String() + ", " + e.End.String() + ")"
}

// FailureError recomputes, without mutating r beyond restoring it to begin,
// whether the preceding failed Match was caused by the excluded pattern
// fully matching the positive pattern's span; if so it reports
// MinusFailureError, otherwise it reports nothing (an ordinary backtrack).
func (m *minus) FailureError(r Reader, begin Pos) error {
	if !m.positive.Match(r) {
		return nil
	}
	end := r.Position()
	r.Restore(begin)

	sub := NewReader(r.Slice(begin, end), r.SourceName())
	if m.excluded.Match(sub) && sub.Eof() {
		return &MinusFailureError{Begin: begin, End: end, Source: r.SourceName()}
	}
	return nil
}
