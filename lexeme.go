package comb

// Lexeme is the half-open span [Begin, End) of two reader positions,
// immutable once captured. Invariant: Begin.Offset <= End.Offset.
type Lexeme struct {
	Begin, End Pos
}

// Text returns the span's source text, given the reader it was captured
// from (or any reader over the same underlying input).
func (l Lexeme) Text(r Reader) string {
	return r.Slice(l.Begin, l.End)
}
