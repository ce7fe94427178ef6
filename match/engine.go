package match

// Engine is the matching primitive a comb.Token wraps: given a Reader
// positioned at the candidate start, it either matches some run of input
// starting there and advances the reader past it, or declines and leaves
// the reader untouched. An Engine never reports a partial failure — it is
// this declines-or-matches-a-full-span contract that lets every Token
// built from one satisfy Branch; such a Token returns Canceled only when
// its Engine is also a FailureReporter that reports an error.
type Engine interface {
	// Match attempts to match at r's current position. On success it
	// advances r past the match and returns true. On failure it must not
	// advance r at all.
	Match(r Reader) bool
}

// FailureReporter lets an Engine describe its own failure as a hard error
// rather than a silent backtrack. After Match(r) returns false (leaving r
// at begin), the caller invokes FailureError(r, begin); a nil result means
// the failure really is an ordinary declined match. Minus implements this
// to report MinusFailureError when its excluded pattern is what rejected
// the input, as opposed to its positive pattern simply not matching.
type FailureReporter interface {
	FailureError(r Reader, begin Pos) error
}

// Infallible is implemented by an Engine that can never decline a match —
// e.g. a hypothetical zero-width "always succeeds" lookahead. None of this
// package's engines implement it; comb.Delimited rejects a Char token
// whose engine does, since a content loop built on one would never
// terminate.
type Infallible interface {
	AlwaysMatches() bool
}
