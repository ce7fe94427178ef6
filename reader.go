package comb

import "github.com/tef/comb/match"

// Code is a single decoded input unit: an alias of match.Code.
type Code = match.Code

// EofCode is the sentinel Peek returns at end of input.
const EofCode = match.EofCode

// Reader is a cursor over immutable input, aliasing match.Reader so that
// match engines and comb rules operate on the same concrete cursor.
type Reader = match.Reader

// NewReader returns a Reader over src. name is used only in error messages.
func NewReader(src, name string) Reader {
	return match.NewReader(src, name)
}
