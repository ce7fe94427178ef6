// Package match provides the concrete token engines that the comb package's
// Token wrapper adapts into the Rule/Branch/Token taxonomy: literal text,
// rune ranges, "any", "until", set-minus, and whitespace runs.
package match

import (
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Pos is a cursor position: a byte offset plus the 1-based line and column
// it corresponds to. It is a plain struct so copying it (the backtracking
// contract's "cheap clone") is just a value copy.
type Pos struct {
	Offset int
	Line   int
	Column int
}

// String renders the position the way tools conventionally print them.
func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// runeWidth reports the column width of r: 2 for East-Asian wide/fullwidth
// runes, 1 otherwise. Tabs and control characters count as 1; callers that
// care about tab stops expand them before feeding text to a Reader.
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// Advance returns the position reached after consuming r at p.
func (p Pos) Advance(r rune) Pos {
	next := Pos{Offset: p.Offset + utf8.RuneLen(r), Line: p.Line, Column: p.Column + runeWidth(r)}
	if r == '\n' {
		next.Line = p.Line + 1
		next.Column = 1
	}
	return next
}
