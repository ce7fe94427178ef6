package comb

import "github.com/tef/comb/match"

func litToken(kind, text string) Branch {
	return NewToken(kind, match.Literal(text))
}

// Quoted is delimited(`"`).
func Quoted() *DelimitedBuilder { return DelimitedSame(litToken("quote", `"`)) }

// TripleQuoted is delimited(`"""`).
func TripleQuoted() *DelimitedBuilder { return DelimitedSame(litToken("triple-quote", `"""`)) }

// SingleQuoted is delimited(`'`).
func SingleQuoted() *DelimitedBuilder { return DelimitedSame(litToken("single-quote", `'`)) }

// Backticked is delimited(`` ` ``).
func Backticked() *DelimitedBuilder { return DelimitedSame(litToken("backtick", "`")) }

// DoubleBackticked is delimited("``").
func DoubleBackticked() *DelimitedBuilder { return DelimitedSame(litToken("double-backtick", "``")) }

// TripleBackticked is delimited("```").
func TripleBackticked() *DelimitedBuilder {
	return DelimitedSame(litToken("triple-backtick", "```"))
}

// AnyChar is a Token matching any single code point, the usual content
// token for a delimited body with no exclusions beyond its own
// delimiters.
func AnyChar() Token { return NewToken("char", match.Any()) }
