// Package comb implements a parser combinator engine: grammars are built by
// composing small typed rules, then a single-pass, backtracking-capable
// engine drives the composed rule tree over a Reader, pushing values into a
// Sink and reporting errors through a Context.
//
// The taxonomy is four interfaces: Rule (parse unconditionally, failure is
// committed), Branch (may decline and backtrack before committing), Token (a
// terminal Branch backed by an Engine), and Pattern (an alias for Branch used
// for valueless, iteration-friendly rules such as a While condition).
// Composition happens through Seq, Choice, Then, Whitespaced and
// NoWhitespace, and the four pillar combinators: Delimited,
// While/WhileOne/DoWhile, P/Recurse, and the escape builder.
package comb
