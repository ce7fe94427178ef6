package comb

import "github.com/tef/comb/match"

// Pos is a cursor position: a byte offset plus the 1-based line and column
// it corresponds to. It is an alias of match.Pos so that engines in the
// match package and rules in this package share one position type without
// either package importing the other's higher-level definitions.
type Pos = match.Pos
