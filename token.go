package comb

import "github.com/tef/comb/match"

// Engine is the matching primitive a Token wraps, aliasing match.Engine so
// concrete engines in the match subpackage (literal text, rune ranges,
// "any", "until", set-minus, whitespace runs) satisfy this package's Token
// directly.
type Engine = match.Engine

// token adapts an Engine to the Token interface: a named, capturing,
// single-span Branch.
type token struct {
	kind   string
	engine Engine
}

// NewToken wraps engine as a Token tagged with kind. kind is passed to
// ctx.Token on every match and is what a grammar's trace and AST-building
// sinks use to tell tokens apart.
func NewToken(kind string, engine Engine) Token {
	return &token{kind: kind, engine: engine}
}

func (t *token) Kind() string { return t.kind }

// engineRef exposes the wrapped Engine to same-package callers that need to
// inspect it (Delimited's construction-time infallibility check).
func (t *token) engineRef() Engine { return t.engine }

func (t *token) TryParse(ctx *Context, r Reader, args []any) (TryParseResult, Result) {
	start := r.Position()
	skipWhitespace(ctx, r)
	begin := r.Position()
	if !t.engine.Match(r) {
		if reporter, isReporter := t.engine.(match.FailureReporter); isReporter {
			if err := reporter.FailureError(r, begin); err != nil {
				ctx.Error(err)
				return Canceled, fail()
			}
		}
		r.Restore(start)
		return Backtracked, fail()
	}
	end := r.Position()
	ctx.Token(t.kind, begin, end)
	ctx.Tracef("token %s [%s,%s) %q", t.kind, begin, end, r.Slice(begin, end))
	return Parsed, ok(args, Lexeme{Begin: begin, End: end})
}

func (t *token) Parse(ctx *Context, r Reader, args []any) Result {
	return parseViaTryParse(t, ctx, r, args)
}
