package comb

import "github.com/tef/comb/match"

// EscapeBuilder is the fluent value returned by Escape: each call adds one
// more alternative tried after the escape marker matches. The resulting
// rule is EscapeToken >> (alt1 | alt2 | ... | Error(InvalidEscapeSequence)):
// if the marker itself doesn't match, the whole thing backtracks; if it
// matches but no alternative does, InvalidEscapeSequenceError is reported
// and the branch cancels.
type EscapeBuilder struct {
	marker Branch
	alts   []Branch
}

// Escape starts a builder for an escape grammar triggered by marker (a
// Branch, typically a single-character Token like match.Literal("\\")).
func Escape(marker Branch) *EscapeBuilder {
	return &EscapeBuilder{marker: marker}
}

// clone returns a shallow copy of b with alts extended by one entry, so
// each builder method returns a new value rather than mutating its
// receiver — consistent with the rest of this package's builders.
func (b *EscapeBuilder) clone(alt Branch) *EscapeBuilder {
	next := &EscapeBuilder{marker: b.marker, alts: append(append([]Branch{}, b.alts...), alt)}
	return next
}

// Rule adds a generic branch tried after the marker.
func (b *EscapeBuilder) Rule(branch Branch) *EscapeBuilder {
	return b.clone(branch)
}

// Capture adds a branch that matches tok and delivers its matched Lexeme
// as an argument.
func (b *EscapeBuilder) Capture(tok Token) *EscapeBuilder {
	return b.clone(tok)
}

// LitRune adds an alternative that matches the rune literal and delivers
// value as the escaped result (e.g. Escape(lit('\\')).LitRune('n', '\n')).
func (b *EscapeBuilder) LitRune(literal rune, value any) *EscapeBuilder {
	tok := NewToken("escape-lit", match.Literal(string(literal)))
	return b.clone(&valueBranch{inner: tok, value: value})
}

// LitRuneSelf is LitRune delivering the matched code point itself as the
// value, for escape sequences that pass the literal character through
// unchanged (e.g. `\\` escaping itself).
func (b *EscapeBuilder) LitRuneSelf(literal rune) *EscapeBuilder {
	return b.LitRune(literal, literal)
}

// Lit adds an alternative that matches the string literal and delivers
// value as the escaped result.
func (b *EscapeBuilder) Lit(literal string, value any) *EscapeBuilder {
	tok := NewToken("escape-lit", match.Literal(literal))
	return b.clone(&valueBranch{inner: tok, value: value})
}

// LitSelf is Lit delivering the matched text itself as the value.
func (b *EscapeBuilder) LitSelf(literal string) *EscapeBuilder {
	return b.Lit(literal, literal)
}

// Build finalizes the builder into a Branch: EscapeToken >> (alt1 | ... |
// error<InvalidEscapeSequence>). The trailing error arm is not itself a
// Branch (an unconditional error never backtracks), so it is tried only
// after every real alternative has declined.
func (b *EscapeBuilder) Build() Branch {
	return Then(&silentBranch{inner: b.marker}, &escapeAlternatives{alts: b.alts})
}

// silentBranch matches inner but drops the arguments inner produced, so the
// escape marker's own lexeme is not part of the escape's result.
type silentBranch struct {
	inner Branch
}

func (s *silentBranch) TryParse(ctx *Context, r Reader, args []any) (TryParseResult, Result) {
	status, _ := s.inner.TryParse(ctx, r, args)
	if status != Parsed {
		return status, fail()
	}
	return Parsed, ok(args)
}

func (s *silentBranch) Parse(ctx *Context, r Reader, args []any) Result {
	return parseViaTryParse(s, ctx, r, args)
}

// escapeAlternatives tries each alternative in order, falling through to a
// reported InvalidEscapeSequenceError if none match.
type escapeAlternatives struct {
	alts []Branch
}

func (e *escapeAlternatives) Parse(ctx *Context, r Reader, args []any) Result {
	for _, alt := range e.alts {
		status, res := alt.TryParse(ctx, r, args)
		if status == Backtracked {
			continue
		}
		if status == Canceled {
			return fail()
		}
		return res
	}
	ctx.Error(&InvalidEscapeSequenceError{Pos: r.Position(), Source: r.SourceName()})
	return fail()
}

// valueBranch wraps a Branch so that, on a match, it discards whatever
// arguments inner produced and appends value instead — used by LitRune/Lit
// so an escape alternative's observable result is the substituted value,
// not the raw matched lexeme.
type valueBranch struct {
	inner Branch
	value any
}

func (v *valueBranch) TryParse(ctx *Context, r Reader, args []any) (TryParseResult, Result) {
	status, _ := v.inner.TryParse(ctx, r, args)
	if status != Parsed {
		return status, fail()
	}
	return Parsed, ok(args, v.value)
}

func (v *valueBranch) Parse(ctx *Context, r Reader, args []any) Result {
	return parseViaTryParse(v, ctx, r, args)
}

// BackslashEscape is escape('\\').
func BackslashEscape() *EscapeBuilder {
	return Escape(NewToken("backslash", match.Literal("\\")))
}

// DollarEscape is escape('$').
func DollarEscape() *EscapeBuilder {
	return Escape(NewToken("dollar", match.Literal("$")))
}
