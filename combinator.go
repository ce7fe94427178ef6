package comb

// Seq runs each rule in order, threading args through all of them. Seq
// itself is only a Rule — sequencing a non-branch rule (an action, an
// Error, a Then-wrapped production) with earlier parts doesn't make the
// whole sequence probeable, since a later part may have already committed
// side effects before any failure.
//
// When every rule in parts is a Branch, use Branch-aware composition via
// Then instead, so the sequence can still be probed as a unit.
type seqRule struct {
	parts []Rule
}

// Seq composes rules to run one after another, each seeing the previous
// rules' accumulated args.
func Seq(parts ...Rule) Rule {
	return &seqRule{parts: parts}
}

func (s *seqRule) Parse(ctx *Context, r Reader, args []any) Result {
	start := r.Position()
	cur := args
	for _, p := range s.parts {
		res := p.Parse(ctx, r, cur)
		if !res.OK {
			r.Restore(start)
			return fail()
		}
		cur = res.Args
	}
	return ok(cur)
}

// thenRule is a Branch built from a leading Branch and trailing Rules: the
// branch's own condition governs TryParse's Backtracked/Canceled/Parsed
// verdict, and once the branch has matched, the remaining rules run as a
// plain sequence — their failure reports Canceled, never Backtracked,
// because the leading branch already committed input.
type thenRule struct {
	head Branch
	tail []Rule
}

// Then appends rules to run after a branch has matched, producing a new
// Branch whose condition is exactly head's: a `delimited` close-check
// followed by sink-append action is exactly this shape.
func Then(head Branch, tail ...Rule) Branch {
	return &thenRule{head: head, tail: tail}
}

func (t *thenRule) TryParse(ctx *Context, r Reader, args []any) (TryParseResult, Result) {
	status, res := t.head.TryParse(ctx, r, args)
	if status != Parsed {
		return status, fail()
	}
	cur := res.Args
	for _, p := range t.tail {
		// A tail Branch that cleanly declines has reported nothing, so the
		// error for the committed-then-failed branch is reported here; a
		// failing plain Rule is assumed to have reported its own error.
		if b, isBranch := p.(Branch); isBranch {
			status, next := b.TryParse(ctx, r, cur)
			if status == Backtracked {
				ctx.Error(&UnexpectedInputError{Pos: r.Position(), Want: "rest of branch", Source: r.SourceName()})
			}
			if status != Parsed {
				return Canceled, fail()
			}
			cur = next.Args
			continue
		}
		next := p.Parse(ctx, r, cur)
		if !next.OK {
			return Canceled, fail()
		}
		cur = next.Args
	}
	return Parsed, ok(cur)
}

func (t *thenRule) Parse(ctx *Context, r Reader, args []any) Result {
	return parseViaTryParse(t, ctx, r, args)
}

// choiceRule tries each branch in order and commits to the first one whose
// condition holds; a branch that cancels partway through is a hard parse
// failure for the whole choice, it is never treated as "try the next
// alternative" — that is what distinguishes a declined branch from a
// failed one.
type choiceRule struct {
	branches []Branch
}

// Choice tries branches in order, taking the first one whose condition
// matches. If a chosen branch then fails partway through (Canceled), the
// whole Choice fails rather than falling through to the next alternative.
func Choice(branches ...Branch) Branch {
	return &choiceRule{branches: branches}
}

func (c *choiceRule) TryParse(ctx *Context, r Reader, args []any) (TryParseResult, Result) {
	for _, b := range c.branches {
		status, res := b.TryParse(ctx, r, args)
		if status == Backtracked {
			continue
		}
		return status, res
	}
	return Backtracked, fail()
}

func (c *choiceRule) Parse(ctx *Context, r Reader, args []any) Result {
	return parseViaTryParse(c, ctx, r, args)
}

// optRule makes a Branch's absence acceptable: if b backtracks, Opt
// succeeds having consumed nothing and appended nothing.
type optRule struct {
	b Branch
}

// Opt returns a Rule that tries b; if b backtracks, Opt still succeeds
// (with no extra args), leaving the reader untouched. If b commits and
// then fails, Opt fails too — an attempted-and-canceled branch is still a
// hard failure, opt only absorbs a clean decline.
func Opt(b Branch) Rule {
	return &optRule{b: b}
}

func (o *optRule) Parse(ctx *Context, r Reader, args []any) Result {
	status, res := o.b.TryParse(ctx, r, args)
	switch status {
	case Parsed:
		return res
	case Canceled:
		return fail()
	default:
		return ok(args)
	}
}

// wsRule scopes the whitespace skipper seen by the rules nested inside it.
// Whitespaced installs a skipper; NoWhitespace installs nil, suppressing
// any outer skipper for the duration of inner. Both act only on the
// Context they hand to inner — the Reader is untouched, so nested
// Whitespaced/NoWhitespace scopes compose by simple replacement, not
// stacking.
type wsRule struct {
	ws    Pattern
	inner Rule
}

// Whitespaced scopes inner so that skipWhitespace(ws) runs wherever inner
// (or anything it calls) consults the ambient whitespace skipper — for
// instance before every Token match. Delimited's content loop runs under a
// nil scope, so ws is never skipped between its content items.
func Whitespaced(ws Pattern, inner Rule) Rule {
	return &wsRule{ws: ws, inner: inner}
}

// NoWhitespace suppresses whitespace skipping for inner, overriding any
// outer Whitespaced scope. Delimited applies the same nil scope itself to
// its open, content and close checks.
func NoWhitespace(inner Rule) Rule {
	return &wsRule{ws: nil, inner: inner}
}

func (w *wsRule) Parse(ctx *Context, r Reader, args []any) Result {
	return w.inner.Parse(ctx.withWhitespace(w.ws), r, args)
}

// wsBranch is the Branch-capable form of wsRule, used when the scoped rule
// must still be probeable (e.g. Whitespaced wrapping a Choice used as a
// While condition).
type wsBranch struct {
	ws    Pattern
	inner Branch
}

// WhitespacedBranch is Whitespaced specialized to a Branch, preserving
// probeability.
func WhitespacedBranch(ws Pattern, inner Branch) Branch {
	return &wsBranch{ws: ws, inner: inner}
}

func (w *wsBranch) TryParse(ctx *Context, r Reader, args []any) (TryParseResult, Result) {
	return w.inner.TryParse(ctx.withWhitespace(w.ws), r, args)
}

func (w *wsBranch) Parse(ctx *Context, r Reader, args []any) Result {
	return w.inner.Parse(ctx.withWhitespace(w.ws), r, args)
}

// skipWhitespace consumes the ambient whitespace skipper's match, if any
// is in scope, as many times as it matches. It is a no-op when no skipper
// is scoped (ctx.Whitespace() == nil), which is the NoWhitespace-scoped
// case around a Delimited's own open/close delimiters.
//
// ws is matched under a nil whitespace scope: ws is typically a Token
// itself (Token.TryParse calls skipWhitespace before trying to match), so
// matching it under its own scope would have it skip itself before every
// attempt, recursing forever.
func skipWhitespace(ctx *Context, r Reader) {
	ws := ctx.Whitespace()
	if ws == nil {
		return
	}
	noWS := ctx.withWhitespace(nil)
	for Match(ws, noWS, r) {
	}
}
