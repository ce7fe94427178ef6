package comb

// maxWhileDepth bounds While's recursive loop (used only when the pattern
// has a then body) so a runaway grammar surfaces a DepthExceededError
// instead of exhausting the Go stack.
const maxWhileDepth = 100000

// thenBody is implemented by patterns built with PatternThen, marking
// that each successful condition match must be followed by a then-rule
// before the loop continues. A Pattern that doesn't implement this is
// looped as a tight condition-only check with no recursive continuation.
type thenBody interface {
	Pattern
	body() Rule
}

// patternThen wraps a condition Pattern with a then Rule, letting while_
// detect (via thenBody) that each matched condition must be followed by
// the body before the loop repeats.
type patternThen struct {
	cond Pattern
	then Rule
}

// PatternThen attaches a then-rule to cond: while_(PatternThen(cond, then))
// repeats "match cond, then run then" until cond backtracks.
func PatternThen(cond Pattern, then Rule) Pattern {
	return &patternThen{cond: cond, then: then}
}

func (p *patternThen) body() Rule { return p.then }

func (p *patternThen) TryParse(ctx *Context, r Reader, args []any) (TryParseResult, Result) {
	return p.cond.TryParse(ctx, r, args)
}

func (p *patternThen) Parse(ctx *Context, r Reader, args []any) Result {
	return p.cond.Parse(ctx, r, args)
}

// whileRule implements a repeated pattern match, the runtime form of a
// while_ DSL rule.
type whileRule struct {
	pattern Pattern
}

// While returns a Rule that repeatedly attempts pattern's condition: with
// no then body it loops tightly until the condition backtracks; with a
// then body, each matched condition is followed by a then parse, failing
// the whole loop (not just that iteration) if then fails, since the
// condition has already committed input by matching.
func While(pattern Pattern) Rule {
	return &whileRule{pattern: pattern}
}

func (w *whileRule) Parse(ctx *Context, r Reader, args []any) Result {
	tb, hasBody := w.pattern.(thenBody)
	if !hasBody {
		for Match(w.pattern, ctx, r) {
		}
		return ok(args)
	}
	return w.parseRecursive(tb, ctx, r, args, 0)
}

func (w *whileRule) parseRecursive(tb thenBody, ctx *Context, r Reader, args []any, depth int) Result {
	if depth >= maxWhileDepth {
		ctx.Error(&DepthExceededError{Pos: r.Position(), Depth: depth})
		return fail()
	}
	start := r.Position()
	status, res := tb.TryParse(ctx, r, args)
	if status == Backtracked {
		r.Restore(start)
		return ok(args)
	}
	if status == Canceled {
		return fail()
	}
	// The condition has already committed input by matching, so a failing
	// body is a hard parse failure: if body is a Branch and simply declined
	// (Backtracked), nothing has reported an error yet, and one must be
	// synthesized here, the same way delimited.go does for its own
	// char-didn't-match case. A Canceled Branch, or a plain Rule that fails
	// via Parse, is assumed to have already reported through whatever made
	// it fail — most commonly a Recurse into a production whose own rule
	// already called ctx.Error before backtracking out through Parse.
	body := tb.body()
	if branch, isBranch := body.(Branch); isBranch {
		status, bodyRes := branch.TryParse(ctx, r, res.Args)
		if status == Backtracked {
			ctx.Error(&UnexpectedInputError{Pos: r.Position(), Want: "while loop body", Source: r.SourceName()})
			return fail()
		}
		if status == Canceled {
			return fail()
		}
		return w.parseRecursive(tb, ctx, r, bodyRes.Args, depth+1)
	}
	bodyRes := body.Parse(ctx, r, res.Args)
	if !bodyRes.OK {
		return fail()
	}
	return w.parseRecursive(tb, ctx, r, bodyRes.Args, depth+1)
}

// Matcher adapts inner into a Pattern that always succeeds at the Branch
// contract of restoring the reader on failure: used purely as a condition
// (its value is not observed), it runs inner once and discards any partial
// consumption if it fails, instead of leaving the reader wherever the
// failed attempt stopped.
func Matcher(inner Rule) Pattern {
	return &matcherPattern{inner: inner}
}

type matcherPattern struct {
	inner Rule
}

func (m *matcherPattern) TryParse(ctx *Context, r Reader, args []any) (TryParseResult, Result) {
	start := r.Position()
	res := m.inner.Parse(ctx, r, args)
	if !res.OK {
		r.Restore(start)
		return Backtracked, fail()
	}
	return Parsed, res
}

func (m *matcherPattern) Parse(ctx *Context, r Reader, args []any) Result {
	return parseViaTryParse(m, ctx, r, args)
}

// WhileOne is p + while_(p): p must match at least once.
func WhileOne(pattern Pattern) Rule {
	return Seq(pattern, While(pattern))
}

// DoWhile is then + while_(cond >> then).
func DoWhile(then Rule, cond Pattern) Rule {
	return Seq(then, While(PatternThen(cond, then)))
}
