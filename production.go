package comb

// Production is a tag-indexed grammar rule, resolved lazily so productions
// can reference each other (including mutually) before all of them are
// defined. This collapses lexy's compile-time "p<P> vs recurse<P>"
// distinction into one runtime indirection: since rule is filled in by
// Grammar.Define after the Production value itself is already usable from
// P/Recurse, any number of productions can reference each other regardless
// of definition order.
type Production struct {
	tag    string
	rule   Rule
	called bool
}

// NewProduction returns an unresolved Production tagged name. Its rule must
// be supplied via a Grammar's Define before any parse that reaches it.
func NewProduction(tag string) *Production {
	return &Production{tag: tag}
}

// Tag returns the production's tag, used in trace output and error
// provenance (Context.Stack entries).
func (p *Production) Tag() string { return p.tag }

// define assigns the production's rule; called by Grammar.Define.
func (p *Production) define(rule Rule) { p.rule = rule }

// prodRule implements P(prod): it enters a child production context and
// evaluates prod's rule, inheriting Branch semantics from the rule if (and
// only if) the rule happens to be a Branch at the time of the call — which,
// since rule is resolved at parse time rather than at composition time, this
// is a runtime check rather than a static one.
type prodRule struct {
	prod *Production
}

// P returns a Rule invoking prod. The returned value always implements
// Branch: if prod's rule is itself a Branch, TryParse probes it inside a
// child production context; otherwise TryParse reports Backtracked without
// consuming input.
//
// P marks prod as referenced at the moment it's called, not at parse time:
// Grammar.Check's "defined but never referenced" pass reads this back, so
// calling P (or Recurse) for a production anywhere in the grammar, even
// from inside another Define closure, counts as a call site regardless of
// whether that closure's rule ever actually runs during a parse.
func P(prod *Production) Rule {
	prod.called = true
	return &prodRule{prod: prod}
}

func (p *prodRule) Parse(ctx *Context, r Reader, args []any) Result {
	if p.prod.rule == nil {
		ctx.Error(newGrammarError(2, "production %q has no rule (never Defined)", p.prod.tag))
		return fail()
	}
	child := ctx.EnterProduction(p.prod.tag, r.Position())
	child.Tracef("enter %s at %s", p.prod.tag, r.Position())
	res := p.prod.rule.Parse(child, r, nil)
	child.Tracef("exit %s ok=%v", p.prod.tag, res.OK)
	if !res.OK {
		return fail()
	}
	return ok(args, res.Args...)
}

// TryParse makes prodRule a Branch iff p.prod.rule, once resolved, is
// itself a Branch. The child production context is created eagerly, but
// since a Token only reports through the context after it has actually
// matched, a backtracked probe produces no error or token event through it;
// the enter/exit trace lines are emitted for every probe, backtracked or
// not. Creating it before the commit point avoids probing the inner branch
// twice (once to check, once for real).
func (p *prodRule) TryParse(ctx *Context, r Reader, args []any) (TryParseResult, Result) {
	branch, isBranch := p.prod.rule.(Branch)
	if !isBranch {
		return Backtracked, fail()
	}
	start := r.Position()
	child := ctx.EnterProduction(p.prod.tag, start)
	child.Tracef("enter %s at %s", p.prod.tag, start)
	status, res := branch.TryParse(child, r, nil)
	child.Tracef("exit %s status=%v", p.prod.tag, status)
	if status == Backtracked {
		r.Restore(start)
		return Backtracked, fail()
	}
	if status == Canceled {
		return Canceled, fail()
	}
	return Parsed, ok(args, res.Args...)
}

// recurseRule implements Recurse(prod): identical to P except it never
// inherits Branch semantics, even if prod's rule turns out to be a Branch
// — it implements only Rule, so it never structurally satisfies Branch.
// Its purpose is to let a grammar refer to a production whose rule is not
// yet defined at the point of use, including mutual recursion among
// productions.
type recurseRule struct {
	prod *Production
}

// Recurse returns a Rule invoking prod without ever exposing Branch
// semantics, for forward and mutually recursive production references.
// Like P, it marks prod as referenced for Grammar.Check's unused-production
// pass.
func Recurse(prod *Production) Rule {
	prod.called = true
	return &recurseRule{prod: prod}
}

func (p *recurseRule) Parse(ctx *Context, r Reader, args []any) Result {
	return (&prodRule{prod: p.prod}).Parse(ctx, r, args)
}
