package comb

// Result carries a rule's outcome back through a parse: whether it
// succeeded, and the value arguments accumulated so far. Args is append-only
// along a successful parse path — a rule never removes an argument another
// rule already produced, it only appends its own.
type Result struct {
	OK   bool
	Args []any
}

// ok returns a successful Result with extra appended to args.
func ok(args []any, extra ...any) Result {
	return Result{OK: true, Args: append(args, extra...)}
}

// fail returns a failed Result. Args is irrelevant once OK is false.
func fail() Result { return Result{OK: false} }

// TryParseResult is the three-valued outcome of a Branch's condition check:
// backtracked means the branch declined and consumed nothing — the Reader
// is exactly where it was; canceled means the branch committed to matching
// but then failed partway through (a hard parse error was already
// reported, and the Reader position is no longer meaningful to the caller);
// parsed means the branch matched and Result carries the continuation's
// outcome.
type TryParseResult int

const (
	Backtracked TryParseResult = iota
	Canceled
	Parsed
)

// Rule is anything that can be parsed: given a Context, a Reader positioned
// at the rule's start, and the value arguments accumulated so far, produce
// a Result. A Rule that fails must leave the Reader at the position it
// started unless it has already reported an error, in which case the
// Reader position is unspecified.
type Rule interface {
	Parse(ctx *Context, r Reader, args []any) Result
}

// Branch is a Rule that can also be probed without committing: TryParse
// peeks at the input and reports Backtracked without consuming anything if
// the branch's condition doesn't hold, Canceled if it held but a later
// required part failed, or Parsed with the continuation's Result if it
// matched all the way through.
type Branch interface {
	Rule
	TryParse(ctx *Context, r Reader, args []any) (TryParseResult, Result)
}

// Token is a Branch whose condition is a single contiguous span: it either
// matches no input (Backtracked) or consumes one run of input with no
// intermediate failure point. Its TryParse returns Canceled only when its
// Engine is a match.FailureReporter that reports an error for the failed
// match (as match.Minus does). Concrete tokens (match.Literal, match.Range,
// ...) implement Engine; the token wrapper in this package adapts an Engine
// to Rule and Branch.
type Token interface {
	Branch
	Kind() string
}

// Pattern is a Branch used purely as a loop condition or lookahead probe —
// While's condition, Delimited's close check, Escape's trigger. Its Parse
// method exists only so it satisfies Rule; callers that only need the
// condition use Match, not Parse.
type Pattern interface {
	Branch
}

// parseViaTryParse implements Rule.Parse for any Branch in terms of its own
// TryParse: this is the generic fallback every Branch in this package can
// embed instead of writing the same "probe, then treat backtracked as a
// parse failure" logic three times. A canceled or backtracked probe both
// report the same thing to Parse's caller — failure — they differ only in
// what TryParse's own caller (a Choice, a While condition check) does with
// the distinction.
func parseViaTryParse(b Branch, ctx *Context, r Reader, args []any) Result {
	status, res := b.TryParse(ctx, r, args)
	if status == Parsed {
		return res
	}
	return fail()
}

// Match reports whether b matches at r's current position, without
// consuming input on failure and, for a probe-only caller, without caring
// about the value the branch would have produced. It is used by While's
// condition test and anywhere a rule is consulted purely as a lookahead.
func Match(b Branch, ctx *Context, r Reader) bool {
	start := r.Position()
	status, _ := b.TryParse(ctx, r, nil)
	if status != Parsed {
		r.Restore(start)
		return false
	}
	return true
}

// errorRule is the rule produced by Error(tag): it always fails having
// reported tag via ctx.Error, never backtracking silently. Used anywhere a
// grammar wants a hard failure instead of a declined branch.
type errorRule struct {
	newErr func(pos Pos) error
}

// Error returns a Rule that unconditionally reports an error built from the
// current position and fails. It is not a Branch: a hard error is never a
// valid thing to probe past.
func Error(newErr func(pos Pos) error) Rule {
	return &errorRule{newErr: newErr}
}

func (e *errorRule) Parse(ctx *Context, r Reader, args []any) Result {
	ctx.Error(e.newErr(r.Position()))
	return fail()
}
