package comb

import "github.com/tef/comb/match"

// DelimitedBuilder configures a delimited(open, close) grammar before it is
// applied to a content token (and optionally an escape branch) via Build.
type DelimitedBuilder struct {
	open, close Branch
	ws          Pattern
}

// Delimited starts a builder for "open, then content, then close". open and
// close are matched with whitespace disabled around them unless Whitespace
// is called; once open has matched, whitespace is never auto-skipped
// inside the body regardless of the outer scope.
func Delimited(open, close Branch) *DelimitedBuilder {
	return &DelimitedBuilder{open: open, close: close}
}

// DelimitedSame is delimited(delim) — shorthand for Delimited(delim, delim).
func DelimitedSame(delim Branch) *DelimitedBuilder {
	return Delimited(delim, delim)
}

// Whitespace attaches a whitespace skipper active only around the opening
// delimiter: once open matches, whitespace is disabled for the rest of the
// body until after close.
func (b *DelimitedBuilder) Whitespace(ws Pattern) *DelimitedBuilder {
	clone := *b
	clone.ws = ws
	return &clone
}

// Build finalizes the builder into a Branch that matches open, the content
// loop over char (with an optional escape branch interleaved), and close.
// char must be a Token: the content loop captures its matched span as a
// single Lexeme per plain content run.
func (b *DelimitedBuilder) Build(char Token, escape ...Branch) Branch {
	if t, isToken := char.(*token); isToken {
		if inf, isInfallible := t.engineRef().(match.Infallible); isInfallible && inf.AlwaysMatches() {
			panic("comb: Delimited's content token must be able to fail; an always-matching engine would loop forever")
		}
	}
	var esc Branch
	if len(escape) > 0 {
		esc = escape[0]
	}
	body := &delimitedRule{open: b.open, close: b.close, char: char, escape: esc}
	if b.ws != nil {
		return WhitespacedBranch(nil, &openWithWS{ws: b.ws, inner: body})
	}
	return body
}

// openWithWS runs ws-skipping immediately before delegating to inner's
// TryParse, giving "whitespace only before open" without letting it leak
// into the body (inner itself always runs under a nil-whitespace scope via
// NoWhitespace semantics inherited from the surrounding Build call).
type openWithWS struct {
	ws    Pattern
	inner Branch
}

func (o *openWithWS) TryParse(ctx *Context, r Reader, args []any) (TryParseResult, Result) {
	start := r.Position()
	skipWhitespace(ctx.withWhitespace(o.ws), r)
	status, res := o.inner.TryParse(ctx, r, args)
	if status == Backtracked {
		r.Restore(start)
	}
	return status, res
}

func (o *openWithWS) Parse(ctx *Context, r Reader, args []any) Result {
	return parseViaTryParse(o, ctx, r, args)
}

// delimitedRule implements the content loop: try close, then the EOF
// guard, then try escape, then match one content character — in that
// strict order, every iteration.
type delimitedRule struct {
	open, close Branch
	char        Token
	escape      Branch
}

func (d *delimitedRule) TryParse(ctx *Context, r Reader, args []any) (TryParseResult, Result) {
	start := r.Position()
	noWS := ctx.withWhitespace(nil)

	openStatus, openRes := d.open.TryParse(noWS, r, args)
	if openStatus == Backtracked {
		r.Restore(start)
		return Backtracked, fail()
	}
	if openStatus == Canceled {
		return Canceled, fail()
	}

	delBegin := r.Position()
	sink := ctx.NewSink()
	cur := openRes.Args

	// run is the plain content run matched since the last escape (or since
	// open); it reaches the sink as one Lexeme when the run ends.
	var run Lexeme
	inRun := false
	flush := func() {
		if inRun {
			sink.Push(run)
			inRun = false
		}
	}

	for {
		closeStatus, closeRes := d.close.TryParse(noWS, r, cur)
		if closeStatus == Parsed {
			flush()
			return Parsed, ok(closeRes.Args, sink.Finish())
		}
		if closeStatus == Canceled {
			return Canceled, fail()
		}

		if r.Eof() {
			ctx.Error(&MissingDelimiterError{Begin: delBegin, End: r.Position(), Source: r.SourceName()})
			return Canceled, fail()
		}

		if d.escape != nil {
			escStatus, escRes := d.escape.TryParse(noWS, r, nil)
			if escStatus == Parsed {
				flush()
				for _, v := range escRes.Args {
					sink.Push(v)
				}
				continue
			}
			if escStatus == Canceled {
				return Canceled, fail()
			}
		}

		charStatus, charRes := d.char.TryParse(noWS, r, nil)
		if charStatus == Backtracked {
			ctx.Error(&UnexpectedInputError{Pos: r.Position(), Want: d.char.Kind(), Source: r.SourceName()})
			return Canceled, fail()
		}
		if charStatus == Canceled {
			return Canceled, fail()
		}
		lex := charRes.Args[len(charRes.Args)-1].(Lexeme)
		if inRun {
			run.End = lex.End
		} else {
			run, inRun = lex, true
		}
	}
}

func (d *delimitedRule) Parse(ctx *Context, r Reader, args []any) Result {
	return parseViaTryParse(d, ctx, r, args)
}
