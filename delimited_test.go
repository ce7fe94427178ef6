package comb

import (
	"testing"

	"github.com/tef/comb/match"
)

func anyExceptQuote() Token {
	return NewToken("char", match.Range([2]rune{'"', '"'}).Invert())
}

func TestDelimitedScenario1_SuccessfulContent(t *testing.T) {
	ctx := newTestContext()
	r := NewReader(`"abc"`, "test")
	q := Quoted().Build(anyExceptQuote())
	status, res := q.TryParse(ctx, r, nil)
	if status != Parsed {
		t.Fatalf("status = %v, want Parsed", status)
	}
	sink := res.Args[len(res.Args)-1].([]any)
	if len(sink) != 1 {
		t.Fatalf("sink has %d items, want 1", len(sink))
	}
	lex := sink[0].(Lexeme)
	if got := lex.Text(r); got != "abc" {
		t.Fatalf("content lexeme = %q, want %q", got, "abc")
	}
	if !r.Eof() {
		t.Fatal("expected reader to be at end of input")
	}
}

func TestDelimitedScenario2_MissingDelimiter(t *testing.T) {
	var reported error
	ctx := NewContext(WithErrorHandler(func(err error) { reported = err }))
	r := NewReader(`"ab`, "test")
	q := Quoted().Build(anyExceptQuote())
	status, _ := q.TryParse(ctx, r, nil)
	if status != Canceled {
		t.Fatalf("status = %v, want Canceled", status)
	}
	mde, ok := reported.(*MissingDelimiterError)
	if !ok {
		t.Fatalf("reported error type = %T, want *MissingDelimiterError", reported)
	}
	if mde.Begin.Offset != 1 || mde.End.Offset != 3 {
		t.Fatalf("missing delimiter span = [%d,%d), want [1,3)", mde.Begin.Offset, mde.End.Offset)
	}
}

func TestDelimitedScenario3_EscapedValue(t *testing.T) {
	ctx := newTestContext()
	r := NewReader(`"a\nb"`, "test")
	esc := BackslashEscape().LitRune('n', '\n').Build()
	q := Quoted().Build(anyExceptQuote(), esc)
	status, res := q.TryParse(ctx, r, nil)
	if status != Parsed {
		t.Fatalf("status = %v, want Parsed", status)
	}
	sink := res.Args[len(res.Args)-1].([]any)
	if len(sink) != 3 {
		t.Fatalf("sink has %d items, want 3", len(sink))
	}
	if got := sink[0].(Lexeme).Text(r); got != "a" {
		t.Fatalf("sink[0] = %q, want %q", got, "a")
	}
	if got := sink[1]; got != '\n' {
		t.Fatalf("sink[1] = %v, want '\\n'", got)
	}
	if got := sink[2].(Lexeme).Text(r); got != "b" {
		t.Fatalf("sink[2] = %q, want %q", got, "b")
	}
}

func TestDelimitedScenario4_InvalidEscapeSequence(t *testing.T) {
	var reported error
	ctx := NewContext(WithErrorHandler(func(err error) { reported = err }))
	r := NewReader(`"\q"`, "test")
	esc := BackslashEscape().LitRune('n', '\n').Build()
	q := Quoted().Build(anyExceptQuote(), esc)
	status, _ := q.TryParse(ctx, r, nil)
	if status != Canceled {
		t.Fatalf("status = %v, want Canceled", status)
	}
	if _, ok := reported.(*InvalidEscapeSequenceError); !ok {
		t.Fatalf("reported error type = %T, want *InvalidEscapeSequenceError", reported)
	}
}

func TestDelimitedSameEquivalentToDistinctDelimiters(t *testing.T) {
	ctx1, ctx2 := newTestContext(), newTestContext()
	r1 := NewReader(`"abc"`, "test")
	r2 := NewReader(`"abc"`, "test")
	same := DelimitedSame(litToken("quote", `"`)).Build(anyExceptQuote())
	distinct := Delimited(litToken("quote", `"`), litToken("quote", `"`)).Build(anyExceptQuote())
	s1, res1 := same.TryParse(ctx1, r1, nil)
	s2, res2 := distinct.TryParse(ctx2, r2, nil)
	if s1 != s2 {
		t.Fatalf("status mismatch: same=%v distinct=%v", s1, s2)
	}
	sink1 := res1.Args[len(res1.Args)-1].([]any)
	sink2 := res2.Args[len(res2.Args)-1].([]any)
	if sink1[0].(Lexeme).Text(r1) != sink2[0].(Lexeme).Text(r2) {
		t.Fatal("DelimitedSame and Delimited(d,d) should produce identical content")
	}
}

func TestDelimitedClosePositionIsEaten(t *testing.T) {
	ctx := newTestContext()
	r := NewReader(`"x"rest`, "test")
	q := Quoted().Build(anyExceptQuote())
	status, _ := q.TryParse(ctx, r, nil)
	if status != Parsed {
		t.Fatalf("status = %v, want Parsed", status)
	}
	if got := r.Position().Offset; got != 3 {
		t.Fatalf("reader offset after close = %d, want 3 (just past the closing quote)", got)
	}
}

func TestDelimitedBuildPanicsOnInfallibleContent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Build to panic on an infallible content token")
		}
	}()
	Quoted().Build(NewToken("always", alwaysMatchesEngine{}))
}

type alwaysMatchesEngine struct{}

func (alwaysMatchesEngine) Match(r Reader) bool { return true }
func (alwaysMatchesEngine) AlwaysMatches() bool { return true }

func TestEscapeBacktracksWhenMarkerAbsent(t *testing.T) {
	ctx := newTestContext()
	r := NewReader("ab", "test")
	esc := BackslashEscape().LitRune('n', '\n').Build()
	start := r.Position()
	status, _ := esc.TryParse(ctx, r, nil)
	if status != Backtracked {
		t.Fatalf("status = %v, want Backtracked when the marker itself doesn't match", status)
	}
	if r.Position() != start {
		t.Fatal("a backtracked escape must not consume input")
	}
}
