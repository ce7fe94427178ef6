package comb

import (
	"testing"

	"github.com/tef/comb/match"
)

func TestWhileTightLoopNoThenBody(t *testing.T) {
	ctx := newTestContext()
	r := NewReader("aaab", "test")
	a := NewToken("a", match.Literal("a"))
	res := While(a).Parse(ctx, r, nil)
	if !res.OK {
		t.Fatal("expected While to succeed (zero-or-more is never a failure)")
	}
	if got := r.Position().Offset; got != 3 {
		t.Fatalf("offset after While = %d, want 3", got)
	}
}

func TestWhileOneRequiresAtLeastOneMatch(t *testing.T) {
	ctx := newTestContext()
	r := NewReader("b", "test")
	a := NewToken("a", match.Literal("a"))
	res := WhileOne(a).Parse(ctx, r, nil)
	if res.OK {
		t.Fatal("expected WhileOne to fail with zero matches")
	}
}

func TestWhileOneEquivalentToPThenWhile(t *testing.T) {
	ctx1, ctx2 := newTestContext(), newTestContext()
	r1 := NewReader("aaab", "test")
	r2 := NewReader("aaab", "test")
	a1 := NewToken("a", match.Literal("a"))
	a2 := NewToken("a", match.Literal("a"))
	res1 := WhileOne(a1).Parse(ctx1, r1, nil)
	res2 := Seq(a2, While(a2)).Parse(ctx2, r2, nil)
	if res1.OK != res2.OK || r1.Position() != r2.Position() {
		t.Fatalf("WhileOne diverged from p + While(p): ok=%v/%v pos=%v/%v",
			res1.OK, res2.OK, r1.Position(), r2.Position())
	}
}

func TestDoWhileEquivalentToThenPlusWhile(t *testing.T) {
	ctx1, ctx2 := newTestContext(), newTestContext()
	r1 := NewReader("ababc", "test")
	r2 := NewReader("ababc", "test")
	aTok1, aTok2 := NewToken("a", match.Literal("a")), NewToken("a", match.Literal("a"))
	bTok1, bTok2 := NewToken("b", match.Literal("b")), NewToken("b", match.Literal("b"))

	res1 := DoWhile(aTok1, bTok1).Parse(ctx1, r1, nil)
	res2 := Seq(aTok2, While(PatternThen(bTok2, aTok2))).Parse(ctx2, r2, nil)
	if res1.OK != res2.OK || r1.Position() != r2.Position() {
		t.Fatalf("DoWhile diverged from t + While(c >> t): ok=%v/%v pos=%v/%v",
			res1.OK, res2.OK, r1.Position(), r2.Position())
	}
}

func TestWhileWithThenBodyStopsOnConditionBacktrack(t *testing.T) {
	ctx := newTestContext()
	r := NewReader("a,a,a;", "test")
	comma := NewToken("comma", match.Literal(","))
	a := NewToken("a", match.Literal("a"))
	res := DoWhile(a, comma).Parse(ctx, r, nil)
	if !res.OK {
		t.Fatal("expected do_while(a, ,) to succeed")
	}
	if got := r.Position().Offset; got != 5 {
		t.Fatalf("offset = %d, want 5 (stopping before ';')", got)
	}
}

func TestWhileWithThenBodyFailsWholeLoopWhenBodyFailsAfterCommit(t *testing.T) {
	var reported []error
	ctx := NewContext(WithErrorHandler(func(err error) { reported = append(reported, err) }))
	r := NewReader("a,b", "test")
	comma := NewToken("comma", match.Literal(","))
	a := NewToken("a", match.Literal("a"))
	// do_while(a, comma): the comma commits, but the body 'a' won't match
	// 'b' — the whole loop must fail, not just stop early, and it must
	// report an error since the comma already committed.
	res := DoWhile(a, comma).Parse(ctx, r, nil)
	if res.OK {
		t.Fatal("expected the loop to fail when a committed condition's body fails")
	}
	if len(reported) == 0 {
		t.Fatal("expected an error to be reported when a committed loop body fails")
	}
}

func TestMatcherRestoresReaderOnFailure(t *testing.T) {
	ctx := newTestContext()
	r := NewReader("ab", "test")
	start := r.Position()
	inner := Seq(NewToken("a", match.Literal("a")), NewToken("x", match.Literal("x")))
	status, _ := Matcher(inner).TryParse(ctx, r, nil)
	if status != Backtracked {
		t.Fatalf("status = %v, want Backtracked", status)
	}
	if r.Position() != start {
		t.Fatal("Matcher must restore the reader when its inner rule fails partway through")
	}
}

func TestMatcherAlwaysSucceedsAtReaderRestoration(t *testing.T) {
	ctx := newTestContext()
	r := NewReader("xyz", "test")
	inner := Seq(NewToken("a", match.Literal("a")))
	// inner fails immediately; Matcher still reports a clean decline rather
	// than leaving the reader in a partially-consumed state.
	start := r.Position()
	Match(Matcher(inner), ctx, r)
	if r.Position() != start {
		t.Fatal("while_(p).matcher must always succeed at reader restoration")
	}
}
