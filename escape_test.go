package comb

import (
	"testing"

	"github.com/tef/comb/match"
)

func TestEscapeLitRuneSelf(t *testing.T) {
	ctx := newTestContext()
	r := NewReader(`\\`, "test")
	esc := BackslashEscape().LitRuneSelf('\\').Build()
	status, res := esc.TryParse(ctx, r, nil)
	if status != Parsed {
		t.Fatalf("status = %v, want Parsed", status)
	}
	if got := res.Args[len(res.Args)-1]; got != '\\' {
		t.Fatalf("escaped value = %v, want '\\\\'", got)
	}
}

func TestEscapeLitAndLitSelf(t *testing.T) {
	ctx := newTestContext()
	r := NewReader(`\tab`, "test")
	esc := BackslashEscape().Lit("tab", "\t").LitSelf("t").Build()
	// "tab" is tried before the single-char "t" alternative, so it wins
	// when both could match the input at this position.
	status, res := esc.TryParse(ctx, r, nil)
	if status != Parsed {
		t.Fatalf("status = %v, want Parsed", status)
	}
	if got := res.Args[len(res.Args)-1]; got != "\t" {
		t.Fatalf("escaped value = %q, want %q", got, "\t")
	}
}

func TestEscapeRuleConsumesMultiTokenSequence(t *testing.T) {
	ctx := newTestContext()
	r := NewReader("\\u0041", "test")
	hex := func() Token {
		return NewToken("hex", match.Range([2]rune{'0', '9'}, [2]rune{'a', 'f'}, [2]rune{'A', 'F'}))
	}
	alt := Then(NewToken("u", match.Literal("u")), hex(), hex(), hex(), hex())
	esc := BackslashEscape().Rule(alt).Build()
	status, _ := esc.TryParse(ctx, r, nil)
	if status != Parsed {
		t.Fatalf("status = %v, want Parsed", status)
	}
	if got := r.Position().Offset; got != 6 {
		t.Fatalf("offset after escape = %d, want 6", got)
	}
}

func TestDollarEscape(t *testing.T) {
	ctx := newTestContext()
	r := NewReader(`$$`, "test")
	esc := DollarEscape().LitRuneSelf('$').Build()
	status, _ := esc.TryParse(ctx, r, nil)
	if status != Parsed {
		t.Fatalf("status = %v, want Parsed", status)
	}
}
