package comb

import "testing"

func TestPredefinedQuotedRoundTrip(t *testing.T) {
	ctx := newTestContext()
	r := NewReader(`"hi"`, "test")
	status, _ := Quoted().Build(AnyChar()).TryParse(ctx, r, nil)
	if status != Parsed {
		t.Fatalf("status = %v, want Parsed", status)
	}
}

func TestPredefinedTripleQuoted(t *testing.T) {
	ctx := newTestContext()
	r := NewReader(`"""hi"""`, "test")
	status, _ := TripleQuoted().Build(AnyChar()).TryParse(ctx, r, nil)
	if status != Parsed {
		t.Fatalf("status = %v, want Parsed", status)
	}
}

func TestPredefinedSingleQuoted(t *testing.T) {
	ctx := newTestContext()
	r := NewReader(`'hi'`, "test")
	status, _ := SingleQuoted().Build(AnyChar()).TryParse(ctx, r, nil)
	if status != Parsed {
		t.Fatalf("status = %v, want Parsed", status)
	}
}

func TestPredefinedDoubleBackticked(t *testing.T) {
	ctx := newTestContext()
	r := NewReader("``hi``", "test")
	status, _ := DoubleBackticked().Build(AnyChar()).TryParse(ctx, r, nil)
	if status != Parsed {
		t.Fatalf("status = %v, want Parsed", status)
	}
}

func TestPredefinedTripleBackticked(t *testing.T) {
	ctx := newTestContext()
	r := NewReader("```hi```", "test")
	status, _ := TripleBackticked().Build(AnyChar()).TryParse(ctx, r, nil)
	if status != Parsed {
		t.Fatalf("status = %v, want Parsed", status)
	}
}
