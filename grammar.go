package comb

import (
	"fmt"
	"runtime"
)

// LogFunc receives trace lines from a Grammar or Context when tracing is
// enabled, following the teacher's LogFunc/Trace naming.
type LogFunc func(format string, args ...any)

// productionFrame records where a production was Defined, for error
// provenance, grounded on ez.go's position/markPosition pair.
type productionFrame struct {
	file string
	line int
}

// ProductionBuilder is the value handed to a Grammar.Define closure. It
// exists so Define can push/pop a build-time frame the way the teacher's
// nodeBuilder/g.nb stack does, and so a single call to Rule is the only
// way to supply a production's rule — calling it twice, or not at all, is
// a construction-time error caught by Grammar.Compile's Check pass.
type ProductionBuilder struct {
	g    *Grammar
	prod *Production
	set  bool
}

// Rule supplies prod's rule. Calling it more than once for the same
// production is a grammar error.
func (b *ProductionBuilder) Rule(rule Rule) {
	if !b.g.defining {
		b.g.addError(newGrammarError(2, "Rule for production %q called outside its Define", b.prod.tag))
		return
	}
	if b.set {
		b.g.addError(newGrammarError(2, "production %q already defined", b.prod.tag))
		return
	}
	b.prod.define(rule)
	b.set = true
}

// Grammar assembles named Productions into a tag→rule indirection table,
// following the teacher's Grammar/Define closure style. Productions may
// reference each other (via P/Recurse) before either is Defined; Compile
// resolves and validates the whole table.
type Grammar struct {
	LogFunc LogFunc

	productions map[string]*Production
	order       []string
	frames      map[string]productionFrame
	errs        []error
	defining    bool
}

// NewGrammar returns an empty Grammar.
func NewGrammar() *Grammar {
	return &Grammar{
		productions: make(map[string]*Production),
		frames:      make(map[string]productionFrame),
	}
}

func (g *Grammar) addError(err error) {
	g.errs = append(g.errs, err)
}

// Err returns the first construction-time error recorded, or nil.
func (g *Grammar) Err() error {
	if len(g.errs) == 0 {
		return nil
	}
	return g.errs[0]
}

// Errors returns every construction-time error recorded so far.
func (g *Grammar) Errors() []error {
	return append([]error{}, g.errs...)
}

// Production returns the named production, creating an undefined
// placeholder for it if this is the first reference — allowing P/Recurse
// to refer to a production by name before its Define call runs.
func (g *Grammar) Production(name string) *Production {
	if p, exists := g.productions[name]; exists {
		return p
	}
	p := NewProduction(name)
	g.productions[name] = p
	return p
}

// Define builds the named production's rule by calling stub with a
// ProductionBuilder. Nesting Define calls, or calling a ProductionBuilder
// method outside any Define closure, is a grammar error.
func (g *Grammar) Define(name string, stub func(*ProductionBuilder)) {
	if g.defining {
		g.addError(newGrammarError(2, "Define(%q) called while already defining another production", name))
		return
	}
	_, file, line, _ := runtime.Caller(1)
	if _, exists := g.frames[name]; exists {
		g.addError(newGrammarError(2, "production %q defined more than once", name))
		return
	}
	g.frames[name] = productionFrame{file: file, line: line}
	g.order = append(g.order, name)

	prod := g.Production(name)
	builder := &ProductionBuilder{g: g, prod: prod}

	g.defining = true
	stub(builder)
	g.defining = false

	if !builder.set {
		g.addError(newGrammarError(2, "production %q Defined but never given a rule", name))
	}
}

// Check validates the grammar both ways: every production referenced via
// Grammar.Production (and so reachable through P/Recurse) must have been
// given a rule by a matching Define call, and every Defined production
// other than start must itself have been referenced by some P/Recurse
// call somewhere in the grammar, catching dead productions the same way a
// "referenced but never Defined" name catches a typo in the other
// direction. It is run automatically by Compile; callers rarely need to
// call it directly.
func (g *Grammar) Check(start string) error {
	for name, p := range g.productions {
		if p.rule == nil {
			g.addError(newGrammarError(0, "production %q referenced but never Defined", name))
			continue
		}
		if name == start || p.called {
			continue
		}
		frame := g.frames[name]
		g.addError(&GrammarError{
			Message: fmt.Sprintf("production %q Defined but never referenced by P or Recurse", name),
			File:    frame.file,
			Line:    frame.line,
		})
	}
	if err := g.Err(); err != nil {
		return err
	}
	return nil
}

// Compile runs Check and, if the grammar is error-free, returns a Parser
// that parses input against the named start production.
func (g *Grammar) Compile(start string) (*Parser, error) {
	if err := g.Check(start); err != nil {
		return nil, err
	}
	startProd, exists := g.productions[start]
	if !exists {
		err := newGrammarError(1, "start production %q not defined", start)
		g.addError(err)
		return nil, err
	}
	return &Parser{grammar: g, start: startProd}, nil
}

// Trace runs stub with a default LogFunc installed (one that prints each
// line to stdout with a "trace: " prefix) when no LogFunc is set, then
// restores the previous LogFunc, mirroring the teacher's g.Trace wrapping a
// sub-build. Define and Compile never read LogFunc, so Trace does not
// change what a later Parse traces; parse-time tracing comes from the
// LogFunc in place when Parse runs (see Parser.SetTrace).
func (g *Grammar) Trace(stub func()) {
	old := g.LogFunc
	if g.LogFunc == nil {
		g.LogFunc = func(format string, args ...any) {
			fmt.Printf("trace: "+format+"\n", args...)
		}
	}
	stub()
	g.LogFunc = old
}

// Parser parses input against a compiled Grammar's start production.
type Parser struct {
	grammar *Grammar
	start   *Production
}

// SetTrace installs fn as the grammar's LogFunc, so the next Parse call
// emits an enter/exit/token trace through fn. Passing nil disables tracing.
func (p *Parser) SetTrace(fn LogFunc) {
	p.grammar.LogFunc = fn
}

// Parse runs the grammar against src, returning the start production's
// value (if any) and every error reported during the parse. Pos
// provenance in reported errors uses name as the source name.
func (p *Parser) Parse(src, name string) (any, []error) {
	var errs []error
	var trace TraceFunc
	if p.grammar.LogFunc != nil {
		trace = TraceFunc(p.grammar.LogFunc)
	}
	ctx := NewContext(
		WithErrorHandler(func(err error) { errs = append(errs, err) }),
		WithTrace(trace),
	)
	r := NewReader(src, name)
	res := P(p.start).Parse(ctx, r, nil)
	if !res.OK {
		return nil, errs
	}
	if len(res.Args) == 0 {
		return nil, errs
	}
	return res.Args[len(res.Args)-1], errs
}
