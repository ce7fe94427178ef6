package comb

// TokenObserver is notified of every matched primitive span, via
// Context.Token(kind, begin, end), for each matched primitive span.
type TokenObserver func(kind string, begin, end Pos)

// ErrorHandler receives every structured error reported during a parse.
type ErrorHandler func(err error)

// TraceFunc receives production enter/exit and token-match trace lines when
// a Context is created WithTrace (Parser.Parse does so when its grammar has
// a LogFunc, e.g. one installed by Parser.SetTrace).
type TraceFunc func(format string, args ...any)

// frame is one entry of the production stack: the tag of the production
// entered and the reader position it started at, used for error
// provenance.
type frame struct {
	Tag   string
	Start Pos
}

// Context carries everything a rule needs besides the Reader: the current
// list sink, the error handler, the token observer, the production stack,
// an optional trace hook, and the current whitespace skipper (nil outside
// any [ws]-scoped rule).
//
// A production invocation creates a new child Context (EnterProduction)
// rather than mutating this one in place; the child's extra stack frame and
// fresh sink live only as long as the production's rule.Parse call holds a
// reference to it, which is the same "pushed on entry, popped on every
// exit" discipline as an explicit stack, expressed through Go's normal
// scoping instead of manual push/pop bookkeeping.
type Context struct {
	sink        Sink
	sinkFactory SinkFactory
	errorf      ErrorHandler
	observer    TokenObserver
	trace       TraceFunc
	stack       []frame
	whitespace  Pattern
}

// ContextOption configures a new root Context.
type ContextOption func(*Context)

// WithErrorHandler installs the handler every reported error is sent to.
func WithErrorHandler(h ErrorHandler) ContextOption {
	return func(c *Context) { c.errorf = h }
}

// WithTokenObserver installs the handler every matched token span is sent
// to.
func WithTokenObserver(o TokenObserver) ContextOption {
	return func(c *Context) { c.observer = o }
}

// WithSinkFactory overrides the default slice-backed Sink used by
// Delimited and other list-like rules.
func WithSinkFactory(f SinkFactory) ContextOption {
	return func(c *Context) { c.sinkFactory = f }
}

// WithTrace installs a trace hook, invoked on production enter/exit.
func WithTrace(t TraceFunc) ContextOption {
	return func(c *Context) { c.trace = t }
}

// NewContext returns a fresh root Context with no production frames.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{sinkFactory: defaultSinkFactory}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Sink returns the context's current list sink.
func (c *Context) Sink() Sink { return c.sink }

// NewSink creates a fresh Sink using the context's configured factory.
// Delimited calls this once per invocation; it is never shared across
// sibling or nested invocations.
func (c *Context) NewSink() Sink {
	if c.sinkFactory != nil {
		return c.sinkFactory()
	}
	return defaultSinkFactory()
}

// Error reports a structured error. Backtracking must never call this: a
// branch that declines reports nothing.
func (c *Context) Error(err error) {
	if c.errorf != nil {
		c.errorf(err)
	}
}

// Token notifies the observer of a matched primitive span.
func (c *Context) Token(kind string, begin, end Pos) {
	if c.observer != nil {
		c.observer(kind, begin, end)
	}
}

// Tracef emits a trace line if tracing is enabled.
func (c *Context) Tracef(format string, args ...any) {
	if c.trace != nil {
		c.trace(format, args...)
	}
}

// Stack returns the current production stack, outermost first. Callers
// must not mutate the returned slice.
func (c *Context) Stack() []frame { return c.stack }

// Whitespace returns the whitespace skipper currently in scope, or nil.
func (c *Context) Whitespace() Pattern { return c.whitespace }

// withWhitespace returns a shallow copy of c scoped to a different
// whitespace skipper (nil disables skipping). Used by Whitespaced and
// NoWhitespace.
func (c *Context) withWhitespace(ws Pattern) *Context {
	clone := *c
	clone.whitespace = ws
	return &clone
}

// EnterProduction returns a child Context scoped to one production
// invocation: a fresh sink, the production's frame pushed onto the stack,
// everything else (error handler, observer, trace, sink factory) carried
// over unchanged.
func (c *Context) EnterProduction(tag string, start Pos) *Context {
	child := &Context{
		sinkFactory: c.sinkFactory,
		errorf:      c.errorf,
		observer:    c.observer,
		trace:       c.trace,
		whitespace:  c.whitespace,
		stack:       append(append([]frame{}, c.stack...), frame{Tag: tag, Start: start}),
	}
	child.sink = child.NewSink()
	return child
}
