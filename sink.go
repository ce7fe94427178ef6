package comb

// Sink aggregates values for list-like rules: Delimited's content loop and
// any grammar-level list sugar built on top of it.
type Sink interface {
	Push(v any)
	Finish() any
}

// SliceSink is the default Sink: it collects pushed values into a slice and
// hands that slice back as the finished value.
type SliceSink struct {
	items []any
}

// NewSliceSink returns a fresh, empty SliceSink.
func NewSliceSink() *SliceSink { return &SliceSink{} }

func (s *SliceSink) Push(v any) { s.items = append(s.items, v) }

func (s *SliceSink) Finish() any { return s.items }

// SinkFactory produces a fresh Sink for each list-like rule invocation. The
// default factory returns a SliceSink; a host may install its own (e.g. to
// build a typed collection) via Context options.
type SinkFactory func() Sink

func defaultSinkFactory() Sink { return NewSliceSink() }
