package match

import "context"

// cancelReader wraps a Reader so that Eof reports true, and Peek reports
// EofCode, once ctx is done — the core has no suspension points of its own,
// so cancellation is implemented entirely by making the Reader itself go
// quiet, which every rule already treats as ordinary EOF.
type cancelReader struct {
	Reader
	ctx context.Context
}

// WithContext wraps r so that once ctx is canceled, every subsequent Peek
// and Eof call behaves as if the input ended there. Because every rule in
// this module checks reader state between sub-rules, cancellation set mid
// parse is observed promptly rather than only at the next natural
// boundary.
func WithContext(ctx context.Context, r Reader) Reader {
	return &cancelReader{Reader: r, ctx: ctx}
}

func (c *cancelReader) Eof() bool {
	if c.ctx.Err() != nil {
		return true
	}
	return c.Reader.Eof()
}

func (c *cancelReader) Peek() Code {
	if c.ctx.Err() != nil {
		return EofCode
	}
	return c.Reader.Peek()
}
