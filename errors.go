package comb

import (
	"fmt"
	"runtime"
)

// MissingDelimiterError reports that Delimited's content loop reached EOF
// before finding its closing delimiter. Begin is the position right after
// the opening delimiter; End is the EOF position.
type MissingDelimiterError struct {
	Begin, End Pos
	Source     string
}

func (e *MissingDelimiterError) Error() string {
	return fmt.Sprintf("%s: missing delimiter: unterminated content starting at %s", e.Source, e.Begin)
}

// InvalidEscapeSequenceError reports that an escape marker matched but none
// of the escape rule's alternatives did.
type InvalidEscapeSequenceError struct {
	Pos    Pos
	Source string
}

func (e *InvalidEscapeSequenceError) Error() string {
	return fmt.Sprintf("%s: invalid escape sequence at %s", e.Source, e.Pos)
}

// UnexpectedInputError reports that a rule that had already committed
// could not go on at the current position: Delimited's content loop
// matched neither its content token, its escape, nor its close delimiter;
// a While loop body did not match after its condition; or a later part of
// a Then branch declined after its head matched.
type UnexpectedInputError struct {
	Pos    Pos
	Want   string
	Source string
}

func (e *UnexpectedInputError) Error() string {
	return fmt.Sprintf("%s: expected %s at %s", e.Source, e.Want, e.Pos)
}

// DepthExceededError reports that a recursive While iteration (a pattern
// with a body) exceeded the configured maximum nesting depth.
type DepthExceededError struct {
	Pos   Pos
	Depth int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("while: exceeded maximum iteration depth %d at %s", e.Depth, e.Pos)
}

// GrammarError is a construction-time error raised while building a
// Grammar: an undefined production is called, a defined production is
// never called, Define is nested, a builder method is used outside
// Define, and so on. It carries the Go call site the way the teacher's
// markPosition/grammarError pair does, so a grammar author sees which
// Define call is wrong.
type GrammarError struct {
	Message string
	File    string
	Line    int
}

func (e *GrammarError) Error() string {
	if e.File == "" {
		return e.Message
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
}

func newGrammarError(skip int, format string, args ...any) *GrammarError {
	msg := fmt.Sprintf(format, args...)
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return &GrammarError{Message: msg}
	}
	return &GrammarError{Message: msg, File: file, Line: line}
}
