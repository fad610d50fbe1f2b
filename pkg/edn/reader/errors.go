package reader

import "fmt"

// ErrorType classifies a reader failure (spec.md §7).
type ErrorType int

const (
	LexicalError ErrorType = iota
	UnexpectedEOF
	UnmatchedDelimiter
	NoDispatchMacro
	NoTagReader
)

func (t ErrorType) String() string {
	switch t {
	case LexicalError:
		return "LexicalError"
	case UnexpectedEOF:
		return "UnexpectedEof"
	case UnmatchedDelimiter:
		return "UnmatchedDelimiter"
	case NoDispatchMacro:
		return "NoDispatchMacro"
	case NoTagReader:
		return "NoTagReader"
	default:
		return "Error"
	}
}

// Error is the single exception type the reader surfaces (spec.md §6, §8).
// It carries position information only when produced from an indexing
// CharSource, matching pkg/jindo/scanner.Scanner.errorf/errorAtf, which only
// ever attach a line/column because the scanner is always indexing; this
// reader generalizes that to "attach it if we have it."
type Error struct {
	Type    ErrorType
	Message string
	Line    int
	Column  int
	File    string
	HasPos  bool
	Cause   error
}

func (e *Error) Error() string {
	if e.HasPos {
		if e.File != "" {
			return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
		}
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// newError builds an *Error at the source's current position (if
// indexing), the way pkg/jindo/scanner's errorf tags every message with
// the scanner's current line/col.
func newError(src CharSource, t ErrorType, format string, args ...any) *Error {
	e := &Error{Type: t, Message: fmt.Sprintf(format, args...)}
	if line, col, file, ok := src.Position(); ok {
		e.Line, e.Column, e.File, e.HasPos = line, col, file, true
	}
	return e
}

// wrap turns an arbitrary failure into a position-tagged *Error the way
// spec.md §4.8/§7 requires: a *Error is rethrown unchanged, anything else is
// wrapped with position info (if available) and the original attached as
// Cause.
func wrap(src CharSource, err error) error {
	if err == nil {
		return nil
	}
	if re, ok := err.(*Error); ok {
		return re
	}
	e := &Error{Type: LexicalError, Message: err.Error(), Cause: err}
	if line, col, file, ok := src.Position(); ok {
		e.Line, e.Column, e.File, e.HasPos = line, col, file, true
	}
	return e
}
