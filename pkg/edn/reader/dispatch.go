// Package reader implements an EDN reader: a recursive-descent parser over
// a pushbackable character source, in the spirit of pkg/jindo/scanner's
// hand-written character-level scanner.
package reader

import (
	"fmt"
	"strings"

	"github.com/jindo-lang/edn/pkg/edn/source"
	"github.com/jindo-lang/edn/pkg/edn/value"
)

var absent = value.Absent

// Read reads a single top-level form from src and returns it. On clean
// end-of-input it returns opts.Eof if WithEOF was supplied, or a
// UnexpectedEOF *Error otherwise (spec.md §6).
func Read(src CharSource, opts ...Option) (value.Value, error) {
	o := NewOptions(opts...)
	v, err := readValue(src, o)
	if err != nil {
		return nil, err
	}
	if v == absent {
		return Read(src, opts...)
	}
	return v, nil
}

// ReadString reads a single top-level form from s using a non-indexing
// character source. Unlike Read, empty or comment-only input returns Nil
// rather than an UnexpectedEOF error, unless the caller overrides the eof
// value via WithEOF (spec.md §6: "read-string ... returns nil on
// empty/absent input").
func ReadString(s string, opts ...Option) (value.Value, error) {
	all := append([]Option{WithEOF(value.Nil{})}, opts...)
	return Read(newStringSource(s), all...)
}

// ReadAll reads every top-level form from src until end-of-input.
func ReadAll(src CharSource, opts ...Option) ([]value.Value, error) {
	forms := []value.Value{}
	withEOF := append(append([]Option{}, opts...), WithEOF(value.EOF))
	for {
		v, err := Read(src, withEOF...)
		if err != nil {
			return nil, err
		}
		if v == value.EOF {
			return forms, nil
		}
		forms = append(forms, v)
	}
}

// readValue is the dispatch engine (spec.md §4.7): it skips whitespace and
// comments, then routes on the leading character to one of C3-C6, or
// returns absent for forms that consume input but yield nothing.
func readValue(src CharSource, o Options) (value.Value, error) {
	for {
		r, ok := src.Read()
		if !ok {
			if o.EofOK {
				return o.Eof, nil
			}
			return nil, newError(src, UnexpectedEOF, "Unexpected EOF.")
		}
		if isWhitespace(r) {
			continue
		}
		switch {
		case r == ';':
			skipLineComment(src)
			return absent, nil
		case r == '(':
			return readList(src, o)
		case r == '[':
			return readVector(src, o)
		case r == '{':
			return readMap(src, o)
		case r == ')' || r == ']' || r == '}':
			return nil, newError(src, UnmatchedDelimiter, "Unmatched delimiter: %c", r)
		case r == '"':
			return readString(src)
		case r == '\\':
			return readChar(src)
		case r == ':':
			return readKeyword(src)
		case r == '^':
			return readMetadata(src, o)
		case r == '#':
			return readDispatch(src, o)
		case isNonConstituent(r):
			return nil, newError(src, LexicalError, "Invalid leading character: %q", r)
		case isNumberStart(src, r):
			return readNumber(src, r)
		default:
			return readSymbolic(src, r)
		}
	}
}

// skipLineComment consumes characters through the next newline or EOF
// (spec.md §4.1 ";").
func skipLineComment(src CharSource) {
	for {
		r, ok := src.Read()
		if !ok || r == '\n' {
			return
		}
	}
}

// readDispatch handles every #-prefixed form (spec.md §4.7): #{ for sets,
// #_ for discard, #! as a shebang comment, and #tag for tagged literals.
func readDispatch(src CharSource, o Options) (value.Value, error) {
	r, ok := src.Read()
	if !ok {
		return nil, newError(src, UnexpectedEOF, "Unexpected EOF while reading a dispatch macro.")
	}
	switch r {
	case '{':
		return readSet(src, o)
	case '_':
		if _, err := readValue(src, o); err != nil {
			return nil, err
		}
		return absent, nil
	case '!':
		skipLineComment(src)
		return absent, nil
	case ':':
		return readNamespacedMap(src, o)
	case '^':
		return readMetadata(src, o)
	case '<':
		return nil, newError(src, LexicalError, "Unreadable form.")
	}
	if isNonConstituent(r) || isWhitespace(r) {
		return nil, newError(src, NoDispatchMacro, "No dispatch macro for: %c", r)
	}
	return readTagged(src, o, r)
}

// readTagged reads a #tag value form, seeded with the already-consumed
// first character of the tag symbol (spec.md §9).
func readTagged(src CharSource, o Options, seed rune) (value.Value, error) {
	tagVal, err := readSymbolic(src, seed)
	if err != nil {
		return nil, err
	}
	tag, ok := tagVal.(value.Symbol)
	if !ok {
		return nil, newError(src, LexicalError, "Tag must be a symbol.")
	}
	v := absent
	for v == absent {
		if v, err = readValue(src, o); err != nil {
			return nil, err
		}
	}
	if fn, found := o.lookup(tag.String()); found {
		out, err := callTagFn(src, fn, v)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	if o.Default != nil {
		out, err := callDefaultFn(src, o.Default, tag, v)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	return nil, newError(src, NoTagReader, "No reader function for tag %s.", tag)
}

// callTagFn invokes a caller-supplied TagFn, recovering a panic the same
// way callDefaultFn does (spec.md §9: "their failures must be caught and
// wrapped").
func callTagFn(src CharSource, fn TagFn, v value.Value) (out value.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = wrap(src, fmt.Errorf("tag reader panicked: %v", r))
		}
	}()
	out, err = fn(v)
	if err != nil {
		return nil, wrap(src, err)
	}
	return out, nil
}

// callDefaultFn invokes a caller-supplied DefaultFn, recovering a panic so
// an untrusted reader function can never crash the whole Read call (spec.md
// §9).
func callDefaultFn(src CharSource, fn DefaultFn, tag value.Symbol, v value.Value) (out value.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = wrap(src, fmt.Errorf("default tag reader panicked: %v", r))
		}
	}()
	out, err = fn(tag, v)
	if err != nil {
		return nil, wrap(src, err)
	}
	return out, nil
}

// newStringSource builds a non-indexing CharSource over a string literal,
// the cheap path ReadString takes when callers don't need position info.
func newStringSource(s string) CharSource {
	return source.New(strings.NewReader(s))
}
