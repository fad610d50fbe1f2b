package reader

import (
	"fmt"
	"math"
	"strings"

	"github.com/jindo-lang/edn/pkg/edn/value"
)

// readToken accumulates a bare token starting from seed (already consumed
// by the dispatch loop) up to the next whitespace, EOF, or macro-terminating
// character, restoring the pushback on that terminator (spec.md §4.4).
func readToken(src CharSource, seed rune) (string, error) {
	var sb strings.Builder
	sb.WriteRune(seed)
	for {
		r, ok := src.Peek()
		if !ok || isWhitespace(r) || isMacroTerminator(r) {
			break
		}
		if isNonConstituent(r) {
			src.Read()
			return "", newError(src, LexicalError, "Invalid character: %q", r)
		}
		src.Read()
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// readSymbolic reads a bare token starting at seed and resolves it to the
// nil/true/false literals, the NaN/Infinity floats, or a Symbol (spec.md
// §4.4).
func readSymbolic(src CharSource, seed rune) (value.Value, error) {
	if isNonConstituent(seed) {
		return nil, newError(src, LexicalError, "Invalid leading character: %q", seed)
	}
	text, err := readToken(src, seed)
	if err != nil {
		return nil, err
	}
	switch text {
	case "nil":
		return value.Nil{}, nil
	case "true":
		return value.Bool{B: true}, nil
	case "false":
		return value.Bool{B: false}, nil
	case "NaN":
		return value.Float{V: math.NaN()}, nil
	case "Infinity", "+Infinity":
		return value.Float{V: math.Inf(1)}, nil
	case "-Infinity":
		return value.Float{V: math.Inf(-1)}, nil
	}
	ns, name, err := splitSymbolic(text)
	if err != nil {
		return nil, newError(src, LexicalError, "Invalid character in symbol: %s", err)
	}
	return value.Symbol{Namespace: ns, Name: name}, nil
}

// readKeyword reads a keyword body after the leading ':' has already been
// consumed by the dispatch loop. A second ':' (the auto-resolved keyword
// shorthand) has no host namespace to resolve against in a standalone
// reader and is rejected, the same call DESIGN.md records for the related
// #:: auto-qualified map form.
func readKeyword(src CharSource) (value.Value, error) {
	r, ok := src.Read()
	if !ok {
		return nil, newError(src, UnexpectedEOF, "Unexpected EOF while reading the start of a keyword.")
	}
	if isWhitespace(r) {
		return nil, newError(src, LexicalError, "A single colon is not a valid keyword.")
	}
	if r == ':' {
		return nil, newError(src, LexicalError, "Invalid leading character for keyword: %q", r)
	}
	text, err := readToken(src, r)
	if err != nil {
		return nil, err
	}
	ns, name, err := splitSymbolic(text)
	if err != nil {
		return nil, newError(src, LexicalError, "Invalid character in keyword: %s", err)
	}
	return value.Keyword{Namespace: ns, Name: name}, nil
}

// splitSymbolic splits token text on a single '/' into namespace and name,
// rejecting empty segments and a bare "/" used as a separator rather than
// the symbol named "/".
func splitSymbolic(text string) (ns, name string, err error) {
	if text == "/" {
		return "", "/", nil
	}
	i := strings.IndexByte(text, '/')
	if i < 0 {
		return "", text, nil
	}
	ns, name = text[:i], text[i+1:]
	if ns == "" || name == "" || strings.ContainsRune(name, '/') {
		return "", "", fmt.Errorf("malformed namespaced symbol %q", text)
	}
	return ns, name, nil
}
