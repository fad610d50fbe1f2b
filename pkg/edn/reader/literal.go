package reader

import (
	"strconv"
	"strings"

	"github.com/jindo-lang/edn/pkg/edn/value"
)

var namedChars = map[string]rune{
	"newline":   '\n',
	"space":     ' ',
	"tab":       '\t',
	"backspace": '\b',
	"formfeed":  '\f',
	"return":    '\r',
}

// readString reads a string literal's body after the opening '"' has
// already been consumed by the dispatch loop, processing escapes the way
// the teacher's scanner.escape does for Go string literals (spec.md §4.5).
func readString(src CharSource) (value.Value, error) {
	var sb strings.Builder
	for {
		r, ok := src.Read()
		if !ok {
			return nil, newError(src, UnexpectedEOF, "Unexpected EOF while reading the start of a string.")
		}
		if r == '"' {
			return value.String{S: sb.String()}, nil
		}
		if r != '\\' {
			sb.WriteRune(r)
			continue
		}
		esc, err := readStringEscape(src)
		if err != nil {
			return nil, err
		}
		sb.WriteRune(esc)
	}
}

// readStringEscape reads the character(s) following a backslash inside a
// string literal and returns the rune it denotes.
func readStringEscape(src CharSource) (rune, error) {
	r, ok := src.Read()
	if !ok {
		return 0, newError(src, UnexpectedEOF, "Unexpected EOF while reading a string escape.")
	}
	switch r {
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case 'n':
		return '\n', nil
	case '\\':
		return '\\', nil
	case '"':
		return '"', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'u':
		return readUnicodeEscape(src)
	}
	if r >= '0' && r <= '3' {
		return readOctalEscape(src, r)
	}
	return 0, newError(src, LexicalError, "Unsupported escape character: \\%c", r)
}

// readUnicodeEscape reads exactly four hex digits after \u, rejecting lone
// UTF-16 surrogate code points since EDN strings are Unicode scalar values,
// not UTF-16 code units.
func readUnicodeEscape(src CharSource) (rune, error) {
	var digits strings.Builder
	for i := 0; i < 4; i++ {
		r, ok := src.Read()
		if !ok {
			return 0, newError(src, UnexpectedEOF, "Unexpected EOF while reading \\u escape.")
		}
		if !isHexDigit(r) {
			return 0, newError(src, LexicalError, "Invalid character in \\u escape: %q", r)
		}
		digits.WriteRune(r)
	}
	n, err := strconv.ParseInt(digits.String(), 16, 32)
	if err != nil {
		return 0, newError(src, LexicalError, "Invalid \\u escape: %s", digits.String())
	}
	if n >= 0xD800 && n <= 0xDFFF {
		return 0, newError(src, LexicalError, "Invalid character constant: \\u%s (lone surrogate)", digits.String())
	}
	return rune(n), nil
}

// readOctalEscape reads up to two further octal digits after a leading
// octal digit already consumed (lead), capping the value at \377.
func readOctalEscape(src CharSource, lead rune) (rune, error) {
	n := int(lead - '0')
	for i := 0; i < 2; i++ {
		r, ok := src.Peek()
		if !ok || r < '0' || r > '7' {
			break
		}
		src.Read()
		n = n*8 + int(r-'0')
	}
	if n > 0o377 {
		return 0, newError(src, LexicalError, "Octal escape sequence must be in range [0, 377].")
	}
	return rune(n), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// readChar reads a character literal after the leading '\\' has already
// been consumed by the dispatch loop (spec.md §4.6): a single terminating
// character used literally, a named character (newline, space, ...), a
// \uXXXX code point, or a \oNNN octal code point.
func readChar(src CharSource) (value.Value, error) {
	first, ok := src.Read()
	if !ok {
		return nil, newError(src, UnexpectedEOF, "Unexpected EOF while reading the start of a char.")
	}
	next, hasNext := src.Peek()
	if !hasNext || isWhitespace(next) || isMacroTerminator(next) {
		return value.Char{R: first}, nil
	}
	text, err := readToken(src, first)
	if err != nil {
		return nil, err
	}
	if len(text) == 1 {
		return value.Char{R: []rune(text)[0]}, nil
	}
	if r, ok := namedChars[text]; ok {
		return value.Char{R: r}, nil
	}
	if strings.HasPrefix(text, "u") && len(text) == 5 {
		n, err := strconv.ParseInt(text[1:], 16, 32)
		if err != nil {
			return nil, newError(src, LexicalError, "Invalid unicode character: \\%s", text)
		}
		if n >= 0xD800 && n <= 0xDFFF {
			return nil, newError(src, LexicalError, "Invalid character constant: \\%s (lone surrogate)", text)
		}
		return value.Char{R: rune(n)}, nil
	}
	if strings.HasPrefix(text, "o") && len(text) > 1 {
		n, err := strconv.ParseInt(text[1:], 8, 32)
		if err != nil {
			return nil, newError(src, LexicalError, "Invalid octal character: \\%s", text)
		}
		return value.Char{R: rune(n)}, nil
	}
	return nil, newError(src, LexicalError, "Unsupported character: \\%s", text)
}
