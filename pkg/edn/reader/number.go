package reader

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/jindo-lang/edn/pkg/edn/value"
)

var errDivideByZero = errors.New("Divide by zero")

// Number literal grammars, matched in the order spec.md §4.3 requires.
var (
	reInt   = regexp.MustCompile(`^([+-]?)(\d+)N?$`)
	reRadix = regexp.MustCompile(`^([+-]?)(0[0-7]+|0[xX][0-9a-fA-F]+|[1-9]\d*|[1-9]\d?[rR][0-9A-Za-z]+)N?$`)
	reRatio = regexp.MustCompile(`^([+-]?)(\d+)/(\d+)$`)
	reFloat = regexp.MustCompile(`^[+-]?(\d+\.\d*|\d+\.?\d*[eE][+-]?\d+|\d+\.?\d*)M?$`)
)

// readNumber accumulates a number token starting from seed (already
// consumed by the dispatch loop — see lexical.go isNumberStart) and decodes
// it against the grammar in spec.md §4.3. The terminating non-numeric
// character, if any, is pushed back before returning, matching "the
// pushback on the terminating non-numeric character is restored before
// returning."
func readNumber(src CharSource, seed rune) (value.Value, error) {
	var sb strings.Builder
	sb.WriteRune(seed)
	for {
		r, ok := src.Peek()
		if !ok || isWhitespace(r) || isMacroTerminator(r) {
			break
		}
		src.Read()
		sb.WriteRune(r)
	}
	text := sb.String()
	v, err := decodeNumber(text)
	if errors.Is(err, errDivideByZero) {
		return nil, newError(src, LexicalError, "Divide by zero")
	}
	if err != nil {
		return nil, newError(src, LexicalError, "Invalid number format %s.", text)
	}
	return v, nil
}

func decodeNumber(text string) (value.Value, error) {
	if m := reRatio.FindStringSubmatch(text); m != nil {
		return decodeRatio(m)
	}
	if hasRadixPrefix(text) {
		// A leading-zero multi-digit form (and explicit NrDDD radix forms)
		// are octal/radix-only: "08" is not also a valid decimal 8, it is
		// an invalid octal literal.
		if m := reRadix.FindStringSubmatch(text); m != nil {
			return decodeRadixInt(m)
		}
		return nil, fmt.Errorf("not a number")
	}
	if m := reInt.FindStringSubmatch(text); m != nil {
		return decodeDecimalInt(m)
	}
	if m := reFloat.FindStringSubmatch(text); m != nil {
		return decodeFloat(text)
	}
	return nil, fmt.Errorf("not a number")
}

// hasRadixPrefix reports whether text takes one of the non-decimal integer
// forms spec.md §4.3 lists: 0x.../0X... (hex), a leading-zero octal such as
// "017", or NrDDD (explicit radix 2-36). Plain decimal integers like "017"
// without a base marker other than the leading zero still fall here, which
// is correct: a leading zero is itself the octal marker.
func hasRadixPrefix(text string) bool {
	body := text
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	body = strings.TrimSuffix(body, "N")
	if len(body) > 1 && body[0] == '0' {
		if body[1] == 'x' || body[1] == 'X' || strings.Trim(body, "0123456789") == "" {
			return true
		}
	}
	return strings.ContainsAny(body, "rR")
}

func decodeDecimalInt(m []string) (value.Value, error) {
	sign, digits := m[1], m[2]
	n := new(big.Int)
	n.SetString(digits, 10)
	if sign == "-" {
		n.Neg(n)
	}
	return value.NewInteger(n), nil
}

func decodeRadixInt(m []string) (value.Value, error) {
	sign, body := m[1], m[2]
	var base int
	var digits string
	switch {
	case len(body) >= 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X'):
		base, digits = 16, body[2:]
	case len(body) >= 1 && body[0] == '0' && len(body) > 1:
		base, digits = 8, body[1:]
	default:
		if i := strings.IndexAny(body, "rR"); i > 0 {
			baseStr := body[:i]
			b, err := strconv.Atoi(baseStr)
			if err != nil || b < 2 || b > 36 {
				return nil, fmt.Errorf("invalid radix %s", baseStr)
			}
			base, digits = b, body[i+1:]
		} else {
			base, digits = 10, body
		}
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("invalid digit for base %d in %q", base, digits)
	}
	if sign == "-" {
		n.Neg(n)
	}
	return value.NewInteger(n), nil
}

func decodeRatio(m []string) (value.Value, error) {
	sign, num, den := m[1], m[2], m[3]
	denom := new(big.Int)
	denom.SetString(den, 10)
	if denom.Sign() == 0 {
		return nil, errDivideByZero
	}
	numer := new(big.Int)
	numer.SetString(num, 10)
	if sign == "-" {
		numer.Neg(numer)
	}
	r := new(big.Rat).SetFrac(numer, denom)
	if r.IsInt() {
		return value.NewInteger(r.Num()), nil
	}
	return value.NewRatio(r), nil
}

func decodeFloat(text string) (value.Value, error) {
	if strings.HasSuffix(text, "M") {
		body := strings.TrimSuffix(text, "M")
		f, _, err := big.ParseFloat(body, 10, 256, big.ToNearestEven)
		if err != nil {
			return nil, err
		}
		return value.BigDecimal{V: f}, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, err
	}
	return value.Float{V: f}, nil
}
