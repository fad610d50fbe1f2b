package reader

import (
	"strings"

	"github.com/jindo-lang/edn/pkg/edn/value"
)

// readDelimited reads values up to close, skipping discards (value.Absent,
// below) and collecting metadata carriers, the way spec.md §5 describes
// collection reading: "read values until close is seen, merging metadata
// markers into the following value." An EOF before close reports the line
// the collection started on (spec.md §4.6, §7), not the EOF position.
func readDelimited(src CharSource, o Options, open, close rune, kind string) ([]value.Value, error) {
	startLine, _, _, haveStart := src.Position()
	var items []value.Value
	for {
		r, ok := src.Peek()
		if !ok {
			if haveStart {
				return nil, newError(src, UnexpectedEOF, "Unexpected EOF while reading a %s, starting at line %d.", kind, startLine)
			}
			return nil, newError(src, UnexpectedEOF, "Unexpected EOF while reading a %s, expected %q.", kind, close)
		}
		if isWhitespace(r) {
			src.Read()
			continue
		}
		if r == close {
			src.Read()
			return items, nil
		}
		v, err := readValue(src, o)
		if err != nil {
			return nil, err
		}
		if v == absent {
			continue
		}
		items = append(items, v)
	}
}

// readList reads a (...) form after '(' has already been consumed.
func readList(src CharSource, o Options) (value.Value, error) {
	items, err := readDelimited(src, o, '(', ')', "list")
	if err != nil {
		return nil, err
	}
	return value.List{Items: items}, nil
}

// readVector reads a [...] form after '[' has already been consumed.
func readVector(src CharSource, o Options) (value.Value, error) {
	items, err := readDelimited(src, o, '[', ']', "vector")
	if err != nil {
		return nil, err
	}
	return value.Vector{Items: items}, nil
}

// readMap reads a {...} form after '{' has already been consumed, pairing
// items two at a time (spec.md §5: "an odd count is an error").
func readMap(src CharSource, o Options) (value.Value, error) {
	items, err := readDelimited(src, o, '{', '}', "map")
	if err != nil {
		return nil, err
	}
	if len(items)%2 != 0 {
		return nil, newError(src, LexicalError, "Map literal must contain an even number of forms.")
	}
	m, err := value.NewMap(items)
	if err != nil {
		return nil, wrap(src, err)
	}
	return m, nil
}

// readSet reads a #{...} form after "#{" has already been consumed.
func readSet(src CharSource, o Options) (value.Value, error) {
	items, err := readDelimited(src, o, '{', '}', "set")
	if err != nil {
		return nil, err
	}
	s, err := value.NewSet(items)
	if err != nil {
		return nil, wrap(src, err)
	}
	return s, nil
}

// readMetadata reads a ^meta form and attaches it to the Value that
// follows (spec.md §3 "metadata markers attach to the next-read value").
// meta may itself be a Map, a Symbol (shorthand for {:tag meta}), a Keyword (shorthand for {Keyword true}), or a
// String (shorthand for {:tag meta}, same as Symbol). Stacked markers
// (`^{:a 1} ^{:b 2} x`) merge rather than overwrite: readValue below
// recurses into any nested ^, so target may already carry metadata from an
// inner marker read before this call's own marker is applied; spec.md §8
// requires the later (inner, closer-to-target) marker's keys to win on
// conflict.
func readMetadata(src CharSource, o Options) (value.Value, error) {
	marker, err := readValue(src, o)
	if err != nil {
		return nil, err
	}
	meta, err := coerceMeta(src, marker)
	if err != nil {
		return nil, err
	}
	target := absent
	for target == absent {
		if target, err = readValue(src, o); err != nil {
			return nil, err
		}
	}
	carrier, ok := target.(value.Carrier)
	if !ok {
		return nil, newError(src, LexicalError, "Metadata can only be applied to symbols, lists, vectors, maps, or sets.")
	}
	merged := meta
	if existing := carrier.Meta(); existing != nil {
		merged = mergeMeta(meta, *existing)
	}
	return carrier.WithMeta(&merged), nil
}

// mergeMeta combines base and overlay into one Map, with overlay's value
// winning whenever both maps set the same key.
func mergeMeta(base, overlay value.Map) value.Map {
	keys := append([]value.Value{}, base.Keys...)
	values := append([]value.Value{}, base.Values...)
	for i, k := range overlay.Keys {
		replaced := false
		for j, existing := range keys {
			if value.Key(existing) == value.Key(k) {
				values[j] = overlay.Values[i]
				replaced = true
				break
			}
		}
		if !replaced {
			keys = append(keys, k)
			values = append(values, overlay.Values[i])
		}
	}
	return value.Map{Keys: keys, Values: values}
}

// readNamespacedMap reads a #:ns{...} form after "#:" has already been
// consumed, requiring a namespace token and a map literal, then qualifying
// every unqualified keyword/symbol key in that map with the namespace
// (spec.md §4.6, GLOSSARY "Namespaced Map").
func readNamespacedMap(src CharSource, o Options) (value.Value, error) {
	r, ok := src.Read()
	if !ok {
		return nil, newError(src, UnexpectedEOF, "Unexpected EOF while reading a namespaced map.")
	}
	if r == ':' {
		return nil, newError(src, LexicalError, "Auto-qualified namespaced maps (#::) are not supported.")
	}
	nsText, err := readToken(src, r)
	if err != nil {
		return nil, err
	}
	if nsText == "" || strings.ContainsRune(nsText, '/') {
		return nil, newError(src, LexicalError, "Invalid namespace for a namespaced map: %q.", nsText)
	}
	for {
		c, ok := src.Peek()
		if !ok {
			return nil, newError(src, UnexpectedEOF, "Unexpected EOF while reading a namespaced map.")
		}
		if !isWhitespace(c) {
			break
		}
		src.Read()
	}
	open, ok := src.Read()
	if !ok || open != '{' {
		return nil, newError(src, LexicalError, "A namespaced map prefix must be followed by a map literal.")
	}
	items, err := readDelimited(src, o, '{', '}', "namespaced map")
	if err != nil {
		return nil, err
	}
	if len(items)%2 != 0 {
		return nil, newError(src, LexicalError, "Map literal must contain an even number of forms.")
	}
	for i := 0; i < len(items); i += 2 {
		items[i] = qualifyKey(items[i], nsText)
	}
	m, err := value.NewMap(items)
	if err != nil {
		return nil, wrap(src, err)
	}
	return m, nil
}

// qualifyKey attaches ns to k if k is an unqualified Keyword or Symbol,
// leaving already-namespaced keys and every other value untouched.
func qualifyKey(k value.Value, ns string) value.Value {
	switch kk := k.(type) {
	case value.Keyword:
		if kk.Namespace == "" {
			kk.Namespace = ns
			return kk
		}
	case value.Symbol:
		if kk.Namespace == "" {
			kk.Namespace = ns
			return kk
		}
	}
	return k
}

func coerceMeta(src CharSource, marker value.Value) (value.Map, error) {
	switch m := marker.(type) {
	case value.Map:
		return m, nil
	case value.Symbol, value.String:
		return value.NewMap([]value.Value{value.Keyword{Name: "tag"}, m})
	case value.Keyword:
		return value.NewMap([]value.Value{m, value.Bool{B: true}})
	default:
		return value.Map{}, newError(src, LexicalError, "Metadata must be a map, symbol, keyword, or string.")
	}
}
