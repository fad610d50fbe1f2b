// Package value defines the EDN data model: the tagged union of values an
// EDN reader produces. Every concrete type implements Value through an
// embedded, unexported marker struct, the same shape pkg/jindo/ast used for
// its Node/Expr family.
package value

import (
	"fmt"
	"math/big"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Value is implemented by every EDN value variant.
type Value interface {
	aValue()
}

type val struct{}

func (val) aValue() {}

// Nil is the EDN nil literal. It is a distinct type (rather than a bare Go
// nil) so that a Value interface holding Nil{} is never confused with an
// absent Value.
type Nil struct{ val }

// absentValue is the dynamic type behind Absent, the sentinel a comment or
// discard reader returns to mean "no value produced" (spec.md §3). It is
// unexported so only Absent can ever produce one, making `v == Absent` a
// safe identity check for callers.
type absentValue struct{ val }

// Absent is returned by readers that consume input but produce no Value
// (line comments, the #_ discard macro). Collection readers skip it instead
// of appending it.
var Absent Value = absentValue{}

type eofValue struct{ val }

// EOF is the default end-of-input sentinel ReadAll supplies internally via
// WithEOF so it can tell "no more forms" apart from any real Value a caller
// might configure as their own eof marker.
var EOF Value = eofValue{}

// Bool is the EDN true/false literal.
type Bool struct {
	val
	B bool
}

// Integer is an arbitrary-precision EDN integer, covering plain decimal
// integers, N-suffixed bignums, and radix forms (0x, 0, NrDDD).
type Integer struct {
	val
	V *big.Int
}

func NewInteger(v *big.Int) Integer { return Integer{V: v} }

// Ratio is a numerator/denominator pair reduced to lowest terms by big.Rat.
type Ratio struct {
	val
	V *big.Rat
}

func NewRatio(v *big.Rat) Ratio { return Ratio{V: v} }

// Float is a 64-bit IEEE EDN float.
type Float struct {
	val
	V float64
}

// BigDecimal is an arbitrary-precision decimal float (the M-suffixed number
// form). It is kept distinct from Float so callers can distinguish "asked
// for exactness" from "asked for a machine double."
type BigDecimal struct {
	val
	V *big.Float
}

// Char is a single Unicode scalar value.
type Char struct {
	val
	R rune
}

// String is an EDN string.
type String struct {
	val
	S string
}

// Symbol is an optionally-namespaced identifier. A bare Symbol never begins
// with ':'.
type Symbol struct {
	val
	taggable
	Namespace string
	Name      string
}

func (s Symbol) String() string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "/" + s.Name
}

func (s Symbol) WithMeta(m *Map) Value {
	s.meta = m
	return s
}

// Keyword is an optionally-namespaced identifier prefixed by exactly one ':'.
type Keyword struct {
	val
	Namespace string
	Name      string
}

func (k Keyword) String() string {
	if k.Namespace == "" {
		return ":" + k.Name
	}
	return ":" + k.Namespace + "/" + k.Name
}

// List is an ordered, positional EDN collection: (a b c).
type List struct {
	val
	taggable
	Items []Value
}

func (l List) WithMeta(m *Map) Value { l.meta = m; return l }

// Vector is an ordered, indexable EDN collection: [a b c].
type Vector struct {
	val
	taggable
	Items []Value
}

func (v Vector) WithMeta(m *Map) Value { v.meta = m; return v }

// Map is an EDN {k v, ...} collection. Entries preserve reader insertion
// order so error messages about a given key can reference its position in
// the source text; lookup is by Go equality over a comparable key surrogate,
// see Key.
type Map struct {
	val
	taggable
	Keys   []Value
	Values []Value
}

func (m Map) WithMeta(meta *Map) Value { m.meta = meta; return m }

// Get returns the value associated with k and whether it was present.
func (m Map) Get(k Value) (Value, bool) {
	target := Key(k)
	for i, existing := range m.Keys {
		if Key(existing) == target {
			return m.Values[i], true
		}
	}
	return nil, false
}

// Set is an EDN #{a b c} collection with no duplicate elements.
type Set struct {
	val
	taggable
	Items []Value
}

func (s Set) WithMeta(m *Map) Value { s.meta = m; return s }

// Tagged is the result of a data-reader function applied to a tagged
// literal's value: #tag form.
type Tagged struct {
	val
	Tag   Symbol
	Value Value
}

// UUID is the 16-byte value produced by the built-in #uuid default reader.
type UUID struct {
	val
	Bytes [16]byte
}

func (u UUID) String() string {
	b := u.Bytes
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

// Inst is the value produced by the built-in #inst default reader.
type Inst struct {
	val
	T time.Time
}

// SemVer is the value produced by the supplemental #ver default reader
// (see SPEC_FULL.md §4 "Tag Registry").
type SemVer struct {
	val
	V *semver.Version
}

// Carrier is implemented by every Value variant that may carry metadata
// (spec.md §3: "collections, symbols"). It is a distinct interface from
// Value so the metadata-merge logic in the dispatch engine can type-switch
// on it without enumerating every non-carrier variant.
type Carrier interface {
	Value
	Meta() *Map
	WithMeta(m *Map) Value
}

// taggable mixes metadata storage into a Value variant. Embedding it (after
// val) gives a type Meta() for free; each carrier defines its own
// WithMeta(), since it must return the concrete type. This mirrors how pkg/jindo/ast
// mixes node/expr/decl/stmt to share behavior across many leaf types.
type taggable struct {
	meta *Map
}

func (t taggable) Meta() *Map { return t.meta }

// Key returns a comparable representation of v suitable for use as a Go map
// key, used by the Map/Set constructors to detect duplicates. Two Values
// that read back identically compare equal as keys.
func Key(v Value) any {
	switch x := v.(type) {
	case Nil:
		return struct{}{}
	case Bool:
		return x.B
	case Integer:
		return "i:" + x.V.String()
	case Ratio:
		return "r:" + x.V.RatString()
	case Float:
		return x.V
	case BigDecimal:
		return "d:" + x.V.Text('g', -1)
	case Char:
		return x.R
	case String:
		return "s:" + x.S
	case Symbol:
		return "sym:" + x.Namespace + "/" + x.Name
	case Keyword:
		return "kw:" + x.Namespace + "/" + x.Name
	case UUID:
		return x.Bytes
	case List:
		return keySlice("L", x.Items)
	case Vector:
		return keySlice("V", x.Items)
	case Set:
		return keySlice("#", x.Items)
	default:
		// Maps and Tagged values are not valid EDN map/set keys in
		// practice, but fall back to a pointer-identity-free structural
		// key so callers still get a deterministic duplicate check.
		return fmt.Sprintf("%T:%v", v, v)
	}
}

// NewMap builds a Map from an alternating key/value slice, rejecting
// duplicate keys the way spec.md §3 requires ("duplicate keys are rejected
// by the Set/Map constructors with a diagnostic"). len(kvs) must be even;
// callers (the collection reader) are responsible for the even-count check
// since that failure needs a different message than a duplicate key.
func NewMap(kvs []Value) (Map, error) {
	m := Map{Keys: make([]Value, 0, len(kvs)/2), Values: make([]Value, 0, len(kvs)/2)}
	seen := make(map[any]bool, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		k, v := kvs[i], kvs[i+1]
		kk := Key(k)
		if seen[kk] {
			return Map{}, fmt.Errorf("duplicate key: %v", Repr(k))
		}
		seen[kk] = true
		m.Keys = append(m.Keys, k)
		m.Values = append(m.Values, v)
	}
	return m, nil
}

// NewSet builds a Set from items, rejecting duplicate elements.
func NewSet(items []Value) (Set, error) {
	s := Set{Items: make([]Value, 0, len(items))}
	seen := make(map[any]bool, len(items))
	for _, it := range items {
		kk := Key(it)
		if seen[kk] {
			return Set{}, fmt.Errorf("duplicate key: %v", Repr(it))
		}
		seen[kk] = true
		s.Items = append(s.Items, it)
	}
	return s, nil
}

// Repr renders v as EDN-ish text for use inside error messages only; it is
// not a writer/printer (spec.md's Non-goals exclude EDN printing).
func Repr(v Value) string {
	switch x := v.(type) {
	case Nil:
		return "nil"
	case Bool:
		if x.B {
			return "true"
		}
		return "false"
	case Integer:
		return x.V.String()
	case Ratio:
		return x.V.RatString()
	case Float:
		return fmt.Sprintf("%v", x.V)
	case BigDecimal:
		return x.V.Text('g', -1) + "M"
	case Char:
		return fmt.Sprintf("\\%c", x.R)
	case String:
		return fmt.Sprintf("%q", x.S)
	case Symbol:
		return x.String()
	case Keyword:
		return x.String()
	case UUID:
		return x.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func keySlice(prefix string, items []Value) string {
	s := prefix
	for _, it := range items {
		s += fmt.Sprintf("|%v", Key(it))
	}
	return s
}
