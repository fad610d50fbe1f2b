package value

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMapRejectsDuplicateKeys(t *testing.T) {
	kw := Keyword{Name: "a"}
	_, err := NewMap([]Value{kw, Integer{V: big.NewInt(1)}, kw, Integer{V: big.NewInt(2)}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")
}

func TestNewMapAllowsDistinctKeys(t *testing.T) {
	m, err := NewMap([]Value{
		Keyword{Name: "a"}, Integer{V: big.NewInt(1)},
		Keyword{Name: "b"}, Integer{V: big.NewInt(2)},
	})
	require.NoError(t, err)
	assert.Len(t, m.Keys, 2)

	v, ok := m.Get(Keyword{Name: "b"})
	require.True(t, ok)
	assert.Equal(t, Integer{V: big.NewInt(2)}, v)
}

func TestNewSetRejectsDuplicates(t *testing.T) {
	_, err := NewSet([]Value{Integer{V: big.NewInt(1)}, Integer{V: big.NewInt(1)}})
	require.Error(t, err)
}

func TestSymbolWithMetaPreservesValue(t *testing.T) {
	sym := Symbol{Name: "x"}
	meta, err := NewMap([]Value{Keyword{Name: "tag"}, Symbol{Name: "int"}})
	require.NoError(t, err)

	tagged := sym.WithMeta(&meta).(Symbol)
	assert.Equal(t, "x", tagged.Name)
	assert.Same(t, &meta, tagged.Meta())
}

func TestKeyDistinguishesVariants(t *testing.T) {
	assert.NotEqual(t, Key(Integer{V: big.NewInt(1)}), Key(Float{V: 1}))
	assert.Equal(t, Key(Integer{V: big.NewInt(7)}), Key(Integer{V: big.NewInt(7)}))
}

func TestSymbolString(t *testing.T) {
	assert.Equal(t, "foo", Symbol{Name: "foo"}.String())
	assert.Equal(t, "ns/foo", Symbol{Namespace: "ns", Name: "foo"}.String())
}

func TestKeywordString(t *testing.T) {
	assert.Equal(t, ":foo", Keyword{Name: "foo"}.String())
	assert.Equal(t, ":ns/foo", Keyword{Namespace: "ns", Name: "foo"}.String())
}
