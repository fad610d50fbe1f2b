package reader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jindo-lang/edn/pkg/edn/source"
	"github.com/jindo-lang/edn/pkg/edn/value"
)

func TestReadNumberRestoresTerminatorPushback(t *testing.T) {
	src := source.New(strings.NewReader("23)"))
	seed, ok := src.Read()
	require.True(t, ok)

	_, err := readNumber(src, seed)
	require.NoError(t, err)

	r, ok := src.Read()
	require.True(t, ok)
	assert.Equal(t, ')', r)
}

func TestReadNumberInvalidFormatIsLexicalError(t *testing.T) {
	src := source.New(strings.NewReader("1.2.3"))
	seed, _ := src.Read()
	_, err := readNumber(src, seed)
	require.Error(t, err)
	rerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, LexicalError, rerr.Type)
}

func TestDecodeNumberBigDecimal(t *testing.T) {
	v, err := decodeNumber("3.14M")
	require.NoError(t, err)
	bd, ok := v.(value.BigDecimal)
	require.True(t, ok)
	assert.Equal(t, "3.14", bd.V.Text('g', -1))
}
