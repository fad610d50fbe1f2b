package reader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jindo-lang/edn/pkg/edn/source"
	"github.com/jindo-lang/edn/pkg/edn/value"
)

func stringValue(t *testing.T, v value.Value) string {
	t.Helper()
	s, ok := v.(value.String)
	require.True(t, ok)
	return s.S
}

func charValue(t *testing.T, v value.Value) rune {
	t.Helper()
	c, ok := v.(value.Char)
	require.True(t, ok)
	return c.R
}

func TestReadStringOctalEscape(t *testing.T) {
	src := source.New(strings.NewReader(`\101"`))
	v, err := readString(src)
	require.NoError(t, err)
	assert.Equal(t, "A", stringValue(t, v))
}

func TestReadStringUnicodeEscape(t *testing.T) {
	src := source.New(strings.NewReader("\\u0041\""))
	v, err := readString(src)
	require.NoError(t, err)
	assert.Equal(t, "A", stringValue(t, v))
}

func TestReadStringLoneSurrogateIsError(t *testing.T) {
	src := source.New(strings.NewReader(`\ud800"`))
	_, err := readString(src)
	require.Error(t, err)
}

func TestReadStringUnterminatedIsUnexpectedEOF(t *testing.T) {
	src := source.New(strings.NewReader(`abc`))
	_, err := readString(src)
	require.Error(t, err)
	rerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, UnexpectedEOF, rerr.Type)
}

func TestReadCharOctal(t *testing.T) {
	src := source.New(strings.NewReader(`o101`))
	v, err := readChar(src)
	require.NoError(t, err)
	assert.Equal(t, 'A', charValue(t, v))
}

func TestReadCharUnicode(t *testing.T) {
	src := source.New(strings.NewReader(`u0041`))
	v, err := readChar(src)
	require.NoError(t, err)
	assert.Equal(t, 'A', charValue(t, v))
}

func TestReadCharLiteralDelimiter(t *testing.T) {
	src := source.New(strings.NewReader(`(`))
	v, err := readChar(src)
	require.NoError(t, err)
	assert.Equal(t, '(', charValue(t, v))
}
