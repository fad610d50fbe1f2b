package reader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jindo-lang/edn/pkg/edn/source"
)

func TestIsNumberStartDigit(t *testing.T) {
	src := source.New(strings.NewReader(""))
	assert.True(t, isNumberStart(src, '5'))
}

func TestIsNumberStartSignFollowedByDigit(t *testing.T) {
	src := source.New(strings.NewReader("7"))
	assert.True(t, isNumberStart(src, '+'))
}

func TestIsNumberStartSignFollowedByNonDigit(t *testing.T) {
	src := source.New(strings.NewReader("x"))
	assert.False(t, isNumberStart(src, '-'))
}

func TestIsNumberStartSignAtEOF(t *testing.T) {
	src := source.New(strings.NewReader(""))
	assert.False(t, isNumberStart(src, '+'))
}

func TestIsMacroTerminatorExcludesColonHashQuote(t *testing.T) {
	assert.False(t, isMacroTerminator(':'))
	assert.False(t, isMacroTerminator('#'))
	assert.False(t, isMacroTerminator('\''))
	assert.True(t, isMacroTerminator('('))
}

func TestIsWhitespaceIncludesComma(t *testing.T) {
	assert.True(t, isWhitespace(','))
	assert.True(t, isWhitespace(' '))
	assert.False(t, isWhitespace('a'))
}
