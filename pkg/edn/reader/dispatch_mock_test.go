package reader

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadSymbolPropagatesPositionFromMockSource drives the token scanner
// off a scripted CharSource instead of a real one, so the error path can
// assert on exactly the position values Position() reports without needing
// input long enough to reach that position naturally.
func TestReadSymbolPropagatesPositionFromMockSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockCharSource(ctrl)

	gomock.InOrder(
		src.EXPECT().Peek().Return('@', true),
		src.EXPECT().Read().Return('@', true),
	)
	src.EXPECT().Position().Return(3, 7, "in-memory.edn", true).AnyTimes()

	_, err := readSymbolic(src, 'x')
	require.Error(t, err)
	rerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, LexicalError, rerr.Type)
	assert.True(t, rerr.HasPos)
	assert.Equal(t, 3, rerr.Line)
	assert.Equal(t, 7, rerr.Column)
	assert.Equal(t, "in-memory.edn", rerr.File)
}
