package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_ReadByte(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})

	b, err := c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(1), b)
	assert.Equal(t, 1, c.Pos())
	assert.Equal(t, 2, c.Len())
}

func TestCursor_ReadByte_Truncated(t *testing.T) {
	c := NewCursor(nil)
	_, err := c.ReadByte()
	require.Error(t, err)
}

func TestCursor_ReadN(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4})

	b, err := c.ReadN(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)

	_, err = c.ReadN(2)
	require.Error(t, err)
}

func TestCursor_MarkReset(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})
	_, _ = c.ReadByte()

	mark := c.Mark()
	_, _ = c.ReadByte()
	assert.Equal(t, 2, c.Pos())

	c.Reset(mark)
	assert.Equal(t, mark, c.Pos())
}

func TestCursor_Done(t *testing.T) {
	c := NewCursor([]byte{1})
	assert.False(t, c.Done())
	_, _ = c.ReadByte()
	assert.True(t, c.Done())
}
