package wire

import (
	"testing"

	"github.com/nilsbloom/binser/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendString_ReadStringBody(t *testing.T) {
	b := AppendString(nil, "Hello, World!")

	c := NewCursor(b)
	tag, err := c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(TagString), tag)

	s, err := ReadStringBody(c)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", s)
	assert.True(t, c.Done())
}

func TestAppendString_Empty(t *testing.T) {
	b := AppendString(nil, "")

	c := NewCursor(b)
	_, _ = c.ReadByte()
	s, err := ReadStringBody(c)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestReadLength_RejectsNegative(t *testing.T) {
	b := AppendInt(nil, -1)
	_, err := ReadLength(NewCursor(b))
	require.Error(t, err)
}

func TestReadLength_RejectsNonIntegral(t *testing.T) {
	b := AppendFloat(nil, 1.5, format.FormCompact)
	_, err := ReadLength(NewCursor(b))
	require.Error(t, err)
}

func TestReadLength_Accepts(t *testing.T) {
	b := AppendInt(nil, 42)
	n, err := ReadLength(NewCursor(b))
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestReadBoundedLength_RejectsCountLargerThanRemaining(t *testing.T) {
	// The length field itself decodes fine; it's the claim that 1,000,000
	// further elements follow with zero bytes left that must be rejected.
	b := AppendInt(nil, 1_000_000)
	_, err := ReadBoundedLength(NewCursor(b))
	require.Error(t, err)
}

func TestReadBoundedLength_AcceptsCountWithinRemaining(t *testing.T) {
	b := append(AppendInt(nil, 3), []byte{0, 0, 0}...)
	n, err := ReadBoundedLength(NewCursor(b))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
