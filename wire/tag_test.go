package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInlineInt(t *testing.T) {
	assert.True(t, InlineInt(-100))
	assert.True(t, InlineInt(0))
	assert.True(t, InlineInt(100))
	assert.False(t, InlineInt(-101))
	assert.False(t, InlineInt(101))
}

func TestEncodeDecodeInlineInt(t *testing.T) {
	for n := int64(-100); n <= 100; n++ {
		b := EncodeInlineInt(n)
		assert.True(t, byte(TagIntMin) <= b && b <= byte(TagIntMax))
		assert.Equal(t, n, DecodeInlineInt(b))
	}
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "Null", TagNull.String())
	assert.Equal(t, "Table", TagTable.String())
	assert.Equal(t, "Unknown", Tag(0).String())
	assert.Equal(t, "InlineInt", Tag(50).String())
}
