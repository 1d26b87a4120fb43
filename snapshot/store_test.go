package snapshot

import (
	"testing"

	"github.com/nilsbloom/binser/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReader_RoundTrip(t *testing.T) {
	w := NewWriter()
	w.Put("cpu.load", []byte{1, 2, 3})
	w.Put("mem.used", []byte{4, 5, 6, 7})
	w.Put("disk.free", []byte{8})

	data, err := w.Write(format.CompressionZstd)
	require.NoError(t, err)

	r, err := Open(data)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"cpu.load", "mem.used", "disk.free"}, r.Names())

	got, ok := r.Get("mem.used")
	require.True(t, ok)
	assert.Equal(t, []byte{4, 5, 6, 7}, got)

	got, ok = r.Get("cpu.load")
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, got)

	_, ok = r.Get("no.such.metric")
	assert.False(t, ok)
}

func TestWriterReader_EmptySnapshot(t *testing.T) {
	w := NewWriter()
	data, err := w.Write(format.CompressionNone)
	require.NoError(t, err)

	r, err := Open(data)
	require.NoError(t, err)
	assert.Empty(t, r.Names())

	_, ok := r.Get("anything")
	assert.False(t, ok)
}

func TestWriter_PutReplacesExisting(t *testing.T) {
	w := NewWriter()
	w.Put("a", []byte{1})
	w.Put("a", []byte{2, 2})

	assert.Equal(t, []string{"a"}, w.Names())

	data, err := w.Write(format.CompressionNone)
	require.NoError(t, err)

	r, err := Open(data)
	require.NoError(t, err)

	got, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte{2, 2}, got)
}

func TestWriterReader_AllCompressionTypes(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		ct := ct
		t.Run(ct.String(), func(t *testing.T) {
			w := NewWriter()
			w.Put("k", []byte("some payload bytes to compress"))

			data, err := w.Write(ct)
			require.NoError(t, err)

			r, err := Open(data)
			require.NoError(t, err)

			got, ok := r.Get("k")
			require.True(t, ok)
			assert.Equal(t, []byte("some payload bytes to compress"), got)
		})
	}
}

func TestOpen_RejectsBadMagic(t *testing.T) {
	w := NewWriter()
	w.Put("k", []byte{1})
	data, err := w.Write(format.CompressionNone)
	require.NoError(t, err)

	corrupt := append([]byte(nil), data...)
	corrupt[0] ^= 0xFF

	_, err = Open(corrupt)
	require.Error(t, err)
}

func TestOpen_RejectsTruncated(t *testing.T) {
	w := NewWriter()
	w.Put("k", []byte{1, 2, 3})
	data, err := w.Write(format.CompressionNone)
	require.NoError(t, err)

	_, err = Open(data[:HeaderSize-1])
	require.Error(t, err)
}
