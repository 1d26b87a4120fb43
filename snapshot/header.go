package snapshot

import (
	"fmt"

	"github.com/nilsbloom/binser/endian"
	"github.com/nilsbloom/binser/errs"
	"github.com/nilsbloom/binser/format"
)

// Header is the fixed 32-byte section at the start of every snapshot file,
// always little-endian regardless of host, mirroring the teacher's blob
// header layout.
type Header struct {
	CompressionType format.CompressionType
	EntryCount      uint32
	IndexOffset     uint32
	NameTableOffset uint32
	PayloadOffset   uint32
	PayloadLength   uint32
}

// Bytes serializes the header into exactly HeaderSize bytes.
func (h *Header) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()
	b := make([]byte, HeaderSize)

	engine.PutUint32(b[0:4], Magic)
	b[4] = Version
	b[5] = byte(h.CompressionType)
	engine.PutUint32(b[8:12], h.EntryCount)
	engine.PutUint32(b[12:16], h.IndexOffset)
	engine.PutUint32(b[16:20], h.NameTableOffset)
	engine.PutUint32(b[20:24], h.PayloadOffset)
	engine.PutUint32(b[24:28], h.PayloadLength)

	return b
}

// ParseHeader reads a Header from the first HeaderSize bytes of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: need %d header bytes, have %d", errs.ErrTruncatedInput, HeaderSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()

	magic := engine.Uint32(data[0:4])
	if magic != Magic {
		return Header{}, fmt.Errorf("%w: bad snapshot magic %#x", errs.ErrBadTag, magic)
	}

	var h Header
	h.CompressionType = format.CompressionType(data[5])
	h.EntryCount = engine.Uint32(data[8:12])
	h.IndexOffset = engine.Uint32(data[12:16])
	h.NameTableOffset = engine.Uint32(data[16:20])
	h.PayloadOffset = engine.Uint32(data[20:24])
	h.PayloadLength = engine.Uint32(data[24:28])

	return h, nil
}
