// Package format holds small enum types shared across the snapshot storage
// layer and the core wire codec.
package format

type (
	// FloatForm selects which of the two historical on-wire float
	// representations the number codec emits. The compact form is always
	// accepted on decode; the legacy text form is accepted only by a cursor
	// built with wire.AllowLegacyFloat.
	FloatForm uint8

	// CompressionType selects the compressor used for a snapshot's payload
	// section. It has no bearing on the core wire format, which is never
	// compressed.
	CompressionType uint8
)

const (
	FormCompact    FloatForm = 0x1 // FormCompact is the 8-byte big-endian IEEE-754 form.
	FormLegacyText FloatForm = 0x2 // FormLegacyText is the archived "%.17g between two tag bytes" form.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (f FloatForm) String() string {
	switch f {
	case FormCompact:
		return "Compact"
	case FormLegacyText:
		return "LegacyText"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
