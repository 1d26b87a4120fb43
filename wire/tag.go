// Package wire implements the tagged byte-stream format described by the
// codec: one tag byte per value, with small integers inlined into the tag
// byte itself and everything else following as a fixed, tag-specific tail.
//
// This package has no knowledge of graphs, sharing, registries, or
// templates — package codec owns identity tracking and recursion; wire only
// knows how to lay a single scalar or a single container's framing out as
// bytes and read it back, bounds-checked.
package wire

// Tag is the first byte of every value encoding.
type Tag byte

// Tag byte layout. 1..201 double as an inlined small integer (b-101 in
// -100..100); everything above is a distinct kind.
const (
	// TagIntMin and TagIntMax bound the inline small-integer range.
	TagIntMin Tag = 1
	TagIntMax Tag = 201

	// intBias is subtracted from the byte value to recover the integer, and
	// added to the integer to produce the byte value: byte = n + intBias.
	intBias = 101

	TagNull    Tag = 202
	TagFloat   Tag = 203 // followed by 8 big-endian IEEE-754 bytes, or the legacy text form (see legacyfloat.go)
	TagTrue    Tag = 204
	TagFalse   Tag = 205
	TagString  Tag = 206 // length (value-encoded) + raw bytes
	TagTable   Tag = 207 // array length + array values + map size + (key,value) pairs
	TagRef     Tag = 208 // back-reference index (value-encoded)
	TagObject  Tag = 209 // type name (value-encoded) + arg count (value-encoded) + args
	TagProc    Tag = 210 // length (value-encoded) + raw opaque body bytes
	TagResource Tag = 211 // resource name (value-encoded)
)

// InlineInt reports whether n fits in the single-byte inline integer range.
func InlineInt(n int64) bool {
	return n >= -100 && n <= 100
}

// EncodeInlineInt returns the single tag byte for n. The caller must ensure
// InlineInt(n) holds.
func EncodeInlineInt(n int64) byte {
	return byte(n + intBias)
}

// DecodeInlineInt recovers the integer carried by an inline tag byte. The
// caller must ensure b is in [TagIntMin, TagIntMax].
func DecodeInlineInt(b byte) int64 {
	return int64(b) - intBias
}

func (t Tag) String() string {
	switch {
	case t >= TagIntMin && t <= TagIntMax:
		return "InlineInt"
	case t == TagNull:
		return "Null"
	case t == TagFloat:
		return "Float"
	case t == TagTrue:
		return "True"
	case t == TagFalse:
		return "False"
	case t == TagString:
		return "String"
	case t == TagTable:
		return "Table"
	case t == TagRef:
		return "Ref"
	case t == TagObject:
		return "Object"
	case t == TagProc:
		return "Proc"
	case t == TagResource:
		return "Resource"
	default:
		return "Unknown"
	}
}
