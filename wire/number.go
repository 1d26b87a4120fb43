package wire

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/nilsbloom/binser/errs"
	"github.com/nilsbloom/binser/format"
)

// canonicalNaN is the bit pattern every encoded NaN collapses to, regardless
// of the host's original NaN payload bits.
const canonicalNaN uint64 = 0x7FF8_0000_0000_0000

// AppendInt appends the wire encoding of an integer: the one-byte inline
// form for n in [-100, 100], otherwise the 9-byte big-endian IEEE-754 form
// (the integer is widened to float64, which is exact for any value a
// length, count, or back-reference index will realistically take).
//
// This is also how every embedded structural integer (string lengths,
// array/map sizes, back-reference indices, argument counts) is written:
// per the format, those are full value encodings, not a distinct varint.
func AppendInt(buf []byte, n int64) []byte {
	if InlineInt(n) {
		return append(buf, EncodeInlineInt(n))
	}

	return AppendFloat(buf, float64(n), format.FormCompact)
}

// AppendFloat appends the wire encoding of a float64 in the requested form.
// NaN of any payload is canonicalized; -0.0 and all subnormals round-trip
// bit-exact in the compact form.
func AppendFloat(buf []byte, f float64, form format.FloatForm) []byte {
	bits := math.Float64bits(f)
	if math.IsNaN(f) {
		bits = canonicalNaN
	}

	if form == format.FormLegacyText {
		buf = append(buf, byte(TagFloat))
		buf = append(buf, []byte(formatLegacyFloat(math.Float64frombits(bits)))...)
		buf = append(buf, byte(TagFloat))

		return buf
	}

	buf = append(buf, byte(TagFloat))
	buf = binary.BigEndian.AppendUint64(buf, bits)

	return buf
}

// ReadNumber reads one Number value: an inline small integer or a float in
// either the compact or legacy-text wire form. isInt reports whether the
// inline-integer form was used, so callers that need a structural integer
// (a length, count, or reference index) can reject a non-integral float.
func ReadNumber(c *Cursor) (value float64, isInt bool, intValue int64, err error) {
	b, err := c.ReadByte()
	if err != nil {
		return 0, false, 0, err
	}

	tag := Tag(b)
	switch {
	case tag >= TagIntMin && tag <= TagIntMax:
		n := DecodeInlineInt(b)
		return float64(n), true, n, nil
	case tag == TagFloat:
		f, err := readFloatPayload(c)
		if err != nil {
			return 0, false, 0, err
		}

		return f, false, 0, nil
	default:
		return 0, false, 0, fmt.Errorf("%w: tag %d at offset %d", errs.ErrBadTag, b, c.Pos()-1)
	}
}

// readFloatPayload reads the bytes following a consumed TagFloat byte. The
// compact 8-byte form is read directly unless the cursor was constructed
// with AllowLegacyFloat, in which case the legacy "text between two TagFloat
// bytes" form is tried first, speculatively: if the bytes ahead don't parse
// as a terminated decimal run, the cursor is rewound and the compact form is
// read instead. Gating the speculative scan behind an explicit opt-in avoids
// it ever mistaking a compact payload (plus whatever tag follows it) for
// legacy text.
func readFloatPayload(c *Cursor) (float64, error) {
	if c.allowLegacy {
		if f, ok, err := tryReadLegacyFloat(c); err != nil {
			return 0, err
		} else if ok {
			return f, nil
		}
	}

	raw, err := c.ReadN(8)
	if err != nil {
		return 0, err
	}

	bits := binary.BigEndian.Uint64(raw)

	return math.Float64frombits(bits), nil
}
