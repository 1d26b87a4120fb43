package wire

import (
	"strconv"
)

// legacyFloatLookahead bounds how far the speculative legacy-text scan
// looks for a terminating TagFloat byte before giving up and falling back
// to the compact 8-byte form. %.17g never exceeds ~24 bytes for a float64
// (sign, up to 17 significant digits, '.', 'e', exponent sign, up to 3
// exponent digits), so this is generous headroom.
const legacyFloatLookahead = 32

// formatLegacyFloat renders f the way the archived text form does: %.17g.
func formatLegacyFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 17, 64)
}

// legacyFloatByte reports whether b can appear in a %.17g-formatted float
// literal (digits, sign, decimal point, exponent marker, or the literal
// "inf"/"nan" spellings Go's strconv may also need to round-trip).
func legacyFloatByte(b byte) bool {
	switch b {
	case '-', '+', '.', 'e', 'E':
		return true
	case 'i', 'n', 'f', 'a', 'I', 'N', 'F', 'A':
		return true
	default:
		return b >= '0' && b <= '9'
	}
}

// tryReadLegacyFloat speculatively consumes a run of legacy-float-alphabet
// bytes terminated by a TagFloat byte and parses it as a decimal float. If
// no such terminated run exists within legacyFloatLookahead bytes, the
// cursor is rewound to its entry position and ok is false.
func tryReadLegacyFloat(c *Cursor) (value float64, ok bool, err error) {
	start := c.Mark()

	var text []byte
	for i := 0; i < legacyFloatLookahead; i++ {
		b, readErr := c.ReadByte()
		if readErr != nil {
			c.Reset(start)
			return 0, false, nil
		}

		if Tag(b) == TagFloat {
			f, parseErr := strconv.ParseFloat(string(text), 64)
			if parseErr != nil {
				c.Reset(start)
				return 0, false, nil
			}

			return f, true, nil
		}

		if !legacyFloatByte(b) {
			c.Reset(start)
			return 0, false, nil
		}

		text = append(text, b)
	}

	c.Reset(start)

	return 0, false, nil
}
