package wire

import (
	"fmt"

	"github.com/nilsbloom/binser/errs"
)

// AppendString appends a TagString value encoding: the tag byte, then the
// length as a value-encoded integer, then the raw bytes.
func AppendString(buf []byte, s string) []byte {
	buf = append(buf, byte(TagString))
	buf = AppendInt(buf, int64(len(s)))
	buf = append(buf, s...)

	return buf
}

// ReadStringBody reads a string's length and bytes, assuming the TagString
// byte has already been consumed by the caller (the caller needs it to
// decide whether to install an identity-table slot before recursing, so it
// owns reading the tag itself).
func ReadStringBody(c *Cursor) (string, error) {
	n, err := ReadLength(c)
	if err != nil {
		return "", err
	}

	raw, err := c.ReadN(n)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

// ReadLength reads a value-encoded non-negative integer used as a length,
// count, size, or back-reference index field. It rejects non-integral
// floats and negative values with ErrBadLength. Callers that need a 1-based
// reference index additionally reject zero themselves.
func ReadLength(c *Cursor) (int, error) {
	f, isInt, intValue, err := ReadNumber(c)
	if err != nil {
		return 0, err
	}

	var n int64
	if isInt {
		n = intValue
	} else {
		if f != float64(int64(f)) {
			return 0, fmt.Errorf("%w: non-integral structural value %v at offset %d", errs.ErrBadLength, f, c.Pos())
		}
		n = int64(f)
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: negative structural value %d at offset %d", errs.ErrBadLength, n, c.Pos())
	}

	return int(n), nil
}

// ReadBoundedLength is ReadLength plus a remaining-bytes bound: it rejects a
// count larger than c.Len() with ErrBadLength. Every structural count this
// is used for (array length, map size, argument count) costs at least one
// remaining byte per unit it allocates for downstream, so a value larger
// than what's left in the buffer can never be legitimate input — callers
// that are about to make() a slice or map sized off the count must use this
// instead of ReadLength so a malicious count can't drive an out-of-range or
// multi-gigabyte allocation before the truncated input is ever noticed.
func ReadBoundedLength(c *Cursor) (int, error) {
	n, err := ReadLength(c)
	if err != nil {
		return 0, err
	}

	if n > c.Len() {
		return 0, fmt.Errorf("%w: structural value %d exceeds %d remaining bytes at offset %d", errs.ErrBadLength, n, c.Len(), c.Pos())
	}

	return n, nil
}

// ReadRefIndex reads a value-encoded 1-based back-reference index.
func ReadRefIndex(c *Cursor) (int, error) {
	return ReadLength(c)
}
