package wire

import (
	"fmt"

	"github.com/nilsbloom/binser/errs"
)

// Cursor is a bounds-checked read head over a decode buffer. Every method
// either advances the cursor and returns a value, or returns an error
// without advancing it. No method panics or reads past len(data) — this is
// the fuzz-safety boundary the rest of the decoder relies on.
type Cursor struct {
	data        []byte
	pos         int
	allowLegacy bool
}

// CursorOption configures a Cursor at construction time.
type CursorOption func(*Cursor)

// AllowLegacyFloat opts a Cursor into speculatively recognizing the archived
// "%.17g text between two TagFloat bytes" float form (see legacyfloat.go).
// It's off by default: every float this module's own encoder produces uses
// the compact 8-byte form, and trying the legacy scan unconditionally on
// every TagFloat risks misreading a compact payload (plus whatever tag
// follows it) as text on the rare input where the 8 payload bytes all fall
// in the legacy alphabet. Callers that need to read archived legacy-text
// output opt in explicitly via this option.
func AllowLegacyFloat() CursorOption {
	return func(c *Cursor) {
		c.allowLegacy = true
	}
}

// NewCursor wraps data for bounds-checked reading starting at offset 0.
func NewCursor(data []byte, opts ...CursorOption) *Cursor {
	c := &Cursor{data: data}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Pos returns the current byte offset, used to annotate errors.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the number of bytes remaining.
func (c *Cursor) Len() int {
	return len(c.data) - c.pos
}

// Done reports whether every byte has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.data)
}

// Mark returns the current position so a failed lookahead (e.g. the legacy
// float form's speculative text scan) can be unwound with Reset.
func (c *Cursor) Mark() int {
	return c.pos
}

// Reset rewinds the cursor to a position previously returned by Mark.
func (c *Cursor) Reset(pos int) {
	c.pos = pos
}

// ReadByte consumes and returns one byte.
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, fmt.Errorf("%w: at offset %d", errs.ErrTruncatedInput, c.pos)
	}

	b := c.data[c.pos]
	c.pos++

	return b, nil
}

// PeekByte returns the next byte without consuming it.
func (c *Cursor) PeekByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, fmt.Errorf("%w: at offset %d", errs.ErrTruncatedInput, c.pos)
	}

	return c.data[c.pos], nil
}

// ReadN consumes and returns the next n raw bytes. The returned slice
// aliases the underlying buffer and must not be retained past the decode
// call without copying.
func (c *Cursor) ReadN(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d at offset %d", errs.ErrBadLength, n, c.pos)
	}
	if n > c.Len() {
		return nil, fmt.Errorf("%w: need %d bytes, have %d at offset %d", errs.ErrBadLength, n, c.Len(), c.pos)
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}
