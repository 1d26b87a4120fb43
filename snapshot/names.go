package snapshot

import (
	"fmt"

	"github.com/nilsbloom/binser/endian"
	"github.com/nilsbloom/binser/errs"
)

// writeNameTable packs names in order, each as a uint16 length prefix
// followed by its raw bytes. The name table exists purely for hash-
// collision disambiguation and for Names(); the index's NameHash is the
// lookup fast path.
func writeNameTable(names []string) []byte {
	engine := endian.GetLittleEndianEngine()

	var out []byte
	for _, name := range names {
		var lenBuf [2]byte
		engine.PutUint16(lenBuf[:], uint16(len(name))) //nolint:gosec
		out = append(out, lenBuf[:]...)
		out = append(out, name...)
	}

	return out
}

// readNameTable reads exactly count names back out of data.
func readNameTable(data []byte, count int) ([]string, error) {
	engine := endian.GetLittleEndianEngine()
	names := make([]string, count)

	pos := 0
	for i := 0; i < count; i++ {
		if pos+2 > len(data) {
			return nil, fmt.Errorf("%w: truncated name table", errs.ErrTruncatedInput)
		}
		n := int(engine.Uint16(data[pos : pos+2]))
		pos += 2

		if pos+n > len(data) {
			return nil, fmt.Errorf("%w: truncated name table", errs.ErrTruncatedInput)
		}
		names[i] = string(data[pos : pos+n])
		pos += n
	}

	return names, nil
}
