package snapshot

import (
	"fmt"

	"github.com/nilsbloom/binser/endian"
	"github.com/nilsbloom/binser/errs"
)

// IndexEntry locates one named tuple within the decompressed payload
// section. NameHash is the xxHash64 of the entry's name, used for an O(1)
// lookup fast path; the name table (names.go) carries the literal name for
// the rare hash collision and for listing.
type IndexEntry struct {
	NameHash uint64
	Offset   uint32
	Length   uint32
}

// writeIndex packs entries in order. Offset is stored on disk as a delta
// from the previous entry's offset, the same space optimization the
// teacher's index entries use — most snapshots are written with
// consecutively growing offsets, so deltas stay small.
func writeIndex(entries []IndexEntry) []byte {
	engine := endian.GetLittleEndianEngine()
	out := make([]byte, 0, len(entries)*IndexEntrySize)

	var prevOffset uint32
	for _, e := range entries {
		var b [IndexEntrySize]byte
		engine.PutUint64(b[0:8], e.NameHash)
		engine.PutUint32(b[8:12], e.Offset-prevOffset)
		engine.PutUint32(b[12:16], e.Length)
		out = append(out, b[:]...)
		prevOffset = e.Offset
	}

	return out
}

// readIndex is writeIndex's inverse, reconstructing absolute offsets by
// accumulating the on-disk deltas.
func readIndex(data []byte, count int) ([]IndexEntry, error) {
	need := count * IndexEntrySize
	if len(data) < need {
		return nil, fmt.Errorf("%w: need %d index bytes, have %d", errs.ErrTruncatedInput, need, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	entries := make([]IndexEntry, count)

	var absOffset uint32
	for i := 0; i < count; i++ {
		b := data[i*IndexEntrySize : (i+1)*IndexEntrySize]

		absOffset += engine.Uint32(b[8:12])
		entries[i] = IndexEntry{
			NameHash: engine.Uint64(b[0:8]),
			Offset:   absOffset,
			Length:   engine.Uint32(b[12:16]),
		}
	}

	return entries, nil
}
