// Package snapshot is a named, multi-tuple container format for persisting
// many binser.Serialize outputs side by side in one file — the storage
// layer above the core wire format, not part of it. A snapshot has a fixed
// 32-byte header, a packed index section, a name table, and a compressed
// payload section holding the concatenated encoded tuples.
package snapshot

// Magic identifies a snapshot file; Version allows the layout to change
// without breaking ParseHeader's ability to at least recognize the file.
const (
	Magic   uint32 = 0x424e5331 // "BNS1"
	Version uint8  = 1

	HeaderSize     = 32
	IndexEntrySize = 16
)
