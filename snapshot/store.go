package snapshot

import (
	"fmt"

	"github.com/nilsbloom/binser/compress"
	"github.com/nilsbloom/binser/errs"
	"github.com/nilsbloom/binser/format"
	"github.com/nilsbloom/binser/internal/hash"
	"github.com/nilsbloom/binser/internal/pool"
)

// Writer accumulates named byte strings — typically the output of
// binser.Serialize — and packs them into a single compressed snapshot file.
type Writer struct {
	names []string
	blobs [][]byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Put adds or replaces the tuple stored under name.
func (w *Writer) Put(name string, data []byte) {
	for i, n := range w.names {
		if n == name {
			w.blobs[i] = data
			return
		}
	}

	w.names = append(w.names, name)
	w.blobs = append(w.blobs, data)
}

// Names returns every name added via Put, in write order.
func (w *Writer) Names() []string {
	return append([]string(nil), w.names...)
}

// Write packs every Put entry into one snapshot byte string, compressing
// the concatenated payload with codecType.
func (w *Writer) Write(codecType format.CompressionType) ([]byte, error) {
	algo, err := compress.GetCodec(codecType)
	if err != nil {
		return nil, err
	}

	payload := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(payload)

	entries := make([]IndexEntry, len(w.names))
	for i, name := range w.names {
		entries[i] = IndexEntry{
			NameHash: hash.ID(name),
			Offset:   uint32(payload.Len()), //nolint:gosec
			Length:   uint32(len(w.blobs[i])),
		}
		payload.MustWrite(w.blobs[i])
	}

	compressed, err := algo.Compress(payload.Bytes())
	if err != nil {
		return nil, err
	}

	indexBytes := writeIndex(entries)
	nameTable := writeNameTable(w.names)

	header := Header{
		CompressionType: codecType,
		EntryCount:      uint32(len(entries)),
		IndexOffset:     HeaderSize,
		NameTableOffset: uint32(HeaderSize + len(indexBytes)),
		PayloadOffset:   uint32(HeaderSize + len(indexBytes) + len(nameTable)),
		PayloadLength:   uint32(len(compressed)),
	}

	out := make([]byte, 0, int(header.PayloadOffset)+len(compressed))
	out = append(out, header.Bytes()...)
	out = append(out, indexBytes...)
	out = append(out, nameTable...)
	out = append(out, compressed...)

	return out, nil
}

// Reader parses a snapshot file produced by Writer.Write and resolves
// individual named tuples without decompressing or rescanning the whole
// payload more than once.
type Reader struct {
	header  Header
	entries []IndexEntry
	names   []string
	payload []byte

	byHash map[uint64][]int
}

// Open parses data as a snapshot file, decompressing its payload section.
func Open(data []byte) (*Reader, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	entries, err := readIndex(data[header.IndexOffset:], int(header.EntryCount))
	if err != nil {
		return nil, err
	}

	nameTableEnd := header.PayloadOffset
	names, err := readNameTable(data[header.NameTableOffset:nameTableEnd], int(header.EntryCount))
	if err != nil {
		return nil, err
	}

	if len(data) < int(header.PayloadOffset)+int(header.PayloadLength) {
		return nil, fmt.Errorf("%w: truncated payload section", errs.ErrTruncatedInput)
	}

	algo, err := compress.GetCodec(header.CompressionType)
	if err != nil {
		return nil, err
	}

	payload, err := algo.Decompress(data[header.PayloadOffset : header.PayloadOffset+header.PayloadLength])
	if err != nil {
		return nil, err
	}

	r := &Reader{
		header:  header,
		entries: entries,
		names:   names,
		payload: payload,
		byHash:  make(map[uint64][]int, len(entries)),
	}
	for i, e := range entries {
		r.byHash[e.NameHash] = append(r.byHash[e.NameHash], i)
	}

	return r, nil
}

// Names returns every entry name stored in the snapshot, in write order.
func (r *Reader) Names() []string {
	return append([]string(nil), r.names...)
}

// Get returns the raw bytes stored under name — typically fed straight into
// binser.Deserialize. It hashes name for an O(1) index lookup and falls
// back to a literal compare of the name table on hash collision, the same
// "hash for speed, string for truth" shape internal/dispatch.Cache uses.
func (r *Reader) Get(name string) ([]byte, bool) {
	h := hash.ID(name)
	for _, idx := range r.byHash[h] {
		if r.names[idx] != name {
			continue
		}
		e := r.entries[idx]
		return r.payload[e.Offset : e.Offset+e.Length], true
	}

	return nil, false
}
