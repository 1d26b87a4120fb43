// Package compress provides pluggable compression codecs for the snapshot
// storage layer's payload section.
//
// Compression here is a storage-layer concern, not a wire-format concern: the
// core codec's tagged byte stream (see package wire) is never compressed in
// place, since back-references and the identity table are defined over the
// exact byte offsets of that stream. A snapshot groups many already-encoded
// tuples together and compresses the concatenated bytes as a single blob,
// the same way a tar file compresses many already-framed entries.
//
// Four algorithms are available: None (passthrough), Zstd (best ratio),
// S2 (balanced), and LZ4 (fastest decompression). Pick one per snapshot via
// format.CompressionType; GetCodec/CreateCodec resolve the enum to a Codec.
package compress
