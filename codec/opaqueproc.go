package codec

// OpaqueProc wraps a host procedure body dumped to bytes by a DumpHook and
// restored by a LoadHook. The codec never interprets Body; it only carries
// it across the wire under tag 210.
type OpaqueProc struct {
	Body []byte
}

// DumpHook reduces a host procedure value to its opaque body bytes. Absent
// a hook, tag 210 is never emitted and procedures are unserializable.
type DumpHook func(proc any) ([]byte, error)

// LoadHook reconstructs a host procedure value from its opaque body bytes.
// Absent a hook, tag 210 is rejected on decode.
type LoadHook func(body []byte) (any, error)
