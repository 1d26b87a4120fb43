package codec

import (
	"fmt"
	"math"
	"reflect"

	"github.com/nilsbloom/binser/errs"
	"github.com/nilsbloom/binser/format"
	"github.com/nilsbloom/binser/internal/pool"
	"github.com/nilsbloom/binser/registry"
	"github.com/nilsbloom/binser/wire"
)

// Serialize encodes values in order into a single byte string, per the
// encoder algorithm of §4.2: each shareable value is assigned an identity
// the first time it's seen, and every later occurrence (by Go identity for
// tables/objects/procedures, by content for strings) emits a back-reference
// instead of repeating the bytes.
func (inst *Instance) Serialize(values ...any) ([]byte, error) {
	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	inst.mu.RLock()
	defer inst.mu.RUnlock()

	enc := &encoder{
		inst:    inst,
		visited: make(map[any]int),
		active:  make(map[any]bool),
		nextID:  1,
	}

	for _, v := range values {
		b, err := enc.encodeValue(v)
		if err != nil {
			return nil, err
		}
		buf.MustWrite(b)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// encoder carries the per-call state §4.2 requires: the identity map, the
// next-index counter, and the reentrancy guard for custom encoders.
type encoder struct {
	inst    *Instance
	visited map[any]int
	active  map[any]bool
	nextID  int
}

func (e *encoder) encodeValue(v any) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return []byte{byte(wire.TagNull)}, nil
	case bool:
		if val {
			return []byte{byte(wire.TagTrue)}, nil
		}
		return []byte{byte(wire.TagFalse)}, nil
	case int:
		return wire.AppendInt(nil, int64(val)), nil
	case int32:
		return wire.AppendInt(nil, int64(val)), nil
	case int64:
		return wire.AppendInt(nil, val), nil
	case float32:
		return e.encodeFloat(float64(val)), nil
	case float64:
		return e.encodeFloat(val), nil
	case string:
		return e.encodeString(val), nil
	default:
		return e.encodeContainer(v)
	}
}

// encodeFloat picks the one-byte inline form when f has an exact integral
// value in range and isn't negative zero (inline encoding can't carry the
// sign of zero, so -0.0 always takes the 9-byte form to stay bit-exact).
func (e *encoder) encodeFloat(f float64) []byte {
	if !math.IsNaN(f) && !math.IsInf(f, 0) {
		if iv := int64(f); float64(iv) == f && wire.InlineInt(iv) && !(iv == 0 && math.Signbit(f)) {
			return []byte{wire.EncodeInlineInt(iv)}
		}
	}

	return wire.AppendFloat(nil, f, format.FormCompact)
}

func (e *encoder) encodeString(s string) []byte {
	if idx, ok := e.visited[s]; ok {
		return e.encodeBackref(idx)
	}

	id := e.nextID
	e.nextID++
	e.visited[s] = id

	return wire.AppendString(nil, s)
}

func (e *encoder) encodeBackref(idx int) []byte {
	return wire.AppendInt([]byte{byte(wire.TagRef)}, int64(idx))
}

// encodeContainer handles every value kind §4.2 step 3 covers — tables,
// custom objects, and opaque procedures — in the order the spec prescribes:
// back-reference check, then resource lookup, then custom-type lookup,
// then the built-in table/procedure forms.
func (e *encoder) encodeContainer(v any) ([]byte, error) {
	if !reflect.TypeOf(v).Comparable() {
		return nil, fmt.Errorf("%w: %T", errs.ErrUnserializableValue, v)
	}

	if idx, ok := e.visited[v]; ok {
		return e.encodeBackref(idx), nil
	}

	if entry, ok := e.inst.resources.ByObject(v); ok {
		return e.encodeResource(entry.Name)
	}

	if entry, ok := e.inst.types.ByTypeID(typeIdentityOf(v)); ok {
		return e.encodeCustomObject(v, entry)
	}

	switch val := v.(type) {
	case *Table:
		return e.encodeTable(val)
	case *OpaqueProc:
		return e.encodeProc(val)
	default:
		return nil, fmt.Errorf("%w: %T", errs.ErrUnserializableValue, v)
	}
}

func (e *encoder) encodeResource(name string) ([]byte, error) {
	nameBytes := e.encodeString(name)

	out := []byte{byte(wire.TagResource)}
	out = append(out, nameBytes...)

	return out, nil
}

// encodeCustomObject implements §4.2 step 3c: the type name and the
// registered encoder's argument tuple are emitted first, and only then is
// this value assigned an identity index — it doesn't exist as a
// reconstructed value on the decoder side until its deserializer runs.
// e.active guards against a custom encoder whose argument graph loops back
// to the value it's encoding before that numbering happens.
func (e *encoder) encodeCustomObject(v any, entry *registry.TypeEntry) ([]byte, error) {
	if e.active[v] {
		return nil, fmt.Errorf("%w: %s", errs.ErrInfiniteConstructor, entry.Name)
	}
	e.active[v] = true
	defer delete(e.active, v)

	if entry.Encode == nil {
		return nil, fmt.Errorf("%w: type %q has no encoder", errs.ErrUnserializableValue, entry.Name)
	}

	args, err := entry.Encode(v)
	if err != nil {
		return nil, err
	}

	if entry.Template != nil {
		args = flattenWithTemplate(args, entry.Template)
	}

	// The type name is encoded (and, if shared, numbered) before the
	// arguments, matching the decoder's read order in decodeObject — the
	// wire form is name-then-args, and identity numbering must follow the
	// same order on both sides or a string shared between the name and an
	// argument resolves to the wrong back-reference target.
	nameBytes := e.encodeString(entry.Name)

	argBytes := make([]byte, 0, len(args)*4)
	for _, a := range args {
		b, err := e.encodeValue(a)
		if err != nil {
			return nil, err
		}
		argBytes = append(argBytes, b...)
	}

	id := e.nextID
	e.nextID++
	e.visited[v] = id

	out := []byte{byte(wire.TagObject)}
	out = append(out, nameBytes...)
	out = wire.AppendInt(out, int64(len(args)))
	out = append(out, argBytes...)

	return out, nil
}

// encodeTable implements §4.2 step 3d, including the array-part scan's
// first-null-stops rule: Table.Array already reflects that rule (built by
// Table.Set), so the wire's array length is simply its current Go length.
func (e *encoder) encodeTable(t *Table) ([]byte, error) {
	id := e.nextID
	e.nextID++
	e.visited[t] = id

	out := []byte{byte(wire.TagTable)}
	out = wire.AppendInt(out, int64(len(t.Array)))

	for _, elem := range t.Array {
		b, err := e.encodeValue(elem)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}

	out = wire.AppendInt(out, int64(len(t.Map)))

	for k, v := range t.Map {
		kb, err := e.encodeValue(k)
		if err != nil {
			return nil, err
		}
		vb, err := e.encodeValue(v)
		if err != nil {
			return nil, err
		}
		out = append(out, kb...)
		out = append(out, vb...)
	}

	return out, nil
}

func (e *encoder) encodeProc(p *OpaqueProc) ([]byte, error) {
	if e.inst.dumpProc == nil {
		return nil, fmt.Errorf("%w: opaque procedure with no dump hook", errs.ErrUnserializableValue)
	}

	body, err := e.inst.dumpProc(p)
	if err != nil {
		return nil, err
	}

	id := e.nextID
	e.nextID++
	e.visited[p] = id

	out := []byte{byte(wire.TagProc)}
	out = wire.AppendInt(out, int64(len(body)))
	out = append(out, body...)

	return out, nil
}

// typeIdentityOf resolves the Go-level type identity RegisterClass installs
// by default: the value's type with any pointer indirection stripped, same
// as RegisterClass does for the sample it's given. A host using the
// lower-level Register call directly must supply the same reflect.Type as
// the typeID token for this lookup to find it at encode time.
func typeIdentityOf(v any) any {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}
