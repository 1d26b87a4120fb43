package codec

import (
	"fmt"

	"github.com/nilsbloom/binser/errs"
	"github.com/nilsbloom/binser/wire"
)

// Deserialize decodes every value encoding in data, in order, per §4.3.
func (inst *Instance) Deserialize(data []byte) ([]any, error) {
	return inst.DeserializeN(data, -1)
}

// DeserializeN decodes at most n values (or every value if n < 0).
func (inst *Instance) DeserializeN(data []byte, n int) ([]any, error) {
	inst.mu.RLock()
	defer inst.mu.RUnlock()

	var cursorOpts []wire.CursorOption
	if inst.allowLegacyFloat {
		cursorOpts = append(cursorOpts, wire.AllowLegacyFloat())
	}

	c := wire.NewCursor(data, cursorOpts...)
	dec := &decoder{inst: inst, cursor: c}

	var out []any
	for !c.Done() {
		if n >= 0 && len(out) >= n {
			break
		}

		v, err := dec.decodeValue()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// decoder carries the per-call state §4.3 requires: the byte cursor and the
// identity table mirroring the encoder's.
type decoder struct {
	inst     *Instance
	cursor   *wire.Cursor
	identity []any
}

func (d *decoder) decodeValue() (any, error) {
	b, err := d.cursor.PeekByte()
	if err != nil {
		return nil, err
	}

	tag := wire.Tag(b)

	if (tag >= wire.TagIntMin && tag <= wire.TagIntMax) || tag == wire.TagFloat {
		f, isInt, n, err := wire.ReadNumber(d.cursor)
		if err != nil {
			return nil, err
		}
		if isInt {
			return n, nil
		}
		return f, nil
	}

	if _, err := d.cursor.ReadByte(); err != nil {
		return nil, err
	}

	switch tag {
	case wire.TagNull:
		return nil, nil
	case wire.TagTrue:
		return true, nil
	case wire.TagFalse:
		return false, nil
	case wire.TagString:
		return d.decodeString()
	case wire.TagTable:
		return d.decodeTable()
	case wire.TagRef:
		return d.decodeRef()
	case wire.TagObject:
		return d.decodeObject()
	case wire.TagProc:
		return d.decodeProc()
	case wire.TagResource:
		return d.decodeResource()
	default:
		return nil, fmt.Errorf("%w: tag %d at offset %d", errs.ErrBadTag, b, d.cursor.Pos()-1)
	}
}

// decodeString appends the string to the identity table before returning,
// per §4.3's "string" case.
func (d *decoder) decodeString() (string, error) {
	s, err := wire.ReadStringBody(d.cursor)
	if err != nil {
		return "", err
	}

	d.identity = append(d.identity, s)

	return s, nil
}

// decodeTable installs a fresh table into the identity table before
// decoding its contents, so a back-reference inside it (a cycle) resolves
// to the table itself rather than erroring.
func (d *decoder) decodeTable() (*Table, error) {
	t := NewTable()
	d.identity = append(d.identity, t)

	arrLen, err := wire.ReadBoundedLength(d.cursor)
	if err != nil {
		return nil, err
	}

	t.Array = make([]any, arrLen)
	for i := 0; i < arrLen; i++ {
		v, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		t.Array[i] = v
	}

	mapSize, err := wire.ReadBoundedLength(d.cursor)
	if err != nil {
		return nil, err
	}

	t.Map = make(map[any]any, mapSize)
	for i := 0; i < mapSize; i++ {
		k, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		v, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		t.Map[k] = v
	}

	return t, nil
}

func (d *decoder) decodeRef() (any, error) {
	idx, err := wire.ReadRefIndex(d.cursor)
	if err != nil {
		return nil, err
	}

	if idx < 1 || idx > len(d.identity) {
		return nil, fmt.Errorf("%w: index %d at offset %d", errs.ErrBadReference, idx, d.cursor.Pos())
	}

	return d.identity[idx-1], nil
}

// decodeObject mirrors the encoder's deferred numbering: the produced value
// is appended to the identity table only after its arguments are fully
// decoded and the registered deserializer has run.
func (d *decoder) decodeObject() (any, error) {
	nameVal, err := d.decodeValue()
	if err != nil {
		return nil, err
	}

	name, ok := nameVal.(string)
	if !ok {
		return nil, fmt.Errorf("%w: non-string type name at offset %d", errs.ErrBadTag, d.cursor.Pos())
	}

	argCount, err := wire.ReadBoundedLength(d.cursor)
	if err != nil {
		return nil, err
	}

	args := make([]any, argCount)
	for i := 0; i < argCount; i++ {
		v, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	entry, ok := d.inst.types.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: type %q", errs.ErrUnknownRegistration, name)
	}

	if entry.Template != nil {
		args = unflattenWithTemplate(args, entry.Template)
	}

	if entry.Decode == nil {
		return nil, fmt.Errorf("%w: type %q has no decoder", errs.ErrUnknownRegistration, name)
	}

	obj, err := entry.Decode(args)
	if err != nil {
		return nil, err
	}

	d.identity = append(d.identity, obj)

	return obj, nil
}

func (d *decoder) decodeProc() (any, error) {
	n, err := wire.ReadLength(d.cursor)
	if err != nil {
		return nil, err
	}

	body, err := d.cursor.ReadN(n)
	if err != nil {
		return nil, err
	}

	if d.inst.loadProc == nil {
		return nil, fmt.Errorf("%w: opaque procedure with no load hook", errs.ErrBadTag)
	}

	proc, err := d.inst.loadProc(append([]byte(nil), body...))
	if err != nil {
		return nil, err
	}

	d.identity = append(d.identity, proc)

	return proc, nil
}

// decodeResource resolves a resource reference to the currently registered
// object. It is never added to the identity table — resources aren't
// identity-tracked, per §3.
func (d *decoder) decodeResource() (any, error) {
	nameVal, err := d.decodeValue()
	if err != nil {
		return nil, err
	}

	name, ok := nameVal.(string)
	if !ok {
		return nil, fmt.Errorf("%w: non-string resource name at offset %d", errs.ErrBadTag, d.cursor.Pos())
	}

	entry, ok := d.inst.resources.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: resource %q", errs.ErrUnknownRegistration, name)
	}

	return entry.Value, nil
}
