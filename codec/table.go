package codec

// Table is the decoded/encoded form of the data model's "table" kind: an
// array part (consecutive positive-integer keys starting at 1, up to the
// first gap) plus a map part (everything else). The split is purely a wire
// convenience; callers that just want "the value at key k" should use Get
// regardless of which part backs it.
type Table struct {
	Array []any
	Map   map[any]any
}

// NewTable returns an empty table ready for Set calls.
func NewTable() *Table {
	return &Table{Map: make(map[any]any)}
}

// Get returns the value at key, checking the array part first for integer
// keys in range, then the map part.
func (t *Table) Get(key any) (any, bool) {
	if n, ok := arrayIndex(key); ok && n >= 1 && n <= len(t.Array) {
		return t.Array[n-1], true
	}

	v, ok := t.Map[key]

	return v, ok
}

// Set assigns value to key. An integer key that immediately extends the
// array part (len(Array)+1) grows the array; everything else goes to the
// map part, including an integer key that would otherwise leave a gap —
// matching the encoder's "first gap stops the scan" rule (§9's open
// question): a table built field-by-field through Set never retroactively
// migrates a map entry into the array when an earlier gap is later filled.
func (t *Table) Set(key any, value any) {
	if n, ok := arrayIndex(key); ok {
		switch {
		case n >= 1 && n <= len(t.Array):
			t.Array[n-1] = value
			return
		case n == len(t.Array)+1:
			t.Array = append(t.Array, value)
			return
		}
	}

	if t.Map == nil {
		t.Map = make(map[any]any)
	}

	t.Map[key] = value
}

// arrayIndex reports whether key is an integer-valued key usable as an
// array index, and its value.
func arrayIndex(key any) (int, bool) {
	switch k := key.(type) {
	case int64:
		return int(k), true
	case int:
		return k, true
	case float64:
		if k == float64(int64(k)) {
			return int(k), true
		}
	}

	return 0, false
}

// Len returns the array part's length (the "A" field of the wire format).
func (t *Table) Len() int {
	return len(t.Array)
}
