package registry

// TemplateEntry is one step of a Template: either a leaf field (Sub == nil)
// written as a single ordinary value encoding, or a nested field whose own
// contents are flattened in place according to Sub — no separate object
// framing is written for the nested value, only its fields, inline, in the
// parent's argument list.
type TemplateEntry struct {
	Key string
	Sub *Template
}

// Template is an ordered schema for a registered type, letting the codec
// write known fields positionally instead of as explicit key/value pairs.
// Fields outside the template still travel, as a trailing key/value tail.
type Template struct {
	Entries []TemplateEntry
}

// NewTemplate builds a Template from its entries in wire order.
func NewTemplate(entries ...TemplateEntry) *Template {
	return &Template{Entries: entries}
}

// Leaf declares an ordinary, self-delimiting positional field.
func Leaf(key string) TemplateEntry {
	return TemplateEntry{Key: key}
}

// Nested declares a field whose value is itself flattened according to sub.
func Nested(key string, sub *Template) TemplateEntry {
	return TemplateEntry{Key: key, Sub: sub}
}

// CoveredKeys returns the top-level keys this template accounts for. A
// nested entry's own sub-keys belong to the nested object's namespace and
// are accounted for separately when that object's tail is computed.
func (t *Template) CoveredKeys() []string {
	if t == nil {
		return nil
	}

	keys := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		keys[i] = e.Key
	}

	return keys
}

// TemplatedObject is implemented by any value the template engine can read
// fields from and write fields into by string key — the codec's FieldMap
// type is the usual implementation, but a host struct adapter could satisfy
// it too.
type TemplatedObject interface {
	// Field returns the value at key and whether it is present.
	Field(key string) (any, bool)
	// SetField assigns value to key, creating the field if absent.
	SetField(key string, value any)
	// FieldKeys returns every currently present field key, in no
	// particular order (the map part of a table is unordered).
	FieldKeys() []string
}
