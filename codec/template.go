package codec

import "github.com/nilsbloom/binser/registry"

// flattenWithTemplate reduces a flat (key, value, key, value, ...) field
// list to the wire argument order a template dictates: each template
// entry's value in order (recursing into nested fields), then every field
// the template doesn't cover as a trailing (key, value) pair — the same
// protocol the map part of a table uses.
func flattenWithTemplate(pairs []any, tmpl *registry.Template) []any {
	return flattenFieldMap(pairsToFieldMap(pairs), tmpl)
}

func flattenFieldMap(fm *FieldMap, tmpl *registry.Template) []any {
	covered := make(map[string]bool, len(tmpl.Entries))

	var args []any
	for _, e := range tmpl.Entries {
		covered[e.Key] = true
		v, _ := fm.Field(e.Key)

		if e.Sub != nil {
			args = append(args, flattenFieldMap(toFieldMap(v), e.Sub)...)
			continue
		}

		args = append(args, v)
	}

	for _, k := range fm.FieldKeys() {
		if covered[k] {
			continue
		}
		v, _ := fm.Field(k)
		args = append(args, k, v)
	}

	return args
}

// unflattenWithTemplate is flattenWithTemplate's inverse: given the K
// decoded argument values and the registered template, it rebuilds the flat
// (key, value, key, value, ...) list the non-templated decode path (and the
// default struct decoder) expects.
func unflattenWithTemplate(args []any, tmpl *registry.Template) []any {
	fm := NewFieldMap()
	consumed := assignFromTemplate(fm, args, tmpl)

	var pairs []any
	for _, k := range fm.FieldKeys() {
		v, _ := fm.Field(k)
		pairs = append(pairs, k, v)
	}

	if consumed < len(args) {
		pairs = append(pairs, args[consumed:]...)
	}

	return pairs
}

func assignFromTemplate(fm *FieldMap, args []any, tmpl *registry.Template) int {
	pos := 0
	for _, e := range tmpl.Entries {
		if e.Sub != nil {
			sub := NewFieldMap()
			pos += assignFromTemplate(sub, args[min(pos, len(args)):], e.Sub)
			fm.SetField(e.Key, sub)
			continue
		}

		if pos < len(args) {
			fm.SetField(e.Key, args[pos])
		} else {
			fm.SetField(e.Key, nil)
		}
		pos++
	}

	return pos
}

// pairsToFieldMap builds a FieldMap from a flat (key, value, ...) list,
// skipping any pair whose key isn't a string.
func pairsToFieldMap(pairs []any) *FieldMap {
	fm := NewFieldMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			continue
		}
		fm.SetField(key, pairs[i+1])
	}

	return fm
}

// toFieldMap adapts a nested template value to a FieldMap: an existing
// FieldMap is used as-is, anything implementing registry.TemplatedObject is
// copied field by field, and anything else yields an empty map (a nested
// template entry over a value with no fields then emits a nil for each of
// its sub-template's entries).
func toFieldMap(v any) *FieldMap {
	switch t := v.(type) {
	case *FieldMap:
		return t
	case registry.TemplatedObject:
		fm := NewFieldMap()
		for _, k := range t.FieldKeys() {
			val, _ := t.Field(k)
			fm.SetField(k, val)
		}
		return fm
	default:
		return NewFieldMap()
	}
}
