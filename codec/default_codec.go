package codec

import (
	"fmt"
	"reflect"

	"github.com/nilsbloom/binser/errs"
)

// defaultStructEncoder reduces a struct value's exported fields to the flat
// (name, value, name, value, ...) argument list spec §6 calls the default
// encoder: "the object's key/value pairs as a flat argument list". When the
// type also carries a template, encode.go flattens this list again through
// the template before it reaches the wire — the default encoder itself
// stays template-agnostic.
func defaultStructEncoder(t reflect.Type) TypeEncoderFunc {
	return func(obj any) ([]any, error) {
		v := reflect.ValueOf(obj)
		for v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return nil, fmt.Errorf("%w: nil pointer to %s", errs.ErrUnserializableValue, t.Name())
			}
			v = v.Elem()
		}
		if v.Type() != t {
			return nil, fmt.Errorf("%w: expected %s, got %s", errs.ErrUnserializableValue, t, v.Type())
		}

		args := make([]any, 0, t.NumField()*2)
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			args = append(args, field.Name, v.Field(i).Interface())
		}

		return args, nil
	}
}

// defaultStructDecoder rebuilds a *T value from the flat (name, value, ...)
// argument list defaultStructEncoder (or a template-driven unflatten)
// produced. Fields present in the argument list but absent from T, or whose
// decoded value isn't assignable, are silently skipped — they arrived as
// part of a template tail the receiving type doesn't declare.
func defaultStructDecoder(t reflect.Type) TypeDecoderFunc {
	return func(args []any) (any, error) {
		ptr := reflect.New(t)
		v := ptr.Elem()

		for i := 0; i+1 < len(args); i += 2 {
			name, ok := args[i].(string)
			if !ok {
				continue
			}

			field := v.FieldByName(name)
			if !field.IsValid() || !field.CanSet() {
				continue
			}

			val := reflect.ValueOf(args[i+1])
			if !val.IsValid() {
				continue
			}

			switch {
			case val.Type().AssignableTo(field.Type()):
				field.Set(val)
			case val.Type().ConvertibleTo(field.Type()):
				field.Set(val.Convert(field.Type()))
			}
		}

		return ptr.Interface(), nil
	}
}
