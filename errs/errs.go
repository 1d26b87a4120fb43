// Package errs holds the sentinel errors returned by the wire, registry, and
// codec packages. Call sites wrap a sentinel with fmt.Errorf("%w: ...", ...)
// to attach positional context; callers match on the sentinel with
// errors.Is, never on the formatted message.
package errs

import "errors"

var (
	// ErrUnserializableValue is returned when the encoder is asked to encode
	// a value kind outside the supported universe (e.g. a channel, a function
	// with no registered type, or an opaque procedure with no dump hook).
	ErrUnserializableValue = errors.New("binser: value cannot be serialized")

	// ErrDuplicateRegistration is returned by Register/RegisterResource when
	// the name or type identity is already present in the registry.
	ErrDuplicateRegistration = errors.New("binser: name or type already registered")

	// ErrUnknownRegistration is returned by the decoder when a custom-object
	// type name or a resource name has no matching registry entry.
	ErrUnknownRegistration = errors.New("binser: no registration for name")

	// ErrInfiniteConstructor is returned when a custom encoder's argument
	// graph cycles back to the value being encoded before that value has
	// been assigned an identity index.
	ErrInfiniteConstructor = errors.New("binser: infinite loop in constructor")

	// ErrTruncatedInput is returned when the decoder's cursor would have to
	// read past the end of the buffer to complete a value.
	ErrTruncatedInput = errors.New("binser: truncated input")

	// ErrBadTag is returned when a value's first byte is not a recognized
	// tag byte.
	ErrBadTag = errors.New("binser: unrecognized tag byte")

	// ErrBadLength is returned when a decoded length is negative or larger
	// than the bytes remaining in the buffer.
	ErrBadLength = errors.New("binser: invalid length")

	// ErrBadReference is returned when a back-reference index is zero or
	// points past the end of the identity table.
	ErrBadReference = errors.New("binser: invalid back-reference")

	// ErrMalformedNumber is returned when the legacy decimal-text float form
	// fails to parse.
	ErrMalformedNumber = errors.New("binser: malformed number")
)
