// Package binser provides a binary serializer for a dynamically typed value
// model: nested containers, shared substructure, cycles, user-defined typed
// objects, and opaque external resources. It converts an ordered tuple of
// such values into a self-describing byte string, and recovers the tuple
// losslessly from that string — including restoring identity, so values
// that were the same in-memory object before encoding are the same
// reconstructed object after decoding.
//
// # Basic Usage
//
//	import "github.com/nilsbloom/binser"
//
//	t := codec.NewTable()
//	t.Set(int64(1), "Hello, World!")
//	data, err := binser.Serialize(int64(45), t)
//
//	values, err := binser.Deserialize(data)
//
// Registering a custom struct type:
//
//	binser.RegisterClass(Point{}, "Point")
//	data, _ := binser.Serialize(&Point{X: 1, Y: 2})
//	values, _ := binser.Deserialize(data)
//	p := values[0].(*Point)
//
// # Package Structure
//
// This package is a thin wrapper over package codec, delegating every call
// to a package-level default *codec.Instance — exactly what NewInstance
// returns, so the default instance has no special privileges. Use
// binser.NewInstance directly for independent registries.
package binser

import (
	"github.com/nilsbloom/binser/codec"
	"github.com/nilsbloom/binser/registry"
)

var defaultInstance = codec.NewInstance()

// Serialize encodes values, in order, into a single byte string.
func Serialize(values ...any) ([]byte, error) {
	return defaultInstance.Serialize(values...)
}

// Deserialize decodes every value encoding in data, in order.
func Deserialize(data []byte) ([]any, error) {
	return defaultInstance.Deserialize(data)
}

// DeserializeN decodes at most n values from data (or every value if n < 0).
func DeserializeN(data []byte, n int) ([]any, error) {
	return defaultInstance.DeserializeN(data, n)
}

// Register adds a custom type to the default instance.
func Register(typeID any, name string, enc codec.TypeEncoderFunc, dec codec.TypeDecoderFunc, tmpl *registry.Template) error {
	return defaultInstance.Register(typeID, name, enc, dec, tmpl)
}

// Unregister removes a type registration from the default instance, by name
// or by type identity.
func Unregister(key any) error {
	return defaultInstance.Unregister(key)
}

// RegisterClass registers sample's type under name on the default instance,
// using the default reflection-based struct codec unless opts supplies one.
func RegisterClass(sample any, name string, opts ...codec.ClassOption) error {
	return defaultInstance.RegisterClass(sample, name, opts...)
}

// RegisterResource registers obj under name on the default instance.
func RegisterResource(obj any, name string) error {
	return defaultInstance.RegisterResource(obj, name)
}

// UnregisterResource removes a resource registration from the default
// instance.
func UnregisterResource(name string) error {
	return defaultInstance.UnregisterResource(name)
}

// NewInstance returns an independent codec instance with empty registries.
func NewInstance(opts ...codec.InstanceOption) *codec.Instance {
	return codec.NewInstance(opts...)
}
