package registry

import (
	"fmt"
	"sync"

	"github.com/nilsbloom/binser/errs"
	"github.com/nilsbloom/binser/internal/dispatch"
)

// TypeEncoderFunc reduces a registered-type value to its reconstruction
// arguments, in the order TypeDecoderFunc expects to receive them.
type TypeEncoderFunc func(obj any) ([]any, error)

// TypeDecoderFunc rebuilds a registered-type value from the argument tuple
// a TypeEncoderFunc (or the default encoder) produced.
type TypeDecoderFunc func(args []any) (any, error)

// TypeEntry is everything the codec needs to know about one registered
// type: its wire name, its host type identity (opaque to this package —
// normally a reflect.Type, but any comparable value the host's
// RegisterClass hook chooses to use), its (possibly default) codec
// functions, and its optional field template.
type TypeEntry struct {
	Name     string
	TypeID   any
	Encode   TypeEncoderFunc
	Decode   TypeDecoderFunc
	Template *Template
}

// TypeRegistry is the bidirectional name <-> type-identity mapping from
// spec §3 "Registries", plus each entry's codec functions and template.
// Registration only happens via explicit Register/Unregister calls; encode
// and decode never mutate it.
type TypeRegistry struct {
	mu       sync.RWMutex
	byName   *dispatch.Cache[*TypeEntry]
	byTypeID map[any]*TypeEntry
}

// NewTypeRegistry returns an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		byName:   dispatch.New[*TypeEntry](),
		byTypeID: make(map[any]*TypeEntry),
	}
}

// Register adds a new type entry. It fails with ErrDuplicateRegistration if
// either name or typeID is already present — both sides of the mapping
// must be unique.
func (r *TypeRegistry) Register(typeID any, name string, enc TypeEncoderFunc, dec TypeDecoderFunc, tmpl *Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byName.Has(name) {
		return fmt.Errorf("%w: type name %q", errs.ErrDuplicateRegistration, name)
	}
	if _, ok := r.byTypeID[typeID]; ok {
		return fmt.Errorf("%w: type id %v", errs.ErrDuplicateRegistration, typeID)
	}

	entry := &TypeEntry{
		Name:     name,
		TypeID:   typeID,
		Encode:   enc,
		Decode:   dec,
		Template: tmpl,
	}

	r.byName.Set(name, entry)
	r.byTypeID[typeID] = entry

	return nil
}

// Unregister removes the entry matching key, which may be either the
// registered name (string) or the registered type identity.
func (r *TypeRegistry) Unregister(key any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var entry *TypeEntry

	if name, ok := key.(string); ok {
		entry, ok = r.byName.Get(name)
		if !ok {
			return fmt.Errorf("%w: type name %q", errs.ErrUnknownRegistration, name)
		}
	} else {
		e, ok := r.byTypeID[key]
		if !ok {
			return fmt.Errorf("%w: type id %v", errs.ErrUnknownRegistration, key)
		}
		entry = e
	}

	r.byName.Delete(entry.Name)
	delete(r.byTypeID, entry.TypeID)

	return nil
}

// ByName looks up a registered type by its wire name, used by the decoder.
func (r *TypeRegistry) ByName(name string) (*TypeEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byName.Get(name)
}

// ByTypeID looks up a registered type by its host type identity, used by
// the encoder to decide whether a value is a registered custom type.
func (r *TypeRegistry) ByTypeID(typeID any) (*TypeEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byTypeID[typeID]

	return entry, ok
}
