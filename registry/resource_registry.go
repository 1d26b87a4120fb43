package registry

import (
	"fmt"
	"sync"

	"github.com/nilsbloom/binser/errs"
	"github.com/nilsbloom/binser/internal/dispatch"
)

// ResourceEntry pairs a registered resource's wire name with the host
// object it stands for. Resources travel on the wire as their name alone
// (tag 211); the object itself never touches the wire.
type ResourceEntry struct {
	Name  string
	Value any
}

// ResourceRegistry is the bidirectional name <-> object mapping backing
// spec §3/§4.1's opaque resources: values that are never serialized
// structurally, only referenced by a registered name the receiving process
// is assumed to already hold.
type ResourceRegistry struct {
	mu       sync.RWMutex
	byName   *dispatch.Cache[*ResourceEntry]
	byObject map[any]*ResourceEntry
}

// NewResourceRegistry returns an empty registry.
func NewResourceRegistry() *ResourceRegistry {
	return &ResourceRegistry{
		byName:   dispatch.New[*ResourceEntry](),
		byObject: make(map[any]*ResourceEntry),
	}
}

// Register adds a new resource entry. It fails with
// ErrDuplicateRegistration if either name or obj is already registered.
func (r *ResourceRegistry) Register(name string, obj any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byName.Has(name) {
		return fmt.Errorf("%w: resource name %q", errs.ErrDuplicateRegistration, name)
	}
	if _, ok := r.byObject[obj]; ok {
		return fmt.Errorf("%w: resource object already registered as %v", errs.ErrDuplicateRegistration, obj)
	}

	entry := &ResourceEntry{Name: name, Value: obj}

	r.byName.Set(name, entry)
	r.byObject[obj] = entry

	return nil
}

// Unregister removes the entry matching key, which may be either the
// registered name (string) or the registered object itself.
func (r *ResourceRegistry) Unregister(key any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var entry *ResourceEntry

	if name, ok := key.(string); ok {
		entry, ok = r.byName.Get(name)
		if !ok {
			return fmt.Errorf("%w: resource name %q", errs.ErrUnknownRegistration, name)
		}
	} else {
		e, ok := r.byObject[key]
		if !ok {
			return fmt.Errorf("%w: resource object %v", errs.ErrUnknownRegistration, key)
		}
		entry = e
	}

	r.byName.Delete(entry.Name)
	delete(r.byObject, entry.Value)

	return nil
}

// ByName looks up a registered resource by its wire name, used by the
// decoder to resolve a tag-211 reference.
func (r *ResourceRegistry) ByName(name string) (*ResourceEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byName.Get(name)
}

// ByObject looks up a registered resource by the object itself, used by the
// encoder to decide whether a value should be written as a resource
// reference instead of structurally.
func (r *ResourceRegistry) ByObject(obj any) (*ResourceEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byObject[obj]

	return entry, ok
}
