package codec

import (
	"reflect"
	"sync"

	"github.com/nilsbloom/binser/internal/options"
	"github.com/nilsbloom/binser/registry"
)

// Instance is an independent codec: its own type registry, its own resource
// registry, and its own opaque-procedure hooks. NewInstance() never shares
// state with another Instance, so two instances may register the same type
// name to different encoders without interfering with each other.
type Instance struct {
	mu sync.RWMutex

	types     *registry.TypeRegistry
	resources *registry.ResourceRegistry

	dumpProc DumpHook
	loadProc LoadHook

	allowLegacyFloat bool
}

// NewInstance returns an Instance with empty registries. The package-level
// Serialize/Deserialize/Register/... functions in the root binser package
// delegate to one such instance, created the same way.
func NewInstance(opts ...InstanceOption) *Instance {
	inst := &Instance{
		types:     registry.NewTypeRegistry(),
		resources: registry.NewResourceRegistry(),
	}

	// Construction-time options never fail in practice (they only assign
	// hooks), but apply through the shared options machinery for
	// consistency with the rest of the module.
	_ = options.Apply(inst, opts...)

	return inst
}

// Register adds a custom type. typeID is any comparable token the host
// uses as that type's identity — RegisterClass below defaults it to a
// reflect.Type. When typeID is the reflect.Type of a struct, a nil enc or
// dec is replaced by the default struct codec. For any other typeID a nil
// function is stored as is, and encoding or decoding that type then fails.
func (inst *Instance) Register(typeID any, name string, enc TypeEncoderFunc, dec TypeDecoderFunc, tmpl *registry.Template) error {
	if t, ok := typeID.(reflect.Type); ok && t.Kind() == reflect.Struct {
		if enc == nil {
			enc = defaultStructEncoder(t)
		}
		if dec == nil {
			dec = defaultStructDecoder(t)
		}
	}

	return inst.types.Register(typeID, name, enc, dec, tmpl)
}

// Unregister removes a type registration by name or type identity.
func (inst *Instance) Unregister(key any) error {
	return inst.types.Unregister(key)
}

// RegisterClass registers sample's reflect.Type as the type identity for
// name, using the default struct codec unless enc/dec are supplied. This is
// the concrete form of §9's "use the class value itself as the identity"
// hook: sample may be a zero value of the struct type, a pointer to one, or
// an existing instance — only its type is consulted.
func (inst *Instance) RegisterClass(sample any, name string, opts ...ClassOption) error {
	t := reflect.TypeOf(sample)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	cfg := &classConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	enc := cfg.enc
	dec := cfg.dec
	if enc == nil && dec == nil {
		enc = defaultStructEncoder(t)
		dec = defaultStructDecoder(t)
	}

	return inst.types.Register(t, name, enc, dec, cfg.template)
}

// RegisterResource registers obj under name so it can be referenced by name
// on the wire instead of serialized structurally.
func (inst *Instance) RegisterResource(obj any, name string) error {
	return inst.resources.Register(name, obj)
}

// UnregisterResource removes a resource registration by name.
func (inst *Instance) UnregisterResource(name string) error {
	return inst.resources.Unregister(name)
}

// ClassOption configures a RegisterClass call.
type ClassOption func(*classConfig)

type classConfig struct {
	enc      TypeEncoderFunc
	dec      TypeDecoderFunc
	template *registry.Template
}

// WithClassCodec supplies an explicit encoder/decoder pair instead of the
// default reflection-based struct codec.
func WithClassCodec(enc TypeEncoderFunc, dec TypeDecoderFunc) ClassOption {
	return func(c *classConfig) {
		c.enc = enc
		c.dec = dec
	}
}

// WithClassTemplate attaches a field template to the class registration.
func WithClassTemplate(tmpl *registry.Template) ClassOption {
	return func(c *classConfig) {
		c.template = tmpl
	}
}
