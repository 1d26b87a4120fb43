package codec

import "github.com/nilsbloom/binser/internal/options"

// InstanceOption configures a new Instance at construction time.
type InstanceOption = options.Option[*Instance]

// WithProcHooks installs the dump/load hook pair an Instance uses to
// serialize and reconstruct opaque procedures (tag 210). Without this
// option, procedures are unserializable and tag 210 is always rejected on
// decode, per §9's "implementations MAY refuse to encode or decode
// procedures" note.
func WithProcHooks(dump DumpHook, load LoadHook) InstanceOption {
	return options.NoError(func(inst *Instance) {
		inst.dumpProc = dump
		inst.loadProc = load
	})
}

// WithLegacyFloatDecoding opts an Instance's Deserialize/DeserializeN calls
// into recognizing the archived "%.17g text between two TagFloat bytes"
// float form (see wire.AllowLegacyFloat). Off by default: this module's own
// encoder only ever emits the compact 8-byte form, and speculatively trying
// the legacy form on every decoded float is a round-trip hazard for a
// compact payload that happens to fall in the legacy text alphabet. Enable
// this only when reading byte strings archived from a legacy encoder.
func WithLegacyFloatDecoding() InstanceOption {
	return options.NoError(func(inst *Instance) {
		inst.allowLegacyFloat = true
	})
}
