package object

// Extend rewires derived's prototype chain to inherit from base: the
// derived prototype slot is replaced with a fresh object delegating to
// base's current prototype, and the constructor property on that fresh
// object is pointed back at derived. The fresh object is never a shared
// reference, so members later attached to the derived prototype cannot
// leak onto base's.
//
// Call Extend right after creating the derived constructor and before
// attaching members to its prototype: the slot is replaced wholesale and
// members attached earlier are discarded. Each call establishes exactly
// one delegation hop; linking a chain takes one call per hop, base
// constructors first. Calling Extend again for the same derived
// constructor overwrites the previous link; last call wins.
//
// Extend performs no validation. The type system already guarantees both
// arguments carry a prototype slot; nil constructors panic at the point of
// slot use.
func Extend(derived, base *Constructor) {
	derived.SetPrototype(NewObject(base.Prototype()))
	derived.proto.properties[ConstructorKey] = derived
}
