package object

import (
	"fmt"
	"sort"
	"strings"
)

// Object is a property bag with a delegate. The same type serves both
// roles of the model: the prototype objects constructors carry, and the
// instances those constructors produce.
//
// Object performs no internal locking. Callers that share an Object across
// goroutines must ensure no goroutine mutates it concurrently with any
// other access, the same guarantee the model asks of single-threaded code.
type Object struct {
	properties map[string]Value
	proto      *Object
	frozen     bool
}

// NewObject creates an empty object delegating to proto. A nil proto
// terminates the delegation chain.
func NewObject(proto *Object) *Object {
	return &Object{properties: make(map[string]Value), proto: proto}
}

func (o *Object) Type() ObjectType { return OBJECT_OBJ }

// Inspect renders the object's own properties with sorted keys. Nested
// objects are abbreviated so self-referencing properties cannot recurse.
func (o *Object) Inspect() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, key := range o.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(key)
		sb.WriteString(": ")
		switch v := o.properties[key].(type) {
		case *Object:
			sb.WriteString("{...}")
		default:
			sb.WriteString(v.Inspect())
		}
	}
	sb.WriteString("}")
	return sb.String()
}

// Get looks name up through the delegation chain, nearest object first.
func (o *Object) Get(name string) (Value, bool) {
	for cur := o; cur != nil; cur = cur.proto {
		if v, ok := cur.properties[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// GetOwn looks name up in the object's own table only.
func (o *Object) GetOwn(name string) (Value, bool) {
	v, ok := o.properties[name]
	return v, ok
}

// Has reports whether name resolves anywhere in the delegation chain.
func (o *Object) Has(name string) bool {
	_, ok := o.Get(name)
	return ok
}

// HasOwn reports whether name is an own property.
func (o *Object) HasOwn(name string) bool {
	_, ok := o.properties[name]
	return ok
}

// Set writes an own property. Writes never travel up the chain: setting a
// name that a prototype also defines shadows the inherited member without
// touching it.
func (o *Object) Set(name string, v Value) error {
	if o.frozen {
		return fmt.Errorf("set %s: %w", name, ErrFrozenObject)
	}
	o.properties[name] = v
	return nil
}

// Delete removes an own property. Deleting a name only defined up the
// chain is a no-op.
func (o *Object) Delete(name string) error {
	if o.frozen {
		return fmt.Errorf("delete %s: %w", name, ErrFrozenObject)
	}
	delete(o.properties, name)
	return nil
}

// Keys returns the own property names in sorted order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.properties))
	for k := range o.properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Prototype returns the delegate consulted on lookup misses, or nil at the
// end of the chain.
func (o *Object) Prototype() *Object {
	return o.proto
}

// SetPrototype replaces the delegate. The new delegate's chain must not
// already contain the receiver.
func (o *Object) SetPrototype(proto *Object) error {
	if o.frozen {
		return fmt.Errorf("set prototype: %w", ErrFrozenObject)
	}
	for cur := proto; cur != nil; cur = cur.proto {
		if cur == o {
			return ErrPrototypeCycle
		}
	}
	o.proto = proto
	return nil
}

// Resolve looks name up like Get and also reports the chain object that
// supplied the value.
func (o *Object) Resolve(name string) (Value, *Object, bool) {
	for cur := o; cur != nil; cur = cur.proto {
		if v, ok := cur.properties[name]; ok {
			return v, cur, true
		}
	}
	return nil, nil, false
}

// IsPrototypeOf reports whether the receiver appears in other's delegation
// chain. An object is not a prototype of itself.
func (o *Object) IsPrototypeOf(other *Object) bool {
	if other == nil {
		return false
	}
	for cur := other.proto; cur != nil; cur = cur.proto {
		if cur == o {
			return true
		}
	}
	return false
}

// Call resolves name through the chain and invokes it as a method with
// self bound to the receiver, regardless of which chain object supplied
// the member.
func (o *Object) Call(name string, args ...Value) (Value, error) {
	v, ok := o.Get(name)
	if !ok {
		return nil, fmt.Errorf("member not found: %s", name)
	}
	fn, ok := v.(*Builtin)
	if !ok {
		return nil, fmt.Errorf("not callable: %s (%s)", name, v.Type())
	}
	return fn.Fn(o, args...)
}

// Freeze makes the object immutable: Set, Delete and SetPrototype fail
// afterwards. Freezing is permanent.
func (o *Object) Freeze() {
	o.frozen = true
}

// Frozen reports whether the object has been frozen.
func (o *Object) Frozen() bool {
	return o.frozen
}
