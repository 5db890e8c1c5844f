package object

// MethodFunc is the signature of native methods attachable to prototype
// objects. self is the instance the call was made on, which may sit any
// number of delegation hops below the prototype that supplied the method.
type MethodFunc func(self *Object, args ...Value) (Value, error)

// Builtin wraps a native Go function as a property value.
type Builtin struct {
	Fn   MethodFunc
	Name string
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "builtin " + b.Name }
