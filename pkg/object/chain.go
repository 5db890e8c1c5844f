package object

// InstanceOf reports whether c's current prototype object appears in v's
// delegation chain. The check looks at the prototype object, not the
// constructor property, so relinking a constructor orphans the instances
// made before the relink.
func InstanceOf(v Value, c *Constructor) bool {
	o, ok := v.(*Object)
	if !ok || c == nil {
		return false
	}
	target := c.Prototype()
	if target == nil {
		return false
	}
	for cur := o.proto; cur != nil; cur = cur.proto {
		if cur == target {
			return true
		}
	}
	return false
}

// Base returns the constructor whose prototype sits one delegation hop
// above c's own prototype, resolved through that prototype's constructor
// identity. It reports false for unlinked constructors and for chains
// whose next hop carries no constructor identity.
func Base(c *Constructor) (*Constructor, bool) {
	if c == nil || c.Prototype() == nil {
		return nil, false
	}
	next := c.Prototype().Prototype()
	if next == nil {
		return nil, false
	}
	return ConstructorOf(next)
}

// ConstructorOf performs the explicit constructor-identity read: it
// resolves the constructor property through o's delegation chain and
// reports the constructor it points at, if any.
func ConstructorOf(o *Object) (*Constructor, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.Get(ConstructorKey)
	if !ok {
		return nil, false
	}
	c, ok := v.(*Constructor)
	if !ok {
		return nil, false
	}
	return c, true
}
