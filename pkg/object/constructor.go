package object

import (
	"github.com/google/uuid"
)

// Constructor is a type descriptor: a named producer of instances carrying
// the writable prototype slot that Extend operates on. Constructors are
// themselves values, which is what lets a prototype's constructor property
// point back at one.
type Constructor struct {
	name  string
	id    uuid.UUID
	init  MethodFunc
	proto *Object
}

// NewConstructor creates a constructor with a fresh prototype object whose
// constructor property already points back at it, the same resting state
// Extend re-establishes after replacing the slot. init runs on every
// instance produced by New and may be nil.
func NewConstructor(name string, init MethodFunc) *Constructor {
	c := &Constructor{name: name, id: uuid.New(), init: init}
	proto := NewObject(nil)
	proto.properties[ConstructorKey] = c
	c.proto = proto
	return c
}

func (c *Constructor) Type() ObjectType { return CONSTRUCTOR_OBJ }
func (c *Constructor) Inspect() string  { return "constructor " + c.name }

// Name returns the constructor's declared name.
func (c *Constructor) Name() string { return c.name }

// ID returns the identity token assigned at creation. Names are chosen by
// callers and may collide; the token never does.
func (c *Constructor) ID() uuid.UUID { return c.id }

// Prototype returns the prototype slot's current object.
func (c *Constructor) Prototype() *Object { return c.proto }

// SetPrototype replaces the prototype slot wholesale. Instances created
// earlier keep delegating to the object the slot held when they were made.
func (c *Constructor) SetPrototype(proto *Object) {
	c.proto = proto
}

// New creates an instance delegating to the constructor's current
// prototype, then runs init (when set) with self bound to the instance.
func (c *Constructor) New(args ...Value) (*Object, error) {
	inst := NewObject(c.proto)
	if c.init != nil {
		if _, err := c.init(inst, args...); err != nil {
			return nil, err
		}
	}
	return inst, nil
}
