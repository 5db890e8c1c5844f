// Package object implements a prototype-based object model: plain values,
// delegating prototype objects, constructors, and the Extend operation that
// wires one constructor's prototype chain to inherit from another's.
//
// Property lookup walks the delegation chain at access time, so members
// added to a base prototype after linking stay visible through derived
// instances. Writes always land in the receiving object's own table and
// never travel up the chain.
package object

// ObjectType identifies the runtime kind of a Value.
type ObjectType string

const (
	NIL_OBJ         = "NIL"
	BOOLEAN_OBJ     = "BOOLEAN"
	INTEGER_OBJ     = "INTEGER"
	FLOAT_OBJ       = "FLOAT"
	STRING_OBJ      = "STRING"
	BUILTIN_OBJ     = "BUILTIN"
	OBJECT_OBJ      = "OBJECT"
	CONSTRUCTOR_OBJ = "CONSTRUCTOR"
)

// Value is implemented by everything that can live in a property table.
type Value interface {
	Type() ObjectType
	Inspect() string
}

// ConstructorKey is the conventional property name on a prototype object
// that points back at the constructor whose instances delegate to it.
const ConstructorKey = "constructor"
