package object

import "errors"

var (
	// ErrFrozenObject is returned by mutating operations on a frozen object.
	ErrFrozenObject = errors.New("object is frozen")

	// ErrPrototypeCycle is returned by SetPrototype when the new delegate's
	// chain already contains the receiver.
	ErrPrototypeCycle = errors.New("prototype chain cycle")
)
