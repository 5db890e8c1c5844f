package object

import (
	"fmt"
	"math"
	"reflect"
)

// FromGo converts a Go value into its object form. Scalars only: the
// object model has no list or map values, so slices, maps, structs
// and pointers are rejected rather than guessed at. A Value passes
// through unchanged.
func FromGo(val any) (Value, error) {
	if val == nil {
		return &Nil{}, nil
	}
	if obj, ok := val.(Value); ok {
		return obj, nil
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return &Boolean{Value: v.Bool()}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &Integer{Value: v.Int()}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Uint() > math.MaxInt64 {
			return nil, fmt.Errorf("integer out of range: %d", v.Uint())
		}
		return &Integer{Value: int64(v.Uint())}, nil
	case reflect.Float32, reflect.Float64:
		return &Float{Value: v.Float()}, nil
	case reflect.String:
		return &String{Value: v.String()}, nil
	default:
		return nil, fmt.Errorf("unsupported value %v (%T), want a scalar", val, val)
	}
}

// ToGo converts a scalar object value back into its Go form. Objects,
// constructors and builtins carry identity that a plain Go value
// cannot, so they are rejected.
func ToGo(val Value) (any, error) {
	if val == nil {
		return nil, nil
	}
	switch o := val.(type) {
	case *Nil:
		return nil, nil
	case *Boolean:
		return o.Value, nil
	case *Integer:
		return o.Value, nil
	case *Float:
		return o.Value, nil
	case *String:
		return o.Value, nil
	default:
		return nil, fmt.Errorf("no Go form for %s value", val.Type())
	}
}
