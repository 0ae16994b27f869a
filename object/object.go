// Package object provides the dynamic object model through which host code
// uses composite values.
//
// Every value seen by host code is an Object. Arrays, slices and maps are
// thin wrappers around the generic containers of the composite package,
// holding Objects as elements. Their instance operations (get, set, len, cap
// and so on) are attributes resolved with GetAttr, and their constructors are
// builtins of the runtime module returned by Runtime.
//
// For example:
//
//	switch obj := obj.(type) {
//	case *object.Slice:
//		// do something with obj.Value()
//	case *object.Array:
//		// do something with obj.Value()
//	}
//
// The Type() method of each object may also be used to get a string
// name of the object type, such as "slice" or "array".
package object

import (
	"context"
	"sort"

	"github.com/deepnoodle-ai/composite/errors"
	"github.com/deepnoodle-ai/composite/op"
)

// Type of an object as a string.
type Type string

// Type constants
const (
	ARRAY   Type = "array"
	BOOL    Type = "bool"
	BUILTIN Type = "builtin"
	ERROR   Type = "error"
	FLOAT   Type = "float"
	INT     Type = "int"
	LIST    Type = "list"
	MAP     Type = "map"
	MODULE  Type = "module"
	NIL     Type = "nil"
	SLICE   Type = "slice"
	SPARSE  Type = "sparse"
	STRING  Type = "string"
)

var (
	Nil   = &NilType{}
	True  = &Bool{value: true}
	False = &Bool{value: false}
)

// Object is the interface that all object types must implement.
type Object interface {
	// Type of the object.
	Type() Type

	// Inspect returns a string representation of the given object.
	Inspect() string

	// Interface converts the given object to a native Go value.
	Interface() interface{}

	// Returns true if the given object is equal to this object.
	Equals(other Object) bool

	// Attrs returns the attribute specifications for this object type.
	// Returns nil for types with no attributes.
	Attrs() []AttrSpec

	// GetAttr returns the attribute with the given name from this object.
	GetAttr(name string) (Object, bool)

	// SetAttr sets the attribute with the given name on this object.
	SetAttr(name string, value Object) error

	// IsTruthy returns true if the object is considered "truthy".
	IsTruthy() bool

	// RunOperation runs an operation on this object with the given
	// right-hand side object.
	RunOperation(opType op.BinaryOpType, right Object) (Object, error)
}

// Container is implemented by objects that support indexing.
type Container interface {
	// GetItem implements the [key] operator for a container type.
	GetItem(key Object) (Object, *Error)

	// SetItem implements the [key] = value operator for a container type.
	SetItem(key, value Object) *Error

	// Len returns the number of items in this container.
	Len() *Int
}

// Callable is an interface for objects that can be invoked as functions.
type Callable interface {
	// Call invokes the callable with the given arguments and returns the result.
	Call(ctx context.Context, args ...Object) (Object, error)
}

// Comparable is an interface used to compare two objects.
//
//	-1 if this < other
//	 0 if this == other
//	 1 if this > other
type Comparable interface {
	Compare(other Object) (int, error)
}

// Keys returns the keys of an object map as a sorted slice of strings.
func Keys(m map[string]Object) []string {
	var names []string
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// TypeErrorf returns an Error object containing a type error.
func TypeErrorf(format string, args ...interface{}) *Error {
	return NewError(errors.TypeErrorf(format, args...))
}

// ArgsErrorf returns an Error object containing an arguments error.
func ArgsErrorf(format string, args ...interface{}) *Error {
	return NewError(errors.ArgsErrorf(format, args...))
}

// IndexErrorf returns an Error object containing an index error.
func IndexErrorf(format string, args ...interface{}) *Error {
	return NewError(errors.IndexErrorf(format, args...))
}

// ShapeErrorf returns an Error object containing a shape error.
func ShapeErrorf(format string, args ...interface{}) *Error {
	return NewError(errors.ShapeErrorf(format, args...))
}
