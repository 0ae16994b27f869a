package object

import (
	"context"
	"fmt"
	"slices"

	"github.com/deepnoodle-ai/composite/errors"
)

// AttrDef combines an attribute's specification with its implementation.
// It supports both properties (direct value access) and methods (callable).
type AttrDef[T any] struct {
	Spec       AttrSpec
	IsProperty bool
	MinArgs    int
	// For methods:
	MethodImpl func(self T, ctx context.Context, args ...Object) (Object, error)
	// For properties:
	PropertyImpl func(self T) Object
}

// AttrRegistry holds all attributes (properties and methods) for a given
// object type.
type AttrRegistry[T any] struct {
	typeName string
	attrs    map[string]AttrDef[T]
	specs    []AttrSpec
}

// AttrBuilder provides a fluent API for defining a single attribute.
type AttrBuilder[T any] struct {
	registry    *AttrRegistry[T]
	name        string
	doc         string
	args        []string
	optionalIdx int // 1-based index where optional args start, 0 if none
	variadic    bool
	returns     string
}

// NewAttrRegistry creates a registry for the given type name.
func NewAttrRegistry[T any](typeName string) *AttrRegistry[T] {
	return &AttrRegistry[T]{
		typeName: typeName,
		attrs:    make(map[string]AttrDef[T]),
	}
}

// Define starts building a new attribute definition.
func (r *AttrRegistry[T]) Define(name string) *AttrBuilder[T] {
	return &AttrBuilder[T]{
		registry: r,
		name:     name,
	}
}

// Specs returns a copy of all registered attribute specifications in
// registration order.
func (r *AttrRegistry[T]) Specs() []AttrSpec {
	return slices.Clone(r.specs)
}

// GetAttr returns the named attribute bound to self.
// For properties, returns the value directly.
// For methods, returns a Builtin wrapper that validates the argument count.
func (r *AttrRegistry[T]) GetAttr(self T, name string) (Object, bool) {
	attr, ok := r.attrs[name]
	if !ok {
		return nil, false
	}

	if attr.IsProperty {
		return attr.PropertyImpl(self), true
	}

	minArgs := attr.MinArgs
	maxArgs := len(attr.Spec.Args)
	if attr.Spec.Variadic {
		maxArgs = -1
	}
	fullName := r.typeName + "." + name
	return &Builtin{
		name: fullName,
		fn: func(ctx context.Context, args ...Object) (Object, error) {
			if len(args) < minArgs || (maxArgs >= 0 && len(args) > maxArgs) {
				return nil, argsRangeError(fullName, minArgs, maxArgs, len(args))
			}
			return attr.MethodImpl(self, ctx, args...)
		},
	}, true
}

// Doc sets the attribute's documentation string.
func (b *AttrBuilder[T]) Doc(doc string) *AttrBuilder[T] {
	b.doc = doc
	return b
}

// Arg adds a required argument by name (for methods).
func (b *AttrBuilder[T]) Arg(name string) *AttrBuilder[T] {
	b.args = append(b.args, name)
	return b
}

// Args adds multiple required arguments (for methods).
func (b *AttrBuilder[T]) Args(names ...string) *AttrBuilder[T] {
	b.args = append(b.args, names...)
	return b
}

// OptionalArg adds an optional argument by name (for methods).
// Optional args must come after all required args.
func (b *AttrBuilder[T]) OptionalArg(name string) *AttrBuilder[T] {
	if b.optionalIdx == 0 {
		b.optionalIdx = len(b.args) + 1
	}
	b.args = append(b.args, name)
	return b
}

// VariadicArg adds a final argument that accepts zero or more values.
func (b *AttrBuilder[T]) VariadicArg(name string) *AttrBuilder[T] {
	b.OptionalArg(name)
	b.variadic = true
	return b
}

// Returns sets the return type (for documentation/tooling).
func (b *AttrBuilder[T]) Returns(typ string) *AttrBuilder[T] {
	b.returns = typ
	return b
}

// Impl sets the method implementation and registers the attribute.
// Panics if an attribute with the same name is already registered.
func (b *AttrBuilder[T]) Impl(fn func(T, context.Context, ...Object) (Object, error)) {
	r := b.registry
	if _, exists := r.attrs[b.name]; exists {
		panic(fmt.Sprintf("%s: attribute %q already registered", r.typeName, b.name))
	}
	spec := AttrSpec{
		Name:     b.name,
		Doc:      b.doc,
		Args:     b.args,
		Variadic: b.variadic,
		Returns:  b.returns,
	}
	minArgs := len(b.args)
	if b.optionalIdx > 0 {
		minArgs = b.optionalIdx - 1
	}
	r.attrs[b.name] = AttrDef[T]{Spec: spec, MinArgs: minArgs, MethodImpl: fn}
	r.specs = append(r.specs, spec)
}

// Getter sets the property getter and registers the attribute.
// Panics if an attribute with the same name is already registered.
func (b *AttrBuilder[T]) Getter(fn func(T) Object) {
	r := b.registry
	if _, exists := r.attrs[b.name]; exists {
		panic(fmt.Sprintf("%s: attribute %q already registered", r.typeName, b.name))
	}
	if len(b.args) > 0 {
		panic(fmt.Sprintf("%s: property %q cannot have arguments", r.typeName, b.name))
	}
	spec := AttrSpec{
		Name:    b.name,
		Doc:     b.doc,
		Returns: b.returns,
	}
	r.attrs[b.name] = AttrDef[T]{Spec: spec, IsProperty: true, PropertyImpl: fn}
	r.specs = append(r.specs, spec)
}

// argsRangeError returns a grammatically correct argument count error.
// A negative max means there is no upper bound.
func argsRangeError(methodName string, min, max, got int) error {
	switch {
	case max < 0:
		return errors.ArgsErrorf("%s() takes at least %d arguments (%d given)", methodName, min, got)
	case min == max && min == 1:
		return errors.ArgsErrorf("%s() takes exactly 1 argument (%d given)", methodName, got)
	case min == max:
		return errors.ArgsErrorf("%s() takes exactly %d arguments (%d given)", methodName, min, got)
	default:
		return errors.ArgsErrorf("%s() takes %d to %d arguments (%d given)", methodName, min, max, got)
	}
}

// Arg extracts and type-asserts an argument from the args slice.
func Arg[T Object](args []Object, index int, methodName string) (T, error) {
	var zero T
	if index >= len(args) {
		return zero, errors.ArgsErrorf("%s: missing argument at index %d", methodName, index)
	}
	v, ok := args[index].(T)
	if !ok {
		return zero, errors.TypeErrorf("%s: argument %d: expected %T, got %s",
			methodName, index, zero, args[index].Type())
	}
	return v, nil
}

// NewMethodRegistry creates a registry for the given type name.
func NewMethodRegistry[T any](typeName string) *AttrRegistry[T] {
	return NewAttrRegistry[T](typeName)
}
