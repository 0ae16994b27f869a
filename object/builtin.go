package object

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/composite/op"
)

var _ Callable = (*Builtin)(nil)

// BuiltinFunction holds the type of a built-in function.
type BuiltinFunction func(ctx context.Context, args ...Object) (Object, error)

// Builtin wraps func and implements Object interface.
type Builtin struct {
	// The function that this object wraps.
	fn BuiltinFunction

	// The name of the function.
	name string

	// The module the function originates from (optional).
	module *Module

	// Optional documentation shown by introspection tools.
	spec *FuncSpec
}

func (b *Builtin) Attrs() []AttrSpec {
	return nil
}

func (b *Builtin) SetAttr(name string, value Object) error {
	return TypeErrorf("builtin has no attribute %q", name)
}

func (b *Builtin) IsTruthy() bool {
	return true
}

func (b *Builtin) Type() Type {
	return BUILTIN
}

func (b *Builtin) Value() BuiltinFunction {
	return b.fn
}

func (b *Builtin) Interface() interface{} {
	return nil
}

func (b *Builtin) Call(ctx context.Context, args ...Object) (Object, error) {
	return b.fn(ctx, args...)
}

func (b *Builtin) Inspect() string {
	return fmt.Sprintf("builtin(%s)", b.Key())
}

func (b *Builtin) String() string {
	return b.Inspect()
}

func (b *Builtin) Name() string {
	return b.name
}

// Spec returns the documentation of the builtin, if any.
func (b *Builtin) Spec() (FuncSpec, bool) {
	if b.spec == nil {
		return FuncSpec{}, false
	}
	return *b.spec, true
}

func (b *Builtin) GetAttr(name string) (Object, bool) {
	switch name {
	case "__name__":
		return NewString(b.Key()), true
	case "__module__":
		if b.module != nil {
			return b.module, true
		}
		return Nil, true
	}
	return nil, false
}

// Key returns a string that uniquely identifies this builtin function.
func (b *Builtin) Key() string {
	if b.module == nil {
		return b.name
	}
	return fmt.Sprintf("%s.%s", b.module.name, b.name)
}

func (b *Builtin) Equals(other Object) bool {
	otherBuiltin, ok := other.(*Builtin)
	if !ok {
		return false
	}
	return b == otherBuiltin
}

func (b *Builtin) RunOperation(opType op.BinaryOpType, right Object) (Object, error) {
	return nil, TypeErrorf("unsupported operation for builtin: %v", opType)
}

// NewBuiltin creates a new builtin function with the given name and function.
func NewBuiltin(name string, fn BuiltinFunction) *Builtin {
	return &Builtin{fn: fn, name: name}
}

// WithSpec attaches documentation to the builtin.
func (b *Builtin) WithSpec(spec FuncSpec) *Builtin {
	spec.Name = b.name
	b.spec = &spec
	return b
}
