package object

import (
	"context"

	"github.com/deepnoodle-ai/composite"
	"github.com/deepnoodle-ai/composite/op"
	"github.com/deepnoodle-ai/composite/shape"
)

var arrayAttrs = NewAttrRegistry[*Array]("array")

func init() {
	arrayAttrs.Define("len").
		Doc("Length at depth 0, or at the given depth").
		OptionalArg("dim").
		Returns("int").
		Impl(func(a *Array, ctx context.Context, args ...Object) (Object, error) {
			dim, err := optionalDim(args)
			if err != nil {
				return nil, err
			}
			return NewInt(int64(a.value.Len(dim...))), nil
		})

	arrayAttrs.Define("cap").
		Doc("Capacity at depth 0, or at the given depth; always equal to len").
		OptionalArg("dim").
		Returns("int").
		Impl(func(a *Array, ctx context.Context, args ...Object) (Object, error) {
			dim, err := optionalDim(args)
			if err != nil {
				return nil, err
			}
			return NewInt(int64(a.value.Cap(dim...))), nil
		})

	arrayAttrs.Define("kind").
		Doc("The kind tag of the value").
		Returns("int").
		Impl(func(a *Array, ctx context.Context, args ...Object) (Object, error) {
			return NewInt(int64(composite.ArrayKind)), nil
		})

	arrayAttrs.Define("at").
		Doc("Element or sub-array at the given index").
		VariadicArg("index").
		Returns("any").
		Impl(func(a *Array, ctx context.Context, args ...Object) (Object, error) {
			index, err := intArgs(args)
			if err != nil {
				return nil, err
			}
			return a.At(index...)
		})

	arrayAttrs.Define("put").
		Doc("Store value at the given full index").
		Arg("value").
		VariadicArg("index").
		Returns("nil").
		Impl(func(a *Array, ctx context.Context, args ...Object) (Object, error) {
			index, err := intArgs(args[1:])
			if err != nil {
				return nil, err
			}
			if err := a.value.Put(args[0], index...); err != nil {
				return nil, err
			}
			return Nil, nil
		})

	arrayAttrs.Define("copy").
		Doc("Independent array with the same shape and contents").
		Returns("array").
		Impl(func(a *Array, ctx context.Context, args ...Object) (Object, error) {
			return a.Copy(), nil
		})
}

// Array is a fixed-shape array of objects.
type Array struct {
	value *composite.Array[Object]
}

func (a *Array) Attrs() []AttrSpec {
	return arrayAttrs.Specs()
}

func (a *Array) GetAttr(name string) (Object, bool) {
	return arrayAttrs.GetAttr(a, name)
}

func (a *Array) SetAttr(name string, value Object) error {
	return TypeErrorf("array has no attribute %q", name)
}

func (a *Array) Type() Type {
	return ARRAY
}

func (a *Array) Value() *composite.Array[Object] {
	return a.value
}

// At returns the element at a full index, or the sub-array selected by an
// index prefix. Sub-arrays share storage with a.
func (a *Array) At(index ...int) (Object, error) {
	if len(index) == a.value.Dims().Depth() {
		return a.value.At(index...)
	}
	sub, err := a.value.Sub(index...)
	if err != nil {
		return nil, err
	}
	return &Array{value: sub}, nil
}

// Copy returns an independent array, as assignment of a Go array does.
func (a *Array) Copy() *Array {
	return &Array{value: a.value.Copy()}
}

// List returns the nested list view of the array's current contents.
func (a *Array) List() Object {
	return nestedList(a.value.Dims(), a.value.Elems())
}

func (a *Array) Inspect() string {
	return a.List().Inspect()
}

func (a *Array) String() string {
	return a.Inspect()
}

func (a *Array) Interface() interface{} {
	return a.List().Interface()
}

// Equals reports whether other is an array of the same shape with equal
// elements.
func (a *Array) Equals(other Object) bool {
	otherArray, ok := other.(*Array)
	if !ok {
		return false
	}
	return a.value.EqualFunc(otherArray.value, Equals)
}

func (a *Array) IsTruthy() bool {
	return true
}

func (a *Array) GetItem(key Object) (Object, *Error) {
	idx, err := indexArg(key, a.value.Len())
	if err != nil {
		return nil, err
	}
	obj, goErr := a.At(idx)
	if goErr != nil {
		return nil, NewError(goErr)
	}
	return obj, nil
}

// SetItem stores value at key. On arrays of more than one dimension the
// value must be an array or list matching the row shape, and is copied in.
func (a *Array) SetItem(key, value Object) *Error {
	idx, err := indexArg(key, a.value.Len())
	if err != nil {
		return err
	}
	dims := a.value.Dims()
	if dims.Depth() == 1 {
		if goErr := a.value.Put(value, idx); goErr != nil {
			return NewError(goErr)
		}
		return nil
	}
	row, goErr := a.value.Sub(idx)
	if goErr != nil {
		return NewError(goErr)
	}
	lit, goErr := literalOf(value, dims.Depth()-1)
	if goErr != nil {
		return NewError(goErr)
	}
	leaves := shape.Fill(row.Dims(), row.Zero())
	if goErr := shape.Merge(leaves, row.Dims(), lit); goErr != nil {
		return NewError(goErr)
	}
	copy(row.Elems(), leaves)
	return nil
}

// Len returns the length at depth 0.
func (a *Array) Len() *Int {
	return NewInt(int64(a.value.Len()))
}

func (a *Array) RunOperation(opType op.BinaryOpType, right Object) (Object, error) {
	return nil, TypeErrorf("unsupported operation for array: %v on type %s", opType, right.Type())
}

// NewArray wraps a composite array.
func NewArray(value *composite.Array[Object]) *Array {
	return &Array{value: value}
}

// MakeArray builds an array of the given shape. A nil init yields a
// zero-filled array.
func MakeArray(dims shape.Dims, zero Object, init Object) (*Array, error) {
	if init == nil {
		value, err := composite.NewArray(dims, zero)
		if err != nil {
			return nil, err
		}
		return &Array{value: value}, nil
	}
	lit, err := literalOf(init, dims.Depth())
	if err != nil {
		return nil, err
	}
	value, err := composite.ArrayOf(dims, zero, lit)
	if err != nil {
		return nil, err
	}
	return &Array{value: value}, nil
}

func optionalDim(args []Object) ([]int, error) {
	if len(args) == 0 {
		return nil, nil
	}
	dim, err := AsInt(args[0])
	if err != nil {
		return nil, err
	}
	return []int{int(dim)}, nil
}

func intArgs(args []Object) ([]int, error) {
	out := make([]int, len(args))
	for i, arg := range args {
		v, err := AsInt(arg)
		if err != nil {
			return nil, err
		}
		out[i] = int(v)
	}
	return out, nil
}
