package object

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/composite"
	"github.com/deepnoodle-ai/composite/op"
)

var sliceAttrs = NewAttrRegistry[*Slice]("slice")

func init() {
	sliceAttrs.Define("get").
		Doc("The visible elements, sharing the backing store").
		Returns("list").
		Impl(func(s *Slice, ctx context.Context, args ...Object) (Object, error) {
			return s.Get(), nil
		})

	sliceAttrs.Define("set").
		Doc("Re-slice over src[low:high], replacing the bounds of this slice").
		Args("src", "low", "high").
		Returns("slice").
		Impl(func(s *Slice, ctx context.Context, args ...Object) (Object, error) {
			low, err := AsInt(args[1])
			if err != nil {
				return nil, err
			}
			high, err := AsInt(args[2])
			if err != nil {
				return nil, err
			}
			if err := s.Set(args[0], int(low), int(high)); err != nil {
				return nil, err
			}
			return s, nil
		})

	sliceAttrs.Define("len").
		Doc("Number of visible elements").
		Returns("int").
		Impl(func(s *Slice, ctx context.Context, args ...Object) (Object, error) {
			return NewInt(int64(s.value.Len())), nil
		})

	sliceAttrs.Define("cap").
		Doc("Capacity").
		Returns("int").
		Impl(func(s *Slice, ctx context.Context, args ...Object) (Object, error) {
			return NewInt(int64(s.value.Cap())), nil
		})

	sliceAttrs.Define("str").
		Doc("Concatenation of the elements").
		Returns("string").
		Impl(func(s *Slice, ctx context.Context, args ...Object) (Object, error) {
			return NewString(s.value.Str()), nil
		})

	sliceAttrs.Define("kind").
		Doc("The kind tag of the value").
		Returns("int").
		Impl(func(s *Slice, ctx context.Context, args ...Object) (Object, error) {
			return NewInt(int64(composite.SliceKind)), nil
		})

	sliceAttrs.Define("is_nil").
		Doc("Whether this is a nil slice").
		Returns("bool").
		Impl(func(s *Slice, ctx context.Context, args ...Object) (Object, error) {
			return NewBool(s.value.IsNil()), nil
		})

	sliceAttrs.Define("append").
		Doc("Slice extended by the given values").
		VariadicArg("values").
		Returns("slice").
		Impl(func(s *Slice, ctx context.Context, args ...Object) (Object, error) {
			return &Slice{value: s.value.Append(args...)}, nil
		})
}

// Slice is a window over a shared backing store of objects.
type Slice struct {
	value *composite.Slice[Object]
}

func (s *Slice) Attrs() []AttrSpec {
	return sliceAttrs.Specs()
}

func (s *Slice) GetAttr(name string) (Object, bool) {
	return sliceAttrs.GetAttr(s, name)
}

func (s *Slice) SetAttr(name string, value Object) error {
	return TypeErrorf("slice has no attribute %q", name)
}

func (s *Slice) Type() Type {
	return SLICE
}

func (s *Slice) Value() *composite.Slice[Object] {
	return s.value
}

// Get returns a list over the visible elements. Item assignment on the list
// writes through to the backing store.
func (s *Slice) Get() *List {
	return NewList(s.value.Get())
}

// Set re-slices s over src, which must be an array or a slice.
func (s *Slice) Set(src Object, low, high int) error {
	switch src := src.(type) {
	case *Array:
		return s.value.Set(src.value, low, high)
	case *Slice:
		return s.value.Set(src.value, low, high)
	default:
		return TypeErrorf("cannot slice %s", src.Type())
	}
}

func (s *Slice) Inspect() string {
	if s.value.IsNil() {
		return "slice(nil)"
	}
	return fmt.Sprintf("slice(%s)", inspectItems(s.value.Get()))
}

func (s *Slice) String() string {
	return s.Inspect()
}

// Interface returns the elements as Go values; a nil slice gives nil.
func (s *Slice) Interface() interface{} {
	if s.value.IsNil() {
		return nil
	}
	items := make([]interface{}, 0, s.value.Len())
	for _, item := range s.value.Get() {
		items = append(items, item.Interface())
	}
	return items
}

// Equals reports whether other is the same slice header. Go slices are not
// comparable by value, so two distinct headers over equal elements differ.
func (s *Slice) Equals(other Object) bool {
	otherSlice, ok := other.(*Slice)
	if !ok {
		return false
	}
	if s.value.IsNil() || otherSlice.value.IsNil() {
		return s.value.IsNil() && otherSlice.value.IsNil()
	}
	return s.value.Store() == otherSlice.value.Store() &&
		s.value.Offset() == otherSlice.value.Offset() &&
		s.value.Len() == otherSlice.value.Len() &&
		s.value.Cap() == otherSlice.value.Cap()
}

func (s *Slice) IsTruthy() bool {
	return !s.value.IsNil()
}

func (s *Slice) GetItem(key Object) (Object, *Error) {
	idx, err := indexArg(key, s.value.Len())
	if err != nil {
		return nil, err
	}
	obj, goErr := s.value.At(idx)
	if goErr != nil {
		return nil, NewError(goErr)
	}
	return obj, nil
}

func (s *Slice) SetItem(key, value Object) *Error {
	idx, err := indexArg(key, s.value.Len())
	if err != nil {
		return err
	}
	if goErr := s.value.Put(idx, value); goErr != nil {
		return NewError(goErr)
	}
	return nil
}

func (s *Slice) Len() *Int {
	return NewInt(int64(s.value.Len()))
}

func (s *Slice) RunOperation(opType op.BinaryOpType, right Object) (Object, error) {
	return nil, TypeErrorf("unsupported operation for slice: %v on type %s", opType, right.Type())
}

// NewSlice wraps a composite slice.
func NewSlice(value *composite.Slice[Object]) *Slice {
	return &Slice{value: value}
}
