package object

import (
	"github.com/deepnoodle-ai/composite/shape"
)

// literalOf converts an initializer into a literal for a container with the
// given number of levels. Below the last level every value is an element,
// whatever its type; above it only lists, sparse initializers and arrays of
// the matching depth are accepted.
func literalOf(obj Object, levels int) (shape.Literal[Object], error) {
	if levels == 0 {
		return shape.Leaf(obj), nil
	}
	switch obj := obj.(type) {
	case *List:
		items := make([]shape.Literal[Object], len(obj.items))
		for i, item := range obj.items {
			lit, err := literalOf(item, levels-1)
			if err != nil {
				return shape.Literal[Object]{}, err
			}
			items[i] = lit
		}
		return shape.Seq(items...), nil
	case *Sparse:
		entries := make(map[int]shape.Literal[Object], len(obj.entries))
		for k, v := range obj.entries {
			lit, err := literalOf(v, levels-1)
			if err != nil {
				return shape.Literal[Object]{}, err
			}
			entries[int(k)] = lit
		}
		return shape.Sparse(entries), nil
	case *Array:
		if obj.value.Dims().Depth() != levels {
			return shape.Literal[Object]{}, ShapeErrorf(
				"array of shape %s cannot initialize %d levels", obj.value.Dims(), levels)
		}
		return obj.value.Literal(), nil
	case *Slice:
		if levels != 1 {
			return shape.Literal[Object]{}, ShapeErrorf("slice cannot initialize %d levels", levels)
		}
		return shape.Values(obj.value.Get()...), nil
	default:
		return shape.Literal[Object]{}, TypeErrorf(
			"expected a list or sparse initializer (%s given)", obj.Type())
	}
}

// nestedList returns the nested list view of row-major leaves.
func nestedList(dims shape.Dims, leaves []Object) Object {
	if len(dims) == 0 {
		if len(leaves) == 0 {
			return Nil
		}
		return leaves[0]
	}
	inner := dims.Inner()
	step := inner.Size()
	items := make([]Object, dims[0])
	for i := range items {
		items[i] = nestedList(inner, leaves[i*step:(i+1)*step])
	}
	return NewList(items)
}
