package shape

import (
	"github.com/hashicorp/go-multierror"

	"github.com/deepnoodle-ai/composite/errors"
)

// Fill returns the row-major leaves of a container of the given shape with
// every leaf set to zero. An empty vector yields a single scalar leaf.
func Fill[V any](dims Dims, zero V) []V {
	leaves := make([]V, dims.Size())
	for i := range leaves {
		leaves[i] = zero
	}
	return leaves
}

// Nest returns the nested literal view of row-major leaves.
func Nest[V any](dims Dims, leaves []V) Literal[V] {
	if len(dims) == 0 {
		var zero V
		if len(leaves) == 0 {
			return Leaf(zero)
		}
		return Leaf(leaves[0])
	}
	inner := dims.Inner()
	step := inner.Size()
	items := make([]Literal[V], dims[0])
	for i := range items {
		items[i] = Nest(inner, leaves[i*step:(i+1)*step])
	}
	return Seq(items...)
}

// Flatten returns the row-major leaves of a dense literal that exactly
// matches the given shape. Every level must hold exactly the declared number
// of entries.
func Flatten[V any](dims Dims, lit Literal[V]) ([]V, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	leaves := make([]V, 0, dims.Size())
	var result *multierror.Error
	var walk func(l Literal[V], depth int, path []int)
	walk = func(l Literal[V], depth int, path []int) {
		if depth == len(dims) {
			if !l.leaf {
				result = multierror.Append(result,
					errors.ShapeErrorf("expected an element at %v, found a sequence", path))
				var zero V
				leaves = append(leaves, zero)
				return
			}
			leaves = append(leaves, l.value)
			return
		}
		if l.leaf {
			result = multierror.Append(result,
				errors.ShapeErrorf("expected a sequence of length %d at %v, found an element",
					dims[depth], path))
			var zero V
			for i := 0; i < Dims(dims[depth:]).Size(); i++ {
				leaves = append(leaves, zero)
			}
			return
		}
		if len(l.elems) != dims[depth] {
			result = multierror.Append(result,
				errors.ShapeErrorf("expected length %d at %v, found %d",
					dims[depth], path, len(l.elems)))
			return
		}
		for i, e := range l.elems {
			if e.Keyed {
				result = multierror.Append(result,
					errors.ShapeErrorf("keyed entry %d at %v in a dense literal", e.Key, path))
			}
			walk(e.Value, depth+1, append(path, i))
		}
	}
	walk(lit, 0, []int{})
	if err := flatten(result); err != nil {
		return nil, err
	}
	return leaves, nil
}

// Merge overlays a literal onto row-major leaves of the given shape, in
// place. Positional and keyed entries are written where they resolve; leaves
// the literal does not mention keep their current value.
func Merge[V any](dst []V, dims Dims, src Literal[V]) error {
	if err := dims.Validate(); err != nil {
		return err
	}
	if len(dst) != dims.Size() {
		return errors.ShapeErrorf("destination holds %d leaves, shape %s needs %d",
			len(dst), dims, dims.Size())
	}
	strides := dims.Strides()
	var result *multierror.Error
	var merge func(l Literal[V], depth, base int, path []int)
	merge = func(l Literal[V], depth, base int, path []int) {
		if depth == len(dims) {
			if !l.leaf {
				result = multierror.Append(result,
					errors.ShapeErrorf("expected an element at %v, found a sequence", path))
				return
			}
			dst[base] = l.value
			return
		}
		if l.leaf {
			result = multierror.Append(result,
				errors.ShapeErrorf("expected a sequence at %v, found an element", path))
			return
		}
		for i, pos := range l.Positions() {
			if pos < 0 || pos >= dims[depth] {
				result = multierror.Append(result,
					errors.IndexErrorf("position %d out of range [0:%d] at %v",
						pos, dims[depth], path))
				continue
			}
			merge(l.elems[i].Value, depth+1, base+pos*strides[depth], append(path, pos))
		}
	}
	merge(src, 0, 0, []int{})
	return flatten(result)
}
