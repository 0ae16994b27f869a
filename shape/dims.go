// Package shape provides dimension vectors and nested initializer literals
// for fixed-shape arrays.
//
// A Dims value lists the length of each nesting level of an array, outermost
// first: the Go type [2][4]int has the dimension vector [2 4]. Leaves are
// stored in row-major order, so a Dims value also maps a multi-level index to
// a flat offset.
package shape

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/deepnoodle-ai/composite/errors"
)

// Dims is a dimension vector.
type Dims []int

// Of returns the dimension vector with the given sizes.
func Of(sizes ...int) Dims {
	return Dims(sizes)
}

// Depth returns the number of nesting levels.
func (d Dims) Depth() int {
	return len(d)
}

// At returns the length at the given nesting depth, or 0 if the depth is
// outside the vector.
func (d Dims) At(depth int) int {
	if depth < 0 || depth >= len(d) {
		return 0
	}
	return d[depth]
}

// Size returns the number of leaves. An empty vector describes a scalar and
// has size 1.
func (d Dims) Size() int {
	size := 1
	for _, n := range d {
		size *= n
	}
	return size
}

// Inner returns the dimension vector of one element at depth 0.
func (d Dims) Inner() Dims {
	if len(d) == 0 {
		return nil
	}
	return d[1:]
}

// Clone returns a copy that does not share storage with d.
func (d Dims) Clone() Dims {
	if d == nil {
		return nil
	}
	out := make(Dims, len(d))
	copy(out, d)
	return out
}

// Equal reports whether both vectors have the same length and are equal
// element-wise.
func (d Dims) Equal(other Dims) bool {
	if len(d) != len(other) {
		return false
	}
	for i, n := range d {
		if other[i] != n {
			return false
		}
	}
	return true
}

// MaxSize is the largest number of leaves a shape may describe.
const MaxSize = 1 << 28

// Validate returns a shape error for every negative entry, and for a shape
// holding more than MaxSize leaves.
func (d Dims) Validate() error {
	var result *multierror.Error
	empty := false
	for i, n := range d {
		if n < 0 {
			result = multierror.Append(result,
				errors.ShapeErrorf("negative length %d at depth %d", n, i))
		}
		if n == 0 {
			empty = true
		}
	}
	if result == nil && !empty {
		size := 1
		for _, n := range d {
			if n > MaxSize/size {
				return errors.ShapeErrorf("shape %s exceeds %d elements", d, MaxSize)
			}
			size *= n
		}
	}
	return flatten(result)
}

// Strides returns, for each depth, the number of leaves spanned by one step
// of the index at that depth.
func (d Dims) Strides() []int {
	strides := make([]int, len(d))
	step := 1
	for i := len(d) - 1; i >= 0; i-- {
		strides[i] = step
		step *= d[i]
	}
	return strides
}

// Offset converts a multi-level index into a flat row-major offset. A prefix
// index addresses the first leaf of the sub-block it selects.
func (d Dims) Offset(index ...int) (int, error) {
	if len(index) > len(d) {
		return 0, errors.IndexErrorf("index has %d levels, shape %s has %d",
			len(index), d, len(d))
	}
	strides := d.Strides()
	offset := 0
	for i, idx := range index {
		if idx < 0 || idx >= d[i] {
			return 0, errors.IndexErrorf("index %d out of range [0:%d] at depth %d",
				idx, d[i], i)
		}
		offset += idx * strides[i]
	}
	return offset, nil
}

// String returns the vector in Go array type notation, for example "[2][4]".
func (d Dims) String() string {
	var b strings.Builder
	for _, n := range d {
		fmt.Fprintf(&b, "[%d]", n)
	}
	return b.String()
}

// flatten unwraps a multierror holding a single error so that callers see the
// typed error directly.
func flatten(result *multierror.Error) error {
	if result == nil {
		return nil
	}
	if len(result.Errors) == 1 {
		return result.Errors[0]
	}
	return result.ErrorOrNil()
}
