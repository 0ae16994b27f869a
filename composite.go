// Package composite reproduces Go's composite value semantics for code that
// runs on top of a dynamically-typed object model.
//
// Three value kinds are provided:
//
//   - Array: a fixed-shape, possibly multi-dimensional container whose shape
//     is described by a shape.Dims vector. Every leaf is populated, either
//     from an initializer literal or with the declared zero value.
//   - Slice: a window of offset, length and capacity over a shared backing
//     Store. Slices built over the same array or re-sliced from one another
//     alias the same elements, so a write through one is visible through all.
//   - Map: a keyed container with a fixed zero value returned for absent keys
//     and multi-level lookup for maps of maps.
//
// Each value reports its Kind so that host code can inspect it without type
// switches. The package performs no I/O and is not safe for concurrent
// mutation; callers provide their own synchronization if they share values
// across goroutines.
package composite

import "fmt"

// Kind identifies the composite kind of a value. The numeric values are
// stable and match the tags used by generated code.
type Kind int

const (
	Invalid Kind = iota
	ArrayKind
	MapKind
	SliceKind
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case ArrayKind:
		return "array"
	case MapKind:
		return "map"
	case SliceKind:
		return "slice"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is implemented by every composite value.
type Value interface {
	Kind() Kind
}

// KindOf returns the kind of v, or Invalid if v is not a composite value.
func KindOf(v any) Kind {
	if cv, ok := v.(Value); ok {
		return cv.Kind()
	}
	return Invalid
}
