package object

import (
	"fmt"
	"sort"
	"strings"

	"github.com/deepnoodle-ai/composite/op"
)

// Sparse is a keyed initializer such as {1: a, 3: b}. Positions it does not
// name are filled with the container's zero value.
type Sparse struct {
	entries map[int64]Object
}

func (s *Sparse) Attrs() []AttrSpec {
	return nil
}

func (s *Sparse) GetAttr(name string) (Object, bool) {
	return nil, false
}

func (s *Sparse) SetAttr(name string, value Object) error {
	return TypeErrorf("sparse has no attribute %q", name)
}

func (s *Sparse) Type() Type {
	return SPARSE
}

// Keys returns the positions named by the initializer in ascending order.
func (s *Sparse) Keys() []int64 {
	keys := make([]int64, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Value returns the live entries.
func (s *Sparse) Value() map[int64]Object {
	return s.entries
}

func (s *Sparse) Inspect() string {
	parts := make([]string, 0, len(s.entries))
	for _, k := range s.Keys() {
		parts = append(parts, fmt.Sprintf("%d: %s", k, s.entries[k].Inspect()))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (s *Sparse) String() string {
	return s.Inspect()
}

func (s *Sparse) Interface() interface{} {
	out := make(map[int64]interface{}, len(s.entries))
	for k, v := range s.entries {
		out[k] = v.Interface()
	}
	return out
}

func (s *Sparse) Equals(other Object) bool {
	otherSparse, ok := other.(*Sparse)
	if !ok || len(s.entries) != len(otherSparse.entries) {
		return false
	}
	for k, v := range s.entries {
		if !Equals(v, otherSparse.entries[k]) {
			return false
		}
	}
	return true
}

func (s *Sparse) IsTruthy() bool {
	return len(s.entries) > 0
}

func (s *Sparse) RunOperation(opType op.BinaryOpType, right Object) (Object, error) {
	return nil, TypeErrorf("unsupported operation for sparse: %v on type %s", opType, right.Type())
}

func NewSparse(entries map[int64]Object) *Sparse {
	if entries == nil {
		entries = map[int64]Object{}
	}
	return &Sparse{entries: entries}
}
