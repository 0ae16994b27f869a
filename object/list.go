package object

import (
	"bytes"
	"context"
	"strings"

	"github.com/deepnoodle-ai/composite/op"
)

var listMethods = NewMethodRegistry[*List]("list")

func init() {
	listMethods.Define("append").
		Doc("Add item to end of list").
		Arg("item").
		Returns("list").
		Impl(func(ls *List, ctx context.Context, args ...Object) (Object, error) {
			ls.Append(args[0])
			return ls, nil
		})

	listMethods.Define("copy").
		Doc("Create a shallow copy").
		Returns("list").
		Impl(func(ls *List, ctx context.Context, args ...Object) (Object, error) {
			return ls.Copy(), nil
		})

	listMethods.Define("count").
		Doc("Count occurrences of item").
		Arg("item").
		Returns("int").
		Impl(func(ls *List, ctx context.Context, args ...Object) (Object, error) {
			return NewInt(ls.Count(args[0])), nil
		})

	listMethods.Define("index").
		Doc("Find first index of item (-1 if not found)").
		Arg("item").
		Returns("int").
		Impl(func(ls *List, ctx context.Context, args ...Object) (Object, error) {
			return NewInt(ls.Index(args[0])), nil
		})
}

// List is a host sequence. It doubles as the dense form of an array or
// slice initializer.
type List struct {
	// items holds the list of objects
	items []Object

	// Used to avoid the possibility of infinite recursion when inspecting.
	inspectActive bool
}

func (ls *List) Attrs() []AttrSpec {
	return listMethods.Specs()
}

func (ls *List) GetAttr(name string) (Object, bool) {
	return listMethods.GetAttr(ls, name)
}

func (ls *List) SetAttr(name string, value Object) error {
	return TypeErrorf("list has no attribute %q", name)
}

func (ls *List) Type() Type {
	return LIST
}

func (ls *List) Value() []Object {
	return ls.items
}

func (ls *List) Inspect() string {
	// A list can contain itself. Detect if we're already inspecting the list
	// and return a placeholder if so.
	if ls.inspectActive {
		return "[...]"
	}
	ls.inspectActive = true
	defer func() { ls.inspectActive = false }()
	return inspectItems(ls.items)
}

// Append adds an item at the end of the list.
func (ls *List) Append(obj Object) {
	ls.items = append(ls.items, obj)
}

// Copy returns a shallow copy of the list.
func (ls *List) Copy() *List {
	result := &List{items: make([]Object, len(ls.items))}
	copy(result.items, ls.items)
	return result
}

// Count returns the number of items with the specified value.
func (ls *List) Count(obj Object) int64 {
	count := int64(0)
	for _, item := range ls.items {
		if Equals(obj, item) {
			count++
		}
	}
	return count
}

// Index returns the index of the first item with the specified value.
func (ls *List) Index(obj Object) int64 {
	for i, item := range ls.items {
		if Equals(obj, item) {
			return int64(i)
		}
	}
	return int64(-1)
}

func (ls *List) Interface() interface{} {
	items := make([]interface{}, 0, len(ls.items))
	for _, item := range ls.items {
		items = append(items, item.Interface())
	}
	return items
}

func (ls *List) String() string {
	return ls.Inspect()
}

func (ls *List) Equals(other Object) bool {
	otherList, ok := other.(*List)
	if !ok {
		return false
	}
	return equalItems(ls.items, otherList.items)
}

func (ls *List) IsTruthy() bool {
	return len(ls.items) > 0
}

func (ls *List) GetItem(key Object) (Object, *Error) {
	idx, err := indexArg(key, len(ls.items))
	if err != nil {
		return nil, err
	}
	return ls.items[idx], nil
}

// SetItem implements the [key] = value operator for a container type.
func (ls *List) SetItem(key, value Object) *Error {
	idx, err := indexArg(key, len(ls.items))
	if err != nil {
		return err
	}
	ls.items[idx] = value
	return nil
}

// Len returns the number of items in this container.
func (ls *List) Len() *Int {
	return NewInt(int64(len(ls.items)))
}

func (ls *List) Size() int {
	return len(ls.items)
}

func (ls *List) RunOperation(opType op.BinaryOpType, right Object) (Object, error) {
	rightList, ok := right.(*List)
	if !ok || opType != op.Add {
		return nil, TypeErrorf("unsupported operation for list: %v on type %s",
			opType, right.Type())
	}
	combined := make([]Object, len(ls.items)+len(rightList.items))
	copy(combined, ls.items)
	copy(combined[len(ls.items):], rightList.items)
	return NewList(combined), nil
}

func NewList(items []Object) *List {
	return &List{items: items}
}

// ResolveIndex checks that the index is inbounds and transforms a negative
// index into the corresponding positive index. If the index is out of bounds,
// an error is returned.
func ResolveIndex(idx int64, size int64) (int64, error) {
	max := size - 1
	if idx > max {
		return 0, IndexErrorf("index out of range: %d", idx)
	}
	if idx >= 0 {
		return idx, nil
	}
	// Handle negative indices, where -1 is the last item
	reversed := idx + size
	if reversed < 0 || reversed > max {
		return 0, IndexErrorf("index out of range: %d", idx)
	}
	return reversed, nil
}

func indexArg(key Object, size int) (int, *Error) {
	indexObj, ok := key.(*Int)
	if !ok {
		return 0, TypeErrorf("index must be an int (got %s)", key.Type())
	}
	idx, err := ResolveIndex(indexObj.value, int64(size))
	if err != nil {
		return 0, NewError(err)
	}
	return int(idx), nil
}

func inspectItems(items []Object) string {
	var out bytes.Buffer
	parts := make([]string, 0, len(items))
	for _, e := range items {
		parts = append(parts, e.Inspect())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString("]")
	return out.String()
}

func equalItems(a, b []Object) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if !Equals(v, b[i]) {
			return false
		}
	}
	return true
}
