package object

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/deepnoodle-ai/composite"
	"github.com/deepnoodle-ai/composite/op"
)

var _ composite.Keyed[any] = (*Map)(nil)

var mapAttrs = NewAttrRegistry[*Map]("map")

func init() {
	mapAttrs.Define("get").
		Doc("Look up a key, or a path of keys through nested maps; returns [value, found]").
		VariadicArg("keys").
		Returns("list").
		Impl(func(m *Map, ctx context.Context, args ...Object) (Object, error) {
			value, found, err := m.Lookup(args...)
			if err != nil {
				return nil, err
			}
			return NewList([]Object{value, NewBool(found)}), nil
		})

	mapAttrs.Define("size").
		Doc("Number of top-level entries").
		Returns("int").
		Impl(func(m *Map, ctx context.Context, args ...Object) (Object, error) {
			return NewInt(int64(m.value.Size())), nil
		})

	mapAttrs.Define("len").
		Doc("Number of top-level entries").
		Returns("int").
		Impl(func(m *Map, ctx context.Context, args ...Object) (Object, error) {
			return NewInt(int64(m.value.Size())), nil
		})

	mapAttrs.Define("kind").
		Doc("The kind tag of the value").
		Returns("int").
		Impl(func(m *Map, ctx context.Context, args ...Object) (Object, error) {
			return NewInt(int64(composite.MapKind)), nil
		})

	mapAttrs.Define("set").
		Doc("Store value under key").
		Args("key", "value").
		Returns("nil").
		Impl(func(m *Map, ctx context.Context, args ...Object) (Object, error) {
			if err := m.Set(args[0], args[1]); err != nil {
				return nil, err
			}
			return Nil, nil
		})

	mapAttrs.Define("delete").
		Doc("Remove key if present").
		Arg("key").
		Returns("nil").
		Impl(func(m *Map, ctx context.Context, args ...Object) (Object, error) {
			key, err := HashKey(args[0])
			if err != nil {
				return nil, err
			}
			m.value.Delete(key)
			return Nil, nil
		})

	mapAttrs.Define("keys").
		Doc("Sorted list of keys").
		Returns("list").
		Impl(func(m *Map, ctx context.Context, args ...Object) (Object, error) {
			keys := m.SortedKeys()
			items := make([]Object, len(keys))
			for i, k := range keys {
				items[i] = keyObject(k)
			}
			return NewList(items), nil
		})
}

// Map is a keyed container with a fixed zero value for absent keys. Keys are
// strings, ints, floats or bools.
type Map struct {
	value *composite.Map[any, Object]
}

func (m *Map) Attrs() []AttrSpec {
	return mapAttrs.Specs()
}

func (m *Map) GetAttr(name string) (Object, bool) {
	return mapAttrs.GetAttr(m, name)
}

func (m *Map) SetAttr(name string, value Object) error {
	return TypeErrorf("map has no attribute %q", name)
}

func (m *Map) Type() Type {
	return MAP
}

func (m *Map) Value() *composite.Map[any, Object] {
	return m.value
}

// Zero returns the object reported for absent keys.
func (m *Map) Zero() Object {
	return m.value.Zero()
}

// Lookup follows keys through nested maps. A missing key at any level
// yields the zero value of m and false.
func (m *Map) Lookup(keys ...Object) (Object, bool, error) {
	path := make([]any, len(keys))
	for i, k := range keys {
		key, err := HashKey(k)
		if err != nil {
			return nil, false, err
		}
		path[i] = key
	}
	value, found := m.value.Lookup(path...)
	return value, found, nil
}

// LookupKey implements composite.Keyed so that nested map objects are
// traversed by Lookup.
func (m *Map) LookupKey(key any) (any, bool) {
	return m.value.LookupKey(key)
}

// Set stores value under key.
func (m *Map) Set(key, value Object) error {
	k, err := HashKey(key)
	if err != nil {
		return err
	}
	m.value.Set(k, value)
	return nil
}

// SortedKeys returns the keys ordered by type, then by value.
func (m *Map) SortedKeys() []any {
	keys := m.value.Keys()
	sort.Slice(keys, func(i, j int) bool {
		return lessKey(keys[i], keys[j])
	})
	return keys
}

func (m *Map) Inspect() string {
	pairs := make([]string, 0, m.value.Size())
	items := m.value.Items()
	for _, k := range m.SortedKeys() {
		pairs = append(pairs, fmt.Sprintf("%s: %s", keyObject(k).Inspect(), items[k].Inspect()))
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

func (m *Map) String() string {
	return m.Inspect()
}

// Interface returns the entries as a map keyed by the string form of each
// key.
func (m *Map) Interface() interface{} {
	out := make(map[string]interface{}, m.value.Size())
	for k, v := range m.value.Items() {
		out[fmt.Sprint(k)] = v.Interface()
	}
	return out
}

func (m *Map) Equals(other Object) bool {
	otherMap, ok := other.(*Map)
	if !ok || m.value.Size() != otherMap.value.Size() {
		return false
	}
	for k, v := range m.value.Items() {
		otherV, found := otherMap.value.Items()[k]
		if !found || !Equals(v, otherV) {
			return false
		}
	}
	return true
}

func (m *Map) IsTruthy() bool {
	return m.value.Size() > 0
}

// GetItem returns the value under key, or the zero value when absent.
func (m *Map) GetItem(key Object) (Object, *Error) {
	k, err := HashKey(key)
	if err != nil {
		return nil, NewError(err)
	}
	value, _ := m.value.Get(k)
	return value, nil
}

func (m *Map) SetItem(key, value Object) *Error {
	if err := m.Set(key, value); err != nil {
		return NewError(err)
	}
	return nil
}

func (m *Map) Len() *Int {
	return NewInt(int64(m.value.Size()))
}

func (m *Map) RunOperation(opType op.BinaryOpType, right Object) (Object, error) {
	return nil, TypeErrorf("unsupported operation for map: %v on type %s", opType, right.Type())
}

// NewMap returns a map with the given zero value over items. The items map
// is shared, not copied.
func NewMap(zero Object, items map[any]Object) *Map {
	return &Map{value: composite.NewMap(zero, items)}
}

// HashKey converts a key object to the Go value it is stored under.
func HashKey(key Object) (any, error) {
	switch key := key.(type) {
	case *String:
		return key.value, nil
	case *Int:
		return key.value, nil
	case *Float:
		return key.value, nil
	case *Bool:
		return key.value, nil
	default:
		return nil, TypeErrorf("unhashable map key type: %s", key.Type())
	}
}

func keyObject(k any) Object {
	switch k := k.(type) {
	case string:
		return NewString(k)
	case int64:
		return NewInt(k)
	case float64:
		return NewFloat(k)
	case bool:
		return NewBool(k)
	default:
		return NewString(fmt.Sprint(k))
	}
}

func lessKey(a, b any) bool {
	ka, kb := keyObject(a), keyObject(b)
	if ka.Type() != kb.Type() {
		return ka.Type() < kb.Type()
	}
	cmp, err := ka.(Comparable).Compare(kb)
	return err == nil && cmp < 0
}
