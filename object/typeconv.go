package object

import (
	"fmt"
	"reflect"

	"github.com/deepnoodle-ai/composite/shape"
)

// *****************************************************************************
// Type assertion helpers
// *****************************************************************************

func AsBool(obj Object) (bool, error) {
	b, ok := obj.(*Bool)
	if !ok {
		return false, TypeErrorf("expected a bool (%s given)", obj.Type())
	}
	return b.value, nil
}

func AsString(obj Object) (string, error) {
	s, ok := obj.(*String)
	if !ok {
		return "", TypeErrorf("expected a string (%s given)", obj.Type())
	}
	return s.value, nil
}

func AsInt(obj Object) (int64, error) {
	switch obj := obj.(type) {
	case *Int:
		return obj.value, nil
	case *Float:
		if obj.value != float64(int64(obj.value)) {
			return 0, TypeErrorf("expected an integer (%s given)", obj.Inspect())
		}
		return int64(obj.value), nil
	default:
		return 0, TypeErrorf("expected an integer (%s given)", obj.Type())
	}
}

func AsFloat(obj Object) (float64, error) {
	switch obj := obj.(type) {
	case *Int:
		return float64(obj.value), nil
	case *Float:
		return obj.value, nil
	default:
		return 0, TypeErrorf("expected a number (%s given)", obj.Type())
	}
}

func AsList(obj Object) (*List, error) {
	list, ok := obj.(*List)
	if !ok {
		return nil, TypeErrorf("expected a list (%s given)", obj.Type())
	}
	return list, nil
}

func AsMap(obj Object) (*Map, error) {
	m, ok := obj.(*Map)
	if !ok {
		return nil, TypeErrorf("expected a map (%s given)", obj.Type())
	}
	return m, nil
}

func AsArray(obj Object) (*Array, error) {
	a, ok := obj.(*Array)
	if !ok {
		return nil, TypeErrorf("expected an array (%s given)", obj.Type())
	}
	return a, nil
}

func AsSlice(obj Object) (*Slice, error) {
	s, ok := obj.(*Slice)
	if !ok {
		return nil, TypeErrorf("expected a slice (%s given)", obj.Type())
	}
	return s, nil
}

func AsModule(obj Object) (*Module, error) {
	m, ok := obj.(*Module)
	if !ok {
		return nil, TypeErrorf("expected a module (%s given)", obj.Type())
	}
	return m, nil
}

// AsDims converts a list of non-negative integers to a dimension vector.
func AsDims(obj Object) (shape.Dims, error) {
	list, err := AsList(obj)
	if err != nil {
		return nil, err
	}
	dims := make(shape.Dims, len(list.items))
	for i, item := range list.items {
		n, err := AsInt(item)
		if err != nil {
			return nil, err
		}
		dims[i] = int(n)
	}
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	return dims, nil
}

// *****************************************************************************
// Go value conversion
// *****************************************************************************

// FromGo converts a Go value, such as one decoded from YAML or JSON, to an
// object. Maps whose keys are all integers become Sparse initializers; other
// maps become Map objects with a nil zero value.
func FromGo(v any) (Object, error) {
	switch v := v.(type) {
	case nil:
		return Nil, nil
	case Object:
		return v, nil
	case bool:
		return NewBool(v), nil
	case int:
		return NewInt(int64(v)), nil
	case int64:
		return NewInt(v), nil
	case float64:
		return NewFloat(v), nil
	case string:
		return NewString(v), nil
	case []any:
		items := make([]Object, len(v))
		for i, item := range v {
			obj, err := FromGo(item)
			if err != nil {
				return nil, err
			}
			items[i] = obj
		}
		return NewList(items), nil
	}
	return fromGoByKind(reflect.ValueOf(v))
}

func fromGoByKind(rv reflect.Value) (Object, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NewInt(int64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return NewFloat(rv.Float()), nil
	case reflect.String:
		return NewString(rv.String()), nil
	case reflect.Bool:
		return NewBool(rv.Bool()), nil
	case reflect.Slice, reflect.Array:
		items := make([]Object, rv.Len())
		for i := range items {
			obj, err := FromGo(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			items[i] = obj
		}
		return NewList(items), nil
	case reflect.Map:
		return fromGoMap(rv)
	default:
		return nil, TypeErrorf("unsupported Go type: %s", rv.Type())
	}
}

func fromGoMap(rv reflect.Value) (Object, error) {
	keys := make([]Object, 0, rv.Len())
	values := make([]Object, 0, rv.Len())
	allInts := rv.Len() > 0
	iter := rv.MapRange()
	for iter.Next() {
		key, err := FromGo(iter.Key().Interface())
		if err != nil {
			return nil, err
		}
		value, err := FromGo(iter.Value().Interface())
		if err != nil {
			return nil, err
		}
		if _, ok := key.(*Int); !ok {
			allInts = false
		}
		keys = append(keys, key)
		values = append(values, value)
	}
	if allInts {
		entries := make(map[int64]Object, len(keys))
		for i, key := range keys {
			entries[key.(*Int).value] = values[i]
		}
		return NewSparse(entries), nil
	}
	items := make(map[any]Object, len(keys))
	for i, key := range keys {
		k, err := HashKey(key)
		if err != nil {
			return nil, fmt.Errorf("map key: %w", err)
		}
		items[k] = values[i]
	}
	return NewMap(Nil, items), nil
}

// MapFromGo converts a Go map to a Map object whatever its key types. Nested
// maps become Map objects too, so integer-keyed levels stay reachable by a
// multi-key lookup instead of turning into Sparse initializers.
func MapFromGo(v any) (*Map, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, TypeErrorf("expected a mapping (%T given)", v)
	}
	items := make(map[any]Object, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, err := FromGo(iter.Key().Interface())
		if err != nil {
			return nil, err
		}
		k, err := HashKey(key)
		if err != nil {
			return nil, fmt.Errorf("map key: %w", err)
		}
		var value Object
		if inner := iter.Value().Interface(); reflect.ValueOf(inner).Kind() == reflect.Map {
			value, err = MapFromGo(inner)
		} else {
			value, err = FromGo(inner)
		}
		if err != nil {
			return nil, err
		}
		items[k] = value
	}
	return NewMap(Nil, items), nil
}
