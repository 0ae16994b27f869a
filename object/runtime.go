package object

import (
	"context"

	"github.com/deepnoodle-ai/composite"
)

// RuntimeName is the name of the module returned by Runtime.
const RuntimeName = "g"

// Runtime returns the module through which generated code constructs
// composite values. Each call returns a new module, so bindings exported into
// one runtime are not seen by another.
func Runtime() *Module {
	return NewModule(RuntimeName, map[string]Object{
		"MkArray": NewBuiltin("MkArray", mkArray).WithSpec(FuncSpec{
			Doc:     "Array of the given shape, zero-filled or built from an initializer",
			Args:    []string{"dims", "zero", "elems?"},
			Returns: "array",
		}),
		"NilSlice": NewBuiltin("NilSlice", nilSlice).WithSpec(FuncSpec{
			Doc:     "Nil slice",
			Returns: "slice",
		}),
		"MkSlice": NewBuiltin("MkSlice", mkSlice).WithSpec(FuncSpec{
			Doc:     "Slice of len zero values with an optional capacity",
			Args:    []string{"zero", "len", "cap?"},
			Returns: "slice",
		}),
		"Slice": NewBuiltin("Slice", sliceOf).WithSpec(FuncSpec{
			Doc:     "Slice built from a list or sparse initializer; nil without one",
			Args:    []string{"zero?", "elems?"},
			Returns: "slice",
		}),
		"SliceFrom": NewBuiltin("SliceFrom", sliceFrom).WithSpec(FuncSpec{
			Doc:     "Window [low:high] over a one-dimensional array",
			Args:    []string{"array", "low", "high"},
			Returns: "slice",
		}),
		"Map": NewBuiltin("Map", mkMap).WithSpec(FuncSpec{
			Doc:     "Map with a zero value, optionally sharing the entries of another map",
			Args:    []string{"zero", "backing?"},
			Returns: "map",
		}),
		"Export": NewBuiltin("Export", export).WithSpec(FuncSpec{
			Doc:     "Register each binding of a map in a module",
			Args:    []string{"module", "bindings"},
			Returns: "nil",
		}),
		"Invalid":   NewInt(int64(composite.Invalid)),
		"ArrayKind": NewInt(int64(composite.ArrayKind)),
		"MapKind":   NewInt(int64(composite.MapKind)),
		"SliceKind": NewInt(int64(composite.SliceKind)),
	})
}

func mkArray(ctx context.Context, args ...Object) (Object, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, argsRangeError("MkArray", 2, 3, len(args))
	}
	dims, err := AsDims(args[0])
	if err != nil {
		return nil, err
	}
	var init Object
	if len(args) == 3 {
		init = args[2]
	}
	array, err := MakeArray(dims, args[1], init)
	if err != nil {
		return nil, err
	}
	return array, nil
}

func nilSlice(ctx context.Context, args ...Object) (Object, error) {
	if len(args) != 0 {
		return nil, argsRangeError("NilSlice", 0, 0, len(args))
	}
	return &Slice{value: composite.NilSlice[Object]()}, nil
}

func mkSlice(ctx context.Context, args ...Object) (Object, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, argsRangeError("MkSlice", 2, 3, len(args))
	}
	length, err := AsInt(args[1])
	if err != nil {
		return nil, err
	}
	var capacity []int
	if len(args) == 3 {
		c, err := AsInt(args[2])
		if err != nil {
			return nil, err
		}
		capacity = append(capacity, int(c))
	}
	value, err := composite.MakeSlice(args[0], int(length), capacity...)
	if err != nil {
		return nil, err
	}
	return &Slice{value: value}, nil
}

func sliceOf(ctx context.Context, args ...Object) (Object, error) {
	if len(args) > 2 {
		return nil, argsRangeError("Slice", 0, 2, len(args))
	}
	if len(args) < 2 {
		return &Slice{value: composite.NilSlice[Object]()}, nil
	}
	lit, err := literalOf(args[1], 1)
	if err != nil {
		return nil, err
	}
	value, err := composite.SliceOf(args[0], lit)
	if err != nil {
		return nil, err
	}
	return &Slice{value: value}, nil
}

func sliceFrom(ctx context.Context, args ...Object) (Object, error) {
	if len(args) != 3 {
		return nil, argsRangeError("SliceFrom", 3, 3, len(args))
	}
	array, err := AsArray(args[0])
	if err != nil {
		return nil, err
	}
	bounds, err := intArgs(args[1:])
	if err != nil {
		return nil, err
	}
	value, err := composite.SliceFrom(array.value, bounds[0], bounds[1])
	if err != nil {
		return nil, err
	}
	return &Slice{value: value}, nil
}

func mkMap(ctx context.Context, args ...Object) (Object, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, argsRangeError("Map", 1, 2, len(args))
	}
	var items map[any]Object
	if len(args) == 2 && args[1] != Nil {
		backing, err := AsMap(args[1])
		if err != nil {
			return nil, err
		}
		items = backing.value.Items()
	}
	return NewMap(args[0], items), nil
}

func export(ctx context.Context, args ...Object) (Object, error) {
	if len(args) != 2 {
		return nil, argsRangeError("Export", 2, 2, len(args))
	}
	m, err := AsModule(args[0])
	if err != nil {
		return nil, err
	}
	bindings, err := AsMap(args[1])
	if err != nil {
		return nil, err
	}
	named := make(map[string]Object, bindings.value.Size())
	for k, v := range bindings.value.Items() {
		name, ok := k.(string)
		if !ok {
			return nil, TypeErrorf("export name must be a string (got %v)", k)
		}
		named[name] = v
	}
	Export(m, named)
	return Nil, nil
}

// Dims is a convenience for building the dims argument of MkArray.
func Dims(sizes ...int) *List {
	items := make([]Object, len(sizes))
	for i, n := range sizes {
		items[i] = NewInt(int64(n))
	}
	return NewList(items)
}
