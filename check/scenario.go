package check

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/deepnoodle-ai/composite/object"
	"gopkg.in/yaml.v3"
)

// ScenarioFile is the document form of a *.check.yaml file.
type ScenarioFile struct {
	Scenarios []Spec `yaml:"scenarios"`
}

// Spec describes a scenario declaratively. Kind selects how the value is
// built:
//
//   - array: g.MkArray(dims, zero, init); expect is the nested contents.
//   - slice: g.MkSlice(zero, len, cap) when len is set, otherwise
//     g.Slice(zero, init); expect is the visible elements.
//   - map: g.Map(zero) filled from init; with lookup, expect is the value
//     found by following the lookup keys.
//
// ExpectError names the error kind construction must fail with, such as
// "shape error" or "index error".
type Spec struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"`
	Skip        string `yaml:"skip,omitempty"`
	Dims        []int  `yaml:"dims,omitempty"`
	Zero        any    `yaml:"zero"`
	Init        any    `yaml:"init,omitempty"`
	Len         *int   `yaml:"len,omitempty"`
	Cap         *int   `yaml:"cap,omitempty"`
	Lookup      []any  `yaml:"lookup,omitempty"`
	Expect      any    `yaml:"expect,omitempty"`
	ExpectLen   *int   `yaml:"expect_len,omitempty"`
	ExpectCap   *int   `yaml:"expect_cap,omitempty"`
	ExpectFound *bool  `yaml:"expect_found,omitempty"`
	ExpectError string `yaml:"expect_error,omitempty"`
}

// LoadFile reads and decodes a scenario file.
func LoadFile(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a scenario document and checks that every entry is named
// and of a known kind.
func Parse(data []byte) (*ScenarioFile, error) {
	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode scenarios: %w", err)
	}
	seen := map[string]bool{}
	for i, spec := range file.Scenarios {
		if spec.Name == "" {
			return nil, fmt.Errorf("scenario %d: missing name", i)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("scenario %q: duplicate name", spec.Name)
		}
		seen[spec.Name] = true
		switch spec.Kind {
		case "array", "slice", "map":
		default:
			return nil, fmt.Errorf("scenario %q: unknown kind %q", spec.Name, spec.Kind)
		}
	}
	return &file, nil
}

// Scenario returns the runnable form of the spec.
func (s Spec) Scenario() Scenario {
	return Scenario{
		Name: s.Name,
		Run: func(ctx context.Context, t *T) error {
			if s.Skip != "" {
				t.Skip(s.Skip)
				return nil
			}
			return s.run(ctx, t)
		},
	}
}

func (s Spec) run(ctx context.Context, t *T) error {
	zero, err := object.FromGo(s.Zero)
	if err != nil {
		return fmt.Errorf("zero: %w", err)
	}
	var built object.Object
	switch s.Kind {
	case "array":
		built, err = s.buildArray(ctx, t, zero)
	case "slice":
		built, err = s.buildSlice(ctx, t, zero)
	case "map":
		built, err = s.buildMap(ctx, t, zero)
	}
	if s.ExpectError != "" {
		if err == nil {
			t.Errorf("expected %s, got %s", s.ExpectError, built.Inspect())
			return nil
		}
		kind := object.NewError(err).Kind().String()
		t.Equal("error kind", object.NewString(kind), object.NewString(s.ExpectError))
		return nil
	}
	if err != nil {
		return err
	}
	return s.verify(ctx, t, built)
}

func (s Spec) buildArray(ctx context.Context, t *T, zero object.Object) (object.Object, error) {
	dims := make([]int, len(s.Dims))
	copy(dims, s.Dims)
	args := []object.Object{object.Dims(dims...), zero}
	if s.Init != nil {
		init, err := object.FromGo(s.Init)
		if err != nil {
			return nil, fmt.Errorf("init: %w", err)
		}
		args = append(args, init)
	}
	return t.Call(ctx, "MkArray", args...)
}

func (s Spec) buildSlice(ctx context.Context, t *T, zero object.Object) (object.Object, error) {
	if s.Len != nil {
		args := []object.Object{zero, object.NewInt(int64(*s.Len))}
		if s.Cap != nil {
			args = append(args, object.NewInt(int64(*s.Cap)))
		}
		return t.Call(ctx, "MkSlice", args...)
	}
	if s.Init == nil {
		return t.Call(ctx, "NilSlice")
	}
	init, err := object.FromGo(s.Init)
	if err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}
	return t.Call(ctx, "Slice", zero, init)
}

func (s Spec) buildMap(ctx context.Context, t *T, zero object.Object) (object.Object, error) {
	var args []object.Object
	args = append(args, zero)
	if s.Init != nil {
		backing, err := object.MapFromGo(s.Init)
		if err != nil {
			return nil, fmt.Errorf("init: %w", err)
		}
		args = append(args, backing)
	}
	return t.Call(ctx, "Map", args...)
}

func (s Spec) verify(ctx context.Context, t *T, built object.Object) error {
	var got object.Object
	switch value := built.(type) {
	case *object.Array:
		got = value.List()
	case *object.Slice:
		got = value.Get()
		if s.Expect == nil && s.Len == nil && s.Init == nil {
			t.True("slice without initializer is nil", value.Value().IsNil())
		}
	case *object.Map:
		if len(s.Lookup) > 0 {
			return s.verifyLookup(t, value)
		}
		got = value
	}
	if s.Expect != nil {
		want, err := object.FromGo(s.Expect)
		if err != nil {
			return fmt.Errorf("expect: %w", err)
		}
		t.Equal("value", got, want)
	}
	if s.ExpectLen != nil {
		if err := s.verifyInt(ctx, t, built, "len", *s.ExpectLen); err != nil {
			return err
		}
	}
	if s.ExpectCap != nil {
		if err := s.verifyInt(ctx, t, built, "cap", *s.ExpectCap); err != nil {
			return err
		}
	}
	return nil
}

func (s Spec) verifyInt(ctx context.Context, t *T, built object.Object, attr string, want int) error {
	got, err := t.Method(ctx, built, attr)
	if err != nil {
		return err
	}
	t.Equal(attr, got, object.NewInt(int64(want)))
	return nil
}

func (s Spec) verifyLookup(t *T, m *object.Map) error {
	keys := make([]object.Object, len(s.Lookup))
	for i, k := range s.Lookup {
		key, err := object.FromGo(k)
		if err != nil {
			return fmt.Errorf("lookup: %w", err)
		}
		keys[i] = key
	}
	value, found, err := m.Lookup(keys...)
	if err != nil {
		return err
	}
	path := make([]string, len(keys))
	for i, k := range keys {
		path[i] = k.Inspect()
	}
	what := "lookup " + strings.Join(path, ".")
	if s.Expect != nil {
		want, err := object.FromGo(s.Expect)
		if err != nil {
			return fmt.Errorf("expect: %w", err)
		}
		t.Equal(what, value, want)
	}
	if s.ExpectFound != nil {
		t.Equal(what+" found", object.NewBool(found), object.NewBool(*s.ExpectFound))
	}
	return nil
}
