package check

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/composite/object"
)

// Scenario is a named check run against a fresh runtime module. Returning an
// error reports the scenario as errored; failed expectations are recorded on
// the T instead.
type Scenario struct {
	Name string
	Run  func(ctx context.Context, t *T) error
}

// Fixtures returns the built-in scenarios.
func Fixtures() []Scenario {
	return []Scenario{
		{Name: "older", Run: checkOlder},
		{Name: "max-age", Run: checkMaxAge},
		{Name: "initialize-array", Run: checkInitializeArray},
		{Name: "multi-array", Run: checkMultiArray},
		{Name: "make-slice", Run: checkMakeSlice},
		{Name: "slice-aliasing", Run: checkSliceAliasing},
		{Name: "slice-append", Run: checkSliceAppend},
		{Name: "map-lookup", Run: checkMapLookup},
	}
}

func ints(values ...int64) *object.List {
	items := make([]object.Object, len(values))
	for i, v := range values {
		items[i] = object.NewInt(v)
	}
	return object.NewList(items)
}

// newPerson returns a person record as a map with name and age fields.
func newPerson(ctx context.Context, t *T, name string, age int64) (*object.Map, error) {
	obj, err := t.Call(ctx, "Map", object.Nil)
	if err != nil {
		return nil, err
	}
	m := obj.(*object.Map)
	if err := m.Set(object.NewString("name"), object.NewString(name)); err != nil {
		return nil, err
	}
	if err := m.Set(object.NewString("age"), object.NewInt(age)); err != nil {
		return nil, err
	}
	return m, nil
}

func field(p *object.Map, name string) object.Object {
	value, _, _ := p.Lookup(object.NewString(name))
	return value
}

// older returns the older of two people and the difference in their ages.
func older(p1, p2 *object.Map) (*object.Map, int64) {
	a1 := field(p1, "age").(*object.Int).Value()
	a2 := field(p2, "age").(*object.Int).Value()
	if a1 > a2 {
		return p1, a1 - a2
	}
	return p2, a2 - a1
}

func checkOlder(ctx context.Context, t *T) error {
	tom, err := newPerson(ctx, t, "Tom", 18)
	if err != nil {
		return err
	}
	bob, err := newPerson(ctx, t, "Bob", 25)
	if err != nil {
		return err
	}
	paul, err := newPerson(ctx, t, "Paul", 43)
	if err != nil {
		return err
	}
	cases := []struct {
		p1, p2 *object.Map
		want   string
		diff   int64
	}{
		{tom, bob, "Bob", 7},
		{tom, paul, "Paul", 25},
		{bob, paul, "Paul", 18},
	}
	for _, c := range cases {
		who, diff := older(c.p1, c.p2)
		t.Logf("Of %s and %s, %s is older by %d years",
			field(c.p1, "name"), field(c.p2, "name"), field(who, "name"), diff)
		t.Equal("older", field(who, "name"), object.NewString(c.want))
		t.Equal("difference", object.NewInt(diff), object.NewInt(c.diff))
	}
	return nil
}

func person(name string, age int64) *object.List {
	return object.NewList([]object.Object{object.NewString(name), object.NewInt(age)})
}

func checkMaxAge(ctx context.Context, t *T) error {
	obj, err := t.Call(ctx, "MkArray", object.Dims(10), person("", 0))
	if err != nil {
		return err
	}
	arr := obj.(*object.Array)
	updates := map[int64]*object.List{
		1: person("Paul", 23),
		2: person("Jim", 24),
		3: person("Sam", 84),
		4: person("Rob", 54),
		8: person("Karl", 19),
	}
	for i, p := range updates {
		if err := arr.SetItem(object.NewInt(i), p); err != nil {
			return err
		}
	}

	oldest, err := arr.At(0)
	if err != nil {
		return err
	}
	for i := 1; i < 10; i++ {
		p, err := arr.At(i)
		if err != nil {
			return err
		}
		if age(p) > age(oldest) {
			oldest = p
		}
	}
	name, _ := oldest.(*object.List).GetItem(object.NewInt(0))
	t.Logf("The oldest person is %s", name)
	t.Equal("oldest", name, object.NewString("Sam"))
	t.Equal("max age", object.NewInt(age(oldest)), object.NewInt(84))
	return nil
}

func age(p object.Object) int64 {
	v, _ := p.(*object.List).GetItem(object.NewInt(1))
	return v.(*object.Int).Value()
}

func checkInitializeArray(ctx context.Context, t *T) error {
	build := func() (*object.Array, error) {
		people := object.NewList([]object.Object{
			person("", 0),
			person("Paul", 23),
			person("Jim", 24),
			person("Sam", 84),
			person("Rob", 54),
			person("", 0),
			person("", 0),
			person("", 0),
			person("Karl", 10),
			person("", 0),
		})
		obj, err := t.Call(ctx, "MkArray", object.Dims(10), person("", 0), people)
		if err != nil {
			return nil, err
		}
		return obj.(*object.Array), nil
	}
	a, err := build()
	if err != nil {
		return err
	}
	b, err := build()
	if err != nil {
		return err
	}
	t.Equal("length", a.Len(), b.Len())
	t.Equal("length", a.Len(), object.NewInt(10))
	t.True("comparison: arrays initialized identically differ", a.Equals(b))
	return nil
}

func checkMultiArray(ctx context.Context, t *T) error {
	dims := object.Dims(2, 4)
	nested, err := t.Call(ctx, "MkArray", dims, object.NewInt(0), object.NewList([]object.Object{
		ints(1, 2, 3, 4), ints(5, 6, 7, 8),
	}))
	if err != nil {
		return err
	}
	keyed, err := t.Call(ctx, "MkArray", dims, object.NewInt(0), object.NewSparse(map[int64]object.Object{
		1: ints(5, 6, 7, 8),
		0: ints(1, 2, 3, 4),
	}))
	if err != nil {
		return err
	}
	obj, err := t.Call(ctx, "MkArray", dims, object.NewInt(0))
	if err != nil {
		return err
	}
	assigned := obj.(*object.Array)
	for i := 0; i < 2; i++ {
		for j := 0; j < 4; j++ {
			if err := assigned.Value().Put(object.NewInt(int64(i*4+j+1)), i, j); err != nil {
				return err
			}
		}
	}
	t.Equal("keyed initializer", keyed, nested)
	t.Equal("element assignment", assigned, nested)
	return nil
}

func checkMakeSlice(ctx context.Context, t *T) error {
	s, err := t.Call(ctx, "MkSlice", object.NewInt(0), object.NewInt(3))
	if err != nil {
		return err
	}
	t.Equal("elements", s.(*object.Slice).Get(), ints(0, 0, 0))
	t.Equal("len", s.(*object.Slice).Len(), object.NewInt(3))

	s, err = t.Call(ctx, "MkSlice", object.NewInt(0), object.NewInt(3), object.NewInt(5))
	if err != nil {
		return err
	}
	c, err := t.Method(ctx, s, "cap")
	if err != nil {
		return err
	}
	t.Equal("cap", c, object.NewInt(5))

	nilSlice, err := t.Call(ctx, "NilSlice")
	if err != nil {
		return err
	}
	empty, err := t.Call(ctx, "Slice", object.NewInt(0), object.NewList(nil))
	if err != nil {
		return err
	}
	t.True("nil slice reports nil", nilSlice.(*object.Slice).Value().IsNil())
	t.True("empty slice is not nil", !empty.(*object.Slice).Value().IsNil())
	return nil
}

func checkSliceAliasing(ctx context.Context, t *T) error {
	arr, err := t.Call(ctx, "MkArray", object.Dims(5), object.NewInt(0), ints(1, 2, 3, 4, 5))
	if err != nil {
		return err
	}
	obj, err := t.Call(ctx, "SliceFrom", arr, object.NewInt(1), object.NewInt(4))
	if err != nil {
		return err
	}
	s := obj.(*object.Slice)
	if errObj := s.SetItem(object.NewInt(0), object.NewInt(20)); errObj != nil {
		return errObj
	}
	t.Equal("array after slice write", arr.(*object.Array).List(), ints(1, 20, 3, 4, 5))

	if errObj := arr.(*object.Array).SetItem(object.NewInt(3), object.NewInt(40)); errObj != nil {
		return errObj
	}
	t.Equal("slice after array write", s.Get(), ints(20, 3, 40))

	other, err := t.Call(ctx, "NilSlice")
	if err != nil {
		return err
	}
	if _, err := t.Method(ctx, other, "set", s, object.NewInt(1), object.NewInt(3)); err != nil {
		return err
	}
	if errObj := other.(*object.Slice).SetItem(object.NewInt(1), object.NewInt(50)); errObj != nil {
		return errObj
	}
	t.Equal("array after re-slice write", arr.(*object.Array).List(), ints(1, 20, 3, 50, 5))
	return nil
}

func checkSliceAppend(ctx context.Context, t *T) error {
	s, err := t.Call(ctx, "MkSlice", object.NewInt(0), object.NewInt(1), object.NewInt(2))
	if err != nil {
		return err
	}
	shared, err := t.Method(ctx, s, "append", object.NewInt(1))
	if err != nil {
		return err
	}
	if errObj := shared.(*object.Slice).SetItem(object.NewInt(0), object.NewInt(9)); errObj != nil {
		return errObj
	}
	t.Equal("append within capacity shares storage", s.(*object.Slice).Get(), ints(9))

	grown, err := t.Method(ctx, shared, "append", object.NewInt(2))
	if err != nil {
		return err
	}
	if errObj := grown.(*object.Slice).SetItem(object.NewInt(0), object.NewInt(7)); errObj != nil {
		return errObj
	}
	t.Equal("append beyond capacity copies", s.(*object.Slice).Get(), ints(9))
	t.Equal("grown elements", grown.(*object.Slice).Get(), ints(7, 1, 2))
	return nil
}

func checkMapLookup(ctx context.Context, t *T) error {
	inner, err := t.Call(ctx, "Map", object.NewInt(0))
	if err != nil {
		return err
	}
	if err := inner.(*object.Map).Set(object.NewString("b"), object.NewInt(7)); err != nil {
		return err
	}
	outer, err := t.Call(ctx, "Map", object.NewInt(0))
	if err != nil {
		return err
	}
	if err := outer.(*object.Map).Set(object.NewString("a"), inner); err != nil {
		return err
	}
	for _, c := range []struct {
		path  []object.Object
		want  object.Object
		found bool
	}{
		{[]object.Object{object.NewString("a"), object.NewString("b")}, object.NewInt(7), true},
		{[]object.Object{object.NewString("a"), object.NewString("x")}, object.NewInt(0), false},
		{[]object.Object{object.NewString("x"), object.NewString("b")}, object.NewInt(0), false},
	} {
		value, found, err := outer.(*object.Map).Lookup(c.path...)
		if err != nil {
			return err
		}
		what := fmt.Sprintf("lookup %s", object.NewList(c.path).Inspect())
		t.Equal(what, value, c.want)
		t.Equal(what+" found", object.NewBool(found), object.NewBool(c.found))
	}
	return nil
}
