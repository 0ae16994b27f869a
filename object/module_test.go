package object

import (
	"context"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

func TestModuleAttrs(t *testing.T) {
	m := NewModule("people", map[string]Object{"count": NewInt(3)})

	name, ok := m.GetAttr("__name__")
	assert.True(t, ok)
	assert.Equal(t, name, Object(NewString("people")))

	count, ok := m.GetAttr("count")
	assert.True(t, ok)
	assert.Equal(t, count, Object(NewInt(3)))

	_, ok = m.GetAttr("missing")
	assert.False(t, ok)

	assert.NotNil(t, m.SetAttr("count", NewInt(4)))
	assert.Equal(t, m.Inspect(), "module(people)")
	assert.True(t, m.Equals(m))
	assert.False(t, m.Equals(NewModule("people", nil)))
}

func TestExportOverwritesByName(t *testing.T) {
	m := NewModule("people", map[string]Object{"a": NewInt(1), "b": NewInt(2)})
	Export(m, map[string]Object{"b": NewInt(20), "c": NewInt(30)})

	assert.Equal(t, m.Names(), []string{"a", "b", "c"})
	b, _ := m.GetAttr("b")
	assert.Equal(t, b, Object(NewInt(20)))
}

func TestExportAttachesBuiltins(t *testing.T) {
	fn := NewBuiltin("Older", func(ctx context.Context, args ...Object) (Object, error) {
		return Nil, nil
	})
	assert.Equal(t, fn.Key(), "Older")

	m := NewModule("people", nil)
	Export(m, map[string]Object{"Older": fn})
	assert.Equal(t, fn.Key(), "people.Older")

	owner, ok := fn.GetAttr("__module__")
	assert.True(t, ok)
	assert.True(t, owner == Object(m))

	// A builtin keeps the first module it was exported into.
	Export(NewModule("other", nil), map[string]Object{"Older": fn})
	assert.Equal(t, fn.Key(), "people.Older")
}
