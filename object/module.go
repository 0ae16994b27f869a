package object

import (
	"fmt"
	"sort"

	"github.com/deepnoodle-ai/composite/op"
)

var moduleAttrs = NewAttrRegistry[*Module]("module")

func init() {
	moduleAttrs.Define("__name__").
		Doc("The name of the module").
		Returns("string").
		Getter(func(m *Module) Object {
			return NewString(m.name)
		})
}

// Module is a named namespace of bindings.
type Module struct {
	name     string
	bindings map[string]Object
}

func (m *Module) Attrs() []AttrSpec {
	return moduleAttrs.Specs()
}

func (m *Module) GetAttr(name string) (Object, bool) {
	if obj, ok := moduleAttrs.GetAttr(m, name); ok {
		return obj, true
	}
	obj, found := m.bindings[name]
	return obj, found
}

func (m *Module) SetAttr(name string, value Object) error {
	return TypeErrorf("cannot modify module attributes")
}

func (m *Module) IsTruthy() bool {
	return true
}

func (m *Module) Type() Type {
	return MODULE
}

func (m *Module) Inspect() string {
	return m.String()
}

func (m *Module) Interface() interface{} {
	return nil
}

func (m *Module) String() string {
	return fmt.Sprintf("module(%s)", m.name)
}

func (m *Module) Name() *String {
	return NewString(m.name)
}

// Names returns the bound names in sorted order.
func (m *Module) Names() []string {
	names := make([]string, 0, len(m.bindings))
	for name := range m.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Module) Equals(other Object) bool {
	otherModule, ok := other.(*Module)
	return ok && m == otherModule
}

func (m *Module) RunOperation(opType op.BinaryOpType, right Object) (Object, error) {
	return nil, TypeErrorf("unsupported operation for module: %v", opType)
}

// NewModule returns a module holding a copy of contents. Builtins among the
// contents are attached to the module.
func NewModule(name string, contents map[string]Object) *Module {
	m := &Module{name: name, bindings: map[string]Object{}}
	Export(m, contents)
	return m
}

// Export registers every binding in m under its name. A name exported again
// is overwritten; other names are kept.
func Export(m *Module, bindings map[string]Object) {
	for name, value := range bindings {
		if builtin, ok := value.(*Builtin); ok && builtin.module == nil {
			builtin.module = m
		}
		m.bindings[name] = value
	}
}
