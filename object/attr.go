package object

// AttrSpec describes an attribute available on an object.
type AttrSpec struct {
	// Name is the attribute name (e.g., "get", "set").
	Name string

	// Doc is a short description of what the attribute does.
	Doc string

	// Args lists parameter names (e.g., ["src", "low", "high"]).
	// Empty for attributes that take no arguments.
	Args []string

	// Variadic marks the last entry of Args as accepting any number of
	// values.
	Variadic bool

	// Returns describes the return type (e.g., "list", "int").
	Returns string
}

// FuncSpec describes a builtin function.
type FuncSpec struct {
	// Name is the function name (e.g., "MkArray").
	Name string

	// Doc is a short description of what the function does.
	Doc string

	// Args lists parameter names.
	Args []string

	// Returns describes the return type (e.g., "array", "slice").
	Returns string
}

// AttrNames returns just the attribute names from a slice of AttrSpec.
func AttrNames(attrs []AttrSpec) []string {
	names := make([]string, len(attrs))
	for i, attr := range attrs {
		names[i] = attr.Name
	}
	return names
}

// FindAttr searches for an attribute by name in a slice of AttrSpec.
func FindAttr(attrs []AttrSpec, name string) (AttrSpec, bool) {
	for _, attr := range attrs {
		if attr.Name == name {
			return attr, true
		}
	}
	return AttrSpec{}, false
}
