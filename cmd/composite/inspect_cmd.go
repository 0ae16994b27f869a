package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/deepnoodle-ai/composite/object"
	"github.com/deepnoodle-ai/wonton/cli"
	"gopkg.in/yaml.v3"
)

// inspectResult is the JSON form of the inspect command output.
type inspectResult struct {
	Type  string `json:"type"`
	Dims  []int  `json:"dims,omitempty"`
	Len   int64  `json:"len"`
	Cap   *int64 `json:"cap,omitempty"`
	Store string `json:"store,omitempty"`
	Value any    `json:"value"`
}

func inspectHandler(ctx *cli.Context) error {
	dims, err := parseDims(ctx.String("dims"))
	if err != nil {
		return err
	}
	zeroText := ctx.String("zero")
	if zeroText == "" {
		zeroText = "0"
	}
	zero, err := parseValue("zero", zeroText)
	if err != nil {
		return err
	}

	args := []object.Object{object.Dims(dims...), zero}
	if ctx.IsSet("init") {
		initValue, err := parseValue("init", ctx.String("init"))
		if err != nil {
			return err
		}
		args = append(args, initValue)
	}

	g := object.Runtime()
	value, err := callRuntime(ctx, g, "MkArray", args...)
	if err != nil {
		return err
	}
	result := inspectResult{Type: string(value.Type()), Dims: dims}

	if window := ctx.String("slice"); window != "" {
		low, high, err := parseWindow(window)
		if err != nil {
			return err
		}
		if high < 0 {
			high = int(value.(*object.Array).Len().Value())
		}
		value, err = callRuntime(ctx, g, "SliceFrom", value, object.NewInt(int64(low)), object.NewInt(int64(high)))
		if err != nil {
			return err
		}
		result = inspectResult{Type: string(value.Type())}
	}

	result.Value = value.Interface()
	if n, ok := value.(interface{ Len() *object.Int }); ok {
		result.Len = n.Len().Value()
	}
	if s, ok := value.(*object.Slice); ok {
		c := int64(s.Value().Cap())
		result.Cap = &c
	}
	if ctx.Bool("stores") {
		result.Store = storeID(value)
	}

	if strings.ToLower(ctx.String("output")) == "json" {
		return writeJSON(os.Stdout, result, useColor(ctx, os.Stdout))
	}
	fmt.Println(value.Inspect())
	if result.Store != "" {
		fmt.Printf("store %s\n", result.Store)
	}
	return nil
}

// storeID returns the handle of the buffer backing value, or "" when value
// has none.
func storeID(value object.Object) string {
	switch v := value.(type) {
	case *object.Array:
		return v.Value().Store().ID().String()
	case *object.Slice:
		if store := v.Value().Store(); store != nil {
			return store.ID().String()
		}
	}
	return ""
}

func callRuntime(ctx *cli.Context, g *object.Module, name string, args ...object.Object) (object.Object, error) {
	attr, ok := g.GetAttr(name)
	if !ok {
		return nil, fmt.Errorf("runtime has no builtin %q", name)
	}
	fn, ok := attr.(object.Callable)
	if !ok {
		return nil, fmt.Errorf("runtime binding %q is not callable", name)
	}
	return fn.Call(ctx.Context(), args...)
}

// parseDims parses a comma separated list of dimensions.
func parseDims(text string) ([]int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("--dims is required")
	}
	parts := strings.Split(text, ",")
	dims := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid dimension %q", part)
		}
		dims[i] = n
	}
	return dims, nil
}

// parseWindow parses low:high. Either bound may be omitted. A missing high
// bound is returned as -1.
func parseWindow(text string) (int, int, error) {
	lowText, highText, ok := strings.Cut(text, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid slice %q: expected low:high", text)
	}
	low, high := 0, -1
	var err error
	if lowText != "" {
		if low, err = strconv.Atoi(lowText); err != nil {
			return 0, 0, fmt.Errorf("invalid slice low bound %q", lowText)
		}
	}
	if highText != "" {
		if high, err = strconv.Atoi(highText); err != nil {
			return 0, 0, fmt.Errorf("invalid slice high bound %q", highText)
		}
	}
	return low, high, nil
}

// parseValue decodes a YAML (or JSON) flag value into a runtime object.
// Integers stay integers, which JSON decoding would turn into floats.
func parseValue(flag, text string) (object.Object, error) {
	var v any
	if err := yaml.Unmarshal([]byte(text), &v); err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	obj, err := object.FromGo(v)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	return obj, nil
}
