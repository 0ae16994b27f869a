package check

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/composite/errors"
	"github.com/deepnoodle-ai/composite/object"
)

// T is passed to each scenario. It records failures and log lines, and
// gives access to a runtime module private to the scenario.
type T struct {
	name       string
	runtime    *object.Module
	failures   []Failure
	logs       []string
	skipped    bool
	skipReason string
}

func newT(name string) *T {
	return &T{name: name, runtime: object.Runtime()}
}

// Name returns the scenario name.
func (t *T) Name() string {
	return t.name
}

// Runtime returns the runtime module of the scenario.
func (t *T) Runtime() *object.Module {
	return t.runtime
}

// Call invokes the named runtime builtin.
func (t *T) Call(ctx context.Context, name string, args ...object.Object) (object.Object, error) {
	fn, ok := t.runtime.GetAttr(name)
	if !ok {
		return nil, unknownBuiltin(t.runtime, name)
	}
	callable, ok := fn.(object.Callable)
	if !ok {
		return nil, fmt.Errorf("runtime binding %q is not callable (got %s)", name, fn.Type())
	}
	return callable.Call(ctx, args...)
}

// Method invokes the named attribute of obj.
func (t *T) Method(ctx context.Context, obj object.Object, name string, args ...object.Object) (object.Object, error) {
	attr, ok := obj.GetAttr(name)
	if !ok {
		return nil, fmt.Errorf("%s has no attribute %q", obj.Type(), name)
	}
	callable, ok := attr.(object.Callable)
	if !ok {
		return nil, fmt.Errorf("%s.%s is not callable", obj.Type(), name)
	}
	return callable.Call(ctx, args...)
}

// Logf records a log line.
func (t *T) Logf(format string, args ...any) {
	t.logs = append(t.logs, fmt.Sprintf(format, args...))
}

// Errorf records a failure.
func (t *T) Errorf(format string, args ...any) {
	t.failures = append(t.failures, Failure{Message: fmt.Sprintf(format, args...)})
}

// Equal records a failure unless got equals want.
func (t *T) Equal(what string, got, want object.Object) bool {
	if object.Equals(got, want) {
		return true
	}
	t.failures = append(t.failures, Failure{
		Message: what + ": values differ",
		Got:     got,
		Want:    want,
	})
	return false
}

// True records a failure unless cond holds.
func (t *T) True(what string, cond bool) bool {
	if !cond {
		t.failures = append(t.failures, Failure{Message: what})
	}
	return cond
}

// Skip marks the scenario as skipped.
func (t *T) Skip(reason string) {
	t.skipped = true
	t.skipReason = reason
}

// Failed reports whether any failure was recorded.
func (t *T) Failed() bool {
	return len(t.failures) > 0
}

// Failures returns the recorded failures.
func (t *T) Failures() []Failure {
	return t.failures
}

// Logs returns the recorded log lines.
func (t *T) Logs() []string {
	return t.logs
}

func unknownBuiltin(m *object.Module, name string) error {
	err := fmt.Errorf("runtime has no builtin %q", name)
	if hint := errors.Hint(errors.SuggestSimilar(name, m.Names())); hint != "" {
		err = fmt.Errorf("%w; %s", err, hint)
	}
	return err
}
