package check

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/deepnoodle-ai/composite/object"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func resultsByName(summary *Summary) map[string]*Result {
	out := map[string]*Result{}
	for _, f := range summary.Files {
		for _, r := range f.Results {
			out[r.Name] = r
		}
	}
	return out
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "PASS", StatusPassed.String())
	require.Equal(t, "FAIL", StatusFailed.String())
	require.Equal(t, "SKIP", StatusSkipped.String())
	require.Equal(t, "ERROR", StatusError.String())
	require.Equal(t, "UNKNOWN", Status(42).String())
}

func TestFixturesPass(t *testing.T) {
	ctx := context.Background()
	for _, s := range Fixtures() {
		r := RunScenario(ctx, s)
		require.Equal(t, StatusPassed, r.Status, "%s: %s", s.Name, r.Detail())
	}
}

func TestOlderLogs(t *testing.T) {
	r := RunScenario(context.Background(), Scenario{Name: "older", Run: checkOlder})
	require.Equal(t, []string{
		"Of Tom and Bob, Bob is older by 7 years",
		"Of Tom and Paul, Paul is older by 25 years",
		"Of Bob and Paul, Paul is older by 18 years",
	}, r.Logs)
}

func TestRunScenarioStatuses(t *testing.T) {
	ctx := context.Background()

	failed := RunScenario(ctx, Scenario{Name: "f", Run: func(ctx context.Context, t *T) error {
		t.Equal("value", object.NewInt(1), object.NewInt(2))
		return nil
	}})
	require.Equal(t, StatusFailed, failed.Status)
	require.Equal(t, "value: values differ", failed.Detail())
	require.Len(t, failed.Failures, 1)

	errored := RunScenario(ctx, Scenario{Name: "e", Run: func(ctx context.Context, t *T) error {
		return errors.New("boom")
	}})
	require.Equal(t, StatusError, errored.Status)
	require.Equal(t, "boom", errored.Detail())

	panicked := RunScenario(ctx, Scenario{Name: "p", Run: func(ctx context.Context, t *T) error {
		var m *object.Map
		m.Len()
		return nil
	}})
	require.Equal(t, StatusError, panicked.Status)

	skipped := RunScenario(ctx, Scenario{Name: "s", Run: func(ctx context.Context, t *T) error {
		t.Skip("later")
		return nil
	}})
	require.Equal(t, StatusSkipped, skipped.Status)
	require.Equal(t, "later", skipped.Detail())
}

func TestScenarioRuntimeIsPrivate(t *testing.T) {
	ctx := context.Background()
	var first, second *object.Module
	RunScenario(ctx, Scenario{Name: "a", Run: func(ctx context.Context, t *T) error {
		first = t.Runtime()
		return nil
	}})
	RunScenario(ctx, Scenario{Name: "b", Run: func(ctx context.Context, t *T) error {
		second = t.Runtime()
		return nil
	}})
	require.NotSame(t, first, second)
}

func TestTCallUnknownBuiltin(t *testing.T) {
	tc := newT("x")
	_, err := tc.Call(context.Background(), "Missing")
	require.Error(t, err)
	_, err = tc.Call(context.Background(), "MkArry")
	require.EqualError(t, err, `runtime has no builtin "MkArry"; did you mean "MkArray"?`)
	_, err = tc.Call(context.Background(), "ArrayKind")
	require.Error(t, err)
	_, err = tc.Method(context.Background(), object.NewInt(1), "len")
	require.Error(t, err)
}

func TestParseRejectsBadDocuments(t *testing.T) {
	_, err := Parse([]byte("scenarios:\n  - kind: array\n"))
	require.ErrorContains(t, err, "missing name")

	_, err = Parse([]byte("scenarios:\n  - name: a\n    kind: array\n  - name: a\n    kind: map\n"))
	require.ErrorContains(t, err, "duplicate name")

	_, err = Parse([]byte("scenarios:\n  - name: a\n    kind: tuple\n"))
	require.ErrorContains(t, err, "unknown kind")

	_, err = Parse([]byte("scenarios: ["))
	require.Error(t, err)
}

func TestScenarioFileRuns(t *testing.T) {
	summary, err := Run(context.Background(), &Config{
		Patterns:     []string{filepath.Join("testdata", "basic.check.yaml")},
		SkipFixtures: true,
	})
	require.NoError(t, err)
	require.Len(t, summary.Files, 1)
	for _, r := range summary.Files[0].Results {
		require.Equal(t, StatusPassed, r.Status, "%s: %s", r.Name, r.Detail())
	}
	require.Equal(t, 12, summary.Passed)
	require.True(t, summary.Success())
}

func TestRunRecursiveDiscovery(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	summary, err := Run(context.Background(), &Config{
		Patterns: []string{"testdata/..."},
		Logger:   &logger,
	})
	require.NoError(t, err)
	require.Len(t, summary.Files, 4)
	require.Equal(t, BuiltinSource, summary.Files[0].Filename)
	require.False(t, summary.Success())
	require.Equal(t, 1, summary.Failed)
	require.Equal(t, 1, summary.Skipped)
	require.Equal(t, len(Fixtures())+12, summary.Passed)
	require.Contains(t, logs.String(), "discovered scenario files")

	byName := resultsByName(summary)
	require.Equal(t, StatusFailed, byName["wrong-expectation"].Status)
	require.Equal(t, StatusSkipped, byName["later"].Status)

	var loadErrs int
	for _, f := range summary.Files {
		if f.LoadErr != nil {
			loadErrs++
			require.Contains(t, f.Filename, "broken.check.yaml")
		}
	}
	require.Equal(t, 1, loadErrs)
}

func TestRunPatternFilters(t *testing.T) {
	summary, err := Run(context.Background(), &Config{RunPattern: "^slice-"})
	require.NoError(t, err)
	require.Equal(t, 2, summary.Total())
	require.Contains(t, resultsByName(summary), "slice-aliasing")
	require.Contains(t, resultsByName(summary), "slice-append")

	_, err = Run(context.Background(), &Config{RunPattern: "("})
	require.Error(t, err)
}

func TestDiscoverFiles(t *testing.T) {
	files, err := DiscoverFiles([]string{"testdata"})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join("testdata", "basic.check.yaml")}, files)

	files, err = DiscoverFiles([]string{"testdata/nested/*.yaml", "testdata/nested/failing.check.yaml"})
	require.NoError(t, err)
	require.Len(t, files, 2)

	_, err = DiscoverFiles([]string{"testdata/missing"})
	require.ErrorContains(t, err, "path not found")
}

func TestOutput(t *testing.T) {
	summary, err := Run(context.Background(), &Config{
		Patterns: []string{"testdata/nested/..."},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	NewOutput(OutputConfig{Writer: &buf}).PrintResults(summary)
	out := buf.String()

	require.Contains(t, out, "[OK] older\n")
	require.Contains(t, out, "[OK] multi-array\n")
	require.Contains(t, out, "[Error] wrong-expectation: value: values differ\n")
	require.Contains(t, out, "got:  [1, 2]")
	require.Contains(t, out, "want: [2, 1]")
	require.Contains(t, out, "[Skip] later: not ready\n")
	require.Contains(t, out, "broken.check.yaml")
	require.Contains(t, out, "\nFAIL\n")
	require.NotContains(t, out, "Of Tom and Bob")
	require.NotContains(t, out, "\x1b[")
}

func TestOutputVerbose(t *testing.T) {
	summary, err := Run(context.Background(), &Config{RunPattern: "^older$"})
	require.NoError(t, err)

	var buf bytes.Buffer
	NewOutput(OutputConfig{Writer: &buf, Verbose: true}).PrintResults(summary)
	out := buf.String()

	require.Contains(t, out, "# builtin\n")
	require.Contains(t, out, "    Of Tom and Bob, Bob is older by 7 years\n")
	require.Contains(t, out, "\nPASS\n1 passed")
}
