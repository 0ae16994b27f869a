package check

import (
	"fmt"
	"io"
	"strings"

	"github.com/deepnoodle-ai/wonton/color"
)

// OutputConfig configures output formatting.
type OutputConfig struct {
	// Writer is where output is written.
	Writer io.Writer

	// Verbose shows scenario log lines for passing scenarios too.
	Verbose bool

	// UseColor enables ANSI color codes.
	UseColor bool
}

// Output formats and prints check results.
type Output struct {
	w        io.Writer
	verbose  bool
	useColor bool
}

// NewOutput creates a new Output formatter.
func NewOutput(cfg OutputConfig) *Output {
	return &Output{
		w:        cfg.Writer,
		verbose:  cfg.Verbose,
		useColor: cfg.UseColor,
	}
}

// Result prints the line for one scenario, followed by its failures and,
// when verbose or failed, its log lines.
func (o *Output) Result(r *Result) {
	switch r.Status {
	case StatusPassed:
		fmt.Fprintf(o.w, "%s %s\n", o.colorize(color.Green, "[OK]"), r.Name)
	case StatusSkipped:
		fmt.Fprintf(o.w, "%s %s: %s\n", o.colorize(color.Yellow, "[Skip]"), r.Name, r.SkipReason)
	default:
		fmt.Fprintf(o.w, "%s %s: %s\n", o.colorize(color.Red, "[Error]"), r.Name, r.Detail())
	}

	for i := range r.Failures {
		o.printFailure(&r.Failures[i])
	}

	if o.verbose || r.Status == StatusFailed {
		for _, line := range r.Logs {
			fmt.Fprintf(o.w, "    %s\n", line)
		}
	}
}

func (o *Output) printFailure(f *Failure) {
	fmt.Fprintf(o.w, "    %s\n", f.Message)
	if f.Got != nil {
		fmt.Fprintf(o.w, "        %s:  %s\n", o.colorize(color.Red, "got"), f.Got.Inspect())
	}
	if f.Want != nil {
		fmt.Fprintf(o.w, "        %s: %s\n", o.colorize(color.Green, "want"), f.Want.Inspect())
	}
}

// LoadError prints the error for a scenario file that could not be loaded.
func (o *Output) LoadError(filename string, err error) {
	fmt.Fprintf(o.w, "%s %s\n", o.colorize(color.Red, "[Error]"), filename)
	fmt.Fprintf(o.w, "    %s\n", err.Error())
}

// Summary prints the final status and counts.
func (o *Output) Summary(summary *Summary) {
	fmt.Fprintln(o.w)
	if summary.Success() {
		fmt.Fprintln(o.w, o.colorize(color.Green, "PASS"))
	} else {
		fmt.Fprintln(o.w, o.colorize(color.Red, "FAIL"))
	}

	var parts []string
	if summary.Passed > 0 {
		parts = append(parts, o.colorize(color.Green, fmt.Sprintf("%d passed", summary.Passed)))
	}
	if summary.Failed > 0 {
		parts = append(parts, o.colorize(color.Red, fmt.Sprintf("%d failed", summary.Failed)))
	}
	if summary.Skipped > 0 {
		parts = append(parts, o.colorize(color.Yellow, fmt.Sprintf("%d skipped", summary.Skipped)))
	}
	if summary.Errors > 0 {
		parts = append(parts, o.colorize(color.Red, fmt.Sprintf("%d errors", summary.Errors)))
	}
	if len(parts) > 0 {
		fmt.Fprintf(o.w, "%s (%.3fs)\n", strings.Join(parts, ", "), summary.Duration.Seconds())
	}
}

func (o *Output) colorize(c color.Color, s string) string {
	if o.useColor {
		return c.Apply(s)
	}
	return s
}

// PrintResults prints load errors, then every result grouped by source, then
// the summary.
func (o *Output) PrintResults(summary *Summary) {
	for _, file := range summary.Files {
		if file.LoadErr != nil {
			o.LoadError(file.Filename, file.LoadErr)
		}
	}
	for _, file := range summary.Files {
		if len(file.Results) == 0 {
			continue
		}
		if o.verbose {
			fmt.Fprintf(o.w, "# %s\n", file.Filename)
		}
		for _, r := range file.Results {
			o.Result(r)
		}
	}
	o.Summary(summary)
}
