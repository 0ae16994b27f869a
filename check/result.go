// Package check runs scenarios that exercise composite values end to end
// through the runtime module, and reports each one as [OK] or [Error].
//
// Built-in fixture scenarios reproduce the classic demonstrations of Go
// composite semantics (struct comparison, array initialization, multi
// dimensional arrays, slice aliasing and map lookup). Additional scenarios
// can be described in *.check.yaml files.
package check

import (
	"time"

	"github.com/deepnoodle-ai/composite/object"
)

// Status represents the outcome of a scenario.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusSkipped
	StatusError
)

// String returns the string representation of a Status.
func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "PASS"
	case StatusFailed:
		return "FAIL"
	case StatusSkipped:
		return "SKIP"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Failure describes one failed expectation.
type Failure struct {
	Message string
	Got     object.Object // may be nil
	Want    object.Object // may be nil
}

// Result holds the outcome of a single scenario.
type Result struct {
	Name       string
	Status     Status
	Duration   time.Duration
	Failures   []Failure
	Logs       []string
	SkipReason string
	Error      error // set when Status == StatusError
}

// Detail returns a one-line explanation of a result that did not pass.
func (r *Result) Detail() string {
	switch {
	case r.Error != nil:
		return r.Error.Error()
	case len(r.Failures) > 0:
		return r.Failures[0].Message
	case r.Status == StatusSkipped:
		return r.SkipReason
	default:
		return ""
	}
}

// FileResult holds the results of all scenarios from one source. Built-in
// fixtures are reported under the source name "builtin".
type FileResult struct {
	Filename string
	Results  []*Result
	LoadErr  error
}

func (f *FileResult) count(status Status) int {
	n := 0
	for _, r := range f.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Passed returns the number of passed scenarios in this file.
func (f *FileResult) Passed() int { return f.count(StatusPassed) }

// Failed returns the number of failed scenarios in this file.
func (f *FileResult) Failed() int { return f.count(StatusFailed) }

// Skipped returns the number of skipped scenarios in this file.
func (f *FileResult) Skipped() int { return f.count(StatusSkipped) }

// Errors returns the number of errored scenarios in this file.
func (f *FileResult) Errors() int { return f.count(StatusError) }

// Summary aggregates results across all sources.
type Summary struct {
	Files    []*FileResult
	Passed   int
	Failed   int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// Total returns the total number of scenarios run.
func (s *Summary) Total() int {
	return s.Passed + s.Failed + s.Skipped + s.Errors
}

// Success returns true if no scenario failed or errored and every file
// loaded.
func (s *Summary) Success() bool {
	for _, f := range s.Files {
		if f.LoadErr != nil {
			return false
		}
	}
	return s.Failed == 0 && s.Errors == 0
}

// ComputeTotals recalculates the aggregate counts from all file results.
func (s *Summary) ComputeTotals() {
	s.Passed, s.Failed, s.Skipped, s.Errors = 0, 0, 0, 0
	for _, f := range s.Files {
		s.Passed += f.Passed()
		s.Failed += f.Failed()
		s.Skipped += f.Skipped()
		s.Errors += f.Errors()
	}
}
