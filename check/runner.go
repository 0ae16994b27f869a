package check

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// BuiltinSource is the source name reported for the built-in fixtures.
const BuiltinSource = "builtin"

// Config holds configuration for a check run.
type Config struct {
	// Patterns specifies scenario files or directories to search. A
	// trailing "..." searches recursively.
	Patterns []string

	// RunPattern filters scenarios to run by name regex.
	RunPattern string

	// SkipFixtures disables the built-in fixture scenarios.
	SkipFixtures bool

	// Logger receives debug output. Nil discards it.
	Logger *zerolog.Logger
}

// DiscoverFiles finds all *.check.yaml files matching the given patterns.
func DiscoverFiles(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		if isScenarioFile(path) && !seen[path] {
			files = append(files, path)
			seen[path] = true
		}
	}

	for _, pattern := range patterns {
		if strings.Contains(pattern, "*") {
			matches, err := filepath.Glob(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			for _, m := range matches {
				add(m)
			}
			continue
		}

		recursive := false
		searchDir := pattern
		if strings.HasSuffix(pattern, "...") {
			recursive = true
			searchDir = strings.TrimSuffix(strings.TrimSuffix(pattern, "..."), "/")
			if searchDir == "" {
				searchDir = "."
			}
		}

		info, err := os.Stat(searchDir)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("path not found: %s", searchDir)
			}
			return nil, err
		}

		switch {
		case !info.IsDir():
			add(pattern)
		case recursive:
			err = filepath.Walk(searchDir, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() {
					add(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		default:
			entries, err := os.ReadDir(searchDir)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				if !e.IsDir() {
					add(filepath.Join(searchDir, e.Name()))
				}
			}
		}
	}

	return files, nil
}

func isScenarioFile(path string) bool {
	return strings.HasSuffix(path, ".check.yaml") || strings.HasSuffix(path, ".check.yml")
}

// Run executes the built-in fixtures and every discovered scenario file.
func Run(ctx context.Context, cfg *Config) (*Summary, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	files, err := DiscoverFiles(cfg.Patterns)
	if err != nil {
		return nil, err
	}
	log.Debug().Strs("files", files).Msg("discovered scenario files")

	var runRe *regexp.Regexp
	if cfg.RunPattern != "" {
		runRe, err = regexp.Compile(cfg.RunPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid run pattern: %w", err)
		}
	}

	summary := &Summary{}
	start := time.Now()

	if !cfg.SkipFixtures {
		summary.Files = append(summary.Files, runScenarios(ctx, log, BuiltinSource, Fixtures(), runRe))
	}
	for _, file := range files {
		summary.Files = append(summary.Files, runFile(ctx, log, file, runRe))
	}

	summary.Duration = time.Since(start)
	summary.ComputeTotals()
	log.Debug().
		Int("passed", summary.Passed).
		Int("failed", summary.Failed).
		Int("errors", summary.Errors).
		Dur("duration", summary.Duration).
		Msg("check finished")
	return summary, nil
}

func runFile(ctx context.Context, log zerolog.Logger, filename string, runRe *regexp.Regexp) *FileResult {
	doc, err := LoadFile(filename)
	if err != nil {
		log.Debug().Err(err).Str("file", filename).Msg("load failed")
		return &FileResult{Filename: filename, LoadErr: err}
	}
	scenarios := make([]Scenario, len(doc.Scenarios))
	for i, spec := range doc.Scenarios {
		scenarios[i] = spec.Scenario()
	}
	return runScenarios(ctx, log, filename, scenarios, runRe)
}

func runScenarios(ctx context.Context, log zerolog.Logger, source string, scenarios []Scenario, runRe *regexp.Regexp) *FileResult {
	result := &FileResult{Filename: source}
	for _, s := range scenarios {
		if runRe != nil && !runRe.MatchString(s.Name) {
			continue
		}
		log.Debug().Str("source", source).Str("scenario", s.Name).Msg("running")
		r := RunScenario(ctx, s)
		log.Debug().
			Str("scenario", s.Name).
			Stringer("status", r.Status).
			Dur("duration", r.Duration).
			Msg("finished")
		result.Results = append(result.Results, r)
	}
	return result
}

// RunScenario executes one scenario against a fresh runtime module. A panic
// inside the scenario is reported as an error.
func RunScenario(ctx context.Context, s Scenario) (result *Result) {
	result = &Result{Name: s.Name}
	t := newT(s.Name)
	start := time.Now()

	defer func() {
		result.Duration = time.Since(start)
		if r := recover(); r != nil {
			result.Status = StatusError
			result.Error = fmt.Errorf("panic: %v", r)
		}
	}()

	err := s.Run(ctx, t)
	result.Logs = t.Logs()
	result.Failures = t.Failures()

	switch {
	case err != nil:
		result.Status = StatusError
		result.Error = err
	case t.skipped:
		result.Status = StatusSkipped
		result.SkipReason = t.skipReason
	case t.Failed():
		result.Status = StatusFailed
	default:
		result.Status = StatusPassed
	}
	return result
}
