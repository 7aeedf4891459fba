package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity is the level an analyzer assigned to a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ParseSeverity normalizes an analyzer-reported severity. Anything that is
// not a warning counts as an error, matching how linters fail a build.
func ParseSeverity(s string) Severity {
	if strings.EqualFold(strings.TrimSpace(s), string(SeverityWarning)) {
		return SeverityWarning
	}
	return SeverityError
}

// Position is a 0-indexed location inside a source file.
type Position struct {
	Character int `json:"character"`
	Line      int `json:"line"`
	Position  int `json:"position"`
}

// Diagnostic is one rule violation reported by the analyzer for one file.
// Field order matches the analyzer's JSON wire shape so re-encoding a
// diagnostic reproduces it byte for byte.
type Diagnostic struct {
	EndPosition   Position        `json:"endPosition"`
	Failure       string          `json:"failure"`
	Fix           json.RawMessage `json:"fix,omitempty"`
	Name          string          `json:"name"`
	RuleName      string          `json:"ruleName"`
	Severity      Severity        `json:"ruleSeverity"`
	StartPosition Position        `json:"startPosition"`
}

// IsError reports whether the diagnostic fails the run.
func (d Diagnostic) IsError() bool { return d.Severity == SeverityError }

// Issue is the fingerprinted, dashboard-facing form of a Diagnostic.
type Issue struct {
	Description string        `json:"description"`
	Fingerprint string        `json:"fingerprint"`
	Location    IssueLocation `json:"location"`
}

type IssueLocation struct {
	Path  string     `json:"path"`
	Lines IssueLines `json:"lines"`
}

type IssueLines struct {
	Begin int `json:"begin"`
}

// RunState tracks where a run is in its lifecycle.
type RunState string

const (
	RunPending    RunState = "pending"
	RunProcessing RunState = "processing"
	RunFinalizing RunState = "finalizing"
	RunCompleted  RunState = "completed"
)

// RunSummary is the aggregate outcome of one pass over a file list.
type RunSummary struct {
	RunID       string       `json:"run_id"`
	CommitHash  string       `json:"commit_hash,omitempty"`
	State       RunState     `json:"state"`
	Pass        bool         `json:"pass"`
	Errors      int          `json:"errors"`
	Warnings    int          `json:"warnings"`
	InputFiles  int          `json:"input_files"`
	Files       []string     `json:"files"`
	Lines       []string     `json:"lines"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	Issues      []Issue      `json:"issues,omitempty"`
	Message     string       `json:"message"`
}

// NewRunSummary returns a pending summary for a run over inputFiles paths.
// A run passes until an error-severity diagnostic says otherwise.
func NewRunSummary(runID string, inputFiles int) *RunSummary {
	return &RunSummary{
		RunID:       runID,
		State:       RunPending,
		Pass:        true,
		InputFiles:  inputFiles,
		Files:       []string{},
		Lines:       []string{},
		Diagnostics: []Diagnostic{},
	}
}

// Failed is the number of findings of any severity.
func (s *RunSummary) Failed() int { return s.Errors + s.Warnings }

// Verdict formats the one-line outcome shown at the end of a run.
func (s *RunSummary) Verdict() string {
	files := pluralize(s.InputFiles, "file", "files")
	switch {
	case s.Pass && s.Warnings == 0:
		return fmt.Sprintf("%d %s lint free", s.InputFiles, files)
	case s.Pass:
		return fmt.Sprintf("%d %s in %d %s",
			s.Warnings, pluralize(s.Warnings, "warning", "warnings"), s.InputFiles, files)
	default:
		return fmt.Sprintf("%d %s and %d %s in %d %s",
			s.Errors, pluralize(s.Errors, "error", "errors"),
			s.Warnings, pluralize(s.Warnings, "warning", "warnings"),
			s.InputFiles, files)
	}
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
