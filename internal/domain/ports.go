package domain

import "context"

// Program is a type-information handle built once per run and shared
// read-only by every file analyzed in that run.
type Program struct {
	Project string `json:"project"`
}

// ResolvedConfiguration is the lint configuration that applies to a file.
// Path is empty when no config file was found and analyzer defaults apply.
type ResolvedConfiguration struct {
	Path  string         `json:"path,omitempty"`
	Rules map[string]any `json:"rules,omitempty"`
}

// LintRequest is one analyzer invocation.
type LintRequest struct {
	Path     string
	Contents []byte
	Config   *ResolvedConfiguration
	Fix      bool
	Program  *Program
}

// LintResult is what the analyzer reports for one file.
type LintResult struct {
	ErrorCount   int          `json:"error_count"`
	WarningCount int          `json:"warning_count"`
	Failures     []Diagnostic `json:"failures"`
}

// NewLintResult counts failures by severity.
func NewLintResult(failures []Diagnostic) *LintResult {
	r := &LintResult{Failures: failures}
	for _, f := range failures {
		if f.IsError() {
			r.ErrorCount++
		} else {
			r.WarningCount++
		}
	}
	return r
}

// Analyzer lints a single file.
type Analyzer interface {
	Lint(ctx context.Context, req LintRequest) (*LintResult, error)
}

// ProgramLoader builds the optional type-information handle for a project.
type ProgramLoader interface {
	CreateProgram(projectPath string) (*Program, error)
}

// ConfigResolver finds the lint configuration for files.
type ConfigResolver interface {
	// FindConfiguration loads explicitPath, or the nearest config for
	// filePath when explicitPath is empty.
	FindConfiguration(explicitPath, filePath string) (*ResolvedConfiguration, error)
	// ParseConfigFile turns an inline configuration mapping into a
	// configuration the analyzer can consume.
	ParseConfigFile(raw map[string]any) (*ResolvedConfiguration, error)
}

// FileSystem is the file access a run needs.
type FileSystem interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	Remove(path string) error
}

// Reporter receives the user-facing log lines of a run.
type Reporter interface {
	Warn(msg string)
	Error(msg string)
	OK(msg string)
	// Alert writes a finding line verbatim in failure styling.
	Alert(msg string)
}

// SummaryPublisher exposes a finished run's summary under a namespace for
// downstream consumers.
type SummaryPublisher interface {
	Publish(namespace string, report PublishedReport) error
}

// GitInfo answers questions about the repository being linted.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// OptionsLoader reads run options from a project directory.
type OptionsLoader interface {
	Load(projectPath string) (Options, error)
}
