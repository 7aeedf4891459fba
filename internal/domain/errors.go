package domain

import (
	"errors"
	"fmt"
)

// ErrMissingFile marks a listed source path that does not exist. Runs skip
// such files with a warning instead of failing.
var ErrMissingFile = errors.New("source file not found")

// AnalyzerError is a hard failure of the analyzer for one file. It aborts
// the run and is distinct from lint findings.
type AnalyzerError struct {
	Path string
	Err  error
}

func (e *AnalyzerError) Error() string {
	return fmt.Sprintf("analyzing %s: %v", e.Path, e.Err)
}

func (e *AnalyzerError) Unwrap() error { return e.Err }

// ConfigurationError reports options or lint configuration that cannot be
// resolved.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid configuration: %v", e.Err)
	}
	return fmt.Sprintf("invalid configuration %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func configErrorf(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Err: fmt.Errorf(format, args...)}
}
