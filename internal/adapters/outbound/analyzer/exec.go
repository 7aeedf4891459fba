package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/lintclimate/lintclimate/internal/domain"
)

// findingsExitCode is what tslint-compatible linters exit with when they
// report lint errors. It is a successful analysis, not a crash.
const findingsExitCode = 2

// ExecAnalyzer implements domain.Analyzer by running an external linter
// that prints its failures as a JSON array on stdout.
type ExecAnalyzer struct {
	command []string
}

// New creates an ExecAnalyzer. The configuration, project and fix flags
// and then the file path are appended to command on each invocation.
func New(command []string) *ExecAnalyzer {
	if len(command) == 0 {
		command = domain.DefaultLinter
	}
	return &ExecAnalyzer{command: append([]string(nil), command...)}
}

func (a *ExecAnalyzer) Lint(ctx context.Context, req domain.LintRequest) (*domain.LintResult, error) {
	args := append([]string(nil), a.command[1:]...)
	if req.Config != nil && req.Config.Path != "" {
		args = append(args, "--config", req.Config.Path)
	}
	if req.Program != nil {
		args = append(args, "--project", req.Program.Project)
	}
	if req.Fix {
		args = append(args, "--fix")
	}
	args = append(args, req.Path)

	cmd := exec.CommandContext(ctx, a.command[0], args...)
	cmd.Stdin = bytes.NewReader(req.Contents)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || exitErr.ExitCode() != findingsExitCode {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				return nil, fmt.Errorf("running %s: %w", a.command[0], err)
			}
			return nil, fmt.Errorf("running %s: %w: %s", a.command[0], err, msg)
		}
	}

	failures, err := ParseFailures(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("parsing %s output: %w", a.command[0], err)
	}
	return domain.NewLintResult(failures), nil
}

// ParseFailures decodes a linter's JSON failure array. Blank output means
// the file is clean.
func ParseFailures(data []byte) ([]domain.Diagnostic, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var failures []domain.Diagnostic
	if err := json.Unmarshal(data, &failures); err != nil {
		return nil, err
	}
	for i := range failures {
		failures[i].Severity = domain.ParseSeverity(string(failures[i].Severity))
	}
	return failures, nil
}
