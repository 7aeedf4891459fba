package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lintclimate/lintclimate/internal/domain"
	"github.com/lintclimate/lintclimate/internal/domain/report"
)

// LintService runs the analyzer over an ordered file list and folds every
// file's result into one RunSummary:
// validate options -> build program -> lint each file in order -> flush outputs -> verdict.
type LintService struct {
	analyzer domain.Analyzer
	programs domain.ProgramLoader
	resolver domain.ConfigResolver
	fs       domain.FileSystem
	reporter domain.Reporter
	newRunID func() string
}

func NewLintService(
	analyzer domain.Analyzer,
	programs domain.ProgramLoader,
	resolver domain.ConfigResolver,
	fs domain.FileSystem,
	reporter domain.Reporter,
) *LintService {
	return &LintService{
		analyzer: analyzer,
		programs: programs,
		resolver: resolver,
		fs:       fs,
		reporter: reporter,
		newRunID: uuid.NewString,
	}
}

// run holds what stays fixed for the whole run.
type run struct {
	opts      domain.Options
	formatter domain.Formatter
	target    domain.OutputTarget
	inline    *domain.ResolvedConfiguration
	program   *domain.Program
}

// fold is the accumulator threaded through the per-file steps.
type fold struct {
	summary domain.RunSummary
	output  []string
}

// Run lints files in order. The returned summary's Pass field is the lint
// verdict; a non-nil error means the run itself failed (bad configuration,
// analyzer failure, unwritable output) and no verdict exists.
func (s *LintService) Run(ctx context.Context, files []string, opts domain.Options) (*domain.RunSummary, error) {
	r, err := s.prepare(opts)
	if err != nil {
		return nil, err
	}

	acc := fold{summary: *domain.NewRunSummary(s.newRunID(), len(files))}
	acc.summary.State = domain.RunProcessing

	for _, path := range files {
		acc, err = s.step(ctx, r, acc, path)
		if err != nil {
			return nil, err
		}
	}

	return s.finalize(r, acc)
}

// prepare resolves everything that must be valid before the first file.
func (s *LintService) prepare(opts domain.Options) (*run, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	formatter, err := domain.ParseFormatter(opts.Formatter)
	if err != nil {
		return nil, err
	}

	r := &run{
		opts:      opts,
		formatter: formatter,
		target:    opts.OutputTarget(),
	}

	if opts.Project != "" {
		program, err := s.programs.CreateProgram(opts.Project)
		if err != nil {
			return nil, &domain.ConfigurationError{Field: "project", Err: err}
		}
		r.program = program
	}

	if opts.Configuration.IsInline() {
		cfg, err := s.resolver.ParseConfigFile(opts.Configuration.Inline)
		if err != nil {
			return nil, &domain.ConfigurationError{Field: "configuration", Err: err}
		}
		r.inline = cfg
	}

	return r, nil
}

// step folds one file into the accumulator. Files are never reordered:
// Run calls step for file i+1 only after file i has been folded in.
func (s *LintService) step(ctx context.Context, r *run, acc fold, path string) (fold, error) {
	if !s.fs.Exists(path) {
		s.reporter.Warn(fmt.Sprintf("Source file %q not found.", path))
		return acc, nil
	}

	cfg, err := s.configurationFor(r, path)
	if err != nil {
		return acc, err
	}

	contents, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, domain.ErrMissingFile) {
			s.reporter.Warn(fmt.Sprintf("Source file %q not found.", path))
			return acc, nil
		}
		return acc, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := s.analyzer.Lint(ctx, domain.LintRequest{
		Path:     path,
		Contents: contents,
		Config:   cfg,
		Fix:      r.opts.Fix,
		Program:  r.program,
	})
	if err != nil {
		return acc, &domain.AnalyzerError{Path: path, Err: err}
	}

	acc.summary.Files = append(acc.summary.Files, path)
	acc.summary.Errors += result.ErrorCount
	acc.summary.Warnings += result.WarningCount

	if result.ErrorCount+result.WarningCount == 0 {
		return acc, nil
	}

	lines, err := report.RenderLines(result.Failures, r.formatter)
	if err != nil {
		return acc, err
	}
	acc.summary.Lines = append(acc.summary.Lines, lines...)
	acc.summary.Diagnostics = append(acc.summary.Diagnostics, result.Failures...)

	if r.target.Inline() {
		s.emit(r.formatter, lines)
	} else {
		acc.output = append(acc.output, lines...)
	}

	if r.opts.CodeClimate {
		acc.summary.Issues = append(acc.summary.Issues, domain.TranslateIssues(result.Failures)...)
	}

	if result.ErrorCount > 0 {
		acc.summary.Pass = false
	}

	return acc, nil
}

func (s *LintService) configurationFor(r *run, path string) (*domain.ResolvedConfiguration, error) {
	if r.inline != nil {
		return r.inline, nil
	}
	cfg, err := s.resolver.FindConfiguration(r.opts.Configuration.Path, path)
	if err != nil {
		return nil, &domain.ConfigurationError{Field: "configuration", Err: fmt.Errorf("resolving for %s: %w", path, err)}
	}
	return cfg, nil
}

func (s *LintService) emit(f domain.Formatter, lines []string) {
	for _, line := range lines {
		if f == domain.FormatMSBuild {
			s.reporter.Alert(line)
		} else {
			s.reporter.Error(line)
		}
	}
}

// finalize writes the accumulated outputs once and computes the verdict.
func (s *LintService) finalize(r *run, acc fold) (*domain.RunSummary, error) {
	summary := acc.summary
	summary.State = domain.RunFinalizing

	if !r.target.Inline() {
		if err := s.flushOutput(r.target, acc.output); err != nil {
			return nil, err
		}
	}

	if r.opts.CodeClimate {
		doc, err := report.RenderIssues(summary.Issues)
		if err != nil {
			return nil, err
		}
		if err := s.fs.WriteFile(r.opts.CodeClimateFile, []byte(doc)); err != nil {
			return nil, fmt.Errorf("writing code climate report: %w", err)
		}
	}

	summary.Message = summary.Verdict()
	summary.State = domain.RunCompleted

	if summary.Pass {
		s.reporter.OK(summary.Message)
	} else {
		s.reporter.Error(summary.Message)
	}

	return &summary, nil
}

// flushOutput writes the buffered lines in one write, after the previous
// file content when appending and in place of it otherwise.
func (s *LintService) flushOutput(target domain.OutputTarget, lines []string) error {
	var b strings.Builder

	if s.fs.Exists(target.Path) {
		if target.Append {
			prev, err := s.fs.ReadFile(target.Path)
			if err != nil {
				return fmt.Errorf("reading output file: %w", err)
			}
			b.Write(prev)
		} else if err := s.fs.Remove(target.Path); err != nil {
			return fmt.Errorf("removing output file: %w", err)
		}
	}

	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if err := s.fs.WriteFile(target.Path, []byte(b.String())); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
