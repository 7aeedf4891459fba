package domain

import (
	"fmt"
	"strings"
)

// DefaultCodeClimateFile is where issues go when code-climate reporting is
// on and no file was named.
const DefaultCodeClimateFile = "code-quality-report.json"

// DefaultLinter is the analyzer command line used when none is configured.
// The file path is appended per invocation.
var DefaultLinter = []string{"tslint", "--format", "json"}

// ConfigurationSource is the lint configuration named by the options: a
// path to a config file, an inline rule mapping, or neither (resolve the
// nearest config per file).
type ConfigurationSource struct {
	Path   string         `json:"path,omitempty"`
	Inline map[string]any `json:"inline,omitempty"`
}

// IsInline reports whether the configuration was given as a mapping.
func (c ConfigurationSource) IsInline() bool { return c.Inline != nil }

// Options holds run-level settings loaded from .lintclimate.yaml or
// .lintclimate.toml, overridden by CLI flags.
type Options struct {
	Configuration   ConfigurationSource `yaml:"-"                 toml:"-"                 json:"configuration"`
	Project         string              `yaml:"project"           toml:"project"           json:"project,omitempty"`
	Formatter       string              `yaml:"formatter"         toml:"formatter"         json:"formatter"`
	OutputFile      string              `yaml:"output_file"       toml:"output_file"       json:"output_file,omitempty"`
	AppendToOutput  bool                `yaml:"append_to_output"  toml:"append_to_output"  json:"append_to_output"`
	Force           bool                `yaml:"force"             toml:"force"             json:"force"`
	Fix             bool                `yaml:"fix"               toml:"fix"               json:"fix"`
	CodeClimate     bool                `yaml:"code_climate"      toml:"code_climate"      json:"code_climate"`
	CodeClimateFile string              `yaml:"code_climate_file" toml:"code_climate_file" json:"code_climate_file,omitempty"`
	OutputReport    string              `yaml:"output_report"     toml:"output_report"     json:"output_report,omitempty"`
	Files           []string            `yaml:"files"             toml:"files"             json:"files,omitempty"`
	Linter          []string            `yaml:"linter"            toml:"linter"            json:"linter,omitempty"`
}

// DefaultOptions returns options that lint with prose output to the console.
func DefaultOptions() Options {
	return Options{
		Formatter: FormatProse.String(),
		Linter:    append([]string(nil), DefaultLinter...),
	}
}

// WithDefaults fills unset fields from DefaultOptions.
func (o Options) WithDefaults() Options {
	if o.Formatter == "" {
		o.Formatter = FormatProse.String()
	}
	if len(o.Linter) == 0 {
		o.Linter = append([]string(nil), DefaultLinter...)
	}
	if o.CodeClimate && o.CodeClimateFile == "" {
		o.CodeClimateFile = DefaultCodeClimateFile
	}
	return o
}

// Validate checks the options for values no run could honor.
func (o Options) Validate() error {
	if _, err := ParseFormatter(o.Formatter); err != nil {
		return err
	}

	if len(o.Linter) > 0 && strings.TrimSpace(o.Linter[0]) == "" {
		return configErrorf("linter", "command must not be empty")
	}

	if o.OutputReport != "" {
		for _, seg := range strings.Split(o.OutputReport, ".") {
			if seg == "" {
				return configErrorf("output_report", "namespace %q has an empty segment", o.OutputReport)
			}
			if strings.ContainsAny(seg, `/\`) {
				return configErrorf("output_report", "namespace %q must not contain path separators", o.OutputReport)
			}
		}
	}

	if o.OutputFile != "" && o.CodeClimate && o.OutputFile == o.CodeClimateFile {
		return configErrorf("code_climate_file", "must differ from output_file %q", o.OutputFile)
	}

	if o.Configuration.Path != "" && o.Configuration.IsInline() {
		return configErrorf("configuration", "set either a path or an inline mapping, not both")
	}

	return nil
}

// OutputTarget is where rendered lines go for a whole run.
type OutputTarget struct {
	Path   string
	Append bool
}

// Inline reports whether lines are emitted to the console as they are
// produced instead of being collected into a file.
func (t OutputTarget) Inline() bool { return t.Path == "" }

func (t OutputTarget) String() string {
	if t.Inline() {
		return "inline"
	}
	if t.Append {
		return fmt.Sprintf("file %s (append)", t.Path)
	}
	return fmt.Sprintf("file %s", t.Path)
}

// OutputTarget derives the run's text output target from the options.
func (o Options) OutputTarget() OutputTarget {
	return OutputTarget{Path: o.OutputFile, Append: o.AppendToOutput}
}
