package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lintclimate/lintclimate/internal/domain"
	"gopkg.in/yaml.v3"
)

// fileNames are tried in order; the first one present wins.
var fileNames = []string{".lintclimate.yaml", ".lintclimate.yml", ".lintclimate.toml"}

// Loader implements domain.OptionsLoader by reading .lintclimate.yaml or
// .lintclimate.toml.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// fileOptions is the on-disk shape. configuration may be a path string or
// an inline rule mapping, so it is decoded untyped first.
type fileOptions struct {
	Configuration   any      `yaml:"configuration"     toml:"configuration"`
	Project         string   `yaml:"project"           toml:"project"`
	Formatter       string   `yaml:"formatter"         toml:"formatter"`
	OutputFile      string   `yaml:"output_file"       toml:"output_file"`
	AppendToOutput  bool     `yaml:"append_to_output"  toml:"append_to_output"`
	Force           bool     `yaml:"force"             toml:"force"`
	Fix             bool     `yaml:"fix"               toml:"fix"`
	CodeClimate     bool     `yaml:"code_climate"      toml:"code_climate"`
	CodeClimateFile string   `yaml:"code_climate_file" toml:"code_climate_file"`
	OutputReport    string   `yaml:"output_report"     toml:"output_report"`
	Files           []string `yaml:"files"             toml:"files"`
	Linter          []string `yaml:"linter"            toml:"linter"`
}

// Load reads the options file from projectPath.
// Returns DefaultOptions if no options file exists.
func (l *Loader) Load(projectPath string) (domain.Options, error) {
	for _, name := range fileNames {
		path := filepath.Join(projectPath, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return domain.Options{}, err
		}
		return parse(name, data)
	}
	return domain.DefaultOptions(), nil
}

func parse(name string, data []byte) (domain.Options, error) {
	var raw fileOptions
	var err error
	if filepath.Ext(name) == ".toml" {
		err = toml.Unmarshal(data, &raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return domain.Options{}, fmt.Errorf("parsing %s: %w", name, err)
	}

	opts, err := raw.toOptions()
	if err != nil {
		return domain.Options{}, fmt.Errorf("invalid %s: %w", name, err)
	}

	// Validate before applying defaults so typos in the user's file surface.
	if err := opts.Validate(); err != nil {
		return domain.Options{}, fmt.Errorf("invalid %s: %w", name, err)
	}

	return opts.WithDefaults(), nil
}

func (f fileOptions) toOptions() (domain.Options, error) {
	src, err := configurationSource(f.Configuration)
	if err != nil {
		return domain.Options{}, err
	}
	return domain.Options{
		Configuration:   src,
		Project:         f.Project,
		Formatter:       f.Formatter,
		OutputFile:      f.OutputFile,
		AppendToOutput:  f.AppendToOutput,
		Force:           f.Force,
		Fix:             f.Fix,
		CodeClimate:     f.CodeClimate,
		CodeClimateFile: f.CodeClimateFile,
		OutputReport:    f.OutputReport,
		Files:           f.Files,
		Linter:          f.Linter,
	}, nil
}

func configurationSource(v any) (domain.ConfigurationSource, error) {
	switch c := v.(type) {
	case nil:
		return domain.ConfigurationSource{}, nil
	case string:
		return domain.ConfigurationSource{Path: c}, nil
	case map[string]any:
		return domain.ConfigurationSource{Inline: c}, nil
	default:
		return domain.ConfigurationSource{}, &domain.ConfigurationError{
			Field: "configuration",
			Err:   fmt.Errorf("must be a path or a mapping, got %T", v),
		}
	}
}
