package domain_test

import (
	"errors"
	"testing"

	"github.com/lintclimate/lintclimate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions_Valid(t *testing.T) {
	opts := domain.DefaultOptions()
	require.NoError(t, opts.Validate())
	assert.Equal(t, "prose", opts.Formatter)
	assert.Equal(t, domain.DefaultLinter, opts.Linter)
	assert.True(t, opts.OutputTarget().Inline())
}

func TestOptions_WithDefaults(t *testing.T) {
	opts := domain.Options{CodeClimate: true}.WithDefaults()
	assert.Equal(t, "prose", opts.Formatter)
	assert.Equal(t, domain.DefaultCodeClimateFile, opts.CodeClimateFile)
	assert.NotEmpty(t, opts.Linter)

	explicit := domain.Options{CodeClimate: true, CodeClimateFile: "cc.json", Formatter: "json"}.WithDefaults()
	assert.Equal(t, "cc.json", explicit.CodeClimateFile)
	assert.Equal(t, "json", explicit.Formatter)
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    domain.Options
		wantErr string
	}{
		{"unknown formatter", domain.Options{Formatter: "checkstyle"}, "unknown formatter"},
		{"empty linter command", domain.Options{Linter: []string{" "}}, "linter"},
		{"empty namespace segment", domain.Options{OutputReport: "reports..lint"}, "empty segment"},
		{"namespace with separator", domain.Options{OutputReport: "reports/lint"}, "path separators"},
		{"same output and code climate file", domain.Options{OutputFile: "out.json", CodeClimate: true, CodeClimateFile: "out.json"}, "must differ"},
		{"path and inline configuration", domain.Options{Configuration: domain.ConfigurationSource{Path: "tslint.json", Inline: map[string]any{}}}, "not both"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var cfgErr *domain.ConfigurationError
			assert.True(t, errors.As(err, &cfgErr), "should be a ConfigurationError")
		})
	}
}

func TestOptions_ValidNamespace(t *testing.T) {
	opts := domain.Options{OutputReport: "reports.lint"}
	assert.NoError(t, opts.Validate())
}

func TestOptions_OutputTarget(t *testing.T) {
	target := domain.Options{OutputFile: "tmp/out", AppendToOutput: true}.OutputTarget()
	assert.False(t, target.Inline())
	assert.True(t, target.Append)
	assert.Equal(t, "tmp/out", target.Path)
	assert.Equal(t, "file tmp/out (append)", target.String())

	assert.Equal(t, "inline", domain.Options{AppendToOutput: true}.OutputTarget().String())
}

func TestParseFormatter(t *testing.T) {
	tests := map[string]domain.Formatter{
		"":        domain.FormatProse,
		"prose":   domain.FormatProse,
		"JSON":    domain.FormatJSON,
		"msbuild": domain.FormatMSBuild,
		"Verbose": domain.FormatVerbose,
	}
	for name, want := range tests {
		got, err := domain.ParseFormatter(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := domain.ParseFormatter("stylish")
	assert.Error(t, err)
}
