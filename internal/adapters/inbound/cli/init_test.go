package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lintclimate/lintclimate/internal/adapters/inbound/cli"
	appconfig "github.com/lintclimate/lintclimate/internal/adapters/outbound/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_CreatesOptionsFile(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".lintclimate.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "formatter: prose")
	assert.Contains(t, string(data), "linter:")
}

func TestInitCmd_OutputLoadsBack(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--formatter", "msbuild", "--code-climate"})
	require.NoError(t, root.Execute())

	opts, err := appconfig.New().Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "msbuild", opts.Formatter)
	assert.True(t, opts.CodeClimate)
	assert.Equal(t, "code-quality-report.json", opts.CodeClimateFile)
	assert.Equal(t, []string{"src/**/*.ts"}, opts.Files)
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".lintclimate.yaml"), []byte("existing"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".lintclimate.yaml"), []byte("old"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--force"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".lintclimate.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "formatter:")
	assert.NotEqual(t, "old", string(data))
}

func TestInitCmd_InvalidFormatter(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--formatter", "stylish"})
	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown formatter")
}
