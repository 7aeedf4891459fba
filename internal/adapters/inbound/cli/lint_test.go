package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/lintclimate/lintclimate/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLint prints <file>.json when present and exits 2, the way tslint
// reports findings.
const fakeLint = `#!/bin/sh
for a; do last=$a; done
if [ -f "$last.json" ]; then cat "$last.json"; exit 2; fi
exit 0
`

const errorFile2Findings = `[
{"endPosition":{"character":21,"line":3,"position":90},"failure":"Use of debugger statements is forbidden","name":"errorFile2.ts","ruleName":"no-debugger","ruleSeverity":"ERROR","startPosition":{"character":12,"line":3,"position":81}},
{"endPosition":{"character":16,"line":4,"position":107},"failure":"forbidden eval","name":"errorFile2.ts","ruleName":"no-eval","ruleSeverity":"ERROR","startPosition":{"character":12,"line":4,"position":103}}
]`

// project lays out a directory with a fake linter, one clean file and one
// file with two errors.
func project(t *testing.T) (dir, linter string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	dir = t.TempDir()
	linter = filepath.Join(dir, "fakelint")
	require.NoError(t, os.WriteFile(linter, []byte(fakeLint), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "validFile.ts"), []byte("const a = 1;\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "errorFile2.ts"), []byte("debugger;\neval('1');\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "errorFile2.ts.json"), []byte(errorFile2Findings), 0644))
	return dir, linter
}

func runLint(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"lint"}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestLintCommand_CleanFilePasses(t *testing.T) {
	dir, linter := project(t)

	stdout, _, err := runLint(t, "--path", dir, "--linter", linter, "validFile.ts")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 file lint free")
}

func TestLintCommand_ErrorsFail(t *testing.T) {
	dir, linter := project(t)

	_, stderr, err := runLint(t, "--path", dir, "--linter", linter, "validFile.ts", "errorFile2.ts")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrLintFailed))
	assert.Equal(t, 1, cli.ExitCode(err))
	assert.Contains(t, err.Error(), "2 errors and 0 warnings in 2 files")
	assert.Contains(t, stderr, "ERROR: errorFile2.ts[4, 13]: Use of debugger statements is forbidden")
	assert.Contains(t, stderr, "ERROR: errorFile2.ts[5, 13]: forbidden eval")
}

func TestLintCommand_ForceSucceeds(t *testing.T) {
	dir, linter := project(t)

	_, _, err := runLint(t, "--path", dir, "--linter", linter, "--force", "errorFile2.ts")
	assert.NoError(t, err)
	assert.Equal(t, 0, cli.ExitCode(err))
}

func TestLintCommand_OutputAndCodeClimateFiles(t *testing.T) {
	dir, linter := project(t)

	_, stderr, err := runLint(t, "--path", dir, "--linter", linter, "--force",
		"-t", "verbose", "-o", "lint.out", "--code-climate", "errorFile2.ts")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "forbidden eval", "findings go to the output file")

	out, err := os.ReadFile(filepath.Join(dir, "lint.out"))
	require.NoError(t, err)
	assert.Equal(t,
		"ERROR: (no-debugger) errorFile2.ts[4, 13]: Use of debugger statements is forbidden\n"+
			"ERROR: (no-eval) errorFile2.ts[5, 13]: forbidden eval\n",
		string(out))

	data, err := os.ReadFile(filepath.Join(dir, "code-quality-report.json"))
	require.NoError(t, err)
	var issues []struct {
		Fingerprint string `json:"fingerprint"`
	}
	require.NoError(t, json.Unmarshal(data, &issues))
	require.Len(t, issues, 2)
	assert.Equal(t, "11b290d6e4989aad96493bf288502227", issues[0].Fingerprint)
	assert.Equal(t, "54768ffce890becb45b804cc22ec1d2d", issues[1].Fingerprint)
}

func TestLintCommand_AppendAccumulates(t *testing.T) {
	dir, linter := project(t)
	args := []string{"--path", dir, "--linter", linter, "--force", "-o", "lint.out", "--append", "errorFile2.ts"}

	_, _, err := runLint(t, args...)
	require.NoError(t, err)
	once, err := os.ReadFile(filepath.Join(dir, "lint.out"))
	require.NoError(t, err)

	_, _, err = runLint(t, args...)
	require.NoError(t, err)
	twice, err := os.ReadFile(filepath.Join(dir, "lint.out"))
	require.NoError(t, err)
	assert.Equal(t, string(once)+string(once), string(twice))
}

func TestLintCommand_JSONSummary(t *testing.T) {
	dir, linter := project(t)

	stdout, _, err := runLint(t, "--path", dir, "--linter", linter, "--json", "--force", "validFile.ts", "errorFile2.ts")
	require.NoError(t, err)

	var summary struct {
		Pass    bool     `json:"pass"`
		Errors  int      `json:"errors"`
		Files   []string `json:"files"`
		Message string   `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary), stdout)
	assert.False(t, summary.Pass)
	assert.Equal(t, 2, summary.Errors)
	assert.Len(t, summary.Files, 2)
	assert.Equal(t, "2 errors and 0 warnings in 2 files", summary.Message)
}

func TestLintCommand_SummaryBox(t *testing.T) {
	dir, linter := project(t)

	stdout, _, err := runLint(t, "--path", dir, "--linter", linter, "--summary", "validFile.ts")
	require.NoError(t, err)
	assert.Contains(t, stdout, "PASS")
	assert.Contains(t, stdout, "1 listed, 1 linted")
}

func TestLintCommand_MissingFileWarns(t *testing.T) {
	dir, linter := project(t)

	stdout, stderr, err := runLint(t, "--path", dir, "--linter", linter, "missing.ts", "validFile.ts")
	require.NoError(t, err)
	assert.Contains(t, stderr, "not found")
	assert.Contains(t, stdout, "2 files lint free")
}

func TestLintCommand_PublishesReport(t *testing.T) {
	dir, linter := project(t)

	_, _, err := runLint(t, "--path", dir, "--linter", linter, "--force", "--output-report", "ci.lint", "errorFile2.ts")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, ".lintclimate", "reports", "ci.lint.json"))
}

func TestLintCommand_FilesFromOptionsFile(t *testing.T) {
	dir, linter := project(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lintclimate.yaml"),
		[]byte("files: [\"*.ts\"]\nlinter: [\""+linter+"\"]\nforce: true\n"), 0644))

	stdout, stderr, err := runLint(t, "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "2 errors and 0 warnings in 2 files")
	assert.NotContains(t, stdout, "lint free")
}

func TestLintCommand_NoPatterns(t *testing.T) {
	_, _, err := runLint(t, "--path", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files to lint")
	assert.Equal(t, 2, cli.ExitCode(err))
}

func TestLintCommand_AnalyzerCrash(t *testing.T) {
	dir, _ := project(t)
	crash := filepath.Join(dir, "crash")
	require.NoError(t, os.WriteFile(crash, []byte("#!/bin/sh\necho boom >&2\nexit 3\n"), 0755))

	_, _, err := runLint(t, "--path", dir, "--linter", crash, "validFile.ts")
	require.Error(t, err)
	assert.False(t, errors.Is(err, cli.ErrLintFailed))
	assert.Equal(t, 2, cli.ExitCode(err))
	assert.Contains(t, err.Error(), "boom")
}

func TestLintCommand_InvalidFormatter(t *testing.T) {
	dir, linter := project(t)

	_, _, err := runLint(t, "--path", dir, "--linter", linter, "-t", "stylish", "validFile.ts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown formatter")
}
