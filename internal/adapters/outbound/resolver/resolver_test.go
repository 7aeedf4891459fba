package resolver_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lintclimate/lintclimate/internal/adapters/outbound/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFindConfiguration_WalksUpFromFile(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, "tslint.json")
	write(t, cfgPath, `{"rules":{"no-eval":true}}`)
	file := filepath.Join(root, "src", "deep", "app.ts")
	write(t, file, "eval('1')")

	cfg, err := resolver.NewWithHome("").FindConfiguration("", file)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, cfg.Path)
	assert.Equal(t, true, cfg.Rules["no-eval"])
}

func TestFindConfiguration_NearestWins(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "tslint.json"), `{"rules":{"outer":true}}`)
	inner := filepath.Join(root, "pkg", "tslint.yaml")
	write(t, inner, "rules:\n  inner: true\n")
	file := filepath.Join(root, "pkg", "a.ts")
	write(t, file, "")

	cfg, err := resolver.NewWithHome("").FindConfiguration("", file)
	require.NoError(t, err)
	assert.Equal(t, inner, cfg.Path)
	assert.Contains(t, cfg.Rules, "inner")
	assert.NotContains(t, cfg.Rules, "outer")
}

func TestFindConfiguration_HomeFallback(t *testing.T) {
	home := t.TempDir()
	homeCfg := filepath.Join(home, "tslint.yml")
	write(t, homeCfg, "rules:\n  quotemark: [true, double]\n")
	file := filepath.Join(t.TempDir(), "a.ts")
	write(t, file, "")

	cfg, err := resolver.NewWithHome(home).FindConfiguration("", file)
	require.NoError(t, err)
	assert.Equal(t, homeCfg, cfg.Path)
	assert.Contains(t, cfg.Rules, "quotemark")
}

func TestFindConfiguration_NoneFound(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.ts")
	write(t, file, "")

	cfg, err := resolver.NewWithHome("").FindConfiguration("", file)
	require.NoError(t, err)
	assert.Empty(t, cfg.Path)
	assert.Empty(t, cfg.Rules)
}

func TestFindConfiguration_Explicit(t *testing.T) {
	dir := t.TempDir()
	explicit := filepath.Join(dir, "custom.json")
	write(t, explicit, `{"rules":{"no-debugger":true}}`)

	cfg, err := resolver.NewWithHome("").FindConfiguration(explicit, "anything.ts")
	require.NoError(t, err)
	assert.Equal(t, explicit, cfg.Path)

	_, err = resolver.NewWithHome("").FindConfiguration(filepath.Join(dir, "missing.json"), "a.ts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFindConfiguration_Malformed(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "tslint.json")
	write(t, bad, `{"rules":`)
	_, err := resolver.NewWithHome("").FindConfiguration(bad, "a.ts")
	assert.Error(t, err)

	write(t, bad, `{"rules":["no-eval"]}`)
	_, err = resolver.NewWithHome("").FindConfiguration(bad, "a.ts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping")
}

func TestParseConfigFile_WritesTemporaryConfig(t *testing.T) {
	r := resolver.NewWithHome("")
	raw := map[string]any{"rules": map[string]any{"no-eval": true}}

	cfg, err := r.ParseConfigFile(raw)
	require.NoError(t, err)
	assert.Equal(t, "tslint.json", filepath.Base(cfg.Path))
	assert.Equal(t, true, cfg.Rules["no-eval"])

	data, err := os.ReadFile(cfg.Path)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, raw, decoded)

	require.NoError(t, r.Close())
	assert.NoFileExists(t, cfg.Path)
	assert.NoError(t, r.Close(), "closing twice is harmless")
}

func TestParseConfigFile_RejectsNonMappingRules(t *testing.T) {
	r := resolver.NewWithHome("")
	defer r.Close()

	_, err := r.ParseConfigFile(map[string]any{"rules": "all"})
	assert.Error(t, err)
}
