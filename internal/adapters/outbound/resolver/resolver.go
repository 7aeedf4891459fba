package resolver

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lintclimate/lintclimate/internal/domain"
	"gopkg.in/yaml.v3"
)

// configNames are looked up in this order in every directory.
var configNames = []string{"tslint.json", "tslint.yaml", "tslint.yml"}

// Resolver implements domain.ConfigResolver for tslint-style config files.
type Resolver struct {
	home string

	mu     sync.Mutex
	tmpDir string
}

// New creates a Resolver that falls back to the user's home directory when
// no config is found next to a file.
func New() *Resolver {
	home, _ := os.UserHomeDir()
	return &Resolver{home: home}
}

// NewWithHome creates a Resolver with an explicit fallback directory. An
// empty home disables the fallback.
func NewWithHome(home string) *Resolver {
	return &Resolver{home: home}
}

func (r *Resolver) FindConfiguration(explicitPath, filePath string) (*domain.ResolvedConfiguration, error) {
	if explicitPath != "" {
		return load(explicitPath)
	}

	absFile, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", filePath, err)
	}

	for dir := filepath.Dir(absFile); ; dir = filepath.Dir(dir) {
		if path, ok := findIn(dir); ok {
			return load(path)
		}
		if parent := filepath.Dir(dir); parent == dir {
			break
		}
	}

	if r.home != "" {
		if path, ok := findIn(r.home); ok {
			return load(path)
		}
	}

	return &domain.ResolvedConfiguration{}, nil
}

// ParseConfigFile validates an inline configuration and writes it to a
// temporary tslint.json so file-based analyzers can consume it. Call Close
// to remove the temporary files.
func (r *Resolver) ParseConfigFile(raw map[string]any) (*domain.ResolvedConfiguration, error) {
	rules, err := rulesOf(raw)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding inline configuration: %w", err)
	}

	dir, err := r.tempDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, configNames[0])
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("writing inline configuration: %w", err)
	}

	return &domain.ResolvedConfiguration{Path: path, Rules: rules}, nil
}

// Close removes files written for inline configurations.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tmpDir == "" {
		return nil
	}
	err := os.RemoveAll(r.tmpDir)
	r.tmpDir = ""
	return err
}

func (r *Resolver) tempDir() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tmpDir == "" {
		dir, err := os.MkdirTemp("", "lintclimate-config")
		if err != nil {
			return "", fmt.Errorf("creating config dir: %w", err)
		}
		r.tmpDir = dir
	}
	return r.tmpDir, nil
}

func findIn(dir string) (string, bool) {
	for _, name := range configNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func load(path string) (*domain.ResolvedConfiguration, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %s not found", path)
		}
		return nil, err
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(absPath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(absPath), err)
	}

	rules, err := rulesOf(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(absPath), err)
	}

	return &domain.ResolvedConfiguration{Path: absPath, Rules: rules}, nil
}

func rulesOf(raw map[string]any) (map[string]any, error) {
	v, ok := raw["rules"]
	if !ok || v == nil {
		return map[string]any{}, nil
	}
	rules, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("rules must be a mapping, got %T", v)
	}
	return rules, nil
}
