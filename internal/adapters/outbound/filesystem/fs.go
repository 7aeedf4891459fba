package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lintclimate/lintclimate/internal/domain"
)

// OSFileSystem implements domain.FileSystem on the local disk.
type OSFileSystem struct{}

func New() *OSFileSystem {
	return &OSFileSystem{}
}

// Exists reports whether path names a regular file.
func (f *OSFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (f *OSFileSystem) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrMissingFile)
		}
		return nil, err
	}
	return data, nil
}

// WriteFile writes data to path, creating parent directories as needed.
func (f *OSFileSystem) WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Remove deletes path. A file that is already gone is not an error.
func (f *OSFileSystem) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
