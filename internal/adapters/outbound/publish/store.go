package publish

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/lintclimate/lintclimate/internal/domain"
)

const reportsDir = ".lintclimate/reports"

// FileStore implements domain.SummaryPublisher by writing one JSON file per
// namespace under the project's .lintclimate directory.
type FileStore struct {
	root string
}

func New(root string) *FileStore {
	return &FileStore{root: root}
}

// Publish replaces the report stored under namespace.
func (s *FileStore) Publish(namespace string, report domain.PublishedReport) error {
	fp := s.path(namespace)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

// Load returns the report stored under namespace, or nil if there is none.
func (s *FileStore) Load(namespace string) (*domain.PublishedReport, error) {
	data, err := os.ReadFile(s.path(namespace))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var report domain.PublishedReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *FileStore) path(namespace string) string {
	return filepath.Join(s.root, reportsDir, namespace+".json")
}
