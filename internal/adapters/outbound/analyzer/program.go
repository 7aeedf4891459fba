package analyzer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lintclimate/lintclimate/internal/domain"
)

const projectFile = "tsconfig.json"

// ProjectLoader implements domain.ProgramLoader by locating the project
// file that type-aware linting needs.
type ProjectLoader struct{}

func NewProjectLoader() *ProjectLoader {
	return &ProjectLoader{}
}

// CreateProgram accepts a project file or a directory containing
// tsconfig.json.
func (l *ProjectLoader) CreateProgram(projectPath string) (*domain.Program, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving project path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("opening project: %w", err)
	}
	if info.IsDir() {
		absPath = filepath.Join(absPath, projectFile)
		if _, err := os.Stat(absPath); err != nil {
			return nil, fmt.Errorf("no %s in project directory: %w", projectFile, err)
		}
	}

	return &domain.Program{Project: absPath}, nil
}
