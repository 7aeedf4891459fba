package scanner

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
	".lintclimate": true,
}

// DefaultExtensions are the source files picked up when a directory is
// listed.
var DefaultExtensions = []string{".ts", ".tsx"}

// FileScanner expands file patterns into the ordered list of paths a run
// lints.
type FileScanner struct {
	extensions []string
}

func New(extensions ...string) *FileScanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &FileScanner{extensions: extensions}
}

// Expand resolves patterns relative to root, keeping pattern order and
// dropping duplicates. Globs (including ** for any number of directories)
// expand to their sorted matches, directories to the source files below
// them, and anything else is kept verbatim so missing files are reported
// by the run rather than silently dropped.
func (s *FileScanner) Expand(root string, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, pattern := range patterns {
		full := pattern
		if !filepath.IsAbs(full) {
			full = filepath.Join(root, pattern)
		}

		switch {
		case strings.Contains(pattern, "**"):
			matches, err := s.walkMatch(root, filepath.ToSlash(pattern))
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				add(m)
			}
		case strings.ContainsAny(pattern, "*?["):
			matches, err := filepath.Glob(full)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				if info, err := os.Stat(m); err == nil && !info.IsDir() {
					add(m)
				}
			}
		case isDir(full):
			matches, err := s.walkSources(full)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				add(m)
			}
		default:
			add(full)
		}
	}

	return files, nil
}

func (s *FileScanner) walkSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != dir && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if s.isSource(d.Name()) {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}

func (s *FileScanner) walkMatch(root, pattern string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if matchSegments(strings.Split(pattern, "/"), strings.Split(filepath.ToSlash(rel), "/")) {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}

func (s *FileScanner) isSource(name string) bool {
	if strings.HasSuffix(name, ".d.ts") {
		return false
	}
	for _, ext := range s.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// matchSegments matches a slash-separated glob where ** spans zero or more
// path segments.
func matchSegments(pattern, name []string) bool {
	if len(pattern) == 0 {
		return len(name) == 0
	}
	if pattern[0] == "**" {
		for i := 0; i <= len(name); i++ {
			if matchSegments(pattern[1:], name[i:]) {
				return true
			}
		}
		return false
	}
	if len(name) == 0 {
		return false
	}
	ok, err := path.Match(pattern[0], name[0])
	if err != nil || !ok {
		return false
	}
	return matchSegments(pattern[1:], name[1:])
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
