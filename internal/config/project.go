package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Project represents a vhdlang.yml project configuration.
type Project struct {
	// Standard is the VHDL revision, e.g. "2008". Informational for now.
	Standard string `yaml:"standard,omitempty"`

	// Libraries maps a library name to its source file patterns.
	Libraries map[string]Library `yaml:"libraries"`

	// Dir is the directory the project file was loaded from.
	Dir string `yaml:"-"`
}

// Library lists the source files of one design library.
type Library struct {
	// Files are paths or glob patterns relative to the project file.
	Files []string `yaml:"files"`
}

// Load parses and validates a project file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var project Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	project.Dir = filepath.Dir(path)

	if len(project.Libraries) == 0 {
		return nil, fmt.Errorf("%s: no libraries configured", path)
	}
	for name, lib := range project.Libraries {
		if len(lib.Files) == 0 {
			return nil, fmt.Errorf("%s: library %q lists no files", path, name)
		}
	}
	return &project, nil
}

// SourceFiles expands the configured patterns into concrete file paths,
// keeping only recognized source extensions.
func (p *Project) SourceFiles() ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, lib := range p.Libraries {
		for _, pattern := range lib.Files {
			matches, err := filepath.Glob(filepath.Join(p.Dir, pattern))
			if err != nil {
				return nil, err
			}
			for _, match := range matches {
				if !IsSourceFile(match) || seen[match] {
					continue
				}
				seen[match] = true
				files = append(files, match)
			}
		}
	}
	return files, nil
}

// IsSourceFile checks if a file has a recognized source extension.
func IsSourceFile(path string) bool {
	for _, ext := range SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
