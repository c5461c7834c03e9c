// ABOUTME: Project .duckie file detection
// ABOUTME: Walks up the directory tree to find the project root
package config

import (
	"os"
	"path/filepath"
)

// ProjectFile is the per-project config file name.
const ProjectFile = ".duckie"

// FindProjectRoot walks up from dir looking for a .duckie file.
// Returns empty string if not found.
func FindProjectRoot(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	current := absDir
	for {
		if info, err := os.Stat(filepath.Join(current, ProjectFile)); err == nil && !info.IsDir() {
			return current, nil
		}

		parent := filepath.Dir(current)

		// Stop at filesystem root or home directory
		if parent == current || current == homeDir {
			return "", nil
		}

		current = parent
	}
}
