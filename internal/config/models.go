// Package config provides configuration helpers for go-facemesh commands.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultModelDir is the directory name searched for ONNX models.
const DefaultModelDir = "models"

// ModelSearchDirs returns the directories searched for model files, in order:
// ./models, models/ in each parent of the working directory, then models/
// next to the executable.
func ModelSearchDirs() []string {
	var dirs []string

	if cwd, err := os.Getwd(); err == nil {
		for dir := cwd; ; dir = filepath.Dir(dir) {
			dirs = append(dirs, filepath.Join(dir, DefaultModelDir))
			if filepath.Dir(dir) == dir {
				break
			}
		}
	}

	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dirs = append(dirs, filepath.Join(filepath.Dir(exe), DefaultModelDir))
	}

	return dirs
}

// FindModel returns the first existing path for the named model file in dirs.
func FindModel(name string, dirs []string) (string, error) {
	for _, dir := range dirs {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("model %s not found in %d search directories", name, len(dirs))
}

// ModelPath resolves name against ModelSearchDirs.
// Falls back to models/<name> relative to the working directory so callers
// still get a path to report.
func ModelPath(name string) string {
	if p, err := FindModel(name, ModelSearchDirs()); err == nil {
		return p
	}
	return filepath.Join(DefaultModelDir, name)
}
