// Package modes loads the modes file: a YAML mapping from mode name to the
// ordered list of compose files that make up that mode.
package modes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"compose-mode/pkg/logging"
)

// File is a loaded modes file.
type File struct {
	// Path is the absolute, symlink-resolved location of the modes file.
	Path string
	// Dir is the directory containing the modes file. Compose file paths,
	// the output file and the state file are all relative to it.
	Dir string
	// Modes maps each mode name to its overlay stack.
	Modes map[string][]string
}

// Load finds the modes file named name from start upwards and parses it.
func Load(start, name string, stopAtGit bool) (*File, error) {
	path, err := Find(start, name, stopAtGit)
	if err != nil {
		return nil, err
	}

	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	f, err := Parse(realPath)
	if err != nil {
		return nil, err
	}
	logging.Debug("Modes", "Loaded %d modes from %s", len(f.Modes), f.Path)
	return f, nil
}

// Parse reads the modes file at path without searching.
func Parse(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read modes file: %w", err)
	}

	modes := map[string][]string{}
	if err := yaml.Unmarshal(data, &modes); err != nil {
		return nil, fmt.Errorf("failed to parse modes file %s: %w", path, err)
	}
	if modes == nil {
		// An empty document unmarshals to a nil map.
		modes = map[string][]string{}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	return &File{
		Path:  absPath,
		Dir:   filepath.Dir(absPath),
		Modes: modes,
	}, nil
}

// Names returns the mode names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Modes))
	for name := range f.Modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stack returns the overlay files for mode.
func (f *File) Stack(mode string) ([]string, error) {
	files, ok := f.Modes[mode]
	if !ok {
		return nil, &UnknownModeError{Mode: mode, Available: f.Names()}
	}
	return files, nil
}

// Resolve returns path unchanged when absolute, otherwise joined onto the modes file directory.
func (f *File) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(f.Dir, path)
}
