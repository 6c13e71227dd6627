package modes

import (
	"fmt"
	"os"
	"path/filepath"

	"compose-mode/pkg/logging"
)

// Find locates name starting at start and walking up the directory tree.
//
// An absolute name is only checked in place. Otherwise each directory is
// checked for name; the walk stops at the filesystem root, or, when
// stopAtGit is set, after checking a directory that contains a .git
// directory. A .git file (submodule, worktree) does not stop the walk, so
// the search leaves submodules for their superproject.
func Find(start, name string, stopAtGit bool) (string, error) {
	if filepath.IsAbs(name) {
		if isFile(name) {
			return name, nil
		}
		return "", &NotFoundError{Name: name}
	}

	current, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	// Walk physical parents, so a start reached through a symlink climbs its target's tree.
	if resolved, err := filepath.EvalSymlinks(current); err == nil {
		current = resolved
	}

	for {
		candidate := filepath.Join(current, name)
		logging.Debug("Modes", "Looking for %s", candidate)
		if isFile(candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached root directory
			return "", &NotFoundError{Name: name}
		}
		if stopAtGit && isDir(filepath.Join(current, ".git")) {
			logging.Debug("Modes", "Stopping search at repository root %s", current)
			return "", &NotFoundError{Name: name}
		}

		if resolved, err := filepath.EvalSymlinks(parent); err == nil {
			parent = resolved
		}
		current = parent
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
