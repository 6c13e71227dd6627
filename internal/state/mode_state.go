// Package state persists which mode is currently active.
package state

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ModeStore records the active mode
type ModeStore interface {
	// Current returns the active mode. ok is false when no mode has been selected.
	Current() (mode string, ok bool, err error)
	// Set records mode as active. It does not regenerate anything.
	Set(mode string) error
}

// fileModeStore keeps the mode name as the whole content of a plain text file
type fileModeStore struct {
	path string
}

// NewFileModeStore creates a ModeStore backed by the file at path
func NewFileModeStore(path string) ModeStore {
	return &fileModeStore{path: path}
}

// Current reads the state file; a missing file means no mode is selected
func (s *fileModeStore) Current() (string, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read mode state: %w", err)
	}

	mode := strings.TrimSpace(string(data))
	if mode == "" {
		return "", false, nil
	}
	return mode, true, nil
}

// Set writes mode to the state file, without a trailing newline
func (s *fileModeStore) Set(mode string) error {
	if err := os.WriteFile(s.path, []byte(mode), 0644); err != nil {
		return fmt.Errorf("failed to write mode state: %w", err)
	}
	return nil
}
