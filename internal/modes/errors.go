package modes

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrModesFileNotFound is the sentinel error wrapped by NotFoundError.
	ErrModesFileNotFound = errors.New("modes file not found")

	// ErrUnknownMode is the sentinel error wrapped by UnknownModeError.
	ErrUnknownMode = errors.New("unknown mode")
)

// NotFoundError is returned when the modes file is not found in the search path.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found here or any directory above here", e.Name)
}

// Unwrap returns ErrModesFileNotFound so callers can use errors.Is.
func (e *NotFoundError) Unwrap() error { return ErrModesFileNotFound }

// UnknownModeError is returned when a mode name has no entry in the modes file.
type UnknownModeError struct {
	Mode      string
	Available []string
}

func (e *UnknownModeError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("unknown mode %q: the modes file defines no modes", e.Mode)
	}
	return fmt.Sprintf("unknown mode %q (available: %s)", e.Mode, strings.Join(e.Available, ", "))
}

// Unwrap returns ErrUnknownMode so callers can use errors.Is.
func (e *UnknownModeError) Unwrap() error { return ErrUnknownMode }
