package app

import (
	"io"

	"compose-mode/internal/compose"
	"compose-mode/internal/config"
)

// ListMode is the pseudo mode that lists the available modes instead of switching.
const ListMode = "list"

// Config holds the application configuration
type Config struct {
	// Mode to switch to, or ListMode
	Mode string

	// Flag overrides; empty means "use Settings"
	ModesFile string
	Output    string

	// Status output
	MachineReadable bool
	JSON            bool

	// Debug settings
	Debug bool

	// Color enables styled list output
	Color bool

	// WorkDir is where the modes file search starts; empty means the process working directory
	WorkDir string

	// Stdout receives command output
	Stdout io.Writer

	// Settings are the layered tool settings; nil means load them
	Settings *config.Settings

	// Merger overrides compose tool detection
	Merger compose.Merger
}

// NewConfig creates a new application configuration
func NewConfig(mode string, debug bool) *Config {
	if mode == "" {
		mode = ListMode
	}
	return &Config{
		Mode:  mode,
		Debug: debug,
	}
}

// wantsStatus reports whether the invocation only prints the status.
func (c *Config) wantsStatus() bool {
	return c.MachineReadable || c.JSON
}
