package config

// Settings is the top-level configuration structure for compose-mode.
// Every field can also be overridden by a command line flag.
type Settings struct {
	ModesFile string `yaml:"modesFile,omitempty"` // Name or path of the modes file, searched upwards when relative
	Output    string `yaml:"output,omitempty"`    // Merged configuration written here, relative to the modes file directory
	StateFile string `yaml:"stateFile,omitempty"` // Current-mode state file, relative to the modes file directory

	// ComposeCommand is the argv prefix used to invoke compose, e.g. ["docker", "compose"].
	// Empty means auto-detect.
	ComposeCommand []string `yaml:"composeCommand,omitempty"`

	// StopAtGit halts the modes file search at the first directory holding a .git directory.
	// A pointer so that an explicit false in an overlay file is distinguishable from "unset".
	StopAtGit *bool `yaml:"stopAtGit,omitempty"`
}

// ShouldStopAtGit reports the effective StopAtGit value.
func (s Settings) ShouldStopAtGit() bool {
	if s.StopAtGit == nil {
		return true
	}
	return *s.StopAtGit
}
