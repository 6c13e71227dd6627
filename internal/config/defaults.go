package config

const (
	// DefaultModesFile is the modes file name searched for when none is given.
	DefaultModesFile = "compose-modes.yml"
	// DefaultOutput is where the merged configuration is written.
	DefaultOutput = "docker-compose.yml"
	// DefaultStateFile records the active mode.
	DefaultStateFile = ".compose-mode.state"
)

// GetDefaultSettings returns the built-in configuration.
// Compose command detection is left to the compose package.
func GetDefaultSettings() Settings {
	stopAtGit := true
	return Settings{
		ModesFile:      DefaultModesFile,
		Output:         DefaultOutput,
		StateFile:      DefaultStateFile,
		ComposeCommand: nil,
		StopAtGit:      &stopAtGit,
	}
}
