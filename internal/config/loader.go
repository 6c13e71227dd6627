package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"compose-mode/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/compose-mode"
	projectConfigDir = ".compose-mode"
	configFileName   = "config.yaml"
)

// LoadSettings loads the compose-mode settings by layering default, user, and project files.
func LoadSettings() (Settings, error) {
	settings := GetDefaultSettings()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else {
		settings, err = overlayFromFile(settings, userConfigPath)
		if err != nil {
			return Settings{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else {
		settings, err = overlayFromFile(settings, projectConfigPath)
		if err != nil {
			return Settings{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	return settings, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func overlayFromFile(base Settings, path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadSettingsFromFile(path)
	if err != nil {
		return Settings{}, err
	}
	logging.Debug("Config", "Applied settings from %s", path)
	return mergeSettings(base, overlay), nil
}

// loadSettingsFromFile loads Settings from a YAML file.
func loadSettingsFromFile(filePath string) (Settings, error) {
	var settings Settings
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Settings{}, err
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// mergeSettings merges 'overlay' into 'base'. Only fields set in overlay win.
func mergeSettings(base, overlay Settings) Settings {
	merged := base

	if overlay.ModesFile != "" {
		merged.ModesFile = overlay.ModesFile
	}
	if overlay.Output != "" {
		merged.Output = overlay.Output
	}
	if overlay.StateFile != "" {
		merged.StateFile = overlay.StateFile
	}
	if len(overlay.ComposeCommand) > 0 {
		merged.ComposeCommand = append([]string(nil), overlay.ComposeCommand...)
	}
	if overlay.StopAtGit != nil {
		stop := *overlay.StopAtGit
		merged.StopAtGit = &stop
	}

	return merged
}
