package app

import (
	"context"
	"fmt"
	"os"

	"compose-mode/internal/compose"
	"compose-mode/internal/config"
	"compose-mode/internal/modes"
	"compose-mode/internal/state"
	"compose-mode/pkg/logging"
)

// Application is the main application structure that bootstraps and runs compose-mode
type Application struct {
	config   *Config
	settings config.Settings
	modes    *modes.File
	store    state.ModeStore
	merger   compose.Merger
}

// NewApplication creates and initializes a new application instance.
// It locates and loads the modes file; a missing one is reported as
// modes.ErrModesFileNotFound.
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelWarn
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	// stdout carries the mode listing and status, so logs go to stderr
	logging.InitForCLI(appLogLevel, os.Stderr)

	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}

	var settings config.Settings
	if cfg.Settings != nil {
		settings = *cfg.Settings
	} else {
		loaded, err := config.LoadSettings()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load compose-mode settings")
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = loaded
	}
	if cfg.ModesFile != "" {
		settings.ModesFile = cfg.ModesFile
	}
	if cfg.Output != "" {
		settings.Output = cfg.Output
	}

	workDir := cfg.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		workDir = wd
	}

	modesFile, err := modes.Load(workDir, settings.ModesFile, settings.ShouldStopAtGit())
	if err != nil {
		return nil, err
	}
	logging.Info("Bootstrap", "Using modes file %s", modesFile.Path)

	return &Application{
		config:   cfg,
		settings: settings,
		modes:    modesFile,
		store:    state.NewFileModeStore(modesFile.Resolve(settings.StateFile)),
		merger:   cfg.Merger,
	}, nil
}

// Run executes the operation selected by the configuration
func (a *Application) Run(ctx context.Context) error {
	switch {
	case a.config.wantsStatus():
		return a.Status(ctx, a.config.JSON)
	case a.config.Mode == ListMode:
		return a.List(ctx)
	default:
		return a.Switch(ctx, a.config.Mode)
	}
}

// Modes returns the loaded modes file.
func (a *Application) Modes() *modes.File {
	return a.modes
}

// OutputPath is the absolute path of the generated configuration.
func (a *Application) OutputPath() string {
	return a.modes.Resolve(a.settings.Output)
}

// composeMerger returns the merger, detecting the compose tool on first use
// so that listing without an active mode never needs docker.
func (a *Application) composeMerger(ctx context.Context) (compose.Merger, error) {
	if a.merger != nil {
		return a.merger, nil
	}
	cli, err := compose.Detect(ctx, a.settings.ComposeCommand)
	if err != nil {
		return nil, err
	}
	a.merger = cli
	return a.merger, nil
}
