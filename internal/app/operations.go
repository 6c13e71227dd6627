package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"compose-mode/internal/color"
	"compose-mode/internal/compose"
	"compose-mode/pkg/logging"
)

const outOfDate = "Out of date!"

// Generate produces the repaired merged configuration for mode.
func (a *Application) Generate(ctx context.Context, mode string) ([]byte, error) {
	files, err := a.modes.Stack(mode)
	if err != nil {
		return nil, err
	}
	merger, err := a.composeMerger(ctx)
	if err != nil {
		return nil, err
	}

	logging.Debug("App", "Generating mode %s from %s", mode, strings.Join(files, ", "))
	out, err := compose.Generate(ctx, merger, a.modes.Dir, files)
	if err != nil {
		return nil, fmt.Errorf("failed to generate configuration for mode %q: %w", mode, err)
	}
	return out, nil
}

// Switch writes the configuration for mode to the output file and records it as active.
func (a *Application) Switch(ctx context.Context, mode string) error {
	out, err := a.Generate(ctx, mode)
	if err != nil {
		return err
	}

	outputPath := a.OutputPath()
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	if err := a.store.Set(mode); err != nil {
		return err
	}

	logging.Info("App", "Switched to mode %s, wrote %s", mode, outputPath)
	return nil
}

// UpToDate reports whether the output file matches a fresh generation of mode.
// A missing output file is out of date.
func (a *Application) UpToDate(ctx context.Context, mode string) (bool, error) {
	expected, err := a.Generate(ctx, mode)
	if err != nil {
		return false, err
	}

	actual, err := os.ReadFile(a.OutputPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read generated configuration: %w", err)
	}
	return string(actual) == string(expected), nil
}

// List prints every mode, sorted, marking the active one and whether its output has drifted.
func (a *Application) List(ctx context.Context) error {
	current, hasCurrent, err := a.store.Current()
	if err != nil {
		return err
	}

	for _, mode := range a.modes.Names() {
		line := mode
		if hasCurrent && mode == current {
			line += " " + a.style(color.ActiveStyle.Render, "*")

			upToDate, err := a.UpToDate(ctx, mode)
			if err != nil {
				return err
			}
			if !upToDate {
				line += " " + a.style(color.WarningStyle.Render, outOfDate)
			}
		}
		if _, err := fmt.Fprintln(a.config.Stdout, line); err != nil {
			return err
		}
	}
	return nil
}

// statusReport is the --json status document.
type statusReport struct {
	Mode  *string `json:"mode"`
	Dirty bool    `json:"dirty"`
}

// Status prints the active mode and whether its output has drifted, either
// as "<mode> y|n" or as JSON. Without an active mode it prints "- n" or a null mode.
func (a *Application) Status(ctx context.Context, jsonOut bool) error {
	current, hasCurrent, err := a.store.Current()
	if err != nil {
		return err
	}

	report := statusReport{}
	if hasCurrent {
		upToDate, err := a.UpToDate(ctx, current)
		if err != nil {
			return err
		}
		report.Mode = &current
		report.Dirty = !upToDate
	}

	if jsonOut {
		data, err := json.Marshal(report)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.config.Stdout, string(data))
		return err
	}

	mode := "-"
	if report.Mode != nil {
		mode = *report.Mode
	}
	dirty := "n"
	if report.Dirty {
		dirty = "y"
	}
	_, err = fmt.Fprintf(a.config.Stdout, "%s %s\n", mode, dirty)
	return err
}

func (a *Application) style(render func(...string) string, s string) string {
	if !a.config.Color {
		return s
	}
	return render(s)
}
