package compose

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"compose-mode/pkg/logging"
)

// ErrToolNotAvailable is the sentinel error wrapped by ToolNotAvailableError.
var ErrToolNotAvailable = errors.New("compose tool not available")

type (
	// Merger produces the merged configuration of a stack of compose files.
	Merger interface {
		// Config merges files, in order, for the project rooted at dir.
		Config(ctx context.Context, dir string, files []string) ([]byte, error)
	}

	// ExecCommandFunc is the function signature for creating exec.Cmd.
	// This allows injection of mock implementations for testing.
	ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// LookPathFunc resolves a binary name on PATH.
	LookPathFunc func(file string) (string, error)

	// Option configures a CLI.
	Option func(*CLI)

	// CLI runs a compose command line tool to merge configurations.
	CLI struct {
		command     []string // argv prefix, e.g. ["docker", "compose"]
		execCommand ExecCommandFunc
		lookPath    LookPathFunc
	}

	// ToolNotAvailableError is returned when no compose tool can be found.
	ToolNotAvailableError struct {
		Tried []string
	}
)

func (e *ToolNotAvailableError) Error() string {
	return fmt.Sprintf("no compose tool is available (tried: %s)", strings.Join(e.Tried, ", "))
}

// Unwrap returns ErrToolNotAvailable so callers can use errors.Is.
func (e *ToolNotAvailableError) Unwrap() error { return ErrToolNotAvailable }

// WithExecCommand sets a custom exec command function for testing.
func WithExecCommand(fn ExecCommandFunc) Option {
	return func(c *CLI) {
		c.execCommand = fn
	}
}

// WithLookPath sets a custom PATH lookup for testing.
func WithLookPath(fn LookPathFunc) Option {
	return func(c *CLI) {
		c.lookPath = fn
	}
}

// NewCLI creates a CLI merger invoking command, e.g. []string{"docker", "compose"}.
func NewCLI(command []string, opts ...Option) *CLI {
	c := &CLI{
		command:     append([]string(nil), command...),
		execCommand: exec.CommandContext,
		lookPath:    exec.LookPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Detect returns a CLI for the first usable compose tool.
//
// A non-empty configured command is used as-is. Otherwise the docker
// compose plugin is preferred, then a standalone docker-compose binary.
func Detect(ctx context.Context, configured []string, opts ...Option) (*CLI, error) {
	if len(configured) > 0 {
		return NewCLI(configured, opts...), nil
	}

	plugin := NewCLI([]string{"docker", "compose"}, opts...)
	if plugin.Available(ctx) {
		logging.Debug("Compose", "Using docker compose plugin")
		return plugin, nil
	}

	probe := NewCLI(nil, opts...)
	if path, err := probe.lookPath("docker-compose"); err == nil {
		logging.Debug("Compose", "Using standalone %s", path)
		return NewCLI([]string{path}, opts...), nil
	}

	return nil, &ToolNotAvailableError{Tried: []string{"docker compose", "docker-compose"}}
}

// Command returns the argv prefix used to invoke compose.
func (c *CLI) Command() []string {
	return append([]string(nil), c.command...)
}

// Available checks if the compose command runs.
func (c *CLI) Available(ctx context.Context) bool {
	if len(c.command) == 0 {
		return false
	}
	if _, err := c.lookPath(c.command[0]); err != nil {
		return false
	}
	cmd := c.createCommand(ctx, "version")
	return cmd.Run() == nil
}

// ConfigArgs builds the arguments, after the command prefix, for a config merge.
func (c *CLI) ConfigArgs(dir string, files []string) []string {
	args := make([]string, 0, 3+2*len(files))
	args = append(args, "--project-directory", dir)
	for _, f := range files {
		args = append(args, "-f", f)
	}
	return append(args, "config")
}

// Config runs the merge and returns compose's stdout.
func (c *CLI) Config(ctx context.Context, dir string, files []string) ([]byte, error) {
	if len(c.command) == 0 {
		return nil, &ToolNotAvailableError{Tried: []string{"<empty command>"}}
	}

	args := c.ConfigArgs(dir, files)
	cmd := c.createCommand(ctx, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.Debug("Compose", "Running %s %s", strings.Join(c.command, " "), strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s config failed: %w: %s", strings.Join(c.command, " "), err, strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}

func (c *CLI) createCommand(ctx context.Context, args ...string) *exec.Cmd {
	full := append(c.command[1:len(c.command):len(c.command)], args...)
	return c.execCommand(ctx, c.command[0], full...)
}

// Generate merges files with m and repairs the result.
func Generate(ctx context.Context, m Merger, dir string, files []string) ([]byte, error) {
	merged, err := m.Config(ctx, dir, files)
	if err != nil {
		return nil, err
	}
	return Repair(merged)
}
