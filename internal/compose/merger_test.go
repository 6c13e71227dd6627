package compose

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_ConfigArgs(t *testing.T) {
	c := NewCLI([]string{"docker", "compose"})
	args := c.ConfigArgs("/srv/app", []string{"base.yml", "dev.yml"})

	assert.Equal(t, []string{
		"--project-directory", "/srv/app",
		"-f", "base.yml",
		"-f", "dev.yml",
		"config",
	}, args)
}

func TestCLI_Config(t *testing.T) {
	dir := t.TempDir()
	recorder := &mockCommandRecorder{stdout: "services:\n  web:\n    image: nginx\n"}
	c := NewCLI([]string{"docker", "compose"}, WithExecCommand(recorder.execCommand))

	out, err := c.Config(context.Background(), dir, []string{"base.yml", "dev.yml"})
	require.NoError(t, err)
	assert.Equal(t, "services:\n  web:\n    image: nginx\n", string(out))

	inv := recorder.last(t)
	assert.Equal(t, "docker", inv.name)
	assert.Equal(t, "compose", inv.args[0], "subcommand prefix precedes the config args")
	assert.Contains(t, recorder.lastArgs(t), "--project-directory "+dir)
	assert.Contains(t, recorder.lastArgs(t), "-f base.yml -f dev.yml config")
}

func TestCLI_ConfigFailureIncludesStderr(t *testing.T) {
	recorder := &mockCommandRecorder{exitCode: 1, stderr: "service \"web\" has neither an image nor a build context"}
	c := NewCLI([]string{"docker-compose"}, WithExecCommand(recorder.execCommand))

	_, err := c.Config(context.Background(), t.TempDir(), []string{"broken.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docker-compose config failed")
	assert.Contains(t, err.Error(), "neither an image nor a build context")
}

func TestCLI_ConfigEmptyCommand(t *testing.T) {
	_, err := NewCLI(nil).Config(context.Background(), t.TempDir(), nil)
	assert.ErrorIs(t, err, ErrToolNotAvailable)
}

func TestDetect(t *testing.T) {
	ctx := context.Background()

	t.Run("configured command wins", func(t *testing.T) {
		recorder := &mockCommandRecorder{}
		c, err := Detect(ctx, []string{"podman-compose"}, WithExecCommand(recorder.execCommand), WithLookPath(lookPathNone))
		require.NoError(t, err)
		assert.Equal(t, []string{"podman-compose"}, c.Command())
		assert.Empty(t, recorder.invocations, "no probing for a configured command")
	})

	t.Run("docker compose plugin", func(t *testing.T) {
		recorder := &mockCommandRecorder{}
		c, err := Detect(ctx, nil, WithExecCommand(recorder.execCommand), WithLookPath(lookPathAll))
		require.NoError(t, err)
		assert.Equal(t, []string{"docker", "compose"}, c.Command())
		assert.Equal(t, "compose version", recorder.lastArgs(t))
	})

	t.Run("falls back to standalone binary", func(t *testing.T) {
		recorder := &mockCommandRecorder{failOnArg: "version"}
		c, err := Detect(ctx, nil, WithExecCommand(recorder.execCommand), WithLookPath(lookPathAll))
		require.NoError(t, err)
		assert.Equal(t, []string{"/usr/bin/docker-compose"}, c.Command())
	})

	t.Run("nothing available", func(t *testing.T) {
		recorder := &mockCommandRecorder{}
		_, err := Detect(ctx, nil, WithExecCommand(recorder.execCommand), WithLookPath(lookPathNone))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrToolNotAvailable))
		assert.Contains(t, err.Error(), "docker compose, docker-compose")
	})
}

type staticMerger struct {
	out   []byte
	err   error
	calls int
}

func (s *staticMerger) Config(context.Context, string, []string) ([]byte, error) {
	s.calls++
	return s.out, s.err
}

func TestGenerate(t *testing.T) {
	m := &staticMerger{out: []byte(brokenConfig)}

	first, err := Generate(context.Background(), m, "/srv", []string{"a.yml"})
	require.NoError(t, err)
	second, err := Generate(context.Background(), m, "/srv", []string{"a.yml"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, m.calls)
	assert.Contains(t, string(first), "on-failure:3")
}

func TestGenerate_MergeError(t *testing.T) {
	m := &staticMerger{err: errors.New("boom")}
	_, err := Generate(context.Background(), m, "/srv", nil)
	assert.EqualError(t, err, "boom")
}
