package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioJCosta/exerun/internal/core/domain/command"
	"github.com/AntonioJCosta/exerun/internal/core/ports"
	"github.com/AntonioJCosta/exerun/internal/core/testutil"
)

func invocation(t *testing.T, exe, arg string, res command.Result) command.Invocation {
	t.Helper()
	req, err := command.NewRequest(exe, arg)
	require.NoError(t, err)
	return command.Invocation{Request: req, ExeString: req.ExeString(), Result: res, Duration: 15 * time.Millisecond}
}

// execute runs the root command with args against svc and returns stdout, stderr and the error.
func execute(t *testing.T, svc ports.CommandRunService, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true

	root := NewRootCommand("test", func(Options) (ports.CommandRunService, error) {
		return svc, nil
	})
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRunCommand_Report(t *testing.T) {
	var gotInput ports.RunInput
	svc := &testutil.MockCommandRunService{
		RunFunc: func(_ context.Context, in ports.RunInput) (command.Invocation, error) {
			gotInput = in
			return invocation(t, "/usr/bin/file", in.ArgumentPath, command.Result{Stdout: "cells.tif: TIFF image data\n"}), nil
		},
	}

	stdout, _, err := execute(t, svc, "run", "--timeout", "3s", "cells.tif")

	require.NoError(t, err)
	assert.Equal(t, ports.RunInput{ArgumentPath: "cells.tif", Timeout: 3 * time.Second}, gotInput)
	assert.Contains(t, stdout, "Command: /usr/bin/file cells.tif")
	assert.Contains(t, stdout, "Standard output:\ncells.tif: TIFF image data\n")
	assert.Contains(t, stdout, "Standard error: (empty)")
	assert.Contains(t, stdout, "Exit code: 0")
}

func TestRunCommand_PassesExecutableAndPreset(t *testing.T) {
	tests := []struct {
		args []string
		want ports.RunInput
	}{
		{args: []string{"run", "-e", "/opt/tool", "a"}, want: ports.RunInput{Executable: "/opt/tool", ArgumentPath: "a"}},
		{args: []string{"run", "--preset", "stat", "a"}, want: ports.RunInput{Preset: "stat", ArgumentPath: "a"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.args), func(t *testing.T) {
			var got ports.RunInput
			svc := &testutil.MockCommandRunService{
				RunFunc: func(_ context.Context, in ports.RunInput) (command.Invocation, error) {
					got = in
					return invocation(t, "/x", in.ArgumentPath, command.Result{}), nil
				},
			}

			_, _, err := execute(t, svc, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunCommand_NonZeroExit(t *testing.T) {
	svc := &testutil.MockCommandRunService{
		RunFunc: func(_ context.Context, in ports.RunInput) (command.Invocation, error) {
			return invocation(t, "/opt/tool", in.ArgumentPath, command.Result{ExitCode: 42, Stderr: "cannot open"}), nil
		},
	}

	stdout, _, err := execute(t, svc, "run", "-e", "/opt/tool", "a")

	var exitErr *ExitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 42, exitErr.Code)
	assert.Contains(t, stdout, "Standard error:\ncannot open\n")
	assert.Contains(t, stdout, "Exit code: 42")
}

func TestRunCommand_RunnerError(t *testing.T) {
	svc := &testutil.MockCommandRunService{
		RunFunc: func(_ context.Context, in ports.RunInput) (command.Invocation, error) {
			inv := invocation(t, "/missing/tool", in.ArgumentPath, command.Result{})
			return inv, fmt.Errorf("running %s: %w", inv.ExeString, command.ErrExecutableNotFound)
		},
	}

	stdout, stderr, err := execute(t, svc, "run", "-e", "/missing/tool", "a")

	require.ErrorIs(t, err, command.ErrExecutableNotFound)
	assert.Contains(t, err.Error(), "could not run command")
	assert.Empty(t, stdout, "no fake output on failure")
	assert.Contains(t, stderr, "Command: /missing/tool a")
}

func TestRunCommand_Quiet(t *testing.T) {
	svc := &testutil.MockCommandRunService{
		RunFunc: func(_ context.Context, in ports.RunInput) (command.Invocation, error) {
			return invocation(t, "/x", in.ArgumentPath, command.Result{Stdout: "raw out", Stderr: "raw err"}), nil
		},
	}

	stdout, stderr, err := execute(t, svc, "run", "-q", "a")

	require.NoError(t, err)
	assert.Equal(t, "raw out", stdout)
	assert.Equal(t, "raw err", stderr)
}

func TestRunCommand_Stream(t *testing.T) {
	svc := &testutil.MockCommandRunService{
		RunFunc: func(_ context.Context, in ports.RunInput) (command.Invocation, error) {
			require.NotNil(t, in.Streams.Stdout)
			require.NotNil(t, in.Streams.Stderr)
			_, _ = in.Streams.Stdout.Write([]byte("live line\n"))
			return invocation(t, "/x", in.ArgumentPath, command.Result{Stdout: "live line\n"}), nil
		},
	}

	stdout, _, err := execute(t, svc, "run", "--stream", "a")

	require.NoError(t, err)
	assert.Contains(t, stdout, "live line\n")
	assert.NotContains(t, stdout, "Standard output:")
	assert.Contains(t, stdout, "Exit code: 0")
}

func TestRunCommand_FlagErrors(t *testing.T) {
	svc := &testutil.MockCommandRunService{}

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing file", args: []string{"run"}},
		{name: "too many files", args: []string{"run", "a", "b"}},
		{name: "exe and preset", args: []string{"run", "-e", "/x", "-p", "stat", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, svc, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestRootCommand_FactoryReceivesOptions(t *testing.T) {
	color.NoColor = true
	var got Options
	root := NewRootCommand("test", func(opts Options) (ports.CommandRunService, error) {
		got = opts
		return nil, errors.New("config broken")
	})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", "/tmp/c.yaml", "--log-level", "debug", "presets"})

	err := root.Execute()

	require.EqualError(t, err, "config broken")
	assert.Equal(t, Options{ConfigPath: "/tmp/c.yaml", LogLevel: "debug"}, got)
}

func TestRootCommand_NilFactory(t *testing.T) {
	root := NewRootCommand("test", nil)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"presets"})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestPresetsCommand(t *testing.T) {
	svc := &testutil.MockCommandRunService{
		ListPresetsFunc: func() ([]command.Preset, error) {
			return []command.Preset{
				{Name: "file", Path: "/usr/bin/file", Description: "Identify the file type"},
				{Name: "bogus", Path: "/definitely/not/here"},
			}, nil
		},
	}

	stdout, _, err := execute(t, svc, "presets")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Presets:")
	assert.Contains(t, stdout, "NAME")
	assert.Contains(t, stdout, "Identify the file type")
	assert.Contains(t, stdout, "/definitely/not/here")
}

func TestPresetsCommand_Empty(t *testing.T) {
	svc := &testutil.MockCommandRunService{
		ListPresetsFunc: func() ([]command.Preset, error) { return nil, nil },
	}

	stdout, _, err := execute(t, svc, "presets")

	require.NoError(t, err)
	assert.Contains(t, stdout, "No presets configured.")
}

func TestPresetsCommand_Error(t *testing.T) {
	svc := &testutil.MockCommandRunService{
		ListPresetsFunc: func() ([]command.Preset, error) { return nil, errors.New("bad yaml") },
	}

	_, _, err := execute(t, svc, "presets")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not list presets: bad yaml")
}

func TestRunCommand_FailureShowsCapturedOutput(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		runErr     error
		wantShown  bool
		wantStdout string
	}{
		{name: "timeout", args: []string{"run", "a"}, runErr: command.ErrTimeout, wantShown: true},
		{name: "timeout while streaming", args: []string{"run", "--stream", "a"}, runErr: command.ErrTimeout, wantShown: false},
		{name: "broken live stream", args: []string{"run", "--stream", "a"}, runErr: command.ErrStreamFailure, wantShown: true},
		{name: "quiet timeout", args: []string{"run", "-q", "a"}, runErr: command.ErrTimeout, wantStdout: "half a line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &testutil.MockCommandRunService{
				RunFunc: func(_ context.Context, in ports.RunInput) (command.Invocation, error) {
					inv := invocation(t, "/opt/slow", in.ArgumentPath, command.Result{ExitCode: -1, Stdout: "half a line", Stderr: "warming up\n"})
					return inv, fmt.Errorf("running %s: %w", inv.ExeString, tt.runErr)
				},
			}

			stdout, stderr, err := execute(t, svc, tt.args...)

			require.ErrorIs(t, err, tt.runErr)
			assert.Equal(t, tt.wantStdout, stdout)
			if tt.wantStdout != "" {
				assert.Equal(t, "warming up\n", stderr)
				return
			}
			assert.Contains(t, stderr, "Command: /opt/slow a")
			if tt.wantShown {
				assert.Contains(t, stderr, "Standard output:\nhalf a line\n")
				assert.Contains(t, stderr, "Standard error:\nwarming up\n")
			} else {
				assert.NotContains(t, stderr, "half a line")
			}
		})
	}
}
