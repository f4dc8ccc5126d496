package commandrun

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/AntonioJCosta/exerun/internal/core/domain/command"
	"github.com/AntonioJCosta/exerun/internal/core/ports"
)

// Defaults are applied when a RunInput leaves a field unset.
type Defaults struct {
	Executable string        // Used when neither an executable nor a preset is given.
	Timeout    time.Duration // Used when RunInput.Timeout is zero; zero or negative means no limit.
}

type service struct {
	runner   ports.CommandRunner
	presets  ports.PresetProvider
	logger   *slog.Logger
	defaults Defaults
	now      func() time.Time
}

// NewService creates a new command run service.
// It panics if runner is nil. A nil preset provider disables presets and a
// nil logger discards log records.
func NewService(runner ports.CommandRunner, presets ports.PresetProvider, logger *slog.Logger, defaults Defaults) ports.CommandRunService {
	if runner == nil {
		panic("runner cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if strings.TrimSpace(defaults.Executable) == "" {
		defaults.Executable = command.DefaultExecutable
	}
	return &service{
		runner:   runner,
		presets:  presets,
		logger:   logger,
		defaults: defaults,
		now:      time.Now,
	}
}

// Run resolves the executable, runs it against the argument and reports the
// invocation. Every failure is returned; the invocation carries the command
// record whenever a request could be built.
func (s *service) Run(ctx context.Context, in ports.RunInput) (command.Invocation, error) {
	if in.ArgumentPath == "" {
		return command.Invocation{}, fmt.Errorf("%w: a file argument is required", command.ErrInvalidInput)
	}
	if in.Executable != "" && in.Preset != "" {
		return command.Invocation{}, fmt.Errorf("%w: use either an executable or a preset, not both", command.ErrInvalidInput)
	}

	exe, err := s.resolveExecutable(in)
	if err != nil {
		return command.Invocation{}, err
	}

	req, err := command.NewRequest(exe, in.ArgumentPath)
	if err != nil {
		return command.Invocation{}, err
	}
	inv := command.Invocation{Request: req, ExeString: req.ExeString()}

	timeout := in.Timeout
	if timeout == 0 {
		timeout = s.defaults.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	log := s.logger.With("command", inv.ExeString)
	log.Debug("starting command", "timeout", timeout)

	start := s.now()
	res, err := s.runner.Execute(ctx, req, in.Streams)
	inv.Duration = s.now().Sub(start)
	inv.Result = res

	if err != nil {
		log.Error("command failed", "error", err, "duration", inv.Duration)
		return inv, fmt.Errorf("running %s: %w", inv.ExeString, err)
	}

	log.Info("command finished", "exit_code", res.ExitCode, "duration", inv.Duration,
		"stdout_bytes", len(res.Stdout), "stderr_bytes", len(res.Stderr))
	return inv, nil
}

// ListPresets returns all presets, or none when presets are disabled.
func (s *service) ListPresets() ([]command.Preset, error) {
	if s.presets == nil {
		return []command.Preset{}, nil
	}
	presets, err := s.presets.Presets()
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	return presets, nil
}

func (s *service) resolveExecutable(in ports.RunInput) (string, error) {
	switch {
	case in.Executable != "":
		return in.Executable, nil
	case in.Preset != "":
		if s.presets == nil {
			return "", fmt.Errorf("%w: %q (presets are not available)", command.ErrPresetNotFound, in.Preset)
		}
		preset, err := s.presets.Lookup(in.Preset)
		if err != nil {
			return "", err
		}
		s.logger.Debug("resolved preset", "preset", preset.Name, "path", preset.Path)
		return preset.Path, nil
	default:
		return s.defaults.Executable, nil
	}
}
