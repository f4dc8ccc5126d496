package ports

import (
	"context"
	"time"

	"github.com/AntonioJCosta/exerun/internal/core/domain/command"
)

// RunInput carries the user's choices for a single run.
type RunInput struct {
	Executable   string        // Explicit executable path or name; overrides Preset.
	Preset       string        // Preset name, used when Executable is empty.
	ArgumentPath string        // File handed to the executable as its only argument.
	Timeout      time.Duration // Zero uses the configured default; negative disables the limit.
	Streams      Streams       // Live mirrors of the child's output, if any.
}

// CommandRunService defines the contract for running executables against files.
type CommandRunService interface {
	// Run resolves the executable, runs it and reports the invocation.
	// The returned Invocation carries the command record even when err is non-nil.
	Run(ctx context.Context, in RunInput) (command.Invocation, error)

	// ListPresets returns all presets known to the service.
	ListPresets() ([]command.Preset, error)
}
