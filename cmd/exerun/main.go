package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AntonioJCosta/exerun/internal/adapters/oscommand"
	"github.com/AntonioJCosta/exerun/internal/adapters/presets"
	"github.com/AntonioJCosta/exerun/internal/config"
	"github.com/AntonioJCosta/exerun/internal/core/ports"
	"github.com/AntonioJCosta/exerun/internal/core/services/commandrun"
	"github.com/AntonioJCosta/exerun/internal/handlers/cli"
	"github.com/AntonioJCosta/exerun/internal/handlers/ui"
	"github.com/AntonioJCosta/exerun/internal/logging"
)

// Version is set at build time
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(Version, newService)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
	os.Exit(1)
}

// newService wires the run service from configuration once flags are parsed.
func newService(opts cli.Options) (ports.CommandRunService, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	if err := cfg.OverrideLogLevel(opts.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	logger.Debug("configuration loaded", "executable", cfg.Executable, "timeout", cfg.Timeout, "presets_file", cfg.PresetsFile)

	runner := oscommand.NewRunner(oscommand.WithWaitDelay(cfg.WaitDelay))
	presetProvider := presets.NewYAMLProvider(cfg.PresetsFile)

	return commandrun.NewService(runner, presetProvider, logger, commandrun.Defaults{
		Executable: cfg.Executable,
		Timeout:    cfg.Timeout,
	}), nil
}
