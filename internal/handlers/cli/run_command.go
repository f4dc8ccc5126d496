package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/exerun/internal/core/domain/command"
	"github.com/AntonioJCosta/exerun/internal/core/ports"
)

// NewRunCommand creates the 'run' subcommand.
func NewRunCommand(service func() ports.CommandRunService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run an executable with FILE as its only argument.",
		Long: `Runs the executable chosen with --exe or --preset (or the configured default)
with FILE as its single argument. No shell is involved, so FILE is passed literally.
The command record, standard output, standard error and exit code are reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunCmd(cmd, args, service())
		},
	}

	cmd.Flags().StringP("exe", "e", "", "Path or name of the executable to run.")
	cmd.Flags().StringP("preset", "p", "", "Name of a preset executable (see 'exerun presets').")
	cmd.Flags().DurationP("timeout", "t", 0, "Kill the command after this long (default from config; negative disables).")
	cmd.Flags().BoolP("stream", "s", false, "Stream output live instead of printing it after the command exits.")
	cmd.Flags().BoolP("quiet", "q", false, "Print only the command's raw output.")
	cmd.MarkFlagsMutuallyExclusive("exe", "preset")

	return cmd
}

// runRunCmd contains the core logic for the 'run' command.
func runRunCmd(cmd *cobra.Command, args []string, service ports.CommandRunService) error {
	if service == nil {
		return fmt.Errorf("command run service not initialized for run command")
	}
	flags := parseRunCommandFlags(cmd)

	in := ports.RunInput{
		Executable:   flags.executable,
		Preset:       flags.preset,
		ArgumentPath: args[0],
		Timeout:      flags.timeout,
	}
	if flags.stream {
		in.Streams = ports.Streams{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
	}

	inv, err := service.Run(cmd.Context(), in)
	if err != nil {
		printPartialOutput(cmd, inv, flags, errors.Is(err, command.ErrStreamFailure))
		return fmt.Errorf("could not run command: %w", err)
	}

	if flags.quiet {
		printRawOutput(cmd, inv, flags.stream)
	} else {
		printReport(cmd.OutOrStdout(), inv, flags.stream)
	}

	if !inv.Result.Success() {
		return &ExitCodeError{Code: inv.Result.ExitCode}
	}
	return nil
}
