package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/exerun/internal/core/ports"
)

// Options are the persistent flags needed to build the run service.
type Options struct {
	ConfigPath string
	LogLevel   string
}

// ServiceFactory builds the run service once flags have been parsed.
type ServiceFactory func(opts Options) (ports.CommandRunService, error)

// ExitCodeError carries a child's nonzero exit code out to main.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.Code)
}

// NewRootCommand creates the exerun root command. The service is built lazily
// by factory so that --config and --log-level are honored.
func NewRootCommand(version string, factory ServiceFactory) *cobra.Command {
	var opts Options
	var service ports.CommandRunService

	rootCmd := &cobra.Command{
		Use:   "exerun",
		Short: "exerun runs a command-line utility against a file.",
		Long: `exerun runs a command-line executable with a single file as its argument,
without a shell, and reports the exact command, its output and its exit code.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if factory == nil {
				return fmt.Errorf("command run service not initialized for command %s", cmd.Name())
			}
			svc, err := factory(opts)
			if err != nil {
				return err
			}
			service = svc
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Path to a config file (default $XDG_CONFIG_HOME/exerun/config.yaml).")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn or error.")

	current := func() ports.CommandRunService { return service }
	rootCmd.AddCommand(NewRunCommand(current))
	rootCmd.AddCommand(NewPresetsCommand(current))

	return rootCmd
}
