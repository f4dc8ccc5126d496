package cli

import (
	"fmt"
	"os/exec"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/exerun/internal/core/ports"
	"github.com/AntonioJCosta/exerun/internal/handlers/ui"
)

// NewPresetsCommand creates the 'presets' subcommand.
func NewPresetsCommand(service func() ports.CommandRunService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List preset executables.",
		Long: `Displays the built-in presets merged with those from your presets file,
and whether each executable is available on this machine.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresetsCmd(cmd, service())
		},
	}
	return cmd
}

// runPresetsCmd contains the core logic for the 'presets' command.
func runPresetsCmd(cmd *cobra.Command, service ports.CommandRunService) error {
	if service == nil {
		return fmt.Errorf("command run service not initialized for presets command")
	}
	presets, err := service.ListPresets()
	if err != nil {
		return fmt.Errorf("could not list presets: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(presets) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No presets configured."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor("Presets:"))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "Path", "Description", "Available"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, preset := range presets {
		available := "no"
		if _, err := exec.LookPath(preset.Path); err == nil {
			available = "yes"
		}
		table.Append([]string{preset.Name, preset.Path, preset.Description, available})
	}
	table.Render()
	return nil
}
