package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/exerun/internal/core/domain/command"
	"github.com/AntonioJCosta/exerun/internal/handlers/ui"
)

type runCommandFlags struct {
	executable string
	preset     string
	timeout    time.Duration
	stream     bool
	quiet      bool
}

func parseRunCommandFlags(cmd *cobra.Command) runCommandFlags {
	exe, _ := cmd.Flags().GetString("exe")
	preset, _ := cmd.Flags().GetString("preset")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	stream, _ := cmd.Flags().GetBool("stream")
	quiet, _ := cmd.Flags().GetBool("quiet")

	return runCommandFlags{
		executable: exe,
		preset:     preset,
		timeout:    timeout,
		stream:     stream,
		quiet:      quiet,
	}
}

func printCommandLine(w io.Writer, inv command.Invocation) {
	fmt.Fprintf(w, "%s %s\n", ui.InfoColor("Command:"), ui.CommandColor(inv.ExeString))
}

// printReport writes the command record followed by its captured output.
// Streamed output has already been written and is not repeated.
func printReport(w io.Writer, inv command.Invocation, streamed bool) {
	printCommandLine(w, inv)

	if !streamed {
		printSection(w, "Standard output", inv.Result.Stdout)
		printSection(w, "Standard error", inv.Result.Stderr)
	}

	fmt.Fprintf(w, "%s %s %s\n",
		ui.InfoColor("Exit code:"),
		ui.ExitCodeColor(inv.Result.ExitCode),
		ui.DetailColor(fmt.Sprintf("(%s)", inv.Duration.Round(time.Millisecond))))
}

func printSection(w io.Writer, title, body string) {
	if body == "" {
		fmt.Fprintf(w, "%s %s\n", ui.SectionColor(title+":"), ui.DetailColor("(empty)"))
		return
	}
	fmt.Fprintln(w, ui.SectionColor(title+":"))
	fmt.Fprint(w, body)
	if !strings.HasSuffix(body, "\n") {
		fmt.Fprintln(w)
	}
}

func printRawOutput(cmd *cobra.Command, inv command.Invocation, streamed bool) {
	if streamed {
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), inv.Result.Stdout)
	fmt.Fprint(cmd.ErrOrStderr(), inv.Result.Stderr)
}

// printPartialOutput reports what a failed run left behind, such as the output
// captured before a timeout. The report goes to stderr.
// mirrorFailed means live streaming broke, so captured output is shown even
// when --stream was requested.
func printPartialOutput(cmd *cobra.Command, inv command.Invocation, flags runCommandFlags, mirrorFailed bool) {
	if inv.ExeString == "" {
		return
	}
	showOutput := !flags.stream || mirrorFailed
	w := cmd.ErrOrStderr()

	if flags.quiet {
		printRawOutput(cmd, inv, !showOutput)
		return
	}

	printCommandLine(w, inv)
	if !showOutput {
		return
	}
	if inv.Result.Stdout != "" {
		printSection(w, "Standard output", inv.Result.Stdout)
	}
	if inv.Result.Stderr != "" {
		printSection(w, "Standard error", inv.Result.Stderr)
	}
}
