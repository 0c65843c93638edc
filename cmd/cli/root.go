package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/beamer-cli/beamer/pkg/config"
	"github.com/beamer-cli/beamer/pkg/format"
	"github.com/beamer-cli/beamer/pkg/logging"
	"github.com/beamer-cli/beamer/pkg/version"
	"github.com/beamer-cli/beamer/pkg/xrandr"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	dryRun  bool

	// Runner instance - initialized once and reused. Tests inject a
	// fake before Execute.
	runner xrandr.Runner
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "beamer",
	Short: "Toggle and position a second monitor or projector",
	Long: `beamer translates short subcommands into xrandr invocations so you
don't have to remember multi-monitor flag syntax.

Without a subcommand it prints the connected outputs and their
resolutions, same as "beamer info".`,
	Version: version.GetVersion(),
	Args:    cobra.NoArgs,
	// Execute prints errors bold red; keep cobra from printing them too.
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Arguments parsed fine if we got here; runtime failures
		// (missing xrandr, xrandr errors) shouldn't dump usage.
		cmd.SilenceUsage = true

		// Configure logger based on flags
		var logger logging.Logger
		if quiet {
			logger = logging.NewQuietLogger()
		} else if verbose {
			logger = logging.NewVerboseLogger()
		} else {
			logger = logging.NewDefaultLogger()
		}
		logging.SetGlobalLogger(logger)

		if runner == nil {
			bin := config.XrandrBinary(config.NewManager())
			runner = xrandr.NewExecRunner(bin, logger)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand provided - same as "beamer info"
		return runInfo(cmd, false)
	},
}

func init() {
	// Global flags available to all commands
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug level)")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (errors only)")
	RootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "print the xrandr invocation instead of running it")

	addCommands()
}

// addCommands adds all CLI subcommands to the root command
func addCommands() {
	RootCmd.AddCommand(newInfoCommand())
	RootCmd.AddCommand(newQueryCommand())
	RootCmd.AddCommand(newCloneCommand())
	for _, side := range sideCommands {
		RootCmd.AddCommand(newSideCommand(side.side, side.short))
	}
	RootCmd.AddCommand(newSingleCommand("off", "Only activate the first monitor", 0))
	RootCmd.AddCommand(newSingleCommand("only", "Only activate the second monitor", 1))
	RootCmd.AddCommand(newRowCommand())
}

// Execute runs the root command and returns the process exit code.
// Errors print bold red; when xrandr itself failed, its exit code is
// relayed unchanged.
func Execute() int {
	if err := RootCmd.Execute(); err != nil {
		format.Errorf(RootCmd.ErrOrStderr(), "%v", err)
		var exitErr *xrandr.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return 1
	}
	return 0
}

// queryOutputs runs the query and returns the connected outputs in
// listing order.
func queryOutputs(ctx context.Context) ([]xrandr.Output, error) {
	all, err := xrandr.Query(ctx, runner)
	if err != nil {
		return nil, err
	}
	return xrandr.Connected(all), nil
}

// apply echoes a built invocation and runs it, relaying the tool's
// combined output. With --dry-run the invocation is printed instead.
func apply(cmd *cobra.Command, args []string) error {
	cmdline := strings.Join(append([]string{runner.Name()}, args...), " ")
	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), cmdline)
		return nil
	}
	format.Infof(cmd.OutOrStdout(), "%s", cmdline)
	out, err := runner.Run(cmd.Context(), args...)
	if out != "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
	}
	return err
}
