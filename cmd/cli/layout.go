package cli

import (
	"github.com/beamer-cli/beamer/pkg/layout"
	"github.com/spf13/cobra"
)

var sideCommands = []struct {
	side  layout.Side
	short string
}{
	{layout.SideLeft, "Display the second monitor left of the first"},
	{layout.SideRight, "Display the second monitor right of the first"},
	{layout.SideAbove, "Display the second monitor above the first"},
	{layout.SideBelow, "Display the second monitor below the first"},
}

func newCloneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clone",
		Short: "Mirror all connected monitors",
		Long: `Mirror every connected output at the largest resolution supported
by all of them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputs, err := queryOutputs(cmd.Context())
			if err != nil {
				return err
			}
			built, err := layout.CloneArgs(outputs)
			if err != nil {
				return err
			}
			return apply(cmd, built)
		},
	}
}

func newSideCommand(side layout.Side, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(side),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputs, err := queryOutputs(cmd.Context())
			if err != nil {
				return err
			}
			built, err := layout.SideArgs(side, outputs)
			if err != nil {
				return err
			}
			return apply(cmd, built)
		},
	}
}

func newSingleCommand(use, short string, index int) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputs, err := queryOutputs(cmd.Context())
			if err != nil {
				return err
			}
			built, err := layout.SingleArgs(index, outputs)
			if err != nil {
				return err
			}
			return apply(cmd, built)
		},
	}
}
