package cli

import (
	"github.com/beamer-cli/beamer/pkg/layout"
	"github.com/spf13/cobra"
)

func newRowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "row <output>...",
		Short: "Arrange outputs in a row, left to right",
		Long: `Arrange the given outputs side by side, left to right. Outputs are
referenced by listing number (as shown by "beamer info") or by name;
append "!" to mark one as the primary output. Connected outputs not in
the row are turned off.

Example: beamer row 2 eDP1! HDMI2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputs, err := queryOutputs(cmd.Context())
			if err != nil {
				return err
			}
			built, err := layout.RowArgs(args, outputs)
			if err != nil {
				return err
			}
			return apply(cmd, built)
		},
	}
}
