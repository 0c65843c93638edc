package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQueryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "query",
		Short: "Print the raw xrandr --query output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runner.Run(cmd.Context(), "--query")
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
