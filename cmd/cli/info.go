package cli

import (
	"encoding/json"
	"fmt"

	"github.com/beamer-cli/beamer/pkg/format"
	"github.com/spf13/cobra"
)

func newInfoCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "List connected outputs and their resolutions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the output listing as JSON")

	return cmd
}

func runInfo(cmd *cobra.Command, jsonOutput bool) error {
	outputs, err := queryOutputs(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(outputs)
	}

	for i, out := range outputs {
		format.Infof(cmd.OutOrStdout(), "%d: %s", i+1, out.Name)
		if len(out.Modes) == 0 {
			continue
		}
		modes := make([]string, len(out.Modes))
		for j, m := range out.Modes {
			s := m.Resolution()
			if m.Active {
				s = "*" + s
			}
			modes[j] = s
		}
		fmt.Fprintln(cmd.OutOrStdout(), format.Columns(modes, "  "))
	}
	return nil
}
