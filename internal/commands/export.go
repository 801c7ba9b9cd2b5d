package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"budget/internal/export"
)

func newExportCommand(a *app) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every transaction with the summary and balance to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			path, err := a.ledger.Export(cmd.Context(), f, output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "csv, json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: timestamped file in BUDGET_EXPORT_DIR)")
	return cmd
}
