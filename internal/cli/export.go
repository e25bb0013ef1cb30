package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oli-deacon/meeting-minder/internal/output"
)

func NewExportCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <session-id>",
		Short: "Export per-speaker totals as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			paths, err := deps.App.Export.Execute(args[0])
			if err != nil {
				return err
			}

			formatter.ExportDone(paths)
			return nil
		},
	}

	return cmd
}
