package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oli-deacon/meeting-minder/internal/output"
)

func NewDeleteCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a session and all its artifacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			if err := deps.App.Delete.Execute(args[0]); err != nil {
				return err
			}

			formatter.Success("Session deleted: " + args[0])
			return nil
		},
	}

	return cmd
}
