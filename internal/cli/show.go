package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oli-deacon/meeting-minder/internal/output"
)

func NewShowCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show a session and its analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			details, err := deps.App.Details.Execute(args[0])
			if err != nil {
				return err
			}

			formatter.SessionDetails(details)
			return nil
		},
	}

	return cmd
}
