package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oli-deacon/meeting-minder/internal/output"
)

func NewListCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			sessions, err := deps.App.List.Execute()
			if err != nil {
				return err
			}

			if len(sessions) == 0 {
				formatter.Info("No sessions found")
				return nil
			}

			formatter.SessionListHeader()
			for i := range sessions {
				formatter.SessionListItem(&sessions[i])
			}
			return nil
		},
	}

	return cmd
}
