package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oli-deacon/meeting-minder/internal/output"
)

func NewAnalyzeCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <session-id>",
		Short: "Run the speech analyzer over a recorded session",
		Long:  "Invoke the configured analyzer against the session's audio file and store the per-speaker results. Re-running replaces the previous analysis.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			formatter.Analyzing()
			result, err := deps.App.Analyze.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			formatter.AnalysisDone(result)
			return nil
		},
	}

	return cmd
}
