package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oli-deacon/meeting-minder/internal/output"
)

func NewRecordCmd(deps *Dependencies) *cobra.Command {
	var analyzeAfter bool

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a session (Ctrl+C to stop)",
		Long:  "Start capturing the default input device into a new session directory. Recording runs until interrupted, then the audio file is finalized.",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			sess, err := deps.App.Start.Execute()
			if err != nil {
				return err
			}
			formatter.RecordingStarted(sess)
			formatter.Info("Press Ctrl+C to stop")
			startedAt := time.Now()

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
			<-interrupt
			signal.Stop(interrupt)

			stopped, err := deps.App.Stop.Execute(sess.ID)
			if err != nil {
				return err
			}
			formatter.RecordingStopped(stopped, time.Since(startedAt))

			if !analyzeAfter {
				return nil
			}

			formatter.Analyzing()
			result, err := deps.App.Analyze.Execute(cmd.Context(), sess.ID)
			if err != nil {
				return err
			}
			formatter.AnalysisDone(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&analyzeAfter, "analyze", false, "Run the analyzer once recording stops")

	return cmd
}
