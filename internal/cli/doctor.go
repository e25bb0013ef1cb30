package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/oli-deacon/meeting-minder/internal/audio"
	"github.com/oli-deacon/meeting-minder/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			ok := true

			report, err := audio.ProbeDefaultInput()
			if err != nil {
				f.SetupCheck("Input device", false, err.Error())
				ok = false
			} else {
				f.SetupCheck("Input device", true, fmt.Sprintf("%s (%s, %d ch, %d Hz)",
					report.Name, report.Format, report.Channels, report.SampleRate))
			}

			analyzer := deps.Config.AnalyzerCommand
			if len(analyzer) == 0 {
				f.SetupCheck("Analyzer", false, "not configured. Set analyzer_command in config")
				ok = false
			} else if _, err := exec.LookPath(analyzer[0]); err != nil {
				f.SetupCheck("Analyzer", false, analyzer[0]+" not found on PATH")
				ok = false
			} else {
				f.SetupCheck("Analyzer", true, analyzer[0]+" found")
			}

			if err := os.MkdirAll(deps.Config.SessionsDir, 0o755); err != nil {
				f.SetupCheck("Sessions directory", false, err.Error())
				ok = false
			} else {
				f.SetupCheck("Sessions directory", true, deps.Config.SessionsDir)
			}

			if ok {
				f.Success("\nAll prerequisites met. Ready to record!")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}
