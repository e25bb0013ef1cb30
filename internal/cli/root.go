package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oli-deacon/meeting-minder/config"
	"github.com/oli-deacon/meeting-minder/internal/app"
	"github.com/oli-deacon/meeting-minder/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config
	Logger *zap.Logger
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "meeting-minder",
		Short: "Record speech sessions and analyze who spoke how much",
		Long:  "A local tool that records microphone sessions, runs an external speech analyzer over them, and shows per-speaker talk time.",
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(NewRecordCmd(deps))
	rootCmd.AddCommand(NewListCmd(deps))
	rootCmd.AddCommand(NewShowCmd(deps))
	rootCmd.AddCommand(NewAnalyzeCmd(deps))
	rootCmd.AddCommand(NewExportCmd(deps))
	rootCmd.AddCommand(NewDeleteCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))
	rootCmd.AddCommand(NewSetupCmd(deps))

	return rootCmd
}
