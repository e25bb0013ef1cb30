package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oli-deacon/meeting-minder/config"
	"github.com/oli-deacon/meeting-minder/internal/output"
)

const starterConfig = `# meeting-minder configuration

# Where session directories are stored.
#sessions_dir = "~/meeting-minder/sessions"

# Command that runs the speech analyzer. The session's audio file and the
# desired output path are appended as --input/--output flags.
#analyzer_command = ["python3", "analyzer/main.py"]

# How often the capture loop checks for a stop signal, in milliseconds.
#poll_interval_ms = 150

#log_level = "info"
#log_path = "~/meeting-minder/meeting-minder.log"
`

func NewSetupCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Write a starter config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			dir := config.ConfigDir()
			if dir == "" {
				return fmt.Errorf("could not determine config directory")
			}
			path := filepath.Join(dir, "config.toml")

			if _, err := os.Stat(path); err == nil {
				formatter.Info("Config already exists: " + path)
				return nil
			}

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating config directory: %w", err)
			}
			if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			formatter.Success("Config written: " + path)
			return nil
		},
	}

	return cmd
}
