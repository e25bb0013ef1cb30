package main

import (
	"fmt"
	"os"

	"github.com/oli-deacon/meeting-minder/config"
	"github.com/oli-deacon/meeting-minder/internal/app"
	"github.com/oli-deacon/meeting-minder/internal/cli"
	"github.com/oli-deacon/meeting-minder/internal/logging"
	"github.com/oli-deacon/meeting-minder/internal/output"
)

func main() {
	if err := run(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	application, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("initializing app: %w", err)
	}

	deps := &cli.Dependencies{
		App:    application,
		Config: cfg,
		Logger: logger,
	}

	return cli.NewRootCmd(deps).Execute()
}
