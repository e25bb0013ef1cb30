package app

import (
	"go.uber.org/zap"

	"github.com/oli-deacon/meeting-minder/config"
	"github.com/oli-deacon/meeting-minder/internal/analyze"
	"github.com/oli-deacon/meeting-minder/internal/audio"
	"github.com/oli-deacon/meeting-minder/internal/domain/session"
	"github.com/oli-deacon/meeting-minder/internal/domain/session/usecases"
	"github.com/oli-deacon/meeting-minder/internal/store"
)

// App wires the command surface consumed by the CLI (or any other
// presentation layer).
type App struct {
	List    *usecases.ListSessions
	Details *usecases.GetDetails
	Start   *usecases.StartRecording
	Stop    *usecases.StopRecording
	Analyze *usecases.AnalyzeSession
	Export  *usecases.ExportSession
	Delete  *usecases.DeleteSession

	Active *session.ActiveRecording
	Store  *store.Store
}

func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	st, err := store.New(cfg.SessionsDir)
	if err != nil {
		return nil, err
	}

	engine := audio.NewEngine(logger.Named("capture"), cfg.PollInterval)
	runner, err := analyze.NewCommandRunner(cfg.AnalyzerCommand, logger.Named("analyzer"))
	if err != nil {
		return nil, err
	}

	active := session.NewActiveRecording()
	beginCapture := func(targetPath string) (session.Stopper, error) {
		capture, err := engine.Begin(targetPath)
		if err != nil {
			return nil, err
		}
		return capture, nil
	}

	return &App{
		List:    &usecases.ListSessions{Store: st},
		Details: &usecases.GetDetails{Store: st},
		Start: &usecases.StartRecording{
			Store:  st,
			Active: active,
			Begin:  beginCapture,
			Logger: logger,
		},
		Stop: &usecases.StopRecording{
			Store:  st,
			Active: active,
			Logger: logger,
		},
		Analyze: &usecases.AnalyzeSession{
			Store:  st,
			Runner: runner,
			Active: active,
			Logger: logger,
		},
		Export: &usecases.ExportSession{Store: st},
		Delete: &usecases.DeleteSession{
			Store:  st,
			Active: active,
			Logger: logger,
		},
		Active: active,
		Store:  st,
	}, nil
}
