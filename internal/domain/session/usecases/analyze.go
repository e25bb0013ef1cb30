package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/oli-deacon/meeting-minder/internal/analyze"
	"github.com/oli-deacon/meeting-minder/internal/domain/session"
	"github.com/oli-deacon/meeting-minder/internal/store"
)

// ErrAnalyzeWhileRecording rejects analysis of the session that is
// currently being captured.
var ErrAnalyzeWhileRecording = errors.New("cannot analyze while session is recording")

// AnalyzeSession runs the external analyzer over a session's audio and
// stores the resulting document. Re-analysis replaces the previous result.
type AnalyzeSession struct {
	Store  *store.Store
	Runner analyze.Runner
	Active *session.ActiveRecording
	Logger *zap.Logger
}

// Execute moves the session to processing, invokes the analyzer
// synchronously, and settles on analyzed or error. The conflict check
// against the active slot happens before any state is touched.
func (a *AnalyzeSession) Execute(ctx context.Context, sessionID string) (*session.AnalysisResult, error) {
	if a.Active.IsActive(sessionID) {
		return nil, ErrAnalyzeWhileRecording
	}

	sess, err := a.Store.LoadSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Status = session.StatusProcessing
	if err := a.Store.SaveSession(sess); err != nil {
		return nil, err
	}

	started := time.Now()
	if err := a.Runner.Run(ctx, sess.AudioPath, a.Store.AnalysisPath(sessionID)); err != nil {
		a.markError(sess)
		return nil, err
	}

	result, err := a.Store.LoadAnalysis(sessionID)
	if err != nil {
		a.markError(sess)
		return nil, fmt.Errorf("loading analyzer output: %w", err)
	}

	sess.Status = session.StatusAnalyzed
	if err := a.Store.SaveSession(sess); err != nil {
		return nil, err
	}

	a.Logger.Info("analysis complete",
		zap.String("id", sessionID),
		zap.Duration("took", time.Since(started)),
		zap.Int("speakers", len(result.Speakers)))
	return result, nil
}

func (a *AnalyzeSession) markError(sess *session.Session) {
	sess.Status = session.StatusError
	if err := a.Store.SaveSession(sess); err != nil {
		a.Logger.Error("marking failed session", zap.String("id", sess.ID), zap.Error(err))
	}
}
