package usecases

import (
	"github.com/oli-deacon/meeting-minder/internal/domain/session"
	"github.com/oli-deacon/meeting-minder/internal/store"
)

// ListSessions returns all readable sessions, newest first.
type ListSessions struct {
	Store *store.Store
}

func (l *ListSessions) Execute() ([]session.Session, error) {
	return l.Store.List()
}

// GetDetails loads a session together with its analysis, when one exists.
type GetDetails struct {
	Store *store.Store
}

func (g *GetDetails) Execute(sessionID string) (*session.Details, error) {
	sess, err := g.Store.LoadSession(sessionID)
	if err != nil {
		return nil, err
	}

	details := &session.Details{Session: *sess}
	if g.Store.HasAnalysis(sessionID) {
		analysis, err := g.Store.LoadAnalysis(sessionID)
		if err != nil {
			return nil, err
		}
		details.Analysis = analysis
	}
	return details, nil
}
