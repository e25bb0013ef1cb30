package usecases

import (
	"errors"

	"go.uber.org/zap"

	"github.com/oli-deacon/meeting-minder/internal/domain/session"
	"github.com/oli-deacon/meeting-minder/internal/store"
)

// ErrDeleteWhileRecording rejects deletion of the session that is
// currently being captured.
var ErrDeleteWhileRecording = errors.New("cannot delete while session is recording")

// DeleteSession removes a session's whole directory. Deleting a session
// that does not exist is a no-op.
type DeleteSession struct {
	Store  *store.Store
	Active *session.ActiveRecording
	Logger *zap.Logger
}

func (d *DeleteSession) Execute(sessionID string) error {
	if d.Active.IsActive(sessionID) {
		return ErrDeleteWhileRecording
	}
	if err := d.Store.Delete(sessionID); err != nil {
		return err
	}
	d.Logger.Info("session deleted", zap.String("id", sessionID))
	return nil
}
