package usecases

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oli-deacon/meeting-minder/internal/domain/session"
	"github.com/oli-deacon/meeting-minder/internal/store"
)

// StartCapture spawns the capture engine for the target path. It is a
// function so tests can substitute a fake capture for the real device.
type StartCapture func(targetPath string) (session.Stopper, error)

// StartRecording creates a session record and begins capturing into its
// directory. At most one recording can be active; the injected
// ActiveRecording slot enforces that.
type StartRecording struct {
	Store  *store.Store
	Active *session.ActiveRecording
	Begin  StartCapture
	Logger *zap.Logger

	// Clock and NewID are injectable for testing; they default to
	// time.Now and random UUIDs.
	Clock func() time.Time
	NewID func() string
}

func (s *StartRecording) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *StartRecording) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

// Execute mints a session, persists it in recording status, and starts the
// capture. The active slot is claimed for the whole sequence so concurrent
// starts cannot both open a device.
func (s *StartRecording) Execute() (*session.Session, error) {
	id := s.newID()
	sess := &session.Session{
		ID:        id,
		StartedAt: s.now().UTC().Format(time.RFC3339Nano),
		AudioPath: s.Store.AudioPath(id),
		Status:    session.StatusRecording,
	}

	err := s.Active.Begin(id, func() (session.Stopper, error) {
		if err := s.Store.CreateSession(sess); err != nil {
			return nil, err
		}

		capture, err := s.Begin(sess.AudioPath)
		if err != nil {
			// The record exists already; leave an explicit error marker
			// instead of a session forever stuck in recording.
			sess.Status = session.StatusError
			sess.EndedAt = s.now().UTC().Format(time.RFC3339Nano)
			if saveErr := s.Store.SaveSession(sess); saveErr != nil {
				s.Logger.Error("marking failed session", zap.String("id", id), zap.Error(saveErr))
			}
			return nil, err
		}
		return capture, nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("recording started", zap.String("id", id))
	return sess, nil
}

// StopRecording ends the active capture and settles the session record.
type StopRecording struct {
	Store  *store.Store
	Active *session.ActiveRecording
	Logger *zap.Logger

	Clock func() time.Time
}

func (s *StopRecording) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// Execute stops the capture owned by sessionID. An id that does not match
// the active slot is rejected without touching the slot or the session.
// Whatever the capture's outcome, the slot ends up vacant and the session
// record ends up in a terminal-for-capture status: recorded on success,
// error on capture failure.
func (s *StopRecording) Execute(sessionID string) (*session.Session, error) {
	captureErr := s.Active.Finish(sessionID)
	if errors.Is(captureErr, session.ErrNoActiveRecording) ||
		errors.Is(captureErr, session.ErrNotActiveSession) {
		return nil, captureErr
	}

	sess, err := s.Store.LoadSession(sessionID)
	if err != nil {
		return nil, err
	}
	sess.EndedAt = s.now().UTC().Format(time.RFC3339Nano)

	if captureErr != nil {
		sess.Status = session.StatusError
		if saveErr := s.Store.SaveSession(sess); saveErr != nil {
			s.Logger.Error("marking failed session", zap.String("id", sessionID), zap.Error(saveErr))
		}
		s.Logger.Warn("recording failed", zap.String("id", sessionID), zap.Error(captureErr))
		return nil, fmt.Errorf("capture failed: %w", captureErr)
	}

	sess.Status = session.StatusRecorded
	if err := s.Store.SaveSession(sess); err != nil {
		return nil, err
	}

	s.Logger.Info("recording stopped", zap.String("id", sessionID))
	return sess, nil
}
