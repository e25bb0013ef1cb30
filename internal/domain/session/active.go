package session

import (
	"errors"
	"sync"
)

var (
	// ErrRecordingActive is returned when a recording slot is requested
	// while one is already occupied.
	ErrRecordingActive = errors.New("a recording session is already active")
	// ErrNoActiveRecording is returned when stopping and nothing records.
	ErrNoActiveRecording = errors.New("no active recording session")
	// ErrNotActiveSession is returned when the given id does not match the
	// session currently recording.
	ErrNotActiveSession = errors.New("requested session does not match active session")
)

// Stopper finalizes a running capture and reports its outcome.
type Stopper interface {
	Stop() error
}

// ActiveRecording is the single process-wide slot tracking which session,
// if any, is currently recording. It is created once and injected into
// every command handler that needs it.
type ActiveRecording struct {
	mu      sync.Mutex
	current *occupant
}

type occupant struct {
	sessionID string
	capture   Stopper
	stopping  bool
}

func NewActiveRecording() *ActiveRecording {
	return &ActiveRecording{}
}

// Begin claims the slot for sessionID, calling start only if it is free.
// The lock is held across start so two concurrent starts can never both
// open a capture.
func (a *ActiveRecording) Begin(sessionID string, start func() (Stopper, error)) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current != nil {
		return ErrRecordingActive
	}

	capture, err := start()
	if err != nil {
		return err
	}

	a.current = &occupant{sessionID: sessionID, capture: capture}
	return nil
}

// Finish stops the capture owned by sessionID and vacates the slot in both
// the success and the failure outcome. The slot lock is released while the
// capture is joined, but the slot itself stays occupied until the join has
// completed, so no new recording can start in the meantime.
func (a *ActiveRecording) Finish(sessionID string) error {
	a.mu.Lock()
	if a.current == nil {
		a.mu.Unlock()
		return ErrNoActiveRecording
	}
	if a.current.sessionID != sessionID {
		a.mu.Unlock()
		return ErrNotActiveSession
	}
	if a.current.stopping {
		a.mu.Unlock()
		return ErrNoActiveRecording
	}
	a.current.stopping = true
	capture := a.current.capture
	a.mu.Unlock()

	err := capture.Stop()

	a.mu.Lock()
	a.current = nil
	a.mu.Unlock()

	return err
}

// SessionID returns the occupant's id, or false when the slot is free.
func (a *ActiveRecording) SessionID() (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return "", false
	}
	return a.current.sessionID, true
}

// IsActive reports whether sessionID currently occupies the slot.
func (a *ActiveRecording) IsActive(sessionID string) bool {
	id, ok := a.SessionID()
	return ok && id == sessionID
}
