package session

import "fmt"

// Status is the session lifecycle state. Transitions only move forward;
// error is a sink and analyzed can only be left for re-analysis.
type Status string

const (
	StatusRecording  Status = "recording"
	StatusRecorded   Status = "recorded"
	StatusProcessing Status = "processing"
	StatusAnalyzed   Status = "analyzed"
	StatusError      Status = "error"
)

// transitions is the closed set of legal status moves. Moving analyzed
// back to processing is the re-analysis path.
var transitions = map[Status][]Status{
	StatusRecording:  {StatusRecorded, StatusError},
	StatusRecorded:   {StatusProcessing},
	StatusProcessing: {StatusAnalyzed, StatusError},
	StatusAnalyzed:   {StatusProcessing},
	StatusError:      {},
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether moving from s to next is legal.
// A same-status save is always allowed.
func (s Status) CanTransition(next Status) bool {
	if s == next {
		return true
	}
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// CheckTransition returns an error describing an illegal move from s to next.
func (s Status) CheckTransition(next Status) error {
	if !next.Valid() {
		return fmt.Errorf("unknown session status %q", next)
	}
	if !s.CanTransition(next) {
		return fmt.Errorf("invalid status transition from %s to %s", s, next)
	}
	return nil
}
