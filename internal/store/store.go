package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/oli-deacon/meeting-minder/internal/domain/session"
)

var (
	// ErrSessionNotFound is returned when a session record is missing.
	ErrSessionNotFound = errors.New("session not found")
	// ErrAnalysisNotFound is returned when a session has no analysis document.
	ErrAnalysisNotFound = errors.New("analysis not found for session")
)

const (
	sessionFileName  = "session.json"
	analysisFileName = "analysis.json"
	audioFileName    = "audio.wav"
	csvFileName      = "analysis.csv"
)

// Store persists sessions and analysis results as JSON documents, one
// directory per session under a common root. Every write replaces the
// whole document; there are no partial updates.
type Store struct {
	root string
}

// New creates the sessions root if needed and returns a store over it.
func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating sessions root: %w", err)
	}
	return &Store{root: root}, nil
}

func (s *Store) Root() string { return s.root }

// SessionDir returns the directory for a session id, without creating it.
func (s *Store) SessionDir(id string) string {
	return filepath.Join(s.root, id)
}

func (s *Store) SessionPath(id string) string {
	return filepath.Join(s.SessionDir(id), sessionFileName)
}

func (s *Store) AnalysisPath(id string) string {
	return filepath.Join(s.SessionDir(id), analysisFileName)
}

func (s *Store) AudioPath(id string) string {
	return filepath.Join(s.SessionDir(id), audioFileName)
}

func (s *Store) CSVPath(id string) string {
	return filepath.Join(s.SessionDir(id), csvFileName)
}

// CreateSession makes the session directory and writes the initial record.
func (s *Store) CreateSession(sess *session.Session) error {
	if err := os.MkdirAll(s.SessionDir(sess.ID), 0o755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	return writeJSON(s.SessionPath(sess.ID), sess)
}

// SaveSession replaces the stored record. When a record already exists its
// status transition is validated against the lifecycle table, so a bug in a
// caller can never persist a backward or skipping move.
func (s *Store) SaveSession(sess *session.Session) error {
	existing, err := s.LoadSession(sess.ID)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	if existing != nil {
		if err := existing.Status.CheckTransition(sess.Status); err != nil {
			return err
		}
	}
	return writeJSON(s.SessionPath(sess.ID), sess)
}

func (s *Store) LoadSession(id string) (*session.Session, error) {
	var sess session.Session
	if err := readJSON(s.SessionPath(id), &sess, ErrSessionNotFound); err != nil {
		return nil, err
	}
	return &sess, nil
}

// SaveAnalysis replaces the stored analysis document for its session.
func (s *Store) SaveAnalysis(res *session.AnalysisResult) error {
	return writeJSON(s.AnalysisPath(res.SessionID), res)
}

func (s *Store) LoadAnalysis(id string) (*session.AnalysisResult, error) {
	var res session.AnalysisResult
	if err := readJSON(s.AnalysisPath(id), &res, ErrAnalysisNotFound); err != nil {
		return nil, err
	}
	return &res, nil
}

// HasAnalysis reports whether an analysis document exists for the session.
func (s *Store) HasAnalysis(id string) bool {
	_, err := os.Stat(s.AnalysisPath(id))
	return err == nil
}

// List scans the sessions root and returns all readable session records,
// newest first. Entries without a valid session.json are skipped.
func (s *Store) List() ([]session.Session, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("reading sessions root: %w", err)
	}

	var sessions []session.Session
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sess, err := s.LoadSession(e.Name())
		if err != nil {
			continue
		}
		sessions = append(sessions, *sess)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return startedAfter(sessions[i].StartedAt, sessions[j].StartedAt)
	})
	return sessions, nil
}

// startedAfter orders RFC 3339 timestamps newest first. Parsed comparison is
// required: lexical order breaks on variable-width fractional seconds, where
// "00.52Z" compares below "00.5Z". Unparseable values fall back to string
// comparison.
func startedAfter(a, b string) bool {
	ta, errA := time.Parse(time.RFC3339Nano, a)
	tb, errB := time.Parse(time.RFC3339Nano, b)
	if errA != nil || errB != nil {
		return a > b
	}
	return ta.After(tb)
}

// Delete removes the whole session directory. A missing directory is a no-op.
func (s *Store) Delete(id string) error {
	dir := s.SessionDir(id)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("deleting session directory: %w", err)
	}
	return nil
}

// writeJSON replaces the document at path atomically: the new content is
// written to a temp file in the same directory and renamed over the old one.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readJSON(path string, v any, notFound error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", notFound, filepath.Base(filepath.Dir(path)))
		}
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}
