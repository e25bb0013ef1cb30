package usecases

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/oli-deacon/meeting-minder/internal/domain/session"
	"github.com/oli-deacon/meeting-minder/internal/store"
)

func TestGetDetailsWithoutAnalysis(t *testing.T) {
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	recordedSession(t, st, "abc")

	uc := &GetDetails{Store: st}
	details, err := uc.Execute("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", details.Session.ID)
	assert.Nil(t, details.Analysis)
}

func TestGetDetailsWithAnalysis(t *testing.T) {
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	recordedSession(t, st, "abc")
	require.NoError(t, st.SaveAnalysis(cannedResult("abc")))

	uc := &GetDetails{Store: st}
	details, err := uc.Execute("abc")
	require.NoError(t, err)
	require.NotNil(t, details.Analysis)
	assert.Equal(t, "abc", details.Analysis.SessionID)
}

func TestGetDetailsMissingSession(t *testing.T) {
	st, err := store.New(t.TempDir())
	require.NoError(t, err)

	uc := &GetDetails{Store: st}
	_, err = uc.Execute("ghost")
	require.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestListReturnsSessionsNewestFirst(t *testing.T) {
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	for i, id := range []string{"a", "b"} {
		sess := &session.Session{
			ID:        id,
			StartedAt: []string{"2026-02-01T10:00:00Z", "2026-02-02T10:00:00Z"}[i],
			AudioPath: st.AudioPath(id),
			Status:    session.StatusRecording,
		}
		require.NoError(t, st.CreateSession(sess))
	}

	uc := &ListSessions{Store: st}
	sessions, err := uc.Execute()
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "b", sessions[0].ID)
	assert.Equal(t, "a", sessions[1].ID)
}

func TestDeleteSessionRemovesDirectory(t *testing.T) {
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	recordedSession(t, st, "abc")

	uc := &DeleteSession{Store: st, Active: session.NewActiveRecording(), Logger: zaptest.NewLogger(t)}
	require.NoError(t, uc.Execute("abc"))

	_, statErr := os.Stat(st.SessionDir("abc"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDeleteMissingSessionIsNoOp(t *testing.T) {
	st, err := store.New(t.TempDir())
	require.NoError(t, err)

	uc := &DeleteSession{Store: st, Active: session.NewActiveRecording(), Logger: zaptest.NewLogger(t)}
	require.NoError(t, uc.Execute("never-existed"))
}

func TestDeleteActiveRecordingRejected(t *testing.T) {
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	recordedSession(t, st, "abc")

	active := session.NewActiveRecording()
	require.NoError(t, active.Begin("abc", func() (session.Stopper, error) {
		return &fakeCapture{}, nil
	}))

	uc := &DeleteSession{Store: st, Active: active, Logger: zaptest.NewLogger(t)}
	err = uc.Execute("abc")
	require.ErrorIs(t, err, ErrDeleteWhileRecording)

	_, statErr := os.Stat(st.SessionDir("abc"))
	assert.NoError(t, statErr, "active session directory must survive")
}
