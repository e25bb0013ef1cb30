package usecases

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oli-deacon/meeting-minder/internal/domain/session"
	"github.com/oli-deacon/meeting-minder/internal/store"
)

func TestExportRendersSpeakerTable(t *testing.T) {
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	recordedSession(t, st, "abc")
	require.NoError(t, st.SaveAnalysis(&session.AnalysisResult{
		SessionID:      "abc",
		TotalSpeechSec: 20,
		Speakers: []session.SpeakerStats{
			{SpeakerID: "A", TotalSec: 10.0, Percentage: 50.0, SegmentCount: 3},
			{SpeakerID: "B", TotalSec: 10.0, Percentage: 50.0, SegmentCount: 2},
		},
	}))

	uc := &ExportSession{Store: st}
	paths, err := uc.Execute("abc")
	require.NoError(t, err)
	assert.Equal(t, st.CSVPath("abc"), paths.CSVPath)
	assert.Equal(t, st.AnalysisPath("abc"), paths.JSONPath)

	content, err := os.ReadFile(paths.CSVPath)
	require.NoError(t, err)
	want := "speakerId,totalSec,percentage,segmentCount\n" +
		"A,10.0000,50.0000,3\n" +
		"B,10.0000,50.0000,2\n"
	assert.Equal(t, want, string(content))
}

func TestExportIsDeterministicAndPure(t *testing.T) {
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	recordedSession(t, st, "abc")
	require.NoError(t, st.SaveAnalysis(&session.AnalysisResult{
		SessionID: "abc",
		Speakers: []session.SpeakerStats{
			{SpeakerID: "Z", TotalSec: 1.23456, Percentage: 33.33333, SegmentCount: 1},
		},
	}))

	uc := &ExportSession{Store: st}
	first, err := uc.Execute("abc")
	require.NoError(t, err)
	firstContent, err := os.ReadFile(first.CSVPath)
	require.NoError(t, err)
	assert.Contains(t, string(firstContent), "Z,1.2346,33.3333,1")

	second, err := uc.Execute("abc")
	require.NoError(t, err)
	secondContent, err := os.ReadFile(second.CSVPath)
	require.NoError(t, err)
	assert.Equal(t, firstContent, secondContent)

	// Export must not touch session state.
	stored, err := st.LoadSession("abc")
	require.NoError(t, err)
	assert.Equal(t, session.StatusRecorded, stored.Status)
}

func TestExportWithoutAnalysisFails(t *testing.T) {
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	recordedSession(t, st, "abc")

	uc := &ExportSession{Store: st}
	_, err = uc.Execute("abc")
	require.ErrorIs(t, err, store.ErrAnalysisNotFound)
}
