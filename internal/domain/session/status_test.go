package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForwardTransitions(t *testing.T) {
	assert.True(t, StatusRecording.CanTransition(StatusRecorded))
	assert.True(t, StatusRecording.CanTransition(StatusError))
	assert.True(t, StatusRecorded.CanTransition(StatusProcessing))
	assert.True(t, StatusProcessing.CanTransition(StatusAnalyzed))
	assert.True(t, StatusProcessing.CanTransition(StatusError))
}

func TestStatusReAnalysisPath(t *testing.T) {
	assert.True(t, StatusAnalyzed.CanTransition(StatusProcessing))
}

func TestStatusRejectsBackwardAndSkippingMoves(t *testing.T) {
	backward := []struct{ from, to Status }{
		{StatusRecorded, StatusRecording},
		{StatusProcessing, StatusRecorded},
		{StatusProcessing, StatusRecording},
		{StatusAnalyzed, StatusRecorded},
		{StatusAnalyzed, StatusRecording},
	}
	for _, tc := range backward {
		assert.Falsef(t, tc.from.CanTransition(tc.to), "%s to %s must be rejected", tc.from, tc.to)
	}

	skipping := []struct{ from, to Status }{
		{StatusRecording, StatusProcessing},
		{StatusRecording, StatusAnalyzed},
		{StatusRecorded, StatusAnalyzed},
		{StatusRecorded, StatusError},
	}
	for _, tc := range skipping {
		assert.Falsef(t, tc.from.CanTransition(tc.to), "%s to %s must be rejected", tc.from, tc.to)
	}
}

func TestStatusErrorIsASink(t *testing.T) {
	for _, to := range []Status{StatusRecording, StatusRecorded, StatusProcessing, StatusAnalyzed} {
		assert.Falsef(t, StatusError.CanTransition(to), "error to %s must be rejected", to)
	}
}

func TestStatusSameStatusSaveAllowed(t *testing.T) {
	for _, s := range []Status{StatusRecording, StatusRecorded, StatusProcessing, StatusAnalyzed, StatusError} {
		assert.True(t, s.CanTransition(s))
	}
}

func TestCheckTransitionRejectsUnknownStatus(t *testing.T) {
	err := StatusRecording.CheckTransition(Status("paused"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown session status")
}
