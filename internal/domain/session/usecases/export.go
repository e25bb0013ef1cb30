package usecases

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/oli-deacon/meeting-minder/internal/domain/session"
	"github.com/oli-deacon/meeting-minder/internal/store"
)

// ExportSession renders the per-speaker table for a completed analysis.
// It is a pure projection of the stored analysis record and never touches
// session state.
type ExportSession struct {
	Store *store.Store
}

// Execute writes analysis.csv next to the analysis document and returns
// both paths. Sessions without an analysis are rejected.
func (e *ExportSession) Execute(sessionID string) (*session.ExportPaths, error) {
	result, err := e.Store.LoadAnalysis(sessionID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"speakerId", "totalSec", "percentage", "segmentCount"}); err != nil {
		return nil, fmt.Errorf("rendering csv export: %w", err)
	}
	for _, sp := range result.Speakers {
		row := []string{
			sp.SpeakerID,
			strconv.FormatFloat(sp.TotalSec, 'f', 4, 64),
			strconv.FormatFloat(sp.Percentage, 'f', 4, 64),
			strconv.Itoa(sp.SegmentCount),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("rendering csv export: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("rendering csv export: %w", err)
	}

	csvPath := e.Store.CSVPath(sessionID)
	if err := os.WriteFile(csvPath, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("writing csv export: %w", err)
	}

	return &session.ExportPaths{
		CSVPath:  csvPath,
		JSONPath: e.Store.AnalysisPath(sessionID),
	}, nil
}
