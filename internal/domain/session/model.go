package session

// Session is the lifecycle record of one recording attempt. It lives in
// session.json inside the session's directory and is rewritten whole on
// every status change.
type Session struct {
	ID        string `json:"id"`
	StartedAt string `json:"startedAt"`
	EndedAt   string `json:"endedAt,omitempty"`
	AudioPath string `json:"audioPath"`
	Status    Status `json:"status"`
}

// Segment is one contiguous stretch of speech attributed to a speaker.
// Segments are stored in chronological order.
type Segment struct {
	StartSec  float64 `json:"startSec"`
	EndSec    float64 `json:"endSec"`
	SpeakerID string  `json:"speakerId"`
}

// SpeakerStats aggregates speaking time for one speaker.
type SpeakerStats struct {
	SpeakerID    string  `json:"speakerId"`
	TotalSec     float64 `json:"totalSec"`
	Percentage   float64 `json:"percentage"`
	SegmentCount int     `json:"segmentCount"`
}

type AnalysisMeta struct {
	TotalSpeechSec float64 `json:"totalSpeechSec"`
	ProcessingMs   int64   `json:"processingMs"`
	ModelVersion   string  `json:"modelVersion"`
}

// AnalysisResult is the analyzer's output for one session. Re-analysis
// replaces the stored document; it is never appended to.
type AnalysisResult struct {
	SessionID      string         `json:"sessionId"`
	TotalSpeechSec float64        `json:"totalSpeechSec"`
	Speakers       []SpeakerStats `json:"speakers"`
	Segments       []Segment      `json:"segments"`
	Meta           AnalysisMeta   `json:"meta"`
}

// Details bundles a session with its analysis, when one exists.
type Details struct {
	Session  Session         `json:"session"`
	Analysis *AnalysisResult `json:"analysis,omitempty"`
}

// ExportPaths holds the artifact locations produced by an export.
type ExportPaths struct {
	CSVPath  string `json:"csvPath"`
	JSONPath string `json:"jsonPath"`
}
