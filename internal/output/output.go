package output

import (
	"fmt"
	"io"
	"time"

	"github.com/oli-deacon/meeting-minder/internal/domain/session"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) RecordingStarted(sess *session.Session) {
	fmt.Fprintf(f.w, "🎙️  Recording started: %s\n", sess.ID)
}

func (f *Formatter) RecordingStopped(sess *session.Session, duration time.Duration) {
	fmt.Fprintf(f.w, "⏹️  Recording stopped (%s): %s\n", formatDuration(duration), sess.AudioPath)
}

func (f *Formatter) Analyzing() {
	fmt.Fprintf(f.w, "🔎 Analyzing audio...\n")
}

func (f *Formatter) AnalysisDone(result *session.AnalysisResult) {
	fmt.Fprintf(f.w, "✅ Analysis complete: %.1fs of speech across %d speakers\n",
		result.TotalSpeechSec, len(result.Speakers))
	for _, sp := range result.Speakers {
		fmt.Fprintf(f.w, "  %s: %.1fs (%.1f%%), %d segments\n",
			sp.SpeakerID, sp.TotalSec, sp.Percentage, sp.SegmentCount)
	}
}

func (f *Formatter) ExportDone(paths *session.ExportPaths) {
	fmt.Fprintf(f.w, "✅ Exported:\n  %s\n  %s\n", paths.CSVPath, paths.JSONPath)
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) SessionListHeader() {
	fmt.Fprintf(f.w, "📁 Sessions:\n\n")
}

func (f *Formatter) SessionListItem(sess *session.Session) {
	fmt.Fprintf(f.w, "  %s  %-10s  %s\n", sess.ID, sess.Status, sess.StartedAt)
}

func (f *Formatter) SessionDetails(details *session.Details) {
	sess := details.Session
	fmt.Fprintf(f.w, "Session %s\n", sess.ID)
	fmt.Fprintf(f.w, "  status:    %s\n", sess.Status)
	fmt.Fprintf(f.w, "  started:   %s\n", sess.StartedAt)
	if sess.EndedAt != "" {
		fmt.Fprintf(f.w, "  ended:     %s\n", sess.EndedAt)
	}
	fmt.Fprintf(f.w, "  audio:     %s\n", sess.AudioPath)
	if details.Analysis != nil {
		fmt.Fprintf(f.w, "  analysis:  %.1fs of speech, %d speakers, %d segments (model %s)\n",
			details.Analysis.TotalSpeechSec,
			len(details.Analysis.Speakers),
			len(details.Analysis.Segments),
			details.Analysis.Meta.ModelVersion)
	}
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
