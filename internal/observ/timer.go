package observ

import (
	"fmt"
	"time"

	"kailash/internal/diag"
)

// Stage records the duration and metadata of one frame stage.
type Stage struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks the execution time of the stages of a frame.
type Timer struct {
	stages []Stage
	now    func() time.Time
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{stages: make([]Stage, 0, 8), now: time.Now} }

// Begin starts a new stage and returns its index.
func (t *Timer) Begin(name string) int {
	t.stages = append(t.stages, Stage{Name: name, Start: t.now()})
	return len(t.stages) - 1
}

// End finishes a stage by its index.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.stages) {
		return
	}
	s := &t.stages[idx]
	s.Dur = t.now().Sub(s.Start)
	s.Note = note
}

// Reset drops all recorded stages, keeping the allocation for the next frame.
func (t *Timer) Reset() {
	t.stages = t.stages[:0]
}

// StageReport is the serializable summary of a stage.
type StageReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates the recorded stages.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Stages  []StageReport `json:"stages"`
}

// Report returns per-stage durations and the total in milliseconds.
func (t *Timer) Report() Report {
	if len(t.stages) == 0 {
		return Report{}
	}
	report := Report{
		Stages: make([]StageReport, len(t.stages)),
	}
	var total time.Duration
	for i, stage := range t.stages {
		total += stage.Dur
		report.Stages[i] = StageReport{
			Name:       stage.Name,
			DurationMS: durationToMillis(stage.Dur),
			Note:       stage.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

// Log writes one info line per stage and a closing total line at level.
// Nothing is formatted when the reporter would drop the lines.
func (t *Timer) Log(r *diag.Reporter, level int) {
	if r == nil || !r.Enabled(level) {
		return
	}
	report := t.Report()
	for _, s := range report.Stages {
		detail := fmt.Sprintf("%7.2f ms", s.DurationMS)
		if s.Note != "" {
			detail += "  // " + s.Note
		}
		r.LogInfo(level, s.Name, detail)
	}
	r.LogInfo(level, "total", fmt.Sprintf("%7.2f ms", report.TotalMS))
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
