package test

import (
	"sync"

	"github.com/micromdm/nanostep/workflow"
)

// Recorder is a reporter that collects every reported line.
// Lines are optionally passed along to a next reporter.
type Recorder struct {
	next    workflow.Reporter
	lines   []string
	linesMu sync.RWMutex
}

// NewRecorder creates a new recorder. next may be nil.
func NewRecorder(next workflow.Reporter) *Recorder {
	return &Recorder{next: next}
}

// Report records msg.
func (r *Recorder) Report(msg string) {
	r.linesMu.Lock()
	r.lines = append(r.lines, msg)
	r.linesMu.Unlock()
	if r.next != nil {
		r.next.Report(msg)
	}
}

// Lines returns a copy of the recorded lines in order.
func (r *Recorder) Lines() []string {
	r.linesMu.RLock()
	defer r.linesMu.RUnlock()
	return append([]string(nil), r.lines...)
}

// Reset discards the recorded lines.
func (r *Recorder) Reset() {
	r.linesMu.Lock()
	r.lines = nil
	r.linesMu.Unlock()
}
