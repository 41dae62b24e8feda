// Package report implements sinks for workflow progress lines.
package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/micromdm/nanostep/log/logkeys"
	"github.com/micromdm/nanostep/workflow"

	"github.com/micromdm/nanolib/log"
)

// Writer reports lines to an io.Writer, one line per message.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter creates a new reporter that writes to w.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic("nil writer")
	}
	return &Writer{w: w}
}

// Report writes msg followed by a newline.
// Write errors are dropped: reporting never fails a workflow.
func (r *Writer) Report(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.w, msg)
}

// Logger reports lines as info log messages.
type Logger struct {
	logger log.Logger
}

// NewLogger creates a new reporter that logs to logger.
func NewLogger(logger log.Logger) *Logger {
	if logger == nil {
		panic("nil logger")
	}
	return &Logger{logger: logger}
}

// Report logs msg.
func (r *Logger) Report(msg string) {
	r.logger.Info(logkeys.Message, msg)
}

// Multi reports every line to each of its reporters in order.
type Multi []workflow.Reporter

// NewMulti creates a new Multi from reporters. Nil reporters are skipped.
func NewMulti(reporters ...workflow.Reporter) Multi {
	m := make(Multi, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}

// Report reports msg to each reporter.
func (m Multi) Report(msg string) {
	for _, r := range m {
		r.Report(msg)
	}
}
