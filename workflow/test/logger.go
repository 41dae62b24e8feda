package test

import (
	"fmt"
	"sync"

	"github.com/micromdm/nanolib/log"
)

// LogEntry is a single collected log line.
type LogEntry struct {
	Debug bool
	KV    []interface{}
}

// Value returns the value logged for key or nil if not present.
func (e LogEntry) Value(key string) interface{} {
	for i := 0; i+1 < len(e.KV); i += 2 {
		if fmt.Sprint(e.KV[i]) == key {
			return e.KV[i+1]
		}
	}
	return nil
}

type logSink struct {
	entries   []LogEntry
	entriesMu sync.RWMutex
}

// Logger is a logger that collects its log lines.
type Logger struct {
	sink *logSink
	with []interface{}
}

// NewLogger creates a new collecting logger.
func NewLogger() *Logger {
	return &Logger{sink: new(logSink)}
}

func (l *Logger) log(debug bool, args []interface{}) {
	kv := append(append([]interface{}(nil), l.with...), args...)
	l.sink.entriesMu.Lock()
	l.sink.entries = append(l.sink.entries, LogEntry{Debug: debug, KV: kv})
	l.sink.entriesMu.Unlock()
}

// Info collects an info log line.
func (l *Logger) Info(args ...interface{}) {
	l.log(false, args)
}

// Debug collects a debug log line.
func (l *Logger) Debug(args ...interface{}) {
	l.log(true, args)
}

// With returns a logger that prepends args to every line.
// Lines are collected by the same sink as l.
func (l *Logger) With(args ...interface{}) log.Logger {
	return &Logger{
		sink: l.sink,
		with: append(append([]interface{}(nil), l.with...), args...),
	}
}

// Entries returns a copy of the collected log lines.
func (l *Logger) Entries() []LogEntry {
	l.sink.entriesMu.RLock()
	defer l.sink.entriesMu.RUnlock()
	return append([]LogEntry(nil), l.sink.entries...)
}
