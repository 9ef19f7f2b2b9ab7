// Package observability provides the append-only log/metrics sink and
// formatted output utilities for verbose CLI mode.
package observability

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Sink records errors and performance metrics to two append-only files under
// a log directory: a line-delimited JSON stream and a human-readable log.
// A failure to construct or write the sink never propagates to the analysis
// path; the zero-value Sink discards everything.
type Sink struct {
	mu         sync.Mutex
	jsonLogger *slog.Logger
	textLogger *slog.Logger
	closers    []io.Closer
}

// Log file names inside the sink's directory.
const (
	jsonLogName  = "cv_analyzer.jsonl"
	humanLogName = "cv_analyzer.log"
)

// NewSink opens (creating if needed) the sink's log files under dir. On any
// setup failure a discarding sink is returned, never an error: logging must
// not block analysis.
func NewSink(dir string) *Sink {
	if dir == "" {
		return &Sink{}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &Sink{}
	}

	jsonFile, err := os.OpenFile(filepath.Join(dir, jsonLogName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &Sink{}
	}
	textFile, err := os.OpenFile(filepath.Join(dir, humanLogName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		_ = jsonFile.Close()
		return &Sink{}
	}

	return &Sink{
		jsonLogger: slog.New(slog.NewJSONHandler(jsonFile, nil)),
		textLogger: slog.New(slog.NewTextHandler(textFile, nil)),
		closers:    []io.Closer{jsonFile, textFile},
	}
}

// LogError records an error with free-form context.
func (s *Sink) LogError(err error, errContext string) {
	if err == nil {
		return
	}
	s.log(slog.LevelError, "analysis error",
		slog.String("error", err.Error()),
		slog.String("context", errContext),
	)
}

// LogPerformanceMetric records a named metric value, e.g. a stage duration
// in milliseconds.
func (s *Sink) LogPerformanceMetric(name string, value float64) {
	s.log(slog.LevelInfo, "performance metric",
		slog.String("metric", name),
		slog.Float64("value", value),
	)
}

func (s *Sink) log(level slog.Level, msg string, attrs ...slog.Attr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.jsonLogger != nil {
		s.jsonLogger.LogAttrs(context.Background(), level, msg, attrs...)
	}
	if s.textLogger != nil {
		s.textLogger.LogAttrs(context.Background(), level, msg, attrs...)
	}
}

// Close releases the sink's file handles. Safe on a discarding sink.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.closers {
		_ = c.Close()
	}
	s.closers = nil
	s.jsonLogger = nil
	s.textLogger = nil
}
