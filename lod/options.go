package lod

import (
	"io"
	"log"
)

// Logger is the minimal progress-logging collaborator CreateLOD writes
// through. A *log.Logger wrapped by WithLogSink satisfies it; so does
// any caller-supplied implementation passed to WithLogger.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// writerLogger adapts an io.Writer into a Logger via the standard
// library's log.Logger, rather than pulling in a structured-logging
// framework for two printf-shaped methods.
type writerLogger struct {
	l *log.Logger
}

func newWriterLogger(w io.Writer) *writerLogger {
	return &writerLogger{l: log.New(w, "", log.LstdFlags)}
}

func (w *writerLogger) Infof(format string, args ...interface{}) {
	w.l.Printf("INFO "+format, args...)
}

func (w *writerLogger) Warnf(format string, args ...interface{}) {
	w.l.Printf("WARN "+format, args...)
}

// Options configures a CreateLOD call.
//
// Logger – sink for progress and warning lines. Defaults to a Logger
// that discards everything, so CreateLOD is silent unless a caller
// opts in via WithLogger or WithLogSink.
type Options struct {
	Logger Logger
}

// Option is a functional option for CreateLOD.
type Option func(*Options)

// WithLogger overrides the progress-logging sink with a caller-supplied
// Logger implementation.
func WithLogger(logger Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithLogSink enables progress logging to w, via the standard library's
// log.Logger. Pass io.Discard (the default) to suppress it again.
func WithLogSink(w io.Writer) Option {
	return func(o *Options) {
		o.Logger = newWriterLogger(w)
	}
}

// DefaultOptions returns the Options CreateLOD starts from before
// applying any caller-supplied Option: progress logging suppressed.
func DefaultOptions() Options {
	return Options{Logger: newWriterLogger(io.Discard)}
}
