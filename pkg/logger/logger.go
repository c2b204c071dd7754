package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/angeloszaimis/envelope-logger/internal/metrics"
)

// Stats is a point-in-time count of what a logger's sinks have written.
type Stats = metrics.Snapshot

// Logger is an owned logging handle. Loggers derived with With share the
// sinks of their parent; closing any of them closes the sinks for all.
type Logger struct {
	base  *slog.Logger
	sinks *sinkSet
}

type sinkSet struct {
	closers   []io.Closer
	closeOnce sync.Once
	closeErr  error
	stats     *metrics.Metrics
	exit      func(int)
}

func newLogger(handler slog.Handler, stats *metrics.Metrics, exit func(int), closers ...io.Closer) *Logger {
	return &Logger{
		base: slog.New(handler),
		sinks: &sinkSet{
			closers: closers,
			stats:   stats,
			exit:    exit,
		},
	}
}

func (l *Logger) Debug(msg string, data ...any) {
	l.Log(context.Background(), slog.LevelDebug, msg, data...)
}

func (l *Logger) Info(msg string, data ...any) {
	l.Log(context.Background(), slog.LevelInfo, msg, data...)
}

func (l *Logger) Warn(msg string, data ...any) {
	l.Log(context.Background(), slog.LevelWarn, msg, data...)
}

func (l *Logger) Error(msg string, data ...any) {
	l.Log(context.Background(), slog.LevelError, msg, data...)
}

// Log emits msg at level. See the package documentation for the accepted
// shapes of data.
func (l *Logger) Log(ctx context.Context, level slog.Level, msg string, data ...any) {
	// slog checks the level again; this only skips converting data.
	if !l.base.Enabled(ctx, level) {
		return
	}
	l.base.Log(ctx, level, msg, metadataArgs(data)...)
}

// With returns a logger that adds data to every event it emits.
func (l *Logger) With(data ...any) *Logger {
	return &Logger{
		base:  l.base.With(metadataArgs(data)...),
		sinks: l.sinks,
	}
}

// Slog returns the underlying slog logger. Records logged through it are
// formatted the same way.
func (l *Logger) Slog() *slog.Logger {
	return l.base
}

func (l *Logger) Stats() Stats {
	return l.sinks.stats.Snapshot()
}

// Close flushes and closes the file sink, if any. It is safe to call more
// than once.
func (l *Logger) Close() error {
	s := l.sinks
	s.closeOnce.Do(func() {
		var errs []error
		for _, c := range s.closers {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		s.closeErr = errors.Join(errs...)
	})
	return s.closeErr
}

// HandlePanic logs a panic in progress as an uncaught exception, closes the
// sinks and exits with status 1. It must be deferred directly:
//
//	defer log.HandlePanic()
func (l *Logger) HandlePanic() {
	r := recover()
	if r == nil {
		return
	}

	attrs := []any{
		slog.Bool("exception", true),
		slog.String("stack", string(debug.Stack())),
	}
	if err, ok := r.(error); ok {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.base.Error(fmt.Sprintf("uncaughtException: %v", r), attrs...)

	_ = l.Close()
	l.sinks.exit(1)
}
