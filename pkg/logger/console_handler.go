package logger

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/angeloszaimis/envelope-logger/internal/metrics"
)

// ConsoleTimeFormat is the timestamp layout of human-readable console lines.
const ConsoleTimeFormat = "2006-01-02 15:04:05"

// consoleHandler prints "<timestamp> <level>: <message>" lines. Metadata goes
// to the envelope sinks only.
type consoleHandler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  slog.Leveler
	colors map[string]*color.Color
	sink   string
	stats  *metrics.Metrics
}

func newConsoleHandler(w io.Writer, level slog.Leveler, colorize bool, stats *metrics.Metrics) *consoleHandler {
	colors := map[string]*color.Color{
		LevelError: color.New(color.FgRed),
		LevelWarn:  color.New(color.FgYellow),
		LevelInfo:  color.New(color.FgGreen),
		LevelDebug: color.New(color.FgBlue),
	}
	for _, c := range colors {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return &consoleHandler{
		mu:     &sync.Mutex{},
		writer: w,
		level:  level,
		colors: colors,
		sink:   SinkConsole,
		stats:  stats,
	}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	timestamp := record.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	name := levelName(record.Level)

	var buf bytes.Buffer
	buf.Grow(32 + len(record.Message))
	buf.WriteString(timestamp.Format(ConsoleTimeFormat))
	buf.WriteByte(' ')
	buf.WriteString(h.colors[name].Sprint(name))
	buf.WriteString(": ")
	buf.WriteString(record.Message)
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.writer.Write(buf.Bytes()); err != nil {
		if h.stats != nil {
			h.stats.RecordSinkError(h.sink)
		}
		return err
	}
	if h.stats != nil {
		h.stats.RecordEvent(h.sink, name)
	}
	return nil
}

func (h *consoleHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *consoleHandler) WithGroup(string) slog.Handler { return h }

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
