package logger

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/angeloszaimis/envelope-logger/internal/metrics"
)

// envelopeHandler writes one JSON envelope per record. Attributes become
// event data; groups become nested objects.
type envelopeHandler struct {
	mu          *sync.Mutex
	writer      io.Writer
	level       slog.Leveler
	environment string
	target      string
	now         func() time.Time
	preset      map[string]any
	groups      []string
	sink        string
	stats       *metrics.Metrics
	// maxLine caps the size of one written line, newline included. Zero
	// means no cap.
	maxLine     int
}

func newEnvelopeHandler(w io.Writer, level slog.Leveler, environment, target string, now func() time.Time, sink string, stats *metrics.Metrics) *envelopeHandler {
	if now == nil {
		now = time.Now
	}
	return &envelopeHandler{
		mu:          &sync.Mutex{},
		writer:      w,
		level:       level,
		environment: environment,
		target:      target,
		now:         now,
		preset:      map[string]any{},
		sink:        sink,
		stats:       stats,
	}
}

func (h *envelopeHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *envelopeHandler) Handle(_ context.Context, record slog.Record) error {
	meta := cloneFields(h.preset)
	if record.NumAttrs() > 0 {
		dst := descend(meta, h.groups)
		record.Attrs(func(attr slog.Attr) bool {
			addAttr(dst, attr)
			return true
		})
	}

	env := Format(Record{
		Level:    levelName(record.Level),
		Message:  record.Message,
		Metadata: meta,
	}, h.environment, h.target, h.now())

	line, err := h.encode(env)
	if err != nil {
		h.recordError()
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.writer.Write(line); err != nil {
		h.recordError()
		return err
	}
	if h.stats != nil {
		h.stats.RecordEvent(h.sink, levelName(record.Level))
	}
	return nil
}

// encode marshals env as one line. Lines over maxLine get their message cut
// and a truncated field so the envelope still fits the sink.
func (h *envelopeHandler) encode(env Envelope) ([]byte, error) {
	line, err := json.Marshal(env)
	if err != nil {
		return nil, err
	}
	line = append(line, '\n')

	for h.maxLine > 0 && len(line) > h.maxLine && env.EventData.Message != "" {
		msg := env.EventData.Message
		keep := len(msg) - (len(line) - h.maxLine) - truncationSlack
		env.EventData.Message = cutMessage(msg, keep)
		env.EventData.Fields[KeyTruncated] = true

		line, err = json.Marshal(env)
		if err != nil {
			return nil, err
		}
		line = append(line, '\n')
	}
	return line, nil
}

// cutMessage returns at most n bytes of msg without splitting a rune.
func cutMessage(msg string, n int) string {
	if n <= 0 {
		return ""
	}
	if n >= len(msg) {
		n = len(msg) - 1
	}
	for n > 0 && !utf8.RuneStart(msg[n]) {
		n--
	}
	return msg[:n]
}

func (h *envelopeHandler) recordError() {
	if h.stats != nil {
		h.stats.RecordSinkError(h.sink)
	}
}

func (h *envelopeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := h.clone()
	dst := descend(clone.preset, clone.groups)
	for _, attr := range attrs {
		addAttr(dst, attr)
	}
	return clone
}

func (h *envelopeHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *envelopeHandler) clone() *envelopeHandler {
	clone := *h
	clone.preset = cloneFields(h.preset)
	if len(h.groups) > 0 {
		clone.groups = make([]string, len(h.groups))
		copy(clone.groups, h.groups)
	}
	return &clone
}

func descend(fields map[string]any, groups []string) map[string]any {
	for _, g := range groups {
		sub, ok := fields[g].(map[string]any)
		if !ok {
			sub = map[string]any{}
			fields[g] = sub
		}
		fields = sub
	}
	return fields
}

func cloneFields(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			dst[k] = cloneFields(sub)
			continue
		}
		dst[k] = v
	}
	return dst
}

func addAttr(dst map[string]any, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		attrs := attr.Value.Group()
		if len(attrs) == 0 {
			return
		}
		if attr.Key == "" {
			for _, a := range attrs {
				addAttr(dst, a)
			}
			return
		}
		sub, ok := dst[attr.Key].(map[string]any)
		if !ok {
			sub = map[string]any{}
		}
		for _, a := range attrs {
			addAttr(sub, a)
		}
		dst[attr.Key] = sub
		return
	}

	if attr.Key == "" {
		return
	}
	dst[attr.Key] = attrValue(attr.Value)
}

func attrValue(v slog.Value) any {
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindInt64:
		return v.Int64()
	case slog.KindUint64:
		return v.Uint64()
	case slog.KindFloat64:
		return v.Float64()
	case slog.KindBool:
		return v.Bool()
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().UTC().Format(TimeFormat)
	default:
		x := v.Any()
		if _, ok := x.(json.Marshaler); ok {
			return x
		}
		if err, ok := x.(error); ok {
			return err.Error()
		}
		return x
	}
}
