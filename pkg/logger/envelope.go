package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// TimeFormat is the ISO-8601 layout of eventHeader.eventDateTime.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Metadata keys that never appear a second time in event data.
const (
	KeyMessage = "message"
	KeyLevel   = "level"
)

// KeyTruncated marks event data whose message was cut to fit a file sink.
const KeyTruncated = "truncated"

// Room left for the truncated field when cutting an oversized message.
const truncationSlack = 64

// Record is a log call before it is wrapped in an envelope.
type Record struct {
	Level    string
	Message  string
	Metadata map[string]any
}

type Header struct {
	EventDateTime string `json:"eventDateTime"`
	Level         string `json:"level"`
	Environment   string `json:"environment"`
	Target        string `json:"target"`
}

// EventData is the message plus the caller's metadata. It marshals as a
// single flat object with the message first.
type EventData struct {
	Message string
	Fields  map[string]any
}

type Envelope struct {
	EventHeader Header    `json:"eventHeader"`
	EventData   EventData `json:"eventData"`
}

// Format wraps rec in an envelope stamped with now. The metadata map is
// copied; values are kept as they are.
func Format(rec Record, environment, target string, now time.Time) Envelope {
	fields := make(map[string]any, len(rec.Metadata))
	for k, v := range rec.Metadata {
		if k == KeyMessage || k == KeyLevel {
			continue
		}
		fields[k] = v
	}

	return Envelope{
		EventHeader: Header{
			EventDateTime: now.UTC().Format(TimeFormat),
			Level:         rec.Level,
			Environment:   environment,
			Target:        target,
		},
		EventData: EventData{
			Message: rec.Message,
			Fields:  fields,
		},
	}
}

func (d EventData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(64 + len(d.Fields)*32)

	buf.WriteString(`{"message":`)
	msg, err := json.Marshal(d.Message)
	if err != nil {
		return nil, err
	}
	buf.Write(msg)

	keys := make([]string, 0, len(d.Fields))
	for k := range d.Fields {
		if k == KeyMessage {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(marshalField(d.Fields[k]))
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalField never fails: values encoding/json rejects are written as
// their %+v string.
func marshalField(v any) []byte {
	out, err := json.Marshal(v)
	if err == nil {
		return out
	}
	out, _ = json.Marshal(fmt.Sprintf("%+v", v))
	return out
}

func (d *EventData) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Fields = make(map[string]any, len(raw))
	d.Message = ""
	for k, v := range raw {
		if k == KeyMessage {
			if s, ok := v.(string); ok {
				d.Message = s
			} else if v != nil {
				d.Message = fmt.Sprint(v)
			}
			continue
		}
		d.Fields[k] = v
	}
	return nil
}
