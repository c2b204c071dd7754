package logger

import (
	"encoding/json"
	"log/slog"
	"sort"
)

// metadataArgs turns the data passed to a leveled call into slog arguments.
// Key/value pairs and slog.Attr pass through unchanged; maps, log valuers and
// JSON-encodable structs are flattened into event data.
func metadataArgs(data []any) []any {
	args := make([]any, 0, len(data))
	for i := 0; i < len(data); i++ {
		switch v := data[i].(type) {
		case nil:
		case string:
			args = append(args, v)
			if i+1 < len(data) {
				i++
				args = append(args, data[i])
			}
		case slog.Attr:
			args = append(args, v)
		case []slog.Attr:
			for _, a := range v {
				args = append(args, a)
			}
		case map[string]any:
			args = append(args, mapAttrs(v)...)
		case slog.LogValuer:
			args = append(args, slog.Attr{Value: slog.AnyValue(v)})
		case error:
			args = append(args, slog.String("error", v.Error()))
		default:
			args = append(args, structAttrs(v)...)
		}
	}
	return args
}

func mapAttrs(m map[string]any) []any {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(m))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, m[k]))
	}
	return attrs
}

func structAttrs(v any) []any {
	raw, err := json.Marshal(v)
	if err != nil {
		return []any{slog.Any("data", v)}
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return []any{slog.Any("data", v)}
	}
	return mapAttrs(fields)
}
