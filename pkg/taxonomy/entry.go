package taxonomy

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Keys under which a LogEntry appears in event data. They match the field
// names used by the search index.
const (
	KeyEventCategory   = "EventCategory"
	KeyApplicationName = "ApplicationName"
	KeyComponent       = "Component"
	KeySubComponent    = "SubComponent"
	KeyEventType       = "EventType"
	KeyEventName       = "EventName"
)

// LogEntry tags a log record with its category, origin and event type.
type LogEntry struct {
	EventCategory   EventCategory
	ApplicationName string
	Component       string
	SubComponent    string
	EventType       EventType
	EventName       string
}

// LogValue lets an entry be passed straight to a logging call. The fields are
// inlined into the event data; an empty SubComponent is omitted.
func (e LogEntry) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 6)
	attrs = append(attrs,
		slog.String(KeyEventCategory, string(e.EventCategory)),
		slog.String(KeyApplicationName, e.ApplicationName),
		slog.String(KeyComponent, e.Component),
	)
	if e.SubComponent != "" {
		attrs = append(attrs, slog.String(KeySubComponent, e.SubComponent))
	}
	var eventType string
	if e.EventType != nil {
		eventType = e.EventType.EventType()
	}
	attrs = append(attrs,
		slog.String(KeyEventType, eventType),
		slog.String(KeyEventName, e.EventName),
	)
	return slog.GroupValue(attrs...)
}

func (e LogEntry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.EventCategory,
			validation.Required,
			validation.By(func(value interface{}) error {
				c, _ := value.(EventCategory)
				if !c.Valid() {
					return validation.NewError("validation_invalid_category", "must be a known event category")
				}
				return nil
			}),
		),
		validation.Field(&e.ApplicationName, validation.Required),
		validation.Field(&e.Component, validation.Required),
		validation.Field(&e.EventType,
			validation.Required,
			validation.By(func(value interface{}) error {
				t, ok := value.(EventType)
				if !ok || t == nil || !t.Valid() {
					return validation.NewError("validation_invalid_event_type", "must be a known business or application event type")
				}
				return nil
			}),
		),
		validation.Field(&e.EventName, validation.Required),
	)
}
