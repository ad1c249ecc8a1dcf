package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ToastID records a toast identifier under the key "toast_id".
// If id is nil, it returns an empty Attr.
func ToastID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("toast_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Count records a count under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
