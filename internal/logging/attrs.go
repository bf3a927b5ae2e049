package logging

import (
	"context"
	"log/slog"
	"time"
)

// Attr is the attribute type accepted by every helper in this package.
type Attr = slog.Attr

func Bool(key string, value bool) Attr              { return slog.Bool(key, value) }
func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }
func Int(key string, value int) Attr                { return slog.Int(key, value) }
func String(key string, value string) Attr          { return slog.String(key, value) }

// Graph attributes use the shared field keys so console and JSON output line
// up across packages.
func CommandID(id string) Attr        { return slog.String(FieldCommandID, id) }
func Receipt(id string) Attr          { return slog.String(FieldReceipt, id) }
func Locator(locator string) Attr     { return slog.String(FieldLocator, locator) }
func EventType(event string) Attr     { return slog.String(FieldEventType, event) }
func ErrorHint(hint string) Attr      { return slog.String(FieldErrorHint, hint) }
func Plan(name string) Attr           { return slog.String(FieldPlan, name) }
func Component(component string) Attr { return slog.String(FieldComponent, component) }

// Error records err under "error". A nil error is logged as "<nil>".
func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// Args converts attrs into the variadic form slog's methods take.
func Args(attrs ...Attr) []any {
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	return args
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(discardHandler{})
}

// NewComponentLogger tags logger with a component name. A nil logger yields
// a no-op logger.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(Component(component))
}

// WarnWithContext logs a warning that always carries event_type and
// error_hint. Caller-supplied values for either key win.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	if logger == nil {
		return
	}
	if !hasKey(attrs, FieldEventType) {
		attrs = append(attrs, EventType(eventType))
	}
	if !hasKey(attrs, FieldErrorHint) {
		attrs = append(attrs, ErrorHint("rerun with --log-level debug for graph details"))
	}
	logger.Warn(msg, Args(attrs...)...)
}

func hasKey(attrs []Attr, key string) bool {
	for _, a := range attrs {
		if a.Key == key {
			return true
		}
	}
	return false
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
