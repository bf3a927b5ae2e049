package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldCommandID is the standardized structured logging key for command identifiers.
	FieldCommandID = "command_id"
	// FieldPlan is the standardized structured logging key for plan names.
	FieldPlan = "plan"
	// FieldReceipt is the standardized structured logging key for receipt identifiers.
	FieldReceipt = "receipt"
	// FieldLocator is the standardized structured logging key for resource locators.
	FieldLocator = "locator"
	// FieldEventType classifies a log line for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint carries the next step for the operator.
	FieldErrorHint = "error_hint"
)

type contextKey string

const planKey contextKey = "plan"

// WithPlan annotates context with the plan name.
func WithPlan(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, planKey, name)
}

// PlanFromContext returns the plan name if present.
func PlanFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(planKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	var fields []slog.Attr
	if name, ok := PlanFromContext(ctx); ok {
		fields = append(fields, Plan(name))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
