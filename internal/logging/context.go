package logging

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ContextFields extracts correlation data from context.
func ContextFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 5)

	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		sc := span.SpanContext()
		fields = append(fields,
			zap.String("trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
		)
		if sc.IsSampled() {
			fields = append(fields, zap.Bool("trace_sampled", true))
		}
	}

	if userID := UserIDFromContext(ctx); userID != "" {
		fields = append(fields, zap.String("user.id", userID))
	}
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		fields = append(fields, zap.String("request.id", requestID))
	}
	return fields
}

type userCtxKey struct{}
type requestCtxKey struct{}

const maxIDLen = 128

// idPattern allows alphanumeric, hyphen, underscore, dot and colon.
var idPattern = regexp.MustCompile(`^[a-zA-Z0-9_.:-]+$`)

// ValidateID checks a user or request ID is safe to log.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("id cannot be empty")
	}
	if !utf8.ValidString(id) {
		return fmt.Errorf("id contains invalid UTF-8")
	}
	if len(id) > maxIDLen {
		return fmt.Errorf("id exceeds max length %d", maxIDLen)
	}
	if !idPattern.MatchString(id) {
		return fmt.Errorf("id contains invalid characters")
	}
	return nil
}

// UserIDFromContext extracts the analysed user's ID from context.
func UserIDFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(userCtxKey{}).(string); ok {
		return s
	}
	return ""
}

// WithUserID adds the analysed user's ID to context.
// Panics if userID fails ValidateID.
func WithUserID(ctx context.Context, userID string) context.Context {
	if err := ValidateID(userID); err != nil {
		panic(fmt.Sprintf("logging: userID: %v", err))
	}
	return context.WithValue(ctx, userCtxKey{}, userID)
}

// RequestIDFromContext extracts request ID from context.
func RequestIDFromContext(ctx context.Context) string {
	if r, ok := ctx.Value(requestCtxKey{}).(string); ok {
		return r
	}
	return ""
}

// WithRequestID adds request ID to context.
// Panics if requestID fails ValidateID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if err := ValidateID(requestID); err != nil {
		panic(fmt.Sprintf("logging: requestID: %v", err))
	}
	return context.WithValue(ctx, requestCtxKey{}, requestID)
}

type loggerCtxKey struct{}

// WithLogger stores logger in context.
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

// FromContext retrieves logger from context, or a nop logger.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok {
		return l
	}
	return NewNop()
}
