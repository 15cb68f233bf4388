package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// convertToZapFields converts error and additional field maps into Zap's structured logging fields.
// If multiple fields maps contain the same key, the later maps will override earlier ones.
func (l *LoggerClient) convertToZapFields(err error, fields ...map[string]interface{}) []zap.Field {
	var zapFields []zap.Field
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}

	merged := make(map[string]interface{})
	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			merged[key] = value
		}
	}
	for key, value := range merged {
		zapFields = append(zapFields, zap.Any(key, value))
	}
	return zapFields
}

// traceFields extracts trace_id and span_id from ctx when tracing is enabled
// and the context carries a valid span.
func (l *LoggerClient) traceFields(ctx context.Context) []zap.Field {
	if !l.tracingEnabled || ctx == nil {
		return nil
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	}
}

// Info logs an informational message, along with an optional error and structured fields.
// Use Info for general application progress and successful operations.
//
// Example:
//
//	logger.Info("Collection created", nil, map[string]interface{}{
//	    "collection": "user_portfolios",
//	})
func (l *LoggerClient) Info(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.convertToZapFields(err, fields...)...)
}

// Debug logs a debug-level message, useful for development and troubleshooting.
func (l *LoggerClient) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.convertToZapFields(err, fields...)...)
}

// Warn logs a warning message, indicating potential issues that aren't necessarily errors.
func (l *LoggerClient) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.convertToZapFields(err, fields...)...)
}

// Error logs an error message, including details of the error and additional context fields.
// Use Error when something has gone wrong that affects the current operation but
// doesn't require immediate termination of the application.
//
// Example:
//
//	if err := store.Ping(); err != nil {
//	    logger.Error("Failed to reach store", err, map[string]interface{}{
//	        "backend": "sqlite",
//	    })
//	}
func (l *LoggerClient) Error(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.convertToZapFields(err, fields...)...)
}

// Fatal logs a critical error message and terminates the application.
// This method will call os.Exit(1) after logging the message.
//
// Note: This function does not return as it terminates the application.
func (l *LoggerClient) Fatal(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Fatal(msg, l.convertToZapFields(err, fields...)...)
}

// InfoWithContext is Info plus trace correlation fields taken from ctx.
func (l *LoggerClient) InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, append(l.convertToZapFields(err, fields...), l.traceFields(ctx)...)...)
}

// DebugWithContext is Debug plus trace correlation fields taken from ctx.
func (l *LoggerClient) DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, append(l.convertToZapFields(err, fields...), l.traceFields(ctx)...)...)
}

// WarnWithContext is Warn plus trace correlation fields taken from ctx.
func (l *LoggerClient) WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, append(l.convertToZapFields(err, fields...), l.traceFields(ctx)...)...)
}

// ErrorWithContext is Error plus trace correlation fields taken from ctx.
func (l *LoggerClient) ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, append(l.convertToZapFields(err, fields...), l.traceFields(ctx)...)...)
}
