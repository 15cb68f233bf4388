package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	traceSpan "go.opentelemetry.io/otel/trace"
)

// RecordErrorOnSpan records an error on a span and sets its status to error.
//
// Example:
//
//	ctx, span := tracer.StartSpan(ctx, "bootstrap.ensure")
//	defer span.End()
//
//	if _, err := db.CreateCollection(ctx, name, meta); err != nil {
//	    tracer.RecordErrorOnSpan(span, err)
//	    return err
//	}
func (t *Tracer) RecordErrorOnSpan(span traceSpan.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// StartSpan creates a new span with the given name and returns an updated context
// containing the span, along with the span itself.
//
// The created span becomes a child of any span that exists in the provided context.
// If no span exists in the context, a new root span is created.
func (t *Tracer) StartSpan(ctx context.Context, name string) (context.Context, traceSpan.Span) {
	tracer := t.tracer.Tracer("github.com/Aleph-Alpha/collection-init")
	ctx, span := tracer.Start(ctx, name)
	return ctx, span
}

// SetAttributes adds one or more attributes to a span with support for different data types.
//
// Supported value types:
//   - string: Stored as string attributes
//   - int/int64: Stored as integer attributes
//   - float64: Stored as floating-point attributes
//   - bool: Stored as boolean attributes
//   - other types: Converted to strings using fmt.Sprint
func (t *Tracer) SetAttributes(span traceSpan.Span, attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))

	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		default:
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}

	span.SetAttributes(attributes...)
}

// SetCarrierOnContext extracts trace information from a carrier map and injects it into a context.
// The CLI uses it to continue a trace started by the calling pipeline, which
// passes W3C headers through the TRACEPARENT and TRACESTATE environment variables.
//
// The carrier map typically contains:
//   - "traceparent": Contains trace ID, span ID, and trace flags
//   - "tracestate": Contains vendor-specific trace information (if present)
func (t *Tracer) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	return propagator.Extract(ctx, propagation.MapCarrier(carrier))
}
