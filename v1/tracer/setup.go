package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/Aleph-Alpha/collection-init/v1/logger"
)

// Tracer provides a simplified API for distributed tracing with OpenTelemetry.
// It wraps the OpenTelemetry TracerProvider and provides convenient methods for
// creating spans, recording errors and picking up a parent trace context.
//
// The Tracer is designed to be thread-safe and can be shared across goroutines.
type Tracer struct {
	tracer *trace.TracerProvider
	logger logger.Logger
}

// NewClient creates and initializes a new Tracer instance with OpenTelemetry.
// This function sets up the OpenTelemetry tracer provider with the provided configuration,
// configures trace exporters if enabled, and sets global OpenTelemetry settings.
//
// The resource carries the service name, deployment environment and an
// "environment" tag.
//
// Example:
//
//	cfg := tracer.Config{
//	    ServiceName:  "collection-init",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	}
//
//	tracerClient, err := tracer.NewClient(cfg, log)
//	ctx, span := tracerClient.StartSpan(context.Background(), "bootstrap.run")
//	defer span.End()
func NewClient(cfg Config, log logger.Logger) (*Tracer, error) {
	return newTracer(cfg, log)
}

func newTracer(cfg Config, log logger.Logger, extra ...trace.TracerProviderOption) (*Tracer, error) {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		var clientOpts []otlptracehttp.Option
		if cfg.Endpoint != "" {
			clientOpts = append(clientOpts, otlptracehttp.WithEndpointURL(cfg.Endpoint))
		}
		exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient(clientOpts...))
		if err != nil {
			log.Error("cannot initiate tracer", err, nil)
			return nil, fmt.Errorf("[Tracer] failed to create OTLP exporter: %w", err)
		}
		options = append(options, trace.WithBatcher(exporter))
		log.Debug("OTLP trace export enabled", nil, map[string]interface{}{
			"endpoint": cfg.Endpoint,
		})
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))
	options = append(options, extra...)

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &Tracer{tracer: tp, logger: log}, nil
}

// Shutdown flushes pending spans and stops the provider.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil || t.tracer == nil {
		return nil
	}
	return t.tracer.Shutdown(ctx)
}
