package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides a Uber FX module that configures distributed tracing for your application.
// This module registers the tracer client with the dependency injection system and
// sets up proper lifecycle management to ensure graceful shutdown of the tracer.
//
// The module:
// 1. Provides the tracer client through the NewClient constructor
// 2. Registers shutdown hooks to cleanly close tracer resources on application termination
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers shutdown hooks for the tracer with the FX lifecycle.
// The OnStop hook flushes pending spans to the exporter before the process exits.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer == nil {
				return nil
			}
			if tracer.tracer == nil {
				tracer.logger.Info("tracer is nil, skipping shutdown", nil, nil)
				return nil
			}
			tracer.logger.Debug("shutting down tracer", nil, nil)
			return tracer.Shutdown(ctx)
		},
	})
}
