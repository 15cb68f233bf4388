package logger

import (
	"context"
	"errors"
	"syscall"

	"go.uber.org/fx"
)

// FXModule defines the Fx module for the logger package.
// This module integrates the logger into an Fx-based application by providing
// the logger factory and registering its lifecycle hooks.
//
// The module:
//  1. Provides the NewLoggerClient factory function and exposes it as the
//     Logger interface, making the logger available to other components
//  2. Invokes RegisterLoggerLifecycle to set up proper cleanup during application shutdown
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A logger.Config instance must be available in the dependency injection container
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
		func(l *LoggerClient) Logger { return l },
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle handles cleanup (sync) of the Zap logger.
// The OnStop hook flushes buffered entries before the application terminates.
//
// EINVAL and ENOTTY from syncing stderr are ignored.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *LoggerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			err := client.Zap.Sync()
			if err != nil && (errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)) {
				return nil
			}
			return err
		},
	})
}
