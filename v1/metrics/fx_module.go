package metrics

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/collection-init/v1/logger"
)

// FXModule defines the Fx module for the metrics package.
//
// The module:
//  1. Provides the NewMetrics factory function and the MetricsCollector
//     interface to the dependency injection container.
//  2. Invokes RegisterMetricsLifecycle to flush the registry to the
//     configured textfile on shutdown.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{
//	            Namespace:    "collection_init",
//	            ServiceName:  "collection-init",
//	            TextfilePath: "/var/lib/node_exporter/textfile/collection_init.prom",
//	        }
//	    }),
//	)
//
// Dependencies required by this module:
// - A metrics.Config instance must be available in the dependency injection container
// - A logger.Logger instance for lifecycle logs
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		func(m *Metrics) MetricsCollector { return m },
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle writes the metrics textfile when the application stops.
// Nothing is written when Config.TextfilePath is empty.
//
// Note: This function is automatically invoked by the FXModule and does not need
// to be called directly in application code.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, cfg Config, log logger.Logger) {
	if cfg.TextfilePath == "" {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := m.WriteTextfile(cfg.TextfilePath); err != nil {
				log.Error("Failed to write metrics textfile", err, map[string]interface{}{
					"path": cfg.TextfilePath,
				})
				return err
			}
			log.Info("Metrics written", nil, map[string]interface{}{
				"path": cfg.TextfilePath,
			})
			return nil
		},
	})
}
