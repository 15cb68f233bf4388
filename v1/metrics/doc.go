// Package metrics provides Prometheus-based metrics collection for the
// collection bootstrap run.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: Defines the contract for metrics operations
//   - Metrics struct: Concrete implementation of the MetricsCollector interface
//   - NewMetrics constructor: Returns *Metrics (concrete type)
//   - FX module: Provides both *Metrics and MetricsCollector interface for dependency injection
//
// Core Features:
//   - Dedicated registry with a constant service label
//   - Optional Go runtime and process collectors
//   - Built-in bootstrap metrics (ensured collections, operation latency, document counts)
//   - Support for custom metric registration (counters, gauges, histograms)
//   - Textfile export on shutdown for node-exporter's textfile collector
//
// # Direct Usage (Without FX)
//
//	import "github.com/Aleph-Alpha/collection-init/v1/metrics"
//
//	m := metrics.NewMetrics(metrics.Config{
//		Namespace:   "collection_init",
//		ServiceName: "collection-init",
//	})
//
//	m.IncrementEnsured("created")
//	defer m.RecordOperationDuration(time.Now(), "create_collection")
//
//	if err := m.WriteTextfile("/tmp/collection_init.prom"); err != nil {
//		// handle error
//	}
//
// # Exported metrics
//
//	<namespace>_collections_ensured_total{outcome="created|existing|failed",service="..."}
//	<namespace>_operation_duration_seconds{operation="...",service="..."}
//	<namespace>_collection_documents{collection="...",service="..."}
//
// # Configuration
//
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true
//	METRICS_NAMESPACE=collection_init
//	METRICS_SERVICE_NAME=collection-init
//	METRICS_TEXTFILE_PATH=/var/lib/node_exporter/textfile/collection_init.prom
package metrics
