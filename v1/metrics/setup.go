package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics encapsulates the Prometheus registry of the bootstrap run.
//
// A batch job never lives long enough to be scraped, so instead of an HTTP
// endpoint the registry is flushed to a textfile when the application stops.
type Metrics struct {
	// Registry is the Prometheus registry where all metrics are registered.
	Registry *prometheus.Registry

	registerer prometheus.Registerer
	namespace  string

	// Core built-in metrics
	collectionsEnsured  *prometheus.CounterVec
	operationDuration   *prometheus.HistogramVec
	collectionDocuments *prometheus.GaugeVec
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, registers default system collectors
// when enabled, and wraps all metrics with a constant `service` label.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Namespace:   "collection_init",
//	    ServiceName: "collection-init",
//	})
//	m.IncrementEnsured("created")
//	_ = m.WriteTextfile("/var/lib/node_exporter/textfile/collection_init.prom")
func NewMetrics(cfg Config) *Metrics {
	// Create a new isolated Prometheus registry for this service.
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service automatically include the label:
	//   service="<cfg.ServiceName>"
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		registerer: wrappedRegistry,
		namespace:  cfg.Namespace,
	}

	m.collectionsEnsured = createCounterVec(cfg.Namespace, "collections_ensured_total", "Total number of collections ensured, by outcome", []string{"outcome"})
	m.operationDuration = createHistogramVec(cfg.Namespace, "operation_duration_seconds", "Duration of vector store operations in seconds", []string{"operation"}, prometheus.DefBuckets)
	m.collectionDocuments = createGaugeVec(cfg.Namespace, "collection_documents", "Number of documents per collection at verification time", []string{"collection"})

	wrappedRegistry.MustRegister(
		m.collectionsEnsured,
		m.operationDuration,
		m.collectionDocuments,
	)

	// These provide essential runtime metrics for Go processes:
	//   - GoCollector: Memory usage, goroutines, GC stats
	//   - ProcessCollector: CPU, file descriptors, memory stats
	//   - BuildInfoCollector: Binary version/build info
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	return m
}
