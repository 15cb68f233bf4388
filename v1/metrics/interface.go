package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector provides an interface for collecting and exporting bootstrap metrics.
// It abstracts Prometheus metric operations with support for counters, histograms, and gauges.
//
// This interface is implemented by the concrete *Metrics type.
type MetricsCollector interface {
	// IncrementEnsured counts a collection that was ensured with the given outcome
	// ("created", "existing" or "failed").
	IncrementEnsured(outcome string)

	// RecordOperationDuration records the duration (in seconds) of a store operation.
	RecordOperationDuration(start time.Time, operation string)

	// SetDocumentCount sets the document gauge of a collection.
	SetDocumentCount(collection string, count int)

	// CreateCounter creates a new CounterVec metric and registers it.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates a new HistogramVec metric and registers it.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec

	// CreateGauge creates a new GaugeVec metric and registers it.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec

	// WriteTextfile writes every registered metric to path atomically.
	WriteTextfile(path string) error
}
