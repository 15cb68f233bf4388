package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IncrementEnsured increments the ensured-collections counter.
// Example: metrics.IncrementEnsured("created")
func (m *Metrics) IncrementEnsured(outcome string) {
	m.collectionsEnsured.WithLabelValues(outcome).Inc()
}

// RecordOperationDuration records the duration (in seconds) for a store operation.
// Example: defer metrics.RecordOperationDuration(time.Now(), "create_collection")
func (m *Metrics) RecordOperationDuration(start time.Time, operation string) {
	duration := time.Since(start).Seconds()
	m.operationDuration.WithLabelValues(operation).Observe(duration)
}

// SetDocumentCount sets the document gauge for a collection.
// Example: metrics.SetDocumentCount("user_portfolios", 0)
func (m *Metrics) SetDocumentCount(collection string, count int) {
	m.collectionDocuments.WithLabelValues(collection).Set(float64(count))
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(m.namespace, name, help, labels)
	m.registerer.MustRegister(counter)
	return counter
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(m.namespace, name, help, labels, buckets)
	m.registerer.MustRegister(hist)
	return hist
}

// CreateGauge creates a new GaugeVec metric and registers it.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := createGaugeVec(m.namespace, name, help, labels)
	m.registerer.MustRegister(gauge)
	return gauge
}

// WriteTextfile gathers the registry and writes it to path in the Prometheus
// text exposition format. The write is atomic (temp file + rename).
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("[Metrics] failed to write textfile %s: %w", path, err)
	}
	return nil
}

// createCounterVec defines a new CounterVec with standard options.
func createCounterVec(namespace, name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

// createHistogramVec defines a new HistogramVec with configurable buckets.
func createHistogramVec(namespace, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		},
		labels,
	)
}

// createGaugeVec defines a new GaugeVec.
func createGaugeVec(namespace, name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}
