package metrics

// Config defines the configuration structure for the Prometheus metrics registry.
type Config struct {
	// EnableDefaultCollectors controls whether the built-in Go runtime
	// and process metrics are automatically registered.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "enable_default_collectors" key
	//   - Environment variable METRICS_ENABLE_DEFAULT_COLLECTORS
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// Namespace sets a global prefix for all metrics registered by this service.
	//
	// Example:
	//   Namespace: "collection_init"
	//   → Metric name becomes "collection_init_collections_ensured_total"
	Namespace string `yaml:"namespace" env:"METRICS_NAMESPACE"`

	// ServiceName identifies the service exposing metrics.
	// This is used as a common label in all metrics.
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME"`

	// TextfilePath is where the registry is written in Prometheus text format
	// when the application stops, for node-exporter's textfile collector.
	// Empty disables the export.
	//
	// Example:
	//   TextfilePath: "/var/lib/node_exporter/textfile/collection_init.prom"
	TextfilePath string `yaml:"textfile_path" env:"METRICS_TEXTFILE_PATH"`
}
