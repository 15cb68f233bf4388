package tracer

// Config defines the tracer settings.
type Config struct {
	// ServiceName is recorded as the service.name resource attribute.
	ServiceName string `yaml:"service_name" env:"TRACER_SERVICE_NAME"`

	// AppEnv is recorded as deployment.environment.
	AppEnv string `yaml:"app_env" env:"APP_ENV"`

	// EnableExport turns on the OTLP/HTTP exporter. Spans are still created
	// when disabled, they are simply not shipped anywhere.
	EnableExport bool `yaml:"enable_export" env:"TRACER_ENABLE_EXPORT"`

	// Endpoint is the OTLP/HTTP collector URL. When empty the exporter falls
	// back to OTEL_EXPORTER_OTLP_ENDPOINT and its own defaults.
	Endpoint string `yaml:"endpoint" env:"TRACER_ENDPOINT"`
}
