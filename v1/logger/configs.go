package logger

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the logger settings.
type Config struct {
	// Level is one of debug, info, warning, error. Anything else maps to info.
	Level string `yaml:"level" env:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"LOGGER_SERVICE_NAME"`

	// EnableTracing adds trace_id and span_id to *WithContext entries.
	EnableTracing bool `yaml:"enable_tracing" env:"LOGGER_ENABLE_TRACING"`
}
