package chroma

import "time"

const (
	DefaultTenant   = "default_tenant"
	DefaultDatabase = "default_database"

	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 10 * time.Second
	listPageSize   = 100
)

// Config holds the connection settings of the Chroma HTTP client.
type Config struct {
	// BaseURL is the server root, e.g. "http://localhost:8000".
	BaseURL string `yaml:"base_url" env:"CHROMA_BASE_URL"`

	// Tenant and Database select the namespace collections live in.
	Tenant   string `yaml:"tenant" env:"CHROMA_TENANT"`
	Database string `yaml:"database" env:"CHROMA_DATABASE"`

	// Timeout bounds each request.
	Timeout time.Duration `yaml:"timeout" env:"CHROMA_TIMEOUT"`
}

// DefaultConfig targets a local server on the default tenant and database.
func DefaultConfig() Config {
	return Config{
		BaseURL:  defaultBaseURL,
		Tenant:   DefaultTenant,
		Database: DefaultDatabase,
		Timeout:  defaultTimeout,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.Tenant == "" {
		c.Tenant = d.Tenant
	}
	if c.Database == "" {
		c.Database = d.Database
	}
	if c.Timeout <= 0 {
		c.Timeout = d.Timeout
	}
	return c
}
