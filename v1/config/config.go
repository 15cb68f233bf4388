package config

import (
	"fmt"

	"github.com/Aleph-Alpha/collection-init/v1/chroma"
	"github.com/Aleph-Alpha/collection-init/v1/logger"
	"github.com/Aleph-Alpha/collection-init/v1/metrics"
	"github.com/Aleph-Alpha/collection-init/v1/qdrant"
	"github.com/Aleph-Alpha/collection-init/v1/sqlstore"
	"github.com/Aleph-Alpha/collection-init/v1/tracer"
	"github.com/Aleph-Alpha/collection-init/v1/vectordb"
)

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendQdrant   = "qdrant"
	BackendChroma   = "chroma"

	// DefaultReportPath is where the run summary is written.
	DefaultReportPath = "chroma_collections_info.json"

	serviceName = "collection-init"
)

// Config is the complete configuration of collection-init.
type Config struct {
	// Backend picks the vector store: sqlite, postgres, qdrant or chroma.
	Backend string `yaml:"backend" env:"VECTOR_BACKEND"`

	Logger    logger.Config   `yaml:"logger"`
	Metrics   metrics.Config  `yaml:"metrics"`
	Tracer    tracer.Config   `yaml:"tracer"`
	SQLStore  sqlstore.Config `yaml:"sqlstore"`
	Qdrant    qdrant.Config   `yaml:"qdrant"`
	Chroma    chroma.Config   `yaml:"chroma"`
	Bootstrap Bootstrap       `yaml:"bootstrap"`
}

// Bootstrap holds settings of the initialization run itself.
type Bootstrap struct {
	// ReportPath is the JSON report destination.
	ReportPath string `yaml:"report_path" env:"BOOTSTRAP_REPORT_PATH"`

	// Collections replaces the built-in collection set when non-empty.
	Collections []vectordb.CollectionSpec `yaml:"collections"`
}

// Default returns a configuration that runs against the embedded sqlite store.
func Default() Config {
	return Config{
		Backend: BackendSQLite,
		Logger: logger.Config{
			Level:       logger.Info,
			ServiceName: serviceName,
		},
		Metrics: metrics.Config{
			Namespace:   "collection_init",
			ServiceName: serviceName,
		},
		Tracer: tracer.Config{
			ServiceName: serviceName,
			AppEnv:      "local",
		},
		SQLStore:  sqlstore.DefaultConfig(),
		Qdrant:    *qdrant.DefaultConfig(),
		Chroma:    chroma.DefaultConfig(),
		Bootstrap: Bootstrap{ReportPath: DefaultReportPath},
	}
}

// Validate checks that the selected backend is known and configured.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite:
		if c.SQLStore.Path == "" {
			return fmt.Errorf("sqlstore.path is required for the %s backend", c.Backend)
		}
	case BackendPostgres:
		if c.SQLStore.Connection.Host == "" || c.SQLStore.Connection.DbName == "" {
			return fmt.Errorf("sqlstore.connection host and db_name are required for the %s backend", c.Backend)
		}
	case BackendQdrant:
		if c.Qdrant.Endpoint == "" {
			return fmt.Errorf("qdrant.endpoint is required for the %s backend", c.Backend)
		}
	case BackendChroma:
		if c.Chroma.BaseURL == "" {
			return fmt.Errorf("chroma.base_url is required for the %s backend", c.Backend)
		}
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}

	if c.Bootstrap.ReportPath == "" {
		return fmt.Errorf("bootstrap.report_path cannot be empty")
	}
	return nil
}

// Normalize aligns derived fields after all sources have been applied.
func (c *Config) Normalize() {
	switch c.Backend {
	case BackendSQLite:
		c.SQLStore.Driver = sqlstore.DriverSQLite
	case BackendPostgres:
		c.SQLStore.Driver = sqlstore.DriverPostgres
	}
}
