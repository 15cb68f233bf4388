package sqlstore

import "time"

const (
	// DriverSQLite keeps the catalog in a single file under Config.Path.
	DriverSQLite = "sqlite"

	// DriverPostgres connects to a PostgreSQL server.
	DriverPostgres = "postgres"

	// DefaultPath is the persistent storage directory used when none is configured.
	DefaultPath = "chroma_data"

	// DatabaseFile is the SQLite file name inside the storage directory.
	DatabaseFile = "catalog.sqlite3"
)

// Config holds connection and behavior settings for the SQL-backed store.
//
// Example (sqlite):
//
//	cfg := sqlstore.DefaultConfig()
//	cfg.Path = "/var/lib/collection-init"
//
// Example (postgres):
//
//	cfg := sqlstore.Config{
//	    Driver: sqlstore.DriverPostgres,
//	    Connection: sqlstore.Connection{
//	        Host: "localhost", Port: "5432", User: "postgres",
//	        Password: "secret", DbName: "vectors", SSLMode: "disable",
//	    },
//	}
type Config struct {
	// Driver selects the dialect: "sqlite" (default) or "postgres".
	Driver string `yaml:"driver" env:"SQLSTORE_DRIVER"`

	// Path is the persistent storage directory for the sqlite driver.
	Path string `yaml:"path" env:"SQLSTORE_PATH"`

	// Connection is used by the postgres driver.
	Connection Connection `yaml:"connection"`

	// ConnectionDetails tunes the database/sql pool.
	ConnectionDetails ConnectionDetails `yaml:"connection_details"`

	// LogLevel controls gorm's own logger: silent, error, warn or info.
	LogLevel string `yaml:"log_level" env:"SQLSTORE_LOG_LEVEL"`
}

// Connection holds PostgreSQL connection parameters.
type Connection struct {
	Host     string `yaml:"host" env:"SQLSTORE_PG_HOST"`
	Port     string `yaml:"port" env:"SQLSTORE_PG_PORT"`
	User     string `yaml:"user" env:"SQLSTORE_PG_USER"`
	Password string `yaml:"password" env:"SQLSTORE_PG_PASSWORD"`
	DbName   string `yaml:"db_name" env:"SQLSTORE_PG_DBNAME"`
	SSLMode  string `yaml:"ssl_mode" env:"SQLSTORE_PG_SSLMODE"`
}

// ConnectionDetails holds pool settings. Zero values fall back to package defaults.
type ConnectionDetails struct {
	MaxOpenConns    int           `yaml:"max_open_conns" env:"SQLSTORE_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env:"SQLSTORE_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"SQLSTORE_CONN_MAX_LIFETIME"`
}

// DefaultConfig provides sqlite defaults rooted at DefaultPath.
func DefaultConfig() Config {
	return Config{
		Driver:   DriverSQLite,
		Path:     DefaultPath,
		LogLevel: "silent",
	}
}

// DSN renders the postgres connection string.
func (c Connection) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return "host=" + c.Host + " port=" + c.Port + " user=" + c.User +
		" password=" + c.Password + " dbname=" + c.DbName + " sslmode=" + sslMode
}
