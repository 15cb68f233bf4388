package sqlstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Aleph-Alpha/collection-init/v1/logger"
)

const (
	defaultBatchSize   = 200 // default chunk size for document inserts
	defaultPingTimeout = 5 * time.Second
)

// Store is a vectordb.Service backed by gorm. It persists collections and
// their documents either in a SQLite file under a storage directory or in
// a PostgreSQL database.
type Store struct {
	db  *gorm.DB
	cfg Config
	log logger.Logger
}

// NewStore opens the database, verifies connectivity and migrates the schema.
//
// For the sqlite driver the storage directory is created if missing, so a
// fresh checkout can run the bootstrap without any preparation.
//
// Example:
//
//	store, err := sqlstore.NewStore(sqlstore.DefaultConfig(), log)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
func NewStore(cfg Config, log logger.Logger) (*Store, error) {
	dialector, location, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	log.Info("[SQLStore] Opening store", nil, map[string]interface{}{
		"driver":   driverName(cfg),
		"location": location,
	})

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(parseGormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("[SQLStore] failed to open %s database: %w", driverName(cfg), err)
	}

	s := &Store{db: db, cfg: cfg, log: log}

	if err := s.configurePool(); err != nil {
		return nil, err
	}

	if err := s.healthCheck(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("[SQLStore] health check failed: %w", err)
	}

	if err := db.AutoMigrate(&collectionRecord{}, &documentRecord{}); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("[SQLStore] failed to migrate schema: %w", err)
	}

	log.Info("[SQLStore] Store ready", nil, map[string]interface{}{
		"driver": driverName(cfg),
	})
	return s, nil
}

// openDialector picks the gorm dialector for the configured driver and
// returns a printable location for logging.
func openDialector(cfg Config) (gorm.Dialector, string, error) {
	switch driverName(cfg) {
	case DriverSQLite:
		dir := cfg.Path
		if dir == "" {
			dir = DefaultPath
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, "", fmt.Errorf("[SQLStore] failed to create storage directory %s: %w", dir, err)
		}
		file := filepath.Join(dir, DatabaseFile)
		return sqlite.Open(file + "?_foreign_keys=on&_busy_timeout=5000"), file, nil
	case DriverPostgres:
		if cfg.Connection.Host == "" {
			return nil, "", fmt.Errorf("[SQLStore] postgres host cannot be empty")
		}
		location := cfg.Connection.Host + ":" + cfg.Connection.Port + "/" + cfg.Connection.DbName
		return postgres.Open(cfg.Connection.DSN()), location, nil
	default:
		return nil, "", fmt.Errorf("[SQLStore] unsupported driver %q", cfg.Driver)
	}
}

func driverName(cfg Config) string {
	if cfg.Driver == "" {
		return DriverSQLite
	}
	return cfg.Driver
}

// configurePool applies pool settings. SQLite gets a single writer connection.
func (s *Store) configurePool() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("[SQLStore] failed to get database instance: %w", err)
	}

	maxOpen := s.cfg.ConnectionDetails.MaxOpenConns
	maxIdle := s.cfg.ConnectionDetails.MaxIdleConns
	maxLifetime := s.cfg.ConnectionDetails.ConnMaxLifetime

	if driverName(s.cfg) == DriverSQLite {
		maxOpen, maxIdle = 1, 1
	}
	if maxOpen == 0 {
		maxOpen = 10
	}
	if maxIdle == 0 {
		maxIdle = 5
	}
	if maxLifetime == 0 {
		maxLifetime = 1 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(maxLifetime)
	return nil
}

// healthCheck pings the database with a short timeout.
func (s *Store) healthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance during health check: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultPingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed during health check: %w", err)
	}
	return nil
}

// DB returns the underlying gorm handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("[SQLStore] failed to get database instance: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("[SQLStore] failed to close database: %w", err)
	}
	s.log.Debug("[SQLStore] Store closed", nil, nil)
	return nil
}

func parseGormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	case "info":
		return gormlogger.Info
	}
	return gormlogger.Silent
}
