package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/Aleph-Alpha/collection-init/v1/logger"
	"github.com/Aleph-Alpha/collection-init/v1/vectordb"
)

// PostgresContainer represents a Postgres container for testing
type PostgresContainer struct {
	testcontainers.Container
	Connection Connection
}

// setupPostgresContainer sets up a Postgres container for testing
func setupPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image: "postgres:16-alpine",
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "vectors",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	conn := Connection{
		Host:     host,
		Port:     mappedPort.Port(),
		User:     "testuser",
		Password: "testpass",
		DbName:   "vectors",
		SSLMode:  "disable",
	}

	if err := waitForPostgresReady(conn, 30*time.Second); err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("postgres container not ready: %w", err)
	}

	return &PostgresContainer{Container: container, Connection: conn}, nil
}

// waitForPostgresReady attempts to connect to PostgreSQL until it's ready or times out
func waitForPostgresReady(conn Connection, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		db, err := sql.Open("postgres", conn.DSN())
		if err == nil {
			err = db.Ping()
			_ = db.Close()
			if err == nil {
				return nil
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("timed out waiting for PostgreSQL to be ready after %s", timeout)
}

// TestPostgresStoreWithFXModule runs the store against a real PostgreSQL
// server through the FX module.
func TestPostgresStoreWithFXModule(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pg, err := setupPostgresContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := pg.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}()

	var svc vectordb.Service
	app := fxtest.New(t,
		fx.Provide(
			func() Config {
				return Config{Driver: DriverPostgres, Connection: pg.Connection}
			},
			func() logger.Logger { return testLogger() },
		),
		FXModule,
		fx.Populate(&svc),
	)
	app.RequireStart()
	defer app.RequireStop()

	meta := map[string]string{"category": "analytics"}

	_, err = svc.GetCollection(ctx, "market_analysis")
	require.True(t, vectordb.IsNotFound(err))

	_, err = svc.CreateCollection(ctx, "market_analysis", meta)
	require.NoError(t, err)

	_, err = svc.CreateCollection(ctx, "market_analysis", meta)
	assert.True(t, vectordb.IsAlreadyExists(err))

	got, err := svc.GetCollection(ctx, "market_analysis")
	require.NoError(t, err)
	assert.Equal(t, meta, got.Metadata)

	list, err := svc.ListCollections(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	count, err := svc.Count(ctx, "market_analysis")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
