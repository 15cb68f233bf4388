package qdrant

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	qdrant "github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/collection-init/v1/logger"
	"github.com/Aleph-Alpha/collection-init/v1/vectordb"
)

// QdrantContainer represents a Qdrant container for testing
type QdrantContainer struct {
	testcontainers.Container
	Host string
	Port string
}

// setupQdrantContainer sets up a Qdrant container for testing
func setupQdrantContainer(ctx context.Context) (*QdrantContainer, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("could not get free port: %w", err)
	}

	portBindings := nat.PortMap{
		"6334/tcp": []nat.PortBinding{{HostPort: strconv.Itoa(port)}},
	}

	req := testcontainers.ContainerRequest{
		Image: "qdrant/qdrant:v1.11.0",
		Env: map[string]string{
			"QDRANT__SERVICE__GRPC_PORT": "6334",
		},
		ExposedPorts: []string{"6334/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForListeningPort("6334/tcp").WithStartupTimeout(60 * time.Second),
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start qdrant container: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	mappedPort, err := c.MappedPort(ctx, "6334")
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	if err := waitForQdrantReady(host, mappedPort.Port(), 30*time.Second); err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("qdrant container not ready: %w", err)
	}

	return &QdrantContainer{Container: c, Host: host, Port: mappedPort.Port()}, nil
}

// getFreePort gets a free port from the OS
func getFreePort() (int, error) {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer func() { _ = l.Close() }()

	return l.Addr().(*net.TCPAddr).Port, nil
}

// waitForQdrantReady attempts to connect to Qdrant until it's ready or times out
func waitForQdrantReady(host, port string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, port), 2*time.Second)
		if err == nil {
			_ = conn.Close()
			// the gRPC listener accepts before the service is fully up
			time.Sleep(2 * time.Second)
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("timed out waiting for Qdrant to be ready after %s", timeout)
}

func TestQdrantWithFXModule(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	containerInstance, err := setupQdrantContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	portNum, err := strconv.Atoi(containerInstance.Port)
	require.NoError(t, err)

	var (
		client *QdrantClient
		svc    vectordb.Service
	)

	app := fxtest.New(t,
		fx.Provide(
			func() *Config {
				return &Config{
					Endpoint:           containerInstance.Host,
					Port:               portNum,
					CheckCompatibility: false,
					Timeout:            10 * time.Second,
					VectorSize:         8,
				}
			},
			func() logger.Logger { return logger.NewFromZap(zap.NewNop(), false) },
		),
		FXModule,
		fx.Populate(&client, &svc),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, client)
	require.NoError(t, client.healthCheck())

	meta := map[string]string{
		"description": "Historical Bitcoin price data",
		"category":    "market_data",
	}

	t.Run("CreateAndGet", func(t *testing.T) {
		_, err := svc.GetCollection(ctx, "bitcoin_historical_data")
		assert.ErrorIs(t, err, vectordb.ErrCollectionNotFound)

		created, err := svc.CreateCollection(ctx, "bitcoin_historical_data", meta)
		require.NoError(t, err)
		assert.Equal(t, meta, created.Metadata)

		got, err := svc.GetCollection(ctx, "bitcoin_historical_data")
		require.NoError(t, err)
		assert.Equal(t, meta, got.Metadata)

		_, err = svc.CreateCollection(ctx, "bitcoin_historical_data", meta)
		assert.ErrorIs(t, err, vectordb.ErrCollectionExists)
	})

	t.Run("ListHidesRegistry", func(t *testing.T) {
		_, err := svc.CreateCollection(ctx, "alpha_collection", nil)
		require.NoError(t, err)

		list, err := svc.ListCollections(ctx)
		require.NoError(t, err)

		names := make([]string, 0, len(list))
		for _, c := range list {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"alpha_collection", "bitcoin_historical_data"}, names)
		assert.NotNil(t, list[0].Metadata)
		assert.Empty(t, list[0].Metadata)

		_, err = svc.GetCollection(ctx, DefaultRegistryCollection)
		assert.ErrorIs(t, err, vectordb.ErrCollectionNotFound)
	})

	t.Run("Count", func(t *testing.T) {
		n, err := svc.Count(ctx, "bitcoin_historical_data")
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		wait := true
		_, err = client.Client().Upsert(ctx, &qdrant.UpsertPoints{
			CollectionName: "bitcoin_historical_data",
			Wait:           &wait,
			Points: []*qdrant.PointStruct{
				{Id: qdrant.NewIDNum(1), Vectors: qdrant.NewVectors(1, 0, 0, 0, 0, 0, 0, 0)},
				{Id: qdrant.NewIDNum(2), Vectors: qdrant.NewVectors(0, 1, 0, 0, 0, 0, 0, 0)},
			},
		})
		require.NoError(t, err)

		n, err = svc.Count(ctx, "bitcoin_historical_data")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		_, err = svc.Count(ctx, "missing_collection")
		assert.ErrorIs(t, err, vectordb.ErrCollectionNotFound)
	})

	t.Run("InvalidName", func(t *testing.T) {
		_, err := svc.CreateCollection(ctx, "x", nil)
		assert.ErrorIs(t, err, vectordb.ErrInvalidCollectionName)
	})
}
