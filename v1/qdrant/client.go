package qdrant

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/Aleph-Alpha/collection-init/v1/logger"
)

//
// ──────────────────────────────────────────────────────────────
//   QDRANT CLIENT WRAPPER
// ──────────────────────────────────────────────────────────────
//
// This file defines a thin wrapper around the official Qdrant Go client,
// implementing vectordb.Service for collection bootstrapping.
//
// Responsibilities:
//   • Establish and validate connectivity with Qdrant.
//   • Create collections and keep their metadata in a registry collection.
//   • List collections and count their points.
//   • Offer a safe API suitable for Fx dependency injection.
//

// QdrantClient wraps the official Qdrant Go client.
type QdrantClient struct {
	api     *qdrant.Client
	cfg     *Config
	log     logger.Logger
	started bool
}

const (
	defaultPort          = 6334
	healthCheckTimeout   = 3 * time.Second
	defaultRequestTimeout = 5 * time.Second
)

// NewQdrantClient ──────────────────────────────────────────────────────────────
// NewQdrantClient
// ──────────────────────────────────────────────────────────────
//
// NewQdrantClient constructs a new instance of QdrantClient and validates
// connectivity via a health check.
//
// The Qdrant Go SDK creates lightweight gRPC connections, so this method
// performs an immediate health check to fail fast if the service is unreachable.
//
// Example:
//
//	client, err := qdrant.NewQdrantClient(qdrant.QdrantParams{Config: cfg, Logger: log})
func NewQdrantClient(p QdrantParams) (*QdrantClient, error) {
	cfg := withDefaults(p.Config)

	p.Logger.Info("[Qdrant] Connecting to endpoint", nil, map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"port":     cfg.Port,
	})

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Endpoint,
		Port:                   cfg.Port,
		APIKey:                 cfg.ApiKey,
		UseTLS:                 cfg.UseTLS,
		SkipCompatibilityCheck: !cfg.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to initialize client: %w", err)
	}

	qc := &QdrantClient{
		api:     client,
		cfg:     cfg,
		log:     p.Logger,
		started: true,
	}

	if err := qc.healthCheck(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("[Qdrant] health check failed: %w", err)
	}

	p.Logger.Info("[Qdrant] Client connected successfully", nil, nil)
	return qc, nil
}

// withDefaults returns a copy of cfg with zero values replaced by defaults.
func withDefaults(cfg *Config) *Config {
	out := DefaultConfig()
	if cfg == nil {
		return out
	}
	merged := *cfg
	if merged.Endpoint == "" {
		merged.Endpoint = out.Endpoint
	}
	if merged.Port == 0 {
		merged.Port = defaultPort
	}
	if merged.Timeout == 0 {
		merged.Timeout = defaultRequestTimeout
	}
	if merged.RegistryCollection == "" {
		merged.RegistryCollection = DefaultRegistryCollection
	}
	if merged.VectorSize == 0 {
		merged.VectorSize = defaultVectorSize
	}
	if merged.Distance == "" {
		merged.Distance = defaultDistance
	}
	return &merged
}

// ──────────────────────────────────────────────────────────────
// healthCheck
// ──────────────────────────────────────────────────────────────
//
// healthCheck verifies the availability of the Qdrant service
// through the SDK health endpoint.
//
// It is only called during startup.
func (c *QdrantClient) healthCheck() error {
	if !c.started {
		return fmt.Errorf("[Qdrant] client not started")
	}

	if c.api == nil {
		return fmt.Errorf("[Qdrant] client not initialized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()

	resp, err := c.api.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("[Qdrant] health check failed: %w", err)
	}

	c.log.Info("[Qdrant] Health check passed", nil, map[string]interface{}{
		"title":    resp.GetTitle(),
		"version":  resp.GetVersion(),
		"endpoint": c.cfg.Endpoint,
	})

	return nil
}

// Client returns the underlying Qdrant SDK client.
// This is useful for direct access to low-level operations.
func (c *QdrantClient) Client() *qdrant.Client {
	return c.api
}

// Close ──────────────────────────────────────────────────────────────
// Close
// ──────────────────────────────────────────────────────────────
//
// Close gracefully shuts down the gRPC connection of the Qdrant client.
// Calling it more than once is a no-op.
func (c *QdrantClient) Close() error {
	if !c.started {
		return nil
	}
	c.started = false

	c.log.Debug("[Qdrant] closing client", nil, nil)
	if err := c.api.Close(); err != nil {
		return fmt.Errorf("[Qdrant] failed to close client: %w", err)
	}
	return nil
}
