package chroma

import (
	"context"
	"fmt"

	chroma "github.com/amikos-tech/chroma-go/pkg/api/v2"
	"github.com/amikos-tech/chroma-go/pkg/embeddings"

	"github.com/Aleph-Alpha/collection-init/v1/logger"
)

// Client implements vectordb.Service against a Chroma server.
type Client struct {
	api chroma.Client
	ef  embeddings.EmbeddingFunction
	cfg Config
	log logger.Logger
}

// NewClient connects to Chroma and verifies the server answers a heartbeat.
func NewClient(cfg Config, log logger.Logger) (*Client, error) {
	cfg = cfg.withDefaults()

	log.Info("[Chroma] Connecting to server", nil, map[string]interface{}{
		"base_url": cfg.BaseURL,
		"tenant":   cfg.Tenant,
		"database": cfg.Database,
	})

	api, err := chroma.NewHTTPClient(
		chroma.WithBaseURL(cfg.BaseURL),
		chroma.WithDatabaseAndTenant(cfg.Database, cfg.Tenant),
	)
	if err != nil {
		return nil, fmt.Errorf("[Chroma] failed to initialize client: %w", err)
	}

	c := &Client{
		api: api,
		// Collections are only created and counted here, never queried, so
		// an embedding function that needs no model download is enough.
		ef:  embeddings.NewConsistentHashEmbeddingFunction(),
		cfg: cfg,
		log: log,
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err := api.Heartbeat(ctx); err != nil {
		_ = api.Close()
		return nil, fmt.Errorf("[Chroma] heartbeat failed: %w", err)
	}

	log.Info("[Chroma] Client connected successfully", nil, nil)
	return c, nil
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	if c.api == nil {
		return nil
	}
	if err := c.api.Close(); err != nil {
		return fmt.Errorf("[Chroma] failed to close client: %w", err)
	}
	c.api = nil
	return nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.cfg.Timeout)
}
