package qdrant

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/collection-init/v1/logger"
	"github.com/Aleph-Alpha/collection-init/v1/vectordb"
)

// FXModule provides the Qdrant backend as vectordb.Service.
//
// Dependencies required by this module:
// - A *qdrant.Config instance
// - A logger.Logger instance
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewQdrantClient,
		fx.Annotate(
			ProvideService,
			fx.As(new(vectordb.Service)),
		),
	),
	fx.Invoke(RegisterLifecycle),
)

// QdrantParams groups the dependencies needed to construct a QdrantClient.
type QdrantParams struct {
	fx.In

	Config *Config
	Logger logger.Logger
}

// ProvideService exposes the concrete client as vectordb.Service.
func ProvideService(c *QdrantClient) vectordb.Service {
	return c
}

// RegisterLifecycle closes the gRPC connection on shutdown.
func RegisterLifecycle(lc fx.Lifecycle, c *QdrantClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return c.Close()
		},
	})
}
