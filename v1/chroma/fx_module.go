package chroma

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/collection-init/v1/logger"
	"github.com/Aleph-Alpha/collection-init/v1/vectordb"
)

// FXModule provides the Chroma backend as vectordb.Service.
//
// Dependencies required by this module:
// - A chroma.Config instance
// - A logger.Logger instance
var FXModule = fx.Module("chroma",
	fx.Provide(
		NewClientWithDI,
		fx.Annotate(
			ProvideService,
			fx.As(new(vectordb.Service)),
		),
	),
	fx.Invoke(RegisterLifecycle),
)

// ChromaParams groups the dependencies needed to construct a Client.
type ChromaParams struct {
	fx.In

	Config Config
	Logger logger.Logger
}

// NewClientWithDI creates a Client from injected dependencies.
func NewClientWithDI(p ChromaParams) (*Client, error) {
	return NewClient(p.Config, p.Logger)
}

// ProvideService exposes the concrete client as vectordb.Service.
func ProvideService(c *Client) vectordb.Service {
	return c
}

// RegisterLifecycle closes the client on shutdown.
func RegisterLifecycle(lc fx.Lifecycle, c *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return c.Close()
		},
	})
}
