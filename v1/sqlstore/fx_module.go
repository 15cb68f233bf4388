package sqlstore

import (
	"context"
	"sync"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/collection-init/v1/logger"
	"github.com/Aleph-Alpha/collection-init/v1/vectordb"
)

// FXModule provides the SQL-backed store as vectordb.Service.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    sqlstore.FXModule,
//	    fx.Provide(func() sqlstore.Config { return sqlstore.DefaultConfig() }),
//	)
//
// Dependencies required by this module:
// - A sqlstore.Config instance
// - A logger.Logger instance
var FXModule = fx.Module("sqlstore",
	fx.Provide(
		NewStoreWithDI,
		fx.Annotate(
			ProvideService,
			fx.As(new(vectordb.Service)),
		),
	),
	fx.Invoke(RegisterStoreLifecycle),
)

// ProvideService exposes the concrete *Store as vectordb.Service.
func ProvideService(s *Store) vectordb.Service {
	return s
}

// StoreParams groups the dependencies needed to construct a Store.
type StoreParams struct {
	fx.In

	Config Config
	Logger logger.Logger
}

// NewStoreWithDI creates a Store from injected dependencies.
func NewStoreWithDI(p StoreParams) (*Store, error) {
	return NewStore(p.Config, p.Logger)
}

// RegisterStoreLifecycle closes the store when the application stops.
func RegisterStoreLifecycle(lc fx.Lifecycle, store *Store) {
	var once sync.Once

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			var err error
			once.Do(func() {
				err = store.Close()
			})
			return err
		},
	})
}
