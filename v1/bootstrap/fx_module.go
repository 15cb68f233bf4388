package bootstrap

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/collection-init/v1/logger"
	"github.com/Aleph-Alpha/collection-init/v1/metrics"
	"github.com/Aleph-Alpha/collection-init/v1/tracer"
	"github.com/Aleph-Alpha/collection-init/v1/vectordb"
)

// FXModule provides the *Bootstrapper. The run itself is started by the
// caller once the application has started, so no lifecycle hook is registered.
//
// Dependencies required by this module:
// - A vectordb.Service (from sqlstore, qdrant or chroma)
// - A *bootstrap.Console and a bootstrap.Config
// - logger.Logger, metrics.MetricsCollector and *tracer.Tracer
var FXModule = fx.Module("bootstrap",
	fx.Provide(NewWithDI),
)

// BootstrapParams groups the dependencies of a Bootstrapper.
type BootstrapParams struct {
	fx.In

	Store   vectordb.Service
	Console *Console
	Logger  logger.Logger
	Metrics metrics.MetricsCollector
	Tracer  *tracer.Tracer
	Config  Config
}

// NewWithDI creates a Bootstrapper from injected dependencies.
func NewWithDI(p BootstrapParams) *Bootstrapper {
	return New(p.Store, p.Console, p.Logger, p.Metrics, p.Tracer, p.Config)
}
