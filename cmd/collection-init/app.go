package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/Aleph-Alpha/collection-init/v1/bootstrap"
	"github.com/Aleph-Alpha/collection-init/v1/chroma"
	"github.com/Aleph-Alpha/collection-init/v1/config"
	"github.com/Aleph-Alpha/collection-init/v1/logger"
	"github.com/Aleph-Alpha/collection-init/v1/metrics"
	"github.com/Aleph-Alpha/collection-init/v1/qdrant"
	"github.com/Aleph-Alpha/collection-init/v1/sqlstore"
	"github.com/Aleph-Alpha/collection-init/v1/tracer"
)

// session is a started application ready to run the bootstrapper.
type session struct {
	app    *fx.App
	boot   *bootstrap.Bootstrapper
	tracer *tracer.Tracer
}

func appOptions(cfg config.Config, console *bootstrap.Console, extra ...fx.Option) []fx.Option {
	opts := []fx.Option{
		fx.Supply(
			cfg.Logger,
			cfg.Metrics,
			cfg.Tracer,
			bootstrap.Config{
				ReportPath:  cfg.Bootstrap.ReportPath,
				Collections: cfg.Bootstrap.Collections,
			},
			console,
		),
		fx.WithLogger(func(l *logger.LoggerClient) fxevent.Logger {
			zl := &fxevent.ZapLogger{Logger: l.Zap}
			zl.UseLogLevel(zapcore.DebugLevel)
			return zl
		}),
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		backendModule(cfg),
		bootstrap.FXModule,
	}
	return append(opts, extra...)
}

func backendModule(cfg config.Config) fx.Option {
	switch cfg.Backend {
	case config.BackendQdrant:
		q := cfg.Qdrant
		return fx.Options(fx.Supply(&q), qdrant.FXModule)
	case config.BackendChroma:
		return fx.Options(fx.Supply(cfg.Chroma), chroma.FXModule)
	default:
		return fx.Options(fx.Supply(cfg.SQLStore), sqlstore.FXModule)
	}
}

// start builds and starts the application. Any failure means the store
// client could not be initialized.
func start(ctx context.Context, cfg config.Config, console *bootstrap.Console) (*session, error) {
	s := &session{}
	s.app = fx.New(appOptions(cfg, console, fx.Populate(&s.boot, &s.tracer))...)
	if err := s.app.Err(); err != nil {
		console.ClientFailed(err)
		return nil, fmt.Errorf("%w: %w", bootstrap.ErrInitFailed, err)
	}

	startCtx, cancel := context.WithTimeout(ctx, s.app.StartTimeout())
	defer cancel()
	if err := s.app.Start(startCtx); err != nil {
		console.ClientFailed(err)
		return nil, fmt.Errorf("%w: %w", bootstrap.ErrInitFailed, err)
	}

	console.ClientReady()
	return s, nil
}

func (s *session) stop(ctx context.Context) error {
	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.app.StopTimeout())
	defer cancel()
	return s.app.Stop(stopCtx)
}

// traceContext continues a trace handed over by a calling pipeline.
func (s *session) traceContext(ctx context.Context) context.Context {
	carrier := map[string]string{}
	if v := os.Getenv("TRACEPARENT"); v != "" {
		carrier["traceparent"] = v
	}
	if v := os.Getenv("TRACESTATE"); v != "" {
		carrier["tracestate"] = v
	}
	if len(carrier) == 0 {
		return ctx
	}
	return s.tracer.SetCarrierOnContext(ctx, carrier)
}

func runBootstrap(ctx context.Context, cfg config.Config, out io.Writer) error {
	console := bootstrap.NewConsole(out)
	console.Banner(storageLocation(cfg))

	s, err := start(ctx, cfg, console)
	if err != nil {
		return err
	}

	_, runErr := s.boot.Run(s.traceContext(ctx))
	stopErr := s.stop(ctx)
	if runErr != nil {
		return runErr
	}
	return stopErr
}

func runList(ctx context.Context, cfg config.Config, out io.Writer) error {
	console := bootstrap.NewConsole(out)

	s, err := start(ctx, cfg, console)
	if err != nil {
		return err
	}

	_, listErr := s.boot.Verify(s.traceContext(ctx))
	stopErr := s.stop(ctx)
	if listErr != nil {
		return listErr
	}
	return stopErr
}

// storageLocation describes where the selected backend keeps its data.
func storageLocation(cfg config.Config) string {
	switch cfg.Backend {
	case config.BackendQdrant:
		return net.JoinHostPort(cfg.Qdrant.Endpoint, strconv.Itoa(cfg.Qdrant.Port))
	case config.BackendChroma:
		return cfg.Chroma.BaseURL
	case config.BackendPostgres:
		c := cfg.SQLStore.Connection
		return net.JoinHostPort(c.Host, c.Port) + "/" + c.DbName
	default:
		if abs, err := filepath.Abs(cfg.SQLStore.Path); err == nil {
			return abs
		}
		return cfg.SQLStore.Path
	}
}
