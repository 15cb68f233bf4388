package bootstrap

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/collection-init/v1/logger"
	"github.com/Aleph-Alpha/collection-init/v1/metrics"
	"github.com/Aleph-Alpha/collection-init/v1/sqlstore"
	"github.com/Aleph-Alpha/collection-init/v1/tracer"
	"github.com/Aleph-Alpha/collection-init/v1/vectordb"
)

type harness struct {
	boot       *Bootstrapper
	out        *bytes.Buffer
	metrics    *metrics.Metrics
	reportPath string
}

func testLogger() logger.Logger {
	return logger.NewFromZap(zap.NewNop(), false)
}

func newHarness(t *testing.T, store vectordb.Service) *harness {
	t.Helper()

	log := testLogger()
	tr, err := tracer.NewClient(tracer.Config{ServiceName: "collection-init-test"}, log)
	require.NoError(t, err)

	m := metrics.NewMetrics(metrics.Config{Namespace: "test", ServiceName: "collection-init-test"})
	out := &bytes.Buffer{}
	reportPath := filepath.Join(t.TempDir(), "chroma_collections_info.json")

	return &harness{
		boot:       New(store, NewConsole(out), log, m, tr, Config{ReportPath: reportPath}),
		out:        out,
		metrics:    m,
		reportPath: reportPath,
	}
}

func openSQLiteStore(t *testing.T, dir string) *sqlstore.Store {
	t.Helper()

	cfg := sqlstore.DefaultConfig()
	cfg.Path = dir
	store, err := sqlstore.NewStore(cfg, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}
