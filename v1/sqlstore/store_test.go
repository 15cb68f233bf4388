package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/collection-init/v1/logger"
	"github.com/Aleph-Alpha/collection-init/v1/vectordb"
)

func testLogger() logger.Logger {
	return logger.NewFromZap(zap.NewNop(), false)
}

func openTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Path = dir
	store, err := NewStore(cfg, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewStoreCreatesStorageDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "chroma_data")
	openTestStore(t, dir)

	_, err := os.Stat(filepath.Join(dir, DatabaseFile))
	assert.NoError(t, err)
}

func TestNewStoreRejectsBadConfig(t *testing.T) {
	_, err := NewStore(Config{Driver: "mongodb"}, testLogger())
	assert.ErrorContains(t, err, "unsupported driver")

	_, err = NewStore(Config{Driver: DriverPostgres}, testLogger())
	assert.ErrorContains(t, err, "postgres host cannot be empty")
}

func TestNewStoreFailsOnUnwritablePath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	cfg := DefaultConfig()
	cfg.Path = filepath.Join(file, "sub")
	_, err := NewStore(cfg, testLogger())
	assert.ErrorContains(t, err, "failed to create storage directory")
}

func TestCollectionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, t.TempDir())

	meta := map[string]string{
		"description": "Trading tutorials",
		"category":    "education",
	}

	created, err := store.CreateCollection(ctx, "educational_content", meta)
	require.NoError(t, err)
	assert.Equal(t, "educational_content", created.Name)
	assert.Equal(t, meta, created.Metadata)

	got, err := store.GetCollection(ctx, "educational_content")
	require.NoError(t, err)
	assert.Equal(t, meta, got.Metadata)

	count, err := store.Count(ctx, "educational_content")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = store.CreateCollection(ctx, "educational_content", meta)
	assert.True(t, vectordb.IsAlreadyExists(err), "got %v", err)
}

func TestGetCollectionNotFound(t *testing.T) {
	store := openTestStore(t, t.TempDir())

	_, err := store.GetCollection(context.Background(), "market_analysis")
	require.Error(t, err)
	assert.True(t, vectordb.IsNotFound(err))

	_, err = store.Count(context.Background(), "market_analysis")
	assert.True(t, vectordb.IsNotFound(err))
}

func TestGetCollectionLookupFailureIsNotNotFound(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	require.NoError(t, store.Close())

	_, err := store.GetCollection(context.Background(), "market_analysis")
	require.Error(t, err)
	assert.False(t, vectordb.IsNotFound(err))
}

func TestCreateCollectionValidatesName(t *testing.T) {
	store := openTestStore(t, t.TempDir())

	_, err := store.CreateCollection(context.Background(), "a b", nil)
	assert.True(t, errors.Is(err, vectordb.ErrInvalidCollectionName))
}

func TestListCollectionsSorted(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, t.TempDir())

	for _, name := range []string{"user_portfolios", "bitcoin_historical_data", "game_achievements"} {
		_, err := store.CreateCollection(ctx, name, map[string]string{"category": name})
		require.NoError(t, err)
	}

	list, err := store.ListCollections(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "bitcoin_historical_data", list[0].Name)
	assert.Equal(t, "game_achievements", list[1].Name)
	assert.Equal(t, "user_portfolios", list[2].Name)
	assert.Equal(t, "user_portfolios", list[2].Metadata["category"])
}

func TestAddDocumentsAndCount(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, t.TempDir())

	_, err := store.CreateCollection(ctx, "bitcoin_historical_data", nil)
	require.NoError(t, err)
	_, err = store.CreateCollection(ctx, "user_portfolios", nil)
	require.NoError(t, err)

	docs := make([]Document, 0, defaultBatchSize+5)
	for i := 0; i < defaultBatchSize+5; i++ {
		docs = append(docs, Document{
			ID:        fmt.Sprintf("price-%03d", i),
			Content:   "close price",
			Embedding: []float32{0.1, 0.2},
			Metadata:  map[string]string{"source": "test"},
		})
	}
	require.NoError(t, store.AddDocuments(ctx, "bitcoin_historical_data", docs))

	count, err := store.Count(ctx, "bitcoin_historical_data")
	require.NoError(t, err)
	assert.Equal(t, defaultBatchSize+5, count)

	other, err := store.Count(ctx, "user_portfolios")
	require.NoError(t, err)
	assert.Equal(t, 0, other)

	err = store.AddDocuments(ctx, "bitcoin_historical_data", []Document{{ID: ""}})
	assert.ErrorContains(t, err, "empty id")

	err = store.AddDocuments(ctx, "missing_collection", []Document{{ID: "x"}})
	assert.True(t, vectordb.IsNotFound(err))
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first := openTestStore(t, dir)
	_, err := first.CreateCollection(ctx, "game_achievements", map[string]string{"category": "gamification"})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second := openTestStore(t, dir)
	got, err := second.GetCollection(ctx, "game_achievements")
	require.NoError(t, err)
	assert.Equal(t, "gamification", got.Metadata["category"])
}

func TestConnectionDSN(t *testing.T) {
	c := Connection{Host: "db", Port: "5432", User: "u", Password: "p", DbName: "vectors"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=vectors sslmode=disable", c.DSN())

	c.SSLMode = "require"
	assert.Contains(t, c.DSN(), "sslmode=require")
}
