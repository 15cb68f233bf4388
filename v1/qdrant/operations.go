package qdrant

import (
	"context"
	"fmt"
	"slices"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/Aleph-Alpha/collection-init/v1/vectordb"
)

// CreateCollection ──────────────────────────────────────────────────────────────
// CreateCollection
// ──────────────────────────────────────────────────────────────
//
// CreateCollection creates a data collection with the configured vector
// parameters and records its metadata in the registry collection.
//
// If registering the metadata fails the freshly created collection is
// dropped again, so a collection never exists without its metadata.
func (c *QdrantClient) CreateCollection(ctx context.Context, name string, metadata map[string]string) (*vectordb.Collection, error) {
	if err := vectordb.ValidateName(name); err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	exists, err := c.api.CollectionExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to check collection '%s': %w", name, err)
	}
	if exists {
		return nil, fmt.Errorf("[Qdrant] collection '%s': %w", name, vectordb.ErrCollectionExists)
	}

	if err := c.ensureRegistry(ctx); err != nil {
		return nil, err
	}

	distance, err := parseDistance(c.cfg.Distance)
	if err != nil {
		return nil, err
	}

	req := &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     c.cfg.VectorSize,
			Distance: distance,
		}),
	}
	if err := c.api.CreateCollection(ctx, req); err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to create collection '%s': %w", name, err)
	}

	if err := c.register(ctx, name, metadata); err != nil {
		if dropErr := c.api.DeleteCollection(ctx, name); dropErr != nil {
			c.log.Error("[Qdrant] failed to roll back collection", dropErr, map[string]interface{}{
				"collection": name,
			})
		}
		return nil, err
	}

	c.log.Info("[Qdrant] Created collection", nil, map[string]interface{}{
		"collection":  name,
		"vector_size": c.cfg.VectorSize,
		"distance":    c.cfg.Distance,
	})

	return &vectordb.Collection{Name: name, Metadata: vectordb.CloneMetadata(metadata)}, nil
}

// GetCollection ──────────────────────────────────────────────────────────────
// GetCollection
// ──────────────────────────────────────────────────────────────
//
// GetCollection reports whether a collection exists and returns its metadata.
//
// Existence is decided by CollectionExists, so a transport failure is never
// mistaken for a missing collection. A collection created outside this tool
// has no registry entry and is returned with empty metadata.
func (c *QdrantClient) GetCollection(ctx context.Context, name string) (*vectordb.Collection, error) {
	if name == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.requireExists(ctx, name); err != nil {
		return nil, err
	}

	metas, err := c.lookupMetadata(ctx, []string{name})
	if err != nil {
		return nil, err
	}

	return &vectordb.Collection{Name: name, Metadata: orEmpty(metas[name])}, nil
}

// ListCollections ──────────────────────────────────────────────────────────────
// ListCollections
// ──────────────────────────────────────────────────────────────
//
// ListCollections retrieves all data collections from Qdrant, sorted by
// name, with their metadata. The registry collection is hidden.
func (c *QdrantClient) ListCollections(ctx context.Context) ([]vectordb.Collection, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	names, err := c.api.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to list collections: %w", err)
	}

	names = slices.DeleteFunc(names, func(n string) bool { return n == c.cfg.RegistryCollection })
	slices.Sort(names)

	metas, err := c.lookupMetadata(ctx, names)
	if err != nil {
		return nil, err
	}

	out := make([]vectordb.Collection, 0, len(names))
	for _, n := range names {
		out = append(out, vectordb.Collection{Name: n, Metadata: orEmpty(metas[n])})
	}

	c.log.Debug("[Qdrant] Listed collections", nil, map[string]interface{}{
		"count": len(out),
	})
	return out, nil
}

// Count ──────────────────────────────────────────────────────────────
// Count
// ──────────────────────────────────────────────────────────────
//
// Count returns the exact number of points stored in a collection.
func (c *QdrantClient) Count(ctx context.Context, name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("collection name cannot be empty")
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.requireExists(ctx, name); err != nil {
		return 0, err
	}

	exact := true
	n, err := c.api.Count(ctx, &qdrant.CountPoints{
		CollectionName: name,
		Exact:          &exact,
	})
	if err != nil {
		return 0, fmt.Errorf("[Qdrant] failed to count points in '%s': %w", name, err)
	}
	return int(n), nil
}

func (c *QdrantClient) requireExists(ctx context.Context, name string) error {
	exists, err := c.api.CollectionExists(ctx, name)
	if err != nil {
		return fmt.Errorf("[Qdrant] failed to check collection '%s': %w", name, err)
	}
	if !exists || name == c.cfg.RegistryCollection {
		return fmt.Errorf("[Qdrant] collection '%s': %w", name, vectordb.ErrCollectionNotFound)
	}
	return nil
}

func (c *QdrantClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.cfg.Timeout)
}

func orEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
