package qdrant

import (
	"context"
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// registryVectorSize is the dimension of the placeholder vector each
// registry point carries. Qdrant requires every point to have one.
const registryVectorSize = 1

// ensureRegistry creates the registry collection if it does not exist yet.
func (c *QdrantClient) ensureRegistry(ctx context.Context) error {
	exists, err := c.api.CollectionExists(ctx, c.cfg.RegistryCollection)
	if err != nil {
		return fmt.Errorf("[Qdrant] failed to check registry collection: %w", err)
	}
	if exists {
		return nil
	}

	c.log.Info("[Qdrant] Registry collection not found, creating it", nil, map[string]interface{}{
		"collection": c.cfg.RegistryCollection,
	})

	err = c.api.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: c.cfg.RegistryCollection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     registryVectorSize,
			Distance: qdrant.Distance_Dot,
		}),
	})
	if err != nil {
		return fmt.Errorf("[Qdrant] failed to create registry collection: %w", err)
	}
	return nil
}

// register upserts the metadata point of a collection and waits for it to
// be persisted.
func (c *QdrantClient) register(ctx context.Context, name string, metadata map[string]string) error {
	wait := true
	_, err := c.api.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: c.cfg.RegistryCollection,
		Wait:           &wait,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewID(registryPointID(name)),
				Vectors: qdrant.NewVectors(0),
				Payload: registryPayload(name, metadata),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("[Qdrant] failed to register metadata for '%s': %w", name, err)
	}
	return nil
}

// lookupMetadata fetches the registry entries of names in one request.
// Names without an entry are absent from the result.
func (c *QdrantClient) lookupMetadata(ctx context.Context, names []string) (map[string]map[string]string, error) {
	out := make(map[string]map[string]string, len(names))
	if len(names) == 0 {
		return out, nil
	}

	exists, err := c.api.CollectionExists(ctx, c.cfg.RegistryCollection)
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to check registry collection: %w", err)
	}
	if !exists {
		return out, nil
	}

	ids := make([]*qdrant.PointId, 0, len(names))
	for _, n := range names {
		ids = append(ids, qdrant.NewID(registryPointID(n)))
	}

	points, err := c.api.Get(ctx, &qdrant.GetPoints{
		CollectionName: c.cfg.RegistryCollection,
		Ids:            ids,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to read registry: %w", err)
	}

	for _, p := range points {
		name, meta := metadataFromPayload(p.GetPayload())
		if name != "" {
			out[name] = meta
		}
	}
	return out, nil
}
