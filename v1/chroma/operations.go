package chroma

import (
	"context"
	"fmt"
	"sort"

	chroma "github.com/amikos-tech/chroma-go/pkg/api/v2"

	"github.com/Aleph-Alpha/collection-init/v1/vectordb"
)

// CreateCollection creates a collection with the given metadata. An existing
// collection of the same name yields vectordb.ErrCollectionExists.
func (c *Client) CreateCollection(ctx context.Context, name string, metadata map[string]string) (*vectordb.Collection, error) {
	if err := vectordb.ValidateName(name); err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if _, err := c.find(ctx, name); err == nil {
		return nil, fmt.Errorf("[Chroma] collection '%s': %w", name, vectordb.ErrCollectionExists)
	} else if !vectordb.IsNotFound(err) {
		return nil, err
	}

	opts := []chroma.CreateCollectionOption{
		chroma.WithEmbeddingFunctionCreate(c.ef),
	}
	if len(metadata) > 0 {
		opts = append(opts, chroma.WithCollectionMetadataCreate(toChromaMetadata(metadata)))
	}

	coll, err := c.api.CreateCollection(ctx, name, opts...)
	if err != nil {
		return nil, fmt.Errorf("[Chroma] failed to create collection '%s': %w", name, err)
	}

	c.log.Info("[Chroma] Created collection", nil, map[string]interface{}{
		"collection": name,
		"id":         coll.ID(),
	})

	return &vectordb.Collection{Name: coll.Name(), Metadata: fromChromaMetadata(coll.Metadata())}, nil
}

// GetCollection returns a collection by name. Absence is decided from the
// collection listing, so only a missing name yields ErrCollectionNotFound.
func (c *Client) GetCollection(ctx context.Context, name string) (*vectordb.Collection, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	coll, err := c.find(ctx, name)
	if err != nil {
		return nil, err
	}
	return &vectordb.Collection{Name: coll.Name(), Metadata: fromChromaMetadata(coll.Metadata())}, nil
}

// ListCollections returns every collection of the configured database
// sorted by name.
func (c *Client) ListCollections(ctx context.Context) ([]vectordb.Collection, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	colls, err := c.listAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]vectordb.Collection, 0, len(colls))
	for _, coll := range colls {
		out = append(out, vectordb.Collection{Name: coll.Name(), Metadata: fromChromaMetadata(coll.Metadata())})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Count returns the number of documents stored in a collection.
func (c *Client) Count(ctx context.Context, name string) (int, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	coll, err := c.find(ctx, name)
	if err != nil {
		return 0, err
	}

	n, err := coll.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("[Chroma] failed to count documents in '%s': %w", name, err)
	}
	return n, nil
}

func (c *Client) find(ctx context.Context, name string) (chroma.Collection, error) {
	if name == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}

	colls, err := c.listAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, coll := range colls {
		if coll.Name() == name {
			return coll, nil
		}
	}
	return nil, fmt.Errorf("[Chroma] collection '%s': %w", name, vectordb.ErrCollectionNotFound)
}

func (c *Client) listAll(ctx context.Context) ([]chroma.Collection, error) {
	var all []chroma.Collection
	for offset := 0; ; offset += listPageSize {
		page, err := c.api.ListCollections(ctx,
			chroma.ListWithLimit(listPageSize),
			chroma.ListWithOffset(offset),
		)
		if err != nil {
			return nil, fmt.Errorf("[Chroma] failed to list collections: %w", err)
		}
		all = append(all, page...)
		if len(page) < listPageSize {
			return all, nil
		}
	}
}
