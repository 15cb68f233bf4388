// Package qdrant implements vectordb.Service on top of the official Qdrant
// Go client.
//
// Qdrant has no notion of collection metadata. The package keeps it in a
// reserved registry collection (default "_collection_registry") that holds
// one point per managed collection. The point ID is a UUID derived from the
// collection name and the payload carries the metadata map. The registry is
// hidden from ListCollections.
//
// Basic usage:
//
//	cfg := qdrant.FromEndpoint("localhost").WithVectorParams(768, "Cosine")
//	client, err := qdrant.NewQdrantClient(qdrant.QdrantParams{Config: cfg, Logger: log})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	coll, err := client.CreateCollection(ctx, "docs", map[string]string{"category": "kb"})
//
// With fx:
//
//	app := fx.New(
//	    logger.FXModule,
//	    qdrant.FXModule,
//	    fx.Provide(func() *qdrant.Config { return qdrant.DefaultConfig() }),
//	)
package qdrant
