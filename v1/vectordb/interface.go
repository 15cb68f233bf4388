package vectordb

import "context"

//go:generate mockgen -source=interface.go -destination=mock_service.go -package=vectordb

// Service is the common interface for all vector database backends.
// It covers the collection-management surface of a vector store, allowing
// the bootstrap layer to target an embedded store, Qdrant or Chroma
// without changing application code.
//
// Example usage:
//
//	func NewBootstrapper(db vectordb.Service) *Bootstrapper {
//	    return &Bootstrapper{db: db}
//	}
//
//	// Works with any implementation:
//	// - sqlstore.NewStore(cfg)
//	// - qdrant.NewQdrantClient(params)
//	// - chroma.NewChromaClient(params)
type Service interface {
	// CreateCollection creates a collection with the given metadata.
	// Returns an error wrapping ErrCollectionExists if the name is taken.
	CreateCollection(ctx context.Context, name string, metadata map[string]string) (*Collection, error)

	// GetCollection retrieves a collection and its metadata.
	// Returns an error wrapping ErrCollectionNotFound when no collection
	// has that name. Any other error means the lookup itself failed.
	GetCollection(ctx context.Context, name string) (*Collection, error)

	// ListCollections returns every collection in the store, sorted by name.
	ListCollections(ctx context.Context) ([]Collection, error)

	// Count returns the number of documents stored in a collection.
	Count(ctx context.Context, name string) (int, error)

	// Close releases the underlying client resources.
	Close() error
}
