// Package vectordb provides a database-agnostic abstraction over the
// collection-management API of a vector database.
//
// # Overview
//
// This package defines a common interface [Service] implemented by the
// backend adapters in this module, allowing the bootstrap layer to switch
// between stores without changing application code.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                     bootstrap.Bootstrapper                  │
//	│        (uses vectordb.Service - no DB-specific imports)     │
//	└──────────────────────────┬──────────────────────────────────┘
//	                           │
//	                           ▼
//	┌─────────────────────────────────────────────────────────────┐
//	│                      vectordb.Service                       │
//	│          (common interface + DB-agnostic types)             │
//	└──────────────────────────┬──────────────────────────────────┘
//	                           │
//	        ┌──────────────────┼──────────────────┐
//	        ▼                  ▼                  ▼
//	┌───────────────┐  ┌───────────────┐  ┌───────────────┐
//	│ sqlstore.Store│  │ qdrant.Client │  │ chroma.Client │
//	│ sqlite / pg   │  │  (registry)   │  │  (HTTP API)   │
//	└───────────────┘  └───────────────┘  └───────────────┘
//
// # Not-found semantics
//
// GetCollection distinguishes a missing collection from a failed lookup.
// Backends wrap [ErrCollectionNotFound] only when the store positively
// reports that the collection is absent; transport errors, timeouts and
// decoding failures are returned as-is. Callers should branch on
// [IsNotFound] rather than on "any error":
//
//	coll, err := db.GetCollection(ctx, "user_portfolios")
//	switch {
//	case err == nil:
//	    // exists
//	case vectordb.IsNotFound(err):
//	    coll, err = db.CreateCollection(ctx, "user_portfolios", meta)
//	default:
//	    return err
//	}
//
// # Naming
//
// [ValidateName] applies the strictest naming rule among the supported
// backends so that a spec accepted by one backend is accepted by all.
//
// # Testing
//
// [MockService] is a gomock mock of [Service], regenerated with go generate.
package vectordb
