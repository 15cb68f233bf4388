// Package sqlstore implements vectordb.Service on top of gorm.
//
// Two dialects are supported. The sqlite driver (default) keeps a single
// catalog file inside a persistent storage directory, which makes it the
// embedded, zero-infrastructure backend of the bootstrap command. The
// postgres driver stores the same tables in a PostgreSQL database.
//
// # Schema
//
//	vector_collections(id, name UNIQUE, metadata JSON, created_at, updated_at)
//	vector_documents(id, collection_id, external_id, content, embedding JSON,
//	                 metadata JSON, created_at, UNIQUE(collection_id, external_id))
//
// The schema is migrated automatically by NewStore.
//
// # Usage
//
//	store, err := sqlstore.NewStore(sqlstore.Config{
//		Driver: sqlstore.DriverSQLite,
//		Path:   "./chroma_data",
//	}, log)
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	coll, err := store.GetCollection(ctx, "user_portfolios")
//	if vectordb.IsNotFound(err) {
//		coll, err = store.CreateCollection(ctx, "user_portfolios", meta)
//	}
//
// # Errors
//
// gorm.ErrRecordNotFound maps to vectordb.ErrCollectionNotFound and
// gorm.ErrDuplicatedKey to vectordb.ErrCollectionExists. The gorm handle is
// opened with TranslateError so both drivers report the same sentinels.
package sqlstore
