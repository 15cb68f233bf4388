package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Aleph-Alpha/collection-init/v1/vectordb"
)

// CreateCollection inserts a new collection row.
//
// A unique-index violation on the name is reported as vectordb.ErrCollectionExists.
func (s *Store) CreateCollection(ctx context.Context, name string, metadata map[string]string) (*vectordb.Collection, error) {
	if err := vectordb.ValidateName(name); err != nil {
		return nil, err
	}

	rec := collectionRecord{
		Name:     name,
		Metadata: vectordb.CloneMetadata(metadata),
	}

	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("[SQLStore] collection '%s': %w", name, vectordb.ErrCollectionExists)
		}
		return nil, fmt.Errorf("[SQLStore] failed to create collection '%s': %w", name, err)
	}

	s.log.Debug("[SQLStore] Created collection", nil, map[string]interface{}{
		"collection": name,
	})
	return toCollection(rec), nil
}

// GetCollection looks a collection up by name.
//
// Only gorm.ErrRecordNotFound maps to vectordb.ErrCollectionNotFound; every
// other failure is returned as a lookup error.
func (s *Store) GetCollection(ctx context.Context, name string) (*vectordb.Collection, error) {
	rec, err := s.findCollection(ctx, name)
	if err != nil {
		return nil, err
	}
	return toCollection(*rec), nil
}

// ListCollections returns every collection ordered by name.
func (s *Store) ListCollections(ctx context.Context) ([]vectordb.Collection, error) {
	var recs []collectionRecord
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("[SQLStore] failed to list collections: %w", err)
	}

	out := make([]vectordb.Collection, 0, len(recs))
	for _, rec := range recs {
		out = append(out, *toCollection(rec))
	}
	return out, nil
}

// Count returns the number of documents stored in the named collection.
func (s *Store) Count(ctx context.Context, name string) (int, error) {
	rec, err := s.findCollection(ctx, name)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := s.db.WithContext(ctx).Model(&documentRecord{}).Where("collection_id = ?", rec.ID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("[SQLStore] failed to count documents in '%s': %w", name, err)
	}
	return int(n), nil
}

// AddDocuments stores documents in a collection inside one transaction,
// inserting them in chunks of defaultBatchSize.
func (s *Store) AddDocuments(ctx context.Context, collection string, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	rec, err := s.findCollection(ctx, collection)
	if err != nil {
		return err
	}

	rows := make([]documentRecord, 0, len(docs))
	for i, d := range docs {
		if d.ID == "" {
			return fmt.Errorf("[SQLStore] document [%d] has an empty id", i)
		}
		rows = append(rows, documentRecord{
			CollectionID: rec.ID,
			ExternalID:   d.ID,
			Content:      d.Content,
			Embedding:    d.Embedding,
			Metadata:     vectordb.CloneMetadata(d.Metadata),
		})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&rows, defaultBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("[SQLStore] failed to add documents to '%s': %w", collection, err)
	}

	s.log.Debug("[SQLStore] Added documents", nil, map[string]interface{}{
		"collection": collection,
		"count":      len(rows),
	})
	return nil
}

func (s *Store) findCollection(ctx context.Context, name string) (*collectionRecord, error) {
	if name == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}

	var rec collectionRecord
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("[SQLStore] collection '%s': %w", name, vectordb.ErrCollectionNotFound)
		}
		return nil, fmt.Errorf("[SQLStore] failed to get collection '%s': %w", name, err)
	}
	return &rec, nil
}

func toCollection(rec collectionRecord) *vectordb.Collection {
	return &vectordb.Collection{
		Name:     rec.Name,
		Metadata: vectordb.CloneMetadata(rec.Metadata),
	}
}
