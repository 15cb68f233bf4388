package sqlstore

import "time"

// collectionRecord is the row backing a vectordb.Collection.
type collectionRecord struct {
	ID        uint              `gorm:"primaryKey"`
	Name      string            `gorm:"size:63;not null;uniqueIndex"`
	Metadata  map[string]string `gorm:"serializer:json;type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (collectionRecord) TableName() string { return "vector_collections" }

// documentRecord is a single stored document of a collection.
type documentRecord struct {
	ID           uint              `gorm:"primaryKey"`
	CollectionID uint              `gorm:"not null;uniqueIndex:idx_collection_document"`
	ExternalID   string            `gorm:"size:255;not null;uniqueIndex:idx_collection_document"`
	Content      string            `gorm:"type:text"`
	Embedding    []float32         `gorm:"serializer:json;type:text"`
	Metadata     map[string]string `gorm:"serializer:json;type:text"`
	CreatedAt    time.Time
}

func (documentRecord) TableName() string { return "vector_documents" }

// Document is an input to AddDocuments.
type Document struct {
	// ID is unique within its collection.
	ID        string
	Content   string
	Embedding []float32
	Metadata  map[string]string
}
