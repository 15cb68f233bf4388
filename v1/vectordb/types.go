package vectordb

import "maps"

// CollectionSpec describes a collection that should exist in the store.
type CollectionSpec struct {
	// Name is the unique identifier of the collection
	Name string `json:"name" yaml:"name"`

	// Metadata is the flat descriptive mapping attached at creation time
	Metadata map[string]string `json:"metadata" yaml:"metadata"`
}

// Collection contains metadata about a vector collection as reported by a backend.
type Collection struct {
	// Name is the unique identifier of the collection
	Name string `json:"name"`

	// Metadata is the descriptive mapping stored with the collection
	Metadata map[string]string `json:"metadata"`
}

// Clone returns a deep copy of s.
func (s CollectionSpec) Clone() CollectionSpec {
	return CollectionSpec{Name: s.Name, Metadata: CloneMetadata(s.Metadata)}
}

// CloneMetadata copies a metadata map. A nil map yields an empty, non-nil map.
func CloneMetadata(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	maps.Copy(out, m)
	return out
}
