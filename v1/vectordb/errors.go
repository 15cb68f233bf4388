package vectordb

import "errors"

var (
	// ErrCollectionNotFound is returned when a collection does not exist.
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrCollectionExists is returned when creating a collection whose name is taken.
	ErrCollectionExists = errors.New("collection already exists")

	// ErrInvalidCollectionName is returned when a name fails ValidateName.
	ErrInvalidCollectionName = errors.New("invalid collection name")
)

// IsNotFound reports whether err signals a missing collection.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCollectionNotFound)
}

// IsAlreadyExists reports whether err signals a name collision on create.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrCollectionExists)
}
