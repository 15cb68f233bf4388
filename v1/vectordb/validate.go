package vectordb

import (
	"fmt"
	"regexp"
)

const (
	minNameLength = 3
	maxNameLength = 63
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*[a-zA-Z0-9]$`)

// ValidateName checks a collection name against the strictest naming rules
// among the supported backends (Chroma): 3-63 characters from [a-zA-Z0-9._-],
// starting and ending with an alphanumeric character.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidCollectionName)
	}
	if len(name) < minNameLength || len(name) > maxNameLength {
		return fmt.Errorf("%w: %q must be between %d and %d characters", ErrInvalidCollectionName, name, minNameLength, maxNameLength)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q contains unsupported characters", ErrInvalidCollectionName, name)
	}
	return nil
}
