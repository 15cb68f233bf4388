package vectordb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "snake case", input: "bitcoin_historical_data"},
		{name: "dotted", input: "game.achievements"},
		{name: "dashes", input: "market-analysis-v2"},
		{name: "minimum length", input: "abc"},
		{name: "empty", input: "", wantErr: true},
		{name: "too short", input: "ab", wantErr: true},
		{name: "too long", input: "a123456789012345678901234567890123456789012345678901234567890123", wantErr: true},
		{name: "leading underscore", input: "_collection_registry", wantErr: true},
		{name: "trailing dash", input: "portfolio-", wantErr: true},
		{name: "space", input: "user portfolios", wantErr: true},
		{name: "slash", input: "user/portfolios", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidCollectionName))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCloneMetadata(t *testing.T) {
	src := map[string]string{"category": "education"}
	dst := CloneMetadata(src)
	dst["category"] = "changed"

	assert.Equal(t, "education", src["category"])
	assert.NotNil(t, CloneMetadata(nil))
	assert.Empty(t, CloneMetadata(nil))
}

func TestCollectionSpecClone(t *testing.T) {
	spec := CollectionSpec{Name: "user_portfolios", Metadata: map[string]string{"usage": "track"}}
	clone := spec.Clone()
	clone.Metadata["usage"] = "mutated"

	assert.Equal(t, "track", spec.Metadata["usage"])
	assert.Equal(t, spec.Name, clone.Name)
}

func TestErrorHelpers(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup"), ErrCollectionNotFound)
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsNotFound(errors.New("connection refused")))
	assert.True(t, IsAlreadyExists(ErrCollectionExists))
	assert.False(t, IsAlreadyExists(ErrCollectionNotFound))
}
