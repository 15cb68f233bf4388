package chroma

import (
	"testing"
	"time"

	chroma "github.com/amikos-tech/chroma-go/pkg/api/v2"
	"github.com/stretchr/testify/assert"
)

func TestMetadataConversion(t *testing.T) {
	meta := map[string]string{
		"category":   "education",
		"data_types": "articles, tutorials, quizzes, progress_tracking",
	}

	assert.Equal(t, meta, fromChromaMetadata(toChromaMetadata(meta)))
}

func TestFromChromaMetadataSkipsNonStrings(t *testing.T) {
	md := chroma.NewMetadataFromMap(map[string]interface{}{
		"kept":  "value",
		"count": 3,
	})
	assert.Equal(t, map[string]string{"kept": "value"}, fromChromaMetadata(md))

	empty := fromChromaMetadata(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{BaseURL: "http://chroma:8000"}.withDefaults()
	assert.Equal(t, "http://chroma:8000", cfg.BaseURL)
	assert.Equal(t, DefaultTenant, cfg.Tenant)
	assert.Equal(t, DefaultDatabase, cfg.Database)
	assert.Equal(t, defaultTimeout, cfg.Timeout)

	cfg = Config{Timeout: time.Second}.withDefaults()
	assert.Equal(t, defaultBaseURL, cfg.BaseURL)
	assert.Equal(t, time.Second, cfg.Timeout)
}
