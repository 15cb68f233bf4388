package bootstrap

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMetadata(t *testing.T) {
	assert.Equal(t, "{}", FormatMetadata(nil))
	assert.Equal(t, "{category: education, usage: learn}", FormatMetadata(map[string]string{
		"usage":    "learn",
		"category": "education",
	}))
}

func TestConsolePlainOutputForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.CollectionHeader(DefaultCollections()[0])
	c.EnsureFailed("bitcoin_historical_data", errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "Collection: bitcoin_historical_data\n")
	assert.Contains(t, out, "Data types: price,volume,market_cap,technical_indicators,timestamps\n")
	assert.Contains(t, out, "✗ Failed to create collection 'bitcoin_historical_data': boom\n")
}
