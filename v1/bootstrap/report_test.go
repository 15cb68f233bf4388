package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReportFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")

	entries := []ReportEntry{
		{Name: "market_analysis", Metadata: map[string]string{"category": "analytics"}, DocumentCount: 2},
		{Name: "no_metadata"},
	}
	require.NoError(t, WriteReport(path, entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `[
  {
    "name": "market_analysis",
    "metadata": {
      "category": "analytics"
    },
    "document_count": 2
  },
  {
    "name": "no_metadata",
    "metadata": {},
    "document_count": 0
  }
]
`
	assert.Equal(t, want, string(data))
	assert.Nil(t, entries[1].Metadata, "caller entries must not be modified")

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1, "temporary files must be cleaned up")
}

func TestWriteReportEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteReport(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	entries, err := ReadReport(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteReportReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, WriteReport(path, []ReportEntry{{Name: "fresh_one"}}))

	entries, err := ReadReport(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fresh_one", entries[0].Name)
}

func TestWriteReportMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.json")
	assert.Error(t, WriteReport(path, nil))
}

func TestReadReportRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"name": "x"}`), 0o644))
	_, err := ReadReport(bad)
	assert.Error(t, err)

	negative := filepath.Join(dir, "negative.json")
	require.NoError(t, os.WriteFile(negative, []byte(`[{"name": "x", "metadata": {}, "document_count": -1}]`), 0o644))
	_, err = ReadReport(negative)
	assert.ErrorContains(t, err, "negative")

	_, err = ReadReport(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
