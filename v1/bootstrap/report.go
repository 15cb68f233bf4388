package bootstrap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Aleph-Alpha/collection-init/v1/vectordb"
)

// ReportEntry describes one collection in the run report.
type ReportEntry struct {
	Name          string            `json:"name"`
	Metadata      map[string]string `json:"metadata"`
	DocumentCount int               `json:"document_count"`
}

// WriteReport writes entries to path as a JSON array indented by two spaces.
//
// The data goes to a temporary file in the same directory that is renamed
// over path, so readers never observe a partially written report.
func WriteReport(path string, entries []ReportEntry) error {
	out := make([]ReportEntry, len(entries))
	for i, e := range entries {
		e.Metadata = vectordb.CloneMetadata(e.Metadata)
		out[i] = e
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary report file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to set report permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move report into place: %w", err)
	}
	return nil
}

// ReadReport parses a report written by WriteReport.
func ReadReport(path string) ([]ReportEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var entries []ReportEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	for _, e := range entries {
		if e.DocumentCount < 0 {
			return nil, fmt.Errorf("report %s: negative document_count for %q", path, e.Name)
		}
	}
	return entries, nil
}
