package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/desertthunder/songbreeze/internal/models"
	"github.com/desertthunder/songbreeze/internal/shared"
)

var _ Backend = (*JSONBackend)(nil)

// JSONBackend persists the list as a [models.SourceRecord] in a single file.
type JSONBackend struct {
	path string
}

// NewJSONBackend creates a backend for the record at path.
func NewJSONBackend(path string) *JSONBackend {
	return &JSONBackend{path: path}
}

// Location returns the record's file path.
func (b *JSONBackend) Location() string { return b.path }

// Read parses the record. A zero-length or whitespace-only file is an empty list.
func (b *JSONBackend) Read() ([]string, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []string{}, nil
	}

	var record models.SourceRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrStoreCorrupt, b.path, err)
	}

	if record.Sources == nil {
		return []string{}, nil
	}
	return record.Sources, nil
}

// Write replaces the record with items.
//
// The record is written to a temporary file in the same directory and renamed into place,
// so a failed write leaves the previous record intact.
func (b *JSONBackend) Write(items []string) error {
	if items == nil {
		items = []string{}
	}

	data, err := json.MarshalIndent(models.SourceRecord{Sources: items}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(b.path), filepath.Base(b.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close record: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set record permissions: %w", err)
	}

	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return fmt.Errorf("failed to replace record: %w", err)
	}
	return nil
}

// InitJSONRecord writes an empty record at path.
func InitJSONRecord(path string) error {
	return NewJSONBackend(path).Write(nil)
}
