// Package storage provides the data persistence layer for the tally
// application: two JSON collections (records, categories) in a per-user
// data directory.
//
// Reads are total by contract. Missing files, unreadable files, and
// unparsable JSON all yield an empty collection rather than an error; the
// caller can always proceed. This trades silent data loss on corruption for
// simplicity and is a documented limitation, not a bug to fix.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	recordsFile    = "records.json"
	categoriesFile = "categories.json"
)

// FileStore persists the two collections as JSON files under a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir, creating the directory
// if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := validateString(dir, "dir"); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) recordsPath() string {
	return filepath.Join(s.dir, recordsFile)
}

func (s *FileStore) categoriesPath() string {
	return filepath.Join(s.dir, categoriesFile)
}

// writeJSON serializes v and replaces path in a single rename, so a reader
// never observes a half-written collection.
func (s *FileStore) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
