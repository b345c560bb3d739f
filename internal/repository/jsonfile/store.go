// Package jsonfile persists the rental and generator collections as two
// flat JSON files, each rewritten whole on every mutation. Writes go to
// a temp file in the same directory followed by a rename, so a reader
// never observes a truncated collection.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"genrent-backend/internal/repository"
)

// Store bundles the file-backed repositories over a shared data directory.
type Store struct {
	repository.RentalRepository
	repository.GeneratorRepository
}

// NewStore creates the data directory if needed and returns file-backed
// repositories for both collections.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{
		RentalRepository:    NewRentalRepository(filepath.Join(dataDir, "rentals.json")),
		GeneratorRepository: NewGeneratorRepository(filepath.Join(dataDir, "generators.json")),
	}, nil
}

// readCollection loads a whole JSON collection. A missing file reads as
// an empty collection, matching first-run behavior.
func readCollection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return items, nil
}

// writeCollection replaces a whole JSON collection atomically.
func writeCollection[T any](path string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
