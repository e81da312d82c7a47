package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Storage is the persistence boundary. Everything above it works on
// in-memory snapshots; swapping the backing medium never touches core
// logic.
type Storage interface {
	Load(key string, v any) error
	Save(key string, v any) error
	Remove(key string) error
}

// FileStorage persists each key as a JSON file in a data directory, the
// local-storage equivalent for a CLI. Writes overwrite the prior snapshot
// unconditionally; there is a single writer.
type FileStorage struct {
	Dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory (%s): %w", dir, err)
	}
	return &FileStorage{Dir: dir}, nil
}

func (fs *FileStorage) path(key string) string {
	return filepath.Join(fs.Dir, key+".json")
}

// Load reads a key into v. A missing file leaves v at its zero value.
// Malformed JSON must not take the app down: it logs a warning and leaves v
// empty so the caller falls back to defaults.
func (fs *FileStorage) Load(key string, v any) error {
	path := fs.path(key)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return fmt.Errorf("❌ Failed to check JSON file: %w", err)
	}

	jsonBytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("❌ Failed to read JSON file: %w", err)
	}

	if len(jsonBytes) > 0 {
		if err := json.Unmarshal(jsonBytes, v); err != nil {
			log.Printf("⚠️ Corrupt JSON in %s, starting from empty: %v", path, err)
		}
	}
	return nil
}

func (fs *FileStorage) Save(key string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("❌ Failed to convert to JSON: %w", err)
	}

	if err := os.WriteFile(fs.path(key), jsonBytes, 0644); err != nil {
		return fmt.Errorf("❌ Failed to write JSON file: %w", err)
	}
	return nil
}

func (fs *FileStorage) Remove(key string) error {
	err := os.Remove(fs.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("❌ Failed to remove JSON file: %w", err)
	}
	return nil
}
