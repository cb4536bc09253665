// Package jsonfile persists the extracted-item batch as a single JSON
// array on disk, the same layout the legacy extracted_items.json used.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dondeestakoko/easemyday/internal/model"
)

// Store is a file-backed ItemRepository. The mutex serializes concurrent
// callers within one process; cross-process single-writer discipline is the
// caller's responsibility.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a store writing to the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the whole collection. A missing file is an empty collection,
// not an error.
func (s *Store) Load(ctx context.Context) ([]model.ExtractedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]model.ExtractedItem, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []model.ExtractedItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read item store: %w", err)
	}

	var items []model.ExtractedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse item store: %w", err)
	}
	if items == nil {
		items = []model.ExtractedItem{}
	}
	return items, nil
}

// Append reads the collection, appends the new items in order, and rewrites
// the file in one shot.
func (s *Store) Append(ctx context.Context, items []model.ExtractedItem) error {
	if len(items) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load()
	if err != nil {
		return err
	}
	merged := append(existing, items...)

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal item store: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write item store: %w", err)
	}
	return nil
}
