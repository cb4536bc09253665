// Package jsonfile persists notes as a single JSON array on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dondeestakoko/easemyday/internal/notes"
)

// Store is a file-backed NoteRepository.
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
func (s *Store) Load(ctx context.Context) ([]notes.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []notes.Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read note store: %w", err)
	}

	var all []notes.Note
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("failed to parse note store: %w", err)
	}
	if all == nil {
		all = []notes.Note{}
	}
	return all, nil
}

// Save rewrites the whole collection in one shot.
func (s *Store) Save(ctx context.Context, all []notes.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal note store: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write note store: %w", err)
	}
	return nil
}
