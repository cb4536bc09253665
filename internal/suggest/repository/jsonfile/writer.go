// Package jsonfile persists the suggestion payload as a JSON file,
// overwritten on each run.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Writer is a file-backed SuggestionWriter.
type Writer struct {
	path string
}

// New creates a writer targeting the given file path.
func New(path string) *Writer {
	return &Writer{path: path}
}

// Save rewrites the output file with the given payload.
func (w *Writer) Save(ctx context.Context, payload map[string]any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal suggestion output: %w", err)
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write suggestion output: %w", err)
	}
	return nil
}
