package repository

import (
	"context"

	"github.com/dondeestakoko/easemyday/internal/notes"
)

// NoteRepository persists the whole note collection.
type NoteRepository interface {
	Load(ctx context.Context) ([]notes.Note, error)
	Save(ctx context.Context, all []notes.Note) error
}
