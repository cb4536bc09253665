package notes

import "errors"

// Domain-specific errors for the notes package.
var (
	ErrEmptyNote = errors.New("note needs a title or text")
	ErrNotFound  = errors.New("note not found")
)
