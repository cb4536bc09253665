package repository

import "context"

// SuggestionWriter persists the latest suggestion payload.
type SuggestionWriter interface {
	Save(ctx context.Context, payload map[string]any) error
}
