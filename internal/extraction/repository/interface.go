package repository

import (
	"context"

	"github.com/dondeestakoko/easemyday/internal/model"
)

// ItemRepository owns the persisted batch of accepted items. The collection
// is a single ordered sequence; Append reads, merges, and rewrites it whole.
// Implementations must tolerate a missing backing file (empty collection)
// but the design assumes at most one pipeline run mutating a store at a
// time.
type ItemRepository interface {
	// Load returns every persisted item in encounter order.
	Load(ctx context.Context) ([]model.ExtractedItem, error)

	// Append adds items to the end of the collection and persists the
	// whole collection.
	Append(ctx context.Context, items []model.ExtractedItem) error
}
