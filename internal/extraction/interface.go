package extraction

import (
	"context"

	"github.com/dondeestakoko/easemyday/internal/model"
)

// UseCase defines the business logic interface for the extraction domain.
type UseCase interface {
	// Extract classifies raw text into items via the LLM and normalizes
	// their dates. Nothing is persisted.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)

	// Commit deduplicates previously previewed items against the store,
	// routes each accepted item to its category's collaborators, and
	// appends the committed ones to the store.
	Commit(ctx context.Context, sc model.Scope, input CommitInput) (CommitOutput, error)

	// Digest lists upcoming calendar events and asks the LLM to
	// structure them.
	Digest(ctx context.Context, sc model.Scope, input DigestInput) (DigestOutput, error)
}
